package internal_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanLimbu/task-tracker/internal"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := internal.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, internal.Date{Year: 2024, Month: time.February, Day: 29}, d)
	assert.Equal(t, "2024-02-29", d.String())

	for _, s := range []string{"invalid-date", "2023-02-29", "2024/01/01", "2024-1-1", ""} {
		_, err := internal.ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestDateOf_TruncatesTimeOfDay(t *testing.T) {
	t.Parallel()

	morning := time.Date(2024, 5, 1, 0, 0, 1, 0, time.UTC)
	evening := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, internal.DateOf(morning), internal.DateOf(evening))
}

func TestDate_Compare(t *testing.T) {
	t.Parallel()

	today := internal.Date{Year: 2024, Month: 12, Day: 31}
	tomorrow := today.AddDays(1)
	yesterday := today.AddDays(-1)

	assert.Equal(t, "2025-01-01", tomorrow.String())
	assert.Equal(t, "2024-12-30", yesterday.String())
	assert.True(t, yesterday.Before(today))
	assert.False(t, today.Before(today))
	assert.True(t, tomorrow.After(today))
	assert.False(t, today.After(today))
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	var v struct {
		DueDate *internal.Date `json:"dueDate"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":"2024-07-04"}`), &v))
	require.NotNil(t, v.DueDate)
	assert.Equal(t, "2024-07-04", v.DueDate.String())

	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":null}`), &v))
	assert.Nil(t, v.DueDate)

	assert.Error(t, json.Unmarshal([]byte(`{"dueDate":"07/04/2024"}`), &v))
}
