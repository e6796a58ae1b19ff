package rest_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sanLimbu/task-tracker/internal/rest"
	"github.com/sanLimbu/task-tracker/internal/service"
	"github.com/sanLimbu/task-tracker/internal/sqlite"
)

func newSQLiteRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	router := chi.NewRouter()
	rest.NewTaskHandler(service.NewTask(zap.NewNop(), sqlite.NewTask(db))).Register(router)

	return router
}

func decodeTask(t *testing.T, body []byte) rest.Task {
	t.Helper()

	var task rest.Task
	require.NoError(t, json.Unmarshal(body, &task))

	return task
}

func TestTaskAPI_Lifecycle(t *testing.T) {
	t.Parallel()

	router := newSQLiteRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/tasks", `{"title":"T","priority":"HIGH"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))

	id, ok := raw["id"].(float64)
	require.True(t, ok)
	assert.Equal(t, float64(int64(id)), id)
	assert.Equal(t, "HIGH", raw["priority"])
	assert.Equal(t, false, raw["completed"])

	target := fmt.Sprintf("/tasks/%d", int64(id))

	rec = doRequest(t, router, http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, rec.Code)

	created := decodeTask(t, rec.Body.Bytes())
	assert.Equal(t, "T", created.Title)
	assert.Equal(t, "HIGH", created.Priority.String())
	assert.False(t, created.Completed)

	rec = doRequest(t, router, http.MethodPatch, target+"/complete", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeTask(t, rec.Body.Bytes()).Completed)

	rec = doRequest(t, router, http.MethodDelete, target, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, target, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, target, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskAPI_UpdateMissing(t *testing.T) {
	t.Parallel()

	router := newSQLiteRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/tasks/12", `{"title":"ghost"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTaskAPI_Queries(t *testing.T) {
	t.Parallel()

	router := newSQLiteRouter(t)

	for _, body := range []string{
		`{"title":"a","priority":"HIGH","dueDate":"2024-06-14"}`,
		`{"title":"b","priority":"HIGH","completed":true,"dueDate":"2024-06-15"}`,
		`{"title":"c","priority":"LOW","dueDate":"2024-06-16"}`,
		`{"title":"d","description":"no due date"}`,
	} {
		rec := doRequest(t, router, http.MethodPost, "/tasks", body)
		require.Equal(t, http.StatusCreated, rec.Code, body)
	}

	titles := func(target string) []string {
		rec := doRequest(t, router, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rec.Code, target)

		var tasks []rest.Task
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))

		res := []string{}
		for _, task := range tasks {
			res = append(res, task.Title)
		}

		return res
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, titles("/tasks"))
	assert.Equal(t, []string{"a", "b"}, titles("/tasks/priority/HIGH"))
	assert.Equal(t, []string{"d"}, titles("/tasks/priority/MEDIUM"))
	assert.Equal(t, []string{"b"}, titles("/tasks/status/true"))
	assert.Equal(t, []string{"a"}, titles("/tasks/priority/HIGH/status/false"))
	assert.Equal(t, []string{}, titles("/tasks/priority/LOW/status/true"))
	assert.Equal(t, []string{"b"}, titles("/tasks/due-date/2024-06-15"))
	assert.Equal(t, []string{"a", "b"}, titles("/tasks/due-before/2024-06-16"))
	assert.Equal(t, []string{"b", "c"}, titles("/tasks/due-after/2024-06-14"))
	assert.Equal(t, []string{"c"}, titles("/tasks/priority/LOW/due-date/2024-06-16"))

	rec := doRequest(t, router, http.MethodPatch, "/tasks/4/priority/LOW", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPatch, "/tasks/4/due-date?dueDate=2024-06-16", "")
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decodeTask(t, rec.Body.Bytes())
	require.NotNil(t, updated.Description)
	assert.Equal(t, "no due date", *updated.Description)

	assert.Equal(t, []string{"c", "d"}, titles("/tasks/priority/LOW/due-date/2024-06-16"))
}
