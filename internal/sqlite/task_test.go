package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanLimbu/task-tracker/internal/service"
	"github.com/sanLimbu/task-tracker/internal/sqlite"
	"github.com/sanLimbu/task-tracker/internal/storetesting"
)

func TestTask(t *testing.T) {
	storetesting.Run(t, func(t *testing.T) service.TaskRepository {
		t.Helper()

		db, err := sqlite.Open(":memory:")
		require.NoError(t, err)

		t.Cleanup(func() {
			sqlDB, err := db.DB()
			if err == nil {
				_ = sqlDB.Close()
			}
		})

		return sqlite.NewTask(db)
	})
}
