package internal

import (
	"gorm.io/gorm"

	"github.com/sanLimbu/task-tracker/internal"
	"github.com/sanLimbu/task-tracker/internal/envvar"
	"github.com/sanLimbu/task-tracker/internal/sqlite"
)

// NewSQLite opens the embedded database defined by SQLITE_PATH, "tasks.db" by default.
func NewSQLite(conf *envvar.Configuration) (*gorm.DB, error) {
	path, err := conf.GetDefault("SQLITE_PATH", "tasks.db")
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get SQLITE_PATH")
	}

	db, err := sqlite.Open(path)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "sqlite.Open")
	}

	return db, nil
}
