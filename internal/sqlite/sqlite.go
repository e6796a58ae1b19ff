package sqlite

import (
	"context"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sanLimbu/task-tracker/internal"
)

const otelName = "github.com/sanLimbu/task-tracker/internal/sqlite"

// task is the persisted representation of internal.Task. Due dates are stored as yyyy-MM-dd text so
// that equality and ordering are day granular.
type task struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"not null"`
	Description *string
	Completed   bool    `gorm:"not null;index:idx_tasks_priority_completed,priority:2"`
	Priority    string  `gorm:"size:6;not null;index:idx_tasks_priority_completed,priority:1"`
	DueDate     *string `gorm:"type:text;index"`
}

// TableName returns the table name for the task model.
func (task) TableName() string {
	return "tasks"
}

// Open connects to the SQLite database at path and migrates the tasks table.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "gorm.Open")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "db.DB")
	}

	// SQLite serializes writers, a single connection also keeps ":memory:" databases alive.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&task{}); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "db.AutoMigrate")
	}

	return db, nil
}

func newRow(t internal.Task) task {
	res := task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    t.Priority.String(),
	}

	if t.DueDate != nil {
		due := t.DueDate.String()
		res.DueDate = &due
	}

	return res
}

func convertRow(row task) (internal.Task, error) {
	priority, err := internal.ParsePriority(row.Priority)
	if err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "unknown priority stored for task %d", row.ID)
	}

	res := internal.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Completed:   row.Completed,
		Priority:    priority,
	}

	if row.DueDate != nil {
		due, err := internal.ParseDate(*row.DueDate)
		if err != nil {
			return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "invalid due date stored for task %d", row.ID)
		}

		res.DueDate = &due
	}

	return res, nil
}

func convertRows(rows []task) ([]internal.Task, error) {
	res := make([]internal.Task, 0, len(rows))

	for _, row := range rows {
		t, err := convertRow(row)
		if err != nil {
			return nil, err
		}

		res = append(res, t)
	}

	return res, nil
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemSqlite)

	return span
}

func wrapQueryError(err error, what string) error {
	return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "find %s", what)
}
