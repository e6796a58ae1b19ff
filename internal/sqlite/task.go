package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sanLimbu/task-tracker/internal"
)

// Task represents the repository used for interacting with Task records stored in SQLite.
type Task struct {
	db *gorm.DB
}

// NewTask instantiates the Task repository.
func NewTask(db *gorm.DB) *Task {
	return &Task{
		db: db,
	}
}

func (t *Task) find(ctx context.Context, what string, query interface{}, args ...interface{}) ([]internal.Task, error) {
	var rows []task

	tx := t.db.WithContext(ctx).Order("id")
	if query != nil {
		tx = tx.Where(query, args...)
	}

	if err := tx.Find(&rows).Error; err != nil {
		return nil, wrapQueryError(err, what)
	}

	return convertRows(rows)
}

// FindAll returns every Task ordered by id.
func (t *Task) FindAll(ctx context.Context) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindAll").End()

	return t.find(ctx, "all", nil)
}

// FindByID returns the requested Task, the boolean is false when it does not exist.
func (t *Task) FindByID(ctx context.Context, id int64) (internal.Task, bool, error) {
	defer newOTELSpan(ctx, "Task.FindByID").End()

	var row task

	if err := t.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return internal.Task{}, false, nil
		}

		return internal.Task{}, false, wrapQueryError(err, "by id")
	}

	res, err := convertRow(row)
	if err != nil {
		return internal.Task{}, false, err
	}

	return res, true, nil
}

// FindByPriority ...
func (t *Task) FindByPriority(ctx context.Context, priority internal.Priority) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindByPriority").End()

	return t.find(ctx, "by priority", "priority = ?", priority.String())
}

// FindByCompleted ...
func (t *Task) FindByCompleted(ctx context.Context, completed bool) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindByCompleted").End()

	return t.find(ctx, "by completed", "completed = ?", completed)
}

// FindByPriorityAndCompleted ...
func (t *Task) FindByPriorityAndCompleted(ctx context.Context, priority internal.Priority, completed bool) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindByPriorityAndCompleted").End()

	return t.find(ctx, "by priority and completed", "priority = ? AND completed = ?", priority.String(), completed)
}

// FindByDueDate returns the tasks due exactly on date.
func (t *Task) FindByDueDate(ctx context.Context, date internal.Date) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindByDueDate").End()

	return t.find(ctx, "by due date", "due_date = ?", date.String())
}

// FindByDueDateBefore returns the tasks due strictly before date.
func (t *Task) FindByDueDateBefore(ctx context.Context, date internal.Date) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindByDueDateBefore").End()

	return t.find(ctx, "due before", "due_date < ?", date.String())
}

// FindByDueDateAfter returns the tasks due strictly after date.
func (t *Task) FindByDueDateAfter(ctx context.Context, date internal.Date) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindByDueDateAfter").End()

	return t.find(ctx, "due after", "due_date > ?", date.String())
}

// FindByPriorityAndDueDate ...
func (t *Task) FindByPriorityAndDueDate(ctx context.Context, priority internal.Priority, date internal.Date) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindByPriorityAndDueDate").End()

	return t.find(ctx, "by priority and due date", "priority = ? AND due_date = ?", priority.String(), date.String())
}

// Save inserts the task when its ID is zero, otherwise all fields of the record with the same ID are
// overwritten. The boolean is false when no record has that ID, nothing is written in that case.
func (t *Task) Save(ctx context.Context, tsk internal.Task) (internal.Task, bool, error) {
	defer newOTELSpan(ctx, "Task.Save").End()

	row := newRow(tsk)

	if row.ID == 0 {
		if err := t.db.WithContext(ctx).Create(&row).Error; err != nil {
			return internal.Task{}, false, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "create task")
		}

		tsk.ID = row.ID

		return tsk, true, nil
	}

	res := t.db.WithContext(ctx).
		Model(&task{}).
		Where("id = ?", row.ID).
		Select("title", "description", "completed", "priority", "due_date").
		Updates(&row)
	if err := res.Error; err != nil {
		return internal.Task{}, false, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "update task")
	}

	return tsk, res.RowsAffected > 0, nil
}

// DeleteByID removes the task, deleting a missing id is a no-op.
func (t *Task) DeleteByID(ctx context.Context, id int64) error {
	defer newOTELSpan(ctx, "Task.DeleteByID").End()

	if err := t.db.WithContext(ctx).Delete(&task{}, "id = ?", id).Error; err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "delete task")
	}

	return nil
}
