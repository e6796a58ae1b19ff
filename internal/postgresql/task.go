package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/sanLimbu/task-tracker/internal"
	"github.com/sanLimbu/task-tracker/internal/postgresql/db"
)

// Task represents the repository used for interacting with Task records.
type Task struct {
	q *db.Queries
}

// NewTask instantiates the Task repository.
func NewTask(d db.DBTX) *Task {
	return &Task{
		q: db.New(d),
	}
}

// FindAll returns every Task ordered by id.
func (t *Task) FindAll(ctx context.Context) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindAll").End()

	rows, err := t.q.SelectTasks(ctx)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select tasks")
	}

	return convertTasks(rows)
}

// FindByID returns the requested Task, the boolean is false when it does not exist.
func (t *Task) FindByID(ctx context.Context, id int64) (internal.Task, bool, error) {
	defer newOTELSpan(ctx, "Task.FindByID").End()

	row, err := t.q.SelectTask(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return internal.Task{}, false, nil
		}

		return internal.Task{}, false, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select task")
	}

	task, err := convertTask(row)
	if err != nil {
		return internal.Task{}, false, err
	}

	return task, true, nil
}

// FindByPriority ...
func (t *Task) FindByPriority(ctx context.Context, priority internal.Priority) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindByPriority").End()

	rows, err := t.q.SelectTasksByPriority(ctx, newPriority(priority))
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select tasks by priority")
	}

	return convertTasks(rows)
}

// FindByCompleted ...
func (t *Task) FindByCompleted(ctx context.Context, completed bool) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindByCompleted").End()

	rows, err := t.q.SelectTasksByCompleted(ctx, completed)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select tasks by completed")
	}

	return convertTasks(rows)
}

// FindByPriorityAndCompleted ...
func (t *Task) FindByPriorityAndCompleted(ctx context.Context, priority internal.Priority, completed bool) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindByPriorityAndCompleted").End()

	rows, err := t.q.SelectTasksByPriorityAndCompleted(ctx, db.SelectTasksByPriorityAndCompletedParams{
		Priority:  newPriority(priority),
		Completed: completed,
	})
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select tasks by priority and completed")
	}

	return convertTasks(rows)
}

// FindByDueDate returns the tasks due exactly on date.
func (t *Task) FindByDueDate(ctx context.Context, date internal.Date) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindByDueDate").End()

	rows, err := t.q.SelectTasksByDueDate(ctx, newDate(&date))
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select tasks by due date")
	}

	return convertTasks(rows)
}

// FindByDueDateBefore returns the tasks due strictly before date.
func (t *Task) FindByDueDateBefore(ctx context.Context, date internal.Date) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindByDueDateBefore").End()

	rows, err := t.q.SelectTasksDueBefore(ctx, newDate(&date))
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select tasks due before")
	}

	return convertTasks(rows)
}

// FindByDueDateAfter returns the tasks due strictly after date.
func (t *Task) FindByDueDateAfter(ctx context.Context, date internal.Date) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindByDueDateAfter").End()

	rows, err := t.q.SelectTasksDueAfter(ctx, newDate(&date))
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select tasks due after")
	}

	return convertTasks(rows)
}

// FindByPriorityAndDueDate ...
func (t *Task) FindByPriorityAndDueDate(ctx context.Context, priority internal.Priority, date internal.Date) ([]internal.Task, error) {
	defer newOTELSpan(ctx, "Task.FindByPriorityAndDueDate").End()

	rows, err := t.q.SelectTasksByPriorityAndDueDate(ctx, db.SelectTasksByPriorityAndDueDateParams{
		Priority: newPriority(priority),
		DueDate:  newDate(&date),
	})
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "select tasks by priority and due date")
	}

	return convertTasks(rows)
}

// Save inserts the task when its ID is zero, otherwise all fields of the record with the same ID are
// overwritten. The boolean is false when no record has that ID, nothing is written in that case.
func (t *Task) Save(ctx context.Context, task internal.Task) (internal.Task, bool, error) {
	defer newOTELSpan(ctx, "Task.Save").End()

	if task.ID == 0 {
		id, err := t.q.InsertTask(ctx, db.InsertTaskParams{
			Title:       task.Title,
			Description: newText(task.Description),
			Completed:   task.Completed,
			Priority:    newPriority(task.Priority),
			DueDate:     newDate(task.DueDate),
		})
		if err != nil {
			return internal.Task{}, false, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "insert task")
		}

		task.ID = id

		return task, true, nil
	}

	n, err := t.q.UpdateTask(ctx, db.UpdateTaskParams{
		ID:          task.ID,
		Title:       task.Title,
		Description: newText(task.Description),
		Completed:   task.Completed,
		Priority:    newPriority(task.Priority),
		DueDate:     newDate(task.DueDate),
	})
	if err != nil {
		return internal.Task{}, false, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "update task")
	}

	return task, n > 0, nil
}

// DeleteByID removes the task, deleting a missing id is a no-op.
func (t *Task) DeleteByID(ctx context.Context, id int64) error {
	defer newOTELSpan(ctx, "Task.DeleteByID").End()

	if _, err := t.q.DeleteTask(ctx, id); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "delete task")
	}

	return nil
}
