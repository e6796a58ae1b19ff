package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/sanLimbu/task-tracker/internal"
)

const otelName = "github.com/sanLimbu/task-tracker/internal/service"

// TaskRepository defines the datastore handling persisting Task records.
type TaskRepository interface {
	FindAll(ctx context.Context) ([]internal.Task, error)
	FindByID(ctx context.Context, id int64) (internal.Task, bool, error)
	FindByPriority(ctx context.Context, priority internal.Priority) ([]internal.Task, error)
	FindByCompleted(ctx context.Context, completed bool) ([]internal.Task, error)
	FindByPriorityAndCompleted(ctx context.Context, priority internal.Priority, completed bool) ([]internal.Task, error)
	FindByDueDate(ctx context.Context, date internal.Date) ([]internal.Task, error)
	FindByDueDateBefore(ctx context.Context, date internal.Date) ([]internal.Task, error)
	FindByDueDateAfter(ctx context.Context, date internal.Date) ([]internal.Task, error)
	FindByPriorityAndDueDate(ctx context.Context, priority internal.Priority, date internal.Date) ([]internal.Task, error)
	Save(ctx context.Context, task internal.Task) (internal.Task, bool, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Task defines the application service in charge of interacting with Tasks.
type Task struct {
	logger *zap.Logger
	repo   TaskRepository
}

// NewTask ...
func NewTask(logger *zap.Logger, repo TaskRepository) *Task {
	return &Task{
		logger: logger,
		repo:   repo,
	}
}

// All returns every Task.
func (t *Task) All(ctx context.Context) ([]internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.All")
	defer span.End()

	res, err := t.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo find all: %w", err)
	}

	return res, nil
}

// Task gets an existing Task from the datastore, the boolean is false when it does not exist.
func (t *Task) Task(ctx context.Context, id int64) (internal.Task, bool, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Task")
	defer span.End()

	task, ok, err := t.repo.FindByID(ctx, id)
	if err != nil {
		return internal.Task{}, false, fmt.Errorf("repo find: %w", err)
	}

	return task, ok, nil
}

// ByPriority ...
func (t *Task) ByPriority(ctx context.Context, priority internal.Priority) ([]internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.ByPriority")
	defer span.End()

	res, err := t.repo.FindByPriority(ctx, priority)
	if err != nil {
		return nil, fmt.Errorf("repo find by priority: %w", err)
	}

	return res, nil
}

// ByCompleted ...
func (t *Task) ByCompleted(ctx context.Context, completed bool) ([]internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.ByCompleted")
	defer span.End()

	res, err := t.repo.FindByCompleted(ctx, completed)
	if err != nil {
		return nil, fmt.Errorf("repo find by completed: %w", err)
	}

	return res, nil
}

// ByPriorityAndCompleted ...
func (t *Task) ByPriorityAndCompleted(ctx context.Context, priority internal.Priority, completed bool) ([]internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.ByPriorityAndCompleted")
	defer span.End()

	res, err := t.repo.FindByPriorityAndCompleted(ctx, priority, completed)
	if err != nil {
		return nil, fmt.Errorf("repo find by priority and completed: %w", err)
	}

	return res, nil
}

// ByDueDate returns the tasks due on date.
func (t *Task) ByDueDate(ctx context.Context, date internal.Date) ([]internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.ByDueDate")
	defer span.End()

	res, err := t.repo.FindByDueDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("repo find by due date: %w", err)
	}

	return res, nil
}

// DueBefore returns the tasks due strictly before date.
func (t *Task) DueBefore(ctx context.Context, date internal.Date) ([]internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.DueBefore")
	defer span.End()

	res, err := t.repo.FindByDueDateBefore(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("repo find due before: %w", err)
	}

	return res, nil
}

// DueAfter returns the tasks due strictly after date.
func (t *Task) DueAfter(ctx context.Context, date internal.Date) ([]internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.DueAfter")
	defer span.End()

	res, err := t.repo.FindByDueDateAfter(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("repo find due after: %w", err)
	}

	return res, nil
}

// ByPriorityAndDueDate ...
func (t *Task) ByPriorityAndDueDate(ctx context.Context, priority internal.Priority, date internal.Date) ([]internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.ByPriorityAndDueDate")
	defer span.End()

	res, err := t.repo.FindByPriorityAndDueDate(ctx, priority, date)
	if err != nil {
		return nil, fmt.Errorf("repo find by priority and due date: %w", err)
	}

	return res, nil
}

// Create stores a new record, the received ID is ignored and a missing priority defaults to medium.
func (t *Task) Create(ctx context.Context, task internal.Task) (internal.Task, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Create")
	defer span.End()

	task.ID = 0

	if task.Priority == 0 {
		task.Priority = internal.PriorityMedium
	}

	if err := task.Validate(); err != nil {
		return internal.Task{}, fmt.Errorf("validate: %w", err)
	}

	res, _, err := t.repo.Save(ctx, task)
	if err != nil {
		return internal.Task{}, fmt.Errorf("repo save: %w", err)
	}

	t.logger.Info("task created", zap.Int64("id", res.ID))

	return res, nil
}

// Update overwrites every field of an existing Task. Callers are expected to confirm the Task exists first,
// when it does not nothing is written and the boolean is false.
func (t *Task) Update(ctx context.Context, task internal.Task) (internal.Task, bool, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Update")
	defer span.End()

	if err := task.Validate(); err != nil {
		return internal.Task{}, false, fmt.Errorf("validate: %w", err)
	}

	res, ok, err := t.repo.Save(ctx, task)
	if err != nil {
		return internal.Task{}, false, fmt.Errorf("repo save: %w", err)
	}

	if !ok {
		t.logger.Info("update skipped, task not found", zap.Int64("id", task.ID))
	}

	return res, ok, nil
}

// Delete removes an existing Task from the datastore, deleting a missing Task is a no-op.
func (t *Task) Delete(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Task.Delete")
	defer span.End()

	if err := t.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("repo delete: %w", err)
	}

	t.logger.Info("task deleted", zap.Int64("id", id))

	return nil
}

// MarkCompleted sets the Task as completed, the boolean is false when the Task does not exist.
func (t *Task) MarkCompleted(ctx context.Context, id int64) (internal.Task, bool, error) {
	return t.mutate(ctx, "Task.MarkCompleted", id, func(task *internal.Task) {
		task.Completed = true
	})
}

// MarkNotCompleted sets the Task as not completed, the boolean is false when the Task does not exist.
func (t *Task) MarkNotCompleted(ctx context.Context, id int64) (internal.Task, bool, error) {
	return t.mutate(ctx, "Task.MarkNotCompleted", id, func(task *internal.Task) {
		task.Completed = false
	})
}

// UpdatePriority changes the priority of the Task, the boolean is false when the Task does not exist.
func (t *Task) UpdatePriority(ctx context.Context, id int64, priority internal.Priority) (internal.Task, bool, error) {
	if err := priority.Validate(); err != nil {
		return internal.Task{}, false, fmt.Errorf("validate: %w", err)
	}

	return t.mutate(ctx, "Task.UpdatePriority", id, func(task *internal.Task) {
		task.Priority = priority
	})
}

// UpdateDueDate changes the due date of the Task, the boolean is false when the Task does not exist.
func (t *Task) UpdateDueDate(ctx context.Context, id int64, date internal.Date) (internal.Task, bool, error) {
	return t.mutate(ctx, "Task.UpdateDueDate", id, func(task *internal.Task) {
		task.DueDate = &date
	})
}

// mutate loads the Task, applies fn and saves the whole record. Nothing is written when the Task does not exist.
func (t *Task) mutate(ctx context.Context, spanName string, id int64, fn func(*internal.Task)) (internal.Task, bool, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, spanName)
	defer span.End()

	task, ok, err := t.repo.FindByID(ctx, id)
	if err != nil {
		return internal.Task{}, false, fmt.Errorf("repo find: %w", err)
	}

	if !ok {
		t.logger.Info("task not found", zap.String("operation", spanName), zap.Int64("id", id))

		return internal.Task{}, false, nil
	}

	fn(&task)

	res, ok, err := t.repo.Save(ctx, task)
	if err != nil {
		return internal.Task{}, false, fmt.Errorf("repo save: %w", err)
	}

	return res, ok, nil
}
