package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/sanLimbu/task-tracker/internal"
)

const otelName = "github.com/sanLimbu/task-tracker/internal/rest"

// TaskService defines the Task Operations used by the HTTP handlers.
type TaskService interface {
	All(ctx context.Context) ([]internal.Task, error)
	Task(ctx context.Context, id int64) (internal.Task, bool, error)
	ByPriority(ctx context.Context, priority internal.Priority) ([]internal.Task, error)
	ByCompleted(ctx context.Context, completed bool) ([]internal.Task, error)
	ByPriorityAndCompleted(ctx context.Context, priority internal.Priority, completed bool) ([]internal.Task, error)
	ByDueDate(ctx context.Context, date internal.Date) ([]internal.Task, error)
	DueBefore(ctx context.Context, date internal.Date) ([]internal.Task, error)
	DueAfter(ctx context.Context, date internal.Date) ([]internal.Task, error)
	ByPriorityAndDueDate(ctx context.Context, priority internal.Priority, date internal.Date) ([]internal.Task, error)
	Create(ctx context.Context, task internal.Task) (internal.Task, error)
	Update(ctx context.Context, task internal.Task) (internal.Task, bool, error)
	Delete(ctx context.Context, id int64) error
	MarkCompleted(ctx context.Context, id int64) (internal.Task, bool, error)
	MarkNotCompleted(ctx context.Context, id int64) (internal.Task, bool, error)
	UpdatePriority(ctx context.Context, id int64, priority internal.Priority) (internal.Task, bool, error)
	UpdateDueDate(ctx context.Context, id int64, date internal.Date) (internal.Task, bool, error)
}

// TaskHandler ...
type TaskHandler struct {
	svc TaskService
}

// NewTaskHandler ...
func NewTaskHandler(svc TaskService) *TaskHandler {
	return &TaskHandler{
		svc: svc,
	}
}

// Register connects the handlers to the router.
func (t *TaskHandler) Register(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", t.all)
		r.Post("/", t.create)

		r.Get("/priority/{priority}", t.byPriority)
		r.Get("/priority/{priority}/status/{completed}", t.byPriorityAndCompleted)
		r.Get("/priority/{priority}/due-date/{date}", t.byPriorityAndDueDate)
		r.Get("/status/{completed}", t.byCompleted)
		r.Get("/due-date/{date}", t.byDueDate)
		r.Get("/due-before/{date}", t.dueBefore)
		r.Get("/due-after/{date}", t.dueAfter)

		r.Get("/{id}", t.task)
		r.Put("/{id}", t.update)
		r.Delete("/{id}", t.delete)

		r.Patch("/{id}/complete", t.markCompleted)
		r.Patch("/{id}/incomplete", t.markNotCompleted)
		r.Patch("/{id}/priority/{priority}", t.updatePriority)
		r.Patch("/{id}/due-date", t.updateDueDate)
	})
}

// Task is an activity that needs to be completed, optionally by a due date.
type Task struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Completed   bool              `json:"completed"`
	Priority    internal.Priority `json:"priority"`
	DueDate     *internal.Date    `json:"dueDate"`
}

// TaskRequest defines the body used for creating and updating tasks. The id, if any, is ignored.
type TaskRequest struct {
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Completed   bool              `json:"completed"`
	Priority    internal.Priority `json:"priority"`
	DueDate     *internal.Date    `json:"dueDate"`
}

func newTask(task internal.Task) Task {
	return Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
	}
}

func newTasks(tasks []internal.Task) []Task {
	res := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		res = append(res, newTask(task))
	}

	return res
}

func decodeTaskRequest(r *http.Request) (internal.Task, error) {
	req := TaskRequest{Priority: internal.PriorityMedium}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return internal.Task{}, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "json decoder")
	}
	defer r.Body.Close()

	return internal.Task{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}, nil
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "invalid id")
	}

	return id, nil
}

func priorityParam(r *http.Request) (internal.Priority, error) {
	return internal.ParsePriority(chi.URLParam(r, "priority"))
}

func completedParam(r *http.Request) (bool, error) {
	completed, err := strconv.ParseBool(chi.URLParam(r, "completed"))
	if err != nil {
		return false, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "invalid status")
	}

	return completed, nil
}

func dateParam(r *http.Request) (internal.Date, error) {
	return internal.ParseDate(chi.URLParam(r, "date"))
}

func notFound(id int64) error {
	return internal.NewErrorf(internal.ErrorCodeNotFound, "task %d not found", id)
}

func (t *TaskHandler) renderTasks(w http.ResponseWriter, r *http.Request, tasks []internal.Task, err error) {
	if err != nil {
		renderErrorResponse(w, r, "find failed", err)
		return
	}

	renderResponse(w, r, newTasks(tasks), http.StatusOK)
}

func (t *TaskHandler) renderTask(w http.ResponseWriter, r *http.Request, msg string, id int64, task internal.Task, ok bool, err error) {
	if err != nil {
		renderErrorResponse(w, r, msg, err)
		return
	}

	if !ok {
		renderErrorResponse(w, r, "task not found", notFound(id))
		return
	}

	renderResponse(w, r, newTask(task), http.StatusOK)
}

func (t *TaskHandler) all(w http.ResponseWriter, r *http.Request) {
	tasks, err := t.svc.All(r.Context())
	t.renderTasks(w, r, tasks, err)
}

func (t *TaskHandler) task(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid request", err)
		return
	}

	task, ok, err := t.svc.Task(r.Context(), id)
	if err != nil {
		renderErrorResponse(w, r, "find failed", err)
		return
	}

	if !ok {
		renderErrorResponse(w, r, "task not found", notFound(id))
		return
	}

	renderResponse(w, r, newTask(task), http.StatusOK)
}

func (t *TaskHandler) byPriority(w http.ResponseWriter, r *http.Request) {
	priority, err := priorityParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid priority", err)
		return
	}

	tasks, err := t.svc.ByPriority(r.Context(), priority)
	t.renderTasks(w, r, tasks, err)
}

func (t *TaskHandler) byCompleted(w http.ResponseWriter, r *http.Request) {
	completed, err := completedParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid status", err)
		return
	}

	tasks, err := t.svc.ByCompleted(r.Context(), completed)
	t.renderTasks(w, r, tasks, err)
}

func (t *TaskHandler) byPriorityAndCompleted(w http.ResponseWriter, r *http.Request) {
	priority, err := priorityParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid priority", err)
		return
	}

	completed, err := completedParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid status", err)
		return
	}

	tasks, err := t.svc.ByPriorityAndCompleted(r.Context(), priority, completed)
	t.renderTasks(w, r, tasks, err)
}

func (t *TaskHandler) byDueDate(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid date", err)
		return
	}

	tasks, err := t.svc.ByDueDate(r.Context(), date)
	t.renderTasks(w, r, tasks, err)
}

func (t *TaskHandler) dueBefore(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid date", err)
		return
	}

	tasks, err := t.svc.DueBefore(r.Context(), date)
	t.renderTasks(w, r, tasks, err)
}

func (t *TaskHandler) dueAfter(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid date", err)
		return
	}

	tasks, err := t.svc.DueAfter(r.Context(), date)
	t.renderTasks(w, r, tasks, err)
}

func (t *TaskHandler) byPriorityAndDueDate(w http.ResponseWriter, r *http.Request) {
	priority, err := priorityParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid priority", err)
		return
	}

	date, err := dateParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid date", err)
		return
	}

	tasks, err := t.svc.ByPriorityAndDueDate(r.Context(), priority, date)
	t.renderTasks(w, r, tasks, err)
}

func (t *TaskHandler) create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeTaskRequest(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid request", err)
		return
	}

	task, err := t.svc.Create(r.Context(), req)
	if err != nil {
		renderErrorResponse(w, r, "create failed", err)
		return
	}

	renderResponse(w, r, newTask(task), http.StatusCreated)
}

func (t *TaskHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid request", err)
		return
	}

	req, err := decodeTaskRequest(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid request", err)
		return
	}

	_, ok, err := t.svc.Task(r.Context(), id)
	if err != nil {
		renderErrorResponse(w, r, "find failed", err)
		return
	}

	if !ok {
		renderErrorResponse(w, r, "task not found", notFound(id))
		return
	}

	req.ID = id

	task, ok, err := t.svc.Update(r.Context(), req)
	t.renderTask(w, r, "update failed", id, task, ok, err)
}

func (t *TaskHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid request", err)
		return
	}

	_, ok, err := t.svc.Task(r.Context(), id)
	if err != nil {
		renderErrorResponse(w, r, "find failed", err)
		return
	}

	if !ok {
		renderErrorResponse(w, r, "task not found", notFound(id))
		return
	}

	if err := t.svc.Delete(r.Context(), id); err != nil {
		renderErrorResponse(w, r, "delete failed", err)
		return
	}

	render.NoContent(w, r)
}

func (t *TaskHandler) markCompleted(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid request", err)
		return
	}

	task, ok, err := t.svc.MarkCompleted(r.Context(), id)
	t.renderTask(w, r, "mark completed failed", id, task, ok, err)
}

func (t *TaskHandler) markNotCompleted(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid request", err)
		return
	}

	task, ok, err := t.svc.MarkNotCompleted(r.Context(), id)
	t.renderTask(w, r, "mark not completed failed", id, task, ok, err)
}

func (t *TaskHandler) updatePriority(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid request", err)
		return
	}

	priority, err := priorityParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid priority", err)
		return
	}

	task, ok, err := t.svc.UpdatePriority(r.Context(), id, priority)
	t.renderTask(w, r, "update priority failed", id, task, ok, err)
}

func (t *TaskHandler) updateDueDate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		renderErrorResponse(w, r, "invalid request", err)
		return
	}

	value := r.URL.Query().Get("dueDate")
	if value == "" {
		renderErrorResponse(w, r, "invalid date",
			internal.NewErrorf(internal.ErrorCodeInvalidArgument, "missing dueDate"))
		return
	}

	date, err := internal.ParseDate(value)
	if err != nil {
		renderErrorResponse(w, r, "invalid date", err)
		return
	}

	task, ok, err := t.svc.UpdateDueDate(r.Context(), id, date)
	t.renderTask(w, r, "update due date failed", id, task, ok, err)
}
