package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanLimbu/task-tracker/internal"
	"github.com/sanLimbu/task-tracker/internal/rest"
)

// fakeTaskService overrides the methods a test needs, calling any other one panics.
type fakeTaskService struct {
	rest.TaskService

	all              func(ctx context.Context) ([]internal.Task, error)
	task             func(ctx context.Context, id int64) (internal.Task, bool, error)
	create           func(ctx context.Context, task internal.Task) (internal.Task, error)
	update           func(ctx context.Context, task internal.Task) (internal.Task, bool, error)
	del              func(ctx context.Context, id int64) error
	markCompleted    func(ctx context.Context, id int64) (internal.Task, bool, error)
	updateDueDate    func(ctx context.Context, id int64, date internal.Date) (internal.Task, bool, error)
	byPriorityStatus func(ctx context.Context, priority internal.Priority, completed bool) ([]internal.Task, error)
}

func (f *fakeTaskService) All(ctx context.Context) ([]internal.Task, error) {
	return f.all(ctx)
}

func (f *fakeTaskService) Task(ctx context.Context, id int64) (internal.Task, bool, error) {
	return f.task(ctx, id)
}

func (f *fakeTaskService) Create(ctx context.Context, task internal.Task) (internal.Task, error) {
	return f.create(ctx, task)
}

func (f *fakeTaskService) Update(ctx context.Context, task internal.Task) (internal.Task, bool, error) {
	return f.update(ctx, task)
}

func (f *fakeTaskService) Delete(ctx context.Context, id int64) error {
	return f.del(ctx, id)
}

func (f *fakeTaskService) MarkCompleted(ctx context.Context, id int64) (internal.Task, bool, error) {
	return f.markCompleted(ctx, id)
}

func (f *fakeTaskService) UpdateDueDate(ctx context.Context, id int64, date internal.Date) (internal.Task, bool, error) {
	return f.updateDueDate(ctx, id, date)
}

func (f *fakeTaskService) ByPriorityAndCompleted(ctx context.Context, priority internal.Priority, completed bool) ([]internal.Task, error) {
	return f.byPriorityStatus(ctx, priority, completed)
}

func newRouter(svc rest.TaskService) http.Handler {
	router := chi.NewRouter()
	rest.NewTaskHandler(svc).Register(router)

	return router
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func absent(context.Context, int64) (internal.Task, bool, error) {
	return internal.Task{}, false, nil
}

func TestTaskHandler_Update_Missing(t *testing.T) {
	t.Parallel()

	var updated bool

	svc := &fakeTaskService{
		task: absent,
		update: func(context.Context, internal.Task) (internal.Task, bool, error) {
			updated = true
			return internal.Task{}, true, nil
		},
	}

	rec := doRequest(t, newRouter(svc), http.MethodPut, "/tasks/42", `{"title":"ghost"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, updated)
}

func TestTaskHandler_Update(t *testing.T) {
	t.Parallel()

	var received internal.Task

	svc := &fakeTaskService{
		task: func(_ context.Context, id int64) (internal.Task, bool, error) {
			return internal.Task{ID: id, Title: "old", Priority: internal.PriorityLow}, true, nil
		},
		update: func(_ context.Context, task internal.Task) (internal.Task, bool, error) {
			received = task
			return task, true, nil
		},
	}

	rec := doRequest(t, newRouter(svc), http.MethodPut, "/tasks/7", `{"id":99,"title":"new","dueDate":"2024-06-15"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(7), received.ID)
	assert.Equal(t, "new", received.Title)
	assert.Equal(t, internal.PriorityMedium, received.Priority)
	assert.Equal(t, &internal.Date{Year: 2024, Month: 6, Day: 15}, received.DueDate)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	assert.EqualValues(t, 7, body["id"])
	assert.Equal(t, "MEDIUM", body["priority"])
	assert.Equal(t, "2024-06-15", body["dueDate"])
	assert.Nil(t, body["description"])
}

func TestTaskHandler_Delete_Missing(t *testing.T) {
	t.Parallel()

	var deleted bool

	svc := &fakeTaskService{
		task: absent,
		del: func(context.Context, int64) error {
			deleted = true
			return nil
		},
	}

	rec := doRequest(t, newRouter(svc), http.MethodDelete, "/tasks/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, deleted)
}

func TestTaskHandler_Create(t *testing.T) {
	t.Parallel()

	svc := &fakeTaskService{
		create: func(_ context.Context, task internal.Task) (internal.Task, error) {
			task.ID = 1
			return task, nil
		},
	}

	rec := doRequest(t, newRouter(svc), http.MethodPost, "/tasks", `{"title":"T","description":null}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body rest.Task
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	assert.Equal(t, rest.Task{ID: 1, Title: "T", Priority: internal.PriorityMedium}, body)
}

func TestTaskHandler_MarkCompleted_Missing(t *testing.T) {
	t.Parallel()

	svc := &fakeTaskService{markCompleted: absent}

	rec := doRequest(t, newRouter(svc), http.MethodPatch, "/tasks/5/complete", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskHandler_UpdateDueDate(t *testing.T) {
	t.Parallel()

	svc := &fakeTaskService{
		updateDueDate: func(_ context.Context, id int64, date internal.Date) (internal.Task, bool, error) {
			return internal.Task{ID: id, Title: "x", Priority: internal.PriorityHigh, DueDate: &date}, true, nil
		},
	}

	rec := doRequest(t, newRouter(svc), http.MethodPatch, "/tasks/3/due-date?dueDate=2030-01-02", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body rest.Task
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	assert.Equal(t, &internal.Date{Year: 2030, Month: 1, Day: 2}, body.DueDate)
}

func TestTaskHandler_ByPriorityAndCompleted(t *testing.T) {
	t.Parallel()

	svc := &fakeTaskService{
		byPriorityStatus: func(_ context.Context, priority internal.Priority, completed bool) ([]internal.Task, error) {
			if priority == internal.PriorityHigh && !completed {
				return []internal.Task{{ID: 1, Title: "a", Priority: priority}}, nil
			}

			return nil, nil
		},
	}

	router := newRouter(svc)

	rec := doRequest(t, router, http.MethodGet, "/tasks/priority/HIGH/status/false", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []rest.Task
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tasks))
	assert.Len(t, tasks, 1)

	rec = doRequest(t, router, http.MethodGet, "/tasks/priority/HIGH/status/true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTaskHandler_BadRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{"non numeric id", http.MethodGet, "/tasks/abc", ""},
		{"lowercase priority", http.MethodGet, "/tasks/priority/high", ""},
		{"unknown priority", http.MethodGet, "/tasks/priority/URGENT/status/true", ""},
		{"invalid status", http.MethodGet, "/tasks/status/maybe", ""},
		{"invalid date", http.MethodGet, "/tasks/due-date/2024-13-01", ""},
		{"date with time", http.MethodGet, "/tasks/due-before/2024-01-01T10:00:00Z", ""},
		{"invalid date after priority", http.MethodGet, "/tasks/priority/LOW/due-date/tomorrow", ""},
		{"missing due date", http.MethodPatch, "/tasks/1/due-date", ""},
		{"invalid due date", http.MethodPatch, "/tasks/1/due-date?dueDate=01/02/2030", ""},
		{"patch priority", http.MethodPatch, "/tasks/1/priority/medium", ""},
		{"malformed body", http.MethodPost, "/tasks", `{"title":`},
		{"body priority", http.MethodPost, "/tasks", `{"title":"x","priority":"URGENT"}`},
		{"body date", http.MethodPut, "/tasks/1", `{"title":"x","dueDate":"15-06-2024"}`},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// No service method is expected to be called.
			rec := doRequest(t, newRouter(&fakeTaskService{}), tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body rest.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestTaskHandler_InternalError(t *testing.T) {
	t.Parallel()

	svc := &fakeTaskService{
		all: func(context.Context) ([]internal.Task, error) {
			return nil, errors.New("connection refused")
		},
		task: func(context.Context, int64) (internal.Task, bool, error) {
			return internal.Task{}, false, internal.WrapErrorf(errors.New("timeout"), internal.ErrorCodeUnknown, "select")
		},
	}

	router := newRouter(svc)

	for _, target := range []string{"/tasks", "/tasks/1"} {
		rec := doRequest(t, router, http.MethodGet, target, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
	}
}

func TestTaskHandler_MutationErrorMessage(t *testing.T) {
	t.Parallel()

	failed := internal.NewErrorf(internal.ErrorCodeInvalidArgument, "rejected")

	svc := &fakeTaskService{
		markCompleted: func(context.Context, int64) (internal.Task, bool, error) {
			return internal.Task{}, false, failed
		},
		updateDueDate: func(context.Context, int64, internal.Date) (internal.Task, bool, error) {
			return internal.Task{}, false, failed
		},
	}

	router := newRouter(svc)

	tests := []struct {
		target string
		want   string
	}{
		{"/tasks/1/complete", "mark completed failed"},
		{"/tasks/1/due-date?dueDate=2030-01-02", "update due date failed"},
	}

	for _, tt := range tests {
		rec := doRequest(t, router, http.MethodPatch, tt.target, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, tt.target)

		var body rest.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, tt.want, body.Error)
	}
}
