// Package storetesting contains the behaviour every service.TaskRepository implementation must satisfy.
package storetesting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanLimbu/task-tracker/internal"
	"github.com/sanLimbu/task-tracker/internal/service"
)

// NewRepositoryFunc returns an empty repository.
type NewRepositoryFunc func(t *testing.T) service.TaskRepository

// Run executes the repository behaviour tests, each subtest gets a fresh repository.
func Run(t *testing.T, newRepo NewRepositoryFunc) {
	t.Helper()

	t.Run("SaveAssignsID", func(t *testing.T) { testSaveAssignsID(t, newRepo(t)) })
	t.Run("RoundTrip", func(t *testing.T) { testRoundTrip(t, newRepo(t)) })
	t.Run("IDImmutable", func(t *testing.T) { testIDImmutable(t, newRepo(t)) })
	t.Run("SaveMissingID", func(t *testing.T) { testSaveMissingID(t, newRepo(t)) })
	t.Run("DeleteByID", func(t *testing.T) { testDeleteByID(t, newRepo(t)) })
	t.Run("FindByPriorityAndCompleted", func(t *testing.T) { testFindByPriorityAndCompleted(t, newRepo(t)) })
	t.Run("FindByDueDate", func(t *testing.T) { testFindByDueDate(t, newRepo(t)) })
}

func ptr[T any](v T) *T {
	return &v
}

func save(t *testing.T, repo service.TaskRepository, task internal.Task) internal.Task {
	t.Helper()

	res, ok, err := repo.Save(context.Background(), task)
	require.NoError(t, err)
	require.True(t, ok)

	return res
}

func titles(tasks []internal.Task) []string {
	res := make([]string, 0, len(tasks))
	for _, task := range tasks {
		res = append(res, task.Title)
	}

	return res
}

func testSaveAssignsID(t *testing.T, repo service.TaskRepository) {
	first := save(t, repo, internal.NewTask("first", nil))
	second := save(t, repo, internal.NewTask("second", nil))

	assert.NotZero(t, first.ID)
	assert.NotZero(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, titles(all))
}

func testRoundTrip(t *testing.T, repo service.TaskRepository) {
	ctx := context.Background()

	due := internal.Date{Year: 2025, Month: time.March, Day: 14}
	want := internal.NewTaskDue("round trip", ptr("all the fields"), internal.PriorityHigh, &due)
	want.Completed = true

	created := save(t, repo, want)

	got, ok, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)

	want.ID = created.ID
	assert.Equal(t, want, got)

	bare := save(t, repo, internal.NewTask("bare", nil))

	got, ok, err = repo.FindByID(ctx, bare.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.DueDate)
	assert.False(t, got.Completed)
	assert.Equal(t, internal.PriorityMedium, got.Priority)

	_, ok, err = repo.FindByID(ctx, created.ID+bare.ID+1000)
	require.NoError(t, err)
	assert.False(t, ok)
}

func testIDImmutable(t *testing.T, repo service.TaskRepository) {
	ctx := context.Background()

	created := save(t, repo, internal.NewTask("before", nil))

	created.Title = "after"
	created.Completed = true
	created.Description = ptr("changed")

	updated := save(t, repo, created)
	assert.Equal(t, created.ID, updated.ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])

	// Overwrites are full, clearing optional fields included.
	created.Description = nil
	save(t, repo, created)

	got, ok, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, got.Description)
}

func testSaveMissingID(t *testing.T, repo service.TaskRepository) {
	ctx := context.Background()

	missing := internal.NewTask("ghost", nil)
	missing.ID = 999

	_, ok, err := repo.Save(ctx, missing)
	require.NoError(t, err)
	assert.False(t, ok)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func testDeleteByID(t *testing.T, repo service.TaskRepository) {
	ctx := context.Background()

	keep := save(t, repo, internal.NewTask("keep", nil))
	remove := save(t, repo, internal.NewTask("remove", nil))

	require.NoError(t, repo.DeleteByID(ctx, remove.ID))
	require.NoError(t, repo.DeleteByID(ctx, remove.ID))

	_, ok, err := repo.FindByID(ctx, remove.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = repo.FindByID(ctx, keep.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func testFindByPriorityAndCompleted(t *testing.T, repo service.TaskRepository) {
	ctx := context.Background()

	for _, fixture := range []struct {
		title     string
		priority  internal.Priority
		completed bool
	}{
		{"High Priority Incomplete", internal.PriorityHigh, false},
		{"Medium Priority Complete", internal.PriorityMedium, true},
		{"Low Priority Incomplete", internal.PriorityLow, false},
		{"Low Priority Complete", internal.PriorityLow, true},
	} {
		task := internal.NewTaskDue(fixture.title, nil, fixture.priority, nil)
		task.Completed = fixture.completed
		save(t, repo, task)
	}

	res, err := repo.FindByPriorityAndCompleted(ctx, internal.PriorityHigh, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"High Priority Incomplete"}, titles(res))

	res, err = repo.FindByPriorityAndCompleted(ctx, internal.PriorityLow, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Low Priority Complete"}, titles(res))

	res, err = repo.FindByPriorityAndCompleted(ctx, internal.PriorityHigh, true)
	require.NoError(t, err)
	assert.Empty(t, res)

	res, err = repo.FindByPriority(ctx, internal.PriorityLow)
	require.NoError(t, err)
	assert.Equal(t, []string{"Low Priority Incomplete", "Low Priority Complete"}, titles(res))

	res, err = repo.FindByCompleted(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Medium Priority Complete", "Low Priority Complete"}, titles(res))
}

func testFindByDueDate(t *testing.T, repo service.TaskRepository) {
	ctx := context.Background()

	today := internal.DateOf(time.Now())
	yesterday := today.AddDays(-1)
	tomorrow := today.AddDays(1)

	save(t, repo, internal.NewTaskDue("Yesterday Task", nil, internal.PriorityLow, &yesterday))
	save(t, repo, internal.NewTaskDue("Today Task", nil, internal.PriorityHigh, &today))
	save(t, repo, internal.NewTaskDue("Tomorrow Task", nil, internal.PriorityHigh, &tomorrow))
	save(t, repo, internal.NewTask("No Due Date", nil))

	res, err := repo.FindByDueDateBefore(ctx, tomorrow)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Yesterday Task", "Today Task"}, titles(res))

	res, err = repo.FindByDueDateAfter(ctx, yesterday)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Today Task", "Tomorrow Task"}, titles(res))

	res, err = repo.FindByDueDate(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, []string{"Today Task"}, titles(res))

	res, err = repo.FindByPriorityAndDueDate(ctx, internal.PriorityHigh, tomorrow)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tomorrow Task"}, titles(res))

	res, err = repo.FindByPriorityAndDueDate(ctx, internal.PriorityLow, today)
	require.NoError(t, err)
	assert.Empty(t, res)
}
