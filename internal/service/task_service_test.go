package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/repository"
	"github.com/alexanderramin/pomo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskService(t *testing.T) (TaskService, repository.StatsRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)
	stats := repository.NewSQLiteStatsRepo(database)
	return NewTaskService(tasks, testutil.NewTestUoW(database)), stats
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestTaskService_Create(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, testutil.TestUser, "  Write report  ")
	require.NoError(t, err)
	assert.Equal(t, "Write report", task.Title, "titles are trimmed")
	assert.False(t, task.Completed)
	assert.NotEmpty(t, task.ID)

	stored, err := svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.Title, stored.Title)
}

func TestTaskService_CreateRejectsEmptyTitle(t *testing.T) {
	svc, _ := newTaskService(t)

	_, err := svc.Create(context.Background(), testutil.TestUser, "   ")
	assert.Error(t, err)
}

func TestTaskService_CompletingTaskCreditsStats(t *testing.T) {
	svc, stats := newTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, testutil.TestUser, "Write report")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, task.ID, domain.TaskPatch{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	day, err := stats.Get(ctx, testutil.TestUser, domain.DayKey(time.Now()))
	require.NoError(t, err)
	assert.Equal(t, 1, day.TasksCompleted)
	assert.Equal(t, 0, day.CompletedPomodoros)
}

func TestTaskService_UncheckingKeepsCredit(t *testing.T) {
	svc, stats := newTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, testutil.TestUser, "Write report")
	require.NoError(t, err)

	_, err = svc.Update(ctx, task.ID, domain.TaskPatch{Completed: boolPtr(true)})
	require.NoError(t, err)
	_, err = svc.Update(ctx, task.ID, domain.TaskPatch{Completed: boolPtr(false)})
	require.NoError(t, err)

	day, err := stats.Get(ctx, testutil.TestUser, domain.DayKey(time.Now()))
	require.NoError(t, err)
	assert.Equal(t, 1, day.TasksCompleted, "unchecking never decrements the counter")
}

func TestTaskService_RecompletingIsIgnoredWhileCompleted(t *testing.T) {
	svc, stats := newTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, testutil.TestUser, "Write report")
	require.NoError(t, err)

	_, err = svc.Update(ctx, task.ID, domain.TaskPatch{Completed: boolPtr(true)})
	require.NoError(t, err)
	_, err = svc.Update(ctx, task.ID, domain.TaskPatch{Completed: boolPtr(true)})
	require.NoError(t, err)

	day, err := stats.Get(ctx, testutil.TestUser, domain.DayKey(time.Now()))
	require.NoError(t, err)
	assert.Equal(t, 1, day.TasksCompleted, "only the open-to-completed edge counts")
}

func TestTaskService_UpdateTitle(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, testutil.TestUser, "Write report")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, task.ID, domain.TaskPatch{Title: strPtr("Review report")})
	require.NoError(t, err)
	assert.Equal(t, "Review report", updated.Title)
	assert.False(t, updated.Completed)

	_, err = svc.Update(ctx, task.ID, domain.TaskPatch{Title: strPtr("  ")})
	assert.Error(t, err, "a patch cannot blank the title")
}

func TestTaskService_UpdateUnknownTask(t *testing.T) {
	svc, _ := newTaskService(t)

	_, err := svc.Update(context.Background(), "no-such-task", domain.TaskPatch{Completed: boolPtr(true)})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskService_Delete(t *testing.T) {
	svc, _ := newTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, testutil.TestUser, "Write report")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, task.ID))
	_, err = svc.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, task.ID), repository.ErrNotFound)
}

// A failure on the stats write rolls the task update back with it.
func TestTaskService_CompleteRollsBackOnStatsFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	svc := NewTaskService(tasks, testutil.NewTestUoW(database))
	task, err := svc.Create(ctx, testutil.TestUser, "Write report")
	require.NoError(t, err)

	// Exec #1 is the task update, exec #2 the stats increment.
	failing := NewTaskService(tasks, &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 2,
		Err:    errors.New("stats write failed"),
	})

	_, err = failing.Update(ctx, task.ID, domain.TaskPatch{Completed: boolPtr(true)})
	require.Error(t, err)

	stored, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, stored.Completed, "the completion must roll back with the stats write")
}
