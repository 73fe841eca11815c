package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pomo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Write weekly report")
	require.NoError(t, repo.Create(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, fetched.ID)
	assert.Equal(t, "Write weekly report", fetched.Title)
	assert.False(t, fetched.Completed)
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_ListByUser(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	t1 := testutil.NewTestTask("First", testutil.WithCreatedAt(time.Now().UTC().Add(-2*time.Hour)))
	t2 := testutil.NewTestTask("Second", testutil.WithCreatedAt(time.Now().UTC().Add(-1*time.Hour)))
	other := testutil.NewTestTask("Elsewhere", testutil.WithTaskUser("other"))
	require.NoError(t, repo.Create(ctx, t1))
	require.NoError(t, repo.Create(ctx, t2))
	require.NoError(t, repo.Create(ctx, other))

	list, err := repo.ListByUser(ctx, testutil.TestUser)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Should be ordered by created_at.
	assert.Equal(t, t1.ID, list[0].ID)
	assert.Equal(t, t2.ID, list[1].ID)
}

func TestTaskRepo_Update(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Draft")
	require.NoError(t, repo.Create(ctx, task))

	task.Title = "Draft v2"
	task.Completed = true
	require.NoError(t, repo.Update(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Draft v2", fetched.Title)
	assert.True(t, fetched.Completed)
}

func TestTaskRepo_Update_NotFound(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))

	ghost := testutil.NewTestTask("Ghost")
	err := repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_Delete(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Ephemeral")
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
