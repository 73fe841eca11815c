package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/repository"
	"github.com/alexanderramin/pomo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsService(t *testing.T) (StatsService, repository.StatsRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	stats := repository.NewSQLiteStatsRepo(database)
	return NewStatsService(stats), stats
}

func TestStatsService_EmptyDayIsZero(t *testing.T) {
	svc, _ := newStatsService(t)

	day, err := svc.GetDaily(context.Background(), testutil.TestUser, "2026-08-27")
	require.NoError(t, err)
	assert.Equal(t, domain.ZeroDailyStats(testutil.TestUser, "2026-08-27"), *day)
}

func TestStatsService_ReflectsIncrements(t *testing.T) {
	svc, stats := newStatsService(t)
	ctx := context.Background()
	date := "2026-08-27"

	require.NoError(t, stats.IncrementFocus(ctx, testutil.TestUser, date, 1500))
	require.NoError(t, stats.IncrementFocus(ctx, testutil.TestUser, date, 1500))
	require.NoError(t, stats.IncrementTasksCompleted(ctx, testutil.TestUser, date))

	day, err := svc.GetDaily(ctx, testutil.TestUser, date)
	require.NoError(t, err)
	assert.Equal(t, 2, day.CompletedPomodoros)
	assert.Equal(t, 3000, day.TotalFocusTime)
	assert.Equal(t, 1, day.TasksCompleted)
}

func TestStatsService_Today(t *testing.T) {
	svc, stats := newStatsService(t)
	ctx := context.Background()

	require.NoError(t, stats.IncrementFocus(ctx, testutil.TestUser, domain.DayKey(time.Now()), 1500))

	day, err := svc.Today(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Equal(t, 1, day.CompletedPomodoros)
}

func TestStatsService_DaysAreIsolated(t *testing.T) {
	svc, stats := newStatsService(t)
	ctx := context.Background()

	require.NoError(t, stats.IncrementFocus(ctx, testutil.TestUser, "2026-08-26", 1500))

	day, err := svc.GetDaily(ctx, testutil.TestUser, "2026-08-27")
	require.NoError(t, err)
	assert.Equal(t, 0, day.CompletedPomodoros, "yesterday's work stays on yesterday")
}
