package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/notify"
	"github.com/alexanderramin/pomo/internal/repository"
	"github.com/alexanderramin/pomo/internal/service"
	"github.com/alexanderramin/pomo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	taskRepo := repository.NewSQLiteTaskRepo(db)
	sessRepo := repository.NewSQLiteSessionRepo(db)
	settingsRepo := repository.NewSQLiteSettingsRepo(db)
	statsRepo := repository.NewSQLiteStatsRepo(db)
	uow := testutil.NewTestUoW(db)

	return &App{
		Tasks:    service.NewTaskService(taskRepo, uow),
		Sessions: service.NewSessionLogService(sessRepo, uow),
		Stats:    service.NewStatsService(statsRepo),
		Settings: service.NewSettingsService(settingsRepo, uow),
		UserID:   testutil.TestUser,
		Notifier: notify.Noop{},
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- task ---

func TestTaskCmd_AddAndList(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "task", "add", "Write", "quarterly", "report")
	require.NoError(t, err)
	assert.Contains(t, out, "Write quarterly report")

	out, err = executeCmd(t, app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Write quarterly report")
}

func TestTaskCmd_ToggleByPrefix(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	task, err := app.Tasks.Create(ctx, app.UserID, "Write report")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "task", "toggle", task.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Completed")

	stored, err := app.Tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, stored.Completed)

	out, err = executeCmd(t, app, "task", "toggle", task.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Reopened")
}

func TestTaskCmd_ListHidesCompletedByDefault(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	task, err := app.Tasks.Create(ctx, app.UserID, "Done already")
	require.NoError(t, err)
	done := true
	_, err = app.Tasks.Update(ctx, task.ID, domain.TaskPatch{Completed: &done})
	require.NoError(t, err)

	out, err := executeCmd(t, app, "task", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Done already")

	out, err = executeCmd(t, app, "task", "list", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Done already")
}

func TestTaskCmd_ToggleUnknownTask(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "toggle", "zzz")
	assert.Error(t, err)
}

func TestTaskCmd_Remove(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	task, err := app.Tasks.Create(ctx, app.UserID, "Ephemeral")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "task", "remove", task.ID)
	require.NoError(t, err)

	_, err = app.Tasks.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

// --- session ---

func TestSessionCmd_ListEmpty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions found")
}

func TestSessionCmd_ListByDate(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	opened, err := app.Sessions.OpenSession(ctx, app.UserID, domain.SessionWork, 1500)
	require.NoError(t, err)
	require.NoError(t, app.Sessions.CompleteSession(ctx, opened.ID, time.Now().UTC()))

	out, err := executeCmd(t, app, "session", "list", "--date", domain.DayKey(time.Now()))
	require.NoError(t, err)
	assert.Contains(t, out, "Work")

	_, err = executeCmd(t, app, "session", "list", "--date", "not-a-date")
	assert.Error(t, err)
}

// --- stats ---

func TestStatsCmd_ZeroDay(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "POMODOROS")
}

func TestStatsCmd_AfterCompletedSession(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	opened, err := app.Sessions.OpenSession(ctx, app.UserID, domain.SessionWork, 1500)
	require.NoError(t, err)
	require.NoError(t, app.Sessions.CompleteSession(ctx, opened.ID, time.Now().UTC()))

	stats, err := app.Stats.Today(ctx, app.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CompletedPomodoros)

	out, err := executeCmd(t, app, "stats", "--date", stats.Date)
	require.NoError(t, err)
	assert.Contains(t, out, "25m")
}

// --- settings ---

func TestSettingsCmd_Show(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "25m")
	assert.Contains(t, out, "4 sessions")
}

func TestSettingsCmd_SetPartial(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "settings", "set", "--work", "3000")
	require.NoError(t, err)

	settings, err := app.Settings.Get(context.Background(), app.UserID)
	require.NoError(t, err)
	assert.Equal(t, 3000, settings.WorkDuration)
	assert.Equal(t, domain.DefaultBreakDuration, settings.BreakDuration)
}

func TestSettingsCmd_SetRejectsInvalid(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "settings", "set", "--work", "0")
	assert.Error(t, err)
}

func TestSettingsCmd_SetWithoutFlags(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "settings", "set")
	assert.Error(t, err)
}
