package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/repository"
	"github.com/alexanderramin/pomo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService(t *testing.T) SettingsService {
	t.Helper()
	database := testutil.NewTestDB(t)
	settings := repository.NewSQLiteSettingsRepo(database)
	return NewSettingsService(settings, testutil.NewTestUoW(database))
}

func intPtr(i int) *int { return &i }

func TestSettingsService_GetFallsBackToDefaults(t *testing.T) {
	svc := newSettingsService(t)

	got, err := svc.Get(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings("never-saved"), *got)
}

func TestSettingsService_GetSeededUser(t *testing.T) {
	svc := newSettingsService(t)

	got, err := svc.Get(context.Background(), testutil.TestUser)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWorkDuration, got.WorkDuration)
	assert.Equal(t, domain.DefaultSessionsBeforeLongBreak, got.SessionsBeforeLongBreak)
}

func TestSettingsService_UpdatePersistsPatch(t *testing.T) {
	svc := newSettingsService(t)
	ctx := context.Background()

	updated, err := svc.Update(ctx, testutil.TestUser, domain.SettingsPatch{
		WorkDuration:    intPtr(3000),
		AutoStartBreaks: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, 3000, updated.WorkDuration)
	assert.False(t, updated.AutoStartBreaks)
	assert.Equal(t, domain.DefaultBreakDuration, updated.BreakDuration, "untouched fields keep their values")

	reloaded, err := svc.Get(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Equal(t, *updated, *reloaded)
}

func TestSettingsService_UpdateCreatesRowForNewUser(t *testing.T) {
	svc := newSettingsService(t)
	ctx := context.Background()

	updated, err := svc.Update(ctx, "fresh-user", domain.SettingsPatch{WorkDuration: intPtr(600)})
	require.NoError(t, err)
	assert.Equal(t, 600, updated.WorkDuration)
	assert.Equal(t, domain.DefaultBreakDuration, updated.BreakDuration, "missing fields come from the defaults")

	reloaded, err := svc.Get(ctx, "fresh-user")
	require.NoError(t, err)
	assert.Equal(t, 600, reloaded.WorkDuration)
}

func TestSettingsService_UpdateRejectsInvalidPatch(t *testing.T) {
	svc := newSettingsService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, testutil.TestUser, domain.SettingsPatch{WorkDuration: intPtr(0)})
	require.Error(t, err)

	reloaded, err := svc.Get(ctx, testutil.TestUser)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWorkDuration, reloaded.WorkDuration, "a rejected patch changes nothing")
}
