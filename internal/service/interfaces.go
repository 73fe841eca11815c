package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
)

type TaskService interface {
	Create(ctx context.Context, userID, title string) (*domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

// SessionLogService records timer runs and answers history queries. Its
// Open/Close pair is what the timer engine drives; everything else serves
// the reporting surface.
type SessionLogService interface {
	OpenSession(ctx context.Context, userID string, typ domain.SessionType, durationSeconds int) (*domain.PomodoroSession, error)
	CompleteSession(ctx context.Context, sessionID string, endedAt time.Time) error
	CloseSession(ctx context.Context, sessionID string, endedAt time.Time) error
	ListByUser(ctx context.Context, userID string) ([]*domain.PomodoroSession, error)
	ListByDate(ctx context.Context, userID, date string) ([]*domain.PomodoroSession, error)
	ListRecent(ctx context.Context, userID string, days int) ([]*domain.PomodoroSession, error)
	// CloseStale closes any session left open by an earlier process.
	CloseStale(ctx context.Context, userID string) error
}

type StatsService interface {
	GetDaily(ctx context.Context, userID, date string) (*domain.DailyStats, error)
	Today(ctx context.Context, userID string) (*domain.DailyStats, error)
}

type SettingsService interface {
	Get(ctx context.Context, userID string) (*domain.Settings, error)
	Update(ctx context.Context, userID string, patch domain.SettingsPatch) (*domain.Settings, error)
}
