package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.PomodoroSession) error
	GetByID(ctx context.Context, id string) (*domain.PomodoroSession, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.PomodoroSession, error)
	ListByDate(ctx context.Context, userID, date string) ([]*domain.PomodoroSession, error)
	ListRecent(ctx context.Context, userID string, days int) ([]*domain.PomodoroSession, error)
	// Close sets ended_at on an open session. Reports whether the row actually
	// transitioned from open to closed; closing an already-closed or unknown
	// session reports false with no error.
	Close(ctx context.Context, id string, endedAt time.Time) (bool, error)
	FindOpen(ctx context.Context, userID string) (*domain.PomodoroSession, error)
}

type SettingsRepo interface {
	GetByUser(ctx context.Context, userID string) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}

type StatsRepo interface {
	// Get returns ErrNotFound when no row exists for (userID, date); callers
	// translate that into a zero-valued day.
	Get(ctx context.Context, userID, date string) (*domain.DailyStats, error)
	IncrementFocus(ctx context.Context, userID, date string, durationSeconds int) error
	IncrementTasksCompleted(ctx context.Context, userID, date string) error
}
