package testutil

import (
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/google/uuid"
)

// TestUser is the user id shared by fixtures unless overridden.
const TestUser = "local"

// Task options
type TaskOption func(*domain.Task)

func WithTaskUser(userID string) TaskOption {
	return func(t *domain.Task) {
		t.UserID = userID
	}
}

func WithCompleted(done bool) TaskOption {
	return func(t *domain.Task) {
		t.Completed = done
	}
}

func WithCreatedAt(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedAt = at
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        uuid.New().String(),
		UserID:    TestUser,
		Title:     title,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Session options
type SessionOption func(*domain.PomodoroSession)

func WithSessionUser(userID string) SessionOption {
	return func(s *domain.PomodoroSession) {
		s.UserID = userID
	}
}

func WithStartedAt(at time.Time) SessionOption {
	return func(s *domain.PomodoroSession) {
		s.StartedAt = at
	}
}

func WithEndedAt(at time.Time) SessionOption {
	return func(s *domain.PomodoroSession) {
		s.EndedAt = &at
	}
}

func NewTestSession(typ domain.SessionType, durationSeconds int, opts ...SessionOption) *domain.PomodoroSession {
	s := &domain.PomodoroSession{
		ID:        uuid.New().String(),
		UserID:    TestUser,
		Type:      typ,
		Duration:  durationSeconds,
		StartedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Settings options
type SettingsOption func(*domain.Settings)

func WithDurations(work, brk, longBrk int) SettingsOption {
	return func(s *domain.Settings) {
		s.WorkDuration = work
		s.BreakDuration = brk
		s.LongBreakDuration = longBrk
	}
}

func WithCadence(sessionsBeforeLongBreak int) SettingsOption {
	return func(s *domain.Settings) {
		s.SessionsBeforeLongBreak = sessionsBeforeLongBreak
	}
}

func WithAutoStart(breaks, pomodoros bool) SettingsOption {
	return func(s *domain.Settings) {
		s.AutoStartBreaks = breaks
		s.AutoStartPomodoros = pomodoros
	}
}

func NewTestSettings(opts ...SettingsOption) domain.Settings {
	s := domain.DefaultSettings(TestUser)
	s.AutoStartBreaks = false
	s.AutoStartPomodoros = false
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
