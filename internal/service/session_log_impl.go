package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pomo/internal/db"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/repository"
	"github.com/google/uuid"
)

type sessionLogService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSessionLogService(sessions repository.SessionRepo, uow db.UnitOfWork, observers ...UseCaseObserver) SessionLogService {
	return &sessionLogService{
		sessions: sessions,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *sessionLogService) OpenSession(ctx context.Context, userID string, typ domain.SessionType, durationSeconds int) (*domain.PomodoroSession, error) {
	if !domain.ValidSessionTypes[typ] {
		return nil, fmt.Errorf("invalid session type '%s'", typ)
	}
	if durationSeconds <= 0 {
		return nil, fmt.Errorf("session duration must be positive, got %d", durationSeconds)
	}

	session := &domain.PomodoroSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      typ,
		Duration:  durationSeconds,
		StartedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CompleteSession closes a finished session and credits the daily stats for
// work sessions, both inside one transaction. Completing an unknown or
// already-closed session is a no-op: the close guard keeps the stats
// increment at-most-once no matter how often the caller retries.
func (s *sessionLogService) CompleteSession(ctx context.Context, sessionID string, endedAt time.Time) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"session_id": sessionID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "complete-session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txStats := repository.NewSQLiteStatsRepo(tx)

		session, err := txSessions.GetByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				fields["outcome"] = "unknown_session"
				return nil
			}
			return err
		}

		closed, err := txSessions.Close(ctx, sessionID, endedAt)
		if err != nil {
			return err
		}
		if !closed {
			fields["outcome"] = "already_closed"
			return nil
		}

		if session.Type == domain.SessionWork {
			if err := txStats.IncrementFocus(ctx, session.UserID, domain.DayKey(endedAt), session.Duration); err != nil {
				return err
			}
		}
		fields["outcome"] = "completed"
		fields["type"] = string(session.Type)
		return nil
	})
}

// CloseSession ends an abandoned session without crediting any stats.
func (s *sessionLogService) CloseSession(ctx context.Context, sessionID string, endedAt time.Time) error {
	_, err := s.sessions.Close(ctx, sessionID, endedAt)
	return err
}

func (s *sessionLogService) ListByUser(ctx context.Context, userID string) ([]*domain.PomodoroSession, error) {
	return s.sessions.ListByUser(ctx, userID)
}

func (s *sessionLogService) ListByDate(ctx context.Context, userID, date string) ([]*domain.PomodoroSession, error) {
	return s.sessions.ListByDate(ctx, userID, date)
}

func (s *sessionLogService) ListRecent(ctx context.Context, userID string, days int) ([]*domain.PomodoroSession, error) {
	return s.sessions.ListRecent(ctx, userID, days)
}

// CloseStale closes a session a previous process left open, e.g. after a
// crash or a kill mid-countdown. It never credits stats: there is no way to
// know how much of the countdown actually ran.
func (s *sessionLogService) CloseStale(ctx context.Context, userID string) error {
	for {
		open, err := s.sessions.FindOpen(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			return err
		}
		if _, err := s.sessions.Close(ctx, open.ID, time.Now().UTC()); err != nil {
			return err
		}
	}
}
