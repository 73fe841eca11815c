package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pomo/internal/db"
	"github.com/alexanderramin/pomo/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.PomodoroSession) error {
	query := `INSERT INTO sessions (id, user_id, type, duration, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		string(s.Type),
		s.Duration,
		s.StartedAt.Format(time.RFC3339),
		nullableTimeToString(s.EndedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.PomodoroSession, error) {
	query := `SELECT id, user_id, type, duration, started_at, ended_at
		FROM sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) ListByUser(ctx context.Context, userID string) ([]*domain.PomodoroSession, error) {
	query := `SELECT id, user_id, type, duration, started_at, ended_at
		FROM sessions WHERE user_id = ? ORDER BY started_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListByDate(ctx context.Context, userID, date string) ([]*domain.PomodoroSession, error) {
	query := `SELECT id, user_id, type, duration, started_at, ended_at
		FROM sessions
		WHERE user_id = ? AND date(started_at) = ?
		ORDER BY started_at`
	rows, err := r.db.QueryContext(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by date: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListRecent(ctx context.Context, userID string, days int) ([]*domain.PomodoroSession, error) {
	query := `SELECT id, user_id, type, duration, started_at, ended_at
		FROM sessions
		WHERE user_id = ? AND started_at >= date('now', ? || ' days')
		ORDER BY started_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

// Close sets ended_at only when the session is still open. The WHERE guard
// makes double-close a detectable no-op instead of an overwrite.
func (r *SQLiteSessionRepo) Close(ctx context.Context, id string, endedAt time.Time) (bool, error) {
	query := `UPDATE sessions SET ended_at = ? WHERE id = ? AND ended_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, endedAt.Format(time.RFC3339), id)
	if err != nil {
		return false, fmt.Errorf("closing session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking session close: %w", err)
	}
	return affected == 1, nil
}

func (r *SQLiteSessionRepo) FindOpen(ctx context.Context, userID string) (*domain.PomodoroSession, error) {
	query := `SELECT id, user_id, type, duration, started_at, ended_at
		FROM sessions
		WHERE user_id = ? AND ended_at IS NULL
		ORDER BY started_at DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, userID)
	return r.scanSession(row)
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.PomodoroSession, error) {
	var s domain.PomodoroSession
	var typ, startedAtStr string
	var endedAt sql.NullString

	err := row.Scan(&s.ID, &s.UserID, &typ, &s.Duration, &startedAtStr, &endedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	return r.populateSession(&s, typ, startedAtStr, endedAt)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.PomodoroSession, error) {
	var sessions []*domain.PomodoroSession
	for rows.Next() {
		var s domain.PomodoroSession
		var typ, startedAtStr string
		var endedAt sql.NullString

		if err := rows.Scan(&s.ID, &s.UserID, &typ, &s.Duration, &startedAtStr, &endedAt); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, typ, startedAtStr, endedAt)
		if parseErr != nil {
			return nil, parseErr
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields after scanning raw strings.
func (r *SQLiteSessionRepo) populateSession(s *domain.PomodoroSession, typ, startedAtStr string, endedAt sql.NullString) (*domain.PomodoroSession, error) {
	s.Type = domain.SessionType(typ)

	var parseErr error
	s.StartedAt, parseErr = time.Parse(time.RFC3339, startedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing started_at: %w", parseErr)
	}
	s.EndedAt = parseNullableTime(endedAt, time.RFC3339)

	return s, nil
}
