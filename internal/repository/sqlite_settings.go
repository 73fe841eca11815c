package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/pomo/internal/db"
	"github.com/alexanderramin/pomo/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo using a SQLite database.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) GetByUser(ctx context.Context, userID string) (*domain.Settings, error) {
	query := `SELECT user_id, work_duration, break_duration, long_break_duration,
		sessions_before_long_break, auto_start_breaks, auto_start_pomodoros
		FROM settings WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var s domain.Settings
	var autoBreaks, autoPomodoros int
	err := row.Scan(
		&s.UserID,
		&s.WorkDuration,
		&s.BreakDuration,
		&s.LongBreakDuration,
		&s.SessionsBeforeLongBreak,
		&autoBreaks,
		&autoPomodoros,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	s.AutoStartBreaks = intToBool(autoBreaks)
	s.AutoStartPomodoros = intToBool(autoPomodoros)
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	query := `INSERT OR REPLACE INTO settings (user_id, work_duration, break_duration,
		long_break_duration, sessions_before_long_break, auto_start_breaks, auto_start_pomodoros)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.UserID,
		s.WorkDuration,
		s.BreakDuration,
		s.LongBreakDuration,
		s.SessionsBeforeLongBreak,
		boolToInt(s.AutoStartBreaks),
		boolToInt(s.AutoStartPomodoros),
	)
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
