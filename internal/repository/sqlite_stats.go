package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/pomo/internal/db"
	"github.com/alexanderramin/pomo/internal/domain"
)

// SQLiteStatsRepo implements StatsRepo using a SQLite database. Counters are
// moved by UPSERT increments so a day's row springs into existence with a
// zero baseline on first touch.
type SQLiteStatsRepo struct {
	db db.DBTX
}

// NewSQLiteStatsRepo creates a new SQLiteStatsRepo.
func NewSQLiteStatsRepo(conn db.DBTX) *SQLiteStatsRepo {
	return &SQLiteStatsRepo{db: conn}
}

func (r *SQLiteStatsRepo) Get(ctx context.Context, userID, date string) (*domain.DailyStats, error) {
	query := `SELECT user_id, date, completed_pomodoros, total_focus_time, tasks_completed
		FROM daily_stats WHERE user_id = ? AND date = ?`
	row := r.db.QueryRowContext(ctx, query, userID, date)

	var s domain.DailyStats
	err := row.Scan(&s.UserID, &s.Date, &s.CompletedPomodoros, &s.TotalFocusTime, &s.TasksCompleted)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("daily stats: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning daily stats: %w", err)
	}
	return &s, nil
}

func (r *SQLiteStatsRepo) IncrementFocus(ctx context.Context, userID, date string, durationSeconds int) error {
	query := `INSERT INTO daily_stats (user_id, date, completed_pomodoros, total_focus_time)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(user_id, date) DO UPDATE
		SET completed_pomodoros = completed_pomodoros + 1,
		    total_focus_time = total_focus_time + excluded.total_focus_time`
	if _, err := r.db.ExecContext(ctx, query, userID, date, durationSeconds); err != nil {
		return fmt.Errorf("incrementing focus stats: %w", err)
	}
	return nil
}

func (r *SQLiteStatsRepo) IncrementTasksCompleted(ctx context.Context, userID, date string) error {
	query := `INSERT INTO daily_stats (user_id, date, tasks_completed)
		VALUES (?, ?, 1)
		ON CONFLICT(user_id, date) DO UPDATE
		SET tasks_completed = tasks_completed + 1`
	if _, err := r.db.ExecContext(ctx, query, userID, date); err != nil {
		return fmt.Errorf("incrementing task stats: %w", err)
	}
	return nil
}
