package domain

import "time"

// DateLayout is the canonical day key format for daily stats.
const DateLayout = "2006-01-02"

// DailyStats holds one user's counters for one calendar day. Counters are
// incremented at event time and never recomputed from session history.
type DailyStats struct {
	UserID             string
	Date               string
	CompletedPomodoros int
	TotalFocusTime     int
	TasksCompleted     int
}

// ZeroDailyStats returns an empty stats record for the given day, used when
// no row exists yet. An absent day is a zero day, not an error.
func ZeroDailyStats(userID, date string) DailyStats {
	return DailyStats{UserID: userID, Date: date}
}

// DayKey formats a timestamp as the stats day key in UTC.
func DayKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
