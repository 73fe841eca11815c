package domain

import "time"

// PomodoroSession is one recorded countdown run. Duration is the planned
// length at creation time; EndedAt stays nil while the session is open.
type PomodoroSession struct {
	ID        string
	UserID    string
	Type      SessionType
	Duration  int
	StartedAt time.Time
	EndedAt   *time.Time
}

// Open reports whether the session has not been closed yet.
func (s *PomodoroSession) Open() bool {
	return s.EndedAt == nil
}
