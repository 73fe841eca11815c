package domain

import "fmt"

// Default timer durations, in seconds.
const (
	DefaultWorkDuration            = 25 * 60
	DefaultBreakDuration           = 5 * 60
	DefaultLongBreakDuration       = 15 * 60
	DefaultSessionsBeforeLongBreak = 4
)

// Settings is the per-user timer configuration. Durations are seconds.
type Settings struct {
	UserID                  string
	WorkDuration            int
	BreakDuration           int
	LongBreakDuration       int
	SessionsBeforeLongBreak int
	AutoStartBreaks         bool
	AutoStartPomodoros      bool
}

// DefaultSettings returns the stock configuration for a user that has
// never saved settings.
func DefaultSettings(userID string) Settings {
	return Settings{
		UserID:                  userID,
		WorkDuration:            DefaultWorkDuration,
		BreakDuration:           DefaultBreakDuration,
		LongBreakDuration:       DefaultLongBreakDuration,
		SessionsBeforeLongBreak: DefaultSessionsBeforeLongBreak,
		AutoStartBreaks:         true,
		AutoStartPomodoros:      true,
	}
}

// Validate rejects malformed settings at the write boundary. The timer
// core assumes settings it receives have already passed this check.
func (s Settings) Validate() error {
	if s.WorkDuration <= 0 {
		return fmt.Errorf("work duration must be positive, got %d", s.WorkDuration)
	}
	if s.BreakDuration <= 0 {
		return fmt.Errorf("break duration must be positive, got %d", s.BreakDuration)
	}
	if s.LongBreakDuration <= 0 {
		return fmt.Errorf("long break duration must be positive, got %d", s.LongBreakDuration)
	}
	if s.SessionsBeforeLongBreak < 1 {
		return fmt.Errorf("sessions before long break must be at least 1, got %d", s.SessionsBeforeLongBreak)
	}
	return nil
}

// SettingsPatch is a partial settings update. Nil fields are left unchanged.
type SettingsPatch struct {
	WorkDuration            *int
	BreakDuration           *int
	LongBreakDuration       *int
	SessionsBeforeLongBreak *int
	AutoStartBreaks         *bool
	AutoStartPomodoros      *bool
}

// Apply merges the patch into a copy of s and returns it.
func (p SettingsPatch) Apply(s Settings) Settings {
	out := s
	if p.WorkDuration != nil {
		out.WorkDuration = *p.WorkDuration
	}
	if p.BreakDuration != nil {
		out.BreakDuration = *p.BreakDuration
	}
	if p.LongBreakDuration != nil {
		out.LongBreakDuration = *p.LongBreakDuration
	}
	if p.SessionsBeforeLongBreak != nil {
		out.SessionsBeforeLongBreak = *p.SessionsBeforeLongBreak
	}
	if p.AutoStartBreaks != nil {
		out.AutoStartBreaks = *p.AutoStartBreaks
	}
	if p.AutoStartPomodoros != nil {
		out.AutoStartPomodoros = *p.AutoStartPomodoros
	}
	return out
}
