package timer

import "github.com/alexanderramin/pomo/internal/domain"

// Decision is the policy's verdict on what follows a finished session.
type Decision struct {
	NextIsWork      bool
	NextDuration    int
	IsLongBreak     bool
	ShouldAutoStart bool
}

// NextSession decides the session that follows the one that just ended.
// Pure function: no I/O, no clock, no mutation. Settings are assumed to have
// passed domain validation; in particular SessionsBeforeLongBreak >= 1.
//
// After a work session, every SessionsBeforeLongBreak-th ordinal earns the
// long break; otherwise the short one. After any break the next session is
// always work.
func NextSession(isWork bool, ordinal int, s domain.Settings) Decision {
	if isWork {
		long := ordinal%s.SessionsBeforeLongBreak == 0
		duration := s.BreakDuration
		if long {
			duration = s.LongBreakDuration
		}
		return Decision{
			NextIsWork:      false,
			NextDuration:    duration,
			IsLongBreak:     long,
			ShouldAutoStart: s.AutoStartBreaks,
		}
	}
	return Decision{
		NextIsWork:      true,
		NextDuration:    s.WorkDuration,
		IsLongBreak:     false,
		ShouldAutoStart: s.AutoStartPomodoros,
	}
}
