package domain

// SessionType distinguishes focus intervals from rest intervals.
type SessionType string

const (
	SessionWork  SessionType = "work"
	SessionBreak SessionType = "break"
)

// ValidSessionTypes is the canonical set of accepted session types.
var ValidSessionTypes = map[SessionType]bool{
	SessionWork: true, SessionBreak: true,
}

// Phase is the lifecycle state of the countdown.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRunning Phase = "running"
	PhasePaused  Phase = "paused"
	PhaseExpired Phase = "expired"
)

// StatusLabel is the user-facing timer status line.
type StatusLabel string

const (
	StatusReady    StatusLabel = "Ready to start"
	StatusFocusing StatusLabel = "Focusing..."
	StatusBreak    StatusLabel = "Take a break!"
	StatusPaused   StatusLabel = "Paused"
)
