package timer

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
)

// SessionLog is the persistence collaborator that records countdown runs.
// The engine holds at most one open session at a time and is the only caller
// that decides when a session opens or closes.
type SessionLog interface {
	OpenSession(ctx context.Context, userID string, typ domain.SessionType, durationSeconds int) (*domain.PomodoroSession, error)
	// CompleteSession records a session that ran its countdown to zero; a
	// completed work session earns daily-stats credit.
	CompleteSession(ctx context.Context, sessionID string, endedAt time.Time) error
	// CloseSession records a session abandoned before its countdown finished.
	CloseSession(ctx context.Context, sessionID string, endedAt time.Time) error
}

// Notifier receives best-effort session-boundary notifications.
type Notifier interface {
	Notify(title, body string)
}

// State is a read-only snapshot of the countdown for rendering and tests.
type State struct {
	Phase       domain.Phase
	Status      domain.StatusLabel
	IsWork      bool
	IsLongBreak bool
	Ordinal     int
	Remaining   int
	Total       int
	SessionID   string
}

// Engine is the timer state machine. It owns the countdown exclusively and
// expects all calls on a single cooperative timeline (the ticking driver),
// so it takes no locks. Persistence failures propagate to the caller but the
// in-memory transition that already happened is never rolled back: the
// countdown keeps functioning even when logging does not.
type Engine struct {
	userID   string
	settings domain.Settings
	log      SessionLog
	notifier Notifier
	now      func() time.Time

	state State
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock substitutes the time source, enabling deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an idle engine positioned at the start of a work session.
func NewEngine(userID string, settings domain.Settings, log SessionLog, notifier Notifier, opts ...Option) *Engine {
	e := &Engine{
		userID:   userID,
		settings: settings,
		log:      log,
		notifier: notifier,
		now:      time.Now,
		state: State{
			Phase:     domain.PhaseIdle,
			Status:    domain.StatusReady,
			IsWork:    true,
			Ordinal:   1,
			Remaining: settings.WorkDuration,
			Total:     settings.WorkDuration,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns a snapshot of the current countdown.
func (e *Engine) State() State {
	return e.state
}

// Settings returns the engine's active settings.
func (e *Engine) Settings() domain.Settings {
	return e.settings
}

// Start begins or resumes the countdown. No-op when already running. When no
// session is open for the current cycle, one is opened with the planned
// duration of the full cycle.
func (e *Engine) Start(ctx context.Context) error {
	if e.state.Phase == domain.PhaseRunning {
		return nil
	}
	return e.begin(ctx)
}

// begin transitions to Running and opens a session if none is open yet.
func (e *Engine) begin(ctx context.Context) error {
	e.state.Phase = domain.PhaseRunning
	if e.state.IsWork {
		e.state.Status = domain.StatusFocusing
	} else {
		e.state.Status = domain.StatusBreak
	}

	if e.state.SessionID != "" {
		return nil // resuming from pause, session already open
	}

	sess, err := e.log.OpenSession(ctx, e.userID, e.sessionType(), e.state.Total)
	if err != nil {
		return fmt.Errorf("opening session: %w", err)
	}
	e.state.SessionID = sess.ID
	return nil
}

// Pause suspends a running countdown. The open session stays open: a paused
// session is resumable, not abandoned.
func (e *Engine) Pause() {
	if e.state.Phase != domain.PhaseRunning {
		return
	}
	e.state.Phase = domain.PhasePaused
	e.state.Status = domain.StatusPaused
}

// Reset abandons the current cycle from any state: the open session is
// closed, the timer returns to an idle work session of the configured length,
// and the ordinal is left untouched.
func (e *Engine) Reset(ctx context.Context) error {
	open := e.state.SessionID

	e.state = State{
		Phase:     domain.PhaseIdle,
		Status:    domain.StatusReady,
		IsWork:    true,
		Ordinal:   e.state.Ordinal,
		Remaining: e.settings.WorkDuration,
		Total:     e.settings.WorkDuration,
	}

	if open == "" {
		return nil
	}
	if err := e.log.CloseSession(ctx, open, e.now()); err != nil {
		return fmt.Errorf("closing session on reset: %w", err)
	}
	return nil
}

// Tick advances the countdown by one second. Calls while not running are
// ignored. Reaching zero completes the session synchronously before Tick
// returns.
func (e *Engine) Tick(ctx context.Context) error {
	if e.state.Phase != domain.PhaseRunning {
		return nil
	}
	e.state.Remaining--
	if e.state.Remaining > 0 {
		return nil
	}
	e.state.Remaining = 0
	e.state.Phase = domain.PhaseExpired
	return e.completeSession(ctx)
}

// UpdateSettings swaps the active settings. An idle countdown is retimed so
// the preview reflects the new duration of the pending session type; a
// running or paused countdown is never retimed mid-flight.
func (e *Engine) UpdateSettings(settings domain.Settings) {
	e.settings = settings
	if e.state.Phase != domain.PhaseIdle {
		return
	}
	d := e.currentDuration()
	e.state.Total = d
	e.state.Remaining = d
}

// completeSession closes out the finished session, applies the policy
// decision for the next one, notifies, and either auto-starts or parks the
// timer idle. The close error, if any, is reported after the transition has
// fully applied.
func (e *Engine) completeSession(ctx context.Context) error {
	finished := e.state.SessionID
	e.state.SessionID = ""

	var closeErr error
	if finished != "" {
		if err := e.log.CompleteSession(ctx, finished, e.now()); err != nil {
			closeErr = fmt.Errorf("completing finished session: %w", err)
		}
	}

	wasWork := e.state.IsWork
	d := NextSession(wasWork, e.state.Ordinal, e.settings)

	e.state.IsWork = d.NextIsWork
	e.state.IsLongBreak = d.IsLongBreak
	if !wasWork {
		e.state.Ordinal++
	}
	e.state.Total = d.NextDuration
	e.state.Remaining = d.NextDuration

	if wasWork {
		e.state.Status = domain.StatusBreak
		body := "Take a short break."
		if d.IsLongBreak {
			body = "Take a long break."
		}
		e.notifier.Notify("Break time!", body)
	} else {
		e.state.Status = domain.StatusReady
		e.notifier.Notify("Focus time!", "Time to get back to work.")
	}

	if d.ShouldAutoStart {
		if err := e.begin(ctx); err != nil {
			if closeErr != nil {
				return closeErr
			}
			return err
		}
	} else {
		e.state.Phase = domain.PhaseIdle
	}
	return closeErr
}

// sessionType maps the countdown's work flag to the persisted session type.
func (e *Engine) sessionType() domain.SessionType {
	if e.state.IsWork {
		return domain.SessionWork
	}
	return domain.SessionBreak
}

// currentDuration returns the configured length of the pending session type.
func (e *Engine) currentDuration() int {
	switch {
	case e.state.IsWork:
		return e.settings.WorkDuration
	case e.state.IsLongBreak:
		return e.settings.LongBreakDuration
	default:
		return e.settings.BreakDuration
	}
}
