package timer

import (
	"context"
	"time"

	"github.com/alexanderramin/pomo/internal/domain"
)

// Ticker is the cancellable one-second driver behind a running countdown.
// It lives outside the engine so tests and UIs can substitute their own
// tick source.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// WallTicker is the production Ticker backed by a time.Ticker.
type WallTicker struct {
	t *time.Ticker
}

// NewWallTicker creates a ticker that fires once per second.
func NewWallTicker() *WallTicker {
	return &WallTicker{t: time.NewTicker(time.Second)}
}

func (w *WallTicker) C() <-chan time.Time {
	return w.t.C
}

func (w *WallTicker) Stop() {
	w.t.Stop()
}

// Run drives the engine from the ticker on a single goroutine until the
// context is cancelled or the countdown parks idle at a session boundary
// (auto-started follow-up sessions keep the loop alive). onTick, when
// non-nil, observes the state after every tick.
func Run(ctx context.Context, e *Engine, tk Ticker, onTick func(State)) error {
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tk.C():
			if err := e.Tick(ctx); err != nil {
				return err
			}
			if onTick != nil {
				onTick(e.State())
			}
			if e.State().Phase == domain.PhaseIdle {
				return nil
			}
		}
	}
}
