// Package notify delivers session-boundary notifications. Delivery is
// best-effort: a notification that cannot be written is dropped, never
// surfaced as an error to the timer.
package notify

import (
	"fmt"
	"io"
)

// Notifier announces a timer transition to the user.
type Notifier interface {
	Notify(title, body string)
}

// Noop discards all notifications.
type Noop struct{}

func (Noop) Notify(title, body string) {}

// Bell writes the notification text to w preceded by the terminal bell.
type Bell struct {
	w io.Writer
}

// NewBell creates a terminal notifier writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) Notify(title, body string) {
	if b.w == nil {
		return
	}
	fmt.Fprintf(b.w, "\a%s %s\n", title, body)
}
