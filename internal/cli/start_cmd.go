package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/timer"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var pomodoros int

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the timer in the terminal without the full interface",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runHeadless(ctx, app, cmd.OutOrStdout(), pomodoros)
		},
	}

	cmd.Flags().IntVar(&pomodoros, "pomodoros", 0, "Stop after this many completed work sessions (0 runs until interrupted)")

	return cmd
}

// runHeadless drives the engine on a wall-clock ticker, rendering a one-line
// countdown. It stops when the countdown parks idle, the pomodoro quota is
// reached, or the context is cancelled; an open session never outlives the
// process.
func runHeadless(ctx context.Context, app *App, out io.Writer, pomodoros int) error {
	if err := app.Sessions.CloseStale(ctx, app.UserID); err != nil {
		return err
	}
	settings, err := app.Settings.Get(ctx, app.UserID)
	if err != nil {
		return err
	}

	engine := timer.NewEngine(app.UserID, *settings, app.Sessions, app.Notifier)
	if err := engine.Start(ctx); err != nil {
		return err
	}
	renderCountdown(out, engine.State())

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	completed := 0
	wasWork := true
	onTick := func(st timer.State) {
		renderCountdown(out, st)
		if wasWork && !st.IsWork {
			completed++
			if pomodoros > 0 && completed >= pomodoros {
				cancel()
			}
		}
		wasWork = st.IsWork
	}

	runErr := timer.Run(runCtx, engine, timer.NewWallTicker(), onTick)
	fmt.Fprintln(out)

	// The interrupt lands here with the session still open.
	if engine.State().SessionID != "" {
		if resetErr := engine.Reset(context.Background()); resetErr != nil {
			return resetErr
		}
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	fmt.Fprintf(out, "Completed %d pomodoro(s).\n", completed)
	return nil
}

func renderCountdown(out io.Writer, st timer.State) {
	var elapsed float64
	if st.Total > 0 {
		elapsed = float64(st.Total-st.Remaining) / float64(st.Total)
	}
	fmt.Fprintf(out, "\r%s  %s  %s ",
		formatter.Bold(formatter.Clock(st.Remaining)),
		formatter.RenderProgress(elapsed, 20),
		formatter.Dim(string(st.Status)),
	)
}
