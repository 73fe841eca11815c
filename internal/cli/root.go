package cli

import (
	"github.com/alexanderramin/pomo/internal/notify"
	"github.com/alexanderramin/pomo/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks    service.TaskService
	Sessions service.SessionLogService
	Stats    service.StatsService
	Settings service.SettingsService

	// UserID scopes every command; all data belongs to one local user.
	UserID string

	// Notifier announces timer transitions in headless runs.
	Notifier notify.Notifier

	// IsInteractive reports whether stdin is an interactive terminal, which
	// selects the TUI when the root command runs without arguments.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "pomo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pomo",
		Short: "Pomodoro timer with task tracking and daily stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newStartCmd(app),
		newTaskCmd(app),
		newSessionCmd(app),
		newStatsCmd(app),
		newSettingsCmd(app),
	)

	return root
}
