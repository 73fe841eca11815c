package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect recorded timer sessions",
	}

	cmd.AddCommand(newSessionListCmd(app))

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var date string
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var sessions []*domain.PomodoroSession
			var err error
			if date != "" {
				if _, parseErr := time.Parse(domain.DateLayout, date); parseErr != nil {
					return fmt.Errorf("invalid date '%s', expected YYYY-MM-DD", date)
				}
				sessions, err = app.Sessions.ListByDate(ctx, app.UserID, date)
			} else {
				sessions, err = app.Sessions.ListRecent(ctx, app.UserID, days)
			}
			if err != nil {
				return err
			}

			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
				return nil
			}

			headers := []string{"ID", "TYPE", "PLANNED", "STARTED", "ENDED"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				ended := formatter.StyleYellow.Render("open")
				if s.EndedAt != nil {
					ended = formatter.HumanTimestamp(*s.EndedAt)
				}
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					formatter.SessionTypePill(s.Type),
					formatter.FormatSeconds(s.Duration),
					formatter.HumanTimestamp(s.StartedAt),
					ended,
				})
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Sessions", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Show sessions for one day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 7, "Number of recent days to show")

	return cmd
}
