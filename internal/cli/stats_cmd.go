package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show daily productivity stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var stats *domain.DailyStats
			var err error
			if date != "" {
				if _, parseErr := time.Parse(domain.DateLayout, date); parseErr != nil {
					return fmt.Errorf("invalid date '%s', expected YYYY-MM-DD", date)
				}
				stats, err = app.Stats.GetDaily(ctx, app.UserID, date)
			} else {
				stats, err = app.Stats.Today(ctx, app.UserID)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox(stats.Date, renderStats(stats)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to report on (YYYY-MM-DD), defaults to today")

	return cmd
}

func renderStats(stats *domain.DailyStats) string {
	return formatter.RenderTable(
		[]string{"POMODOROS", "FOCUS TIME", "TASKS DONE"},
		[][]string{{
			formatter.Bold(fmt.Sprintf("%d", stats.CompletedPomodoros)),
			formatter.Bold(formatter.FormatSeconds(stats.TotalFocusTime)),
			formatter.Bold(fmt.Sprintf("%d", stats.TasksCompleted)),
		}},
	)
}
