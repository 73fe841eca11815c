package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskToggleCmd(app),
		newTaskRenameCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add TITLE...",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			task, err := app.Tasks.Create(context.Background(), app.UserID, title)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s: %s\n", task.ID[:8], task.Title)
			return nil
		},
	}
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.ListByUser(context.Background(), app.UserID)
			if err != nil {
				return err
			}

			if !all {
				open := tasks[:0]
				for _, t := range tasks {
					if !t.Completed {
						open = append(open, t)
					}
				}
				tasks = open
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}

			headers := []string{"ID", "STATUS", "TITLE", "CREATED"}
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					formatter.TaskPill(t.Completed),
					t.Title,
					formatter.HumanTimestamp(t.CreatedAt),
				})
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Tasks", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")

	return cmd
}

func newTaskToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Toggle a task between open and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			existing, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}

			done := !existing.Completed
			updated, err := app.Tasks.Update(ctx, id, domain.TaskPatch{Completed: &done})
			if err != nil {
				return err
			}

			if updated.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "Completed: %s\n", updated.Title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Reopened: %s\n", updated.Title)
			}
			return nil
		},
	}
}

func newTaskRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID TITLE...",
		Short: "Rename a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			title := strings.Join(args[1:], " ")
			updated, err := app.Tasks.Update(ctx, id, domain.TaskPatch{Title: &title})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed task %s: %s\n", updated.ID[:8], updated.Title)
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", args[0])
			return nil
		},
	}
}

// resolveTaskID accepts a full task ID or a unique prefix of one.
func resolveTaskID(ctx context.Context, app *App, ref string) (string, error) {
	tasks, err := app.Tasks.ListByUser(ctx, app.UserID)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, t := range tasks {
		if t.ID == ref {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no task matches '%s'", ref)
	default:
		return "", fmt.Errorf("task ID '%s' is ambiguous (%d matches)", ref, len(matches))
	}
}
