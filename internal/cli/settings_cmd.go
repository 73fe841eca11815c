package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change timer settings",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.Settings.Get(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Settings", renderSettings(settings)))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var work, brk, longBrk, cadence int
	var autoBreaks, autoPomodoros bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings; only the flags you pass are updated",
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := settingsPatchFromFlags(cmd.Flags(), work, brk, longBrk, cadence, autoBreaks, autoPomodoros)
			if patch == (domain.SettingsPatch{}) {
				return fmt.Errorf("nothing to change, pass at least one flag")
			}

			updated, err := app.Settings.Update(context.Background(), app.UserID, patch)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Settings", renderSettings(updated)))
			return nil
		},
	}

	cmd.Flags().IntVar(&work, "work", 0, "Work session length in seconds")
	cmd.Flags().IntVar(&brk, "break", 0, "Short break length in seconds")
	cmd.Flags().IntVar(&longBrk, "long-break", 0, "Long break length in seconds")
	cmd.Flags().IntVar(&cadence, "cadence", 0, "Work sessions between long breaks")
	cmd.Flags().BoolVar(&autoBreaks, "auto-breaks", false, "Start breaks automatically")
	cmd.Flags().BoolVar(&autoPomodoros, "auto-pomodoros", false, "Start work sessions automatically")

	return cmd
}

// settingsPatchFromFlags builds a patch from only the flags the user passed,
// so an unset flag never clobbers a saved value.
func settingsPatchFromFlags(flags *pflag.FlagSet, work, brk, longBrk, cadence int, autoBreaks, autoPomodoros bool) domain.SettingsPatch {
	var patch domain.SettingsPatch
	if flags.Changed("work") {
		patch.WorkDuration = &work
	}
	if flags.Changed("break") {
		patch.BreakDuration = &brk
	}
	if flags.Changed("long-break") {
		patch.LongBreakDuration = &longBrk
	}
	if flags.Changed("cadence") {
		patch.SessionsBeforeLongBreak = &cadence
	}
	if flags.Changed("auto-breaks") {
		patch.AutoStartBreaks = &autoBreaks
	}
	if flags.Changed("auto-pomodoros") {
		patch.AutoStartPomodoros = &autoPomodoros
	}
	return patch
}

func renderSettings(s *domain.Settings) string {
	onOff := func(b bool) string {
		if b {
			return formatter.StyleGreen.Render("on")
		}
		return formatter.Dim("off")
	}
	return formatter.RenderTable(
		[]string{"SETTING", "VALUE"},
		[][]string{
			{"Work", formatter.FormatSeconds(s.WorkDuration)},
			{"Break", formatter.FormatSeconds(s.BreakDuration)},
			{"Long break", formatter.FormatSeconds(s.LongBreakDuration)},
			{"Long break every", fmt.Sprintf("%d sessions", s.SessionsBeforeLongBreak)},
			{"Auto-start breaks", onOff(s.AutoStartBreaks)},
			{"Auto-start pomodoros", onOff(s.AutoStartPomodoros)},
		},
	)
}
