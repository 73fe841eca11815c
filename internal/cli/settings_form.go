package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// settingsView wraps a huh form over the timer settings. Saving pushes the
// new settings into the running engine so an idle countdown retimes at once.
type settingsView struct {
	app    *App
	engine *timer.Engine
	form   *huh.Form

	// Form bindings are pointers so copies of the model share the same
	// backing values the form mutates.
	work    *string
	brk     *string
	longBrk *string
	cadence *string
	autoB   *bool
	autoP   *bool

	saved   *domain.Settings
	saveErr error
	done    bool
}

func newSettingsView(app *App, engine *timer.Engine) settingsView {
	current := engine.Settings()
	strPtr := func(n int) *string {
		s := strconv.Itoa(n)
		return &s
	}
	boolPtrOf := func(b bool) *bool { return &b }

	v := settingsView{
		app:     app,
		engine:  engine,
		work:    strPtr(current.WorkDuration),
		brk:     strPtr(current.BreakDuration),
		longBrk: strPtr(current.LongBreakDuration),
		cadence: strPtr(current.SessionsBeforeLongBreak),
		autoB:   boolPtrOf(current.AutoStartBreaks),
		autoP:   boolPtrOf(current.AutoStartPomodoros),
	}
	v.form = huh.NewForm(
		huh.NewGroup(
			durationInput("Work (seconds)", "1500", v.work),
			durationInput("Break (seconds)", "300", v.brk),
			durationInput("Long break (seconds)", "900", v.longBrk),
			durationInput("Sessions before long break", "4", v.cadence),
			huh.NewConfirm().Title("Auto-start breaks").Value(v.autoB),
			huh.NewConfirm().Title("Auto-start pomodoros").Value(v.autoP),
		),
	).WithTheme(pomoHuhTheme()).WithShowHelp(false)
	return v
}

func (v settingsView) Init() tea.Cmd {
	return v.form.Init()
}

func (v settingsView) editing() bool {
	return !v.done
}

func (v settingsView) Update(msg tea.Msg) (settingsView, tea.Cmd) {
	if v.done {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "e" {
			fresh := newSettingsView(v.app, v.engine)
			return fresh, fresh.Init()
		}
		return v, nil
	}

	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		v.done = true
		v.saved, v.saveErr = v.save()
		if v.saveErr == nil {
			v.engine.UpdateSettings(*v.saved)
		}
	}
	return v, cmd
}

// save turns the form fields into a full patch and persists it. Field values
// already passed per-field validation, so the conversions cannot fail.
func (v *settingsView) save() (*domain.Settings, error) {
	work, _ := strconv.Atoi(strings.TrimSpace(*v.work))
	brk, _ := strconv.Atoi(strings.TrimSpace(*v.brk))
	longBrk, _ := strconv.Atoi(strings.TrimSpace(*v.longBrk))
	cadence, _ := strconv.Atoi(strings.TrimSpace(*v.cadence))

	return v.app.Settings.Update(context.Background(), v.app.UserID, domain.SettingsPatch{
		WorkDuration:            &work,
		BreakDuration:           &brk,
		LongBreakDuration:       &longBrk,
		SessionsBeforeLongBreak: &cadence,
		AutoStartBreaks:         v.autoB,
		AutoStartPomodoros:      v.autoP,
	})
}

func (v settingsView) View() string {
	var b strings.Builder
	b.WriteString("\n" + formatter.Header("Settings") + "\n\n")

	if !v.done {
		b.WriteString(v.form.View())
		return b.String()
	}

	if v.saveErr != nil {
		b.WriteString(formatter.StyleRed.Render("save failed: "+v.saveErr.Error()) + "\n")
		return b.String()
	}
	b.WriteString(formatter.StyleGreen.Render("Settings saved.") + "\n\n")
	b.WriteString(renderSettings(v.saved))
	return b.String()
}

func (v settingsView) helpHints() []string {
	if v.done {
		return []string{"e: edit again"}
	}
	return []string{"enter: next field", "shift+tab: previous"}
}

// durationInput returns a huh.Input for a positive integer field.
func durationInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validatePositiveInt)
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < 1 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}

// pomoHuhTheme themes huh forms to match the rest of the interface.
func pomoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
