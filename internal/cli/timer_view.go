package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/alexanderramin/pomo/internal/timer"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// timerView renders the countdown and routes timer keys to the engine.
type timerView struct {
	engine   *timer.Engine
	notifier *flashNotifier
	progress progress.Model
	flash    string
	err      error
	width    int
	height   int
}

func newTimerView(engine *timer.Engine, notifier *flashNotifier) timerView {
	prog := progress.New(progress.WithScaledGradient("#fe8019", "#fabd2f"))
	prog.Width = 40
	return timerView{
		engine:   engine,
		notifier: notifier,
		progress: prog,
	}
}

func (v timerView) Init() tea.Cmd {
	return nil
}

func (v *timerView) setSize(width, height int) {
	v.width = width
	v.height = height
	v.progress.Width = min(width-20, 60)
	if v.progress.Width < 10 {
		v.progress.Width = 10
	}
}

func (v timerView) Update(msg tea.Msg) (timerView, tea.Cmd) {
	ctx := context.Background()

	switch msg := msg.(type) {
	case tickMsg:
		if v.engine.State().Phase != domain.PhaseRunning {
			return v, nil
		}
		v.err = v.engine.Tick(ctx)
		if notice := v.notifier.take(); notice != "" {
			v.flash = notice
		}
		if v.engine.State().Phase == domain.PhaseRunning {
			return v, tickCmd()
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s", " ":
			wasRunning := v.engine.State().Phase == domain.PhaseRunning
			if wasRunning {
				v.engine.Pause()
				return v, nil
			}
			v.flash = ""
			v.err = v.engine.Start(ctx)
			return v, tickCmd()
		case "p":
			v.engine.Pause()
			return v, nil
		case "r":
			v.flash = ""
			v.err = v.engine.Reset(ctx)
			return v, nil
		}

	case progress.FrameMsg:
		updated, cmd := v.progress.Update(msg)
		v.progress = updated.(progress.Model)
		return v, cmd
	}

	return v, nil
}

func (v timerView) View() string {
	st := v.engine.State()

	clockStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(formatter.ColorFg).
		Padding(1, 4)

	var elapsed float64
	if st.Total > 0 {
		elapsed = float64(st.Total-st.Remaining) / float64(st.Total)
	}

	label := formatter.SessionTypePill(domain.SessionBreak)
	if st.IsWork {
		label = formatter.SessionTypePill(domain.SessionWork)
	}
	if st.IsLongBreak && !st.IsWork {
		label += formatter.Dim(" (long)")
	}

	lines := []string{
		"",
		label + formatter.Dim(fmt.Sprintf("  ·  pomodoro #%d", st.Ordinal)),
		clockStyle.Render(formatter.Clock(st.Remaining)),
		v.progress.ViewAs(elapsed),
		"",
		formatter.Bold(string(st.Status)),
	}
	if v.flash != "" {
		lines = append(lines, formatter.StyleYellow.Render(v.flash))
	}
	if v.err != nil {
		lines = append(lines, formatter.StyleRed.Render("save failed: "+v.err.Error()))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if v.width > 0 {
		return lipgloss.NewStyle().Width(v.width).Align(lipgloss.Center).Render(content)
	}
	return content
}

func (v timerView) helpHints() []string {
	if v.engine.State().Phase == domain.PhaseRunning {
		return []string{"s/space: pause", "r: reset"}
	}
	return []string{"s/space: start", "r: reset"}
}
