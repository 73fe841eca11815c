package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// runTUI starts the interactive full-screen interface.
func runTUI(app *App) error {
	ctx := context.Background()
	if err := app.Sessions.CloseStale(ctx, app.UserID); err != nil {
		return err
	}
	settings, err := app.Settings.Get(ctx, app.UserID)
	if err != nil {
		return err
	}

	notifier := &flashNotifier{}
	engine := timer.NewEngine(app.UserID, *settings, app.Sessions, notifier)

	m := newAppModel(app, engine, notifier)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// flashNotifier keeps the most recent notification for the status line.
// The engine runs on the bubbletea update loop, so no locking is needed.
type flashNotifier struct {
	last string
}

func (n *flashNotifier) Notify(title, body string) {
	n.last = title + " " + body
}

func (n *flashNotifier) take() string {
	s := n.last
	n.last = ""
	return s
}

type tabID int

const (
	tabTimer tabID = iota
	tabTasks
	tabStats
	tabSettings
)

var tabNames = []string{"Timer", "Tasks", "Stats", "Settings"}

// appModel is the root bubbletea Model for the TUI. It owns the tab bar and
// delegates everything else to the active tab's model.
type appModel struct {
	app      *App
	engine   *timer.Engine
	notifier *flashNotifier

	active   tabID
	timer    timerView
	tasks    taskView
	stats    statsView
	settings settingsView

	width    int
	height   int
	quitting bool
}

func newAppModel(app *App, engine *timer.Engine, notifier *flashNotifier) appModel {
	return appModel{
		app:      app,
		engine:   engine,
		notifier: notifier,
		timer:    newTimerView(engine, notifier),
		tasks:    newTaskView(app),
		stats:    newStatsView(app),
		settings: newSettingsView(app, engine),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.timer.Init(), m.tasks.Init())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.timer.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		// Tabs with captured input get every key except ctrl+c.
		if !m.capturesInput() {
			switch msg.String() {
			case "q":
				return m.quit()
			case "tab":
				return m.switchTab((m.active + 1) % tabID(len(tabNames)))
			case "shift+tab":
				return m.switchTab((m.active + tabID(len(tabNames)) - 1) % tabID(len(tabNames)))
			case "1", "2", "3", "4":
				return m.switchTab(tabID(msg.String()[0] - '1'))
			}
		}
	}

	return m.updateActive(msg)
}

// capturesInput reports whether the active tab owns the keyboard, e.g. while
// typing a task title or filling the settings form.
func (m appModel) capturesInput() bool {
	switch m.active {
	case tabTasks:
		return m.tasks.editing()
	case tabSettings:
		return m.settings.editing()
	}
	return false
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	// Close any session the countdown still holds open.
	if m.engine.State().SessionID != "" {
		_ = m.engine.Reset(context.Background())
	}
	m.quitting = true
	return m, tea.Quit
}

func (m appModel) switchTab(to tabID) (tea.Model, tea.Cmd) {
	m.active = to
	switch to {
	case tabTasks:
		return m, m.tasks.reload()
	case tabStats:
		return m, m.stats.reload()
	case tabSettings:
		m.settings = newSettingsView(m.app, m.engine)
		return m, m.settings.Init()
	}
	return m, nil
}

func (m appModel) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case tabTimer:
		m.timer, cmd = m.timer.Update(msg)
	case tabTasks:
		m.tasks, cmd = m.tasks.Update(msg)
	case tabStats:
		m.stats, cmd = m.stats.Update(msg)
	case tabSettings:
		m.settings, cmd = m.settings.Update(msg)
	}
	// Ticks keep flowing to the timer even when another tab is active.
	if m.active != tabTimer {
		if _, ok := msg.(tickMsg); ok {
			m.timer, cmd = m.timer.Update(msg)
		}
	}
	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.active {
	case tabTimer:
		body = m.timer.View()
	case tabTasks:
		body = m.tasks.View()
	case tabStats:
		body = m.stats.View()
	case tabSettings:
		body = m.settings.View()
	}

	sections := []string{m.renderTabs(), body, m.renderHelp()}
	return strings.Join(sections, "\n")
}

func (m appModel) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tabID(i) == m.active {
			tabs = append(tabs, formatter.StyleHeader.Render(label))
		} else {
			tabs = append(tabs, formatter.Dim(label))
		}
	}
	header := formatter.StylePurple.Render("pomo") + "  " + strings.Join(tabs, "  ")
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return header + "\n" + sep
}

func (m appModel) renderHelp() string {
	var hints []string
	switch m.active {
	case tabTimer:
		hints = m.timer.helpHints()
	case tabTasks:
		hints = m.tasks.helpHints()
	case tabStats:
		hints = []string{"r: refresh"}
	case tabSettings:
		hints = m.settings.helpHints()
	}
	if !m.capturesInput() {
		hints = append(hints, "tab: next", "q: quit")
	}
	for i, h := range hints {
		hints[i] = formatter.Dim(h)
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
