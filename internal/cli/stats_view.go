package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

type statsLoadedMsg struct {
	stats    *domain.DailyStats
	sessions []*domain.PomodoroSession
	err      error
}

// statsView shows today's counters and the day's session history.
type statsView struct {
	app      *App
	stats    *domain.DailyStats
	sessions []*domain.PomodoroSession
	err      error
}

func newStatsView(app *App) statsView {
	return statsView{app: app}
}

func (v statsView) Init() tea.Cmd {
	return v.reload()
}

func (v statsView) reload() tea.Cmd {
	app := v.app
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := app.Stats.Today(ctx, app.UserID)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		sessions, err := app.Sessions.ListByDate(ctx, app.UserID, stats.Date)
		return statsLoadedMsg{stats: stats, sessions: sessions, err: err}
	}
}

func (v statsView) Update(msg tea.Msg) (statsView, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		v.stats = msg.stats
		v.sessions = msg.sessions
		v.err = msg.err
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			return v, v.reload()
		}
	}
	return v, nil
}

func (v statsView) View() string {
	var b strings.Builder
	b.WriteString("\n" + formatter.Header("Today") + "\n\n")

	if v.err != nil {
		b.WriteString(formatter.StyleRed.Render("error: "+v.err.Error()) + "\n")
		return b.String()
	}
	if v.stats == nil {
		b.WriteString(formatter.Dim("Loading...") + "\n")
		return b.String()
	}

	b.WriteString(renderStats(v.stats) + "\n")

	if len(v.sessions) > 0 {
		b.WriteString(formatter.Header("Sessions") + "\n\n")
		rows := make([][]string, 0, len(v.sessions))
		for _, s := range v.sessions {
			ended := formatter.StyleYellow.Render("open")
			if s.EndedAt != nil {
				ended = formatter.HumanTimestamp(*s.EndedAt)
			}
			rows = append(rows, []string{
				formatter.SessionTypePill(s.Type),
				formatter.FormatSeconds(s.Duration),
				formatter.HumanTimestamp(s.StartedAt),
				ended,
			})
		}
		b.WriteString(formatter.RenderTable([]string{"TYPE", "PLANNED", "STARTED", "ENDED"}, rows))
	} else {
		b.WriteString(formatter.Dim(fmt.Sprintf("No sessions recorded on %s.", v.stats.Date)) + "\n")
	}

	return b.String()
}
