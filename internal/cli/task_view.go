package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/pomo/internal/cli/formatter"
	"github.com/alexanderramin/pomo/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type tasksLoadedMsg struct {
	tasks []*domain.Task
	err   error
}

// taskView is a cursor-driven task list with an inline add input.
type taskView struct {
	app    *App
	tasks  []*domain.Task
	cursor int
	input  textinput.Model
	adding bool
	err    error
}

func newTaskView(app *App) taskView {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200
	ti.Width = 40
	return taskView{app: app, input: ti}
}

func (v taskView) Init() tea.Cmd {
	return v.reload()
}

func (v taskView) reload() tea.Cmd {
	app := v.app
	return func() tea.Msg {
		tasks, err := app.Tasks.ListByUser(context.Background(), app.UserID)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (v taskView) editing() bool {
	return v.adding
}

func (v taskView) Update(msg tea.Msg) (taskView, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		v.tasks = msg.tasks
		v.err = msg.err
		if v.cursor >= len(v.tasks) {
			v.cursor = len(v.tasks) - 1
		}
		if v.cursor < 0 {
			v.cursor = 0
		}
		return v, nil

	case tea.KeyMsg:
		if v.adding {
			return v.updateAdding(msg)
		}
		return v.updateList(msg)
	}

	if v.adding {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v taskView) updateAdding(msg tea.KeyMsg) (taskView, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		title := strings.TrimSpace(v.input.Value())
		v.adding = false
		v.input.Blur()
		v.input.SetValue("")
		if title == "" {
			return v, nil
		}
		app := v.app
		return v, func() tea.Msg {
			if _, err := app.Tasks.Create(context.Background(), app.UserID, title); err != nil {
				return tasksLoadedMsg{err: err}
			}
			tasks, err := app.Tasks.ListByUser(context.Background(), app.UserID)
			return tasksLoadedMsg{tasks: tasks, err: err}
		}
	case tea.KeyEsc:
		v.adding = false
		v.input.Blur()
		v.input.SetValue("")
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v taskView) updateList(msg tea.KeyMsg) (taskView, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.tasks)-1 {
			v.cursor++
		}
	case "a":
		v.adding = true
		v.input.Focus()
		return v, textinput.Blink
	case "enter", " ":
		if t := v.selected(); t != nil {
			app := v.app
			done := !t.Completed
			id := t.ID
			return v, func() tea.Msg {
				if _, err := app.Tasks.Update(context.Background(), id, domain.TaskPatch{Completed: &done}); err != nil {
					return tasksLoadedMsg{err: err}
				}
				tasks, err := app.Tasks.ListByUser(context.Background(), app.UserID)
				return tasksLoadedMsg{tasks: tasks, err: err}
			}
		}
	case "d":
		if t := v.selected(); t != nil {
			app := v.app
			id := t.ID
			return v, func() tea.Msg {
				if err := app.Tasks.Delete(context.Background(), id); err != nil {
					return tasksLoadedMsg{err: err}
				}
				tasks, err := app.Tasks.ListByUser(context.Background(), app.UserID)
				return tasksLoadedMsg{tasks: tasks, err: err}
			}
		}
	case "r":
		return v, v.reload()
	}
	return v, nil
}

func (v taskView) selected() *domain.Task {
	if v.cursor < 0 || v.cursor >= len(v.tasks) {
		return nil
	}
	return v.tasks[v.cursor]
}

func (v taskView) View() string {
	var b strings.Builder
	b.WriteString("\n" + formatter.Header("Tasks") + "\n\n")

	if v.err != nil {
		b.WriteString(formatter.StyleRed.Render("error: "+v.err.Error()) + "\n")
	}
	if len(v.tasks) == 0 && !v.adding {
		b.WriteString(formatter.Dim("No tasks yet. Press 'a' to add one.") + "\n")
	}

	for i, t := range v.tasks {
		cursor := "  "
		if i == v.cursor && !v.adding {
			cursor = formatter.StyleHeader.Render("> ")
		}
		title := t.Title
		if t.Completed {
			title = formatter.Dim(title)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, formatter.TaskPill(t.Completed), title))
	}

	if v.adding {
		b.WriteString("\n" + formatter.Bold("New task: ") + v.input.View() + "\n")
	}

	return b.String()
}

func (v taskView) helpHints() []string {
	if v.adding {
		return []string{"enter: save", "esc: cancel"}
	}
	return []string{"↑↓/jk: move", "space: toggle", "a: add", "d: delete", "r: refresh"}
}
