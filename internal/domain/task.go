package domain

import "time"

// Task is an independent to-do item. It has no state machine: Completed
// toggles freely in both directions.
type Task struct {
	ID        string
	UserID    string
	Title     string
	Completed bool
	CreatedAt time.Time
}

// TaskPatch is a partial task update. Nil fields are left unchanged.
type TaskPatch struct {
	Title     *string
	Completed *bool
}

// Apply merges the patch into a copy of t and returns it.
func (p TaskPatch) Apply(t Task) Task {
	out := t
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Completed != nil {
		out.Completed = *p.Completed
	}
	return out
}
