package board

import "github.com/idilsaglam/taskboard/internal/model"

// View is a status filter over the collection. Views are derived on
// demand and never stored.
type View int

const (
	ViewAll View = iota
	ViewTodo
	ViewInProgress
	ViewCompleted
)

// Views lists every view in tab order.
var Views = []View{ViewAll, ViewTodo, ViewInProgress, ViewCompleted}

func (v View) String() string {
	switch v {
	case ViewTodo:
		return "To Do"
	case ViewInProgress:
		return "In Progress"
	case ViewCompleted:
		return "Completed"
	}
	return "All Tasks"
}

// Status is the status a view filters on; ok is false for ViewAll.
func (v View) Status() (status model.Status, ok bool) {
	switch v {
	case ViewTodo:
		return model.StatusTodo, true
	case ViewInProgress:
		return model.StatusInProgress, true
	case ViewCompleted:
		return model.StatusCompleted, true
	}
	return "", false
}

// ViewFor returns the view that shows only tasks with status s.
func ViewFor(s model.Status) View {
	switch s {
	case model.StatusTodo:
		return ViewTodo
	case model.StatusInProgress:
		return ViewInProgress
	case model.StatusCompleted:
		return ViewCompleted
	}
	return ViewAll
}

// View returns a fresh slice holding the tasks v lets through.
func (b *Board) View(v View) []model.Task {
	return Filter(b.tasks, v)
}

// Filter applies v to tasks without modifying them.
func Filter(tasks []model.Task, v View) []model.Task {
	status, ok := v.Status()
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !ok || t.Status == status {
			out = append(out, t)
		}
	}
	return out
}
