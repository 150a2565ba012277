package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/taskboard/internal/model"
)

func (t Theme) priorityStyle(p model.Priority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return t.Error
	case model.PriorityMedium:
		return t.Pending
	case model.PriorityLow:
		return t.Success
	}
	return t.Muted
}

func (t Theme) statusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusCompleted:
		return t.Success
	case model.StatusInProgress:
		return t.Info
	}
	return t.Muted
}

func (t Theme) statusSymbol(s model.Status) string {
	switch s {
	case model.StatusCompleted:
		return t.SymDone
	case model.StatusInProgress:
		return t.SymActive
	}
	return t.SymTodo
}

func chip(style lipgloss.Style, label string) string {
	return style.Render("[" + label + "]")
}

// Chips renders the priority, status, category and due-date tags of a task.
func Chips(t Theme, task model.Task) string {
	parts := []string{
		chip(t.priorityStyle(task.Priority), string(task.Priority)),
		chip(t.statusStyle(task.Status), string(task.Status)),
	}
	if task.Category != "" {
		parts = append(parts, chip(t.Accent, task.Category))
	}
	if task.DueDate != "" {
		parts = append(parts, chip(t.Muted, "Due: "+FormatDue(task.DueDate)))
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out
}

// FormatDue turns 2025-03-01 into "Mar 1, 2025". Unparseable values are
// shown as they are.
func FormatDue(s string) string {
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return s
	}
	return d.Format("Jan 2, 2006")
}
