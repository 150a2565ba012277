package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/taskboard/internal/model"
)

// taskItem adapts a Task to bubbles/list.Item.
type taskItem struct {
	task model.Task
}

func (i taskItem) Title() string       { return i.task.Title }
func (i taskItem) Description() string { return i.task.Description }
func (i taskItem) FilterValue() string {
	return i.task.Title + " " + i.task.Description + " " + i.task.Category
}

// taskDelegate renders a task as title, description and chips.
type taskDelegate struct {
	theme Theme
}

func (d taskDelegate) Height() int                               { return 3 }
func (d taskDelegate) Spacing() int                              { return 1 }
func (d taskDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	t := d.theme
	width := m.Width() - 4
	if width < 10 {
		width = 10
	}

	title := truncate(it.task.Title, width)
	if it.task.Status == model.StatusCompleted {
		title = t.Strike.Render(title)
	} else {
		title = t.Title.Render(title)
	}
	sym := t.statusStyle(it.task.Status).Render(t.statusSymbol(it.task.Status))

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(">") + " "
	}
	desc := strings.ReplaceAll(it.task.Description, "\n", " ")
	fmt.Fprintf(w, "%s%s %s\n", prefix, sym, title)
	fmt.Fprintf(w, "    %s\n", t.Muted.Render(truncate(desc, width-2)))
	fmt.Fprintf(w, "    %s", Chips(t, it.task))
}

func toItems(tasks []model.Task) []list.Item {
	out := make([]list.Item, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskItem{task: task})
	}
	return out
}

// TaskLines renders tasks one per line for non-interactive output.
func TaskLines(t Theme, tasks []model.Task) []string {
	if len(tasks) == 0 {
		return []string{t.Muted.Render("No tasks found")}
	}
	out := make([]string, 0, len(tasks))
	for i, task := range tasks {
		idx := fmt.Sprintf("%2d.", i+1)
		title := truncate(task.Title, 60)
		if task.Status == model.StatusCompleted {
			title = t.Strike.Render(title)
		}
		out = append(out, fmt.Sprintf("%s %s %s  %s",
			t.Muted.Render(idx),
			t.statusStyle(task.Status).Render(t.statusSymbol(task.Status)),
			title,
			Chips(t, task)))
	}
	return out
}

// GroupLines renders tasks under one heading per status.
func GroupLines(t Theme, tasks []model.Task) []string {
	var lines []string
	for i, s := range model.Statuses {
		var group []model.Task
		for _, task := range tasks {
			if task.Status == s {
				group = append(group, task)
			}
		}
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, t.Accent.Render(fmt.Sprintf("%s (%d)", s, len(group))))
		if len(group) == 0 {
			lines = append(lines, t.Muted.Render("(none)"))
			continue
		}
		lines = append(lines, TaskLines(t, group)...)
	}
	return lines
}
