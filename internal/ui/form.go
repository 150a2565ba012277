package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/taskboard/internal/model"
)

type field int

const (
	fieldTitle field = iota
	fieldDescription
	fieldStatus
	fieldPriority
	fieldCategory
	fieldDue
	fieldCount
)

// fieldNames match the struct field names model.FieldErrors reports.
var fieldNames = [fieldCount]string{"Title", "Description", "Status", "Priority", "Category", "DueDate"}

var fieldLabels = [fieldCount]string{"Title", "Description", "Status", "Priority", "Category", "Due Date"}

type formState int

const (
	formOpen formState = iota
	formSubmitted
	formCanceled
)

// Form edits one task. It never touches the board; the dashboard reads
// Submitted and decides between add and update.
type Form struct {
	theme Theme
	keys  formKeys
	help  help.Model

	editing bool
	id      string

	title textinput.Model
	desc  textarea.Model
	due   textinput.Model

	statusIdx, priorityIdx, categoryIdx int
	categories                          []string

	focus field
	errs  map[string]string
	state formState
	out   model.Task
}

// NewForm opens the form on initial, or on model.NewDraft when initial is
// nil.
func NewForm(t Theme, initial *model.Task) Form {
	task := model.NewDraft()
	f := Form{theme: t, keys: defaultFormKeys(), help: help.New()}
	if initial != nil {
		task = *initial
		f.editing = true
		f.id = initial.ID
	}

	f.title = textinput.New()
	f.title.Prompt = "> "
	f.title.Placeholder = "Task title..."
	f.title.SetValue(task.Title)
	f.title.CharLimit = charLimit(200, task.Title)

	f.desc = textarea.New()
	f.desc.Placeholder = "Description (optional)"
	f.desc.ShowLineNumbers = false
	f.desc.SetHeight(3)
	f.desc.CharLimit = 0
	f.desc.MaxHeight = 0
	f.desc.SetValue(task.Description)
	f.desc.CharLimit = charLimit(2000, task.Description)

	f.due = textinput.New()
	f.due.Prompt = "> "
	f.due.Placeholder = "YYYY-MM-DD"
	f.due.SetValue(task.DueDate)
	f.due.CharLimit = charLimit(len(model.DateLayout), task.DueDate)

	f.statusIdx = indexOf(model.Statuses, task.Status)
	f.priorityIdx = indexOf(model.Priorities, task.Priority)
	f.categories = model.Categories
	if task.Category != "" && !model.IsCategory(task.Category) {
		// Keep an out-of-list value visible so the user sees what they are replacing.
		f.categories = append([]string{task.Category}, model.Categories...)
	}
	f.categoryIdx = indexOf(f.categories, task.Category)

	f.SetWidth(48)
	f.title.Focus()
	f.title.CursorEnd()
	return f
}

// charLimit caps new input at n runes but never below the length of the
// value being edited, so opening a task cannot shorten it.
func charLimit(n int, value string) int {
	return max(n, utf8.RuneCountInString(value))
}

func indexOf[T comparable](xs []T, v T) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return 0
}

// SetWidth sizes the text inputs.
func (f *Form) SetWidth(w int) {
	if w < 20 {
		w = 20
	}
	f.title.Width = w - 4
	f.due.Width = w - 4
	f.desc.SetWidth(w - 2)
	f.help.Width = w
}

// Editing reports whether the form was opened on an existing task.
func (f Form) Editing() bool { return f.editing }

// Submitted returns the validated task once the user saved the form.
func (f Form) Submitted() (model.Task, bool) { return f.out, f.state == formSubmitted }

// Canceled reports whether the user dismissed the form.
func (f Form) Canceled() bool { return f.state == formCanceled }

// Errors are the validation messages from the last submit, by field.
func (f Form) Errors() map[string]string { return f.errs }

// Task assembles the current field values.
func (f Form) Task() model.Task {
	return model.Task{
		ID:          f.id,
		Title:       strings.TrimSpace(f.title.Value()),
		Description: f.desc.Value(),
		Status:      model.Statuses[f.statusIdx],
		Priority:    model.Priorities[f.priorityIdx],
		Category:    f.categories[f.categoryIdx],
		DueDate:     strings.TrimSpace(f.due.Value()),
	}
}

func (f Form) Init() tea.Cmd { return textinput.Blink }

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || f.state != formOpen {
		return f.updateFocused(msg)
	}

	inDesc := f.focus == fieldDescription
	switch {
	case key.Matches(km, f.keys.Cancel):
		f.state = formCanceled
		return f, nil

	case km.String() == "ctrl+s", key.Matches(km, f.keys.Submit) && !inDesc:
		f.submit()
		return f, nil

	case key.Matches(km, f.keys.Next) && !(inDesc && km.String() == "down"):
		cmd := f.setFocus((f.focus + 1) % fieldCount)
		return f, cmd

	case key.Matches(km, f.keys.Prev) && !(inDesc && km.String() == "up"):
		cmd := f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return f, cmd

	case key.Matches(km, f.keys.Left) && f.isSelector():
		f.cycle(-1)
		return f, nil

	case key.Matches(km, f.keys.Right) && f.isSelector():
		f.cycle(1)
		return f, nil
	}
	return f.updateFocused(msg)
}

func (f Form) updateFocused(msg tea.Msg) (Form, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDescription:
		f.desc, cmd = f.desc.Update(msg)
	case fieldDue:
		f.due, cmd = f.due.Update(msg)
	}
	return f, cmd
}

func (f Form) isSelector() bool {
	return f.focus == fieldStatus || f.focus == fieldPriority || f.focus == fieldCategory
}

func (f *Form) cycle(step int) {
	wrap := func(i, n int) int { return ((i+step)%n + n) % n }
	switch f.focus {
	case fieldStatus:
		f.statusIdx = wrap(f.statusIdx, len(model.Statuses))
	case fieldPriority:
		f.priorityIdx = wrap(f.priorityIdx, len(model.Priorities))
	case fieldCategory:
		f.categoryIdx = wrap(f.categoryIdx, len(f.categories))
	}
}

func (f *Form) setFocus(next field) tea.Cmd {
	f.focus = next
	f.title.Blur()
	f.desc.Blur()
	f.due.Blur()
	switch next {
	case fieldTitle:
		return f.title.Focus()
	case fieldDescription:
		return f.desc.Focus()
	case fieldDue:
		return f.due.Focus()
	}
	return nil
}

func (f *Form) submit() {
	task := f.Task()
	if err := model.Validate(task); err != nil {
		f.errs = model.FieldErrors(err)
		return
	}
	f.errs = nil
	f.out = task
	f.state = formSubmitted
}

func (f Form) View() string {
	t := f.theme
	heading, action := "Add New Task", "Create Task"
	if f.editing {
		heading, action = "Edit Task", "Update Task"
	}

	lines := []string{t.Title.Render(heading), ""}
	for i := field(0); i < fieldCount; i++ {
		label := fieldLabels[i]
		if i == f.focus {
			label = t.Accent.Render("▸ " + label)
		} else {
			label = t.Muted.Render("  " + label)
		}
		if msg, bad := f.errs[fieldNames[i]]; bad {
			label += "  " + t.Error.Render(msg)
		}
		lines = append(lines, label, f.fieldView(i), "")
	}

	if msg, bad := f.errs[""]; bad {
		lines = append(lines, t.Error.Render(msg), "")
	}
	lines = append(lines,
		t.Muted.Render("[ Cancel ]")+"  "+t.Selected.Render("[ "+action+" ]"),
		"",
		f.help.View(f.keys),
	)
	return Panel(t, lines)
}

func (f Form) fieldView(i field) string {
	switch i {
	case fieldTitle:
		return f.title.View()
	case fieldDescription:
		return f.desc.View()
	case fieldDue:
		return f.due.View()
	case fieldStatus:
		return f.selector(i, len(model.Statuses), f.statusIdx, func(j int) string { return string(model.Statuses[j]) })
	case fieldPriority:
		return f.selector(i, len(model.Priorities), f.priorityIdx, func(j int) string { return string(model.Priorities[j]) })
	case fieldCategory:
		return f.selector(i, len(f.categories), f.categoryIdx, func(j int) string { return f.categories[j] })
	}
	return ""
}

func (f Form) selector(i field, n, selected int, label func(int) string) string {
	t := f.theme
	parts := make([]string, 0, n)
	for j := 0; j < n; j++ {
		l := label(j)
		if j == selected {
			if i == f.focus {
				l = t.Selected.Render(" " + l + " ")
			} else {
				l = t.Accent.Render("(" + l + ")")
			}
		} else {
			l = t.Muted.Render(" " + l + " ")
		}
		parts = append(parts, l)
	}
	prefix := "  "
	if i == f.focus {
		prefix = t.Accent.Render("‹ ")
	}
	suffix := ""
	if i == f.focus {
		suffix = t.Accent.Render(" ›")
	}
	return prefix + strings.Join(parts, "") + suffix
}

// String is used in logs.
func (f Form) String() string {
	mode := "add"
	if f.editing {
		mode = "edit " + f.id
	}
	return fmt.Sprintf("form(%s)", mode)
}
