package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/taskboard/internal/board"
	"github.com/idilsaglam/taskboard/internal/client"
	"github.com/idilsaglam/taskboard/internal/model"
	"github.com/idilsaglam/taskboard/internal/stats"
)

// loadedMsg carries the startup fetch result.
type loadedMsg client.Result

// Options configure the dashboard. Everything the view depends on is
// passed here explicitly.
type Options struct {
	Theme     Theme
	Source    client.Source
	Board     *board.Board
	Logger    *zap.Logger
	LogoutURL string
}

// Dashboard is the Bubble Tea model for the whole screen.
type Dashboard struct {
	theme  Theme
	source client.Source
	board  *board.Board
	logger *zap.Logger

	keys keyMap
	help help.Model
	list list.Model
	view board.View
	form *Form

	loading       bool
	logoutURL     string
	loggingOut    bool
	width, height int
}

// NewDashboard builds the model. The board starts empty and is seeded
// when the fetch started by Init completes.
func NewDashboard(opt Options) Dashboard {
	if opt.Board == nil {
		opt.Board = board.New()
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}

	l := list.New(nil, taskDelegate{theme: opt.Theme}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")
	l.Styles.PaginationStyle = opt.Theme.Muted
	l.Styles.StatusBar = opt.Theme.Muted

	d := Dashboard{
		theme:     opt.Theme,
		source:    opt.Source,
		board:     opt.Board,
		logger:    opt.Logger,
		keys:      defaultKeys(),
		help:      help.New(),
		list:      l,
		loading:   opt.Source != nil,
		logoutURL: opt.LogoutURL,
		width:     120,
		height:    40,
	}
	d.resize()
	d.refresh()
	return d
}

// Init starts the one-off fetch. There is no cancellation; the program
// simply ignores a result that arrives after quitting.
func (m Dashboard) Init() tea.Cmd {
	if m.source == nil {
		return nil
	}
	src, logger := m.source, m.logger
	return func() tea.Msg {
		return loadedMsg(client.Load(context.Background(), src, logger))
	}
}

// Board exposes the collection, e.g. for tests and the final summary.
func (m Dashboard) Board() *board.Board { return m.board }

// CurrentView is the active status filter.
func (m Dashboard) CurrentView() board.View { return m.view }

// LoggingOut reports whether the user quit through the logout key.
func (m Dashboard) LoggingOut() bool { return m.loggingOut }

// FormOpen reports whether the add/edit form is showing.
func (m Dashboard) FormOpen() bool { return m.form != nil }

// Visible returns the tasks shown in the current tab.
func (m Dashboard) Visible() []model.Task {
	items := m.list.Items()
	out := make([]model.Task, 0, len(items))
	for _, it := range items {
		if ti, ok := it.(taskItem); ok {
			out = append(out, ti.task)
		}
	}
	return out
}

func (m Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case loadedMsg:
		m.loading = false
		res := client.Result(msg)
		if !res.OK() {
			// The board keeps whatever the user added while loading.
			return m, nil
		}
		local := m.board.Tasks()
		merged := make([]model.Task, 0, len(res.Tasks)+len(local))
		merged = append(merged, res.Tasks...)
		merged = append(merged, local...)
		m.board.Seed(merged)
		m.logger.Debug("board seeded", zap.Int("fetched", len(res.Tasks)), zap.Int("local", len(local)))
		m.refresh()
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.SettingFilter() {
		return m.updateList(msg)
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(km, m.keys.Logout):
		m.loggingOut = true
		return m, tea.Quit

	case key.Matches(km, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(km, m.keys.NextTab):
		m.setView(board.View((int(m.view) + 1) % len(board.Views)))
		return m, nil

	case key.Matches(km, m.keys.PrevTab):
		m.setView(board.View((int(m.view) + len(board.Views) - 1) % len(board.Views)))
		return m, nil

	case key.Matches(km, m.keys.GoTab):
		m.setView(board.Views[int(km.Runes[0]-'1')])
		return m, nil

	case key.Matches(km, m.keys.Add):
		return m.openForm(nil)

	case key.Matches(km, m.keys.Edit):
		if task, ok := m.selected(); ok {
			return m.openForm(&task)
		}
		return m, nil

	case key.Matches(km, m.keys.Delete):
		if task, ok := m.selected(); ok {
			m.board.Delete(task.ID)
			m.logger.Debug("task deleted", zap.String("id", task.ID))
			m.refresh()
		}
		return m, nil

	case key.Matches(km, m.keys.StatusNext), key.Matches(km, m.keys.StatusPrev):
		if task, ok := m.selected(); ok {
			next := task.Status.Next()
			if key.Matches(km, m.keys.StatusPrev) {
				next = task.Status.Prev()
			}
			m.board.SetStatus(task.ID, next)
			m.logger.Debug("status changed", zap.String("id", task.ID), zap.String("status", string(next)))
			m.refresh()
		}
		return m, nil
	}
	return m.updateList(msg)
}

func (m Dashboard) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Dashboard) openForm(task *model.Task) (tea.Model, tea.Cmd) {
	f := NewForm(m.theme, task)
	f.SetWidth(m.formWidth())
	m.form = &f
	m.logger.Debug("form opened", zap.Stringer("form", f))
	return m, f.Init()
}

func (m Dashboard) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f, cmd := m.form.Update(msg)
	m.form = &f

	if f.Canceled() {
		m.form = nil
		return m, nil
	}
	if task, ok := f.Submitted(); ok {
		if f.Editing() {
			m.board.Update(task)
		} else {
			task = m.board.Add(task)
		}
		m.logger.Debug("form saved", zap.Stringer("form", f), zap.String("id", task.ID))
		m.form = nil
		m.refresh()
		m.selectID(task.ID)
		return m, nil
	}
	return m, cmd
}

func (m *Dashboard) setView(v board.View) {
	m.view = v
	m.list.ResetFilter()
	m.list.Select(0)
	m.refresh()
}

// refresh rebuilds the list from the canonical collection, keeping the
// cursor on the same task where possible.
func (m *Dashboard) refresh() {
	prev, hadPrev := m.selected()
	idx := m.list.Index()
	m.list.SetItems(toItems(m.board.View(m.view)))
	if hadPrev && m.selectID(prev.ID) {
		return
	}
	if n := len(m.list.Items()); idx >= n && n > 0 {
		idx = n - 1
	}
	m.list.Select(idx)
}

func (m *Dashboard) selectID(id string) bool {
	for i, it := range m.list.Items() {
		if ti, ok := it.(taskItem); ok && ti.task.ID == id {
			m.list.Select(i)
			return true
		}
	}
	return false
}

func (m Dashboard) selected() (model.Task, bool) {
	it, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}
	return it.task, true
}

func (m Dashboard) leftWidth() int {
	w := m.width * 2 / 3
	if w < 40 {
		w = 40
	}
	return w
}

func (m Dashboard) formWidth() int {
	w := m.width / 2
	if w < 40 {
		w = 40
	}
	return w
}

// resize fits the list into what is left after header, cards, tabs and help.
func (m *Dashboard) resize() {
	m.help.Width = m.width
	h := m.height - 18
	if m.help.ShowAll {
		h -= 3
	}
	if h < 6 {
		h = 6
	}
	m.list.SetSize(m.leftWidth()-4, h)
	if m.form != nil {
		m.form.SetWidth(m.formWidth())
	}
}

func (m Dashboard) View() string {
	t := m.theme
	s := stats.Compute(m.board.Tasks())

	header := t.Title.Render(t.SymDone+" TaskMaster") + "  " + t.Muted.Render("L logout")
	if m.loading {
		header += "  " + t.Pending.Render("loading…")
	}

	var main string
	if m.form != nil {
		main = lipgloss.Place(m.width, lipgloss.Height(m.form.View()), lipgloss.Center, lipgloss.Top, m.form.View())
	} else {
		main = lipgloss.JoinHorizontal(lipgloss.Top,
			m.tasksPanel(),
			StatsPanel(t, s, m.width-m.leftWidth()),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		SummaryCards(t, s, m.width),
		main,
		m.help.View(m.keys),
	)
}

func (m Dashboard) tasksPanel() string {
	t := m.theme
	lines := []string{
		t.Title.Render("Tasks") + "  " + t.Muted.Render("Manage your tasks and track progress"),
		m.tabs(),
		"",
	}
	if len(m.list.Items()) == 0 && !m.loading {
		lines = append(lines,
			t.Title.Render("No tasks found"),
			t.Muted.Render("Get started by creating a new task (press a)."),
		)
	} else {
		lines = append(lines, m.list.View())
	}
	return PanelWidth(t, m.leftWidth(), lines)
}

func (m Dashboard) tabs() string {
	t := m.theme
	parts := make([]string, 0, len(board.Views))
	for i, v := range board.Views {
		label := fmt.Sprintf("%d %s", i+1, v)
		if v == m.view {
			parts = append(parts, t.Selected.Render(" "+label+" "))
		} else {
			parts = append(parts, t.Muted.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, t.Muted.Render("│"))
}
