package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/taskboard/internal/stats"
)

const chartHeight = 8

// StatsPanel is the "Task Statistics" column: the overall gauge, the
// per-category chart and the per-status counts.
func StatsPanel(t Theme, s stats.Stats, width int) string {
	inner := width - 4
	if inner < 16 {
		inner = 16
	}

	gauge := progress.New(
		progress.WithSolidFill(t.Gauge),
		progress.WithWidth(inner-6),
		progress.WithoutPercentage(),
	)
	rate := fmt.Sprintf("%s %3d%%", gauge.ViewAs(s.CompletionRate/100), s.RoundedRate())

	counts := lipgloss.JoinHorizontal(lipgloss.Top,
		countCell(t, "To Do", s.Todo, inner/3),
		countCell(t, "In Progress", s.InProgress, inner/3),
		countCell(t, "Completed", s.Completed, inner/3),
	)

	lines := []string{
		t.Title.Render("Task Statistics"),
		t.Muted.Render("Task completion by category"),
		"",
		rate,
		t.Muted.Render("Overall completion rate"),
		"",
		Chart(t, s.Bars(chartHeight), inner, chartHeight),
		"",
		t.Muted.Render(strings.Repeat(t.Border.Top, inner)),
		counts,
	}
	return PanelWidth(t, width, lines)
}

func countCell(t Theme, label string, n, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(
		t.Muted.Render(label) + "\n" + t.Title.Render(fmt.Sprint(n)),
	)
}

// SummaryCards is the row of Total / Completed / In Progress / Pending
// cards above the task list.
func SummaryCards(t Theme, s stats.Stats, width int) string {
	w := width / 4
	if w < 18 {
		w = 18
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card(t, w, "Total Tasks", s.Total, ""),
		card(t, w, "Completed", s.Completed, ProgressBar(t, s.Completed, s.Total, w-10)),
		card(t, w, "In Progress", s.InProgress, fmt.Sprintf("%d tasks currently active", s.InProgress)),
		card(t, w, "Pending", s.Todo, fmt.Sprintf("%d tasks waiting", s.Todo)),
	)
}

func card(t Theme, width int, label string, value int, extra string) string {
	return PanelWidth(t, width, []string{
		t.Muted.Render(label),
		t.Title.Render(fmt.Sprint(value)),
		t.Muted.Render(extra),
	})
}
