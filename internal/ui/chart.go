package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/taskboard/internal/stats"
)

// Chart draws one vertical bar per category, percentage above and
// category name below. height is the tallest a bar can be.
func Chart(t Theme, bars []stats.Bar, width, height int) string {
	if len(bars) == 0 {
		return t.Muted.Render("No data yet")
	}
	if height < 1 {
		height = 1
	}
	col := width / len(bars)
	if col < 4 {
		col = 4
	}
	barW := col - 1

	cell := func(s string) string {
		return lipgloss.PlaceHorizontal(col, lipgloss.Center, s)
	}

	rows := make([]string, 0, height+2)
	for r := 0; r <= height; r++ {
		var line strings.Builder
		for i, b := range bars {
			top := height - b.Height
			switch {
			case r == top:
				line.WriteString(cell(t.Title.Render(fmt.Sprintf("%d%%", b.Percent))))
			case r > top:
				fill := lipgloss.NewStyle().Foreground(t.Chart[i%len(t.Chart)])
				line.WriteString(cell(fill.Render(strings.Repeat(t.BarFull, barW))))
			default:
				line.WriteString(strings.Repeat(" ", col))
			}
		}
		rows = append(rows, strings.TrimRight(line.String(), " "))
	}

	var labels strings.Builder
	for _, b := range bars {
		labels.WriteString(cell(t.Muted.Render(truncate(b.Label, barW))))
	}
	rows = append(rows, strings.TrimRight(labels.String(), " "))
	return strings.Join(rows, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}
