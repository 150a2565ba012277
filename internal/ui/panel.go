package ui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/taskboard/internal/stats"
)

// ProgressBar renders a bar with the rounded percentage of done/total.
func ProgressBar(t Theme, done, total, width int) string {
	if width < 5 {
		width = 5
	}
	pct := stats.Percent(done, total)
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := t.Success.Render(strings.Repeat(t.BarFull, filled)) + t.Muted.Render(strings.Repeat(t.BarEmpty, width-filled))
	return fmt.Sprintf("%s %3d%%", bar, stats.Round(pct))
}

// Panel frames lines in the theme's border.
func Panel(t Theme, lines []string) string {
	return t.box().Render(strings.Join(lines, "\n"))
}

// PanelWidth is Panel with a fixed outer width.
func PanelWidth(t Theme, width int, lines []string) string {
	s := t.box()
	// Width excludes the border.
	if w := width - s.GetHorizontalBorderSize(); w > 0 {
		s = s.Width(w)
	}
	return s.Render(strings.Join(lines, "\n"))
}
