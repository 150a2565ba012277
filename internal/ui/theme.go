package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, symbols and box borders. Renderers take it as a
// value; there is no package-level current theme.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending, Info lipgloss.Style
	Selected, Strike                                    lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	SymDone, SymActive, SymTodo string
	BarFull, BarEmpty           string

	// Chart is cycled through for the category bars.
	Chart []lipgloss.Color
	// Gauge is the fill colour of the overall completion gauge.
	Gauge string
}

// ThemeByName returns classic, neon or mono; anything else is classic.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:        "neon",
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Info:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Strike:      lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			SymDone:     "✔", SymActive: "◐", SymTodo: "◻",
			BarFull: "█", BarEmpty: "░",
			Chart: []lipgloss.Color{"#00B3FF", "#39FF14", "#FF9F1C", "#FF2CF1", "#FF3B3B", "#00FFD0"},
			Gauge: "#FF2CF1",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain.Bold(true), Pending: plain, Info: plain,
			Selected: plain.Reverse(true), Strike: plain,
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
			SymDone:     "x", SymActive: "~", SymTodo: "-",
			BarFull: "#", BarEmpty: ".",
			Chart: []lipgloss.Color{""},
		}
	default:
		return Theme{
			Name:        "classic",
			Title:       lipgloss.NewStyle().Bold(true),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Info:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Strike:      lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
			SymDone:     "✔", SymActive: "◑", SymTodo: "☐",
			BarFull: "█", BarEmpty: "░",
			Chart: []lipgloss.Color{"#1976D2", "#388E3C", "#F57C00", "#9C27B0", "#D32F2F", "#0097A7"},
			Gauge: "#1976D2",
		}
	}
}

// box is the framed style every panel and card shares.
func (t Theme) box() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
}
