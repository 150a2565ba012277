package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/taskboard/internal/board"
	"github.com/idilsaglam/taskboard/internal/stats"
	"github.com/idilsaglam/taskboard/internal/ui"
)

// runDash starts the Bubble Tea dashboard and reports on the session when
// it ends. Nothing is written back.
func runDash(a *app) error {
	m := ui.NewDashboard(ui.Options{
		Theme:     a.theme,
		Source:    a.source,
		Board:     board.New(),
		Logger:    a.logger.Named("ui"),
		LogoutURL: ui.LogoutURL(a.cfg.Identity.Issuer, a.cfg.Identity.LogoutRedirect),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	fm, ok := final.(ui.Dashboard)
	if !ok {
		return nil
	}

	s := stats.Compute(fm.Board().Tasks())
	ui.OK(a.stdout, a.theme, fmt.Sprintf("%d tasks, %d%% complete (session only, not saved)", s.Total, s.RoundedRate()))
	if fm.LoggingOut() {
		fmt.Fprintln(a.stdout, "Log out at:", ui.LogoutURL(a.cfg.Identity.Issuer, a.cfg.Identity.LogoutRedirect))
	}
	return nil
}
