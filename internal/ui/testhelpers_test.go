package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyCtrlS    = tea.KeyMsg{Type: tea.KeyCtrlS}
)

// press feeds msgs to the dashboard in order, dropping returned commands.
func press(m Dashboard, msgs ...tea.Msg) Dashboard {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Dashboard)
	}
	return m
}

func pressForm(f Form, msgs ...tea.Msg) Form {
	for _, msg := range msgs {
		f, _ = f.Update(msg)
	}
	return f
}
