package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

// calculate reads the BOM from the clipboard and prices it.
func (m Model) calculate(target decimal.Decimal) tea.Cmd {
	return func() tea.Msg {
		raw, err := m.clipboard.ReadText()
		if err != nil {
			return calculatedMsg{err: err}
		}

		result, err := m.engine.Calculate(raw, target)
		return calculatedMsg{result: result, err: err}
	}
}

// copyRate writes the discount rate to the clipboard.
func (m Model) copyRate(rate string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: m.clipboard.WriteText(rate)}
	}
}

// clearNoticeAfter hides notice id after d.
func clearNoticeAfter(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}
