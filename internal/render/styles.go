// Package render formats calculation results for the terminal.
package render

import "github.com/charmbracelet/lipgloss"

var (
	// AccentColor highlights the discount rate.
	AccentColor = lipgloss.Color("#4ECDC4")
	// WarningColor marks diagnostics.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor marks failures.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor is used for borders and secondary text.
	SubtleColor = lipgloss.Color("#666666")

	// HeaderStyle formats the table header row.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	// CellStyle formats table cells.
	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// TotalStyle formats the grand total row.
	TotalStyle = CellStyle.
			Bold(true)

	// RateStyle formats the discount line.
	RateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)

	// WarningStyle formats diagnostics.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error alerts.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor)

	// SubtleStyle formats secondary text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BorderStyle colors the table border.
	BorderStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)
