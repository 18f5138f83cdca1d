package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ginjaninja78/bom-discount-calculator/internal/render"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	noticeStyle = lipgloss.NewStyle().Foreground(render.AccentColor)
)

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("BOM Discount Calculator"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.busy {
		b.WriteString(render.SubtleStyle.Render("Reading BOM from clipboard..."))
		b.WriteString("\n\n")
	}
	if m.alert != "" {
		b.WriteString(render.Alert(m.alert))
		b.WriteString("\n\n")
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	if m.result != nil {
		b.WriteString(render.Table(m.result))
		b.WriteString("\n\n")
		b.WriteString(render.RateStyle.Render(render.DiscountLine(m.result)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.helpView())
	return b.String()
}

func (m Model) helpView() string {
	bindings := []key.Binding{m.keymap.Calculate}
	if m.result != nil {
		bindings = append(bindings, m.keymap.Copy)
	}
	bindings = append(bindings, m.keymap.Quit)

	return m.help.ShortHelpView(bindings)
}
