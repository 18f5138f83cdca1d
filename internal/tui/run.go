package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/ginjaninja78/bom-discount-calculator/internal/clipboard"
	"github.com/ginjaninja78/bom-discount-calculator/internal/discount"
)

// Run starts the interactive calculator and blocks until the user quits.
func Run(engine *discount.Engine, cb clipboard.Clipboard, logger zerolog.Logger) error {
	p := tea.NewProgram(NewModel(engine, cb, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive mode: %w", err)
	}
	return nil
}
