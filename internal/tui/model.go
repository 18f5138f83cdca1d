package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/ginjaninja78/bom-discount-calculator/internal/clipboard"
	"github.com/ginjaninja78/bom-discount-calculator/internal/discount"
	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
	"github.com/ginjaninja78/bom-discount-calculator/internal/validation"
)

// CopiedNotice is shown after the discount was copied.
const CopiedNotice = "Discount copied to your clipboard!"

// NoticeDuration is how long a notice stays visible.
const NoticeDuration = 3 * time.Second

// Model holds the TUI state. A calculation result is replaced wholesale by
// the next calculation and dropped entirely after a copy.
type Model struct {
	engine    *discount.Engine
	clipboard clipboard.Clipboard
	logger    zerolog.Logger
	keymap    KeyMap
	help      help.Model
	input     textinput.Model
	result    *types.CalculationResult
	alert     string
	notice    string
	noticeID  int
	busy      bool
	quitting  bool
}

// NewModel creates a model reading BOMs from cb and pricing them with engine.
func NewModel(engine *discount.Engine, cb clipboard.Clipboard, logger zerolog.Logger) Model {
	input := textinput.New()
	input.Prompt = "PO Price: € "
	input.Placeholder = "0.00"
	input.CharLimit = 16
	input.Focus()

	return Model{
		engine:    engine,
		clipboard: cb,
		logger:    logger,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		input:     input,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case calculatedMsg:
		m.busy = false
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("calculation failed")
			m.result = nil
			m.alert = discount.UserMessage(msg.err)
			return m, nil
		}
		m.result = msg.result
		m.alert = ""
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Msg("copy failed")
			m.alert = discount.UserMessage(msg.err)
			return m, nil
		}
		m.reset()
		m.noticeID++
		m.notice = CopiedNotice
		return m, clearNoticeAfter(m.noticeID, NoticeDuration)

	case clearNoticeMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Calculate):
		if m.busy {
			return m, nil
		}
		target, err := validation.ParseTargetPrice(m.input.Value())
		if err != nil {
			m.alert = discount.UserMessage(err)
			return m, nil
		}
		m.busy = true
		m.alert = ""
		return m, m.calculate(target)

	case key.Matches(msg, m.keymap.Copy):
		if m.busy || m.result == nil {
			return m, nil
		}
		return m, m.copyRate(m.result.RateText)
	}

	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if !validation.IsPriceRune(r) {
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if sanitized := validation.SanitizePriceInput(m.input.Value()); sanitized != m.input.Value() {
		m.input.SetValue(sanitized)
		m.input.CursorEnd()
	}
	return m, cmd
}

// reset clears the price, the result and any alert.
func (m *Model) reset() {
	m.input.Reset()
	m.result = nil
	m.alert = ""
}

// Result returns the current calculation result, if any.
func (m Model) Result() *types.CalculationResult {
	return m.result
}

// Price returns the current PO price input.
func (m Model) Price() string {
	return m.input.Value()
}
