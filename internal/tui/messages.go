package tui

import "github.com/ginjaninja78/bom-discount-calculator/internal/types"

// calculatedMsg carries the outcome of a calculation.
type calculatedMsg struct {
	result *types.CalculationResult
	err    error
}

// copiedMsg reports whether the discount reached the clipboard.
type copiedMsg struct {
	err error
}

// clearNoticeMsg hides the notice with the given id.
type clearNoticeMsg struct {
	id int
}
