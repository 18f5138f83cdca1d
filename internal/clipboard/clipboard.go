// =============================================================================
// BOM Discount Calculator - Clipboard Access
// =============================================================================
//
// The clipboard is both the input (a BOM copied from the ERP) and the output
// (the discount rate pasted into the PO) of a calculation. Every access is a
// single blocking call that either succeeds or fails, there are no retries.
//
// =============================================================================

package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when the system clipboard cannot be used,
// e.g. no clipboard utility is installed or access was denied.
var ErrUnavailable = errors.New("could not access the clipboard")

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// System is the operating system clipboard.
type System struct{}

// NewSystem returns the system clipboard.
func NewSystem() *System {
	return &System{}
}

// ReadText returns the current clipboard text.
func (System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}

	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return text, nil
}

// WriteText replaces the clipboard contents with text.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return nil
}

// Memory is an in-process clipboard. It is safe for concurrent use.
type Memory struct {
	mu   sync.Mutex
	text string
	err  error
}

// NewMemory returns a Memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// Fail makes every following call return ErrUnavailable wrapping cause.
// Passing nil restores normal operation.
func (m *Memory) Fail(cause error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = cause
}

// ReadText returns the stored text.
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, m.err)
	}
	return m.text, nil
}

// WriteText stores text.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, m.err)
	}
	m.text = text
	return nil
}
