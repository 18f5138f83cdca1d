// =============================================================================
// BOM Discount Calculator - Validation Report
// =============================================================================
//
// This module turns the diagnostics collected while pricing a BOM into a
// report for the user.
//
// ERROR HANDLING:
//   - Problems are collected, not raised. A malformed cell never stops a
//     calculation, it only leaves a blank figure in the breakdown.
//   - Each entry carries its context (row, field, value) so the user can
//     find the offending line in the source document.
//   - Warnings mark cells that could not be read. Info entries mark rows
//     that were skipped on purpose.
//
// =============================================================================

package validation

import (
	"fmt"
	"os"
	"strings"

	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
)

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// Report summarizes the diagnostics of one payload.
type Report struct {
	// Diagnostics contains every entry in row order.
	Diagnostics []types.Diagnostic

	// WarningCount is the number of unreadable cells.
	WarningCount int

	// InfoCount is the number of skipped rows.
	InfoCount int

	// RowsChecked is the number of data rows in the payload.
	RowsChecked int
}

// NewReport builds a report from diagnostics.
func NewReport(rows int, diagnostics []types.Diagnostic) *Report {
	report := &Report{
		Diagnostics: diagnostics,
		RowsChecked: rows,
	}

	for _, d := range diagnostics {
		switch d.Severity {
		case types.SeverityWarning:
			report.WarningCount++
		case types.SeverityInfo:
			report.InfoCount++
		}
	}

	return report
}

// Clean reports whether every cell could be read.
func (r *Report) Clean() bool {
	return r.WarningCount == 0
}

// Summary returns a one-line description of the report.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d row(s) checked: %d warning(s), %d skipped",
		r.RowsChecked, r.WarningCount, r.InfoCount)
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatDiagnostic formats a single entry.
//
// Example:
//   [WARNING] Row 4, Field 'quantity': not a number (value: 'abc')
func FormatDiagnostic(d types.Diagnostic) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[%s] Row %d", strings.ToUpper(string(d.Severity)), d.Row)
	if d.Field != "" {
		fmt.Fprintf(&builder, ", Field '%s'", d.Field)
	}
	fmt.Fprintf(&builder, ": %s", d.Message)
	if d.Value != "" {
		fmt.Fprintf(&builder, " (value: '%s')", d.Value)
	}

	return builder.String()
}

// FormatDiagnostics formats all entries for display or logging.
//
// PARAMETERS:
//   - diagnostics: The entries to format.
//
// RETURNS:
//   - A formatted string containing all entries.
func FormatDiagnostics(diagnostics []types.Diagnostic) string {
	if len(diagnostics) == 0 {
		return "No problems found.\n"
	}

	var builder strings.Builder

	fmt.Fprintf(&builder, "Found %d problem(s):\n\n", len(diagnostics))
	for i, d := range diagnostics {
		fmt.Fprintf(&builder, "%d. %s\n", i+1, FormatDiagnostic(d))
	}

	return builder.String()
}

// WriteDiagnosticLog writes the report to a file.
//
// PARAMETERS:
//   - report:   The report to write.
//   - filePath: The path to the output file.
//
// RETURNS:
//   - An error if writing fails.
func WriteDiagnosticLog(report *Report, filePath string) error {
	content := report.Summary() + "\n\n" + FormatDiagnostics(report.Diagnostics)

	if err := os.WriteFile(filePath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write diagnostic log: %w", err)
	}

	return nil
}
