package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
	"github.com/ginjaninja78/bom-discount-calculator/internal/validation"
)

// Format selects the output representation of a result.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates an --output value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table or json)", s)
	}
}

// TotalLabel is written in the first column of the grand total row.
const TotalLabel = "Total"

// Rows returns the formatted body of the breakdown: one row per line item
// followed by the grand total row. Empty values stay empty and are never
// decorated with a prefix or suffix.
func Rows(result *types.CalculationResult) [][]string {
	rows := make([][]string, 0, len(result.Lines)+1)

	for _, line := range result.Lines {
		row := make([]string, len(result.Columns))
		for i, col := range result.Columns {
			row[i] = col.Format(line.Value(col.Field))
		}
		rows = append(rows, row)
	}

	total := make([]string, len(result.Columns))
	if len(total) > 0 {
		total[0] = TotalLabel
		last := result.Columns[len(total)-1]
		total[len(total)-1] = last.Format(result.GrandTotalText())
	}

	return append(rows, total)
}

// Headers returns the column headers in display order.
func Headers(result *types.CalculationResult) []string {
	headers := make([]string, len(result.Columns))
	for i, col := range result.Columns {
		headers[i] = col.Header
	}
	return headers
}

// DiscountLine returns the summary shown under the table.
func DiscountLine(result *types.CalculationResult) string {
	return "Discount: " + result.RateText + "%"
}

// Table renders the breakdown as a bordered terminal table.
func Table(result *types.CalculationResult) string {
	rows := Rows(result)
	totalRow := len(rows) - 1

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		Headers(Headers(result)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := CellStyle
			switch {
			case row == table.HeaderRow:
				style = HeaderStyle
			case row == totalRow:
				style = TotalStyle
			}

			if col < len(result.Columns) && result.Columns[col].Align == types.AlignRight {
				return style.Align(lipgloss.Right)
			}
			return style.Align(lipgloss.Left)
		})

	return t.String()
}

// Write renders result to w in the requested format.
func Write(w io.Writer, result *types.CalculationResult, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	default:
		_, err := fmt.Fprintf(w, "%s\n\n%s\n", Table(result), RateStyle.Render(DiscountLine(result)))
		return err
	}
}

// WriteDiagnostics prints the tolerated problems of a calculation.
// Nothing is written when there are none.
func WriteDiagnostics(w io.Writer, diagnostics []types.Diagnostic) error {
	for _, d := range diagnostics {
		line := validation.FormatDiagnostic(d)
		if d.Severity == types.SeverityWarning {
			line = WarningStyle.Render(line)
		} else {
			line = SubtleStyle.Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Alert renders the single user-facing error message.
func Alert(message string) string {
	return ErrorStyle.Render(message)
}
