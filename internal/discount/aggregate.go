// =============================================================================
// BOM Discount Calculator - Cost Aggregator
// =============================================================================
//
// This module sums quantity * unit price over every data row of a BOM.
//
// LENIENT AGGREGATION:
//   Pasted tables often end with blank rows, subtotal rows or footers. A row
//   whose product does not parse to a non-zero number contributes zero
//   instead of aborting the calculation. Non-blank rows skipped this way are
//   reported as diagnostics so the caller can show them.
//
// PRECISION:
//   The sum is kept at full decimal precision. Rounding happens only when a
//   figure is presented.
//
// =============================================================================

package discount

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
)

var hundred = decimal.NewFromInt(100)

// plainNumber matches a signed decimal without exponent.
var plainNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// ParseNumber converts a pasted numeric cell to a decimal.
// Thousands-separator commas and surrounding whitespace are removed first,
// so "1,234.50" and "1234.50" parse to the same value.
// It reports false for empty or non-numeric cells, including exponent
// notation such as "1e5".
func ParseNumber(cell string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(cell, ",", ""))
	if !plainNumber.MatchString(s) {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// TotalCost sums quantity * unit price over the data rows of a matrix.
//
// PARAMETERS:
//   - matrix:  The parsed BOM. Row 0 is skipped as the header.
//   - columns: The resolved column positions.
//
// RETURNS:
//   - The full-precision total.
//   - Diagnostics for non-blank rows that contributed nothing.
func TotalCost(matrix types.Matrix, columns types.ColumnIndexMap) (decimal.Decimal, []types.Diagnostic) {
	qtyIdx := columns.Index(types.FieldQuantity)
	priceIdx := columns.Index(types.FieldUnitPrice)

	total := decimal.Zero
	var diagnostics []types.Diagnostic

	for i, row := range matrix.DataRows() {
		rowNumber := i + 1

		qtyCell := types.RowCell(row, qtyIdx)
		priceCell := types.RowCell(row, priceIdx)

		qty, qtyOK := ParseNumber(qtyCell)
		price, priceOK := ParseNumber(priceCell)

		if qtyOK && priceOK {
			amount := qty.Mul(price)
			if !amount.IsZero() {
				total = total.Add(amount)
				continue
			}
		}

		if isBlankRow(row) {
			continue
		}

		diagnostics = append(diagnostics, skippedRow(rowNumber, qtyCell, qtyOK, priceCell, priceOK))
	}

	return total, diagnostics
}

// skippedRow describes why a non-blank row contributed nothing.
func skippedRow(row int, qtyCell string, qtyOK bool, priceCell string, priceOK bool) types.Diagnostic {
	switch {
	case !qtyOK && strings.TrimSpace(qtyCell) != "":
		return types.Diagnostic{
			Severity: types.SeverityWarning,
			Row:      row,
			Field:    types.FieldQuantity,
			Value:    qtyCell,
			Message:  fmt.Sprintf("quantity %q is not a number; row skipped", qtyCell),
		}
	case !priceOK && strings.TrimSpace(priceCell) != "":
		return types.Diagnostic{
			Severity: types.SeverityWarning,
			Row:      row,
			Field:    types.FieldUnitPrice,
			Value:    priceCell,
			Message:  fmt.Sprintf("unit price %q is not a number; row skipped", priceCell),
		}
	case !qtyOK || !priceOK:
		return types.Diagnostic{
			Severity: types.SeverityInfo,
			Row:      row,
			Message:  "quantity or unit price is empty; row skipped",
		}
	default:
		return types.Diagnostic{
			Severity: types.SeverityInfo,
			Row:      row,
			Message:  "line cost is zero",
		}
	}
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
