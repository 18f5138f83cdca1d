// =============================================================================
// BOM Discount Calculator - Shared Types
// =============================================================================
//
// This package contains the types shared by the parsing, schema, discount,
// rendering and export modules. Keeping them here avoids import cycles:
//   - tabular   produces a Matrix
//   - schema    produces a ColumnIndexMap
//   - discount  produces a CalculationResult
//   - render    consumes a CalculationResult
//   - export    consumes a CalculationResult
//
// =============================================================================

package types

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MATRIX
// =============================================================================

// Matrix is a pasted table split into rows of raw cells.
// Row 0 is always the header row. Rows are not required to have equal length.
type Matrix [][]string

// Header returns the header row, or nil when the matrix is empty.
func (m Matrix) Header() []string {
	if len(m) == 0 {
		return nil
	}
	return m[0]
}

// DataRows returns every row after the header.
func (m Matrix) DataRows() [][]string {
	if len(m) < 2 {
		return nil
	}
	return m[1:]
}

// Cell returns the raw value at (row, col).
// Missing trailing cells and col == NotFound yield an empty string.
func (m Matrix) Cell(row, col int) string {
	if row < 0 || row >= len(m) {
		return ""
	}
	return RowCell(m[row], col)
}

// RowCell returns the raw value of a single row at col, or "" when absent.
func RowCell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// =============================================================================
// FIELDS AND COLUMN INDEXES
// =============================================================================

// Field is the logical name of a BOM column.
type Field string

const (
	FieldCode                Field = "code"
	FieldDescription         Field = "description"
	FieldQuantity            Field = "quantity"
	FieldUnitPrice           Field = "unitPrice"
	FieldLineDiscount        Field = "lineDiscount"
	FieldDiscountedUnitPrice Field = "discountedUnitPrice"
	FieldLineAmount          Field = "lineAmount"
)

// Fields lists every logical field in display order.
var Fields = []Field{
	FieldCode,
	FieldDescription,
	FieldQuantity,
	FieldUnitPrice,
	FieldLineDiscount,
	FieldDiscountedUnitPrice,
	FieldLineAmount,
}

// NotFound marks a field whose label is absent from the header row.
const NotFound = -1

// ColumnIndexMap maps each logical field to its zero-based header position.
// Absent fields map to NotFound.
type ColumnIndexMap map[Field]int

// Index returns the position of a field, or NotFound when unmapped.
func (c ColumnIndexMap) Index(f Field) int {
	idx, ok := c[f]
	if !ok {
		return NotFound
	}
	return idx
}

// Found reports whether the field resolved to a header column.
func (c ColumnIndexMap) Found(f Field) bool {
	return c.Index(f) != NotFound
}

// =============================================================================
// RESULT TYPES
// =============================================================================

// Alignment is the horizontal alignment of a rendered column.
type Alignment string

const (
	AlignLeft  Alignment = "left"
	AlignRight Alignment = "right"
)

// Column describes how a LineItem field is rendered.
type Column struct {
	Field  Field     `json:"field"`
	Header string    `json:"header"`
	Align  Alignment `json:"align"`
	Prefix string    `json:"prefix,omitempty"`
	Suffix string    `json:"suffix,omitempty"`
}

// Format decorates a non-empty value with the column prefix and suffix.
// Empty values render as an empty cell.
func (c Column) Format(value string) string {
	if value == "" {
		return ""
	}
	return c.Prefix + value + c.Suffix
}

// LineItem is the projected view of one BOM data row.
type LineItem struct {
	// SourceRow is the row's index in the parsed matrix. The header is row 0,
	// so the first data row is 1. Diagnostic.Row uses the same numbering.
	SourceRow int `json:"source_row"`

	Code        string `json:"code"`
	Description string `json:"description"`

	// Quantity and UnitPrice are kept exactly as pasted.
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`

	// LineDiscount is the uniform rate, or "" when the row has no unit price.
	LineDiscount string `json:"line_discount"`

	// DiscountedUnitPrice and LineAmount are 2-decimal strings or "".
	DiscountedUnitPrice string `json:"discounted_unit_price"`
	LineAmount          string `json:"line_amount"`
}

// Value returns the display value of a field.
func (l LineItem) Value(f Field) string {
	switch f {
	case FieldCode:
		return l.Code
	case FieldDescription:
		return l.Description
	case FieldQuantity:
		return l.Quantity
	case FieldUnitPrice:
		return l.UnitPrice
	case FieldLineDiscount:
		return l.LineDiscount
	case FieldDiscountedUnitPrice:
		return l.DiscountedUnitPrice
	case FieldLineAmount:
		return l.LineAmount
	default:
		return ""
	}
}

// Severity classifies a Diagnostic.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic reports a row that was tolerated rather than rejected,
// e.g. a footer row whose quantity does not parse.
type Diagnostic struct {
	Severity Severity `json:"severity"`

	// Row is the matrix index of the row; data rows start at 1.
	Row int `json:"row"`

	Field   Field  `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// CalculationResult is the immutable outcome of one discount calculation.
// It is created fresh for every calculation and replaced, never merged,
// by the next one.
type CalculationResult struct {
	// TotalCost is the full-precision sum of quantity * unit price.
	TotalCost decimal.Decimal `json:"total_cost"`

	// TargetPrice is the PO price the discount was solved for.
	TargetPrice decimal.Decimal `json:"target_price"`

	// Rate is the discount percentage rounded to RateDecimals places.
	// Positive means a discount, negative a surcharge.
	Rate decimal.Decimal `json:"rate"`

	// RateText is Rate formatted with a fixed number of decimals.
	// This is the value copied to the clipboard.
	RateText string `json:"rate_text"`

	Columns []Column   `json:"columns"`
	Lines   []LineItem `json:"lines"`

	// GrandTotal is the sum of all 2-decimal line amounts.
	GrandTotal decimal.Decimal `json:"grand_total"`

	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// GrandTotalText formats the grand total with two decimals.
func (r *CalculationResult) GrandTotalText() string {
	return r.GrandTotal.StringFixed(2)
}
