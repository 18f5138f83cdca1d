// =============================================================================
// BOM Discount Calculator - Schema Resolver
// =============================================================================
//
// This module locates the BOM columns in the header row of a pasted table.
// Column labels are fixed strings exported by the ERP system; there is no
// fuzzy matching and no schema negotiation.
//
// MATCHING RULES:
//   - Exact comparison: case sensitive and whitespace sensitive
//   - The first matching header cell wins
//   - A label that does not appear resolves to types.NotFound (-1)
//
// REQUIRED COLUMNS:
//   Only "Quantity" and "Unit Price Excl. VAT" are required; every other
//   column is optional and renders blank when absent.
//
// =============================================================================

package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
)

// ErrMissingColumns is wrapped by MissingColumnsError.
var ErrMissingColumns = errors.New("required BOM columns missing")

// RequiredFields must resolve for a payload to be priced.
var RequiredFields = []types.Field{types.FieldQuantity, types.FieldUnitPrice}

// MissingColumnsError lists the required labels absent from the header row.
type MissingColumnsError struct {
	Labels []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingColumns, strings.Join(e.Labels, ", "))
}

func (e *MissingColumnsError) Unwrap() error {
	return ErrMissingColumns
}

// FindFieldIndex returns the first header position equal to label,
// or types.NotFound.
func FindFieldIndex(header []string, label string) int {
	for i, cell := range header {
		if cell == label {
			return i
		}
	}
	return types.NotFound
}

// ResolveColumns maps every requested field to its header position.
//
// PARAMETERS:
//   - header: The header row of the matrix.
//   - labels: The header label for each logical field.
//
// RETURNS:
//   - A ColumnIndexMap with an entry for every field in labels.
func ResolveColumns(header []string, labels map[types.Field]string) types.ColumnIndexMap {
	columns := make(types.ColumnIndexMap, len(labels))
	for field, label := range labels {
		columns[field] = FindFieldIndex(header, label)
	}
	return columns
}

// Validate checks that the required columns were found.
//
// In legacy mode a column at position 0 counts as missing, matching the
// browser tool this replaces.
func Validate(columns types.ColumnIndexMap, labels map[types.Field]string, legacy bool) error {
	var missing []string

	for _, field := range RequiredFields {
		idx := columns.Index(field)
		if idx == types.NotFound || (legacy && idx == 0) {
			missing = append(missing, labels[field])
		}
	}

	if len(missing) > 0 {
		return &MissingColumnsError{Labels: missing}
	}
	return nil
}

// ResolveAndValidate resolves the header of a matrix and validates it.
// An empty matrix reports every required column as missing.
func ResolveAndValidate(matrix types.Matrix, labels map[types.Field]string, legacy bool) (types.ColumnIndexMap, error) {
	columns := ResolveColumns(matrix.Header(), labels)
	if err := Validate(columns, labels, legacy); err != nil {
		return nil, err
	}
	return columns, nil
}
