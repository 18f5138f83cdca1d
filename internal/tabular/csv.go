// =============================================================================
// BOM Discount Calculator - CSV Reader
// =============================================================================
//
// CSV exports quote any cell that contains the delimiter, e.g. a unit price
// of "1,234.50". Splitting such a file on commas would shift every column
// after that cell, so .csv files are read with encoding/csv and flattened
// to the same tab-separated text a clipboard copy produces.
//
// READER SETTINGS:
//   - Variable number of fields per row (footer rows are often shorter)
//   - Lazy quotes (quotes that don't follow strict CSV rules)
//   - Leading space trimmed from fields
//
// =============================================================================

package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ReadCSV reads a quoted CSV payload and returns it as tab-separated rows.
//
// PARAMETERS:
//   - r:            The CSV source.
//   - encodingName: The text encoding of the source.
//   - delimiter:    The field delimiter. Empty means a comma.
//
// RETURNS:
//   - The rows flattened to tab-separated text.
//   - An error if the source cannot be decoded or is not valid CSV.
func ReadCSV(r io.Reader, encodingName, delimiter string) (string, error) {
	text, err := ReadText(r, encodingName)
	if err != nil {
		return "", err
	}

	reader := csv.NewReader(strings.NewReader(text))
	if err := configureReader(reader, delimiter); err != nil {
		return "", err
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read CSV: %w", err)
	}

	return flatten(rows), nil
}

// configureReader configures the CSV reader for BOM exports.
func configureReader(reader *csv.Reader, delimiter string) error {
	if delimiter == "" {
		delimiter = ","
	}

	sep := normalizeDelimiter(delimiter)
	comma, size := utf8.DecodeRuneInString(sep)
	if size != len(sep) {
		return fmt.Errorf("CSV delimiter %q must be a single character", delimiter)
	}

	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	return nil
}
