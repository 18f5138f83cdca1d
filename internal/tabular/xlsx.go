// =============================================================================
// BOM Discount Calculator - Workbook Reader
// =============================================================================
//
// Some users export the BOM to a workbook instead of copying it. This module
// reads one worksheet with excelize and flattens it into the same
// tab-separated text a clipboard copy would produce.
//
// =============================================================================

package tabular

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// cellReplacer removes separators that would break the flattened layout.
var cellReplacer = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// ReadWorkbook opens an XLSX file and returns the selected sheet as text.
//
// PARAMETERS:
//   - path:  The path to the workbook.
//   - sheet: The worksheet name. Empty selects the first sheet.
//
// RETURNS:
//   - The sheet flattened to tab-separated rows.
//   - An error if the workbook or sheet cannot be read.
func ReadWorkbook(path, sheet string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return readSheet(f, sheet)
}

// ReadWorkbookFrom reads a workbook from a stream.
func ReadWorkbookFrom(r io.Reader, sheet string) (string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return readSheet(f, sheet)
}

func readSheet(f *excelize.File, sheet string) (string, error) {
	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return "", fmt.Errorf("workbook has no sheets")
		}
	}

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return "", fmt.Errorf("sheet %q not found in workbook", sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to read rows: %w", err)
	}

	return flatten(rows), nil
}

// flatten joins rows with newlines and cells with tabs.
func flatten(rows [][]string) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(cellReplacer.Replace(cell))
		}
	}

	return b.String()
}
