// =============================================================================
// BOM Discount Calculator - XLSX Report Export
// =============================================================================
//
// This module writes a calculation result to an Excel workbook so the
// discounted breakdown can be attached to a purchase order.
//
// SHEET LAYOUT:
//   Row 1        Column headers, in display order
//   Row 2..n     One row per line item
//   Row n+1      Empty
//   Row n+2      Total, with the grand total under the last column
//   Row n+3      PO Price
//   Row n+4      Discount %
//
//   Numeric cells are written as numbers so the sheet can be recalculated.
//   Cells that did not parse are written as text, unchanged.
//
// =============================================================================

package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/bom-discount-calculator/internal/discount"
	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
)

// Built-in excelize number formats.
const (
	numFmtAmount  = 4 // #,##0.00
	numFmtGeneral = 0
)

// numericFields are written as numbers when they parse.
var numericFields = map[types.Field]bool{
	types.FieldQuantity:            true,
	types.FieldUnitPrice:           true,
	types.FieldLineDiscount:        true,
	types.FieldDiscountedUnitPrice: true,
	types.FieldLineAmount:          true,
}

// Build lays result out on a single sheet of a new workbook.
// The caller must close the returned file.
func Build(result *types.CalculationResult, sheet string) (*excelize.File, error) {
	if sheet == "" {
		sheet = "BOM"
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeSheet(f, sheet, result); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet string, result *types.CalculationResult) error {
	columns := result.Columns
	if len(columns) == 0 {
		return fmt.Errorf("result has no columns to export")
	}

	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = col.Header
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	if err := setRowStyle(f, sheet, 1, len(columns), styles.header); err != nil {
		return err
	}

	row := 2
	for _, line := range result.Lines {
		cells := make([]any, len(columns))
		for i, col := range columns {
			cells[i] = cellValue(col.Field, line.Value(col.Field))
		}
		if err := setRow(f, sheet, row, cells); err != nil {
			return err
		}
		row++
	}
	if err := setColumnStyles(f, sheet, columns, row-1, styles); err != nil {
		return err
	}

	row++
	totalRow := make([]any, len(columns))
	for i := range totalRow {
		totalRow[i] = ""
	}
	totalRow[0] = "Total"
	totalRow[len(columns)-1] = result.GrandTotal.InexactFloat64()
	if err := setRow(f, sheet, row, totalRow); err != nil {
		return err
	}
	if err := setRowStyle(f, sheet, row, len(columns), styles.total); err != nil {
		return err
	}

	summary := [][]any{
		{"PO Price", result.TargetPrice.InexactFloat64()},
		{"Discount %", result.RateText},
	}
	for _, cells := range summary {
		row++
		if err := setRow(f, sheet, row, cells); err != nil {
			return err
		}
	}

	last, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return fmt.Errorf("failed to resolve column name: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", last, 18); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	return nil
}

// cellValue returns a float64 for numeric fields that parse and the raw
// text otherwise.
func cellValue(field types.Field, value string) any {
	if numericFields[field] {
		if d, ok := discount.ParseNumber(value); ok {
			return d.InexactFloat64()
		}
	}
	return value
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

type sheetStyles struct {
	header int
	total  int
	amount int
	plain  int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	var err error

	if s.header, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: []excelize.Border{{Type: "bottom", Color: "333333", Style: 1}},
	}); err != nil {
		return s, fmt.Errorf("failed to create header style: %w", err)
	}
	if s.total, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		NumFmt: numFmtAmount,
	}); err != nil {
		return s, fmt.Errorf("failed to create total style: %w", err)
	}
	if s.amount, err = f.NewStyle(&excelize.Style{NumFmt: numFmtAmount}); err != nil {
		return s, fmt.Errorf("failed to create amount style: %w", err)
	}
	if s.plain, err = f.NewStyle(&excelize.Style{NumFmt: numFmtGeneral}); err != nil {
		return s, fmt.Errorf("failed to create plain style: %w", err)
	}

	return s, nil
}

// setColumnStyles applies the money format to currency columns of the
// line rows.
func setColumnStyles(f *excelize.File, sheet string, columns []types.Column, lastRow int, styles sheetStyles) error {
	if lastRow < 2 {
		return nil
	}

	for i, col := range columns {
		style := styles.plain
		if col.Prefix != "" {
			style = styles.amount
		}

		top, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return fmt.Errorf("failed to resolve cell name: %w", err)
		}
		bottom, err := excelize.CoordinatesToCellName(i+1, lastRow)
		if err != nil {
			return fmt.Errorf("failed to resolve cell name: %w", err)
		}
		if err := f.SetCellStyle(sheet, top, bottom, style); err != nil {
			return fmt.Errorf("failed to style column %s: %w", col.Header, err)
		}
	}

	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to resolve cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

func setRowStyle(f *excelize.File, sheet string, row, width, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to resolve cell name: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(width, row)
	if err != nil {
		return fmt.Errorf("failed to resolve cell name: %w", err)
	}
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return fmt.Errorf("failed to style row %d: %w", row, err)
	}
	return nil
}
