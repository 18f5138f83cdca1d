package export

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
)

// gridSize is the number of grid units in a maroto row.
const gridSize = 12

// columnWidths are the grid widths of the default seven breakdown columns.
var columnWidths = []int{2, 3, 1, 2, 1, 1, 2}

var (
	mutedColor = &props.Color{Red: 100, Green: 100, Blue: 100}
	headerBg   = &props.Color{Red: 33, Green: 37, Blue: 41}
	altBg      = &props.Color{Red: 248, Green: 249, Blue: 250}
	summaryBg  = &props.Color{Red: 245, Green: 245, Blue: 245}
)

// BuildPDF renders result as a landscape A4 document and returns its bytes.
func BuildPDF(result *types.CalculationResult, generated time.Time) ([]byte, error) {
	if len(result.Columns) == 0 {
		return nil, fmt.Errorf("result has no columns to export")
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	widths := gridWidths(len(result.Columns))
	addPDFHeader(m, result, generated)
	addPDFTableHeader(m, result.Columns, widths)
	addPDFLines(m, result, widths)
	addPDFSummary(m, result)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// gridWidths spreads n columns over the 12-unit grid.
func gridWidths(n int) []int {
	if n == len(columnWidths) {
		return columnWidths
	}

	widths := make([]int, n)
	for i := range widths {
		widths[i] = max(gridSize/n, 1)
	}
	return widths
}

func addPDFHeader(m core.Maroto, result *types.CalculationResult, generated time.Time) {
	m.AddRows(
		row.New(10).Add(
			col.New(8).Add(
				text.New("BOM Discount Breakdown", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(4).Add(
				text.New("Discount: "+result.RateText+"%", props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New("Generated "+generated.Format("2006-01-02 15:04"), props.Text{
					Size:  8,
					Align: align.Left,
					Color: mutedColor,
				}),
			),
		),
		row.New(3),
	)
}

func addPDFTableHeader(m core.Maroto, columns []types.Column, widths []int) {
	headerCell := &props.Cell{BackgroundColor: headerBg}

	cols := make([]core.Col, len(columns))
	for i, column := range columns {
		cols[i] = col.New(widths[i]).Add(
			text.New(column.Header, props.Text{
				Size:  7,
				Style: fontstyle.Bold,
				Align: pdfAlign(column.Align),
				Color: &props.Color{Red: 255, Green: 255, Blue: 255},
			}),
		).WithStyle(headerCell)
	}

	m.AddRows(row.New(8).Add(cols...))
}

func addPDFLines(m core.Maroto, result *types.CalculationResult, widths []int) {
	for i, line := range result.Lines {
		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		cols := make([]core.Col, len(result.Columns))
		for j, column := range result.Columns {
			c := col.New(widths[j]).Add(
				text.New(column.Format(line.Value(column.Field)), props.Text{
					Size:  7,
					Align: pdfAlign(column.Align),
				}),
			)
			if cellStyle != nil {
				c = c.WithStyle(cellStyle)
			}
			cols[j] = c
		}

		m.AddRows(row.New(7).Add(cols...))
	}

	m.AddRows(row.New(2))
}

func addPDFSummary(m core.Maroto, result *types.CalculationResult) {
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	labelStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 8, Align: align.Right}

	last := result.Columns[len(result.Columns)-1]
	rows := [][2]string{
		{"Total", last.Format(result.GrandTotalText())},
		{"PO Price", last.Format(result.TargetPrice.StringFixed(2))},
		{"Discount", result.RateText + "%"},
	}

	for _, r := range rows {
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New(r[0], labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(r[1], valueStyle)).WithStyle(summaryCell),
			),
		)
	}
}

func pdfAlign(a types.Alignment) align.Type {
	if a == types.AlignRight {
		return align.Right
	}
	return align.Left
}
