package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/bom-discount-calculator/internal/config"
	"github.com/ginjaninja78/bom-discount-calculator/internal/discount"
	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
)

const bom = "No.\tDescription\tQuantity\tUnit Price Excl. VAT\n" +
	"P-100\tBracket\t3\t19.99\n" +
	"P-200\tScrew\t7\t3.33\n" +
	"\tSection\t\t\n" +
	"P-300\tHousing\t1\t1,234.50\n"

func calculate(t *testing.T) *types.CalculationResult {
	t.Helper()

	engine := discount.NewEngine(discount.OptionsFromConfig(config.Default()), zerolog.Nop())
	result, err := engine.Calculate(bom, decimal.NewFromInt(1000))
	require.NoError(t, err)
	return result
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	exporter := NewExporter(config.Export{
		Dir:            dir,
		FileNameFormat: "bom_{timestamp}",
		SheetName:      "Discount",
	})
	exporter.now = func() time.Time { return time.Date(2024, 1, 15, 14, 30, 22, 0, time.UTC) }

	path, err := exporter.Export(calculate(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "bom_20240115_143022.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Discount", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 8)

	assert.Equal(t, []string{
		"Code", "Description", "Quantity", "Unit Price Excl. VAT",
		"Line Discount %", "Discounted Unit Price", "Line Amount Excl. VAT",
	}, rows[0])
	assert.Equal(t, []string{"P-100", "Bracket", "3", "19.99", "24.1148", "4.82", "45.51"}, rows[1])
	assert.Equal(t, "P-300", rows[3][0])
	assert.Equal(t, "1234.5", rows[3][3])

	var total, price, rate []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		switch row[0] {
		case "Total":
			total = row
		case "PO Price":
			price = row
		case "Discount %":
			rate = row
		}
	}
	require.NotNil(t, total)
	assert.Equal(t, "1000", total[len(total)-1])
	require.NotNil(t, price)
	assert.Equal(t, "1000", price[1])
	require.NotNil(t, rate)
	assert.Equal(t, "24.11480", rate[1])
}

func TestExportDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(config.Export{Dir: dir, FileNameFormat: "report.xlsx"})

	first, err := exporter.Export(calculate(t))
	require.NoError(t, err)
	second, err := exporter.Export(calculate(t))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(second, "report_1.xlsx"))
	for _, path := range []string{first, second} {
		_, err := os.Stat(path)
		assert.NoError(t, err)
	}
}

func TestBuildDefaultsSheetName(t *testing.T) {
	f, err := Build(calculate(t), "")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "BOM", f.GetSheetName(0))
}

func TestBuildRejectsResultWithoutColumns(t *testing.T) {
	_, err := Build(&types.CalculationResult{}, "BOM")
	assert.Error(t, err)
}
