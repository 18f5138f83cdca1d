package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/bom-discount-calculator/internal/config"
	"github.com/ginjaninja78/bom-discount-calculator/internal/discount"
	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
)

const bom = "No.\tDescription\tQuantity\tUnit Price Excl. VAT\n" +
	"P-100\tBracket\t3\t19.99\n" +
	"P-200\tScrew\t7\t3.33\n" +
	"P-400\tLabour\t\t\n" +
	"P-300\tHousing\t1\t1,234.50\n"

func calculate(t *testing.T) *types.CalculationResult {
	t.Helper()

	engine := discount.NewEngine(discount.OptionsFromConfig(config.Default()), zerolog.Nop())
	result, err := engine.Calculate(bom, decimal.NewFromInt(1000))
	require.NoError(t, err)
	return result
}

func TestRows(t *testing.T) {
	rows := Rows(calculate(t))
	require.Len(t, rows, 5)

	assert.Equal(t, []string{"P-100", "Bracket", "3", "€ 19.99", "24.11480 %", "€ 4.82", "€ 45.51"}, rows[0])
	assert.Equal(t, []string{"P-400", "Labour", "", "", "", "", ""}, rows[2])
	assert.Equal(t, []string{"P-300", "Housing", "1", "€ 1,234.50", "24.11480 %", "€ 297.70", "€ 936.80"}, rows[3])
	assert.Equal(t, []string{"Total", "", "", "", "", "", "€ 1000.00"}, rows[4])
}

func TestHeadersAndDiscountLine(t *testing.T) {
	result := calculate(t)

	assert.Equal(t, "Code", Headers(result)[0])
	assert.Equal(t, "Line Amount Excl. VAT", Headers(result)[6])
	assert.Equal(t, "Discount: 24.11480%", DiscountLine(result))
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, calculate(t), FormatTable))

	out := buf.String()
	for _, want := range []string{"Unit Price Excl. VAT", "P-200", "€ 3.33", "€ 17.69", "Total", "€ 1000.00", "Discount: 24.11480%"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "€  ")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, calculate(t), FormatJSON))

	var decoded struct {
		RateText   string           `json:"rate_text"`
		GrandTotal string           `json:"grand_total"`
		Lines      []types.LineItem `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "24.1148", strings.TrimRight(decoded.RateText, "0"))
	assert.Equal(t, "1000", decoded.GrandTotal)
	require.Len(t, decoded.Lines, 4)
	assert.Equal(t, "936.80", decoded.Lines[3].LineAmount)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, f)

	f, err = ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestWriteDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDiagnostics(&buf, nil))
	assert.Empty(t, buf.String())

	require.NoError(t, WriteDiagnostics(&buf, calculate(t).Diagnostics))
	assert.Contains(t, buf.String(), "Row 3")
}
