package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "No.", cfg.Columns.Code)
	assert.Equal(t, "Quantity", cfg.Columns.Quantity)
	assert.Equal(t, "Unit Price Excl. VAT", cfg.Columns.UnitPrice)
	assert.Equal(t, "Line Amount Excl. VAT", cfg.Columns.LineAmount)
	assert.Equal(t, "€ ", cfg.Display.CurrencyPrefix)
	assert.Equal(t, int32(5), cfg.Display.RateDecimals)
	assert.Equal(t, int32(2), cfg.Display.AmountDecimals)
	assert.Equal(t, "\t", cfg.Input.Delimiter)
	assert.Equal(t, ",", cfg.Input.CSVDelimiter)
	assert.Equal(t, "xlsx", cfg.Export.Format)
	assert.False(t, cfg.Compat.LegacyLineSplitting)
	assert.False(t, cfg.Compat.LegacyHeaderValidation)
}

func TestLoad_MissingOptionalFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bomcalc.yaml")
	data := []byte(`
columns:
  unit_price: "Unit Cost"
display:
  currency_prefix: "$"
compat:
  legacy_line_splitting: true
log_level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, "Unit Cost", cfg.Columns.UnitPrice)
	assert.Equal(t, "Quantity", cfg.Columns.Quantity)
	assert.Equal(t, "$", cfg.Display.CurrencyPrefix)
	assert.True(t, cfg.Compat.LegacyLineSplitting)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Unit Cost", cfg.Columns.Labels()[types.FieldUnitPrice])
}

func TestParse_ExplicitZeroDisplaySettings(t *testing.T) {
	cfg, err := Parse([]byte(`
display:
  currency_prefix: ""
  percent_suffix: ""
  rate_decimals: 0
  amount_decimals: 0
`))
	require.NoError(t, err)

	assert.Empty(t, cfg.Display.CurrencyPrefix)
	assert.Empty(t, cfg.Display.PercentSuffix)
	assert.Equal(t, int32(0), cfg.Display.RateDecimals)
	assert.Equal(t, int32(0), cfg.Display.AmountDecimals)
}

func TestParse_PartialDisplayKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("display:\n  rate_decimals: 3\n"))
	require.NoError(t, err)

	assert.Equal(t, int32(3), cfg.Display.RateDecimals)
	assert.Equal(t, int32(2), cfg.Display.AmountDecimals)
	assert.Equal(t, "€ ", cfg.Display.CurrencyPrefix)
	assert.Equal(t, " %", cfg.Display.PercentSuffix)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		errMsg string
	}{
		{
			name:   "malformed yaml",
			data:   "columns: [",
			errMsg: "failed to parse config file",
		},
		{
			name:   "duplicate label",
			data:   "columns:\n  description: Quantity\n",
			errMsg: "share the label",
		},
		{
			name:   "rate decimals out of range",
			data:   "display:\n  rate_decimals: 12\n",
			errMsg: "rate_decimals",
		},
		{
			name:   "negative amount decimals",
			data:   "display:\n  amount_decimals: -1\n",
			errMsg: "amount_decimals",
		},
		{
			name:   "unknown export format",
			data:   "export:\n  format: docx\n",
			errMsg: "export.format",
		},
		{
			name:   "unknown log format",
			data:   "log_format: xml\n",
			errMsg: "log_format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
