// =============================================================================
// BOM Discount Calculator - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. Every setting has a
// default, so the tool works without any configuration file at all.
//
// CONFIGURATION SECTIONS:
//   columns  : Header labels used to locate each BOM column
//   display  : Currency prefix, percent suffix and decimal places
//   input    : Delimiter, encoding and sheet for file input
//   compat   : Switches that restore legacy parsing/validation behavior
//   export   : Report format, output directory and file naming
//   logging  : Level and format
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
)

// DefaultConfigFile is used when --config is not given.
const DefaultConfigFile = "bomcalc.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// Columns holds the header label for each logical field.
	// Matching is exact: case and whitespace sensitive.
	Columns ColumnLabels `yaml:"columns"`

	Display Display `yaml:"display"`
	Input   Input   `yaml:"input"`
	Compat  Compat  `yaml:"compat"`
	Export  Export  `yaml:"export"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "warn"
	LogLevel string `yaml:"log_level"`

	// LogFormat is "console" or "json".
	// Default: "console"
	LogFormat string `yaml:"log_format"`
}

// ColumnLabels are the literal header labels exported by the ERP system.
type ColumnLabels struct {
	Code                string `yaml:"code"`
	Description         string `yaml:"description"`
	Quantity            string `yaml:"quantity"`
	UnitPrice           string `yaml:"unit_price"`
	LineDiscount        string `yaml:"line_discount"`
	DiscountedUnitPrice string `yaml:"discounted_unit_price"`
	LineAmount          string `yaml:"line_amount"`
}

// Labels returns the labels keyed by logical field.
func (c ColumnLabels) Labels() map[types.Field]string {
	return map[types.Field]string{
		types.FieldCode:                c.Code,
		types.FieldDescription:         c.Description,
		types.FieldQuantity:            c.Quantity,
		types.FieldUnitPrice:           c.UnitPrice,
		types.FieldLineDiscount:        c.LineDiscount,
		types.FieldDiscountedUnitPrice: c.DiscountedUnitPrice,
		types.FieldLineAmount:          c.LineAmount,
	}
}

// Display controls how results are decorated for display.
type Display struct {
	// CurrencyPrefix is put in front of money cells. May be empty.
	// Default: "€ "
	CurrencyPrefix string `yaml:"currency_prefix"`

	// PercentSuffix is put after the line discount cell. May be empty.
	// Default: " %"
	PercentSuffix string `yaml:"percent_suffix"`

	// RateDecimals is the number of decimals of the discount rate.
	// Default: 5
	RateDecimals int32 `yaml:"rate_decimals"`

	// AmountDecimals is the number of decimals of money figures.
	// Default: 2
	AmountDecimals int32 `yaml:"amount_decimals"`
}

// Input contains settings for reading a BOM from a file.
type Input struct {
	// Delimiter separates cells within a row.
	// Common values: "\t" (tab), "tab", ";", "|"
	// Default: "\t"
	Delimiter string `yaml:"delimiter"`

	// CSVDelimiter separates cells in .csv files, which may quote cells.
	// Default: ","
	CSVDelimiter string `yaml:"csv_delimiter"`

	// Encoding of text files.
	// Supported: "UTF-8", "Windows-1252", "ISO-8859-1"
	// Default: "UTF-8"
	Encoding string `yaml:"encoding"`

	// Sheet is the worksheet read from .xlsx files.
	// Default: the first sheet.
	Sheet string `yaml:"sheet,omitempty"`
}

// Compat restores the behavior of the browser-based calculator.
type Compat struct {
	// LegacyLineSplitting splits rows on every CR and LF independently,
	// which produces an empty row for every CRLF pair.
	LegacyLineSplitting bool `yaml:"legacy_line_splitting"`

	// LegacyHeaderValidation rejects a quantity or unit price column found
	// at position 0.
	LegacyHeaderValidation bool `yaml:"legacy_header_validation"`
}

// Export controls report generation.
type Export struct {
	// Format is the report file type: "xlsx" or "pdf".
	// Default: "xlsx"
	Format string `yaml:"format"`

	// Dir is where reports are written.
	// Default: "./exports"
	Dir string `yaml:"dir"`

	// FileNameFormat defines the report file name.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {date}      - Current date (YYYYMMDD)
	//   {time}      - Current time (HHMMSS)
	// The extension of the format is appended when missing.
	// Default: "bom_discount_{timestamp}_{uuid}"
	FileNameFormat string `yaml:"file_name_format"`

	// SheetName is the worksheet name in the report.
	// Default: "BOM"
	SheetName string `yaml:"sheet_name"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{Display: defaultDisplay()}
	applyDefaults(cfg)
	return cfg
}

// defaultDisplay returns the display defaults. Zero decimals and an empty
// prefix or suffix are valid settings, so these defaults are set before
// the file is decoded instead of being filled in afterwards.
func defaultDisplay() Display {
	return Display{
		CurrencyPrefix: "€ ",
		PercentSuffix:  " %",
		RateDecimals:   5,
		AmountDecimals: 2,
	}
}

// Load reads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - optional:   When true, a missing file yields the defaults.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string, optional bool) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration data, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Config{Display: defaultDisplay()}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	labels := &cfg.Columns
	if labels.Code == "" {
		labels.Code = "No."
	}
	if labels.Description == "" {
		labels.Description = "Description"
	}
	if labels.Quantity == "" {
		labels.Quantity = "Quantity"
	}
	if labels.UnitPrice == "" {
		labels.UnitPrice = "Unit Price Excl. VAT"
	}
	if labels.LineDiscount == "" {
		labels.LineDiscount = "Line Discount %"
	}
	if labels.DiscountedUnitPrice == "" {
		labels.DiscountedUnitPrice = "Discounted Unit Price"
	}
	if labels.LineAmount == "" {
		labels.LineAmount = "Line Amount Excl. VAT"
	}

	if cfg.Input.Delimiter == "" {
		cfg.Input.Delimiter = "\t"
	}
	if cfg.Input.CSVDelimiter == "" {
		cfg.Input.CSVDelimiter = ","
	}
	if cfg.Input.Encoding == "" {
		cfg.Input.Encoding = "UTF-8"
	}

	if cfg.Export.Format == "" {
		cfg.Export.Format = "xlsx"
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "./exports"
	}
	if cfg.Export.FileNameFormat == "" {
		cfg.Export.FileNameFormat = "bom_discount_{timestamp}_{uuid}"
	}
	if cfg.Export.SheetName == "" {
		cfg.Export.SheetName = "BOM"
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}
}

// validate checks the configuration for values the pipeline cannot use.
func validate(cfg *Config) error {
	if cfg.Display.RateDecimals < 0 || cfg.Display.RateDecimals > 10 {
		return fmt.Errorf("display.rate_decimals must be between 0 and 10, got %d", cfg.Display.RateDecimals)
	}
	if cfg.Display.AmountDecimals < 0 || cfg.Display.AmountDecimals > 6 {
		return fmt.Errorf("display.amount_decimals must be between 0 and 6, got %d", cfg.Display.AmountDecimals)
	}

	// Two fields sharing a label would make the lookup ambiguous.
	seen := make(map[string]types.Field)
	for _, field := range types.Fields {
		label := cfg.Columns.Labels()[field]
		if other, exists := seen[label]; exists {
			return fmt.Errorf("columns.%s and columns.%s share the label %q", other, field, label)
		}
		seen[label] = field
	}

	switch strings.ToLower(cfg.Export.Format) {
	case "xlsx", "pdf":
	default:
		return fmt.Errorf("export.format must be \"xlsx\" or \"pdf\", got %q", cfg.Export.Format)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("log_format must be \"console\" or \"json\", got %q", cfg.LogFormat)
	}

	return nil
}
