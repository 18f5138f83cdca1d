// =============================================================================
// BOM Discount Calculator - Discount Engine
// =============================================================================
//
// This module runs the whole calculation pipeline for one pasted BOM:
//
// CALCULATION PIPELINE:
//   1. Parse the raw payload into a Matrix
//   2. Resolve and validate the header columns
//   3. Aggregate the total cost
//   4. Project the discount rate onto every line
//
// The engine holds no state between calculations. Calculate returns a new
// CalculationResult every time, or an error and no result at all.
//
// =============================================================================

package discount

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/bom-discount-calculator/internal/config"
	"github.com/ginjaninja78/bom-discount-calculator/internal/schema"
	"github.com/ginjaninja78/bom-discount-calculator/internal/tabular"
	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
)

// Options configures an Engine.
type Options struct {
	// Labels maps each logical field to its header label.
	Labels map[types.Field]string

	// Parse controls row and cell splitting.
	Parse tabular.Options

	// LegacyHeaderValidation rejects required columns at position 0.
	LegacyHeaderValidation bool

	// Project controls rounding and display metadata.
	Project ProjectOptions
}

// OptionsFromConfig builds engine options from the application configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Labels: cfg.Columns.Labels(),
		Parse: tabular.Options{
			Delimiter:           cfg.Input.Delimiter,
			LegacyLineSplitting: cfg.Compat.LegacyLineSplitting,
		},
		LegacyHeaderValidation: cfg.Compat.LegacyHeaderValidation,
		Project: ProjectOptions{
			RateDecimals:   cfg.Display.RateDecimals,
			AmountDecimals: cfg.Display.AmountDecimals,
			Columns:        DefaultColumns(cfg.Display.CurrencyPrefix, cfg.Display.PercentSuffix),
		},
	}
}

// Engine computes discount breakdowns.
type Engine struct {
	opts   Options
	logger zerolog.Logger
}

// NewEngine creates an Engine.
func NewEngine(opts Options, logger zerolog.Logger) *Engine {
	return &Engine{
		opts:   opts,
		logger: logger,
	}
}

// WithDelimiter returns a copy of the engine that splits cells on
// delimiter. An empty delimiter returns e unchanged.
func (e *Engine) WithDelimiter(delimiter string) *Engine {
	if delimiter == "" {
		return e
	}

	clone := *e
	clone.opts.Parse.Delimiter = delimiter
	return &clone
}

// Check parses a payload and validates its header without pricing it.
//
// RETURNS:
//   - The parsed matrix and resolved columns.
//   - ErrNoData for an empty payload, ErrMissingColumns for a bad header.
func (e *Engine) Check(raw string) (types.Matrix, types.ColumnIndexMap, error) {
	matrix := tabular.Parse(raw, e.opts.Parse)
	if matrix == nil {
		return nil, nil, ErrNoData
	}
	e.logger.Debug().Int("rows", len(matrix)).Msg("parsed BOM payload")

	columns, err := schema.ResolveAndValidate(matrix, e.opts.Labels, e.opts.LegacyHeaderValidation)
	if err != nil {
		e.logger.Warn().Err(err).Strs("header", matrix.Header()).Msg("BOM header rejected")
		return nil, nil, err
	}

	return matrix, columns, nil
}

// Calculate runs the full pipeline for a payload and PO price.
//
// PARAMETERS:
//   - raw:    The pasted BOM text.
//   - target: The PO price.
//
// RETURNS:
//   - A new CalculationResult.
//   - An error from the pipeline taxonomy. No partial result is returned.
func (e *Engine) Calculate(raw string, target decimal.Decimal) (*types.CalculationResult, error) {
	if target.IsNegative() {
		return nil, ErrInvalidTargetPrice
	}

	matrix, columns, err := e.Check(raw)
	if err != nil {
		return nil, err
	}

	total, diagnostics := TotalCost(matrix, columns)
	e.logger.Debug().
		Str("total_cost", total.String()).
		Int("skipped_rows", len(diagnostics)).
		Msg("aggregated BOM cost")

	for _, d := range diagnostics {
		e.logger.Debug().Int("row", d.Row).Str("severity", string(d.Severity)).Msg(d.Message)
	}

	result, err := Project(total, target, matrix, columns, e.opts.Project)
	if err != nil {
		e.logger.Warn().Err(err).Str("total_cost", total.String()).Msg("discount projection failed")
		return nil, err
	}
	result.Diagnostics = diagnostics

	e.logger.Info().
		Str("rate", result.RateText).
		Int("lines", len(result.Lines)).
		Str("grand_total", result.GrandTotalText()).
		Msg("discount calculated")

	return result, nil
}
