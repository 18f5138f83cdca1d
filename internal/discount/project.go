// =============================================================================
// BOM Discount Calculator - Discount Projector
// =============================================================================
//
// This module solves the uniform discount rate that brings a BOM total down
// (or up) to the PO price and re-applies it to every line.
//
// FORMULA:
//   rate                = (target / total - 1) * -100, rounded to 5 decimals
//   discountedUnitPrice = round(unitPrice * rate / 100, 2)
//   lineAmount          = round(quantity * unitPrice * (100 - rate) / 100, 2)
//   grandTotal          = round(sum(lineAmount), 2)
//
//   A positive rate is a discount, a negative rate a surcharge. The rounded
//   rate is the one applied per line and copied to the clipboard, so every
//   figure in a result can be reproduced from the same total and target.
//
// ROW SELECTION:
//   Rows with an empty code cell are separator or footer rows and are left
//   out of the result entirely.
//
// =============================================================================

package discount

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
)

// ProjectOptions controls rounding and display metadata of a projection.
type ProjectOptions struct {
	RateDecimals   int32
	AmountDecimals int32
	Columns        []types.Column
}

// DefaultProjectOptions rounds the rate to 5 and money to 2 decimals.
func DefaultProjectOptions() ProjectOptions {
	return ProjectOptions{
		RateDecimals:   5,
		AmountDecimals: 2,
		Columns:        DefaultColumns("€ ", " %"),
	}
}

// Rate returns the discount percentage that turns total into target,
// rounded to the given number of decimals.
func Rate(total, target decimal.Decimal, decimals int32) (decimal.Decimal, error) {
	if total.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: total cost is %s", ErrDegenerateCost, total.String())
	}
	if target.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s is negative", ErrInvalidTargetPrice, target.String())
	}

	return target.Div(total).Sub(decimal.NewFromInt(1)).Mul(hundred.Neg()).Round(decimals), nil
}

// Project computes the discount rate and the per-line breakdown.
//
// PARAMETERS:
//   - total:   The aggregated BOM cost.
//   - target:  The PO price.
//   - matrix:  The parsed BOM.
//   - columns: The resolved column positions.
//   - opts:    Rounding and display options.
//
// RETURNS:
//   - A new CalculationResult.
//   - ErrDegenerateCost when total is zero or negative.
func Project(total, target decimal.Decimal, matrix types.Matrix, columns types.ColumnIndexMap, opts ProjectOptions) (*types.CalculationResult, error) {
	rate, err := Rate(total, target, opts.RateDecimals)
	if err != nil {
		return nil, err
	}
	rateText := rate.StringFixed(opts.RateDecimals)

	codeIdx := columns.Index(types.FieldCode)
	descIdx := columns.Index(types.FieldDescription)
	qtyIdx := columns.Index(types.FieldQuantity)
	priceIdx := columns.Index(types.FieldUnitPrice)

	lines := make([]types.LineItem, 0, len(matrix.DataRows()))
	grandTotal := decimal.Zero

	for i, row := range matrix.DataRows() {
		code := types.RowCell(row, codeIdx)
		if code == "" {
			continue
		}

		line := types.LineItem{
			SourceRow:   i + 1,
			Code:        code,
			Description: types.RowCell(row, descIdx),
			Quantity:    types.RowCell(row, qtyIdx),
			UnitPrice:   types.RowCell(row, priceIdx),
		}

		if line.UnitPrice != "" {
			line.LineDiscount = rateText

			if price, ok := ParseNumber(line.UnitPrice); ok {
				line.DiscountedUnitPrice = price.Mul(rate).Div(hundred).
					Round(opts.AmountDecimals).StringFixed(opts.AmountDecimals)

				if qty, ok := ParseNumber(line.Quantity); ok {
					amount := qty.Mul(price.Mul(hundred.Sub(rate))).Div(hundred).Round(opts.AmountDecimals)
					line.LineAmount = amount.StringFixed(opts.AmountDecimals)
					grandTotal = grandTotal.Add(amount)
				}
			}
		}

		lines = append(lines, line)
	}

	return &types.CalculationResult{
		TotalCost:   total,
		TargetPrice: target,
		Rate:        rate,
		RateText:    rateText,
		Columns:     opts.Columns,
		Lines:       lines,
		GrandTotal:  grandTotal.Round(opts.AmountDecimals),
	}, nil
}

// DefaultColumns returns the display metadata of the breakdown table.
func DefaultColumns(currencyPrefix, percentSuffix string) []types.Column {
	return []types.Column{
		{Field: types.FieldCode, Header: "Code", Align: types.AlignLeft},
		{Field: types.FieldDescription, Header: "Description", Align: types.AlignLeft},
		{Field: types.FieldQuantity, Header: "Quantity", Align: types.AlignRight},
		{Field: types.FieldUnitPrice, Header: "Unit Price Excl. VAT", Align: types.AlignRight, Prefix: currencyPrefix},
		{Field: types.FieldLineDiscount, Header: "Line Discount %", Align: types.AlignRight, Suffix: percentSuffix},
		{Field: types.FieldDiscountedUnitPrice, Header: "Discounted Unit Price", Align: types.AlignRight, Prefix: currencyPrefix},
		{Field: types.FieldLineAmount, Header: "Line Amount Excl. VAT", Align: types.AlignRight, Prefix: currencyPrefix},
	}
}
