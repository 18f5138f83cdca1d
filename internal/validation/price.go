// =============================================================================
// BOM Discount Calculator - PO Price Validation
// =============================================================================
//
// This module validates the PO price typed by the user. The price input
// behaves like a numeric field limited to cents:
//   - Leading zeros are stripped as the user types
//   - Anything after the second decimal is cut off, never rounded
//
// =============================================================================

package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/bom-discount-calculator/internal/discount"
)

// PriceDecimals is the number of decimals a PO price may carry.
const PriceDecimals = 2

// leadingZeros matches the zeros stripped from the start of the input.
var leadingZeros = regexp.MustCompile(`^0+`)

// priceFormat matches a plain, unsigned decimal number.
var priceFormat = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)

// SanitizePriceInput normalizes PO price input the same way on every
// keystroke: leading zeros are removed and the value is truncated to two
// decimals when the decimal point is not the first character.
//
// Examples:
//   "0045"      -> "45"
//   "1234.8899" -> "1234.88"
//   "0.5"       -> ".5"
func SanitizePriceInput(value string) string {
	value = leadingZeros.ReplaceAllString(value, "")

	if dot := strings.Index(value, "."); dot > 0 && len(value) > dot+PriceDecimals+1 {
		value = value[:dot+PriceDecimals+1]
	}

	return value
}

// IsPriceRune reports whether r may be typed into the price input.
func IsPriceRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}

// ParseTargetPrice sanitizes and parses a PO price.
//
// RETURNS:
//   - The price as a decimal with at most two decimals.
//   - An error wrapping discount.ErrInvalidTargetPrice for empty or
//     malformed input.
func ParseTargetPrice(input string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("%w: a PO price is required", discount.ErrInvalidTargetPrice)
	}
	if !priceFormat.MatchString(trimmed) {
		return decimal.Zero, fmt.Errorf("%w: %q is not a price", discount.ErrInvalidTargetPrice, input)
	}

	value := SanitizePriceInput(trimmed)
	switch {
	case value == "":
		// Only zeros were typed.
		return decimal.Zero, nil
	case strings.HasPrefix(value, "."):
		value = "0" + value
	}

	price, err := decimal.NewFromString(strings.TrimSuffix(value, "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a price", discount.ErrInvalidTargetPrice, input)
	}

	return price.Truncate(PriceDecimals), nil
}
