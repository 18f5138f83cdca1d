package discount

import (
	"errors"

	"github.com/ginjaninja78/bom-discount-calculator/internal/schema"
)

// Pipeline errors. Every failure aborts the calculation; no partial
// result is ever returned alongside an error.
var (
	// ErrNoData is returned for an empty payload.
	ErrNoData = errors.New("no BOM data")

	// ErrMissingColumns is returned when the header lacks a required label.
	ErrMissingColumns = schema.ErrMissingColumns

	// ErrDegenerateCost is returned when the BOM totals zero or less,
	// which leaves the discount rate undefined.
	ErrDegenerateCost = errors.New("cannot price a zero-cost BOM")

	// ErrInvalidTargetPrice is returned for a missing or negative PO price.
	ErrInvalidTargetPrice = errors.New("invalid PO price")
)

// User-facing messages shown at the action boundary.
const (
	MsgRecopyBOM    = "Please copy the BOM from NAV and try again!"
	MsgZeroCost     = "Cannot price a zero-cost BOM. Check the Quantity and Unit Price columns."
	MsgInvalidPrice = "Please enter a valid PO price."
)

// UserMessage converts a pipeline error into the single message shown to
// the user. Errors outside the pipeline taxonomy keep their own text.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoData), errors.Is(err, ErrMissingColumns):
		return MsgRecopyBOM
	case errors.Is(err, ErrDegenerateCost):
		return MsgZeroCost
	case errors.Is(err, ErrInvalidTargetPrice):
		return MsgInvalidPrice
	default:
		return err.Error()
	}
}
