// =============================================================================
// BOM Discount Calculator - Main Entry Point
// =============================================================================
//
// USAGE:
//   bomcalc calculate    - Price the BOM on the clipboard for a PO price
//   bomcalc check        - Check a BOM header without calculating
//   bomcalc interactive  - Start the interactive calculator
//   bomcalc version      - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Parsing, column resolution and discount calculation
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/bom-discount-calculator/cmd"
)

func main() {
	cmd.Execute()
}
