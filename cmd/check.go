// =============================================================================
// BOM Discount Calculator - Check Command
// =============================================================================
//
// This file defines the 'check' command, which validates a BOM without
// pricing it. It shows where each column was found, the total cost, and
// every row the calculation would skip.
//
// COMMAND USAGE:
//   bomcalc check [--file <path>] [--log <path>]
//
// =============================================================================

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/bom-discount-calculator/internal/discount"
	"github.com/ginjaninja78/bom-discount-calculator/internal/types"
	"github.com/ginjaninja78/bom-discount-calculator/internal/validation"
)

var (
	checkFile string
	checkLog  string
)

// inputFields are the columns read from a pasted BOM.
var inputFields = []types.Field{
	types.FieldCode,
	types.FieldDescription,
	types.FieldQuantity,
	types.FieldUnitPrice,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a BOM header and rows without calculating",
	Long: `The check command parses a BOM, resolves its header columns and reports
every row that a calculation would skip or could not read.

It fails when a required column (Quantity or Unit Price Excl. VAT) is missing.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", `Read the BOM from a file ("-" for stdin) instead of the clipboard`)
	checkCmd.Flags().StringVar(&checkLog, "log", "", "Also write the report to this file")
}

func runCheck(cmd *cobra.Command) error {
	payload, err := readBOM(cmd, checkFile)
	if err != nil {
		return err
	}

	matrix, columns, err := engineFor(payload).Check(payload.Text)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	labels := appConfig.Columns.Labels()

	fmt.Fprintln(out, "Columns:")
	for _, field := range inputFields {
		position := "not found"
		if columns.Found(field) {
			position = fmt.Sprintf("column %d", columns.Index(field)+1)
		}
		fmt.Fprintf(out, "  %-24s %s\n", labels[field], position)
	}

	total, diagnostics := discount.TotalCost(matrix, columns)
	report := validation.NewReport(countRows(matrix), diagnostics)

	fmt.Fprintf(out, "\nTotal cost: %s\n", total.StringFixed(appConfig.Display.AmountDecimals))
	fmt.Fprintf(out, "%s\n\n", report.Summary())
	fmt.Fprint(out, validation.FormatDiagnostics(report.Diagnostics))

	if checkLog != "" {
		if err := validation.WriteDiagnosticLog(report, checkLog); err != nil {
			return err
		}
		logger.Info().Str("file", checkLog).Msg("check report written")
	}

	return nil
}

// countRows counts the data rows that hold at least one value.
func countRows(matrix types.Matrix) int {
	count := 0
	for _, row := range matrix.DataRows() {
		if strings.TrimSpace(strings.Join(row, "")) != "" {
			count++
		}
	}
	return count
}
