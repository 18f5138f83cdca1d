// =============================================================================
// BOM Discount Calculator - Calculate Command
// =============================================================================
//
// This file defines the 'calculate' command, which prices one BOM.
//
// COMMAND USAGE:
//   bomcalc calculate --price <amount> [flags]
//
// FLAGS:
//   --price   : The target PO price (required)
//   --file    : Read the BOM from a file, or "-" for stdin (default: clipboard)
//   --output  : table or json
//   --copy    : Copy the discount rate to the clipboard
//   --export  : Write the breakdown to a report file
//   --export-format : xlsx or pdf (default: export.format from the config)
//
// CALCULATION PIPELINE:
//   1. Sanitize and parse the PO price
//   2. Read the BOM payload
//   3. Run the discount engine
//   4. Render the result
//   5. Copy and export, when requested
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/bom-discount-calculator/internal/export"
	"github.com/ginjaninja78/bom-discount-calculator/internal/render"
	"github.com/ginjaninja78/bom-discount-calculator/internal/validation"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	priceInput   string
	bomFile      string
	outputFormat string
	copyRate     bool
	exportReport bool
	exportFormat string
)

// =============================================================================
// CALCULATE COMMAND DEFINITION
// =============================================================================

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate the discount that brings a BOM to a PO price",
	Long: `The calculate command reads a BOM (from the clipboard by default), sums
Quantity x Unit Price over every line, and solves the discount percentage
that makes the total equal to the PO price.

Every line is shown with its discounted unit price and line amount. A PO price
above the BOM total gives a negative discount, i.e. a surcharge.`,
	Example: `  bomcalc calculate --price 1000
  bomcalc calculate -p 1000 --file bom.xlsx --export
  bomcalc calculate -p 1000 --export --export-format pdf
  pbpaste | bomcalc calculate -p 1000 --file - --output json`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runCalculate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(calculateCmd)

	calculateCmd.Flags().StringVarP(&priceInput, "price", "p", "", "Target PO price")
	calculateCmd.Flags().StringVarP(&bomFile, "file", "f", "", `Read the BOM from a file ("-" for stdin) instead of the clipboard`)
	calculateCmd.Flags().StringVarP(&outputFormat, "output", "o", string(render.FormatTable), "Output format: table or json")
	calculateCmd.Flags().BoolVar(&copyRate, "copy", false, "Copy the discount rate to the clipboard")
	calculateCmd.Flags().BoolVar(&exportReport, "export", false, "Write the breakdown to a report file")
	calculateCmd.Flags().StringVar(&exportFormat, "export-format", "", "Report format: xlsx or pdf")
}

// =============================================================================
// CALCULATE IMPLEMENTATION
// =============================================================================

func runCalculate(cmd *cobra.Command) error {
	format, err := render.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	target, err := validation.ParseTargetPrice(priceInput)
	if err != nil {
		return err
	}

	payload, err := readBOM(cmd, bomFile)
	if err != nil {
		return err
	}

	result, err := engineFor(payload).Calculate(payload.Text, target)
	if err != nil {
		return err
	}

	if err := render.Write(cmd.OutOrStdout(), result, format); err != nil {
		return err
	}
	if verbose {
		if err := render.WriteDiagnostics(cmd.ErrOrStderr(), result.Diagnostics); err != nil {
			return err
		}
	}

	if copyRate {
		if err := newClipboard().WriteText(result.RateText); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Discount copied to your clipboard!")
	}

	if exportReport {
		settings := appConfig.Export
		if exportFormat != "" {
			settings.Format = exportFormat
		}

		path, err := export.NewExporter(settings).Export(result)
		if err != nil {
			return fmt.Errorf("failed to export report: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", path)
	}

	return nil
}
