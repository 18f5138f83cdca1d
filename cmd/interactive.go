package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/bom-discount-calculator/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"ui"},
	Short:   "Start the interactive calculator",
	Long: `Start a terminal UI: type the PO price, copy the BOM from the ERP, and
press Enter to calculate. Press ctrl+y to copy the discount to the clipboard.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(newEngine(), newClipboard(), logger)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
