// =============================================================================
// BOM Discount Calculator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (bomcalc)
//   ├── calculateCmd   (bomcalc calculate)
//   ├── checkCmd       (bomcalc check)
//   ├── interactiveCmd (bomcalc interactive)
//   └── versionCmd     (bomcalc version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading the configuration file
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/bom-discount-calculator/internal/clipboard"
	"github.com/ginjaninja78/bom-discount-calculator/internal/config"
	"github.com/ginjaninja78/bom-discount-calculator/internal/discount"
	"github.com/ginjaninja78/bom-discount-calculator/internal/logging"
	"github.com/ginjaninja78/bom-discount-calculator/internal/render"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// A missing file is only an error when the path was set explicitly.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// appConfig and logger are set up before any subcommand runs.
var (
	appConfig = config.Default()
	logger    = logging.Nop()
)

// newClipboard returns the clipboard commands read from and write to.
var newClipboard = func() clipboard.Clipboard {
	return clipboard.NewSystem()
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bomcalc",
	Short: "BOM Discount Calculator - Solve the discount that meets a PO price",
	Long: `BOM Discount Calculator takes a Bill of Materials copied from the ERP
and a target purchase-order price, solves the single discount percentage that
brings the BOM total to that price, and shows the discounted breakdown per line.

Example Usage:
  bomcalc calculate --price 1000           # Price the BOM on the clipboard
  bomcalc calculate -p 1000 --file bom.tsv # Price a BOM from a file
  bomcalc calculate -p 1000 --copy         # Copy the discount back
  bomcalc check                            # Check the clipboard BOM header
  bomcalc interactive                      # Start the interactive calculator`,

	SilenceErrors: true,
	SilenceUsage:  true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		_ = cmd.Help()
	},
}

// setup loads the configuration and builds the logger.
func setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile, cfgFile == config.DefaultConfigFile)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	appConfig = cfg
	logger = logging.New(level, cfg.LogFormat, cmd.ErrOrStderr())
	logger.Debug().Str("config", cfgFile).Msg("configuration loaded")

	return nil
}

// newEngine builds a discount engine from the loaded configuration.
func newEngine() *discount.Engine {
	return discount.NewEngine(discount.OptionsFromConfig(appConfig), logger)
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Debug().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, render.Alert("Error: "+discount.UserMessage(err)))
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
