// =============================================================================
// PFAS Reporting Toolkit - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command
// is the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (pfas)
//   ├── reportCmd    (pfas report)
//   ├── serveCmd     (pfas serve)
//   ├── dashboardCmd (pfas dashboard)
//   └── versionCmd   (pfas version)
//
// The root command owns the global flags (--config, --verbose) and the
// shared configuration/logging bootstrap used by every subcommand.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/pfas-reporting/internal/config"
	"github.com/ginjaninja78/pfas-reporting/internal/logging"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pfas",
	Short: "PFAS Reporting Toolkit - supplier declaration reports and regulatory overview",
	Long: `PFAS Reporting Toolkit turns supplier declaration files into JSON report
packs aligned with EPA TSCA §8(a)(7) field naming, and gives a quick
regulatory overview for a company profile.

Commands:
  pfas report      Generate a report from a declarations CSV/XLSX file
  pfas serve       Run the browser front-end for report generation
  pfas dashboard   Print regulatory categories and risks for a profile
  pfas version     Display the application version

Example Usage:
  pfas report suppliers.csv report.json --pfas-dict substances.txt
  pfas serve --config ./config.yaml
  pfas dashboard profile.json`,

	// With no subcommand there is nothing to do but print the help.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: path to the configuration file. Every setting has a
	// default, so the file is optional.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	// --verbose flag: enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig loads the configuration and wires up logging. Shared
// bootstrap for all subcommands.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	logging.Setup(level, cfg.Log.Format)

	return cfg, nil
}
