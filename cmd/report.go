// =============================================================================
// PFAS Reporting Toolkit - Report Command
// =============================================================================
//
// This file defines the 'report' command, which runs the declaration
// reporting pipeline over files on disk.
//
// COMMAND USAGE:
//   pfas report <declarations.csv|.xlsx> [output.json] [flags]
//
// FLAGS:
//   --pfas-dict : Path to the PFAS dictionary (overrides the configured
//                 default)
//
// PIPELINE:
//   1. Load configuration
//   2. Load the PFAS dictionary
//   3. Parse the declarations file
//   4. Classify every declaration and assemble the report
//   5. Write the JSON report (explicit path, or derived from the output
//      settings when omitted)
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/pfas-reporting/internal/reporter"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dictPath is the PFAS dictionary path given via --pfas-dict.
var dictPath string

// =============================================================================
// REPORT COMMAND DEFINITION
// =============================================================================

// reportCmd represents the 'report' command.
var reportCmd = &cobra.Command{
	Use:   "report <declarations-file> [output-file]",
	Short: "Generate a PFAS report from a supplier declarations file",
	Long: `The report command reads supplier declarations from a CSV or XLSX file,
classifies each declared substance against the PFAS dictionary, and
writes a JSON report using EPA TSCA §8(a)(7) field naming.

Rows missing a supplier name or substance name are skipped and counted;
all other rows appear in the report in file order, flagged with their
match outcome. The run fails outright when the dictionary is missing or
empty, or when the file header lacks the required columns.`,
	Args: cobra.RangeArgs(1, 2),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(args)
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the report command and its flags.
func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(
		&dictPath,
		"pfas-dict",
		"",
		"Path to the PFAS dictionary (one identifier per line)",
	)
}

// =============================================================================
// MAIN FUNCTION
// =============================================================================

// runReport executes the reporting pipeline for one file.
func runReport(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	inputPath := args[0]
	outputPath := ""
	if len(args) > 1 {
		outputPath = args[1]
	}

	result, err := reporter.New(cfg).RunFile(inputPath, outputPath, dictPath)
	if err != nil {
		return err
	}

	fmt.Printf("Generated report: %s\n", result.Describe())
	return nil
}
