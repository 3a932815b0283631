// =============================================================================
// PFAS Reporting Toolkit - Main Entry Point
// =============================================================================
//
// This is the main entry point for the PFAS Reporting Toolkit CLI. It
// initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   pfas report      - Generate a report from a declarations CSV/XLSX file
//   pfas serve       - Run the browser front-end for report generation
//   pfas dashboard   - Print regulatory categories/risks for a profile
//   pfas version     - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : core business logic (not for external import)
//   - pkg/       : shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/pfas-reporting/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
