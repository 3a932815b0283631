// =============================================================================
// PFAS Reporting Toolkit - Serve Command
// =============================================================================
//
// This file defines the 'serve' command, which runs the browser front-end
// for report generation.
//
// COMMAND USAGE:
//   pfas serve [flags]
//
// FLAGS:
//   --addr : Listen address (overrides the configured server.addr)
//
// =============================================================================

package cmd

import (
	"log/slog"

	"github.com/ginjaninja78/pfas-reporting/internal/server"
	"github.com/spf13/cobra"
)

// addr is the listen address given via --addr.
var addr string

// serveCmd represents the 'serve' command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP front-end for report generation",
	Long: `The serve command starts an HTTP server with a small upload form. A
posted declarations file (CSV or XLSX), with an optional PFAS
dictionary, returns the same JSON report the 'report' command writes to
disk.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// init registers the serve command and its flags.
func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(
		&addr,
		"addr",
		"",
		"Listen address (default from configuration, e.g. :8080)",
	)
}

// runServe starts the HTTP server and blocks until it exits.
func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	slog.Info("starting server", "addr", cfg.Server.Addr)
	return server.New(cfg).ListenAndServe()
}
