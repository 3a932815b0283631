// =============================================================================
// PFAS Reporting Toolkit - Dashboard Command
// =============================================================================
//
// This file defines the 'dashboard' command, which prints the regulatory
// categories and risk areas applicable to a company profile.
//
// COMMAND USAGE:
//   pfas dashboard <profile.json>
//
// OUTPUT:
//   Regulatory categories needed:
//    - EPA
//    - OSHA
//
//   Potential regulatory risks:
//    - environment
//    - labor
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/pfas-reporting/internal/dashboard"
	"github.com/spf13/cobra"
)

// dashboardCmd represents the 'dashboard' command.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard <profile.json>",
	Short: "Print regulatory categories and risks for a company profile",
	Long: `The dashboard command loads an organization profile from JSON and prints
the regulatory categories and risk areas triggered by its geography,
industry, products, and suppliers. The built-in rulesets can be replaced
via dashboard.rules_file in the configuration.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(args[0])
	},
}

// init registers the dashboard command.
func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// runDashboard analyzes one profile and prints the result.
func runDashboard(profilePath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rules := dashboard.DefaultRules()
	if cfg.Dashboard.RulesFile != "" {
		rules, err = dashboard.LoadRules(cfg.Dashboard.RulesFile)
		if err != nil {
			return err
		}
	}

	profile, err := dashboard.LoadProfile(profilePath)
	if err != nil {
		return err
	}

	result := dashboard.Analyze(profile, rules)

	fmt.Println("Regulatory categories needed:")
	for _, category := range result.Categories {
		fmt.Printf(" - %s\n", category)
	}

	fmt.Println("\nPotential regulatory risks:")
	for _, risk := range result.Risks {
		fmt.Printf(" - %s\n", risk)
	}

	return nil
}
