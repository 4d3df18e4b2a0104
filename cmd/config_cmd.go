// Package cmd implements the amort CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/amort/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Defaults]")
	fmt.Printf("    Principal:      %.0f\n", cfg.Defaults.Principal)
	fmt.Printf("    Interest:       %.2f%%\n", cfg.Defaults.Interest)
	fmt.Printf("    Terms per year: %d\n", cfg.Defaults.TermsPerYear)
	fmt.Printf("    Fee:            %.0f\n", cfg.Defaults.Fee)
	fmt.Printf("    Due day:        %d\n", cfg.Defaults.DueDay)
	fmt.Printf("    Extra day:      %d\n", cfg.Defaults.ExtraDay)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme:    %s\n", cfg.Appearance.Theme)
	fmt.Printf("    Currency: %s\n", cfg.Appearance.Currency)
	fmt.Println()

	fmt.Println("  [Output]")
	if cfg.Output.ChartPath != "" {
		fmt.Printf("    Chart path: %s\n", cfg.Output.ChartPath)
	} else {
		fmt.Println("    Chart path: not set")
	}
	fmt.Println()

	fmt.Printf("  Scenario database: %s\n", config.ScenarioDBPath())
	fmt.Println("  Run `amort setup` to reconfigure.")
	return nil
}
