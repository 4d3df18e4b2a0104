package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/amort/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	principal := strconv.FormatFloat(cfg.Defaults.Principal, 'f', -1, 64)
	interest := strconv.FormatFloat(cfg.Defaults.Interest, 'f', -1, 64)
	termsPerYear := cfg.Defaults.TermsPerYear
	currency := cfg.Appearance.Currency
	themeName := cfg.Appearance.Theme

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default principal").
				Description("Used when --principal is not given.").
				Value(&principal).
				Validate(validatePositiveNumber),
			huh.NewInput().
				Title("Default interest rate (%)").
				Value(&interest).
				Validate(validateNonNegativeNumber),
			huh.NewSelect[int]().
				Title("Installments per year").
				Options(
					huh.NewOption("Monthly (12)", 12),
					huh.NewOption("Bimonthly (6)", 6),
					huh.NewOption("Quarterly (4)", 4),
					huh.NewOption("Triannual (3)", 3),
					huh.NewOption("Semiannual (2)", 2),
					huh.NewOption("Yearly (1)", 1),
				).
				Value(&termsPerYear),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Currency symbol").
				CharLimit(4).
				Value(&currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&themeName),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Defaults.Principal, _ = strconv.ParseFloat(principal, 64)
	cfg.Defaults.Interest, _ = strconv.ParseFloat(interest, 64)
	cfg.Defaults.TermsPerYear = termsPerYear
	cfg.Appearance.Currency = currency
	cfg.Appearance.Theme = themeName

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `amort setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

func validatePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func validateNonNegativeNumber(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
