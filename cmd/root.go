package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/amort/internal/cli"
	"github.com/theirongolddev/amort/internal/config"
	"github.com/theirongolddev/amort/internal/loan"
	"github.com/theirongolddev/amort/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagPrincipal    float64
	flagInterest     float64
	flagTerms        int
	flagYears        int
	flagTermsPerYear int
	flagFee          float64
	flagStart        string
	flagDueDay       int
	flagExtraAmount  float64
	flagExtraTerms   int
	flagExtraDay     int
	flagExtraFile    string
	flagScenario     string
	flagNoColor      bool
)

var rootCmd = &cobra.Command{
	Use:   "amort",
	Short: "Loan amortization calculator",
	Long:  "Compute annuity loan schedules: payments, interest, fees, and the effect of extra downpayments.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagNoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
	RunE: runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()

	pf.Float64VarP(&flagPrincipal, "principal", "p", 0, "Loan principal")
	pf.Float64VarP(&flagInterest, "interest", "i", 0, "Nominal yearly interest rate in percent")
	pf.IntVarP(&flagTerms, "terms", "t", 0, "Number of installments over the loan lifetime")
	pf.IntVarP(&flagYears, "years", "y", 30, "Loan lifetime in years (alternative to --terms)")
	pf.IntVar(&flagTermsPerYear, "terms-per-year", 0, "Installments per year (1, 2, 3, 4, 6 or 12)")
	pf.Float64Var(&flagFee, "fee", 0, "Flat fee charged on each installment")
	pf.StringVar(&flagStart, "start", "", "Loan payout date (YYYY-MM-DD, default today)")
	pf.IntVar(&flagDueDay, "due-day", 0, "Day of month installments fall due")
	pf.Float64Var(&flagExtraAmount, "extra-amount", 0, "Recurring monthly extra downpayment")
	pf.IntVar(&flagExtraTerms, "extra-terms", 0, "Number of recurring extra downpayments")
	pf.IntVar(&flagExtraDay, "extra-day", 0, "Day of month extra downpayments land on")
	pf.StringVar(&flagExtraFile, "extra-file", "", "CSV file with one-off extra payments (date,amount)")
	pf.StringVarP(&flagScenario, "scenario", "s", "", "Load a saved scenario as the baseline")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	rootCmd.MarkFlagsMutuallyExclusive("terms", "years")
}

// buildInputs resolves the effective loan parameters from, in order of
// precedence: explicit flags, a loaded scenario, config defaults.
func buildInputs(cmd *cobra.Command) (loan.Loan, loan.ExtraSchedule, []loan.ExtraPayment, error) {
	cfg, err := config.Load()
	if err != nil {
		return loan.Loan{}, loan.ExtraSchedule{}, nil, err
	}
	if cfg.Appearance.Currency != "" {
		cli.Currency = cfg.Appearance.Currency
	}

	l := loan.Loan{
		Principal:      cfg.Defaults.Principal,
		NominalRate:    cfg.Defaults.Interest,
		TermsPerYear:   cfg.Defaults.TermsPerYear,
		InstallmentFee: cfg.Defaults.Fee,
		DueDay:         cfg.Defaults.DueDay,
		StartDate:      today(),
	}
	extra := loan.ExtraSchedule{DayOfMonth: cfg.Defaults.ExtraDay}

	if flagScenario != "" {
		sc, err := loadScenario(flagScenario)
		if err != nil {
			return loan.Loan{}, loan.ExtraSchedule{}, nil, err
		}
		l = sc.Loan
		extra = sc.Extra
	}

	flags := cmd.Flags()
	if flags.Changed("principal") {
		l.Principal = flagPrincipal
	}
	if flags.Changed("interest") {
		l.NominalRate = flagInterest
	}
	if flags.Changed("terms-per-year") {
		l.TermsPerYear = flagTermsPerYear
	}
	if flags.Changed("fee") {
		l.InstallmentFee = flagFee
	}
	if flags.Changed("due-day") {
		l.DueDay = flagDueDay
	}
	if flags.Changed("start") {
		start, err := time.Parse("2006-01-02", flagStart)
		if err != nil {
			return loan.Loan{}, loan.ExtraSchedule{}, nil, fmt.Errorf("parsing --start: %w", err)
		}
		l.StartDate = start
	}

	switch {
	case flags.Changed("terms"):
		l.Terms = flagTerms
	case flags.Changed("years"):
		l.Terms = flagYears * l.TermsPerYear
	case l.Terms == 0:
		l.Terms = flagYears * l.TermsPerYear
	}

	if flags.Changed("extra-amount") {
		extra.Amount = flagExtraAmount
	}
	if flags.Changed("extra-terms") {
		extra.Count = flagExtraTerms
	}
	if flags.Changed("extra-day") {
		extra.DayOfMonth = flagExtraDay
	}
	if extra.Amount > 0 && extra.Count == 0 {
		// Recurring amount without a count runs for the whole loan.
		extra.Count = l.Terms * 12 / l.TermsPerYear
	}
	if err := extra.Validate(); err != nil {
		return loan.Loan{}, loan.ExtraSchedule{}, nil, err
	}

	var oneOffs []loan.ExtraPayment
	if flagExtraFile != "" {
		f, err := os.Open(flagExtraFile)
		if err != nil {
			return loan.Loan{}, loan.ExtraSchedule{}, nil, fmt.Errorf("opening --extra-file: %w", err)
		}
		defer f.Close()
		oneOffs, err = loan.ParseExtraFile(f)
		if err != nil {
			return loan.Loan{}, loan.ExtraSchedule{}, nil, fmt.Errorf("%s: %w", flagExtraFile, err)
		}
	}

	extras := loan.MergeExtras(oneOffs, extra.Payments(l.FirstDueDate()))
	return l, extra, extras, nil
}

// loadSchedule is the shared computation path used by all commands.
func loadSchedule(cmd *cobra.Command) (*loan.Schedule, error) {
	l, _, extras, err := buildInputs(cmd)
	if err != nil {
		return nil, err
	}
	return loan.Compute(l, extras)
}

func loadScenario(name string) (store.Scenario, error) {
	st, err := store.Open(config.ScenarioDBPath())
	if err != nil {
		return store.Scenario{}, err
	}
	defer st.Close()
	return st.Get(name)
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
