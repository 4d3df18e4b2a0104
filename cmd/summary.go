package cmd

import (
	"fmt"

	"github.com/theirongolddev/amort/internal/cli"
	"github.com/theirongolddev/amort/internal/loan"
	"github.com/theirongolddev/amort/internal/report"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Loan summary with totals and payoff",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	s, err := loadSchedule(cmd)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("LOAN SUMMARY"))
	fmt.Println()

	fmt.Print(cli.RenderTable(summaryTable(s)))

	if s.Totals.TotalExtra > 0 {
		cmp, err := report.CompareToBaseline(s)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(savingsTable(s, cmp)))
	}

	return nil
}

func summaryTable(s *loan.Schedule) cli.Table {
	t := s.Totals
	l := s.Loan

	rows := [][]string{
		{"Principal", cli.FormatMoney(t.Principal)},
		{"Nominal Rate", cli.FormatRate(l.NominalRate)},
		{"Effective Rate", cli.FormatRate(t.EffectiveRate)},
		{"---"},
		{"Payment/Term", cli.FormatMoney(s.Payment + l.InstallmentFee)},
		{"Terms", cli.FormatTerms(t.CompletedTerms, t.PlannedTerms)},
		{"Paid Off", cli.FormatMonthYear(t.PayoffDate)},
		{"---"},
		{"Total Interest", cli.FormatMoney(t.TotalInterest)},
		{"Total Fees", cli.FormatMoney(t.TotalFees)},
	}
	if t.TotalExtra > 0 {
		rows = append(rows, []string{"Extra Downpayments", cli.FormatMoney(t.TotalExtra)})
	}
	rows = append(rows, []string{"Total Cost", cli.FormatMoney(t.TotalCost)})

	return cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}
}

func savingsTable(s *loan.Schedule, cmp report.Comparison) cli.Table {
	movedDays := int64(cmp.PayoffMoved.Hours() / 24)

	return cli.Table{
		Title:   "vs no extra downpayments",
		Headers: []string{"Saving", "Value"},
		Rows: [][]string{
			{"Interest Saved", cli.FormatMoney(cmp.InterestSaved)},
			{"Cost Saved", cli.FormatMoney(cmp.CostSaved)},
			{"Terms Saved", cli.FormatTermSpan(cmp.TermsSaved, s.Loan.TermsPerYear)},
			{"Payoff Moved Up", fmt.Sprintf("%s days", cli.FormatNumber(movedDays))},
			{"New Payoff", cli.FormatMonthYear(s.Totals.PayoffDate)},
		},
	}
}
