package cmd

import (
	"fmt"

	"github.com/theirongolddev/amort/internal/cli"
	"github.com/theirongolddev/amort/internal/report"

	"github.com/spf13/cobra"
)

var yearlyCmd = &cobra.Command{
	Use:   "yearly",
	Short: "Per-year repayment table",
	RunE:  runYearly,
}

func init() {
	rootCmd.AddCommand(yearlyCmd)
}

func runYearly(cmd *cobra.Command, _ []string) error {
	s, err := loadSchedule(cmd)
	if err != nil {
		return err
	}

	years := report.AggregateYears(s)

	fmt.Println()
	fmt.Println(cli.RenderTitle("YEARLY BREAKDOWN"))
	fmt.Println()

	rows := make([][]string, 0, len(years))
	for _, y := range years {
		rows = append(rows, []string{
			fmt.Sprintf("%d", y.Year),
			cli.FormatNumber(int64(y.Installments)),
			cli.FormatMoney(y.Paid),
			cli.FormatMoney(y.Interest),
			cli.FormatMoney(y.Principal),
			cli.FormatMoney(y.Extra),
			cli.FormatMoneyShort(y.EndBalance),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Year", "Terms", "Paid", "Interest", "Principal", "Extra", "Balance"},
		Rows:    rows,
	}))

	return nil
}
