package cmd

import (
	"fmt"

	"github.com/theirongolddev/amort/internal/cli"

	"github.com/spf13/cobra"
)

var flagScheduleAll bool

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Full per-term payment schedule",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().BoolVarP(&flagScheduleAll, "all", "a", false, "Show every term (default truncates long schedules)")
	rootCmd.AddCommand(scheduleCmd)
}

// maxScheduleRows caps the table for long loans unless --all is given.
const maxScheduleRows = 24

func runSchedule(cmd *cobra.Command, _ []string) error {
	s, err := loadSchedule(cmd)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PAYMENT SCHEDULE"))
	fmt.Println()

	rows := make([][]string, 0, len(s.Payments)+2)
	skipped := 0
	for i, p := range s.Payments {
		if !flagScheduleAll && len(s.Payments) > maxScheduleRows &&
			i >= maxScheduleRows/2 && i < len(s.Payments)-maxScheduleRows/2 {
			skipped++
			continue
		}
		if skipped > 0 {
			rows = append(rows, []string{"---"})
			rows = append(rows, []string{fmt.Sprintf("... %d terms", skipped)})
			rows = append(rows, []string{"---"})
			skipped = 0
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Index),
			cli.FormatDate(p.DueDate),
			cli.FormatMoney(p.Amount),
			cli.FormatMoney(p.Interest),
			cli.FormatMoney(p.Principal),
			cli.FormatMoney(p.Extra),
			cli.FormatMoney(p.Balance),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Term", "Due Date", "Payment", "Interest", "Principal", "Extra", "Balance"},
		Rows:    rows,
	}))

	t := s.Totals
	fmt.Println()
	fmt.Println(cli.Muted(fmt.Sprintf("  %s terms, %s interest, %s total",
		cli.FormatNumber(int64(t.CompletedTerms)),
		cli.FormatMoneyShort(t.TotalInterest),
		cli.FormatMoneyShort(t.TotalCost))))

	return nil
}
