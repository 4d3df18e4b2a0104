package cmd

import (
	"fmt"

	"github.com/theirongolddev/amort/internal/chart"
	"github.com/theirongolddev/amort/internal/cli"
	"github.com/theirongolddev/amort/internal/config"

	"github.com/spf13/cobra"
)

var flagChartOutput string

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the schedule as an SVG or PNG chart",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().StringVarP(&flagChartOutput, "output", "o", "", "Output file (.svg or .png)")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, _ []string) error {
	s, err := loadSchedule(cmd)
	if err != nil {
		return err
	}

	path := flagChartOutput
	if path == "" {
		cfg, _ := config.Load()
		path = cfg.Output.ChartPath
	}
	if path == "" {
		path = "amort.svg"
	}

	if err := chart.Render(s, path); err != nil {
		return err
	}

	// Terminal preview of the balance curve.
	balance := cli.Downsample(s.BalanceSeries(), 55)
	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderSparkline(balance))
	fmt.Println(cli.Muted(fmt.Sprintf("  remaining balance, %s to %s",
		cli.FormatMonthYear(s.Loan.StartDate),
		cli.FormatMonthYear(s.Totals.PayoffDate))))
	fmt.Println()
	fmt.Printf("  Chart written to %s\n", path)

	return nil
}
