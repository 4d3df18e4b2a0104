package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/amort/internal/cli"
	"github.com/theirongolddev/amort/internal/tui/components"
	"github.com/theirongolddev/amort/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	s := a.sched
	tot := s.Totals
	var b strings.Builder

	// Row 1: Metric cards
	payoffDetail := cli.FormatTerms(tot.CompletedTerms, tot.PlannedTerms)
	interestDetail := fmt.Sprintf("eff. rate %s", cli.FormatRate(tot.EffectiveRate))
	costDetail := fmt.Sprintf("fees %s", cli.FormatMoneyShort(tot.TotalFees))
	if tot.TotalExtra > 0 {
		costDetail = fmt.Sprintf("extras %s", cli.FormatMoneyShort(tot.TotalExtra))
	}

	cards := []struct{ Label, Value, Detail string }{
		{"Payment/Term", cli.FormatMoney(s.Payment + a.loan.InstallmentFee), fmt.Sprintf("%d per year", a.loan.TermsPerYear)},
		{"Total Interest", cli.FormatMoneyShort(tot.TotalInterest), interestDetail},
		{"Total Cost", cli.FormatMoneyShort(tot.TotalCost), costDetail},
		{"Paid Off", cli.FormatMonthYear(tot.PayoffDate), payoffDetail},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Balance curve
	innerW := components.CardInnerWidth(cw)
	balance := cli.Downsample(s.BalanceSeries(), innerW)
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Remaining Balance (%s to %s)",
			cli.FormatMonthYear(a.loan.StartDate), cli.FormatMonthYear(tot.PayoffDate)),
		components.Sparkline(balance, t.Blue),
		cw,
	))
	b.WriteString("\n")

	// Row 3: Where the money goes + savings from extras
	halves := components.LayoutRow(cw, 2)

	splitW := components.CardInnerWidth(halves[0])
	var splitBody strings.Builder
	splitBody.WriteString(components.SplitBar(tot.Principal, tot.TotalInterest+tot.TotalFees, t.Green, t.Red, splitW))
	splitBody.WriteString("\n")
	splitBody.WriteString(components.BarList([]components.Bar{
		{Label: "Principal", Value: tot.Principal, Text: cli.FormatMoneyShort(tot.Principal), Color: t.Green},
		{Label: "Interest", Value: tot.TotalInterest, Text: cli.FormatMoneyShort(tot.TotalInterest), Color: t.Red},
		{Label: "Fees", Value: tot.TotalFees, Text: cli.FormatMoneyShort(tot.TotalFees), Color: t.Orange},
	}, splitW, 10))
	splitCard := components.ContentCard("Cost Split", splitBody.String(), halves[0])

	var rightCard string
	if a.hasExtras {
		var savBody strings.Builder
		fmt.Fprintf(&savBody, "Interest saved  %s\n", cli.FormatMoneyShort(a.baseline.InterestSaved))
		fmt.Fprintf(&savBody, "Cost saved      %s\n", cli.FormatMoneyShort(a.baseline.CostSaved))
		fmt.Fprintf(&savBody, "Terms saved     %s\n", cli.FormatTermSpan(a.baseline.TermsSaved, a.loan.TermsPerYear))
		rightCard = components.ContentCard("Extra Downpayments", savBody.String(), halves[1])
	} else {
		hint := "No extra downpayments.\nUse --extra-amount and\n--extra-terms to model them."
		rightCard = components.ContentCard("Extra Downpayments", hint, halves[1])
	}

	b.WriteString(components.CardRow([]string{splitCard, rightCard}))

	return b.String()
}
