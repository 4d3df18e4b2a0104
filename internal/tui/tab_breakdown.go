package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/amort/internal/cli"
	"github.com/theirongolddev/amort/internal/report"
	"github.com/theirongolddev/amort/internal/tui/components"
	"github.com/theirongolddev/amort/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// maxBreakdownYears caps the per-year rows so long loans still fit one screen.
const maxBreakdownYears = 15

func (a App) renderBreakdownTab(cw int) string {
	t := theme.Active
	years := a.years
	var b strings.Builder

	innerW := components.CardInnerWidth(cw)

	// Per-year interest/principal split bars
	labelW := 5
	textW := 0
	for _, y := range years {
		if w := len(cli.FormatMoneyShort(y.Paid)); w > textW {
			textW = w
		}
	}
	barW := innerW - labelW - textW - 2
	if barW < 10 {
		barW = 10
	}

	yearStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	shown := years
	if len(shown) > maxBreakdownYears {
		shown = shown[:maxBreakdownYears]
	}

	var body strings.Builder
	for _, y := range shown {
		bar := components.SplitBar(y.Interest, y.Principal+y.Extra, t.Red, t.Green, barW)
		fmt.Fprintf(&body, "%s %s %s\n",
			yearStyle.Render(fmt.Sprintf("%-*d", labelW, y.Year)),
			amountStyle.Render(fmt.Sprintf("%*s", textW, cli.FormatMoneyShort(y.Paid))),
			bar)
	}
	if len(years) > maxBreakdownYears {
		fmt.Fprintf(&body, "%s\n", amountStyle.Render(fmt.Sprintf("... %d more years", len(years)-maxBreakdownYears)))
	}
	body.WriteString("\n")
	body.WriteString(lipgloss.NewStyle().Foreground(t.Red).Render("█ interest"))
	body.WriteString("  ")
	body.WriteString(lipgloss.NewStyle().Foreground(t.Green).Render("█ principal"))

	b.WriteString(components.ContentCard("Yearly Split", body.String(), cw))
	b.WriteString("\n")

	// First/last year detail cards
	if len(years) > 0 {
		halves := components.LayoutRow(cw, 2)
		first := years[0]
		last := years[len(years)-1]
		b.WriteString(components.CardRow([]string{
			components.ContentCard(fmt.Sprintf("First Year (%d)", first.Year), yearDetail(first), halves[0]),
			components.ContentCard(fmt.Sprintf("Last Year (%d)", last.Year), yearDetail(last), halves[1]),
		}))
	}

	return b.String()
}

func yearDetail(y report.YearlyStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Paid      %s\n", cli.FormatMoney(y.Paid))
	fmt.Fprintf(&b, "Interest  %s\n", cli.FormatMoney(y.Interest))
	fmt.Fprintf(&b, "Principal %s\n", cli.FormatMoney(y.Principal))
	fmt.Fprintf(&b, "Balance   %s", cli.FormatMoney(y.EndBalance))
	return b.String()
}
