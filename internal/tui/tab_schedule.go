package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/amort/internal/cli"
	"github.com/theirongolddev/amort/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderScheduleTab(cw int) string {
	t := theme.Active
	payments := a.sched.Payments

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	colWidths := []int{5, 11, 13, 12, 12, 12, 14}
	headers := []string{"Term", "Due", "Payment", "Interest", "Principal", "Extra", "Balance"}

	var b strings.Builder
	b.WriteString(" ")
	for i, h := range headers {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%*s", colWidths[i], h)))
	}
	b.WriteString("\n")

	visible := a.scheduleRows()
	end := a.schedOffset + visible
	if end > len(payments) {
		end = len(payments)
	}

	for _, p := range payments[a.schedOffset:end] {
		cells := []string{
			fmt.Sprintf("%d", p.Index),
			cli.FormatDate(p.DueDate)[2:], // YY-MM-DD keeps the column narrow
			cli.FormatMoney(p.Amount),
			cli.FormatMoney(p.Interest),
			cli.FormatMoney(p.Principal),
			cli.FormatMoney(p.Extra),
			cli.FormatMoney(p.Balance),
		}
		b.WriteString(" ")
		for i, c := range cells {
			style := rowStyle
			if i == 5 && p.Extra == 0 {
				style = dimStyle
			}
			b.WriteString(style.Render(fmt.Sprintf("%*s", colWidths[i], c)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("terms %d-%d of %d   j/k scroll, g/G jump",
		a.schedOffset+1, end, len(payments))))

	return b.String()
}
