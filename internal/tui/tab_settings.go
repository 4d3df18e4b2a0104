package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/amort/internal/cli"
	"github.com/theirongolddev/amort/internal/tui/components"
	"github.com/theirongolddev/amort/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	halves := components.LayoutRow(cw, 2)

	// Loan parameters (read-only; change them via flags or config)
	l := a.loan
	var paramBody strings.Builder
	fmt.Fprintf(&paramBody, "Principal       %s\n", cli.FormatMoney(l.Principal))
	fmt.Fprintf(&paramBody, "Nominal rate    %s\n", cli.FormatRate(l.NominalRate))
	fmt.Fprintf(&paramBody, "Terms           %d (%d/year)\n", l.Terms, l.TermsPerYear)
	fmt.Fprintf(&paramBody, "Fee/term        %s\n", cli.FormatMoney(l.InstallmentFee))
	fmt.Fprintf(&paramBody, "Start           %s\n", cli.FormatDate(l.StartDate))
	fmt.Fprintf(&paramBody, "Due day         %d\n", l.DueDay)
	if a.extra.Count > 0 {
		fmt.Fprintf(&paramBody, "Extra           %s x %d (day %d)",
			cli.FormatMoneyShort(a.extra.Amount), a.extra.Count, a.extra.DayOfMonth)
	} else {
		paramBody.WriteString("Extra           none")
	}
	paramCard := components.ContentCard("Loan Parameters", paramBody.String(), halves[0])

	// Theme picker
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	optStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var themeBody strings.Builder
	for i, th := range theme.All {
		marker := "( )"
		style := optStyle
		if th.Name == t.Name {
			marker = "(o)"
		}
		if i == a.themeChoice {
			style = selStyle
		}
		fmt.Fprintf(&themeBody, "%s\n", style.Render(fmt.Sprintf("%s %s", marker, th.Name)))
	}
	themeBody.WriteString("\n")
	themeBody.WriteString(dimStyle.Render("j/k select, Enter apply"))
	if a.themeSaveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
		themeBody.WriteString("\n")
		themeBody.WriteString(warnStyle.Render(fmt.Sprintf("Could not save: %s", a.themeSaveErr)))
		themeBody.WriteString("\n")
		themeBody.WriteString(dimStyle.Render("Theme applies for this session only."))
	}
	themeCard := components.ContentCard("Theme", themeBody.String(), halves[1])

	b.WriteString(components.CardRow([]string{paramCard, themeCard}))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(" Settings are saved to " + "~/.config/amort/config.toml"))

	return b.String()
}
