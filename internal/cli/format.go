// Package cli provides formatting and rendering helpers for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Currency is the symbol prefixed to money values. Set from the
// [appearance] section of the config file.
var Currency = "$"

// FormatMoney formats an amount with the configured currency symbol,
// thousands separators and two decimals. e.g. 1234567.891 -> "$1,234,567.89"
func FormatMoney(v float64) string {
	neg := v < 0
	v = math.Abs(v)

	whole := int64(v)
	cents := int64(math.Round((v - float64(whole)) * 100))
	if cents == 100 {
		whole++
		cents = 0
	}

	s := fmt.Sprintf("%s%s.%02d", Currency, groupThousands(whole), cents)
	if neg {
		return "-" + s
	}
	return s
}

// FormatMoneyShort rounds to whole units for compact columns.
func FormatMoneyShort(v float64) string {
	neg := v < 0
	n := int64(math.Round(math.Abs(v)))
	s := Currency + groupThousands(n)
	if neg {
		return "-" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(n)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatRate formats an interest rate given in percent. e.g. 1.25 -> "1.25%"
func FormatRate(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatDate formats a date for tables.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatMonthYear formats a date as "Jan 2038" for payoff summaries.
func FormatMonthYear(t time.Time) string {
	return t.Format("Jan 2006")
}

// FormatTerms renders a completed/planned term pair, marking early payoff.
// e.g. (300, 360) -> "300 of 360 (early)"
func FormatTerms(completed, planned int) string {
	if completed < planned {
		return fmt.Sprintf("%d of %d (early)", completed, planned)
	}
	return fmt.Sprintf("%d of %d", completed, planned)
}

// FormatTermSpan renders a term count as years and leftover terms.
// e.g. (30, 12) -> "2y 6t" for 30 monthly terms.
func FormatTermSpan(terms, termsPerYear int) string {
	years := terms / termsPerYear
	rest := terms % termsPerYear
	switch {
	case years == 0:
		return fmt.Sprintf("%dt", rest)
	case rest == 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dy %dt", years, rest)
	}
}
