package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/amort/internal/loan"
	"github.com/theirongolddev/amort/internal/report"
)

func extraSchedule(t *testing.T) *loan.Schedule {
	t.Helper()
	l := loan.Loan{
		Principal:    24_000,
		NominalRate:  6,
		Terms:        24,
		TermsPerYear: 12,
		StartDate:    time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		DueDay:       20,
	}
	extras := loan.ExtraSchedule{Amount: 1000, Count: 6, DayOfMonth: 25}.Payments(l.FirstDueDate())
	s, err := loan.Compute(l, extras)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return s
}

func TestSavingsTableShowsPayoffMove(t *testing.T) {
	s := extraSchedule(t)
	cmp, err := report.CompareToBaseline(s)
	if err != nil {
		t.Fatalf("CompareToBaseline: %v", err)
	}

	table := savingsTable(s, cmp)

	var movedRow []string
	for _, row := range table.Rows {
		if len(row) == 2 && row[0] == "Payoff Moved Up" {
			movedRow = row
		}
	}
	if movedRow == nil {
		t.Fatal("savings table has no Payoff Moved Up row")
	}
	if !strings.HasSuffix(movedRow[1], " days") || strings.HasPrefix(movedRow[1], "0 ") {
		t.Errorf("Payoff Moved Up = %q, want a positive day count", movedRow[1])
	}
}

func TestSummaryTableMarksEarlyPayoff(t *testing.T) {
	s := extraSchedule(t)
	table := summaryTable(s)

	found := false
	for _, row := range table.Rows {
		if len(row) == 2 && row[0] == "Terms" && strings.Contains(row[1], "(early)") {
			found = true
		}
	}
	if !found {
		t.Error("summary table does not mark early payoff in the Terms row")
	}
}
