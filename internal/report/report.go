// Package report aggregates amortization schedules into summary views.
package report

import (
	"sort"
	"time"

	"github.com/theirongolddev/amort/internal/loan"
)

// YearlyStats holds the repayment activity of one calendar year.
type YearlyStats struct {
	Year         int
	Installments int
	Paid         float64 // installments + extras
	Interest     float64
	Principal    float64
	Fees         float64
	Extra        float64
	EndBalance   float64
}

// AggregateYears groups a schedule's payments by calendar year,
// oldest year first.
func AggregateYears(s *loan.Schedule) []YearlyStats {
	yearMap := make(map[int]*YearlyStats)

	for _, p := range s.Payments {
		y := p.DueDate.Year()
		ys, ok := yearMap[y]
		if !ok {
			ys = &YearlyStats{Year: y}
			yearMap[y] = ys
		}
		if p.Amount > 0 {
			ys.Installments++
		}
		ys.Paid += p.Amount + p.Extra
		ys.Interest += p.Interest
		ys.Principal += p.Principal
		ys.Fees += p.Fee
		ys.Extra += p.Extra
		ys.EndBalance = p.Balance
	}

	years := make([]YearlyStats, 0, len(yearMap))
	for _, ys := range yearMap {
		years = append(years, *ys)
	}
	sort.Slice(years, func(i, j int) bool {
		return years[i].Year < years[j].Year
	})
	return years
}

// Comparison contrasts a schedule against the same loan without extras.
type Comparison struct {
	InterestSaved float64
	CostSaved     float64
	TermsSaved    int
	PayoffMoved   time.Duration
}

// CompareToBaseline recomputes the schedule's loan without any extra
// downpayments and reports what the extras buy.
func CompareToBaseline(s *loan.Schedule) (Comparison, error) {
	base, err := loan.Compute(s.Loan, nil)
	if err != nil {
		return Comparison{}, err
	}

	return Comparison{
		InterestSaved: base.Totals.TotalInterest - s.Totals.TotalInterest,
		CostSaved:     base.Totals.TotalCost - s.Totals.TotalCost,
		TermsSaved:    base.Totals.CompletedTerms - s.Totals.CompletedTerms,
		PayoffMoved:   base.Totals.PayoffDate.Sub(s.Totals.PayoffDate),
	}, nil
}
