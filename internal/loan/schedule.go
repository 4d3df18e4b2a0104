package loan

import (
	"fmt"
	"math"
	"time"
)

// balanceEpsilon is the threshold below which a balance counts as repaid.
const balanceEpsilon = 1e-6

// Payment is one period of the amortization schedule.
type Payment struct {
	// Index is the 1-based installment number.
	Index int
	// DueDate is when the installment falls due.
	DueDate time.Time
	// Amount is the total paid at the due date, fee included.
	Amount float64
	// Interest is the interest portion of the installment.
	Interest float64
	// Principal is the principal portion of the installment.
	Principal float64
	// Extra is the sum of extra downpayments applied during the period.
	Extra float64
	// Fee is the flat installment fee.
	Fee float64
	// Balance is the remaining principal after the period.
	Balance float64
}

// Totals summarizes the full lifetime of the loan.
type Totals struct {
	Principal      float64
	TotalCost      float64
	TotalInterest  float64
	TotalFees      float64
	TotalExtra     float64
	CompletedTerms int
	PlannedTerms   int
	EffectiveRate  float64
	PayoffDate     time.Time
}

// Schedule is the computed repayment plan.
type Schedule struct {
	Loan     Loan
	Payment  float64 // fixed per-term payment, fee excluded
	Payments []Payment
	Totals   Totals
}

// Compute runs the amortization loop and returns the full schedule.
// Extras dated within a period reduce the balance before that period's
// interest accrues; the final installment is capped at the remaining
// balance plus interest, so extra downpayments shorten the loan.
func Compute(l Loan, extras []ExtraPayment) (*Schedule, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	for _, e := range extras {
		// NaN fails this comparison too.
		if !(e.Amount > 0) {
			return nil, fmt.Errorf("extra payment on %s: amount must be positive, got %v",
				e.Date.Format("2006-01-02"), e.Amount)
		}
	}

	dueDates := l.DueDates()
	payment := l.AnnuityPayment()
	rate := l.PeriodicRate()

	extras = MergeExtras(extras)
	nextExtra := 0

	s := &Schedule{
		Loan:     l,
		Payment:  payment,
		Payments: make([]Payment, 0, l.Terms),
	}

	balance := l.Principal
	for i, due := range dueDates {
		p := Payment{Index: i + 1, DueDate: due}

		// Apply extras due on or before this installment.
		for nextExtra < len(extras) && !extras[nextExtra].Date.After(due) {
			e := extras[nextExtra]
			nextExtra++
			if e.Date.Before(l.StartDate) {
				continue
			}
			applied := math.Min(e.Amount, balance)
			balance -= applied
			p.Extra += applied
			if balance <= balanceEpsilon {
				balance = 0
				s.Totals.PayoffDate = e.Date
				break
			}
		}

		if balance <= balanceEpsilon {
			if p.Extra > 0 {
				p.Balance = 0
				s.Payments = append(s.Payments, p)
			}
			break
		}

		p.Interest = balance * rate
		p.Principal = payment - p.Interest
		if p.Principal >= balance {
			// Early payoff: cap the final installment.
			p.Principal = balance
		}
		p.Fee = l.InstallmentFee
		p.Amount = p.Principal + p.Interest + p.Fee
		balance -= p.Principal
		if balance <= balanceEpsilon {
			balance = 0
		}
		p.Balance = balance

		s.Payments = append(s.Payments, p)
		if balance == 0 {
			s.Totals.PayoffDate = due
			break
		}
	}

	s.Totals.Principal = l.Principal
	s.Totals.PlannedTerms = l.Terms
	s.Totals.EffectiveRate = l.EffectiveRate()
	for _, p := range s.Payments {
		if p.Amount > 0 {
			s.Totals.CompletedTerms++
		}
		s.Totals.TotalCost += p.Amount + p.Extra
		s.Totals.TotalInterest += p.Interest
		s.Totals.TotalFees += p.Fee
		s.Totals.TotalExtra += p.Extra
	}
	if s.Totals.PayoffDate.IsZero() && len(s.Payments) > 0 {
		s.Totals.PayoffDate = s.Payments[len(s.Payments)-1].DueDate
	}

	return s, nil
}

// BalanceSeries returns the remaining balance after each period,
// starting from the full principal at period zero.
func (s *Schedule) BalanceSeries() []float64 {
	series := make([]float64, 0, len(s.Payments)+1)
	series = append(series, s.Loan.Principal)
	for _, p := range s.Payments {
		series = append(series, p.Balance)
	}
	return series
}

// CumulativeCostSeries returns the running total paid after each period.
func (s *Schedule) CumulativeCostSeries() []float64 {
	series := make([]float64, 0, len(s.Payments)+1)
	sum := 0.0
	series = append(series, 0)
	for _, p := range s.Payments {
		sum += p.Amount + p.Extra
		series = append(series, sum)
	}
	return series
}
