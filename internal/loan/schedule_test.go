package loan

import (
	"math"
	"testing"
	"time"
)

func computeOrFail(t *testing.T, l Loan, extras []ExtraPayment) *Schedule {
	t.Helper()
	s, err := Compute(l, extras)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return s
}

func TestComputeRejectsInvalidLoan(t *testing.T) {
	l := testLoan()
	l.Principal = -1
	if _, err := Compute(l, nil); err == nil {
		t.Fatal("Compute accepted invalid loan")
	}
}

// A negative extra would add to the balance instead of repaying it, so
// Compute must reject non-positive amounts no matter which caller built them.
func TestComputeRejectsInvalidExtras(t *testing.T) {
	amounts := map[string]float64{
		"negative": -5_000,
		"zero":     0,
		"nan":      math.NaN(),
	}

	for name, amount := range amounts {
		t.Run(name, func(t *testing.T) {
			extras := []ExtraPayment{{Date: date(2024, time.March, 1), Amount: amount}}
			if _, err := Compute(testLoan(), extras); err == nil {
				t.Fatalf("Compute accepted extra amount %v", amount)
			}
		})
	}
}

// Sum of principal portions (including extras) must equal the original
// principal within rounding tolerance.
func TestPrincipalPortionsSumToPrincipal(t *testing.T) {
	loans := map[string]Loan{
		"monthly 30y": testLoan(),
		"quarterly":   {Principal: 250_000, NominalRate: 4.5, Terms: 60, TermsPerYear: 4, StartDate: date(2024, time.June, 3), DueDay: 15},
		"yearly":      {Principal: 50_000, NominalRate: 7, Terms: 10, TermsPerYear: 1, StartDate: date(2024, time.June, 3), DueDay: 1},
		"zero rate":   {Principal: 12_000, NominalRate: 0, Terms: 24, TermsPerYear: 12, StartDate: date(2024, time.June, 3), DueDay: 28},
		"with fee":    {Principal: 80_000, NominalRate: 3.2, Terms: 120, TermsPerYear: 12, InstallmentFee: 45, StartDate: date(2024, time.June, 3), DueDay: 20},
	}

	for name, l := range loans {
		t.Run(name, func(t *testing.T) {
			s := computeOrFail(t, l, nil)

			sum := 0.0
			for _, p := range s.Payments {
				sum += p.Principal + p.Extra
			}
			if math.Abs(sum-l.Principal) > 1e-6 {
				t.Errorf("principal portions sum to %.6f, want %.2f", sum, l.Principal)
			}
		})
	}
}

// Remaining balance must never increase across periods.
func TestBalanceMonotonicallyNonIncreasing(t *testing.T) {
	s := computeOrFail(t, testLoan(), ExtraSchedule{Amount: 500, Count: 24, DayOfMonth: 25}.Payments(date(2024, time.January, 1)))

	prev := s.Loan.Principal
	for _, p := range s.Payments {
		if p.Balance > prev+1e-9 {
			t.Fatalf("balance increased at term %d: %.2f -> %.2f", p.Index, prev, p.Balance)
		}
		prev = p.Balance
	}
	if last := s.Payments[len(s.Payments)-1].Balance; last != 0 {
		t.Errorf("final balance = %.6f, want 0", last)
	}
}

// Total interest must equal total payments minus principal and fees.
func TestInterestIdentity(t *testing.T) {
	l := testLoan()
	l.InstallmentFee = 45
	s := computeOrFail(t, l, nil)

	tot := s.Totals
	got := tot.TotalCost - tot.Principal - tot.TotalFees
	if math.Abs(got-tot.TotalInterest) > 1e-6 {
		t.Errorf("cost - principal - fees = %.6f, want TotalInterest %.6f", got, tot.TotalInterest)
	}
}

// With no extras, the schedule must match the closed-form fixed-payment
// amortization formula at every period.
func TestMatchesClosedForm(t *testing.T) {
	l := testLoan()
	s := computeOrFail(t, l, nil)

	if len(s.Payments) != l.Terms {
		t.Fatalf("len(Payments) = %d, want %d", len(s.Payments), l.Terms)
	}

	r := l.PeriodicRate()
	a := l.AnnuityPayment()
	for _, p := range s.Payments {
		k := float64(p.Index)
		want := l.Principal*math.Pow(1+r, k) - a*(math.Pow(1+r, k)-1)/r
		if want < 0 {
			want = 0
		}
		if math.Abs(p.Balance-want) > 1e-5 {
			t.Fatalf("balance[%d] = %.6f, closed form %.6f", p.Index, p.Balance, want)
		}
	}
}

func TestEarlyPayoffWithExtras(t *testing.T) {
	l := testLoan()
	l.Terms = 120
	base := computeOrFail(t, l, nil)

	extras := ExtraSchedule{Amount: 1000, Count: 36, DayOfMonth: 25}.Payments(base.Payments[0].DueDate)
	s := computeOrFail(t, l, extras)

	if s.Totals.CompletedTerms >= base.Totals.CompletedTerms {
		t.Errorf("CompletedTerms = %d, want fewer than %d", s.Totals.CompletedTerms, base.Totals.CompletedTerms)
	}
	if s.Totals.TotalInterest >= base.Totals.TotalInterest {
		t.Errorf("TotalInterest = %.2f, want less than baseline %.2f", s.Totals.TotalInterest, base.Totals.TotalInterest)
	}
	if !s.Totals.PayoffDate.Before(base.Totals.PayoffDate) {
		t.Errorf("PayoffDate = %s, want earlier than %s",
			s.Totals.PayoffDate.Format("2006-01-02"), base.Totals.PayoffDate.Format("2006-01-02"))
	}

	sum := 0.0
	for _, p := range s.Payments {
		sum += p.Principal + p.Extra
	}
	if math.Abs(sum-l.Principal) > 1e-6 {
		t.Errorf("principal portions with extras sum to %.6f, want %.2f", sum, l.Principal)
	}
}

func TestExtraLargerThanBalanceCapped(t *testing.T) {
	l := Loan{Principal: 5_000, NominalRate: 5, Terms: 12, TermsPerYear: 12,
		StartDate: date(2024, time.January, 2), DueDay: 20}

	extras := []ExtraPayment{{Date: date(2024, time.March, 1), Amount: 50_000}}
	s := computeOrFail(t, l, extras)

	if s.Totals.TotalExtra > l.Principal {
		t.Errorf("TotalExtra = %.2f, want at most principal %.2f", s.Totals.TotalExtra, l.Principal)
	}
	if got := s.Totals.CompletedTerms; got != 2 {
		t.Errorf("CompletedTerms = %d, want 2 (Jan + Feb installments)", got)
	}
	if last := s.Payments[len(s.Payments)-1]; last.Balance != 0 {
		t.Errorf("final balance = %.6f, want 0", last.Balance)
	}
}

func TestExtrasBeforeStartIgnored(t *testing.T) {
	l := testLoan()
	extras := []ExtraPayment{{Date: l.StartDate.AddDate(0, -1, 0), Amount: 10_000}}
	s := computeOrFail(t, l, extras)

	if s.Totals.TotalExtra != 0 {
		t.Errorf("TotalExtra = %.2f, want 0 for pre-payout extras", s.Totals.TotalExtra)
	}
}

func TestSeriesLengths(t *testing.T) {
	s := computeOrFail(t, testLoan(), nil)

	bal := s.BalanceSeries()
	cost := s.CumulativeCostSeries()
	if len(bal) != len(s.Payments)+1 || len(cost) != len(s.Payments)+1 {
		t.Fatalf("series lengths = %d/%d, want %d", len(bal), len(cost), len(s.Payments)+1)
	}
	if bal[0] != s.Loan.Principal || cost[0] != 0 {
		t.Errorf("series origins = %.2f/%.2f, want principal/0", bal[0], cost[0])
	}
	if cost[len(cost)-1] < s.Loan.Principal {
		t.Errorf("final cumulative cost %.2f below principal", cost[len(cost)-1])
	}
}
