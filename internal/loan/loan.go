// Package loan defines the loan domain types and the amortization engine.
package loan

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// AllowedTermsPerYear lists the supported installment frequencies.
var AllowedTermsPerYear = []int{1, 2, 3, 4, 6, 12}

// Loan holds the parameters of an installment loan.
type Loan struct {
	// Principal is the total sum borrowed.
	Principal float64
	// NominalRate is the advertised yearly interest rate, in percent.
	NominalRate float64
	// Terms is the planned number of installments over the loan lifetime.
	Terms int
	// TermsPerYear is the number of installments per year.
	TermsPerYear int
	// InstallmentFee is a flat fee charged on each installment.
	InstallmentFee float64
	// StartDate is the payout date of the loan.
	StartDate time.Time
	// DueDay is the day of the month installments fall due.
	DueDay int
}

// Validate checks the loan parameters and returns a user-facing error
// for the first violation found.
func (l Loan) Validate() error {
	if l.Principal <= 0 {
		return errors.New("principal must be positive")
	}
	if l.NominalRate < 0 {
		return errors.New("interest rate must not be negative")
	}
	if l.Terms <= 0 {
		return errors.New("term count must be positive")
	}
	if !allowedTermsPerYear(l.TermsPerYear) {
		return fmt.Errorf("terms-per-year must be one of %v, got %d", AllowedTermsPerYear, l.TermsPerYear)
	}
	if l.InstallmentFee < 0 {
		return errors.New("installment fee must not be negative")
	}
	if l.DueDay < 1 || l.DueDay > 31 {
		return fmt.Errorf("due day must be within 1-31, got %d", l.DueDay)
	}
	if l.StartDate.IsZero() {
		return errors.New("start date is required")
	}
	return nil
}

func allowedTermsPerYear(n int) bool {
	for _, v := range AllowedTermsPerYear {
		if v == n {
			return true
		}
	}
	return false
}

// PeriodicRate returns the per-installment interest rate as a fraction.
func (l Loan) PeriodicRate() float64 {
	return l.NominalRate / 100 / float64(l.TermsPerYear)
}

// EffectiveRate returns the effective yearly rate in percent, accounting
// for compounding across the installments of one year.
func (l Loan) EffectiveRate() float64 {
	n := float64(l.TermsPerYear)
	return (math.Pow(1+(l.NominalRate/100)/n, n) - 1) * 100
}

// AnnuityPayment returns the fixed per-term payment (excluding fees) that
// repays the loan over the planned terms. Zero-rate loans amortize linearly.
func (l Loan) AnnuityPayment() float64 {
	if l.NominalRate == 0 {
		return l.Principal / float64(l.Terms)
	}
	r := l.PeriodicRate()
	return l.Principal * r / (1 - math.Pow(1+r, -float64(l.Terms)))
}
