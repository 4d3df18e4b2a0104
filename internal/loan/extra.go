package loan

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ExtraPayment is a one-off downpayment applied directly to the balance.
type ExtraPayment struct {
	Date   time.Time
	Amount float64
}

// ExtraSchedule describes recurring monthly extra downpayments.
type ExtraSchedule struct {
	// Amount injected per payment.
	Amount float64
	// Count is the number of payments; zero disables the schedule.
	Count int
	// DayOfMonth is the day each payment lands on.
	DayOfMonth int
}

// Validate checks the schedule parameters.
func (s ExtraSchedule) Validate() error {
	if s.Count < 0 {
		return fmt.Errorf("extra term count must not be negative, got %d", s.Count)
	}
	if s.Count > 0 && s.Amount <= 0 {
		return fmt.Errorf("extra amount must be positive, got %.2f", s.Amount)
	}
	if s.Count > 0 && (s.DayOfMonth < 1 || s.DayOfMonth > 31) {
		return fmt.Errorf("extra payment day must be within 1-31, got %d", s.DayOfMonth)
	}
	return nil
}

// Payments expands the schedule into dated payments, one per month starting
// in the month of firstMonth.
func (s ExtraSchedule) Payments(firstMonth time.Time) []ExtraPayment {
	if s.Count <= 0 {
		return nil
	}
	year, month, _ := firstMonth.Date()
	payments := make([]ExtraPayment, 0, s.Count)
	for i := 0; i < s.Count; i++ {
		payments = append(payments, ExtraPayment{
			Date:   dateWithClampedDay(year, month, s.DayOfMonth),
			Amount: s.Amount,
		})
		month++
	}
	return payments
}

// ParseExtraFile reads one-off extra payments from CSV lines of the form
// "YYYY-MM-DD,amount". Blank lines and lines starting with # are skipped.
func ParseExtraFile(r io.Reader) ([]ExtraPayment, error) {
	var extras []ExtraPayment

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		date, amountStr, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("line %d: expected \"date,amount\", got %q", lineNo, line)
		}

		d, err := time.Parse("2006-01-02", strings.TrimSpace(date))
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing date: %w", lineNo, err)
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing amount: %w", lineNo, err)
		}
		if amount <= 0 {
			return nil, fmt.Errorf("line %d: amount must be positive, got %.2f", lineNo, amount)
		}

		extras = append(extras, ExtraPayment{Date: d, Amount: amount})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading extra payments: %w", err)
	}

	sortExtras(extras)
	return extras, nil
}

// MergeExtras combines extra payment lists into one date-ordered list.
func MergeExtras(lists ...[]ExtraPayment) []ExtraPayment {
	var merged []ExtraPayment
	for _, l := range lists {
		merged = append(merged, l...)
	}
	sortExtras(merged)
	return merged
}

func sortExtras(extras []ExtraPayment) {
	sort.SliceStable(extras, func(i, j int) bool {
		return extras[i].Date.Before(extras[j].Date)
	})
}
