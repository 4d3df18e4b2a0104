package loan

import "time"

// FirstDueDate returns the due date of the first installment: DueDay in the
// start month, or the following month when the payout already passed DueDay.
func (l Loan) FirstDueDate() time.Time {
	year, month, day := l.StartDate.Date()
	if day > l.DueDay {
		month++
	}
	return dateWithClampedDay(year, month, l.DueDay)
}

// DueDates returns the due date of every planned installment.
// Installments are spaced 12/TermsPerYear months apart.
func (l Loan) DueDates() []time.Time {
	step := 12 / l.TermsPerYear
	first := l.FirstDueDate()
	year, month, _ := first.Date()

	dates := make([]time.Time, 0, l.Terms)
	for i := 0; i < l.Terms; i++ {
		dates = append(dates, dateWithClampedDay(year, month, l.DueDay))
		month += time.Month(step)
	}
	return dates
}

// dateWithClampedDay builds a date, clamping the day to the month's length
// so a due day of 31 lands on Feb 28 rather than rolling into March.
// Month may be out of the 1-12 range; time.Date normalizes it.
func dateWithClampedDay(year int, month time.Month, day int) time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day {
		// Rolled over into the next month; back up to its last day.
		d = time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	}
	return d
}
