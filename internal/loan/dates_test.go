package loan

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFirstDueDate(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		dueDay int
		want   time.Time
	}{
		{"start before due day", date(2024, time.March, 10), 20, date(2024, time.March, 20)},
		{"start on due day", date(2024, time.March, 20), 20, date(2024, time.March, 20)},
		{"start after due day", date(2024, time.March, 25), 20, date(2024, time.April, 20)},
		{"rolls into next year", date(2024, time.December, 28), 20, date(2025, time.January, 20)},
		{"due day clamped to feb", date(2024, time.January, 31), 30, date(2024, time.February, 29)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := testLoan()
			l.StartDate = tc.start
			l.DueDay = tc.dueDay
			if got := l.FirstDueDate(); !got.Equal(tc.want) {
				t.Errorf("FirstDueDate() = %s, want %s", got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
			}
		})
	}
}

func TestDueDatesMonthly(t *testing.T) {
	l := testLoan()
	l.Terms = 14

	dates := l.DueDates()
	if len(dates) != 14 {
		t.Fatalf("len(DueDates()) = %d, want 14", len(dates))
	}
	if !dates[0].Equal(date(2024, time.January, 20)) {
		t.Errorf("first = %s, want 2024-01-20", dates[0].Format("2006-01-02"))
	}
	if !dates[12].Equal(date(2025, time.January, 20)) {
		t.Errorf("13th = %s, want 2025-01-20", dates[12].Format("2006-01-02"))
	}
}

func TestDueDatesQuarterly(t *testing.T) {
	l := testLoan()
	l.TermsPerYear = 4
	l.Terms = 5

	dates := l.DueDates()
	want := []time.Time{
		date(2024, time.January, 20),
		date(2024, time.April, 20),
		date(2024, time.July, 20),
		date(2024, time.October, 20),
		date(2025, time.January, 20),
	}
	for i, w := range want {
		if !dates[i].Equal(w) {
			t.Errorf("dates[%d] = %s, want %s", i, dates[i].Format("2006-01-02"), w.Format("2006-01-02"))
		}
	}
}

func TestDueDatesClampShortMonths(t *testing.T) {
	l := testLoan()
	l.StartDate = date(2024, time.January, 1)
	l.DueDay = 31
	l.Terms = 4

	dates := l.DueDates()
	want := []time.Time{
		date(2024, time.January, 31),
		date(2024, time.February, 29), // leap year
		date(2024, time.March, 31),
		date(2024, time.April, 30),
	}
	for i, w := range want {
		if !dates[i].Equal(w) {
			t.Errorf("dates[%d] = %s, want %s", i, dates[i].Format("2006-01-02"), w.Format("2006-01-02"))
		}
	}
}
