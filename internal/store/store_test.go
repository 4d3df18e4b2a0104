package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/amort/internal/loan"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scenarios.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func houseScenario() Scenario {
	return Scenario{
		Name: "house",
		Loan: loan.Loan{
			Principal:    4_350_000,
			NominalRate:  1.25,
			Terms:        360,
			TermsPerYear: 12,
			InstallmentFee: 45,
			StartDate:    time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			DueDay:       20,
		},
		Extra:          loan.ExtraSchedule{Amount: 6000, Count: 12, DayOfMonth: 25},
		TotalCost:      5_220_000,
		TotalInterest:  850_000,
		CompletedTerms: 348,
	}
}

func TestSaveGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save(houseScenario()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get("house")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Loan.Principal != 4_350_000 {
		t.Errorf("Principal = %v, want 4350000", got.Loan.Principal)
	}
	if got.Loan.NominalRate != 1.25 {
		t.Errorf("NominalRate = %v, want 1.25", got.Loan.NominalRate)
	}
	if !got.Loan.StartDate.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartDate = %v", got.Loan.StartDate)
	}
	if got.Extra.Amount != 6000 || got.Extra.Count != 12 || got.Extra.DayOfMonth != 25 {
		t.Errorf("Extra = %+v", got.Extra)
	}
	if got.CompletedTerms != 348 {
		t.Errorf("CompletedTerms = %d, want 348", got.CompletedTerms)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not recorded")
	}
}

func TestSaveUpsertsByName(t *testing.T) {
	s := openTestStore(t)

	sc := houseScenario()
	if err := s.Save(sc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	sc.Loan.NominalRate = 2.5
	if err := s.Save(sc); err != nil {
		t.Fatalf("Save (update): %v", err)
	}

	got, err := s.Get("house")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Loan.NominalRate != 2.5 {
		t.Errorf("NominalRate = %v after update, want 2.5", got.Loan.NominalRate)
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Errorf("Count = %d after upsert, want 1", count)
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing = %v, want ErrNotFound", err)
	}
}

func TestListAndDelete(t *testing.T) {
	s := openTestStore(t)

	a := houseScenario()
	b := houseScenario()
	b.Name = "car"
	b.Loan.Principal = 250_000

	if err := s.Save(a); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(b); err != nil {
		t.Fatal(err)
	}

	list, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(List()) = %d, want 2", len(list))
	}

	if err := s.Delete("house"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete("house"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete = %v, want ErrNotFound", err)
	}

	list, err = s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Name != "car" {
		t.Fatalf("List after delete = %+v", list)
	}
}
