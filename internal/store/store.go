// Package store provides SQLite-backed persistence for named loan scenarios.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/amort/internal/loan"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when a named scenario does not exist.
var ErrNotFound = errors.New("scenario not found")

// Scenario is a saved set of loan parameters with cached headline totals.
type Scenario struct {
	Name  string
	Loan  loan.Loan
	Extra loan.ExtraSchedule

	// Cached from the last computation, for fast listing.
	TotalCost      float64
	TotalInterest  float64
	CompletedTerms int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store persists scenarios in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the scenario database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening scenario db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts or replaces a scenario by name.
func (s *Store) Save(sc Scenario) error {
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := s.db.Exec(`INSERT INTO scenarios
		(name, principal, nominal_rate, terms, terms_per_year, installment_fee,
		 start_date, due_day, extra_amount, extra_terms, extra_day,
		 total_cost, total_interest, completed_terms, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
		 principal=excluded.principal, nominal_rate=excluded.nominal_rate,
		 terms=excluded.terms, terms_per_year=excluded.terms_per_year,
		 installment_fee=excluded.installment_fee, start_date=excluded.start_date,
		 due_day=excluded.due_day, extra_amount=excluded.extra_amount,
		 extra_terms=excluded.extra_terms, extra_day=excluded.extra_day,
		 total_cost=excluded.total_cost, total_interest=excluded.total_interest,
		 completed_terms=excluded.completed_terms, updated_at=excluded.updated_at`,
		sc.Name, sc.Loan.Principal, sc.Loan.NominalRate, sc.Loan.Terms,
		sc.Loan.TermsPerYear, sc.Loan.InstallmentFee,
		sc.Loan.StartDate.UTC().Format("2006-01-02"), sc.Loan.DueDay,
		sc.Extra.Amount, sc.Extra.Count, sc.Extra.DayOfMonth,
		sc.TotalCost, sc.TotalInterest, sc.CompletedTerms, now, now,
	)
	if err != nil {
		return fmt.Errorf("saving scenario %q: %w", sc.Name, err)
	}
	return nil
}

// Get loads a scenario by name.
func (s *Store) Get(name string) (Scenario, error) {
	row := s.db.QueryRow(`SELECT `+scenarioCols+` FROM scenarios WHERE name = ?`, name)
	sc, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Scenario{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return sc, err
}

// List returns all scenarios, most recently updated first.
func (s *Store) List() ([]Scenario, error) {
	rows, err := s.db.Query(`SELECT ` + scenarioCols + ` FROM scenarios ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scenarios []Scenario
	for rows.Next() {
		sc, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, rows.Err()
}

// Delete removes a scenario by name.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec("DELETE FROM scenarios WHERE name = ?", name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

// Count returns the number of saved scenarios.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM scenarios").Scan(&count)
	return count, err
}

const scenarioCols = `name, principal, nominal_rate, terms, terms_per_year,
	installment_fee, start_date, due_day, extra_amount, extra_terms, extra_day,
	total_cost, total_interest, completed_terms, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (Scenario, error) {
	var sc Scenario
	var startStr, createdStr, updatedStr string

	err := row.Scan(
		&sc.Name, &sc.Loan.Principal, &sc.Loan.NominalRate, &sc.Loan.Terms,
		&sc.Loan.TermsPerYear, &sc.Loan.InstallmentFee, &startStr, &sc.Loan.DueDay,
		&sc.Extra.Amount, &sc.Extra.Count, &sc.Extra.DayOfMonth,
		&sc.TotalCost, &sc.TotalInterest, &sc.CompletedTerms,
		&createdStr, &updatedStr,
	)
	if err != nil {
		return Scenario{}, err
	}

	sc.Loan.StartDate, err = time.Parse("2006-01-02", startStr)
	if err != nil {
		return Scenario{}, fmt.Errorf("parsing start date %q: %w", startStr, err)
	}
	sc.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	sc.UpdatedAt, _ = time.Parse(time.RFC3339, updatedStr)
	return sc, nil
}
