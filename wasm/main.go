//go:build js && wasm

// Command amort-wasm exposes the amortization engine to JavaScript.
// It registers a global amortCompute(json) -> json function.
package main

import (
	"encoding/json"
	"syscall/js"
	"time"

	"github.com/theirongolddev/amort/internal/loan"
	"github.com/theirongolddev/amort/internal/report"
)

type request struct {
	Principal      float64 `json:"principal"`
	InterestRate   float64 `json:"interest_rate"`
	Terms          int     `json:"terms"`
	TermsPerYear   int     `json:"terms_per_year"`
	InstallmentFee float64 `json:"installment_fee"`
	StartDate      string  `json:"start_date"` // YYYY-MM-DD, default today
	DueDay         int     `json:"due_day"`

	Extras []extra `json:"extras,omitempty"`
}

type extra struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type payment struct {
	Term      int     `json:"term"`
	DueDate   string  `json:"due_date"`
	Amount    float64 `json:"amount"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Extra     float64 `json:"extra,omitempty"`
	Fee       float64 `json:"fee,omitempty"`
	Balance   float64 `json:"balance"`
}

type response struct {
	Payment        float64   `json:"payment"`
	EffectiveRate  float64   `json:"effective_rate"`
	TotalCost      float64   `json:"total_cost"`
	TotalInterest  float64   `json:"total_interest"`
	TotalFees      float64   `json:"total_fees"`
	CompletedTerms int       `json:"completed_terms"`
	PlannedTerms   int       `json:"planned_terms"`
	PayoffDate     string    `json:"payoff_date"`
	Schedule       []payment `json:"schedule"`

	Years []report.YearlyStats `json:"years,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func compute(_ js.Value, args []js.Value) any {
	if len(args) != 1 {
		return errJSON("amortCompute expects one JSON string argument")
	}

	var req request
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return errJSON("parsing request: " + err.Error())
	}

	l := loan.Loan{
		Principal:      req.Principal,
		NominalRate:    req.InterestRate,
		Terms:          req.Terms,
		TermsPerYear:   req.TermsPerYear,
		InstallmentFee: req.InstallmentFee,
		DueDay:         req.DueDay,
	}
	if l.TermsPerYear == 0 {
		l.TermsPerYear = 12
	}
	if l.DueDay == 0 {
		l.DueDay = 20
	}
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return errJSON("parsing start_date: " + err.Error())
		}
		l.StartDate = start
	} else {
		y, m, d := time.Now().Date()
		l.StartDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	extras := make([]loan.ExtraPayment, 0, len(req.Extras))
	for _, e := range req.Extras {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			return errJSON("parsing extra date: " + err.Error())
		}
		extras = append(extras, loan.ExtraPayment{Date: d, Amount: e.Amount})
	}

	s, err := loan.Compute(l, extras)
	if err != nil {
		return errJSON(err.Error())
	}

	resp := response{
		Payment:        s.Payment,
		EffectiveRate:  s.Totals.EffectiveRate,
		TotalCost:      s.Totals.TotalCost,
		TotalInterest:  s.Totals.TotalInterest,
		TotalFees:      s.Totals.TotalFees,
		CompletedTerms: s.Totals.CompletedTerms,
		PlannedTerms:   s.Totals.PlannedTerms,
		PayoffDate:     s.Totals.PayoffDate.Format("2006-01-02"),
		Schedule:       make([]payment, 0, len(s.Payments)),
		Years:          report.AggregateYears(s),
	}
	for _, p := range s.Payments {
		resp.Schedule = append(resp.Schedule, payment{
			Term:      p.Index,
			DueDate:   p.DueDate.Format("2006-01-02"),
			Amount:    p.Amount,
			Interest:  p.Interest,
			Principal: p.Principal,
			Extra:     p.Extra,
			Fee:       p.Fee,
			Balance:   p.Balance,
		})
	}

	out, err := json.Marshal(resp)
	if err != nil {
		return errJSON(err.Error())
	}
	return string(out)
}

func errJSON(msg string) string {
	out, _ := json.Marshal(errorResponse{Error: msg})
	return string(out)
}

func main() {
	js.Global().Set("amortCompute", js.FuncOf(compute))

	// Keep the Go runtime alive for callbacks.
	select {}
}
