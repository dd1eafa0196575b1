// Package mortgage builds the straight-line amortization schedule of the
// holding's loan.
//
// The level principal payment is
//
//	-(downPercent * listValue) / (12 * downPayFrequency * tenorYears)
//
// placed on every installment period. Row p reports the balance after the
// period-p payment, so the period-1 row already shows one reduction. This
// mirrors the source model and is kept as-is.
package mortgage

import (
	"fmt"

	"github.com/homeval/homeval/internal/cashflow"
	"github.com/homeval/homeval/internal/model"
	"github.com/homeval/homeval/internal/schedule"
	"github.com/homeval/homeval/internal/series"
)

// Column names, in output order.
const (
	ColDiscount    = "DF Curve"
	ColPayment     = "Mortgage Payments"
	ColAccumulated = "Accumulated Payments"
	ColRemaining   = "Remaining Loan"
	ColInterest    = "Interest Payments"
	ColTotal       = "Total Payments"
)

// Columns lists the schedule columns in their fixed order.
var Columns = []string{ColDiscount, ColPayment, ColAccumulated, ColRemaining, ColInterest, ColTotal}

// Terms are the loan inputs taken from the valuation parameters.
type Terms struct {
	ListValue        float64
	DownPercent      float64
	InterestRate     float64 // annual, sign kept as configured
	TenorYears       int
	DownPayFrequency int // months between installments
}

// TermsFrom extracts the loan terms from p.
func TermsFrom(p model.Parameters) Terms {
	return Terms{
		ListValue:        p.ListValue,
		DownPercent:      p.DownPercent,
		InterestRate:     p.InterestRate,
		TenorYears:       p.TenorYears,
		DownPayFrequency: p.DownPayFrequency,
	}
}

// LoanAmount is the principal outstanding before the first installment.
func (t Terms) LoanAmount() float64 {
	return t.ListValue * t.DownPercent
}

// LevelPayment is the fixed principal repaid on each installment period.
func (t Terms) LevelPayment() (float64, error) {
	if t.TenorYears <= 0 {
		return 0, fmt.Errorf("%w: tenor %d must be positive", model.ErrInvalidParameter, t.TenorYears)
	}
	if t.DownPayFrequency <= 0 {
		return 0, fmt.Errorf("%w: down payment frequency %d must be positive", model.ErrInvalidParameter, t.DownPayFrequency)
	}
	n := float64(schedule.MonthsPerYear * t.DownPayFrequency * t.TenorYears)
	return -t.LoanAmount() / n, nil
}

// Row is one period of the amortization schedule.
type Row struct {
	Period      schedule.Period
	Discount    float64
	Payment     float64
	Accumulated float64
	Remaining   float64
	Interest    float64
	Total       float64
}

// Values returns the row's columns in Columns order.
func (r Row) Values() []float64 {
	return []float64{r.Discount, r.Payment, r.Accumulated, r.Remaining, r.Interest, r.Total}
}

// Schedule is the read-only amortization table.
type Schedule struct {
	terms      Terms
	loanAmount float64
	rows       []Row
}

// Build computes the amortization schedule against a discount curve keyed
// by the monthly schedule of the tenor.
func Build(discount series.Series, terms Terms) (Schedule, error) {
	level, err := terms.LevelPayment()
	if err != nil {
		return Schedule{}, fmt.Errorf("building mortgage schedule: %w", err)
	}
	payments, err := cashflow.Periodic(discount.Schedule(), terms.DownPayFrequency, level)
	if err != nil {
		return Schedule{}, fmt.Errorf("building mortgage schedule: %w", err)
	}
	if err := series.CheckKeys(discount, payments); err != nil {
		return Schedule{}, fmt.Errorf("building mortgage schedule: %w", err)
	}

	loan := terms.LoanAmount()
	monthlyRate := terms.InterestRate / schedule.MonthsPerYear

	rows := make([]Row, 0, payments.Len())
	for _, p := range payments.Periods() {
		pay := payments.Value(p)
		accumulated := float64(p) * pay
		remaining := loan + accumulated
		interest := remaining * monthlyRate
		rows = append(rows, Row{
			Period:      p,
			Discount:    discount.Value(p),
			Payment:     pay,
			Accumulated: accumulated,
			Remaining:   remaining,
			Interest:    interest,
			Total:       interest + pay,
		})
	}
	return Schedule{terms: terms, loanAmount: loan, rows: rows}, nil
}

// LoanAmount returns the balance at period 0.
func (s Schedule) LoanAmount() float64 { return s.loanAmount }

// Terms returns the loan inputs the schedule was built from.
func (s Schedule) Terms() Terms { return s.terms }

// Len returns the number of rows.
func (s Schedule) Len() int { return len(s.rows) }

// Rows returns a copy of the rows in period order.
func (s Schedule) Rows() []Row {
	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// Final returns the last row.
func (s Schedule) Final() Row {
	if len(s.rows) == 0 {
		return Row{}
	}
	return s.rows[len(s.rows)-1]
}

// TotalPayments sums the total payment column, undiscounted.
func (s Schedule) TotalPayments() float64 {
	var sum float64
	for _, r := range s.rows {
		sum += r.Total
	}
	return sum
}

// PresentValue sums the total payment column weighted by the discount factor.
func (s Schedule) PresentValue() float64 {
	var sum float64
	for _, r := range s.rows {
		sum += r.Total * r.Discount
	}
	return sum
}

// TotalInterest sums the interest column.
func (s Schedule) TotalInterest() float64 {
	var sum float64
	for _, r := range s.rows {
		sum += r.Interest
	}
	return sum
}
