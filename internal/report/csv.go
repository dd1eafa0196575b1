package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/homeval/homeval/internal/cashflow"
	"github.com/homeval/homeval/internal/mortgage"
	"github.com/homeval/homeval/internal/valuation"
)

const (
	factorPlaces = 8
	amountPlaces = 2
)

// PeriodHeader is the first column of every per-period report.
const PeriodHeader = "Period"

// WriteTable writes a cash-flow table with a header row.
func WriteTable(w io.Writer, t cashflow.Table) error {
	places := []int32{factorPlaces, factorPlaces, amountPlaces, amountPlaces, amountPlaces}
	rows := t.Rows()
	return writePeriodRows(w, cashflow.Columns, places, len(rows), func(i int) (int, []float64) {
		return int(rows[i].Period), rows[i].Values()
	})
}

// WriteMortgage writes an amortization schedule with a header row.
func WriteMortgage(w io.Writer, s mortgage.Schedule) error {
	places := []int32{factorPlaces, amountPlaces, amountPlaces, amountPlaces, amountPlaces, amountPlaces}
	rows := s.Rows()
	return writePeriodRows(w, mortgage.Columns, places, len(rows), func(i int) (int, []float64) {
		return int(rows[i].Period), rows[i].Values()
	})
}

func writePeriodRows(w io.Writer, columns []string, places []int32, n int, row func(i int) (int, []float64)) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := append([]string{PeriodHeader}, columns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i := 0; i < n; i++ {
		period, values := row(i)
		rec := make([]string, 0, len(values)+1)
		rec = append(rec, strconv.Itoa(period))
		for j, v := range values {
			rec = append(rec, decimal.NewFromFloat(v).StringFixed(places[j]))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SummaryLine is one labelled amount of a valuation summary.
type SummaryLine struct {
	Label  string
	Amount decimal.Decimal
}

// SummaryLines lists the summary amounts in report order.
func SummaryLines(s valuation.Summary) []SummaryLine {
	return []SummaryLine{
		{"Tax PV", s.TaxPV},
		{"Property PV", s.PropertyPV},
		{"Carry Income PV", s.CarryPV},
		{"Mortgage Payments PV", s.MortgagePaymentsPV},
		{"Mortgage Payments", s.MortgagePayments},
		{"Mortgage Interest", s.MortgageInterest},
		{"Net Present Value", s.NetPresentValue},
		{"Price Per Unit", s.PricePerUnit},
	}
}

// WriteSummary writes the summary as metric,amount rows.
func WriteSummary(w io.Writer, s valuation.Summary) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"metric", "amount"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, line := range SummaryLines(s) {
		if err := cw.Write([]string{line.Label, line.Amount.StringFixed(amountPlaces)}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
