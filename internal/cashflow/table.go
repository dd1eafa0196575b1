package cashflow

import (
	"fmt"

	"github.com/homeval/homeval/internal/schedule"
	"github.com/homeval/homeval/internal/series"
)

// Column names, in output order.
const (
	ColDiscount     = "DF Curve"
	ColProjection   = "Proj Curve"
	ColCashFlow     = "Cashflows"
	ColForward      = "Fwd Cashflows"
	ColPresentValue = "Disc Fwd Cashflows"
)

// Columns lists the table columns in their fixed order.
var Columns = []string{ColDiscount, ColProjection, ColCashFlow, ColForward, ColPresentValue}

// Row is one period of a Table.
type Row struct {
	Period       schedule.Period
	Discount     float64
	Projection   float64
	CashFlow     float64
	Forward      float64
	PresentValue float64
}

// Table is a read-only, row-aligned view of one cash-flow stream.
type Table struct {
	discount     series.Series
	projection   series.Series
	cashFlow     series.Series
	forward      series.Series
	presentValue series.Series
}

// Assemble joins the curves and raw cash flow with the derived forward and
// present-value series. All inputs must share one period key set.
func Assemble(discount, projection, cf series.Series) (Table, error) {
	if err := series.CheckKeys(discount, projection, cf); err != nil {
		return Table{}, fmt.Errorf("assembling cash-flow table: %w", err)
	}
	fwd, err := ProjectForward(cf, projection)
	if err != nil {
		return Table{}, err
	}
	pv, err := DiscountToPresent(fwd, discount)
	if err != nil {
		return Table{}, err
	}
	return Table{
		discount:     discount,
		projection:   projection,
		cashFlow:     cf,
		forward:      fwd,
		presentValue: pv,
	}, nil
}

// Len returns the number of rows.
func (t Table) Len() int { return t.cashFlow.Len() }

// Rows returns one row per period, in period order.
func (t Table) Rows() []Row {
	rows := make([]Row, 0, t.Len())
	for _, p := range t.cashFlow.Periods() {
		rows = append(rows, Row{
			Period:       p,
			Discount:     t.discount.Value(p),
			Projection:   t.projection.Value(p),
			CashFlow:     t.cashFlow.Value(p),
			Forward:      t.forward.Value(p),
			PresentValue: t.presentValue.Value(p),
		})
	}
	return rows
}

// Column returns the named column as a series.
func (t Table) Column(name string) (series.Series, bool) {
	switch name {
	case ColDiscount:
		return t.discount, true
	case ColProjection:
		return t.projection, true
	case ColCashFlow:
		return t.cashFlow, true
	case ColForward:
		return t.forward, true
	case ColPresentValue:
		return t.presentValue, true
	}
	return series.Series{}, false
}

// PresentValue is the discounted, projected series.
func (t Table) PresentValue() series.Series { return t.presentValue }

// TotalPresentValue sums the present-value column.
func (t Table) TotalPresentValue() float64 { return t.presentValue.Sum() }

// Values returns the row's columns in Columns order.
func (r Row) Values() []float64 {
	return []float64{r.Discount, r.Projection, r.CashFlow, r.Forward, r.PresentValue}
}
