// Package series holds the immutable period-keyed value type shared by
// curves, cash flows and table columns.
package series

import (
	"fmt"

	"github.com/homeval/homeval/internal/model"
	"github.com/homeval/homeval/internal/schedule"
)

// Series maps every period of a schedule to a value. The zero entries of
// periods without a cash event are stored explicitly.
type Series struct {
	sched  schedule.Schedule
	values []float64 // values[i] belongs to period i+1
}

// New builds a series in one pass by evaluating fn at every period.
func New(s schedule.Schedule, fn func(p schedule.Period) float64) Series {
	values := make([]float64, s.Len())
	for i := range values {
		values[i] = fn(schedule.Period(i + 1))
	}
	return Series{sched: s, values: values}
}

// Zero returns the all-zero series over s.
func Zero(s schedule.Schedule) Series {
	return Series{sched: s, values: make([]float64, s.Len())}
}

// FromValues copies values into a series over s. The slice must hold
// exactly one value per period.
func FromValues(s schedule.Schedule, values []float64) (Series, error) {
	if len(values) != s.Len() {
		return Series{}, fmt.Errorf("%w: %d values for %d periods", model.ErrScheduleMismatch, len(values), s.Len())
	}
	cp := make([]float64, len(values))
	copy(cp, values)
	return Series{sched: s, values: cp}, nil
}

func (x Series) Schedule() schedule.Schedule { return x.sched }
func (x Series) Len() int                    { return len(x.values) }

// At returns the value at p and whether p belongs to the series.
func (x Series) At(p schedule.Period) (float64, bool) {
	if p < 1 || int(p) > len(x.values) {
		return 0, false
	}
	return x.values[p-1], true
}

// Value returns the value at p, or 0 when p is outside the series.
func (x Series) Value(p schedule.Period) float64 {
	v, _ := x.At(p)
	return v
}

// Values returns a copy of the values in period order.
func (x Series) Values() []float64 {
	cp := make([]float64, len(x.values))
	copy(cp, x.values)
	return cp
}

// Periods returns the keys in period order.
func (x Series) Periods() []schedule.Period {
	return x.sched.Periods()
}

// Sum adds every value of the series.
func (x Series) Sum() float64 {
	var total float64
	for _, v := range x.values {
		total += v
	}
	return total
}

// Map returns a new series with fn applied to each (period, value) pair.
func (x Series) Map(fn func(p schedule.Period, v float64) float64) Series {
	out := make([]float64, len(x.values))
	for i, v := range x.values {
		out[i] = fn(schedule.Period(i+1), v)
	}
	return Series{sched: x.sched, values: out}
}

// SameKeys reports whether x and y are keyed by the same period set.
func (x Series) SameKeys(y Series) bool {
	return len(x.values) == len(y.values)
}

// CheckKeys returns ErrScheduleMismatch unless every series shares the key
// set of the first.
func CheckKeys(all ...Series) error {
	for i := 1; i < len(all); i++ {
		if !all[0].SameKeys(all[i]) {
			return fmt.Errorf("%w: operand %d has %d periods, want %d",
				model.ErrScheduleMismatch, i, all[i].Len(), all[0].Len())
		}
	}
	return nil
}

// Multiply returns the element-wise product of x and y.
func Multiply(x, y Series) (Series, error) {
	if err := CheckKeys(x, y); err != nil {
		return Series{}, err
	}
	out := make([]float64, len(x.values))
	for i := range out {
		out[i] = x.values[i] * y.values[i]
	}
	return Series{sched: x.sched, values: out}, nil
}
