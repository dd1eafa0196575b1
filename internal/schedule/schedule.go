package schedule

import (
	"fmt"

	"github.com/homeval/homeval/internal/model"
)

// MonthsPerYear is the frequency of the default monthly schedule.
const MonthsPerYear = 12

// Period is a 1-based month index within a valuation tenor.
type Period int

// Schedule is the ordered period set 1..TenorYears*Frequency.
type Schedule struct {
	frequency  int
	tenorYears int
}

// New returns the schedule for the given frequency and tenor.
// It does not check that frequency divides a 12-month year.
func New(frequency, tenorYears int) (Schedule, error) {
	if frequency <= 0 {
		return Schedule{}, fmt.Errorf("%w: frequency %d must be positive", model.ErrInvalidParameter, frequency)
	}
	if tenorYears <= 0 {
		return Schedule{}, fmt.Errorf("%w: tenor %d must be positive", model.ErrInvalidParameter, tenorYears)
	}
	return Schedule{frequency: frequency, tenorYears: tenorYears}, nil
}

// Monthly returns the default frequency-12 schedule over tenorYears.
func Monthly(tenorYears int) (Schedule, error) {
	return New(MonthsPerYear, tenorYears)
}

// Frequency returns the number of periods generated per year.
func (s Schedule) Frequency() int { return s.frequency }

// TenorYears returns the length of the schedule in years.
func (s Schedule) TenorYears() int { return s.tenorYears }

// Len returns the number of periods.
func (s Schedule) Len() int {
	return s.frequency * s.tenorYears
}

// First returns the first period, always 1 for a non-empty schedule.
func (s Schedule) First() Period {
	return 1
}

// Last returns the final period of the tenor.
func (s Schedule) Last() Period {
	return Period(s.Len())
}

// Contains reports whether p is one of the schedule's periods.
func (s Schedule) Contains(p Period) bool {
	return p >= s.First() && p <= s.Last()
}

// Periods returns the periods in increasing order.
func (s Schedule) Periods() []Period {
	out := make([]Period, s.Len())
	for i := range out {
		out[i] = Period(i + 1)
	}
	return out
}

// SameKeys reports whether both schedules cover the same period set.
// (12, 10) and (1, 120) share keys even though their frequencies differ.
func (s Schedule) SameKeys(o Schedule) bool {
	return s.Len() == o.Len()
}

// IsZero reports whether s is the zero value rather than a generated schedule.
func (s Schedule) IsZero() bool {
	return s.frequency == 0
}
