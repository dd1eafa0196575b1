package curve

import (
	"math"

	"github.com/homeval/homeval/internal/schedule"
	"github.com/homeval/homeval/internal/series"
)

// monthlyGrowth converts an annual nominal rate to a one-month growth factor.
func monthlyGrowth(annualRate float64) float64 {
	return 1 + annualRate/schedule.MonthsPerYear
}

// Discount returns the discount factors (1 + r/12)^-p over s.
func Discount(s schedule.Schedule, annualRate float64) series.Series {
	g := monthlyGrowth(annualRate)
	return series.New(s, func(p schedule.Period) float64 {
		return math.Pow(g, -float64(p))
	})
}

// Projection returns the growth factors (1 + r/12)^p over s.
func Projection(s schedule.Schedule, annualRate float64) series.Series {
	g := monthlyGrowth(annualRate)
	return series.New(s, func(p schedule.Period) float64 {
		return math.Pow(g, float64(p))
	})
}
