package cashflow

import (
	"fmt"

	"github.com/homeval/homeval/internal/model"
	"github.com/homeval/homeval/internal/schedule"
	"github.com/homeval/homeval/internal/series"
)

// Periodic places amountPerEvent on every period of s divisible by
// frequency (in months) and zero elsewhere. A trailing partial interval is
// not prorated.
func Periodic(s schedule.Schedule, frequency int, amountPerEvent float64) (series.Series, error) {
	if frequency <= 0 {
		return series.Series{}, fmt.Errorf("%w: payment frequency %d must be positive", model.ErrInvalidParameter, frequency)
	}
	return series.New(s, func(p schedule.Period) float64 {
		if int(p)%frequency == 0 {
			return amountPerEvent
		}
		return 0
	}), nil
}

// Terminal places amount on the final period of s only.
func Terminal(s schedule.Schedule, amount float64) series.Series {
	last := s.Last()
	return series.New(s, func(p schedule.Period) float64 {
		if p == last {
			return amount
		}
		return 0
	})
}

// ProjectForward grows nominal cash flows along a projection curve.
func ProjectForward(cf, projection series.Series) (series.Series, error) {
	out, err := series.Multiply(cf, projection)
	if err != nil {
		return series.Series{}, fmt.Errorf("projecting cash flows: %w", err)
	}
	return out, nil
}

// DiscountToPresent converts cash flows to present value along a discount curve.
func DiscountToPresent(cf, discount series.Series) (series.Series, error) {
	out, err := series.Multiply(cf, discount)
	if err != nil {
		return series.Series{}, fmt.Errorf("discounting cash flows: %w", err)
	}
	return out, nil
}
