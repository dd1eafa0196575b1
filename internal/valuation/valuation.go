package valuation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/homeval/homeval/internal/cashflow"
	"github.com/homeval/homeval/internal/curve"
	"github.com/homeval/homeval/internal/model"
	"github.com/homeval/homeval/internal/mortgage"
	"github.com/homeval/homeval/internal/schedule"
	"github.com/homeval/homeval/internal/series"
)

// Valuation holds the derived tables of one holding. Everything is computed
// once from the parameters in New and never mutated.
type Valuation struct {
	params   model.Parameters
	caps     model.Capabilities
	monthly  schedule.Schedule
	discount series.Series
	tax      cashflow.Table
	property cashflow.Table
	mortgage *mortgage.Schedule
}

// New validates params and builds the tax and property tables, plus the
// mortgage schedule when caps.WithMortgage is set.
func New(params model.Parameters, caps model.Capabilities) (*Valuation, error) {
	if err := params.Validate(caps); err != nil {
		return nil, err
	}
	monthly, err := schedule.Monthly(params.TenorYears)
	if err != nil {
		return nil, err
	}

	v := &Valuation{
		params:   params,
		caps:     caps,
		monthly:  monthly,
		discount: curve.Discount(monthly, params.DiscountRate),
	}

	taxPerEvent := params.TaxRate * params.ListValue * float64(params.TaxPayFrequency) / schedule.MonthsPerYear
	taxFlows, err := cashflow.Periodic(monthly, params.TaxPayFrequency, taxPerEvent)
	if err != nil {
		return nil, fmt.Errorf("tax cash flows: %w", err)
	}
	v.tax, err = cashflow.Assemble(v.discount, curve.Projection(monthly, params.TaxProjectionRate), taxFlows)
	if err != nil {
		return nil, fmt.Errorf("tax table: %w", err)
	}

	v.property, err = cashflow.Assemble(v.discount,
		curve.Projection(monthly, params.PropertyProjectionRate),
		cashflow.Terminal(monthly, params.ListValue))
	if err != nil {
		return nil, fmt.Errorf("property table: %w", err)
	}

	if caps.WithMortgage {
		ms, err := mortgage.Build(v.discount, mortgage.TermsFrom(params))
		if err != nil {
			return nil, err
		}
		v.mortgage = &ms
	}
	return v, nil
}

// Parameters returns the validated inputs of the valuation.
func (v *Valuation) Parameters() model.Parameters { return v.params }

// Capabilities returns the streams the valuation was built with.
func (v *Valuation) Capabilities() model.Capabilities { return v.caps }

// Schedule returns the monthly schedule every stream is laid on.
func (v *Valuation) Schedule() schedule.Schedule { return v.monthly }

// DiscountCurve returns the discount factors shared by all streams.
func (v *Valuation) DiscountCurve() series.Series { return v.discount }

// TaxTable returns the property-tax stream.
func (v *Valuation) TaxTable() cashflow.Table { return v.tax }

// PropertyTable returns the terminal property value stream.
func (v *Valuation) PropertyTable() cashflow.Table { return v.property }

// MortgageSchedule returns the amortization schedule, if the mortgage
// capability is enabled.
func (v *Valuation) MortgageSchedule() (mortgage.Schedule, bool) {
	if v.mortgage == nil {
		return mortgage.Schedule{}, false
	}
	return *v.mortgage, true
}

// CarryIncomeTable projects and discounts the carry income of
// multiplier units paid every CarryPayFrequency months.
func (v *Valuation) CarryIncomeTable(multiplier float64) (cashflow.Table, error) {
	if !v.caps.WithCarryIncome {
		return cashflow.Table{}, fmt.Errorf("%w: carry income is not enabled", model.ErrInvalidParameter)
	}
	perEvent := v.params.CarryIncomePerUnit * multiplier * float64(v.params.CarryPayFrequency)
	flows, err := cashflow.Periodic(v.monthly, v.params.CarryPayFrequency, perEvent)
	if err != nil {
		return cashflow.Table{}, fmt.Errorf("carry cash flows: %w", err)
	}
	tbl, err := cashflow.Assemble(v.discount, curve.Projection(v.monthly, v.params.CarryProjectionRate), flows)
	if err != nil {
		return cashflow.Table{}, fmt.Errorf("carry table: %w", err)
	}
	return tbl, nil
}

// CarryIncome returns the present value of carry income per period.
func (v *Valuation) CarryIncome(multiplier float64) (series.Series, error) {
	tbl, err := v.CarryIncomeTable(multiplier)
	if err != nil {
		return series.Series{}, err
	}
	return tbl.PresentValue(), nil
}

// PricePerUnit returns the list value per square foot.
func (v *Valuation) PricePerUnit() (decimal.Decimal, error) {
	if v.params.SquareFootage == 0 {
		return decimal.Zero, fmt.Errorf("%w: square footage must be non-zero", model.ErrInvalidParameter)
	}
	return decimal.NewFromFloat(v.params.ListValue).Div(decimal.NewFromFloat(v.params.SquareFootage)), nil
}
