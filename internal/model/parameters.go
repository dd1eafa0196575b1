package model

import "fmt"

// Capabilities selects which optional streams a valuation wires up.
type Capabilities struct {
	WithMortgage    bool
	WithCarryIncome bool
}

// Parameters is the immutable input record of a valuation.
// Rates are annual nominal rates; negative values model outflows and are
// kept exactly as configured.
type Parameters struct {
	ListValue              float64
	InterestRate           float64 // mortgage rate
	DiscountRate           float64
	TaxRate                float64
	TaxPayFrequency        int // months between tax payments
	TaxProjectionRate      float64
	CarryProjectionRate    float64
	PropertyProjectionRate float64
	TenorYears             int
	DownPercent            float64
	DownPayFrequency       int // months between mortgage installments
	SquareFootage          float64
	CarryIncomePerUnit     float64 // monthly carry per unit of the caller's multiplier
	CarryPayFrequency      int
}

// LoanAmount returns the mortgage principal at origination.
func (p Parameters) LoanAmount() float64 {
	return p.ListValue * p.DownPercent
}

// Validate checks the preconditions shared by every stream.
func (p Parameters) Validate(caps Capabilities) error {
	if p.TenorYears <= 0 {
		return fmt.Errorf("%w: tenor %d must be positive", ErrInvalidParameter, p.TenorYears)
	}
	if p.TaxPayFrequency <= 0 {
		return fmt.Errorf("%w: tax payment frequency %d must be positive", ErrInvalidParameter, p.TaxPayFrequency)
	}
	if caps.WithMortgage && p.DownPayFrequency <= 0 {
		return fmt.Errorf("%w: down payment frequency %d must be positive", ErrInvalidParameter, p.DownPayFrequency)
	}
	if caps.WithCarryIncome && p.CarryPayFrequency <= 0 {
		return fmt.Errorf("%w: carry payment frequency %d must be positive", ErrInvalidParameter, p.CarryPayFrequency)
	}
	return nil
}
