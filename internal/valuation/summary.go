package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/homeval/homeval/internal/series"
)

// Summary aggregates the streams of a valuation. Amounts are summed as
// decimals row by row.
type Summary struct {
	TaxPV              decimal.Decimal
	PropertyPV         decimal.Decimal
	CarryPV            decimal.Decimal
	MortgagePaymentsPV decimal.Decimal
	MortgagePayments   decimal.Decimal // undiscounted sum of total payments
	MortgageInterest   decimal.Decimal
	NetPresentValue    decimal.Decimal
	PricePerUnit       decimal.Decimal // zero when square footage is unset
}

// Summary totals every enabled stream. carryMultiplier is ignored unless
// carry income is enabled.
func (v *Valuation) Summary(carryMultiplier float64) (Summary, error) {
	var s Summary
	s.TaxPV = sumSeries(v.tax.PresentValue())
	s.PropertyPV = sumSeries(v.property.PresentValue())

	if v.caps.WithCarryIncome {
		pv, err := v.CarryIncome(carryMultiplier)
		if err != nil {
			return Summary{}, err
		}
		s.CarryPV = sumSeries(pv)
	}

	if ms, ok := v.MortgageSchedule(); ok {
		for _, r := range ms.Rows() {
			total := decimal.NewFromFloat(r.Total)
			s.MortgagePayments = s.MortgagePayments.Add(total)
			s.MortgagePaymentsPV = s.MortgagePaymentsPV.Add(total.Mul(decimal.NewFromFloat(r.Discount)))
			s.MortgageInterest = s.MortgageInterest.Add(decimal.NewFromFloat(r.Interest))
		}
	}

	s.NetPresentValue = s.TaxPV.Add(s.PropertyPV).Add(s.CarryPV).Add(s.MortgagePaymentsPV)

	if v.params.SquareFootage != 0 {
		price, err := v.PricePerUnit()
		if err != nil {
			return Summary{}, err
		}
		s.PricePerUnit = price
	}
	return s, nil
}

func sumSeries(x series.Series) decimal.Decimal {
	total := decimal.Zero
	for _, v := range x.Values() {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total
}
