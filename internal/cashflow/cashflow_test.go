package cashflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeval/homeval/internal/curve"
	"github.com/homeval/homeval/internal/model"
	"github.com/homeval/homeval/internal/schedule"
	"github.com/homeval/homeval/internal/series"
)

const eps = 1e-9

func monthly(t *testing.T, tenor int) schedule.Schedule {
	t.Helper()
	s, err := schedule.Monthly(tenor)
	require.NoError(t, err)
	return s
}

func TestPeriodic_Placement(t *testing.T) {
	s := monthly(t, 10)
	for _, freq := range []int{1, 3, 6, 12, 7} {
		cf, err := Periodic(s, freq, 100)
		require.NoError(t, err)
		require.Equal(t, s.Len(), cf.Len())
		for _, p := range s.Periods() {
			if int(p)%freq == 0 {
				assert.Equal(t, 100.0, cf.Value(p), "freq %d period %d", freq, p)
			} else {
				assert.Zero(t, cf.Value(p), "freq %d period %d", freq, p)
			}
		}
	}
}

func TestPeriodic_NoProration(t *testing.T) {
	// 7 does not divide 12: payments at 7 only, nothing at the last period.
	cf, err := Periodic(monthly(t, 1), 7, 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, cf.Sum())
	assert.Zero(t, cf.Value(12))
}

func TestPeriodic_InvalidFrequency(t *testing.T) {
	_, err := Periodic(monthly(t, 1), 0, 10)
	assert.ErrorIs(t, err, model.ErrInvalidParameter)
}

func TestTaxScenario(t *testing.T) {
	const (
		taxRate   = -0.05
		listValue = 100000.0
	)
	s := monthly(t, 10)

	// Monthly cadence: 1/12 of the annual tax every month.
	cf, err := Periodic(s, 1, taxRate*listValue*1/12)
	require.NoError(t, err)
	assert.InDelta(t, -416.6666666, cf.Value(12), 1e-6)
	assert.InDelta(t, -416.6666666, cf.Value(1), 1e-6)

	// Annual cadence: the full year's tax on multiples of 12 only.
	cf, err = Periodic(s, 12, taxRate*listValue*12/12)
	require.NoError(t, err)
	for _, p := range s.Periods() {
		if p%12 == 0 {
			assert.InDelta(t, -5000.0, cf.Value(p), eps)
		} else {
			assert.Zero(t, cf.Value(p))
		}
	}
}

func TestTerminal(t *testing.T) {
	cf := Terminal(monthly(t, 2), 250000)
	assert.Equal(t, 250000.0, cf.Value(24))
	assert.Equal(t, 250000.0, cf.Sum())
}

func TestProjectThenDiscount_Identity(t *testing.T) {
	s := monthly(t, 10)
	cf, err := Periodic(s, 3, -1234.5)
	require.NoError(t, err)

	for _, r := range []float64{0.016, 0.07, -0.02} {
		fwd, err := ProjectForward(cf, curve.Projection(s, r))
		require.NoError(t, err)
		pv, err := DiscountToPresent(fwd, curve.Discount(s, r))
		require.NoError(t, err)
		for _, p := range s.Periods() {
			assert.InDelta(t, cf.Value(p), pv.Value(p), 1e-6, "rate %v period %d", r, p)
		}
	}
}

func TestOperators_Mismatch(t *testing.T) {
	cf := series.Zero(monthly(t, 10))
	short := curve.Discount(monthly(t, 5), 0.01)

	_, err := ProjectForward(cf, short)
	assert.ErrorIs(t, err, model.ErrScheduleMismatch)
	_, err = DiscountToPresent(cf, short)
	assert.ErrorIs(t, err, model.ErrScheduleMismatch)
}

func TestAssemble(t *testing.T) {
	s := monthly(t, 10)
	disc := curve.Discount(s, 0.016)
	proj := curve.Projection(s, 0.025)
	cf, err := Periodic(s, 1, -416.6666666666667)
	require.NoError(t, err)

	tbl, err := Assemble(disc, proj, cf)
	require.NoError(t, err)
	require.Equal(t, 120, tbl.Len())

	rows := tbl.Rows()
	require.Len(t, rows, 120)
	for _, r := range rows {
		assert.Equal(t, disc.Value(r.Period), r.Discount)
		assert.Equal(t, proj.Value(r.Period), r.Projection)
		assert.Equal(t, cf.Value(r.Period), r.CashFlow)
		assert.InDelta(t, r.CashFlow*r.Projection, r.Forward, eps)
		assert.InDelta(t, r.Forward*r.Discount, r.PresentValue, eps)
	}
	assert.Len(t, rows[0].Values(), len(Columns))

	pv, ok := tbl.Column(ColPresentValue)
	require.True(t, ok)
	assert.InDelta(t, pv.Sum(), tbl.TotalPresentValue(), eps)
	_, ok = tbl.Column("nope")
	assert.False(t, ok)
}

func TestAssemble_Mismatch(t *testing.T) {
	long := monthly(t, 10)
	short := monthly(t, 5)
	_, err := Assemble(curve.Discount(long, 0.01), curve.Projection(short, 0.01), series.Zero(long))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrScheduleMismatch)
}
