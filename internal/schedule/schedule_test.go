package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeval/homeval/internal/model"
)

func TestNew_Periods(t *testing.T) {
	tests := []struct {
		frequency, tenor int
	}{
		{12, 10},
		{1, 10},
		{4, 3},
		{12, 1},
		{2, 30},
	}
	for _, tt := range tests {
		s, err := New(tt.frequency, tt.tenor)
		require.NoError(t, err)

		periods := s.Periods()
		require.Len(t, periods, tt.frequency*tt.tenor, "New(%d, %d)", tt.frequency, tt.tenor)
		assert.Equal(t, Period(1), periods[0])
		for i := 1; i < len(periods); i++ {
			assert.Equal(t, periods[i-1]+1, periods[i], "periods must increase by 1")
		}
		assert.Equal(t, periods[len(periods)-1], s.Last())
	}
}

func TestNew_InvalidParameter(t *testing.T) {
	tests := []struct {
		name             string
		frequency, tenor int
	}{
		{"zero frequency", 0, 10},
		{"negative frequency", -12, 10},
		{"zero tenor", 12, 0},
		{"negative tenor", 12, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.frequency, tt.tenor)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidParameter)
		})
	}
}

func TestMonthly(t *testing.T) {
	s, err := Monthly(10)
	require.NoError(t, err)
	assert.Equal(t, 120, s.Len())
	assert.Equal(t, MonthsPerYear, s.Frequency())
	assert.Equal(t, 10, s.TenorYears())
}

func TestContains(t *testing.T) {
	s, err := New(12, 1)
	require.NoError(t, err)
	assert.False(t, s.Contains(0))
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(12))
	assert.False(t, s.Contains(13))
}

func TestSameKeys(t *testing.T) {
	monthly, err := New(12, 10)
	require.NoError(t, err)
	flat, err := New(1, 120)
	require.NoError(t, err)
	short, err := New(12, 5)
	require.NoError(t, err)

	assert.True(t, monthly.SameKeys(flat))
	assert.False(t, monthly.SameKeys(short))
	assert.True(t, Schedule{}.IsZero())
	assert.False(t, monthly.IsZero())
}
