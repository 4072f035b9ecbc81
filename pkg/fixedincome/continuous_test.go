package fixedincome

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContinuousCompoundingFV(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     float64
		expected  float64
	}{
		{
			name:      "e-fold at 100 percent over 1 year",
			principal: 1000,
			rate:      1,
			years:     1,
			expected:  1000 * math.E,
		},
		{
			name:      "5 percent over 2 years",
			principal: 1000,
			rate:      0.05,
			years:     2,
			expected:  1000 * math.Exp(0.1),
		},
		{
			name:      "zero time leaves principal unchanged",
			principal: 750,
			rate:      0.10,
			years:     0,
			expected:  750,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv := ContinuousCompoundingFV(tt.principal, tt.rate, tt.years)
			assert.InDelta(t, tt.expected, fv, 1e-9)
		})
	}
}

func TestContinuousCompoundingRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     float64
	}{
		{"typical", 1000, 0.05, 2},
		{"negative rate", 1000, -0.03, 4},
		{"long horizon", 1, 0.08, 50},
		{"fractional time", 9999.99, 0.021, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv := ContinuousCompoundingFV(tt.principal, tt.rate, tt.years)
			pv := ContinuousCompoundingPV(fv, tt.rate, tt.years)
			assert.InDelta(t, tt.principal, pv, 1e-9)
		})
	}
}

func TestContinuousCompoundingMonotoneInTime(t *testing.T) {
	prevFV := ContinuousCompoundingFV(1000, 0.05, 0)
	prevPV := ContinuousCompoundingPV(1000, 0.05, 0)
	for _, years := range []float64{0.5, 1, 2, 5, 10} {
		fv := ContinuousCompoundingFV(1000, 0.05, years)
		pv := ContinuousCompoundingPV(1000, 0.05, years)
		assert.Greater(t, fv, prevFV, "future value must grow with time")
		assert.Less(t, pv, prevPV, "present value must shrink with time")
		prevFV, prevPV = fv, pv
	}
}

func TestContinuousApproximatesHighFrequencyPeriodic(t *testing.T) {
	periodic, err := CompoundInterestFV(1000, 0.06, 3, 1e6)
	assert.NoError(t, err)
	continuous := ContinuousCompoundingFV(1000, 0.06, 3)
	assert.InDelta(t, continuous, periodic, 0.01)
}
