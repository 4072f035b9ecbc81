package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	m := New(12.345)
	assert.Equal(t, "12.35", m.String(), "String rounds for display")

	d := decimal.NewFromFloat(10.125)
	assert.True(t, FromDecimal(d).Decimal.Equal(d))

	m2, err := FromString("123.45")
	require.NoError(t, err)
	assert.Equal(t, "123.45", m2.String())

	_, err = FromString("not-a-number")
	assert.Error(t, err)
}

func TestRound(t *testing.T) {
	// banker's rounding at the cent
	tests := []struct {
		in  string
		out string
	}{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
		{"2.365", "2.37"},
	}

	for _, tt := range tests {
		m, err := FromString(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.out, m.Round().String(), "round(%s)", tt.in)
	}
}

func TestArithmeticAndComparison(t *testing.T) {
	a := New(100)
	b := New(40)

	assert.Equal(t, "140.00", a.Add(b).String())
	assert.Equal(t, "60.00", a.Sub(b).String())
	assert.Equal(t, "50.00", a.Mul(decimal.NewFromFloat(0.5)).String())
	assert.Equal(t, "25.00", a.Div(decimal.NewFromInt(4)).String())

	assert.True(t, a.GreaterThan(b))
	assert.True(t, b.LessThan(a))
	assert.True(t, a.Equal(New(100)))
	assert.True(t, Zero().IsZero())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$1234.50", New(1234.5).Format())
}
