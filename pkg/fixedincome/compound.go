package fixedincome

import "math"

// CompoundInterestFV returns the future value of a deposit under periodic
// compounding, p*(1 + r/m)^(t*m): interest earned is added to the principal
// m times per annum, for example annually, quarterly, monthly or daily.
//
// p is the principal, r the nominal rate per annum, t the elapsed time in
// years and m the compounding frequency. m must be nonzero.
func CompoundInterestFV(p, r, t, m float64) (float64, error) {
	if m == 0 {
		return 0, ErrUndefinedResult
	}
	return p * math.Pow(1+r/m, t*m), nil
}

// CompoundInterestPV returns the initial sum whose periodically compounded
// value at time t equals v, i.e. v/(1 + r/m)^(t*m). It is the exact inverse
// of CompoundInterestFV for the same r, t and m.
//
// m must be nonzero and the growth base 1 + r/m must be nonzero; otherwise
// ErrUndefinedResult is returned. A negative base raised to a fractional
// exponent yields NaN, which is returned undisturbed.
func CompoundInterestPV(v, r, t, m float64) (float64, error) {
	if m == 0 {
		return 0, ErrUndefinedResult
	}
	base := 1 + r/m
	if base == 0 {
		return 0, ErrUndefinedResult
	}
	return v / math.Pow(base, t*m), nil
}
