package fixedincome

import "math"

// ContinuousCompoundingFV returns the future value of a deposit under
// continuous compounding, p*e^(t*r): the limit of periodic compounding as
// the frequency grows without bound. It is a good approximation of periodic
// compounding at high frequency and is simpler to transform algebraically.
func ContinuousCompoundingFV(p, r, t float64) float64 {
	return p * math.Exp(t*r)
}

// ContinuousCompoundingPV returns the initial sum whose continuously
// compounded value at time t equals v, i.e. v*e^(-t*r). It is the exact
// inverse of ContinuousCompoundingFV for the same r and t.
func ContinuousCompoundingPV(v, r, t float64) float64 {
	return v * math.Exp(-t*r)
}
