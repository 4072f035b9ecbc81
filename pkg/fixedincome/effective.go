package fixedincome

import "math"

// Compounding selects the accrual model used by EffectiveRate.
type Compounding string

const (
	// Continuous compounding: interest accrues at every instant.
	Continuous Compounding = "continuous"
	// Periodic compounding: interest is added m times per annum.
	Periodic Compounding = "periodic"
)

// EffectiveRate returns the effective annual rate for a nominal rate r: the
// rate that gives the same one-year growth factor under annual compounding.
//
//   - Continuous: e^r - 1. The frequency m is ignored.
//   - Periodic: (1 + r/m)^m - 1, with m compounding periods per annum.
//     m must be nonzero or ErrUndefinedResult is returned.
//
// The zero value of Compounding selects Continuous. Any other method returns
// ErrInvalidCompounding.
func EffectiveRate(r, m float64, method Compounding) (float64, error) {
	switch method {
	case Continuous, "":
		return math.Exp(r) - 1, nil
	case Periodic:
		if m == 0 {
			return 0, ErrUndefinedResult
		}
		return math.Pow(1+r/m, m) - 1, nil
	default:
		return 0, ErrInvalidCompounding
	}
}
