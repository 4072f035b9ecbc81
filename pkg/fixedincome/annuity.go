package fixedincome

import "math"

// annuityPVFactor returns the present-value factor for an annuity of n equal
// payments discounted at rate r per payment interval:
//
//	(1 - (1+r)^(-n)) / r
//
// equivalent to summing 1/(1+r) + 1/(1+r)^2 + ... + 1/(1+r)^n. The rate must
// be nonzero. n = 0 yields a factor of 0.
func annuityPVFactor(r float64, n int) (float64, error) {
	if r == 0 {
		return 0, ErrUndefinedResult
	}
	return (1 - 1/math.Pow(1+r, float64(n))) / r, nil
}

// AnnuityPV returns the present value of an annuity: n future payments of a
// fixed amount c due at equal time intervals, discounted at rate r per
// interval assuming the interval matches the compounding period.
//
// The rate must be nonzero; otherwise ErrUndefinedResult is returned.
func AnnuityPV(c, r float64, n int) (float64, error) {
	factor, err := annuityPVFactor(r, n)
	if err != nil {
		return 0, err
	}
	return c * factor, nil
}

// AnnuityPayment returns the fixed payment amount whose n-payment annuity at
// rate r has present value p. It is the algebraic inverse of AnnuityPV for
// the same r and n.
//
// The rate must be nonzero and n must be at least 1 (at n = 0 the annuity
// factor is 0 and no payment is defined); otherwise ErrUndefinedResult is
// returned.
func AnnuityPayment(p, r float64, n int) (float64, error) {
	factor, err := annuityPVFactor(r, n)
	if err != nil {
		return 0, err
	}
	if factor == 0 {
		return 0, ErrUndefinedResult
	}
	return p / factor, nil
}
