package fixedincome

// SimpleInterestFV returns the future value of a simple interest product:
// the principal p plus all interest earned since the deposit, p*(1 + t*r).
// Growth is linear; interest is never added back to the principal.
//
// r is the interest rate per annum and t the elapsed time in years.
func SimpleInterestFV(p, r, t float64) float64 {
	return p * (1 + t*r)
}

// SimpleInterestPV returns the initial sum whose simple-interest value at
// time t equals v, i.e. v/(1 + t*r). Also called the discounted value. It is
// the exact algebraic inverse of SimpleInterestFV for the same r and t.
//
// The discount term 1 + t*r must be nonzero; otherwise ErrUndefinedResult is
// returned.
func SimpleInterestPV(v, r, t float64) (float64, error) {
	d := 1 + t*r
	if d == 0 {
		return 0, ErrUndefinedResult
	}
	return v / d, nil
}
