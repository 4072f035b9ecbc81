package fixedincome

// PerpetuityPV returns the present value of a perpetuity: a sequence of
// payments of a fixed amount c made at equal time intervals and continuing
// indefinitely, discounted at rate r per interval. The value is c/r.
//
// A zero rate makes the value infinite; ErrUndefinedResult is returned.
func PerpetuityPV(c, r float64) (float64, error) {
	if r == 0 {
		return 0, ErrUndefinedResult
	}
	return c / r, nil
}
