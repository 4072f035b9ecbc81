package fixedincome

import "errors"

var (
	// ErrUndefinedResult is returned when a formula's denominator is zero and
	// the result is mathematically undefined: a perpetuity or annuity at a
	// zero rate, periodic compounding at a zero frequency, or a simple
	// interest discount term of zero. Callers match it with errors.Is.
	ErrUndefinedResult = errors.New("fixedincome: result is undefined for the given inputs")

	// ErrInvalidCompounding is returned by EffectiveRate when the method is
	// neither Continuous nor Periodic.
	ErrInvalidCompounding = errors.New("fixedincome: invalid compounding method")
)
