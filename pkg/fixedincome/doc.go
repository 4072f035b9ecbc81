// Package fixedincome provides closed-form time-value-of-money formulas:
// simple interest, periodic and continuous compounding, annuities,
// perpetuities, and effective annual rate conversion.
//
// Every function is a pure mapping from numeric inputs to a numeric result.
// There is no shared state, so all functions are safe for concurrent use.
//
// Formulas whose denominator can be zero (a zero rate, a zero compounding
// frequency, or a degenerate discount term) return ErrUndefinedResult instead
// of propagating an IEEE-754 infinity. Formulas with no denominator return a
// bare float64. Inputs outside the conventional domain (negative rates,
// fractional frequencies, negative principals) are not validated; the
// arithmetic result, including NaN, is returned as-is.
package fixedincome
