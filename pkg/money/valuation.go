package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrUndefinedResult is returned when a valuation's denominator is zero: a
// zero rate for a perpetuity or annuity, a zero frequency for the periodic
// effective rate, or a degenerate discount term. Matched with errors.Is.
var ErrUndefinedResult = errors.New("money: result is undefined for the given inputs")

var one = decimal.NewFromInt(1)

// powInt raises base to an integer power exactly. decimal.Pow is only exact
// for integer exponents, which is the reason this package restricts itself
// to whole-period formulas.
func powInt(base decimal.Decimal, n int64) decimal.Decimal {
	if n < 0 {
		return one.Div(base.Pow(decimal.NewFromInt(-n)))
	}
	return base.Pow(decimal.NewFromInt(n))
}

// SimpleInterestFV returns p*(1 + t*r), the simple-interest future value of
// principal p after t years at rate r per annum.
func SimpleInterestFV(p Money, r, t decimal.Decimal) Money {
	return p.Mul(one.Add(t.Mul(r)))
}

// SimpleInterestPV returns v/(1 + t*r), the initial sum whose
// simple-interest value at time t equals v. The discount term 1 + t*r must
// be nonzero.
func SimpleInterestPV(v Money, r, t decimal.Decimal) (Money, error) {
	d := one.Add(t.Mul(r))
	if d.IsZero() {
		return Money{}, ErrUndefinedResult
	}
	return v.Div(d), nil
}

// PerpetuityPV returns c/r, the present value of an unending stream of
// payments c discounted at rate r per interval. The rate must be nonzero.
func PerpetuityPV(c Money, r decimal.Decimal) (Money, error) {
	if r.IsZero() {
		return Money{}, ErrUndefinedResult
	}
	return c.Div(r), nil
}

// CompoundInterestFV returns p*(1+i)^n for a whole number of compounding
// periods n at period rate i. The result is exact: no division occurs.
func CompoundInterestFV(p Money, periodRate decimal.Decimal, periods int64) Money {
	return p.Mul(powInt(one.Add(periodRate), periods))
}

// CompoundInterestPV returns v/(1+i)^n, the inverse of CompoundInterestFV
// for the same period rate and count. The growth base 1+i must be nonzero.
func CompoundInterestPV(v Money, periodRate decimal.Decimal, periods int64) (Money, error) {
	base := one.Add(periodRate)
	if base.IsZero() {
		return Money{}, ErrUndefinedResult
	}
	return v.Div(powInt(base, periods)), nil
}

// annuityPVFactor returns (1 - (1+r)^(-n))/r for n equal payments discounted
// at rate r per payment interval. The rate must be nonzero.
func annuityPVFactor(r decimal.Decimal, n int64) (decimal.Decimal, error) {
	if r.IsZero() {
		return decimal.Zero, ErrUndefinedResult
	}
	return one.Sub(powInt(one.Add(r), -n)).Div(r), nil
}

// AnnuityPV returns the present value of n future payments of c discounted
// at rate r per payment interval. The rate must be nonzero.
func AnnuityPV(c Money, r decimal.Decimal, n int64) (Money, error) {
	factor, err := annuityPVFactor(r, n)
	if err != nil {
		return Money{}, err
	}
	return c.Mul(factor), nil
}

// AnnuityPayment returns the fixed payment whose n-payment annuity at rate r
// has present value p. The rate must be nonzero and n at least 1.
func AnnuityPayment(p Money, r decimal.Decimal, n int64) (Money, error) {
	factor, err := annuityPVFactor(r, n)
	if err != nil {
		return Money{}, err
	}
	if factor.IsZero() {
		return Money{}, ErrUndefinedResult
	}
	return p.Div(factor), nil
}

// PeriodicEffectiveRate returns (1 + r/m)^m - 1 for a whole number of
// compounding periods m per annum. The frequency must be nonzero.
func PeriodicEffectiveRate(r decimal.Decimal, m int64) (decimal.Decimal, error) {
	if m == 0 {
		return decimal.Zero, ErrUndefinedResult
	}
	base := one.Add(r.Div(decimal.NewFromInt(m)))
	return powInt(base, m).Sub(one), nil
}
