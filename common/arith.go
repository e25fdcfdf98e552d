package common

import (
	"fmt"
	"math"
)

// Reciprocal swaps numerator and denominator, a reduced pair stays reduced.
func (r Rational) Reciprocal() (Rational, error) {
	return newRational(r.Denom(), r.p, false)
}

func (r Rational) Neg() (Rational, error) {
	n, err := negInt64(r.p)
	if err != nil {
		return Rational{}, err
	}
	return Rational{p: n, q: r.q}, nil
}

func (r Rational) Abs() (Rational, error) {
	if r.p < 0 {
		return r.Neg()
	}
	return r, nil
}

func (r Rational) Mul(x Rational) (Rational, error) {
	n, err := mulInt64(r.p, x.p)
	if err != nil {
		return Rational{}, err
	}
	d, err := mulInt64(r.Denom(), x.Denom())
	if err != nil {
		return Rational{}, err
	}
	return newRational(n, d, true)
}

func (r Rational) Quo(x Rational) (Rational, error) {
	if x.p == 0 {
		return Rational{}, ErrZeroDenominator
	}
	n, err := mulInt64(r.p, x.Denom())
	if err != nil {
		return Rational{}, err
	}
	d, err := mulInt64(r.Denom(), x.p)
	if err != nil {
		return Rational{}, err
	}
	return newRational(n, d, true)
}

func (r Rational) Add(x Rational) (Rational, error) {
	return r.combine(x, addInt64)
}

func (r Rational) Sub(x Rational) (Rational, error) {
	return r.combine(x, subInt64)
}

// combine rescales both numerators to the least common multiple of the
// denominators before applying op.
func (r Rational) combine(x Rational, op func(a, b int64) (int64, error)) (Rational, error) {
	rd, xd := r.Denom(), x.Denom()
	m, err := lcm(rd, xd)
	if err != nil {
		return Rational{}, err
	}
	a, err := mulInt64(r.p, m/rd)
	if err != nil {
		return Rational{}, err
	}
	b, err := mulInt64(x.p, m/xd)
	if err != nil {
		return Rational{}, err
	}
	n, err := op(a, b)
	if err != nil {
		return Rational{}, err
	}
	return newRational(n, m, true)
}

func (r Rational) MulInt(k int64) (Rational, error) {
	return r.Mul(NewFromInt(k))
}

func (r Rational) QuoInt(k int64) (Rational, error) {
	return r.Quo(NewFromInt(k))
}

func (r Rational) AddInt(k int64) (Rational, error) {
	return r.Add(NewFromInt(k))
}

func (r Rational) SubInt(k int64) (Rational, error) {
	return r.Sub(NewFromInt(k))
}

func (r Rational) Inc() (Rational, error) {
	n, err := addInt64(r.p, r.Denom())
	if err != nil {
		return Rational{}, err
	}
	return newRational(n, r.Denom(), true)
}

func (r Rational) Dec() (Rational, error) {
	n, err := subInt64(r.p, r.Denom())
	if err != nil {
		return Rational{}, err
	}
	return newRational(n, r.Denom(), true)
}

func (r Rational) Sum(others ...Rational) (Rational, error) {
	return r.fold(Rational.Add, others)
}

func (r Rational) Product(others ...Rational) (Rational, error) {
	return r.fold(Rational.Mul, others)
}

func (r Rational) Difference(others ...Rational) (Rational, error) {
	return r.fold(Rational.Sub, others)
}

func (r Rational) Quotient(others ...Rational) (Rational, error) {
	return r.fold(Rational.Quo, others)
}

func (r Rational) fold(op func(Rational, Rational) (Rational, error), others []Rational) (Rational, error) {
	result := r
	for _, x := range others {
		var err error
		result, err = op(result, x)
		if err != nil {
			return Rational{}, err
		}
	}
	return result, nil
}

// ApplyPercentage expresses r in percent, 1/2 becomes 50.
func (r Rational) ApplyPercentage() (Rational, error) {
	return r.MulInt(100)
}

// PercentageOf expresses the product of r and x in percent.
func (r Rational) PercentageOf(x Rational) (Rational, error) {
	v, err := r.Mul(x)
	if err != nil {
		return Rational{}, err
	}
	return v.ApplyPercentage()
}

// Pow raises r to an integer power. Powers of a reduced pair are still
// coprime, so no reduction is needed.
func (r Rational) Pow(exp int64) (Rational, error) {
	n, d := r.p, r.Denom()
	if exp < 0 {
		if exp == math.MinInt64 {
			return Rational{}, ErrArithmeticOverflow
		}
		n, d, exp = d, n, -exp
	}
	pn, err := naturalPow(n, exp)
	if err != nil {
		return Rational{}, err
	}
	pd, err := naturalPow(d, exp)
	if err != nil {
		return Rational{}, err
	}
	return newRational(pn, pd, false)
}

// PowRat only supports exponents with a denominator of one.
func (r Rational) PowRat(exp Rational) (Rational, error) {
	if !exp.IsInt() {
		return Rational{}, fmt.Errorf("%w: rational exponent %s", ErrNotImplementedFeature, exp)
	}
	return r.Pow(exp.p)
}
