package common

import "math/bits"

func (r Rational) Equal(x Rational) bool {
	return r == x
}

func (r Rational) Sign() int {
	switch {
	case r.p < 0:
		return -1
	case r.p > 0:
		return 1
	}
	return 0
}

func (r Rational) IsZero() bool {
	return r.p == 0
}

func (r Rational) IsInt() bool {
	return r.q == 0
}

// Cmp returns -1, 0 or 1 as r is less than, equal to or greater than x.
// Non-integers are compared by cross multiplication in 128 bits, which
// cannot overflow.
func (r Rational) Cmp(x Rational) int {
	if r.q == 0 && x.q == 0 {
		return cmpInt64(r.p, x.p)
	}

	rs, xs := r.Sign(), x.Sign()
	if rs != xs {
		return cmpInt64(int64(rs), int64(xs))
	}
	if rs == 0 {
		return 0
	}

	ah, al := bits.Mul64(abs64(r.p), uint64(x.Denom()))
	bh, bl := bits.Mul64(abs64(x.p), uint64(r.Denom()))
	c := cmpUint64(ah, bh)
	if c == 0 {
		c = cmpUint64(al, bl)
	}
	return c * rs
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
