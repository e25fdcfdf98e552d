package common

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	decimalPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
	integerPattern = regexp.MustCompile(`^-?[0-9]+$`)
)

var (
	Zero       Rational
	One        Rational
	MinusOne   Rational
	Ten        Rational
	Hundred    Rational
	OneHalf    Rational
	OneQuarter Rational
	Pi         Rational
	E          Rational
)

func init() {
	Zero = NewFromInt(0)
	One = NewFromInt(1)
	MinusOne = NewFromInt(-1)
	Ten = NewFromInt(10)
	Hundred = NewFromInt(100)
	OneHalf = mustRational(1, 2, false)
	OneQuarter = mustRational(1, 4, false)
	Pi = mustRational(3141592653589793, 1000000000000000, false)
	E = mustRational(543656365691809, 200000000000000, false)
}

// Rational is an exact fraction of two int64 values, always kept with a
// positive denominator and, outside the raw construction path, in lowest
// terms. The zero value is 0.
//
// q holds the denominator minus one, so that Rational{} decodes as 0/1 and
// two values can be compared with ==.
type Rational struct {
	p int64
	q int64
}

// newRational moves the sign to the numerator and, if reduce is set,
// divides both parts by their greatest common divisor. The raw path is
// only for pairs already known to be coprime.
func newRational(n, d int64, reduce bool) (Rational, error) {
	if d == 0 {
		return Rational{}, ErrZeroDenominator
	}
	if d < 0 {
		var err error
		n, err = negInt64(n)
		if err != nil {
			return Rational{}, err
		}
		d, err = negInt64(d)
		if err != nil {
			return Rational{}, err
		}
	}
	if n == 0 {
		return Rational{}, nil
	}
	if reduce {
		g := int64(gcd(abs64(n), uint64(d)))
		n, d = n/g, d/g
	}
	return Rational{p: n, q: d - 1}, nil
}

func mustRational(n, d int64, reduce bool) Rational {
	r, err := newRational(n, d, reduce)
	if err != nil {
		panic(fmt.Sprint(n, d, err))
	}
	return r
}

// New returns n/d in lowest terms.
func New(n, d int64) (Rational, error) {
	return newRational(n, d, true)
}

func NewFromInt(n int64) Rational {
	return Rational{p: n}
}

// NewFromDecimal converts an exact decimal, e.g. 2.50 becomes 250/100 and
// then 5/2.
func NewFromDecimal(v decimal.Decimal) (Rational, error) {
	coef, exp := v.Coefficient(), v.Exponent()
	if !coef.IsInt64() {
		return Rational{}, ErrArithmeticOverflow
	}
	n := coef.Int64()
	if exp >= 0 {
		m, err := pow10(int(exp))
		if err != nil {
			return Rational{}, err
		}
		n, err = mulInt64(n, m)
		if err != nil {
			return Rational{}, err
		}
		return NewFromInt(n), nil
	}
	d, err := pow10(int(-exp))
	if err != nil {
		return Rational{}, err
	}
	return newRational(n, d, true)
}

// NewFromString parses a plain decimal number such as "-12" or "0.125".
// Surrounding whitespace is ignored, anything else fails with
// ErrInvalidFormatString.
func NewFromString(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return Rational{}, fmt.Errorf("%w: %q", ErrInvalidFormatString, s)
	}

	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		n, err := parseDigits(s)
		if err != nil {
			return Rational{}, err
		}
		return NewFromInt(n), nil
	}

	fraction := strings.TrimRight(s[dot+1:], "0")
	n, err := parseDigits(s[:dot] + fraction)
	if err != nil {
		return Rational{}, err
	}
	d, err := pow10(len(fraction))
	if err != nil {
		return Rational{}, err
	}
	return newRational(n, d, true)
}

// NewFromFloat64 converts f through its shortest decimal representation,
// so 0.1 becomes 1/10 rather than the exact binary value.
func NewFromFloat64(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, fmt.Errorf("%w: %v", ErrInvalidFormatString, f)
	}
	return NewFromString(strconv.FormatFloat(f, 'f', -1, 64))
}

// Parse accepts everything NewFromString does plus the display form
// "{n/d}" produced by String.
func Parse(s string) (Rational, error) {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "{") || !strings.HasSuffix(t, "}") {
		return NewFromString(t)
	}
	parts := strings.Split(t[1:len(t)-1], "/")
	if len(parts) != 2 || !integerPattern.MatchString(parts[0]) || !integerPattern.MatchString(parts[1]) {
		return Rational{}, fmt.Errorf("%w: %q", ErrInvalidFormatString, s)
	}
	n, err := parseDigits(parts[0])
	if err != nil {
		return Rational{}, err
	}
	d, err := parseDigits(parts[1])
	if err != nil {
		return Rational{}, err
	}
	return New(n, d)
}

func parseDigits(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s", ErrArithmeticOverflow, s)
	} else if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidFormatString, s)
	}
	return n, nil
}

func (r Rational) Num() int64 {
	return r.p
}

func (r Rational) Denom() int64 {
	return r.q + 1
}

func (r Rational) String() string {
	if r.q == 0 {
		return strconv.FormatInt(r.p, 10)
	}
	return fmt.Sprintf("{%d/%d}", r.p, r.Denom())
}
