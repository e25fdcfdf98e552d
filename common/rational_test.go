package common

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRationalNew(t *testing.T) {
	assert := assert.New(t)

	r, err := New(2, 8)
	assert.Nil(err)
	assert.Equal(int64(1), r.Num())
	assert.Equal(int64(4), r.Denom())
	assert.Equal("{1/4}", r.String())

	r, err = New(3, -6)
	assert.Nil(err)
	assert.Equal(int64(-1), r.Num())
	assert.Equal(int64(2), r.Denom())

	r, err = New(-4, -10)
	assert.Nil(err)
	assert.Equal("{2/5}", r.String())

	r, err = New(0, -7)
	assert.Nil(err)
	assert.Equal(int64(0), r.Num())
	assert.Equal(int64(1), r.Denom())
	assert.Equal(Zero, r)
	assert.Equal(Rational{}, r)

	r, err = New(math.MinInt64, 2)
	assert.Nil(err)
	assert.Equal(int64(math.MinInt64/2), r.Num())
	assert.Equal(int64(1), r.Denom())

	_, err = New(1, 0)
	assert.ErrorIs(err, ErrZeroDenominator)
	_, err = New(0, 0)
	assert.ErrorIs(err, ErrZeroDenominator)
	_, err = New(1, math.MinInt64)
	assert.ErrorIs(err, ErrArithmeticOverflow)

	a, _ := New(2, 8)
	b, _ := New(1, 4)
	assert.True(a.Equal(b))
	assert.True(a == b)

	assert.Equal("4", NewFromInt(4).String())
	assert.Equal("-9", NewFromInt(-9).String())
	assert.Equal("0", Rational{}.String())
	half, _ := New(1, 2)
	assert.Equal("{1/2}", half.String())
}

func TestRationalNormalization(t *testing.T) {
	assert := assert.New(t)

	for n := int64(-30); n <= 30; n++ {
		for d := int64(-30); d <= 30; d++ {
			r, err := New(n, d)
			if d == 0 {
				assert.ErrorIs(err, ErrZeroDenominator)
				continue
			}
			assert.Nil(err)
			assert.True(r.Denom() > 0)
			assert.Equal(uint64(1), gcd(abs64(r.Num()), uint64(r.Denom())))
			if n == 0 {
				assert.Equal(Zero, r)
			}
			assert.Equal(0, r.Cmp(mustRational(n*1000, d*1000, true)))
		}
	}
}

func TestRationalConstants(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0", Zero.String())
	assert.Equal("1", One.String())
	assert.Equal("-1", MinusOne.String())
	assert.Equal("10", Ten.String())
	assert.Equal("100", Hundred.String())
	assert.Equal("{1/2}", OneHalf.String())
	assert.Equal("{1/4}", OneQuarter.String())
	assert.Equal("3.14", Pi.StringFixed(2))
	assert.Equal("2.72", E.StringFixed(2))
	assert.Equal(uint64(1), gcd(abs64(Pi.Num()), uint64(Pi.Denom())))
	assert.Equal(uint64(1), gcd(abs64(E.Num()), uint64(E.Denom())))
}

func TestRationalFromString(t *testing.T) {
	assert := assert.New(t)

	cases := map[string]string{
		"12":                     "12",
		"  12 \n":                "12",
		"-0":                     "0",
		"007":                    "7",
		"0.5":                    "{1/2}",
		"-0.50":                  "{-1/2}",
		"2.5":                    "{5/2}",
		"0.125":                  "{1/8}",
		"1.0":                    "1",
		"-0.0":                   "0",
		"1.50000000000000000000": "{3/2}",
		"9223372036854775807":    "9223372036854775807",
		"-9223372036854775808":   "-9223372036854775808",
	}
	for in, out := range cases {
		r, err := NewFromString(in)
		assert.Nil(err, in)
		assert.Equal(out, r.String(), in)
	}

	for _, in := range []string{"abc", "", " ", "1.", ".5", "1.2.3", "1e3", "+1", "--1", "1/2", "{1/2}", "0x10", "1 000"} {
		_, err := NewFromString(in)
		assert.ErrorIs(err, ErrInvalidFormatString, in)
	}

	for _, in := range []string{"9223372036854775808", "0.0000000000000000001", "99999999999999999999.5"} {
		_, err := NewFromString(in)
		assert.ErrorIs(err, ErrArithmeticOverflow, in)
	}
}

func TestRationalParse(t *testing.T) {
	assert := assert.New(t)

	r, err := Parse("{1/2}")
	assert.Nil(err)
	assert.Equal(OneHalf, r)
	r, err = Parse(" {2/-4} ")
	assert.Nil(err)
	assert.Equal("{-1/2}", r.String())
	r, err = Parse("0.25")
	assert.Nil(err)
	assert.Equal(OneQuarter, r)

	_, err = Parse("{1/0}")
	assert.ErrorIs(err, ErrZeroDenominator)
	for _, in := range []string{"{1/2", "{1/2/3}", "{a/2}", "{1.5/2}", "{}", "abc"} {
		_, err = Parse(in)
		assert.ErrorIs(err, ErrInvalidFormatString, in)
	}

	values := []Rational{Zero, One, MinusOne, OneHalf, Pi, E, mustRational(-7, 24, true), mustRational(math.MaxInt64, 3, true)}
	for _, v := range values {
		p, err := Parse(v.String())
		assert.Nil(err)
		assert.Equal(v.String(), p.String())
		assert.Equal(v, p)
	}
}

func TestRationalFromDecimal(t *testing.T) {
	require := require.New(t)

	r, err := NewFromDecimal(decimal.RequireFromString("2.50"))
	require.Nil(err)
	require.Equal("{5/2}", r.String())

	r, err = NewFromDecimal(decimal.RequireFromString("-0.125"))
	require.Nil(err)
	require.Equal("{-1/8}", r.String())

	r, err = NewFromDecimal(decimal.New(15, 2))
	require.Nil(err)
	require.Equal("1500", r.String())

	r, err = NewFromDecimal(decimal.Zero)
	require.Nil(err)
	require.Equal(Zero, r)

	_, err = NewFromDecimal(decimal.New(1, 30))
	require.ErrorIs(err, ErrArithmeticOverflow)
	_, err = NewFromDecimal(decimal.RequireFromString("123456789012345678901234567890"))
	require.ErrorIs(err, ErrArithmeticOverflow)
}

func TestRationalFromFloat64(t *testing.T) {
	require := require.New(t)

	r, err := NewFromFloat64(0.1)
	require.Nil(err)
	require.Equal("{1/10}", r.String())

	r, err = NewFromFloat64(-2.5)
	require.Nil(err)
	require.Equal("{-5/2}", r.String())

	r, err = NewFromFloat64(3)
	require.Nil(err)
	require.Equal("3", r.String())

	_, err = NewFromFloat64(math.NaN())
	require.ErrorIs(err, ErrInvalidFormatString)
	_, err = NewFromFloat64(math.Inf(-1))
	require.ErrorIs(err, ErrInvalidFormatString)
	_, err = NewFromFloat64(1e21)
	require.ErrorIs(err, ErrArithmeticOverflow)
}

func TestNaturalPow(t *testing.T) {
	assert := assert.New(t)

	_, err := naturalPow(0, 0)
	assert.ErrorIs(err, ErrZeroExponential)

	for _, c := range [][3]int64{{2, 0, 1}, {2, 10, 1024}, {-3, 3, -27}, {-1, 1000001, -1}, {0, 5, 0}, {10, 18, 1000000000000000000}, {2, 62, 1 << 62}} {
		v, err := naturalPow(c[0], c[1])
		assert.Nil(err)
		assert.Equal(c[2], v)
	}

	_, err = naturalPow(2, 63)
	assert.ErrorIs(err, ErrArithmeticOverflow)
	v, err := naturalPow(-2, 63)
	assert.Nil(err)
	assert.Equal(int64(math.MinInt64), v)
	_, err = naturalPow(10, 19)
	assert.ErrorIs(err, ErrArithmeticOverflow)

	assert.Panics(func() { naturalPow(2, -1) })
}
