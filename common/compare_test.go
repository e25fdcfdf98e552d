package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRationalCmp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1, rat(1, 2).Cmp(rat(1, 4)))
	assert.Equal(0, rat(1, 4).Cmp(rat(2, 8)))
	assert.Equal(-1, rat(2, 8).Cmp(rat(7, 24)))
	assert.Equal(-1, rat(7, 24).Cmp(rat(5, 2)))

	assert.Equal(-1, rat(-1, 2).Cmp(rat(-1, 4)))
	assert.Equal(1, rat(-1, 4).Cmp(rat(-1, 2)))
	assert.Equal(1, OneHalf.Cmp(Zero))
	assert.Equal(-1, Zero.Cmp(OneHalf))
	assert.Equal(1, Zero.Cmp(NewFromInt(-3)))
	assert.Equal(0, Zero.Cmp(Rational{}))
	assert.Equal(1, NewFromInt(3).Cmp(NewFromInt(2)))
	assert.Equal(-1, rat(-1, 3).Cmp(rat(1, 3)))
	assert.Equal(1, rat(math.MaxInt64, math.MaxInt64-1).Cmp(One))
	assert.Equal(1, rat(math.MaxInt64-1, math.MaxInt64).Cmp(rat(math.MaxInt64-2, math.MaxInt64-1)))
	assert.Equal(1, Pi.Cmp(E))
	assert.Equal(-1, rat(math.MinInt64+1, 3).Cmp(rat(math.MaxInt64, 3)))

	assert.Equal(-1, rat(-5, 2).Sign())
	assert.Equal(0, Zero.Sign())
	assert.Equal(1, Pi.Sign())
	assert.True(Zero.IsZero())
	assert.False(OneHalf.IsZero())
	assert.True(Ten.IsInt())
	assert.False(OneHalf.IsInt())
}

func TestRationalOrdering(t *testing.T) {
	assert := assert.New(t)

	values := []Rational{
		Zero, One, MinusOne, OneHalf, OneQuarter, Ten, Hundred,
		rat(-7, 24), rat(13, 24), rat(-91, 24), rat(2, 8), rat(-1, 4),
		rat(1000003, 999983), rat(-999983, 1000003),
	}
	for _, a := range values {
		for _, b := range values {
			c := a.Cmp(b)
			assert.Equal(-c, b.Cmp(a), "%s %s", a, b)
			assert.Equal(c == 0, a.Equal(b), "%s %s", a, b)

			diff, err := a.Sub(b)
			assert.Nil(err)
			assert.Equal(c, diff.Sign(), "%s %s", a, b)
		}
	}
}
