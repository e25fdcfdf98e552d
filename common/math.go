package common

import (
	"fmt"
	"math"
)

var pow10Table = [...]int64{
	1, 10, 100, 1000, 10000,
	100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000,
	1000000000000000, 10000000000000000, 100000000000000000, 1000000000000000000,
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm expects two positive denominators.
func lcm(a, b int64) (int64, error) {
	g := int64(gcd(uint64(a), uint64(b)))
	return mulInt64(a/g, b)
}

func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(^x) + 1
	}
	return uint64(x)
}

func mulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return 0, ErrArithmeticOverflow
	}
	return c, nil
}

func addInt64(a, b int64) (int64, error) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, ErrArithmeticOverflow
	}
	return c, nil
}

func subInt64(a, b int64) (int64, error) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return 0, ErrArithmeticOverflow
	}
	return c, nil
}

func negInt64(a int64) (int64, error) {
	if a == math.MinInt64 {
		return 0, ErrArithmeticOverflow
	}
	return -a, nil
}

// naturalPow computes base^exp by squaring, exp must not be negative.
func naturalPow(base, exp int64) (int64, error) {
	if exp < 0 {
		panic(fmt.Sprint(base, exp))
	}
	if base == 0 && exp == 0 {
		return 0, ErrZeroExponential
	}

	result := int64(1)
	for exp > 0 {
		var err error
		if exp&1 == 1 {
			result, err = mulInt64(result, base)
			if err != nil {
				return 0, err
			}
		}
		exp >>= 1
		if exp > 0 {
			base, err = mulInt64(base, base)
			if err != nil {
				return 0, err
			}
		}
	}
	return result, nil
}

func pow10(exp int) (int64, error) {
	if exp < 0 || exp >= len(pow10Table) {
		return 0, ErrArithmeticOverflow
	}
	return pow10Table[exp], nil
}
