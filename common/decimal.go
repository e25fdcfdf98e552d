package common

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultScale = 2

type RoundingMode int

const (
	RoundHalfUp RoundingMode = iota
	RoundHalfDown
	RoundHalfEven
	RoundUp
	RoundDown
	RoundCeiling
	RoundFloor
	RoundUnnecessary
)

var roundingModeNames = []string{
	RoundHalfUp:      "half-up",
	RoundHalfDown:    "half-down",
	RoundHalfEven:    "half-even",
	RoundUp:          "up",
	RoundDown:        "down",
	RoundCeiling:     "ceiling",
	RoundFloor:       "floor",
	RoundUnnecessary: "unnecessary",
}

func (m RoundingMode) String() string {
	if m < 0 || int(m) >= len(roundingModeNames) {
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}
	return roundingModeNames[m]
}

// ParseRoundingMode accepts the names returned by String, case and
// underscores ignored, and "truncate" as an alias of down.
func ParseRoundingMode(s string) (RoundingMode, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if name == "truncate" {
		return RoundDown, nil
	}
	for i, n := range roundingModeNames {
		if n == name {
			return RoundingMode(i), nil
		}
	}
	return 0, fmt.Errorf("invalid rounding mode %q", s)
}

func (r Rational) Float64() float64 {
	return float64(r.p) / float64(r.Denom())
}

// Int64 truncates toward zero.
func (r Rational) Int64() int64 {
	return r.p / r.Denom()
}

// Decimal rounds r half up to DefaultScale digits.
func (r Rational) Decimal() decimal.Decimal {
	d, err := r.DecimalRound(DefaultScale, RoundHalfUp)
	if err != nil {
		panic(err)
	}
	return d
}

func (r Rational) StringFixed(scale int32) string {
	d, err := r.DecimalRound(scale, RoundHalfUp)
	if err != nil {
		panic(err)
	}
	return d.StringFixed(scale)
}

// DecimalRound divides exactly and rounds the quotient to scale digits
// after the point using mode.
func (r Rational) DecimalRound(scale int32, mode RoundingMode) (decimal.Decimal, error) {
	n, d := decimal.NewFromInt(r.p), decimal.NewFromInt(r.Denom())
	if mode == RoundHalfUp {
		return n.DivRound(d, scale), nil
	}

	q, rem := n.QuoRem(d, scale)
	if rem.IsZero() {
		return q, nil
	}

	unit := decimal.New(1, -scale)
	away := q.Add(unit)
	if r.p < 0 {
		away = q.Sub(unit)
	}
	half := rem.Abs().Mul(decimal.New(2, 0)).Cmp(d.Mul(unit))

	switch mode {
	case RoundDown:
		return q, nil
	case RoundUp:
		return away, nil
	case RoundCeiling:
		if r.p > 0 {
			return away, nil
		}
		return q, nil
	case RoundFloor:
		if r.p < 0 {
			return away, nil
		}
		return q, nil
	case RoundHalfDown:
		if half > 0 {
			return away, nil
		}
		return q, nil
	case RoundHalfEven:
		if half > 0 || (half == 0 && !q.Shift(scale).Mod(decimal.New(2, 0)).IsZero()) {
			return away, nil
		}
		return q, nil
	case RoundUnnecessary:
		return decimal.Decimal{}, fmt.Errorf("%w: %s at scale %d", ErrRoundingNecessary, r, scale)
	}
	return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrNotImplementedFeature, mode)
}
