package common

import (
	"errors"
	"fmt"
)

const MaximumRangeSize = 1 << 20

// RangeEach walks the half-open progression from start toward stop by
// step, calling fn until it returns false. The direction follows the
// bounds: when start >= stop the walk subtracts step while the value is
// still above stop, otherwise it adds step while the value is below stop.
func RangeEach(start, stop, step Rational, fn func(Rational) bool) error {
	if step.Sign() <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidStep, step)
	}

	next, inside := Rational.Add, func(v Rational) bool { return v.Cmp(stop) < 0 }
	gap := func(v Rational) (Rational, error) { return stop.Sub(v) }
	if start.Cmp(stop) >= 0 {
		next, inside = Rational.Sub, func(v Rational) bool { return v.Cmp(stop) > 0 }
		gap = func(v Rational) (Rational, error) { return v.Sub(stop) }
	}

	for v := start; inside(v); {
		if !fn(v) {
			return nil
		}
		n, err := next(v, step)
		if errors.Is(err, ErrArithmeticOverflow) && stepsBeyond(v, step, gap) {
			return nil
		} else if err != nil {
			return err
		}
		v = n
	}
	return nil
}

// stepsBeyond reports whether one more step from v reaches or passes the
// bound, so a value that cannot be represented would never be yielded.
func stepsBeyond(v, step Rational, gap func(Rational) (Rational, error)) bool {
	g, err := gap(v)
	if err != nil {
		return false
	}
	return step.Cmp(g) >= 0
}

// RangeN materializes the progression, failing once it would hold more
// than limit values.
func RangeN(start, stop, step Rational, limit int) ([]Rational, error) {
	var seq []Rational
	var overflow bool
	err := RangeEach(start, stop, step, func(v Rational) bool {
		if len(seq) >= limit {
			overflow = true
			return false
		}
		seq = append(seq, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	if overflow {
		return nil, fmt.Errorf("%w: more than %d values from %s to %s", ErrRangeTooLarge, limit, start, stop)
	}
	return seq, nil
}

func Range(start, stop, step Rational) ([]Rational, error) {
	return RangeN(start, stop, step, MaximumRangeSize)
}

func (r Rational) RangeTo(stop Rational) ([]Rational, error) {
	return Range(r, stop, One)
}

func (r Rational) RangeStep(stop Rational, step int64) ([]Rational, error) {
	return Range(r, stop, NewFromInt(step))
}
