package common

import "errors"

var (
	ErrZeroDenominator       = errors.New("zero denominator")
	ErrInvalidFormatString   = errors.New("invalid number format")
	ErrZeroExponential       = errors.New("zero to the power of zero")
	ErrNotImplementedFeature = errors.New("not implemented")
	ErrArithmeticOverflow    = errors.New("arithmetic overflow")
	ErrRoundingNecessary     = errors.New("rounding necessary")
	ErrInvalidStep           = errors.New("range step is not positive")
	ErrRangeTooLarge         = errors.New("range too large")
)
