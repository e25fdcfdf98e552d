package common

import "github.com/shopspring/decimal"

// Number is the operation set shared by numeric representations, so a
// wider rational type can stand in for Rational later.
type Number[T any] interface {
	Reciprocal() (T, error)
	Neg() (T, error)
	Abs() (T, error)
	Mul(T) (T, error)
	Quo(T) (T, error)
	Add(T) (T, error)
	Sub(T) (T, error)
	Sum(...T) (T, error)
	Product(...T) (T, error)
	Difference(...T) (T, error)
	Quotient(...T) (T, error)
	ApplyPercentage() (T, error)
	PercentageOf(T) (T, error)
	Pow(int64) (T, error)
	PowRat(T) (T, error)

	Cmp(T) int
	Equal(T) bool
	Sign() int

	Float64() float64
	Int64() int64
	Decimal() decimal.Decimal
	DecimalRound(int32, RoundingMode) (decimal.Decimal, error)
	String() string
}

var _ Number[Rational] = Rational{}
