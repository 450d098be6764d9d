package types

import (
	"github.com/beatoz/fxmath-go/libs/fxnum"
	"github.com/beatoz/fxmath-go/types/xerrors"
)

// I16F16 is a signed fixed-point number with 16 integer bits (sign
// included) and 16 fractional bits.
type I16F16 int32

// I32F32 is a signed fixed-point number with 32 integer bits (sign
// included) and 32 fractional bits.
type I32F32 int64

// Number is the set of fixed-point widths the engine is calibrated for.
type Number interface {
	I16F16 | I32F32
}

// FormatOf returns the binary layout of T.
func FormatOf[T Number]() fxnum.Format {
	var zero T
	switch any(zero).(type) {
	case I16F16:
		return fxnum.Q16_16
	case I32F32:
		return fxnum.Q32_32
	}
	panic("unreachable")
}

func FromRaw[T Number](raw int64) T {
	return T(FormatOf[T]().Clamp(raw))
}

func FromInt[T Number](n int64) T {
	f := FormatOf[T]()
	return T(f.Shl(n, f.FracBits))
}

// FromFloat rounds v to the nearest value of T, saturating.
func FromFloat[T Number](v float64) T {
	return T(FormatOf[T]().FromFloat64(v))
}

func Parse[T Number](s string) (T, xerrors.XError) {
	raw, xerr := FormatOf[T]().Parse(s)
	if xerr != nil {
		return 0, xerr
	}
	return T(raw), nil
}

func MaxOf[T Number]() T {
	return T(FormatOf[T]().Max())
}

func MinOf[T Number]() T {
	return T(FormatOf[T]().Min())
}

func ToFloat[T Number](x T) float64 {
	return FormatOf[T]().ToFloat64(int64(x))
}

func (x I16F16) Raw() int64 {
	return int64(x)
}

func (x I16F16) Float64() float64 {
	return fxnum.Q16_16.ToFloat64(int64(x))
}

func (x I16F16) String() string {
	return fxnum.Q16_16.Text(int64(x))
}

func (x I32F32) Raw() int64 {
	return int64(x)
}

func (x I32F32) Float64() float64 {
	return fxnum.Q32_32.ToFloat64(int64(x))
}

func (x I32F32) String() string {
	return fxnum.Q32_32.Text(int64(x))
}
