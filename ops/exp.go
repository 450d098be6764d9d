package ops

import (
	"github.com/beatoz/fxmath-go/libs/fxnum"
	"github.com/beatoz/fxmath-go/policy"
	"github.com/beatoz/fxmath-go/reduce"
	"github.com/beatoz/fxmath-go/refine"
	"github.com/beatoz/fxmath-go/tables"
	"github.com/beatoz/fxmath-go/types"
	"github.com/beatoz/fxmath-go/types/xerrors"
)

// Exp saturates to the largest value above ln(max) and flushes to zero
// where e^x is below half the smallest positive value.
func Exp[T types.Number](x T) T {
	return T(exp(table[T](), int64(x)))
}

func Pow2[T types.Number](x T) T {
	return T(pow2(table[T](), int64(x)))
}

func Ln[T types.Number](x T) (T, xerrors.XError) {
	v, xerr := ln(table[T](), int64(x))
	return T(v), xerr
}

func Log2[T types.Number](x T) (T, xerrors.XError) {
	v, xerr := log2(table[T](), int64(x))
	return T(v), xerr
}

func Log10[T types.Number](x T) (T, xerrors.XError) {
	v, xerr := log10(table[T](), int64(x))
	return T(v), xerr
}

// Sqrt is correctly rounded to nearest.
func Sqrt[T types.Number](x T) (T, xerrors.XError) {
	v, xerr := sqrt(table[T](), int64(x))
	return T(v), xerr
}

// Pow returns x^y as 2^(y*log2 x). 0^y is 0 for y > 0 and a domain error
// otherwise.
func Pow[T types.Number](x, y T) (T, xerrors.XError) {
	v, xerr := pow(table[T](), int64(x), int64(y))
	return T(v), xerr
}

func exp(t *tables.Table, x int64) int64 {
	frac := t.Format.FracBits
	if v, sat := policy.Exp(t, x, frac); sat {
		return v
	}
	r := reduce.Exp(t, x, frac)
	return scaleOut(t, expWork(t, r.R), r.K)
}

// pow2Work returns 2^v for v held with frac fractional bits.
func pow2Work(t *tables.Table, v int64, frac uint) int64 {
	if s, sat := policy.Pow2(t, v, frac); sat {
		return s
	}
	r := reduce.Pow2(t, v, frac)
	return scaleOut(t, expWork(t, r.R), r.K)
}

func pow2(t *tables.Table, x int64) int64 {
	return pow2Work(t, x, t.Format.FracBits)
}

func ln(t *tables.Table, x int64) (int64, xerrors.XError) {
	if xerr := policy.Check(t, types.FuncLn, x); xerr != nil {
		return 0, xerr
	}
	return t.Narrow(refine.LnWork(t, x, t.Format.FracBits)), nil
}

func log2(t *tables.Table, x int64) (int64, xerrors.XError) {
	if xerr := policy.Check(t, types.FuncLog2, x); xerr != nil {
		return 0, xerr
	}
	return t.Narrow(refine.Log2Work(t, x, t.Format.FracBits)), nil
}

func log10(t *tables.Table, x int64) (int64, xerrors.XError) {
	if xerr := policy.Check(t, types.FuncLog10, x); xerr != nil {
		return 0, xerr
	}
	return t.Narrow(refine.Log10Work(t, x, t.Format.FracBits)), nil
}

func sqrt(t *tables.Table, x int64) (int64, xerrors.XError) {
	if xerr := policy.Check(t, types.FuncSqrt, x); xerr != nil {
		return 0, xerr
	}
	return refine.Sqrt(t, x), nil
}

func pow(t *tables.Table, x, y int64) (int64, xerrors.XError) {
	if xerr := policy.Check(t, types.FuncPow, x); xerr != nil {
		return 0, xerr
	}
	if x == 0 {
		if y > 0 {
			return 0, nil
		}
		return 0, xerrors.ErrDomainPositive.Wrapf("%v(0, %s)", types.FuncPow, t.Format.Text(y))
	}
	if y == 0 || x == t.Format.One() {
		return t.Format.One(), nil
	}

	// y*log2(x) held in work precision; clamping to the work range keeps
	// the saturation decision of pow2 intact.
	l := refine.Log2Work(t, x, t.Format.FracBits)
	p := fxnum.WideMul(l, y).RshRound(t.Format.FracBits).Clamp(t.Work)
	return pow2Work(t, p, t.Work.FracBits), nil
}
