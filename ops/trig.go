package ops

import (
	"github.com/beatoz/fxmath-go/kernel"
	"github.com/beatoz/fxmath-go/policy"
	"github.com/beatoz/fxmath-go/reduce"
	"github.com/beatoz/fxmath-go/refine"
	"github.com/beatoz/fxmath-go/tables"
	"github.com/beatoz/fxmath-go/types"
	"github.com/beatoz/fxmath-go/types/xerrors"
)

func Sin[T types.Number](x T) T {
	s, _ := sinCos(table[T](), int64(x))
	return T(s)
}

func Cos[T types.Number](x T) T {
	_, c := sinCos(table[T](), int64(x))
	return T(c)
}

// SinCos returns sin x and cos x from one rotation. Both results are
// bit-identical to Sin(x) and Cos(x).
func SinCos[T types.Number](x T) (sin, cos T) {
	s, c := sinCos(table[T](), int64(x))
	return T(s), T(c)
}

// Tan saturates to the extreme of the format on the side the pole is
// approached from.
func Tan[T types.Number](x T) T {
	return T(tan(table[T](), int64(x)))
}

func Atan[T types.Number](x T) T {
	t := table[T]()
	return T(atan2(t, int64(x), t.Format.One()))
}

// Atan2 returns the angle of the point (x, y) in (-pi, pi]. Atan2(0, 0) is 0.
func Atan2[T types.Number](y, x T) T {
	return T(atan2(table[T](), int64(y), int64(x)))
}

func Asin[T types.Number](x T) (T, xerrors.XError) {
	v, xerr := asin(table[T](), int64(x))
	return T(v), xerr
}

func Acos[T types.Number](x T) (T, xerrors.XError) {
	v, xerr := acos(table[T](), int64(x))
	return T(v), xerr
}

// sinCosWork returns sin r and cos r in work precision for |r| <= pi/4.
func sinCosWork(t *tables.Table, r int64) (int64, int64) {
	if r > -t.SinSmall && r < t.SinSmall {
		return refine.SinCosSmall(t, r)
	}
	return kernel.SinCos(t, r)
}

func sinCos(t *tables.Table, x int64) (int64, int64) {
	q := reduce.Angle(t, x)
	s, c := sinCosWork(t, q.R)
	switch q.Index {
	case 1:
		s, c = c, -s
	case 2:
		s, c = -s, -c
	case 3:
		s, c = -c, s
	}
	return t.Narrow(policy.Unit(t, s)), t.Narrow(policy.Unit(t, c))
}

func tan(t *tables.Table, x int64) int64 {
	w := t.Work
	q := reduce.Angle(t, x)
	if q.Index&1 == 0 {
		s, c := sinCosWork(t, q.R)
		return t.Narrow(w.Div(s, c))
	}

	// tan(k*pi/2 + r) = -cot(r) for odd k
	if v, sat := policy.TanPole(t, q.Residual); sat {
		return v
	}
	if q.R > -t.SinSmall && q.R < t.SinSmall {
		return t.Format.Neg(refine.CotPole(t, q.Residual))
	}
	s, c := kernel.SinCos(t, q.R)
	return t.Narrow(w.Div(-c, s))
}

func atan2(t *tables.Table, y, x int64) int64 {
	if x == 0 {
		switch {
		case y > 0:
			return t.OutConst.HalfPi
		case y < 0:
			return -t.OutConst.HalfPi
		}
		return 0
	}

	if y == 0 {
		if x > 0 {
			return 0
		}
		return t.OutConst.Pi
	}

	xw, yw := reduce.Pair(t, x, y)
	if xw < 0 {
		xw = -xw
	}
	z := kernel.Atan(t, xw, yw)
	if x < 0 {
		if y >= 0 {
			z = t.Const.Pi - z
		} else {
			z = -t.Const.Pi - z
		}
	}
	return t.Narrow(z)
}

// cosOfAsin returns sqrt(1 - x^2) in work precision for x in [-1, 1].
func cosOfAsin(t *tables.Table, x int64) int64 {
	w := t.Work
	one := w.One()
	return refine.SqrtWork(t, w.Mul(one-x, one+x))
}

func asin(t *tables.Table, x int64) (int64, xerrors.XError) {
	if xerr := policy.Check(t, types.FuncAsin, x); xerr != nil {
		return 0, xerr
	}
	xw := t.Widen(x)
	return t.Narrow(kernel.Atan(t, cosOfAsin(t, xw), xw)), nil
}

func acos(t *tables.Table, x int64) (int64, xerrors.XError) {
	if xerr := policy.Check(t, types.FuncAcos, x); xerr != nil {
		return 0, xerr
	}
	xw := t.Widen(x)
	c := cosOfAsin(t, xw)
	if xw < 0 {
		return t.Narrow(t.Const.Pi - kernel.Atan(t, -xw, c)), nil
	}
	return t.Narrow(kernel.Atan(t, xw, c)), nil
}
