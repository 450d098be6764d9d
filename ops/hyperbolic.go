package ops

import (
	"github.com/beatoz/fxmath-go/kernel"
	"github.com/beatoz/fxmath-go/libs/fxnum"
	"github.com/beatoz/fxmath-go/policy"
	"github.com/beatoz/fxmath-go/reduce"
	"github.com/beatoz/fxmath-go/refine"
	"github.com/beatoz/fxmath-go/tables"
	"github.com/beatoz/fxmath-go/types"
	"github.com/beatoz/fxmath-go/types/xerrors"
)

func Sinh[T types.Number](x T) T {
	s, _ := sinhCosh(table[T](), int64(x))
	return T(s)
}

func Cosh[T types.Number](x T) T {
	_, c := sinhCosh(table[T](), int64(x))
	return T(c)
}

// SinhCosh returns sinh x and cosh x, bit-identical to Sinh(x) and Cosh(x).
func SinhCosh[T types.Number](x T) (sinh, cosh T) {
	s, c := sinhCosh(table[T](), int64(x))
	return T(s), T(c)
}

func Tanh[T types.Number](x T) T {
	t := table[T]()
	return T(t.Narrow(tanhWork(t, int64(x))))
}

func Asinh[T types.Number](x T) T {
	return T(asinh(table[T](), int64(x)))
}

func Acosh[T types.Number](x T) (T, xerrors.XError) {
	v, xerr := acosh(table[T](), int64(x))
	return T(v), xerr
}

func Atanh[T types.Number](x T) (T, xerrors.XError) {
	v, xerr := atanh(table[T](), int64(x))
	return T(v), xerr
}

func Acoth[T types.Number](x T) (T, xerrors.XError) {
	v, xerr := acoth(table[T](), int64(x))
	return T(v), xerr
}

// Coth saturates near zero, where 1/x leaves the format.
func Coth[T types.Number](x T) (T, xerrors.XError) {
	v, xerr := coth(table[T](), int64(x))
	return T(v), xerr
}

func sinhCosh(t *tables.Table, x int64) (int64, int64) {
	if s, c, sat := policy.Hyperbolic(t, x); sat {
		return s, c
	}

	f := t.Format
	a := f.Abs(x)
	switch {
	case a < t.Limits.SmallArg:
		s, c := refine.SinhCoshSmall(t, t.Widen(x))
		return t.Narrow(s), t.Narrow(c)
	case a <= f.One():
		s, c := kernel.SinhCosh(t, t.Widen(x))
		return t.Narrow(s), t.Narrow(c)
	}

	// a = k*ln2 + r: e^a = e^r*2^k and e^-a = e^-r*2^-k, both summed over
	// the common denominator 2^(K+k+1) and rounded once.
	r := reduce.Exp(t, a, f.FracBits)
	s, c := kernel.SinhCosh(t, r.R)
	ep := fxnum.WideOf(c + s).Lsh(uint(2 * r.K))
	em := fxnum.WideOf(c - s)
	n := t.Work.FracBits - f.FracBits + uint(r.K) + 1

	sinh := ep.Sub(em).RshRound(n).Clamp(f)
	cosh := ep.Add(em).RshRound(n).Clamp(f)
	return neg(sinh, x < 0), cosh
}

// tanhWork returns tanh x in work precision for a raw output value x.
func tanhWork(t *tables.Table, x int64) int64 {
	if v, sat := policy.Tanh(t, x); sat {
		return t.Widen(v)
	}

	f, w := t.Format, t.Work
	a := f.Abs(x)
	switch {
	case a < t.Limits.SmallArg:
		s, c := refine.SinhCoshSmall(t, t.Widen(x))
		return w.Div(s, c)
	case a <= f.One():
		s, c := kernel.SinhCosh(t, t.Widen(x))
		return w.Div(s, c)
	}

	// tanh a = (1 - e^-2a) / (1 + e^-2a)
	r := reduce.Exp(t, -2*a, f.FracBits)
	e := w.Scale(expWork(t, r.R), r.K)
	one := w.One()
	return neg(w.Div(one-e, one+e), x < 0)
}

// asinhWork returns asinh v in work precision for |v| < 2.
func asinhWork(t *tables.Table, v int64) int64 {
	w := t.Work
	a := w.Abs(v)
	if a < smallArg(t) {
		return refine.AsinhSmall(t, v)
	}
	// ln(a + sqrt(a^2 + 1))
	sq := refine.SqrtWork(t, w.Add(w.Mul(a, a), w.One()))
	return neg(refine.LnWork(t, a+sq, w.FracBits), v < 0)
}

func asinh(t *tables.Table, x int64) int64 {
	f, w := t.Format, t.Work
	a := f.Abs(x)
	if a < 2*f.One() {
		return t.Narrow(asinhWork(t, t.Widen(x)))
	}
	// ln(a) + ln(1 + sqrt(1 + 1/a^2))
	inv := recipWork(t, a)
	u := w.One() + refine.SqrtWork(t, w.One()+w.Mul(inv, inv))
	v := w.Add(refine.LnWork(t, a, f.FracBits), refine.LnWork(t, u, w.FracBits))
	return neg(t.Narrow(v), x < 0)
}

func acosh(t *tables.Table, x int64) (int64, xerrors.XError) {
	if xerr := policy.Check(t, types.FuncAcosh, x); xerr != nil {
		return 0, xerr
	}
	f, w := t.Format, t.Work
	one := w.One()
	if x < 2*f.One() {
		// acosh x = asinh sqrt(x^2 - 1)
		xw := t.Widen(x)
		d := refine.SqrtWork(t, w.Mul(xw-one, xw+one))
		return t.Narrow(asinhWork(t, d)), nil
	}
	// ln(x) + ln(1 + sqrt(1 - 1/x^2))
	inv := recipWork(t, x)
	u := one + refine.SqrtWork(t, one-w.Mul(inv, inv))
	return t.Narrow(w.Add(refine.LnWork(t, x, f.FracBits), refine.LnWork(t, u, w.FracBits))), nil
}

// atanhWork returns atanh v in work precision for |v| <= 3/4.
func atanhWork(t *tables.Table, v int64) int64 {
	if a := t.Work.Abs(v); a < smallArg(t) {
		return refine.AtanhSmall(t, v)
	}
	return kernel.Atanh(t, t.Work.One(), v)
}

// halfLnRatio returns ln(p/q)/2 in work precision for p, q > 0.
func halfLnRatio(t *tables.Table, p, q int64) int64 {
	w := t.Work
	d := w.Sub(refine.LnWork(t, p, w.FracBits), refine.LnWork(t, q, w.FracBits))
	return w.ShrRound(d, 1)
}

func atanh(t *tables.Table, x int64) (int64, xerrors.XError) {
	if xerr := policy.Check(t, types.FuncAtanh, x); xerr != nil {
		return 0, xerr
	}
	w := t.Work
	xw := t.Widen(x)
	if w.Abs(xw) <= 3*w.One()/4 {
		return t.Narrow(atanhWork(t, xw)), nil
	}
	one := w.One()
	return t.Narrow(halfLnRatio(t, one+xw, one-xw)), nil
}

func acoth(t *tables.Table, x int64) (int64, xerrors.XError) {
	if xerr := policy.Check(t, types.FuncAcoth, x); xerr != nil {
		return 0, xerr
	}
	f, w := t.Format, t.Work
	a := f.Abs(x)
	if a < 2*f.One() {
		aw := t.Widen(a)
		v := halfLnRatio(t, aw+w.One(), aw-w.One())
		return neg(t.Narrow(v), x < 0), nil
	}
	// acoth a = atanh(1/a)
	return neg(t.Narrow(atanhWork(t, recipWork(t, a))), x < 0), nil
}

func coth(t *tables.Table, x int64) (int64, xerrors.XError) {
	if xerr := policy.Check(t, types.FuncCoth, x); xerr != nil {
		return 0, xerr
	}
	if t.Format.Abs(x) < t.Limits.SmallArg {
		return refine.CothSmall(t, x), nil
	}
	w := t.Work
	return t.Narrow(w.Div(w.One(), tanhWork(t, x))), nil
}
