// Package ops is the function surface of the engine. Every function is
// generic over the fixed-point width and pure: it reads only the shared
// immutable table of its width.
//
// Total functions always return a value, saturating at the extremes of
// the format. Fallible functions check their domain before any
// computation and return a domain error outside it.
package ops

import (
	"github.com/beatoz/fxmath-go/kernel"
	"github.com/beatoz/fxmath-go/libs/fxnum"
	"github.com/beatoz/fxmath-go/policy"
	"github.com/beatoz/fxmath-go/refine"
	"github.com/beatoz/fxmath-go/tables"
	"github.com/beatoz/fxmath-go/types"
)

func table[T types.Number]() *tables.Table {
	var zero T
	switch any(zero).(type) {
	case types.I16F16:
		return tables.Q16()
	case types.I32F32:
		return tables.Q32()
	}
	panic("unreachable")
}

// Table returns the shared table used for T.
func Table[T types.Number]() *tables.Table {
	return table[T]()
}

func Pi[T types.Number]() T {
	return T(table[T]().OutConst.Pi)
}

func HalfPi[T types.Number]() T {
	return T(table[T]().OutConst.HalfPi)
}

func E[T types.Number]() T {
	return T(table[T]().OutConst.E)
}

func Ln2[T types.Number]() T {
	return T(table[T]().OutConst.Ln2)
}

func Ln10[T types.Number]() T {
	return T(table[T]().OutConst.Ln10)
}

func smallArg(t *tables.Table) int64 {
	return t.Widen(t.Limits.SmallArg)
}

// expWork returns e^r in work precision for |r| <= 1. Near zero the
// series is used, which also makes e^0 exactly one.
func expWork(t *tables.Table, r int64) int64 {
	if t.Work.Abs(r) < smallArg(t) {
		return refine.ExpSmall(t, r)
	}
	s, c := kernel.SinhCosh(t, r)
	return c + s
}

// scaleOut returns v*2^k, v in work precision, as a raw output value.
func scaleOut(t *tables.Table, v int64, k int) int64 {
	s := k - int(t.Work.FracBits-t.Format.FracBits)
	w := fxnum.WideOf(v)
	if s >= 0 {
		w = w.Lsh(uint(s))
	} else {
		w = w.RshRound(uint(-s))
	}
	return policy.Clamp(t, w)
}

// recipWork returns 1/a in work precision for an output value a >= 1.
func recipWork(t *tables.Table, a int64) int64 {
	return fxnum.WideOf(1).Lsh(t.Work.FracBits + t.Format.FracBits).QuoRound(a).Clamp(t.Work)
}

func neg(x int64, negative bool) int64 {
	if negative {
		return -x
	}
	return x
}
