// Package reduce maps arbitrary arguments into the ranges where the
// CORDIC engine and the refinement stage converge, and records what is
// needed to reconstruct the final result.
//
// Arguments arrive as raw values with a given number of fractional bits.
// Reduced values are returned in the work precision of the table.
// Reductions against pi/2 and ln 2 are carried out in Q61 with exact
// 256-bit products, so the only rounding is the final one into work
// precision.
package reduce

import (
	"math/bits"

	"github.com/beatoz/fxmath-go/libs/fxnum"
	"github.com/beatoz/fxmath-go/tables"
)

// Quadrant is x = k*pi/2 + r with |r| <= pi/4.
type Quadrant struct {
	// R is r in work precision.
	R int64
	// Index is k mod 4.
	Index int
	// Residual is r in Q61. For odd k it is the signed distance from
	// the pole of tan at k*pi/2.
	Residual int64
}

// Scaled is x = k*ln2 + r for exp, or x = k + r/ln2 for pow2.
type Scaled struct {
	R int64
	K int
}

// Mantissa is x = m * 2^k with m in [sqrt(1/2), sqrt(2)).
type Mantissa struct {
	M int64
	K int
}

// Angle reduces x, given in the output format of t, by multiples of pi/2.
// pi/2 is used as HalfPi + HalfPiLo*2^-123, which keeps the residual
// exact to Q61 for every representable x.
func Angle(t *tables.Table, x int64) Quadrant {
	frac := t.Format.FracBits
	kw := fxnum.WideMul(x, t.Ext.TwoOverPi).RshRound(frac + tables.ExtFracBits)
	k, _ := kw.Int64()

	r := fxnum.WideOf(x).Lsh(tables.ExtFracBits - frac).
		Sub(fxnum.WideMul(k, t.Ext.HalfPi)).
		Sub(fxnum.WideMul(k, t.Ext.HalfPiLo).RshRound(tables.ExtLoShift))
	res, _ := r.Int64()

	return Quadrant{
		R:        t.Work.ShrRound(res, tables.ExtFracBits-t.Work.FracBits),
		Index:    int(k & 3),
		Residual: res,
	}
}

// Exp splits x, held with frac fractional bits, as k*ln2 + r.
func Exp(t *tables.Table, x int64, frac uint) Scaled {
	kw := fxnum.WideMul(x, t.Ext.InvLn2).RshRound(frac + tables.ExtFracBits)
	k, _ := kw.Int64()
	r := fxnum.WideOf(x).Lsh(tables.ExtFracBits - frac).Sub(fxnum.WideMul(k, t.Ext.Ln2))
	return Scaled{
		R: r.RshRound(tables.ExtFracBits - t.Work.FracBits).Clamp(t.Work),
		K: int(k),
	}
}

// Pow2 splits x, held with frac fractional bits, as k + f with |f| <= 1/2
// and returns r = f*ln2, so that 2^x = e^r * 2^k.
func Pow2(t *tables.Table, x int64, frac uint) Scaled {
	k, _ := fxnum.WideOf(x).RshRound(frac).Int64()
	f := x - k<<frac
	r := fxnum.WideMul(f, t.Ext.Ln2).RshRound(frac + tables.ExtFracBits - t.Work.FracBits)
	return Scaled{R: r.Clamp(t.Work), K: int(k)}
}

// Log normalises x > 0, held with frac fractional bits, to m * 2^k.
func Log(t *tables.Table, x int64, frac uint) Mantissa {
	l := bits.Len64(uint64(x))
	// m in [1, 2)
	k := l - 1 - int(frac)
	m := shift(x, int(t.Work.FracBits)-(l-1))
	if m >= t.Const.SqrtTwo {
		k++
		m = shift(x, int(t.Work.FracBits)-l)
	}
	return Mantissa{M: m, K: k}
}

// Pair scales (x, y) by a common power of two into work precision so that
// max(|x|, |y|) lies in [1, 2). The ratio y/x is unchanged up to rounding.
func Pair(t *tables.Table, x, y int64) (int64, int64) {
	l := bits.Len64(absU(x))
	if ly := bits.Len64(absU(y)); ly > l {
		l = ly
	}
	if l == 0 {
		return 0, 0
	}
	s := int(t.Work.FracBits) - (l - 1)
	return shift(x, s), shift(y, s)
}

// shift returns x*2^s, rounding when s < 0. The result must fit in int64.
func shift(x int64, s int) int64 {
	w := fxnum.WideOf(x)
	if s >= 0 {
		w = w.Lsh(uint(s))
	} else {
		w = w.RshRound(uint(-s))
	}
	v, _ := w.Int64()
	return v
}

func absU(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}
