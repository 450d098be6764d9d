package refine

import (
	"github.com/beatoz/fxmath-go/kernel"
	"github.com/beatoz/fxmath-go/libs/fixedutil"
	"github.com/beatoz/fxmath-go/libs/fxnum"
	"github.com/beatoz/fxmath-go/reduce"
	"github.com/beatoz/fxmath-go/tables"
)

// halfLnArg returns atanh((m-1)/(m+1)) = ln(m)/2 for m in [sqrt(1/2),
// sqrt(2)). Near m = 1 the series keeps the relative precision that the
// CORDIC iterations lose.
func halfLnArg(t *tables.Table, m int64) int64 {
	w := t.Work
	one := w.One()
	if d := m - one; d > -one>>4 && d < one>>4 {
		u := w.Div(d, m+one)
		return fixedutil.OddSeries(w, u, fixedutil.AtanhRatios)
	}
	return kernel.Atanh(t, m+one, m-one)
}

// LnWork returns ln(x) in work precision for x > 0 held with frac
// fractional bits.
func LnWork(t *tables.Table, x int64, frac uint) int64 {
	r := reduce.Log(t, x, frac)
	z := halfLnArg(t, r.M)
	kln2 := fxnum.WideMul(int64(r.K), t.Ext.Ln2).RshRound(tables.ExtFracBits - t.Work.FracBits)
	return t.Work.Add(2*z, kln2.Clamp(t.Work))
}

// Log2Work returns log2(x) in work precision. The integer part is exact.
func Log2Work(t *tables.Table, x int64, frac uint) int64 {
	r := reduce.Log(t, x, frac)
	z := halfLnArg(t, r.M)
	w := t.Work
	return w.Add(w.Shl(int64(r.K), w.FracBits), w.Mul(2*z, t.Const.InvLn2))
}

// Log10Work returns log10(x) in work precision.
func Log10Work(t *tables.Table, x int64, frac uint) int64 {
	return t.Work.Mul(LnWork(t, x, frac), t.Const.InvLn10)
}
