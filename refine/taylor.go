package refine

import (
	"github.com/beatoz/fxmath-go/libs/fixedutil"
	"github.com/beatoz/fxmath-go/libs/fxnum"
	"github.com/beatoz/fxmath-go/tables"
)

var (
	// cot(d) - 1/d = -d/3 * (1 + d^2/15 * (1 + 2d^2/21))
	cotRatios = []fixedutil.Ratio{{Num: 1, Den: 15}, {Num: 2, Den: 21}}

	// coth(d) - 1/d = d/3 * (1 - d^2/15 * (1 - 2d^2/21))
	cothRatios = []fixedutil.Ratio{{Num: -1, Den: 15}, {Num: -2, Den: 21}}

	third = fixedutil.Ratio{Num: 1, Den: 3}
)

// SinCosSmall returns sin r and cos r by Taylor series, for |r| < 2^-4 in
// work precision.
func SinCosSmall(t *tables.Table, r int64) (sin, cos int64) {
	w := t.Work
	return fixedutil.OddSeries(w, r, fixedutil.SinRatios), fixedutil.EvenSeries(w, r, fixedutil.CosRatios)
}

// SinhCoshSmall is SinCosSmall for sinh and cosh.
func SinhCoshSmall(t *tables.Table, r int64) (sinh, cosh int64) {
	w := t.Work
	return fixedutil.OddSeries(w, r, fixedutil.SinhRatios), fixedutil.EvenSeries(w, r, fixedutil.CoshRatios)
}

// ExpSmall returns e^r by Taylor series for a small r in work precision.
func ExpSmall(t *tables.Table, r int64) int64 {
	return fixedutil.Horner(t.Work, r, fixedutil.ExpRatios)
}

func AsinhSmall(t *tables.Table, x int64) int64 {
	return fixedutil.OddSeries(t.Work, x, fixedutil.AsinhRatios)
}

func AtanhSmall(t *tables.Table, x int64) int64 {
	return fixedutil.OddSeries(t.Work, x, fixedutil.AtanhRatios)
}

// CotPole returns cot(d) in the output format for a small d given in Q61.
// The pole term 1/d is divided straight out of the Q61 residual so it
// keeps full output precision however close d is to zero.
func CotPole(t *tables.Table, d int64) int64 {
	return poleSeries(t, d, cotRatios, -1)
}

// CothSmall returns coth(x) in the output format for a small x != 0 given
// in the output format.
func CothSmall(t *tables.Table, x int64) int64 {
	d := fxnum.WideOf(x).Lsh(tables.ExtFracBits - t.Format.FracBits)
	v, _ := d.Int64()
	return poleSeries(t, v, cothRatios, 1)
}

func poleSeries(t *tables.Table, d int64, ratios []fixedutil.Ratio, sign int64) int64 {
	f, w := t.Format, t.Work
	inv := fxnum.WideOf(1).Lsh(f.FracBits + tables.ExtFracBits).QuoRound(d).Clamp(f)

	dw := w.ShrRound(d, tables.ExtFracBits-w.FracBits)
	tail := fixedutil.MulRatio(w, w.Mul(dw, fixedutil.Horner(w, w.Mul(dw, dw), ratios)), third)
	return f.Add(inv, sign*t.Narrow(tail))
}
