// Package fixedutil provides deterministic power-series helpers over raw
// fixed-point values. Every series is evaluated with Horner's method:
//
//	1 + u*r0*(1 + u*r1*(1 + ... (1 + u*rN)))
//
// where r_k is the ratio between consecutive terms.
package fixedutil

import (
	"github.com/beatoz/fxmath-go/libs/fxnum"
)

// seriesTerms is enough for |u| <= 0.01 at 48 fractional bits.
const seriesTerms = 12

// Ratio is the exact rational factor Num/Den between two series terms.
type Ratio struct {
	Num, Den int64
}

var (
	// sin(x)/x: -1/(2*3), -1/(4*5), ...
	SinRatios = func() []Ratio {
		r := make([]Ratio, seriesTerms)
		for k := 0; k < seriesTerms; k++ {
			r[k] = Ratio{-1, int64((2*k + 2) * (2*k + 3))}
		}
		return r
	}()

	// cos(x): -1/(1*2), -1/(3*4), ...
	CosRatios = func() []Ratio {
		r := make([]Ratio, seriesTerms)
		for k := 0; k < seriesTerms; k++ {
			r[k] = Ratio{-1, int64((2*k + 1) * (2*k + 2))}
		}
		return r
	}()

	SinhRatios = negated(SinRatios)
	CoshRatios = negated(CosRatios)

	// atanh(x)/x: 1/3, 3/5, 5/7, ...
	AtanhRatios = func() []Ratio {
		r := make([]Ratio, seriesTerms)
		for k := 0; k < seriesTerms; k++ {
			r[k] = Ratio{int64(2*k + 1), int64(2*k + 3)}
		}
		return r
	}()

	// asinh(x)/x: -1/6, -9/20, -25/42, ...
	AsinhRatios = func() []Ratio {
		r := make([]Ratio, seriesTerms)
		for k := 0; k < seriesTerms; k++ {
			n := int64(2*k + 1)
			r[k] = Ratio{-n * n, int64((2*k + 2) * (2*k + 3))}
		}
		return r
	}()

	// exp(x): 1/1, 1/2, 1/3, ...
	ExpRatios = func() []Ratio {
		r := make([]Ratio, seriesTerms)
		for k := 0; k < seriesTerms; k++ {
			r[k] = Ratio{1, int64(k + 1)}
		}
		return r
	}()
)

func negated(src []Ratio) []Ratio {
	r := make([]Ratio, len(src))
	for i, v := range src {
		r[i] = Ratio{-v.Num, v.Den}
	}
	return r
}

// MulRatio returns a*Num/Den rounded to nearest.
func MulRatio(f fxnum.Format, a int64, r Ratio) int64 {
	return fxnum.WideMul(a, r.Num).QuoRound(r.Den).Clamp(f)
}

// Horner evaluates 1 + u*r0*(1 + u*r1*(...)) in format f.
func Horner(f fxnum.Format, u int64, ratios []Ratio) int64 {
	one := f.One()
	s := one
	for k := len(ratios) - 1; k >= 0; k-- {
		s = f.Add(one, MulRatio(f, f.Mul(u, s), ratios[k]))
	}
	return s
}

// OddSeries returns x*Horner(x^2), the form shared by sin, sinh, atanh
// and asinh.
func OddSeries(f fxnum.Format, x int64, ratios []Ratio) int64 {
	return f.Mul(x, Horner(f, f.Mul(x, x), ratios))
}

// EvenSeries returns Horner(x^2), the form shared by cos and cosh.
func EvenSeries(f fxnum.Format, x int64, ratios []Ratio) int64 {
	return Horner(f, f.Mul(x, x), ratios)
}
