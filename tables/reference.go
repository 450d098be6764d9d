package tables

import (
	"math"

	"github.com/beatoz/fxmath-go/libs/fxnum"
	"github.com/shopspring/decimal"
)

// RefDigits is the number of decimal places carried by the reference
// series. 60 digits exceed 2^-123, the finest constant stored in a table.
const RefDigits = 60

var (
	decOne  = decimal.NewFromInt(1)
	decTwo  = decimal.NewFromInt(2)
	decHalf = decimal.RequireFromString("0.5")
	decEps  = decimal.New(1, -RefDigits-4)
)

func quo(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, RefDigits+8)
}

// atanSeries sums x - x^3/3 + x^5/5 - ... for |x| <= 1/4.
func atanSeries(x decimal.Decimal) decimal.Decimal {
	x2 := x.Mul(x).Round(RefDigits + 8)
	sum, pow := x, x
	for k := int64(1); ; k++ {
		pow = pow.Mul(x2).Neg().Round(RefDigits + 8)
		term := quo(pow, decimal.NewFromInt(2*k+1))
		if term.Abs().LessThan(decEps) {
			return sum
		}
		sum = sum.Add(term)
	}
}

// atanhSeries sums x + x^3/3 + x^5/5 + ... for |x| <= 1/2.
func atanhSeries(x decimal.Decimal) decimal.Decimal {
	x2 := x.Mul(x).Round(RefDigits + 8)
	sum, pow := x, x
	for k := int64(1); ; k++ {
		pow = pow.Mul(x2).Round(RefDigits + 8)
		term := quo(pow, decimal.NewFromInt(2*k+1))
		if term.Abs().LessThan(decEps) {
			return sum
		}
		sum = sum.Add(term)
	}
}

// RefSqrt returns the square root of x >= 0 by Newton's iteration.
func RefSqrt(x decimal.Decimal) decimal.Decimal {
	if x.Sign() <= 0 {
		return decimal.Zero
	}
	g := decimal.NewFromFloat(math.Sqrt(x.InexactFloat64()))
	if g.Sign() <= 0 {
		g = decOne
	}
	for i := 0; i < 200; i++ {
		next := g.Add(quo(x, g)).Mul(decHalf).Round(RefDigits + 8)
		if next.Sub(g).Abs().LessThan(decEps) {
			return next
		}
		g = next
	}
	return g
}

// RefPi returns pi from Machin's formula, 16 atan(1/5) - 4 atan(1/239).
func RefPi() decimal.Decimal {
	a := atanSeries(quo(decOne, decimal.NewFromInt(5)))
	b := atanSeries(quo(decOne, decimal.NewFromInt(239)))
	return a.Mul(decimal.NewFromInt(16)).Sub(b.Mul(decimal.NewFromInt(4)))
}

// RefAtan returns atan(x). Arguments above 1/4 are halved with
// atan(x) = 2 atan(x / (1 + sqrt(1 + x^2))) until the series converges fast.
func RefAtan(x decimal.Decimal) decimal.Decimal {
	quarter := decimal.RequireFromString("0.25")
	doublings := 0
	for x.Abs().GreaterThan(quarter) {
		x = quo(x, decOne.Add(RefSqrt(decOne.Add(x.Mul(x)))))
		doublings++
	}
	r := atanSeries(x)
	for ; doublings > 0; doublings-- {
		r = r.Mul(decTwo)
	}
	return r
}

// RefAtanh returns atanh(x) for |x| <= 1/2.
func RefAtanh(x decimal.Decimal) decimal.Decimal {
	return atanhSeries(x)
}

// RefLn2 returns ln 2 = 2 atanh(1/3).
func RefLn2() decimal.Decimal {
	return atanhSeries(quo(decOne, decimal.NewFromInt(3))).Mul(decTwo)
}

// RefLn10 returns ln 10 = 3 ln 2 + 2 atanh(1/9).
func RefLn10() decimal.Decimal {
	return RefLn2().Mul(decimal.NewFromInt(3)).
		Add(atanhSeries(quo(decOne, decimal.NewFromInt(9))).Mul(decTwo))
}

// RefLn returns ln(x) for x > 0. x is normalised to m*2^k with m in
// [0.75, 1.5], then ln m = 2 atanh((m-1)/(m+1)).
func RefLn(x decimal.Decimal) decimal.Decimal {
	if x.Sign() <= 0 {
		return decimal.Zero
	}
	lo, hi := decimal.RequireFromString("0.75"), decimal.RequireFromString("1.5")
	k := int64(0)
	for x.GreaterThan(hi) {
		x = x.Mul(decHalf)
		k++
	}
	for x.LessThan(lo) {
		x = x.Mul(decTwo)
		k--
	}
	r := atanhSeries(quo(x.Sub(decOne), x.Add(decOne))).Mul(decTwo)
	return r.Add(RefLn2().Mul(decimal.NewFromInt(k)))
}

// RefExp returns e^x. x is split as k*ln2 + r with |r| <= ln2/2.
func RefExp(x decimal.Decimal) decimal.Decimal {
	ln2 := RefLn2()
	k := quo(x, ln2).Round(0)
	r := x.Sub(k.Mul(ln2))
	sum, term := decOne, decOne
	for n := int64(1); ; n++ {
		term = quo(term.Mul(r), decimal.NewFromInt(n))
		if term.Abs().LessThan(decEps) {
			break
		}
		sum = sum.Add(term)
	}
	scale := fxnum.Pow2Decimal(uint(abs64(k.IntPart())))
	if k.Sign() < 0 {
		return quo(sum, scale)
	}
	return sum.Mul(scale)
}

// RefE returns e as the sum of 1/k!.
func RefE() decimal.Decimal {
	sum, term := decOne, decOne
	for k := int64(1); ; k++ {
		term = quo(term, decimal.NewFromInt(k))
		if term.LessThan(decEps) {
			return sum
		}
		sum = sum.Add(term)
	}
}

// toRaw rounds d to the nearest integer multiple of 2^-frac.
func toRaw(d decimal.Decimal, frac uint) int64 {
	return d.Mul(fxnum.Pow2Decimal(frac)).Round(0).IntPart()
}

func floorRaw(d decimal.Decimal, frac uint) int64 {
	return d.Mul(fxnum.Pow2Decimal(frac)).Floor().IntPart()
}

func ceilRaw(d decimal.Decimal, frac uint) int64 {
	return d.Mul(fxnum.Pow2Decimal(frac)).Ceil().IntPart()
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
