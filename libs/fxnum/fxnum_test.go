package fxnum

import (
	"math"
	"math/rand"
	"testing"

	"github.com/beatoz/fxmath-go/types/xerrors"
	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	numCount = 100
	q16Nums  []int64
	q32Nums  []int64
)

func init() {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < numCount; i++ {
		q16Nums = append(q16Nums, rnd.Int63n(1<<24)-1<<23)
		q32Nums = append(q32Nums, rnd.Int63n(1<<48)-1<<47)
	}
}

func Test_FormatBounds(t *testing.T) {
	require.Equal(t, int64(math.MaxInt32), Q16_16.Max())
	require.Equal(t, int64(math.MinInt32), Q16_16.Min())
	require.Equal(t, int64(math.MaxInt64), Q32_32.Max())
	require.Equal(t, int64(math.MinInt64), Q32_32.Min())
	require.Equal(t, int64(65536), Q16_16.One())
	require.Equal(t, "I16F16", Q16_16.String())

	require.True(t, Q16_16.Valid())
	require.True(t, Q32_32.Valid())
	require.False(t, Format{IntBits: 2, FracBits: 16}.Valid())
	require.False(t, Format{IntBits: 16, FracBits: 4}.Valid())
	require.False(t, Format{IntBits: 32, FracBits: 40}.Valid())
}

func Test_AddSubSaturate(t *testing.T) {
	for _, f := range []Format{Q16_16, Q32_32} {
		require.Equal(t, f.Max(), f.Add(f.Max(), 1))
		require.Equal(t, f.Min(), f.Add(f.Min(), -1))
		require.Equal(t, f.Max(), f.Sub(f.Max(), -5))
		require.Equal(t, f.Min(), f.Sub(f.Min(), 5))
		require.Equal(t, int64(-1), f.Add(f.Max(), f.Min()))
		require.Equal(t, f.Max(), f.Neg(f.Min()))
		require.Equal(t, f.Max(), f.Abs(f.Min()))
		require.Equal(t, 3*f.One(), f.Add(f.One(), 2*f.One()))
	}
}

func Test_MulRounding(t *testing.T) {
	for _, f := range []Format{Q16_16, Q32_32} {
		half := f.One() / 2
		require.Equal(t, half/2, f.Mul(half, half))
		require.Equal(t, 6*f.One(), f.Mul(2*f.One(), 3*f.One()))
		require.Equal(t, -6*f.One(), f.Mul(-2*f.One(), 3*f.One()))

		// 1 ulp * 0.5 is exactly half an ulp: ties go away from zero.
		require.Equal(t, int64(1), f.Mul(1, half))
		require.Equal(t, int64(-1), f.Mul(-1, half))
		// 1 ulp * 0.25 rounds to zero.
		require.Equal(t, int64(0), f.Mul(1, half/2))

		require.Equal(t, f.Max(), f.Mul(f.Max(), 2*f.One()))
		require.Equal(t, f.Min(), f.Mul(f.Max(), -2*f.One()))
	}
}

func Test_DivRounding(t *testing.T) {
	for _, f := range []Format{Q16_16, Q32_32} {
		one := f.One()
		require.Equal(t, one/2, f.Div(one, 2*one))
		require.Equal(t, -one/4, f.Div(one, -4*one))

		third := f.Div(one, 3*one)
		require.Equal(t, (one+1)/3, third)

		require.Equal(t, f.Max(), f.Div(one, 0))
		require.Equal(t, f.Min(), f.Div(-one, 0))
		require.Equal(t, int64(0), f.Div(0, 0))
		require.Equal(t, f.Max(), f.Div(f.Max(), 1))
		require.Equal(t, f.Min(), f.Div(f.Max(), -1))
	}
}

func Test_MulDivAgainstFloat(t *testing.T) {
	for i := 0; i < numCount; i++ {
		a, b := q16Nums[i], q16Nums[(i+1)%numCount]
		fa, fb := Q16_16.ToFloat64(a), Q16_16.ToFloat64(b)
		require.InDelta(t, fa*fb, Q16_16.ToFloat64(Q16_16.Mul(a, b)), 1.0/(1<<16))
		if math.Abs(fa/fb) < 30000 {
			require.InDelta(t, fa/fb, Q16_16.ToFloat64(Q16_16.Div(a, b)), 1.0/(1<<16))
		}

		a, b = q32Nums[i], q32Nums[(i+1)%numCount]
		fa, fb = Q32_32.ToFloat64(a), Q32_32.ToFloat64(b)
		require.InEpsilon(t, fa*fb, Q32_32.ToFloat64(Q32_32.Mul(a, b)), 1e-9)
		require.InEpsilon(t, fa/fb, Q32_32.ToFloat64(Q32_32.Div(a, b)), 1e-6)
	}
}

func Test_Shifts(t *testing.T) {
	f := Q16_16
	require.Equal(t, int64(-2), f.Shr(-3, 1))
	require.Equal(t, int64(1), f.Shr(3, 1))
	require.Equal(t, int64(2), f.ShrRound(3, 1))
	require.Equal(t, int64(-2), f.ShrRound(-3, 1))
	require.Equal(t, int64(-1), f.ShrRound(-5, 2))
	require.Equal(t, f.Max(), f.Shl(f.One(), 15))
	require.Equal(t, f.One()<<14, f.Shl(f.One(), 14))
	require.Equal(t, f.Min(), f.Shl(-f.One(), 15))
	require.Equal(t, -f.One()<<14, f.Shl(-f.One(), 14))
	require.Equal(t, f.One()/4, f.Scale(f.One(), -2))
	require.Equal(t, f.One()*4, f.Scale(f.One(), 2))
	require.Equal(t, f.One(), f.Convert(Q32_32.One(), 32))
	require.Equal(t, Q32_32.One(), Q32_32.Convert(f.One(), 16))
}

func Test_Wide(t *testing.T) {
	w := WideMul(math.MaxInt64, math.MaxInt64)
	_, ok := w.Int64()
	require.False(t, ok)
	require.Equal(t, 126, w.BitLen())
	require.Equal(t, Q32_32.Max(), w.Clamp(Q32_32))
	require.Equal(t, Q32_32.Min(), w.Neg().Clamp(Q32_32))

	v, ok := WideMul(-3, 5).Add(WideOf(1)).Int64()
	require.True(t, ok)
	require.Equal(t, int64(-14), v)

	v, _ = WideOf(-7).RshRound(1).Int64()
	require.Equal(t, int64(-4), v)
	v, _ = WideOf(-7).Rsh(1).Int64()
	require.Equal(t, int64(-4), v)
	v, _ = WideOf(-5).Rsh(1).Int64()
	require.Equal(t, int64(-3), v)
	v, _ = WideOf(7).RshRound(1).Int64()
	require.Equal(t, int64(4), v)

	v, _ = WideOf(1).Lsh(100).QuoRound(3).RshRound(98).Int64()
	require.Equal(t, int64(1), v) // 4/3 rounds to 1

	v, _ = WideOf(-10).QuoRound(4).Int64()
	require.Equal(t, int64(-3), v)

	v, ok = WideOf(math.MinInt64).Int64()
	require.True(t, ok)
	require.Equal(t, int64(math.MinInt64), v)

	require.Equal(t, -1, WideOf(-2).Cmp(WideOf(1)))
	require.Equal(t, 1, WideOf(2).Cmp(WideOf(-1)))
	require.Equal(t, 0, WideOf(2).Cmp(WideOf(2)))
}

func Test_DecimalConversions(t *testing.T) {
	raw := Q16_16.FromDecimal(decimal.RequireFromString("1.5"))
	require.Equal(t, int64(3<<15), raw)
	require.Equal(t, "1.5", Q16_16.Text(raw))
	require.Equal(t, "-0.0000152587890625", Q16_16.Text(-1))
	require.Equal(t, "0.00000000023283064365386962890625", Q32_32.Text(1))

	// 0.1 is not representable; it rounds to nearest.
	require.Equal(t, int64(6554), Q16_16.FromDecimal(decimal.RequireFromString("0.1")))
	require.Equal(t, int64(-6554), Q16_16.FromDecimal(decimal.RequireFromString("-0.1")))
	require.Equal(t, Q16_16.Max(), Q16_16.FromDecimal(decimal.NewFromInt(1_000_000)))

	raw, xerr := Q32_32.Parse(" -2.25 ")
	require.NoError(t, xerr)
	require.Equal(t, -9*Q32_32.One()/4, raw)

	_, xerr = Q16_16.Parse("40000")
	require.Error(t, xerr)
	require.True(t, xerr.Contains(xerrors.ErrOverFlow))

	_, xerr = Q16_16.Parse("abc")
	require.Error(t, xerr)
	require.True(t, xerr.Contains(xerrors.ErrInvalidFormat))
}

func Test_FloatConversions(t *testing.T) {
	require.Equal(t, int64(32768), Q16_16.FromFloat64(0.5))
	require.Equal(t, int64(-32768), Q16_16.FromFloat64(-0.5))
	require.Equal(t, Q16_16.Max(), Q16_16.FromFloat64(1e9))
	require.Equal(t, Q16_16.Min(), Q16_16.FromFloat64(-1e9))
	require.Equal(t, Q32_32.Max(), Q32_32.FromFloat64(math.Inf(1)))
	require.Equal(t, int64(0), Q32_32.FromFloat64(math.NaN()))
	require.Equal(t, 0.5, Q16_16.ToFloat64(32768))
}

func Test_ToFixed(t *testing.T) {
	require.Equal(t, "0.3333333", Q32_32.ToFixed(Q32_32.One()/3).String())
	require.Equal(t, fixed.NewI(15, 1), Q16_16.ToFixed(3<<15))
	require.Equal(t, "-2.25", Q16_16.ToFixed(-9<<14).String())
	require.Equal(t, "32767.9999847", Q16_16.ToFixed(Q16_16.Max()).String())
}

func Benchmark_Q16_Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Q16_16.Mul(q16Nums[i%numCount], q16Nums[(i+1)%numCount])
	}
}

func Benchmark_Q32_Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Q32_32.Mul(q32Nums[i%numCount], q32Nums[(i+1)%numCount])
	}
}

func Benchmark_Q32_Div(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Q32_32.Div(q32Nums[i%numCount], q32Nums[(i+1)%numCount]|1)
	}
}
