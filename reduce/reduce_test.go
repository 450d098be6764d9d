package reduce

import (
	"math"
	"testing"

	"github.com/beatoz/fxmath-go/tables"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// refRemainder returns x - k*pi/2 and k, from the decimal reference pi.
func refRemainder(x decimal.Decimal) (float64, int64) {
	halfPi := tables.RefPi().DivRound(decimal.NewFromInt(2), 70)
	k := x.DivRound(halfPi, 40).Round(0)
	return x.Sub(k.Mul(halfPi)).InexactFloat64(), k.IntPart()
}

func Test_Angle(t *testing.T) {
	for _, tbl := range []*tables.Table{tables.Q16(), tables.Q32()} {
		f, w := tbl.Format, tbl.Work
		inputs := []float64{0, 0.5, -0.5, 0.785, 0.786, 1.5707, 1.5709, 3.14159, -3.14159, 10, -77.7, 1000.25, 32767.5}
		if f.FracBits == 32 {
			inputs = append(inputs, 1e6, -2e9, 2147483647.5)
		}
		for _, v := range inputs {
			x := f.FromFloat64(v)
			q := Angle(tbl, x)
			r, k := refRemainder(f.ToDecimal(x))
			require.InDelta(t, r, w.ToFloat64(q.R), math.Ldexp(1, -int(w.FracBits)), "x=%v", v)
			// Q61 residual against a float64 rendering of the exact remainder
			require.InDelta(t, r, math.Ldexp(float64(q.Residual), -tables.ExtFracBits), 4e-16*math.Max(1, math.Abs(v)), "x=%v", v)
			require.Equal(t, int(((k%4)+4)%4), q.Index, "x=%v", v)
			require.LessOrEqual(t, math.Abs(w.ToFloat64(q.R)), math.Pi/4+1e-9)
		}
	}
}

func Test_Exp(t *testing.T) {
	for _, tbl := range []*tables.Table{tables.Q16(), tables.Q32()} {
		f, w := tbl.Format, tbl.Work
		ulp := math.Ldexp(2, -int(w.FracBits))
		for _, v := range []float64{0, 0.3, -0.3, 0.35, 5.3, -11.5, 10.39} {
			s := Exp(tbl, f.FromFloat64(v), f.FracBits)
			xv := f.ToFloat64(f.FromFloat64(v))
			require.Equal(t, int(math.Round(xv/math.Ln2)), s.K, "x=%v", v)
			require.InDelta(t, xv-float64(s.K)*math.Ln2, w.ToFloat64(s.R), ulp, "x=%v", v)
			require.LessOrEqual(t, math.Abs(w.ToFloat64(s.R)), math.Ln2/2+1e-9)
		}

		// arguments already in work precision
		s := Exp(tbl, w.FromFloat64(-2.5), w.FracBits)
		require.Equal(t, -4, s.K)
		require.InDelta(t, -2.5+4*math.Ln2, w.ToFloat64(s.R), ulp)
	}
}

func Test_Pow2(t *testing.T) {
	for _, tbl := range []*tables.Table{tables.Q16(), tables.Q32()} {
		f, w := tbl.Format, tbl.Work
		for _, c := range []struct {
			x    float64
			k    int
			frac float64
		}{
			{3.7, 4, -0.3}, {-3.7, -4, 0.3}, {0.5, 1, -0.5}, {-0.5, -1, 0.5}, {2, 2, 0}, {-16.25, -16, -0.25},
		} {
			s := Pow2(tbl, f.FromFloat64(c.x), f.FracBits)
			require.Equal(t, c.k, s.K, "x=%v", c.x)
			require.InDelta(t, c.frac*math.Ln2, w.ToFloat64(s.R), 1e-4, "x=%v", c.x)
		}
	}
}

func Test_Log(t *testing.T) {
	for _, tbl := range []*tables.Table{tables.Q16(), tables.Q32()} {
		f, w := tbl.Format, tbl.Work
		for _, v := range []float64{1, 10, 0.75, 1.4142, 1.4143, 0.001, 2, 32767} {
			x := f.FromFloat64(v)
			m := Log(tbl, x, f.FracBits)
			mv := w.ToFloat64(m.M)
			require.GreaterOrEqual(t, mv, math.Sqrt2/2-1e-12, "x=%v", v)
			require.Less(t, mv, math.Sqrt2, "x=%v", v)
			require.InEpsilon(t, f.ToFloat64(x), math.Ldexp(mv, m.K), 1e-12, "x=%v", v)
		}
		m := Log(tbl, f.One(), f.FracBits)
		require.Equal(t, w.One(), m.M)
		require.Equal(t, 0, m.K)
		m = Log(tbl, f.One()/4*3, f.FracBits)
		require.Equal(t, w.One()/4*3, m.M)
		require.Equal(t, 0, m.K)
	}
}

func Test_Pair(t *testing.T) {
	tbl := tables.Q32()
	w := tbl.Work
	x, y := Pair(tbl, 3, -12)
	require.Equal(t, w.One()/8*3, x)
	require.Equal(t, -w.One()/2*3, y)

	x, y = Pair(tbl, math.MaxInt64, 1<<40)
	require.InDelta(t, 2, w.ToFloat64(x), 1e-12)
	require.InDelta(t, math.Ldexp(2, -23), w.ToFloat64(y), 1e-12)

	x, y = Pair(tbl, 0, 0)
	require.Zero(t, x)
	require.Zero(t, y)

	x, y = Pair(tbl, math.MinInt64, 0)
	require.Equal(t, -w.One(), x)
	require.Zero(t, y)
}
