package ops

import (
	"math"
	"sync"
	"testing"

	"github.com/beatoz/fxmath-go/libs/fxnum"
	"github.com/beatoz/fxmath-go/types"
	"github.com/beatoz/fxmath-go/types/xerrors"
	"github.com/stretchr/testify/require"
)

type mathCase struct {
	name string
	ref  func(float64) float64
	xs   []float64
}

var mathCases = []mathCase{
	{"sin", math.Sin, []float64{-100, -3, -1.5, -0.5, 0, 0.001, 0.3, 0.5, 1, 1.55, 2, 3.14, 6.3, 1000}},
	{"cos", math.Cos, []float64{-100, -3, -1.5, -0.5, 0, 0.001, 0.3, 0.5, 1, 1.55, 2, 3.14, 6.3, 1000}},
	{"tan", math.Tan, []float64{-3, -1, -0.5, 0, 0.001, 0.05, 0.5, 1, 1.5, 1.55, 2, 3.1, 100}},
	{"atan", math.Atan, []float64{-1000, -2, -1, -0.5, 0, 0.1, 1, 3, 30000}},
	{"asin", math.Asin, []float64{-1, -0.99, -0.5, 0, 0.01, 0.3, 0.7071, 0.999, 1}},
	{"acos", math.Acos, []float64{-1, -0.99, -0.5, 0, 0.01, 0.3, 0.7071, 0.999, 1}},
	{"sinh", math.Sinh, []float64{-10, -3, -1, -0.5, -0.05, 0, 0.01, 0.08, 0.5, 1, 1.5, 5, 10}},
	{"cosh", math.Cosh, []float64{-10, -3, -1, -0.5, -0.05, 0, 0.01, 0.08, 0.5, 1, 1.5, 5, 10}},
	{"tanh", math.Tanh, []float64{-15, -3, -1, -0.5, -0.05, 0, 0.01, 0.08, 0.5, 1, 1.5, 5, 15}},
	{"asinh", math.Asinh, []float64{-30000, -100, -2, -1, -0.01, 0, 0.05, 0.5, 1.9, 2, 1000}},
	{"acosh", math.Acosh, []float64{1, 1.0001, 1.5, 1.99, 2, 10, 30000}},
	{"atanh", math.Atanh, []float64{-0.9999, -0.9, -0.5, -0.01, 0, 0.2, 0.75, 0.8, 0.99}},
	{"acoth", acothRef, []float64{-1000, -3, -1.5, -1.0001, 1.0001, 1.9, 2, 5, 30000}},
	{"coth", cothRef, []float64{-10, -1, -0.08, -0.01, 0.001, 0.04, 0.5, 2, 20}},
	{"exp", math.Exp, []float64{-11, -5, -1, -0.001, 0, 0.5, 1, 5, 10}},
	{"pow2", math.Exp2, []float64{-16, -10, -0.5, 0, 0.3, 1, 10, 14.9}},
	{"ln", math.Log, []float64{0.001, 0.5, 1, 1.0001, 2, math.E, 10, 1000, 30000}},
	{"log2", math.Log2, []float64{0.001, 0.5, 1, 1.0001, 2, math.E, 10, 1000, 30000}},
	{"log10", math.Log10, []float64{0.001, 0.5, 1, 1.0001, 2, math.E, 10, 1000, 30000}},
	{"sqrt", math.Sqrt, []float64{0, 1e-4, 0.5, 1, 2, 3, 100, 30000}},
}

func acothRef(x float64) float64 {
	return 0.5 * math.Log((x+1)/(x-1))
}

func cothRef(x float64) float64 {
	return 1 / math.Tanh(x)
}

func ulp(f fxnum.Format) float64 {
	return math.Ldexp(1, -int(f.FracBits))
}

// tolerance is n ulps, relative once |want| exceeds 1.
func tolerance(f fxnum.Format, want, n float64) float64 {
	return n * ulp(f) * math.Max(1, math.Abs(want))
}

func checkAgainstMath[T types.Number](t *testing.T) {
	f := types.FormatOf[T]()
	for _, c := range mathCases {
		for _, v := range c.xs {
			x := types.FromFloat[T](v)
			xv := types.ToFloat(x)
			ret, xerr := EvalName(c.name, x)
			require.NoError(t, xerr, "%s(%v)", c.name, xv)
			want := c.ref(xv)
			require.InDelta(t, want, types.ToFloat(ret[0]), tolerance(f, want, 8), "%s(%v) on %v", c.name, xv, f)
		}
	}
}

func Test_AgainstMath(t *testing.T) {
	checkAgainstMath[types.I16F16](t)
	checkAgainstMath[types.I32F32](t)
}

func Test_ConcreteScenarios(t *testing.T) {
	s, xerr := Sqrt(types.FromFloat[types.I16F16](2))
	require.NoError(t, xerr)
	require.InDelta(t, 1.41421, s.Float64(), 1e-3)

	l, xerr := Ln(E[types.I16F16]())
	require.NoError(t, xerr)
	require.InDelta(t, 1.0, l.Float64(), 1e-2)

	require.InDelta(t, 0.4794, Sin(types.FromFloat[types.I16F16](0.5)).Float64(), 1e-3)
}

func checkPythagorean[T types.Number](t *testing.T) {
	f := types.FormatOf[T]()
	for v := -50.0; v < 50; v += 0.37 {
		x := types.FromFloat[T](v)
		s, c := SinCos(x)
		require.Equal(t, Sin(x), s)
		require.Equal(t, Cos(x), c)

		sv, cv := types.ToFloat(s), types.ToFloat(c)
		require.LessOrEqual(t, math.Abs(sv), 1.0)
		require.LessOrEqual(t, math.Abs(cv), 1.0)
		require.InDelta(t, 1.0, sv*sv+cv*cv, 8*ulp(f), "x=%v", v)

		if math.Abs(cv) >= 0.5 {
			require.InDelta(t, sv/cv, types.ToFloat(Tan(x)), 16*ulp(f), "tan(%v)", v)
		}
	}
}

func Test_Pythagorean(t *testing.T) {
	checkPythagorean[types.I16F16](t)
	checkPythagorean[types.I32F32](t)
}

func checkHyperbolicPair[T types.Number](t *testing.T) {
	for v := -12.0; v < 12; v += 0.23 {
		x := types.FromFloat[T](v)
		s, c := SinhCosh(x)
		require.Equal(t, Sinh(x), s)
		require.Equal(t, Cosh(x), c)
		require.GreaterOrEqual(t, types.ToFloat(c), 1.0)
	}
}

func Test_HyperbolicPair(t *testing.T) {
	checkHyperbolicPair[types.I16F16](t)
	checkHyperbolicPair[types.I32F32](t)
}

func checkRoundTrips[T types.Number](t *testing.T) {
	f := types.FormatOf[T]()
	eval := func(name string, x T) T {
		ret, xerr := EvalName(name, x)
		require.NoError(t, xerr, "%s(%v)", name, x)
		return ret[0]
	}
	pairs := []struct {
		fn, inv  string
		from, to float64
		ulps     float64
		relative bool
	}{
		{"sin", "asin", -1.2, 1.2, 32, false},
		{"cos", "acos", 0.2, 2.9, 48, false},
		{"tan", "atan", -1.4, 1.4, 8, false},
		{"exp", "ln", -1, 10, 8, false},
		{"ln", "exp", 0.5, 1000, 8, true},
		{"sinh", "asinh", -5, 5, 16, false},
		{"cosh", "acosh", 0.5, 5, 32, false},
		{"tanh", "atanh", -1, 1, 32, false},
		{"pow2", "log2", 0, 14, 16, false},
	}
	for _, p := range pairs {
		for v := p.from; v <= p.to; v += (p.to - p.from) / 37 {
			x := types.FromFloat[T](v)
			xv := types.ToFloat(x)
			got := types.ToFloat(eval(p.inv, eval(p.fn, x)))
			tol := p.ulps * ulp(f)
			if p.relative {
				tol = tolerance(f, xv, p.ulps)
			}
			require.InDelta(t, xv, got, tol, "%s(%s(%v)) on %v", p.inv, p.fn, xv, f)
		}
	}

	for v := 0.0; v < 30000; v = v*1.7 + 0.013 {
		x := types.FromFloat[T](v)
		s, xerr := Sqrt(x)
		require.NoError(t, xerr)
		sv := types.ToFloat(s)
		require.InDelta(t, types.ToFloat(x), sv*sv, (2*sv+1)*ulp(f), "sqrt(%v)^2", v)
	}
}

func Test_RoundTrips(t *testing.T) {
	checkRoundTrips[types.I16F16](t)
	checkRoundTrips[types.I32F32](t)
}

func checkDomainErrors[T types.Number](t *testing.T) {
	one := types.FromInt[T](1)
	two := types.FromInt[T](2)
	cases := []struct {
		name string
		x    T
		want xerrors.XError
	}{
		{"asin", two, xerrors.ErrDomainUnitInterval},
		{"acos", -one - 1, xerrors.ErrDomainUnitInterval},
		{"acosh", 0, xerrors.ErrDomainAtLeastOne},
		{"atanh", one, xerrors.ErrDomainOpenUnit},
		{"acoth", -one, xerrors.ErrDomainOutsideUnit},
		{"coth", 0, xerrors.ErrDomainNonZero},
		{"ln", 0, xerrors.ErrDomainPositive},
		{"log2", -one, xerrors.ErrDomainPositive},
		{"log10", -1, xerrors.ErrDomainPositive},
		{"sqrt", -1, xerrors.ErrDomainNonNegative},
	}
	for _, c := range cases {
		ret, xerr := EvalName(c.name, c.x)
		require.Nil(t, ret)
		require.Error(t, xerr, c.name)
		require.True(t, xerr.Contains(c.want), xerr.Error())
		require.True(t, xerrors.IsDomain(xerr))
	}

	_, xerr := Pow(-one, two)
	require.True(t, xerr.Contains(xerrors.ErrDomainNonNegative))
	_, xerr = Pow[T](0, 0)
	require.True(t, xerr.Contains(xerrors.ErrDomainPositive))
}

func Test_DomainErrors(t *testing.T) {
	checkDomainErrors[types.I16F16](t)
	checkDomainErrors[types.I32F32](t)
}

func checkSaturation[T types.Number](t *testing.T) {
	tbl := Table[T]()
	l := tbl.Limits
	maxv, minv := types.MaxOf[T](), types.MinOf[T]()
	one := types.FromInt[T](1)

	require.Equal(t, maxv, Exp(T(l.ExpUpper+1)))
	require.Less(t, int64(Exp(T(l.ExpUpper))), int64(maxv))
	require.Equal(t, T(0), Exp(T(l.ExpLower-1)))
	require.Equal(t, maxv, Exp(maxv))
	require.Equal(t, T(0), Exp(minv))
	require.Equal(t, one, Exp(T(0)))

	require.Equal(t, maxv, Pow2(T(l.Pow2Upper+1)))
	require.Equal(t, T(0), Pow2(T(l.Pow2Lower-1)))
	require.Equal(t, T(1), Pow2(types.FromInt[T](-int64(tbl.Format.FracBits))))
	require.Equal(t, types.FromInt[T](1024), Pow2(types.FromInt[T](10)))

	s, c := SinhCosh(T(l.HyperUpper + 1))
	require.Equal(t, maxv, s)
	require.Equal(t, maxv, c)
	s, c = SinhCosh(-T(l.HyperUpper + 1))
	require.Equal(t, minv, s)
	require.Equal(t, maxv, c)

	require.Equal(t, one, Tanh(maxv))
	require.Equal(t, -one, Tanh(minv))

	// pi/2 is not representable; the neighbours of its nearest value lie
	// on either side of the pole and within the saturation band.
	hp := HalfPi[T]()
	require.Equal(t, maxv, Tan(hp-1))
	require.Equal(t, minv, Tan(hp+1))
	require.Equal(t, minv, Tan(-hp+1))
	require.Equal(t, maxv, Tan(-hp-1))

	big, xerr := Pow(types.FromInt[T](10), types.FromInt[T](12))
	require.NoError(t, xerr)
	require.Equal(t, maxv, big)
	tiny, xerr := Pow(types.FromFloat[T](0.5), types.FromInt[T](40))
	require.NoError(t, xerr)
	require.Equal(t, T(0), tiny)
}

func Test_Saturation(t *testing.T) {
	checkSaturation[types.I16F16](t)
	checkSaturation[types.I32F32](t)
}

func checkAtan2Quadrants[T types.Number](t *testing.T) {
	f := types.FormatOf[T]()
	one := types.FromInt[T](1)
	cases := []struct {
		y, x T
		want float64
	}{
		{one, one, math.Pi / 4},
		{one, -one, 3 * math.Pi / 4},
		{-one, -one, -3 * math.Pi / 4},
		{-one, one, -math.Pi / 4},
		{one, 0, math.Pi / 2},
		{-one, 0, -math.Pi / 2},
		{0, -one, math.Pi},
		{0, one, 0},
		{0, 0, 0},
		{types.MaxOf[T](), types.MinOf[T](), 3 * math.Pi / 4},
		{1, types.MaxOf[T](), 0},
	}
	for _, c := range cases {
		got := types.ToFloat(Atan2(c.y, c.x))
		require.InDelta(t, c.want, got, 4*ulp(f), "atan2(%v, %v)", c.y, c.x)
	}
	require.Equal(t, Pi[T](), Atan2(0, -one))
}

func checkIntegerPowersOfTwo[T types.Number](t *testing.T) {
	tbl := Table[T]()
	f := tbl.Format
	upper := int64(math.Ceil(f.ToFloat64(tbl.Limits.Pow2Upper)))
	for k := -int64(f.FracBits); k < upper; k++ {
		want := T(int64(1) << (int64(f.FracBits) + k))
		require.Equal(t, want, Pow2(types.FromInt[T](k)), "%v: 2^%d", f, k)
	}
	require.Equal(t, types.FromInt[T](1), Exp(T(0)))
}

func Test_IntegerPowersOfTwo(t *testing.T) {
	checkIntegerPowersOfTwo[types.I16F16](t)
	checkIntegerPowersOfTwo[types.I32F32](t)
}

func Test_Atan2Quadrants(t *testing.T) {
	checkAtan2Quadrants[types.I16F16](t)
	checkAtan2Quadrants[types.I32F32](t)
}

func Test_Pow(t *testing.T) {
	cases := []struct {
		x, y, want float64
	}{
		{2, 10, 1024},
		{9, 0.5, 3},
		{10, 3, 1000},
		{0.5, 3, 0.125},
		{7, 0, 1},
		{1, 123, 1},
		{0, 2, 0},
		{3.3, -1.5, math.Pow(3.3, -1.5)},
	}
	for _, c := range cases {
		q16, xerr := Pow(types.FromFloat[types.I16F16](c.x), types.FromFloat[types.I16F16](c.y))
		require.NoError(t, xerr)
		require.InDelta(t, c.want, q16.Float64(), tolerance(fxnum.Q16_16, c.want, 16), "pow(%v, %v)", c.x, c.y)

		q32, xerr := Pow(types.FromFloat[types.I32F32](c.x), types.FromFloat[types.I32F32](c.y))
		require.NoError(t, xerr)
		require.InDelta(t, c.want, q32.Float64(), tolerance(fxnum.Q32_32, c.want, 16), "pow(%v, %v)", c.x, c.y)
	}
}

func Test_Constants(t *testing.T) {
	require.InDelta(t, math.Pi, Pi[types.I32F32]().Float64(), ulp(fxnum.Q32_32))
	require.InDelta(t, math.Pi/2, HalfPi[types.I16F16]().Float64(), ulp(fxnum.Q16_16))
	require.InDelta(t, math.E, E[types.I16F16]().Float64(), ulp(fxnum.Q16_16))
	require.InDelta(t, math.Ln2, Ln2[types.I32F32]().Float64(), ulp(fxnum.Q32_32))
	require.InDelta(t, math.Ln10, Ln10[types.I32F32]().Float64(), ulp(fxnum.Q32_32))
}

func Test_Eval(t *testing.T) {
	x := types.FromFloat[types.I32F32](0.7)
	y := types.FromFloat[types.I32F32](-1.3)

	ret, xerr := Eval(types.FuncAtan2, x, y)
	require.NoError(t, xerr)
	require.Equal(t, []types.I32F32{Atan2(x, y)}, ret)

	ret, xerr = EvalName("sin_cos", x)
	require.NoError(t, xerr)
	s, c := SinCos(x)
	require.Equal(t, []types.I32F32{s, c}, ret)

	_, xerr = Eval(types.FuncSin, x, y)
	require.True(t, xerr.Contains(xerrors.ErrArity))
	_, xerr = EvalName[types.I32F32]("erf", x)
	require.True(t, xerr.Contains(xerrors.ErrUnknownFunc))
	_, xerr = Eval(types.Func(200), x)
	require.True(t, xerr.Contains(xerrors.ErrUnknownFunc))

	for _, fn := range types.AllFuncs() {
		args := make([]types.I16F16, fn.Args())
		for i := range args {
			args[i] = types.FromFloat[types.I16F16](1.5)
		}
		ret, xerr := Eval(fn, args...)
		if fn.Class() == types.Total {
			require.NoError(t, xerr, fn.String())
		}
		if xerr == nil {
			require.Len(t, ret, fn.Results(), fn.String())
		}
	}
}

func Test_Concurrent(t *testing.T) {
	xs := make([]types.I32F32, 256)
	want := make([]types.I32F32, len(xs))
	for i := range xs {
		xs[i] = types.FromFloat[types.I32F32](float64(i)*0.19 - 20)
		want[i] = Sin(xs[i])
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, x := range xs {
				require.Equal(t, want[i], Sin(x))
			}
		}()
	}
	wg.Wait()
}

func Benchmark_SinQ16(b *testing.B) {
	x := types.FromFloat[types.I16F16](1.234)
	for i := 0; i < b.N; i++ {
		_ = Sin(x)
	}
}

func Benchmark_SinQ32(b *testing.B) {
	x := types.FromFloat[types.I32F32](1.234)
	for i := 0; i < b.N; i++ {
		_ = Sin(x)
	}
}

func Benchmark_ExpQ32(b *testing.B) {
	x := types.FromFloat[types.I32F32](7.77)
	for i := 0; i < b.N; i++ {
		_ = Exp(x)
	}
}

func Benchmark_LnQ32(b *testing.B) {
	x := types.FromFloat[types.I32F32](1234.5)
	for i := 0; i < b.N; i++ {
		_, _ = Ln(x)
	}
}

func Benchmark_SqrtQ32(b *testing.B) {
	x := types.FromFloat[types.I32F32](1234.5)
	for i := 0; i < b.N; i++ {
		_, _ = Sqrt(x)
	}
}
