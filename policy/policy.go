// Package policy holds the boundary behaviour of every function: domain
// checks for Fallible functions, run before any reduction, and the
// saturation rules of Total functions. All thresholds come from the
// table of the format.
package policy

import (
	"github.com/beatoz/fxmath-go/libs/fxnum"
	"github.com/beatoz/fxmath-go/tables"
	"github.com/beatoz/fxmath-go/types"
	"github.com/beatoz/fxmath-go/types/xerrors"
)

// Check validates x, a raw value of t.Format, against the domain of fn.
func Check(t *tables.Table, fn types.Func, x int64) xerrors.XError {
	var xerr xerrors.XError
	switch fn.Domain() {
	case types.DomainUnitInterval:
		_, xerr = UnitInterval(t, x)
	case types.DomainOpenUnit:
		_, xerr = OpenUnit(t, x)
	case types.DomainOutsideUnit:
		_, xerr = OutsideUnit(t, x)
	case types.DomainAtLeastOne:
		_, xerr = AtLeastOne(t, x)
	case types.DomainPositive:
		_, xerr = Positive(t, x)
	case types.DomainNonNegative:
		_, xerr = NonNegative(t, x)
	case types.DomainNonZero:
		_, xerr = NonZero(t, x)
	}
	if xerr != nil {
		return xerr.Wrapf("%v(%s)", fn, t.Format.Text(x))
	}
	return nil
}

// UnitInterval accepts x in [-1, 1].
func UnitInterval(t *tables.Table, x int64) (int64, xerrors.XError) {
	one := t.Format.One()
	if x < -one || x > one {
		return 0, xerrors.ErrDomainUnitInterval
	}
	return x, nil
}

// OpenUnit accepts x in (-1, 1).
func OpenUnit(t *tables.Table, x int64) (int64, xerrors.XError) {
	one := t.Format.One()
	if x <= -one || x >= one {
		return 0, xerrors.ErrDomainOpenUnit
	}
	return x, nil
}

// OutsideUnit accepts |x| > 1.
func OutsideUnit(t *tables.Table, x int64) (int64, xerrors.XError) {
	one := t.Format.One()
	if x >= -one && x <= one {
		return 0, xerrors.ErrDomainOutsideUnit
	}
	return x, nil
}

// AtLeastOne accepts x >= 1.
func AtLeastOne(t *tables.Table, x int64) (int64, xerrors.XError) {
	if x < t.Format.One() {
		return 0, xerrors.ErrDomainAtLeastOne
	}
	return x, nil
}

func Positive(_ *tables.Table, x int64) (int64, xerrors.XError) {
	if x <= 0 {
		return 0, xerrors.ErrDomainPositive
	}
	return x, nil
}

func NonNegative(_ *tables.Table, x int64) (int64, xerrors.XError) {
	if x < 0 {
		return 0, xerrors.ErrDomainNonNegative
	}
	return x, nil
}

func NonZero(_ *tables.Table, x int64) (int64, xerrors.XError) {
	if x == 0 {
		return 0, xerrors.ErrDomainNonZero
	}
	return x, nil
}

// Exp returns the saturated value of e^x and true when x, held with frac
// fractional bits, lies outside [ExpLower, ExpUpper].
func Exp(t *tables.Table, x int64, frac uint) (int64, bool) {
	return saturateExp(t, x, frac, t.Limits.ExpLower, t.Limits.ExpUpper)
}

// Pow2 is Exp for 2^x.
func Pow2(t *tables.Table, x int64, frac uint) (int64, bool) {
	return saturateExp(t, x, frac, t.Limits.Pow2Lower, t.Limits.Pow2Upper)
}

func saturateExp(t *tables.Table, x int64, frac uint, lower, upper int64) (int64, bool) {
	if cmpScaled(x, frac, upper, t.Format.FracBits) > 0 {
		return t.Format.Max(), true
	}
	if cmpScaled(x, frac, lower, t.Format.FracBits) < 0 {
		return 0, true
	}
	return 0, false
}

// Hyperbolic saturates sinh and cosh beyond HyperUpper, where cosh first
// exceeds the format.
func Hyperbolic(t *tables.Table, x int64) (sinh, cosh int64, ok bool) {
	f := t.Format
	if x > t.Limits.HyperUpper {
		return f.Max(), f.Max(), true
	}
	if x < -t.Limits.HyperUpper {
		return f.Min(), f.Max(), true
	}
	return 0, 0, false
}

// Tanh returns +-1 beyond TanhOne, where 1 - |tanh x| is below half an ulp.
func Tanh(t *tables.Table, x int64) (int64, bool) {
	one := t.Format.One()
	if x > t.Limits.TanhOne {
		return one, true
	}
	if x < -t.Limits.TanhOne {
		return -one, true
	}
	return 0, false
}

// TanPole saturates tan when the Q61 distance d to the pole is within
// TanPoleEps. The pole is approached from below when d <= 0.
func TanPole(t *tables.Table, d int64) (int64, bool) {
	if d > t.Limits.TanPoleEps || d < -t.Limits.TanPoleEps {
		return 0, false
	}
	if d <= 0 {
		return t.Format.Max(), true
	}
	return t.Format.Min(), true
}

// Unit clamps a work-precision value into [-1, 1].
func Unit(t *tables.Table, v int64) int64 {
	one := t.Work.One()
	if v > one {
		return one
	}
	if v < -one {
		return -one
	}
	return v
}

// Clamp saturates a reconstructed wide value into the output format.
func Clamp(t *tables.Table, v fxnum.Wide) int64 {
	return v.Clamp(t.Format)
}

// cmpScaled compares a/2^fa with b/2^fb.
func cmpScaled(a int64, fa uint, b int64, fb uint) int {
	return fxnum.WideOf(a).Lsh(fb).Cmp(fxnum.WideOf(b).Lsh(fa))
}
