// Package tables builds the immutable per-width CORDIC tables: the circular
// arctangent angles, the hyperbolic step schedule with its repeated shifts,
// the two gains, the constants used by range reduction and the saturation
// thresholds of every Total function.
//
// The engine runs at a work precision of F+GuardBits fractional bits and
// narrows its result back to F bits once, at the end of each function.
package tables

import (
	"encoding/binary"
	"encoding/hex"
	"sync"

	"github.com/beatoz/fxmath-go/libs/fxnum"
	"github.com/beatoz/fxmath-go/types/xerrors"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/blake2b"
)

const (
	// GuardBits are carried below the output precision while computing.
	GuardBits = 16
	// ExtFracBits is the precision of the extended reduction constants.
	ExtFracBits = 61
	// ExtLoFracBits is the precision of the low part of pi/2. A product
	// k*HalfPiLo is brought back to Q61 by a shift of ExtLoShift.
	ExtLoFracBits = ExtFracBits + ExtLoShift
	ExtLoShift    = 62
	// MaxWorkFracBits keeps at least 8 integer bits in the work format.
	MaxWorkFracBits = 56
)

// Step is one hyperbolic iteration: shift s and its angle atanh(2^-s).
type Step struct {
	Shift uint
	Angle int64
}

// Constants holds mathematical constants in one precision.
type Constants struct {
	Pi        int64
	HalfPi    int64
	QuarterPi int64
	E         int64
	Ln2       int64
	Ln10      int64
	InvLn2    int64
	InvLn10   int64
	SqrtTwo   int64
	SqrtHalf  int64
}

// Extended holds the reduction constants in Q61. HalfPiLo is the Q123
// remainder of pi/2 after HalfPi.
type Extended struct {
	HalfPi    int64
	HalfPiLo  int64
	TwoOverPi int64
	Ln2       int64
	InvLn2    int64
}

// Thresholds are raw values in the output format, except TanPoleEps which
// is in Q61 like the residual it is compared with.
type Thresholds struct {
	ExpUpper   int64
	ExpLower   int64
	Pow2Upper  int64
	Pow2Lower  int64
	HyperUpper int64
	TanhOne    int64
	SmallArg   int64
	TanPoleEps int64
}

type Table struct {
	Format fxnum.Format
	Work   fxnum.Format

	// Atan[i] = atan(2^-i) in work precision.
	Atan     []int64
	Schedule []Step

	CircularGainInv   int64
	HyperbolicGain    int64
	HyperbolicGainInv int64
	CircularLimit     int64
	HyperbolicLimit   int64

	Const    Constants
	OutConst Constants
	Ext      Extended
	Limits   Thresholds

	// SinSmall bounds the reduced angle below which sin and cos use
	// their Taylor series. Work precision.
	SinSmall       int64
	SqrtIterations int
}

var (
	q16 = sync.OnceValue(func() *Table { return build(fxnum.Q16_16) })
	q32 = sync.OnceValue(func() *Table { return build(fxnum.Q32_32) })

	// others maps a fxnum.Format to a func() *Table built by sync.OnceValue.
	others sync.Map
)

func Q16() *Table {
	return q16()
}

func Q32() *Table {
	return q32()
}

// For returns the shared table of f, building it on first use.
func For(f fxnum.Format) (*Table, xerrors.XError) {
	if !f.Valid() {
		return nil, xerrors.ErrInvalidFormat.Wrapf("unsupported format %v", f)
	}
	switch f {
	case fxnum.Q16_16:
		return q16(), nil
	case fxnum.Q32_32:
		return q32(), nil
	}
	once, _ := others.LoadOrStore(f, sync.OnceValue(func() *Table { return build(f) }))
	return once.(func() *Table)(), nil
}

// Iterations returns the number of circular iterations.
func (t *Table) Iterations() int {
	return len(t.Atan)
}

// Widen lifts an output-format value into work precision, saturating.
func (t *Table) Widen(x int64) int64 {
	return t.Work.Shl(x, GuardBits)
}

// Narrow rounds a work-precision value to the output format, saturating.
func (t *Table) Narrow(v int64) int64 {
	return t.Format.Clamp(t.Work.ShrRound(v, GuardBits))
}

// Fingerprint is a blake2b-256 digest of every entry of t.
func (t *Table) Fingerprint() string {
	buf := make([]byte, 0, 1024)
	put := func(vs ...int64) {
		for _, v := range vs {
			buf = binary.BigEndian.AppendUint64(buf, uint64(v))
		}
	}
	put(int64(t.Format.IntBits), int64(t.Format.FracBits), int64(t.Work.FracBits))
	put(t.Atan...)
	for _, s := range t.Schedule {
		put(int64(s.Shift), s.Angle)
	}
	put(t.CircularGainInv, t.HyperbolicGain, t.HyperbolicGainInv)
	for _, c := range []Constants{t.Const, t.OutConst} {
		put(c.Pi, c.HalfPi, c.QuarterPi, c.E, c.Ln2, c.Ln10, c.InvLn2, c.InvLn10, c.SqrtTwo, c.SqrtHalf)
	}
	put(t.Ext.HalfPi, t.Ext.HalfPiLo, t.Ext.TwoOverPi, t.Ext.Ln2, t.Ext.InvLn2)
	l := t.Limits
	put(l.ExpUpper, l.ExpLower, l.Pow2Upper, l.Pow2Lower, l.HyperUpper, l.TanhOne, l.SmallArg, l.TanPoleEps)
	put(t.SinSmall, int64(t.SqrtIterations))

	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// HyperbolicShifts returns the shifts 1..n with every shift of the
// sequence 4, 13, 40, ... (k -> 3k+1) taken twice.
func HyperbolicShifts(n uint) []uint {
	var shifts []uint
	repeat := uint(4)
	for s := uint(1); s <= n; s++ {
		shifts = append(shifts, s)
		if s == repeat {
			shifts = append(shifts, s)
			repeat = 3*repeat + 1
		}
	}
	return shifts
}

func build(f fxnum.Format) *Table {
	k := f.FracBits + GuardBits
	if k > MaxWorkFracBits {
		k = MaxWorkFracBits
	}
	t := &Table{
		Format: f,
		Work:   fxnum.Format{IntBits: 64 - k, FracBits: k},
	}
	n := k + 2

	pi := RefPi()
	ln2 := RefLn2()
	ln10 := RefLn10()
	sqrt2 := RefSqrt(decTwo)

	// circular
	prod := decOne
	limit := decimal.Zero
	t.Atan = make([]int64, n)
	for i := uint(0); i < n; i++ {
		p := quo(decOne, fxnum.Pow2Decimal(i))
		var a decimal.Decimal
		if i == 0 {
			a = quo(pi, decimal.NewFromInt(4))
		} else {
			a = RefAtan(p)
		}
		t.Atan[i] = toRaw(a, k)
		limit = limit.Add(a)
		prod = prod.Mul(decOne.Add(p.Mul(p))).Round(RefDigits + 8)
	}
	t.CircularGainInv = toRaw(quo(decOne, RefSqrt(prod)), k)
	t.CircularLimit = floorRaw(limit, k)

	// hyperbolic
	prod = decOne
	limit = decimal.Zero
	for _, s := range HyperbolicShifts(n) {
		p := quo(decOne, fxnum.Pow2Decimal(s))
		a := RefAtanh(p)
		t.Schedule = append(t.Schedule, Step{Shift: s, Angle: toRaw(a, k)})
		limit = limit.Add(a)
		prod = prod.Mul(decOne.Sub(p.Mul(p))).Round(RefDigits + 8)
	}
	gain := RefSqrt(prod)
	t.HyperbolicGain = toRaw(gain, k)
	t.HyperbolicGainInv = toRaw(quo(decOne, gain), k)
	t.HyperbolicLimit = floorRaw(limit, k)

	consts := func(frac uint) Constants {
		return Constants{
			Pi:        toRaw(pi, frac),
			HalfPi:    toRaw(pi.Mul(decHalf), frac),
			QuarterPi: toRaw(quo(pi, decimal.NewFromInt(4)), frac),
			E:         toRaw(RefE(), frac),
			Ln2:       toRaw(ln2, frac),
			Ln10:      toRaw(ln10, frac),
			InvLn2:    toRaw(quo(decOne, ln2), frac),
			InvLn10:   toRaw(quo(decOne, ln10), frac),
			SqrtTwo:   toRaw(sqrt2, frac),
			SqrtHalf:  toRaw(sqrt2.Mul(decHalf), frac),
		}
	}
	t.Const = consts(k)
	t.OutConst = consts(f.FracBits)

	halfPi := pi.Mul(decHalf)
	hi := toRaw(halfPi, ExtFracBits)
	t.Ext = Extended{
		HalfPi: hi,
		HalfPiLo: toRaw(halfPi.Mul(fxnum.Pow2Decimal(ExtLoFracBits)).
			Sub(decimal.NewFromInt(hi).Mul(fxnum.Pow2Decimal(ExtLoFracBits-ExtFracBits))), 0),
		TwoOverPi: toRaw(quo(decTwo, pi), ExtFracBits),
		Ln2:       toRaw(ln2, ExtFracBits),
		InvLn2:    toRaw(quo(decOne, ln2), ExtFracBits),
	}

	maxD := f.ToDecimal(f.Max())
	lnMax := RefLn(maxD)
	fracLimit := decimal.NewFromInt(int64(f.FracBits) + 1)
	smallArg := decimal.RequireFromString("0.1")
	if f.FracBits >= 24 {
		smallArg = decimal.RequireFromString("0.05")
	}
	t.Limits = Thresholds{
		ExpUpper:   floorRaw(lnMax, f.FracBits),
		ExpLower:   ceilRaw(fracLimit.Mul(ln2).Neg(), f.FracBits),
		Pow2Upper:  floorRaw(quo(lnMax, ln2), f.FracBits),
		Pow2Lower:  toRaw(fracLimit.Neg(), f.FracBits),
		HyperUpper: floorRaw(RefLn(maxD.Mul(decTwo)), f.FracBits),
		TanhOne:    ceilRaw(fracLimit.Add(decOne).Mul(ln2).Mul(decHalf), f.FracBits),
		SmallArg:   toRaw(smallArg, f.FracBits),
		TanPoleEps: toRaw(quo(decOne, maxD), ExtFracBits),
	}

	t.SinSmall = t.Work.One() >> 4
	t.SqrtIterations = 3
	if f.FracBits > 16 {
		t.SqrtIterations = 4
	}
	return t
}
