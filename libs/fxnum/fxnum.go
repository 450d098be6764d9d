// Package fxnum provides deterministic binary fixed-point arithmetic over
// raw int64 values. A Format describes how many integer and fractional
// bits a value carries; every operation saturates at the bounds of its
// Format instead of wrapping.
//
// Rounding policy: Mul, Div and every rescaling that drops bits round to
// the nearest representable value, ties away from zero. Shr is the only
// truncating operation (an arithmetic shift, i.e. floor) and is reserved
// for the CORDIC iterations.
package fxnum

import (
	"fmt"
	"math"
)

// Format is a signed binary fixed-point layout. IntBits includes the sign
// bit, so Format{16, 16} spans [-32768, 32768) with a resolution of 2^-16.
type Format struct {
	IntBits  uint
	FracBits uint
}

var (
	Q16_16 = Format{IntBits: 16, FracBits: 16}
	Q32_32 = Format{IntBits: 32, FracBits: 32}
)

const (
	MinFracBits = 8
	MaxFracBits = 40
	MinIntBits  = 4
)

func (f Format) Bits() uint {
	return f.IntBits + f.FracBits
}

// Valid reports whether the engine can be built for f.
func (f Format) Valid() bool {
	return f.FracBits >= MinFracBits && f.FracBits <= MaxFracBits &&
		f.IntBits >= MinIntBits && f.Bits() <= 64
}

func (f Format) String() string {
	return fmt.Sprintf("I%dF%d", f.IntBits, f.FracBits)
}

// One returns the raw representation of 1.0.
func (f Format) One() int64 {
	return int64(1) << f.FracBits
}

// Max returns the largest raw value of f.
func (f Format) Max() int64 {
	return math.MaxInt64 >> (64 - f.Bits())
}

// Min returns the smallest raw value of f.
func (f Format) Min() int64 {
	return math.MinInt64 >> (64 - f.Bits())
}

func (f Format) Clamp(v int64) int64 {
	if v > f.Max() {
		return f.Max()
	}
	if v < f.Min() {
		return f.Min()
	}
	return v
}

// Contains reports whether v is a representable raw value of f.
func (f Format) Contains(v int64) bool {
	return v >= f.Min() && v <= f.Max()
}
