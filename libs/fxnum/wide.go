package fxnum

import (
	"math"

	"github.com/holiman/uint256"
)

// Wide is a signed intermediate wider than int64, kept as a two's
// complement uint256.Int. Products of two int64 values and their shifts
// by up to 120 bits are exact.
type Wide struct {
	v uint256.Int
}

func WideOf(a int64) Wide {
	var w Wide
	if a < 0 {
		w.v.SetUint64(uint64(-a))
		w.v.Neg(&w.v)
	} else {
		w.v.SetUint64(uint64(a))
	}
	return w
}

func WideMul(a, b int64) Wide {
	x, y := WideOf(a), WideOf(b)
	x.v.Mul(&x.v, &y.v)
	return x
}

func (w Wide) Add(o Wide) Wide {
	w.v.Add(&w.v, &o.v)
	return w
}

func (w Wide) Sub(o Wide) Wide {
	w.v.Sub(&w.v, &o.v)
	return w
}

func (w Wide) Mul(o Wide) Wide {
	w.v.Mul(&w.v, &o.v)
	return w
}

func (w Wide) Neg() Wide {
	w.v.Neg(&w.v)
	return w
}

func (w Wide) Lsh(n uint) Wide {
	w.v.Lsh(&w.v, n)
	return w
}

// Rsh is an arithmetic right shift (floor).
func (w Wide) Rsh(n uint) Wide {
	w.v.SRsh(&w.v, n)
	return w
}

// RshRound divides w by 2^n rounding half away from zero.
func (w Wide) RshRound(n uint) Wide {
	if n == 0 {
		return w
	}
	neg := w.Sign() < 0
	m := w.magnitude()
	half := uint256.NewInt(1)
	half.Lsh(half, n-1)
	m.Add(&m, half)
	m.Rsh(&m, n)
	if neg {
		m.Neg(&m)
	}
	return Wide{v: m}
}

// QuoRound divides w by d rounding half away from zero.
// d must not be zero.
func (w Wide) QuoRound(d int64) Wide {
	neg := (w.Sign() < 0) != (d < 0)
	m := w.magnitude()
	ud := uint256.NewInt(absU(d))
	half := new(uint256.Int).Rsh(ud, 1)
	m.Add(&m, half)
	m.Div(&m, ud)
	if neg {
		m.Neg(&m)
	}
	return Wide{v: m}
}

func (w Wide) Sign() int {
	return w.v.Sign()
}

// Cmp compares w and o as signed values.
func (w Wide) Cmp(o Wide) int {
	return w.Sub(o).Sign()
}

// BitLen returns the bit length of |w|.
func (w Wide) BitLen() int {
	m := w.magnitude()
	return m.BitLen()
}

// Int64 returns w and whether it fits in an int64.
func (w Wide) Int64() (int64, bool) {
	m := w.magnitude()
	if !m.IsUint64() {
		return 0, false
	}
	u := m.Uint64()
	if w.Sign() < 0 {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Clamp converts w to a raw value of f, saturating.
func (w Wide) Clamp(f Format) int64 {
	v, ok := w.Int64()
	if !ok {
		return f.saturate(w.Sign() > 0)
	}
	return f.Clamp(v)
}

func (w Wide) magnitude() uint256.Int {
	m := w.v
	if w.Sign() < 0 {
		m.Neg(&m)
	}
	return m
}
