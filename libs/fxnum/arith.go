package fxnum

import (
	"math"

	"github.com/holiman/uint256"
)

func (f Format) Add(a, b int64) int64 {
	s := a + b
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return f.saturate(a >= 0)
	}
	return f.Clamp(s)
}

func (f Format) Sub(a, b int64) int64 {
	s := a - b
	if (a >= 0) != (b >= 0) && (s >= 0) != (a >= 0) {
		return f.saturate(a >= 0)
	}
	return f.Clamp(s)
}

func (f Format) Neg(a int64) int64 {
	if a == math.MinInt64 {
		return f.Max()
	}
	return f.Clamp(-a)
}

func (f Format) Abs(a int64) int64 {
	if a < 0 {
		return f.Neg(a)
	}
	return a
}

// Mul returns a*b rounded to nearest. The double-width product is exact.
func (f Format) Mul(a, b int64) int64 {
	if f.Bits() <= 32 {
		return f.Clamp(roundShift(a*b, f.FracBits))
	}
	return WideMul(a, b).RshRound(f.FracBits).Clamp(f)
}

// Div returns a/b rounded to nearest. Division by zero saturates toward
// the sign of a, and 0/0 is 0.
func (f Format) Div(a, b int64) int64 {
	if b == 0 {
		switch {
		case a > 0:
			return f.Max()
		case a < 0:
			return f.Min()
		}
		return 0
	}
	neg := (a < 0) != (b < 0)
	ua, ub := absU(a), absU(b)

	if f.Bits() <= 32 {
		q := ((ua << f.FracBits) + ub/2) / ub
		return f.fromMagnitude(q, neg)
	}

	n := new(uint256.Int).SetUint64(ua)
	n.Lsh(n, f.FracBits)
	n.AddUint64(n, ub/2)
	n.Div(n, uint256.NewInt(ub))
	if !n.IsUint64() {
		return f.saturate(!neg)
	}
	return f.fromMagnitude(n.Uint64(), neg)
}

// Shl returns a*2^n, saturating.
func (f Format) Shl(a int64, n uint) int64 {
	if a == 0 {
		return 0
	}
	if n >= f.Bits() {
		return f.saturate(a > 0)
	}
	if a > 0 && a > f.Max()>>n {
		return f.Max()
	}
	if a < 0 && a < f.Min()>>n {
		return f.Min()
	}
	return a << n
}

// Shr is an arithmetic right shift (floor).
func (f Format) Shr(a int64, n uint) int64 {
	if n > 63 {
		n = 63
	}
	return a >> n
}

// ShrRound divides a by 2^n rounding to nearest.
func (f Format) ShrRound(a int64, n uint) int64 {
	if n > 63 {
		return 0
	}
	return roundShift(a, n)
}

// Scale returns a*2^k as a raw value of f, rounding when k < 0.
func (f Format) Scale(a int64, k int) int64 {
	if k >= 0 {
		return f.Shl(a, uint(k))
	}
	return f.Clamp(f.ShrRound(a, uint(-k)))
}

// Convert rescales a raw value held with from fractional bits into f.
func (f Format) Convert(a int64, from uint) int64 {
	if from >= f.FracBits {
		return f.Clamp(roundShift(a, from-f.FracBits))
	}
	return f.Shl(a, f.FracBits-from)
}

func (f Format) saturate(positive bool) int64 {
	if positive {
		return f.Max()
	}
	return f.Min()
}

func (f Format) fromMagnitude(m uint64, neg bool) int64 {
	lim := uint64(f.Max())
	if neg {
		if m > lim+1 {
			return f.Min()
		}
		return f.Clamp(-int64(m))
	}
	if m > lim {
		return f.Max()
	}
	return int64(m)
}

func absU(a int64) uint64 {
	if a < 0 {
		return uint64(-a)
	}
	return uint64(a)
}

// roundShift divides v by 2^n rounding half away from zero.
func roundShift(v int64, n uint) int64 {
	if n == 0 {
		return v
	}
	q := v >> n
	rem := uint64(v) & (uint64(1)<<n - 1)
	half := uint64(1) << (n - 1)
	if rem > half || (rem == half && v >= 0) {
		q++
	}
	return q
}
