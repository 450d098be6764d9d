// Package refine is the refinement stage: Newton's iteration for square
// roots, logarithms from hyperbolic vectoring on a normalised mantissa,
// and the Taylor corrections used where CORDIC loses relative precision.
package refine

import (
	"github.com/beatoz/fxmath-go/tables"
	"github.com/holiman/uint256"
)

// Sqrt returns the square root of x >= 0, a raw value of t.Format, rounded
// to nearest.
func Sqrt(t *tables.Table, x int64) int64 {
	return isqrt(x, t.Format.FracBits, t.SqrtIterations)
}

// SqrtWork is Sqrt in work precision.
func SqrtWork(t *tables.Table, v int64) int64 {
	return isqrt(v, t.Work.FracBits, t.SqrtIterations)
}

// isqrt returns round(sqrt(x * 2^frac)), the square root of x/2^frac
// expressed with frac fractional bits.
func isqrt(x int64, frac uint, iterations int) int64 {
	if x <= 0 {
		return 0
	}
	n := new(uint256.Int).SetUint64(uint64(x))
	n.Lsh(n, frac)

	g := seed(n)
	q := new(uint256.Int)
	for i := 0; i < iterations; i++ {
		q.Div(n, g)
		g.Add(g, q)
		g.Rsh(g, 1)
	}

	// g is within a few units of sqrt(n) here; settle on floor(sqrt(n)).
	sq := new(uint256.Int)
	for sq.Mul(g, g); sq.Gt(n); sq.Mul(g, g) {
		g.SubUint64(g, 1)
	}
	next := new(uint256.Int).AddUint64(g, 1)
	for sq.Mul(next, next); !sq.Gt(n); sq.Mul(next, next) {
		g.Set(next)
		next.AddUint64(next, 1)
	}

	// round to nearest: sqrt(n) >= g + 1/2 iff n - g^2 > g
	sq.Mul(g, g)
	sq.Sub(n, sq)
	if sq.Gt(g) {
		g.AddUint64(g, 1)
	}
	return int64(g.Uint64())
}

// seed estimates sqrt(n) within 4.2% from its bit length. With n = m*4^j
// and m in [1, 4), sqrt(m) is approximated by the line (m+2)/3 + 1/24.
func seed(n *uint256.Int) *uint256.Int {
	const one = 1 << 30
	j := uint((n.BitLen() - 1) / 2)

	m := new(uint256.Int)
	if 2*j >= 30 {
		m.Rsh(n, 2*j-30)
	} else {
		m.Lsh(n, 30-2*j)
	}
	s := (m.Uint64()+2*one)/3 + one/24

	g := uint256.NewInt(s)
	if j >= 30 {
		g.Lsh(g, j-30)
	} else {
		g.Rsh(g, 30-j)
	}
	if g.IsZero() {
		g.SetOne()
	}
	return g
}
