// Package kernel is the CORDIC engine shared by every trigonometric and
// hyperbolic function.
//
// All values are raw int64 in the work precision of the table. Callers
// keep |X| and |Y| at most 4 and |Z| within the convergence limit of the
// mode (Table.CircularLimit or Table.HyperbolicLimit). Under that contract
// no iteration can overflow, so the loops use plain integer arithmetic and
// floor shifts. The number of iterations depends only on the table.
package kernel

import (
	"fmt"

	"github.com/beatoz/fxmath-go/tables"
)

type Mode uint8

const (
	Circular Mode = iota
	Hyperbolic
)

func (m Mode) String() string {
	if m == Circular {
		return "circular"
	}
	return "hyperbolic"
}

type Operation uint8

const (
	// Rotation drives Z to zero, rotating (X, Y) by the initial Z.
	Rotation Operation = iota
	// Vectoring drives Y to zero, accumulating the angle in Z.
	Vectoring
)

func (op Operation) String() string {
	if op == Rotation {
		return "rotation"
	}
	return "vectoring"
}

type Vector struct {
	X, Y, Z int64
}

func (v Vector) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

// Run iterates v in the given mode and operation. In rotation the
// initial Z is held to the convergence limit of the mode.
func Run(t *tables.Table, mode Mode, op Operation, v Vector) Vector {
	if op == Rotation {
		v.Z = clampAngle(v.Z, Limit(t, mode))
	}
	switch {
	case mode == Circular && op == Rotation:
		return circularRotate(t, v)
	case mode == Circular:
		return circularVector(t, v)
	case op == Rotation:
		return hyperbolicRotate(t, v)
	}
	return hyperbolicVector(t, v)
}

// Limit is the largest |Z| the mode converges for.
func Limit(t *tables.Table, mode Mode) int64 {
	if mode == Circular {
		return t.CircularLimit
	}
	return t.HyperbolicLimit
}

func clampAngle(z, limit int64) int64 {
	if z > limit {
		return limit
	}
	if z < -limit {
		return -limit
	}
	return z
}

func circularRotate(t *tables.Table, v Vector) Vector {
	x, y, z := v.X, v.Y, v.Z
	for i, a := range t.Atan {
		xs, ys := t.Work.Shr(x, uint(i)), t.Work.Shr(y, uint(i))
		if z >= 0 {
			x, y, z = x-ys, y+xs, z-a
		} else {
			x, y, z = x+ys, y-xs, z+a
		}
	}
	return Vector{X: x, Y: y, Z: z}
}

func circularVector(t *tables.Table, v Vector) Vector {
	x, y, z := v.X, v.Y, v.Z
	for i, a := range t.Atan {
		xs, ys := t.Work.Shr(x, uint(i)), t.Work.Shr(y, uint(i))
		if y >= 0 {
			x, y, z = x+ys, y-xs, z+a
		} else {
			x, y, z = x-ys, y+xs, z-a
		}
	}
	return Vector{X: x, Y: y, Z: z}
}

func hyperbolicRotate(t *tables.Table, v Vector) Vector {
	x, y, z := v.X, v.Y, v.Z
	for _, s := range t.Schedule {
		xs, ys := t.Work.Shr(x, s.Shift), t.Work.Shr(y, s.Shift)
		if z >= 0 {
			x, y, z = x+ys, y+xs, z-s.Angle
		} else {
			x, y, z = x-ys, y-xs, z+s.Angle
		}
	}
	return Vector{X: x, Y: y, Z: z}
}

func hyperbolicVector(t *tables.Table, v Vector) Vector {
	x, y, z := v.X, v.Y, v.Z
	for _, s := range t.Schedule {
		xs, ys := t.Work.Shr(x, s.Shift), t.Work.Shr(y, s.Shift)
		if y >= 0 {
			x, y, z = x-ys, y-xs, z+s.Angle
		} else {
			x, y, z = x+ys, y+xs, z-s.Angle
		}
	}
	return Vector{X: x, Y: y, Z: z}
}

// SinCos returns (sin θ, cos θ) for |θ| <= pi/2.
func SinCos(t *tables.Table, theta int64) (sin, cos int64) {
	v := Run(t, Circular, Rotation, Vector{X: t.CircularGainInv, Z: theta})
	return v.Y, v.X
}

// SinhCosh returns (sinh θ, cosh θ) for |θ| <= 1.
func SinhCosh(t *tables.Table, theta int64) (sinh, cosh int64) {
	v := Run(t, Hyperbolic, Rotation, Vector{X: t.HyperbolicGainInv, Z: theta})
	return v.Y, v.X
}

// Atan returns atan(y/x) for x >= 0 and (x, y) != (0, 0).
func Atan(t *tables.Table, x, y int64) int64 {
	return Run(t, Circular, Vectoring, Vector{X: x, Y: y}).Z
}

// Atanh returns atanh(y/x) for x > 0 and |y/x| <= 0.8.
func Atanh(t *tables.Table, x, y int64) int64 {
	return Run(t, Hyperbolic, Vectoring, Vector{X: x, Y: y}).Z
}
