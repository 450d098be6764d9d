package accuracy

import "fmt"

type DomainKind uint8

const (
	DomainFull DomainKind = iota
	DomainOpen
	DomainClosed
	DomainPositive
	DomainOutsideUnit
)

// Domain is the interval a function is sampled on.
type Domain struct {
	Kind   DomainKind
	Lo, Hi float64
}

func Full() Domain {
	return Domain{Kind: DomainFull, Lo: -100, Hi: 100}
}

func Open(lo, hi float64) Domain {
	return Domain{Kind: DomainOpen, Lo: lo, Hi: hi}
}

func Closed(lo, hi float64) Domain {
	return Domain{Kind: DomainClosed, Lo: lo, Hi: hi}
}

func Positive() Domain {
	return Domain{Kind: DomainPositive, Lo: 1e-6, Hi: 1000}
}

// OutsideUnit samples (b, 100] with a small margin above the bound b.
func OutsideUnit(b float64) Domain {
	return Domain{Kind: DomainOutsideUnit, Lo: b + 0.01, Hi: 100}
}

// Bounds returns the sampling interval clipped to [min, max], the range
// of the width being measured.
func (d Domain) Bounds(min, max float64) (float64, float64) {
	lo, hi := d.Lo, d.Hi
	if lo < min {
		lo = min
	}
	if hi > max {
		hi = max
	}
	return lo, hi
}

// Contains reports whether x may be sampled. Open intervals exclude their
// end points.
func (d Domain) Contains(x float64) bool {
	if d.Kind == DomainOpen {
		return x > d.Lo && x < d.Hi
	}
	return x >= d.Lo && x <= d.Hi
}

func (d Domain) String() string {
	if d.Kind == DomainOpen {
		return fmt.Sprintf("(%g, %g)", d.Lo, d.Hi)
	}
	return fmt.Sprintf("[%g, %g]", d.Lo, d.Hi)
}
