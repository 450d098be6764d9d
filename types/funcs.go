package types

// Class tells whether a function can fail.
type Class uint8

const (
	// Total functions map every input to a value, saturating at the extremes.
	Total Class = iota
	// Fallible functions return a domain error outside their domain.
	Fallible
)

func (c Class) String() string {
	if c == Total {
		return "total"
	}
	return "fallible"
}

// Domain is the set of arguments a function accepts.
type Domain uint8

const (
	DomainAll          Domain = iota
	DomainUnitInterval        // [-1, 1]
	DomainOpenUnit            // (-1, 1)
	DomainOutsideUnit         // |x| > 1
	DomainAtLeastOne          // [1, +inf)
	DomainPositive            // (0, +inf)
	DomainNonNegative         // [0, +inf)
	DomainNonZero
)

type Group uint8

const (
	Trigonometric Group = iota
	Hyperbolic
	Exponential
	Algebraic
)

func (g Group) String() string {
	switch g {
	case Trigonometric:
		return "trigonometric"
	case Hyperbolic:
		return "hyperbolic"
	case Exponential:
		return "exponential"
	}
	return "algebraic"
}

// Func identifies one function of the engine.
type Func uint8

const (
	FuncSin Func = iota
	FuncCos
	FuncTan
	FuncSinCos
	FuncAtan
	FuncAtan2
	FuncAsin
	FuncAcos
	FuncSinh
	FuncCosh
	FuncTanh
	FuncSinhCosh
	FuncAsinh
	FuncAcosh
	FuncAtanh
	FuncAcoth
	FuncCoth
	FuncExp
	FuncPow2
	FuncLn
	FuncLog2
	FuncLog10
	FuncPow
	FuncSqrt
	funcCount
)

type funcInfo struct {
	name    string
	group   Group
	domain  Domain
	args    int
	results int
}

var funcInfos = [funcCount]funcInfo{
	FuncSin:      {"sin", Trigonometric, DomainAll, 1, 1},
	FuncCos:      {"cos", Trigonometric, DomainAll, 1, 1},
	FuncTan:      {"tan", Trigonometric, DomainAll, 1, 1},
	FuncSinCos:   {"sin_cos", Trigonometric, DomainAll, 1, 2},
	FuncAtan:     {"atan", Trigonometric, DomainAll, 1, 1},
	FuncAtan2:    {"atan2", Trigonometric, DomainAll, 2, 1},
	FuncAsin:     {"asin", Trigonometric, DomainUnitInterval, 1, 1},
	FuncAcos:     {"acos", Trigonometric, DomainUnitInterval, 1, 1},
	FuncSinh:     {"sinh", Hyperbolic, DomainAll, 1, 1},
	FuncCosh:     {"cosh", Hyperbolic, DomainAll, 1, 1},
	FuncTanh:     {"tanh", Hyperbolic, DomainAll, 1, 1},
	FuncSinhCosh: {"sinh_cosh", Hyperbolic, DomainAll, 1, 2},
	FuncAsinh:    {"asinh", Hyperbolic, DomainAll, 1, 1},
	FuncAcosh:    {"acosh", Hyperbolic, DomainAtLeastOne, 1, 1},
	FuncAtanh:    {"atanh", Hyperbolic, DomainOpenUnit, 1, 1},
	FuncAcoth:    {"acoth", Hyperbolic, DomainOutsideUnit, 1, 1},
	FuncCoth:     {"coth", Hyperbolic, DomainNonZero, 1, 1},
	FuncExp:      {"exp", Exponential, DomainAll, 1, 1},
	FuncPow2:     {"pow2", Exponential, DomainAll, 1, 1},
	FuncLn:       {"ln", Exponential, DomainPositive, 1, 1},
	FuncLog2:     {"log2", Exponential, DomainPositive, 1, 1},
	FuncLog10:    {"log10", Exponential, DomainPositive, 1, 1},
	FuncPow:      {"pow", Exponential, DomainNonNegative, 2, 1},
	FuncSqrt:     {"sqrt", Algebraic, DomainNonNegative, 1, 1},
}

func (fn Func) Valid() bool {
	return fn < funcCount
}

func (fn Func) String() string {
	if !fn.Valid() {
		return "unknown"
	}
	return funcInfos[fn].name
}

func (fn Func) Group() Group {
	return funcInfos[fn].group
}

func (fn Func) Domain() Domain {
	return funcInfos[fn].domain
}

// Class is fixed per function: only functions restricted to a
// sub-domain are Fallible.
func (fn Func) Class() Class {
	if funcInfos[fn].domain == DomainAll {
		return Total
	}
	return Fallible
}

func (fn Func) Args() int {
	return funcInfos[fn].args
}

func (fn Func) Results() int {
	return funcInfos[fn].results
}

func AllFuncs() []Func {
	fns := make([]Func, funcCount)
	for i := range fns {
		fns[i] = Func(i)
	}
	return fns
}

func FuncByName(name string) (Func, bool) {
	for i, info := range funcInfos {
		if info.name == name {
			return Func(i), true
		}
	}
	return 0, false
}
