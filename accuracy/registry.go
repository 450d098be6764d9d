package accuracy

import (
	"math"
	"sync"

	"github.com/beatoz/fxmath-go/tables"
	"github.com/beatoz/fxmath-go/types"
	"github.com/shopspring/decimal"
)

// Function is one single-argument function under measurement. Ref is the
// float64 reference. Exact, when set, is a decimal reference used instead
// of Ref when exact references are requested.
type Function struct {
	Func   types.Func
	Domain Domain
	Ref    func(float64) float64
	Exact  func(decimal.Decimal) decimal.Decimal
}

func (f Function) Name() string {
	return f.Func.String()
}

var (
	refLn2  = sync.OnceValue(tables.RefLn2)
	refLn10 = sync.OnceValue(tables.RefLn10)
)

func exactLog(base func() decimal.Decimal) func(decimal.Decimal) decimal.Decimal {
	return func(x decimal.Decimal) decimal.Decimal {
		return tables.RefLn(x).DivRound(base(), tables.RefDigits)
	}
}

// Registry lists the measured functions in report order.
var Registry = []Function{
	{Func: types.FuncSin, Domain: Full(), Ref: math.Sin},
	{Func: types.FuncCos, Domain: Full(), Ref: math.Cos},
	{Func: types.FuncTan, Domain: Open(-1.5, 1.5), Ref: math.Tan},
	{Func: types.FuncAsin, Domain: Closed(-0.99, 0.99), Ref: math.Asin},
	{Func: types.FuncAcos, Domain: Closed(-0.99, 0.99), Ref: math.Acos},
	{Func: types.FuncAtan, Domain: Closed(-100, 100), Ref: math.Atan, Exact: tables.RefAtan},
	{Func: types.FuncSinh, Domain: Closed(-8, 8), Ref: math.Sinh},
	{Func: types.FuncCosh, Domain: Closed(-8, 8), Ref: math.Cosh},
	{Func: types.FuncTanh, Domain: Closed(-10, 10), Ref: math.Tanh},
	{Func: types.FuncCoth, Domain: Closed(0.1, 10), Ref: coth},
	{Func: types.FuncAsinh, Domain: Closed(-20, 20), Ref: math.Asinh},
	{Func: types.FuncAcosh, Domain: Closed(1.01, 20), Ref: math.Acosh},
	{Func: types.FuncAtanh, Domain: Open(-0.99, 0.99), Ref: math.Atanh},
	{Func: types.FuncAcoth, Domain: OutsideUnit(1.01), Ref: acoth},
	{Func: types.FuncExp, Domain: Closed(-10, 8), Ref: math.Exp, Exact: tables.RefExp},
	{Func: types.FuncLn, Domain: Closed(0.001, 1000), Ref: math.Log, Exact: tables.RefLn},
	{Func: types.FuncLog2, Domain: Closed(0.01, 1000), Ref: math.Log2, Exact: exactLog(refLn2)},
	{Func: types.FuncLog10, Domain: Closed(0.01, 1000), Ref: math.Log10, Exact: exactLog(refLn10)},
	{Func: types.FuncPow2, Domain: Closed(-10, 10), Ref: math.Exp2},
	{Func: types.FuncSqrt, Domain: Closed(0, 10000), Ref: math.Sqrt, Exact: tables.RefSqrt},
}

func coth(x float64) float64 {
	return 1 / math.Tanh(x)
}

func acoth(x float64) float64 {
	return 0.5 * math.Log((x+1)/(x-1))
}

// Lookup returns the registered functions with the given names, in
// registry order. No names selects all of them.
func Lookup(names ...string) ([]Function, bool) {
	if len(names) == 0 {
		return Registry, true
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var ret []Function
	for _, f := range Registry {
		if want[f.Name()] {
			ret = append(ret, f)
			delete(want, f.Name())
		}
	}
	return ret, len(want) == 0
}
