package ops

import (
	"github.com/beatoz/fxmath-go/tables"
	"github.com/beatoz/fxmath-go/types"
	"github.com/beatoz/fxmath-go/types/xerrors"
)

// Eval applies fn to args and returns its results. It serves callers that
// pick the function at run time, such as the command line and the
// accuracy harness.
func Eval[T types.Number](fn types.Func, args ...T) ([]T, xerrors.XError) {
	if !fn.Valid() {
		return nil, xerrors.ErrUnknownFunc.Wrapf("%d", int(fn))
	}
	if len(args) != fn.Args() {
		return nil, xerrors.ErrArity.Wrapf("%v takes %d, got %d", fn, fn.Args(), len(args))
	}
	raw := make([]int64, len(args))
	for i, a := range args {
		raw[i] = int64(a)
	}

	ret, xerr := evalRaw(table[T](), fn, raw)
	if xerr != nil {
		return nil, xerr
	}
	out := make([]T, len(ret))
	for i, r := range ret {
		out[i] = T(r)
	}
	return out, nil
}

// EvalName is Eval with the function given by name.
func EvalName[T types.Number](name string, args ...T) ([]T, xerrors.XError) {
	fn, ok := types.FuncByName(name)
	if !ok {
		return nil, xerrors.ErrUnknownFunc.Wrapf("%q", name)
	}
	return Eval(fn, args...)
}

func evalRaw(t *tables.Table, fn types.Func, a []int64) ([]int64, xerrors.XError) {
	one := func(v int64) ([]int64, xerrors.XError) {
		return []int64{v}, nil
	}
	fallible := func(v int64, xerr xerrors.XError) ([]int64, xerrors.XError) {
		if xerr != nil {
			return nil, xerr
		}
		return []int64{v}, nil
	}

	switch fn {
	case types.FuncSin:
		s, _ := sinCos(t, a[0])
		return one(s)
	case types.FuncCos:
		_, c := sinCos(t, a[0])
		return one(c)
	case types.FuncSinCos:
		s, c := sinCos(t, a[0])
		return []int64{s, c}, nil
	case types.FuncTan:
		return one(tan(t, a[0]))
	case types.FuncAtan:
		return one(atan2(t, a[0], t.Format.One()))
	case types.FuncAtan2:
		return one(atan2(t, a[0], a[1]))
	case types.FuncAsin:
		return fallible(asin(t, a[0]))
	case types.FuncAcos:
		return fallible(acos(t, a[0]))
	case types.FuncSinh:
		s, _ := sinhCosh(t, a[0])
		return one(s)
	case types.FuncCosh:
		_, c := sinhCosh(t, a[0])
		return one(c)
	case types.FuncSinhCosh:
		s, c := sinhCosh(t, a[0])
		return []int64{s, c}, nil
	case types.FuncTanh:
		return one(t.Narrow(tanhWork(t, a[0])))
	case types.FuncAsinh:
		return one(asinh(t, a[0]))
	case types.FuncAcosh:
		return fallible(acosh(t, a[0]))
	case types.FuncAtanh:
		return fallible(atanh(t, a[0]))
	case types.FuncAcoth:
		return fallible(acoth(t, a[0]))
	case types.FuncCoth:
		return fallible(coth(t, a[0]))
	case types.FuncExp:
		return one(exp(t, a[0]))
	case types.FuncPow2:
		return one(pow2(t, a[0]))
	case types.FuncLn:
		return fallible(ln(t, a[0]))
	case types.FuncLog2:
		return fallible(log2(t, a[0]))
	case types.FuncLog10:
		return fallible(log10(t, a[0]))
	case types.FuncPow:
		return fallible(pow(t, a[0], a[1]))
	case types.FuncSqrt:
		return fallible(sqrt(t, a[0]))
	}
	return nil, xerrors.ErrUnknownFunc.Wrapf("%v", fn)
}
