package accuracy

import (
	"context"
	"sync"
	"time"

	"github.com/beatoz/fxmath-go/ops"
	"github.com/beatoz/fxmath-go/types"
	"github.com/beatoz/fxmath-go/types/xerrors"
	"github.com/shopspring/decimal"
	"github.com/tendermint/tendermint/libs/log"
)

// checkEvery is how many points are evaluated between cancellation checks.
const checkEvery = 256

// Runner measures functions at both widths against their references.
type Runner struct {
	strategy Strategy
	exact    bool
	logger   log.Logger
}

func NewRunner(strategy Strategy, exact bool, logger log.Logger) *Runner {
	return &Runner{
		strategy: strategy,
		exact:    exact,
		logger:   logger.With("module", "accuracy"),
	}
}

// Run measures fns concurrently, one goroutine per function. Results keep
// the order of fns.
func (r *Runner) Run(ctx context.Context, fns []Function) (*Report, xerrors.XError) {
	started := time.Now()
	results := make([]Result, len(fns))

	var wg sync.WaitGroup
	for i, f := range fns {
		wg.Add(1)
		go func(i int, f Function) {
			defer wg.Done()
			results[i] = r.measure(ctx, f)
		}(i, f)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, xerrors.From(err)
	}

	r.logger.Info("accuracy run finished",
		"strategy", r.strategy.Name, "functions", len(fns), "elapsed", time.Since(started))
	return &Report{
		Timestamp: started.Unix(),
		Strategy:  r.strategy.Name,
		Exact:     r.exact,
		Host:      CollectHostInfo(),
		Results:   results,
	}, nil
}

func (r *Runner) measure(ctx context.Context, f Function) Result {
	started := time.Now()
	res := Result{
		Name:   f.Name(),
		Domain: f.Domain.String(),
		I16F16: measureAt[types.I16F16](ctx, r.strategy, f, r.exact),
		I32F32: measureAt[types.I32F32](ctx, r.strategy, f, r.exact),
	}
	res.Elapsed = time.Since(started).Milliseconds()

	r.logger.Debug("measured", "func", res.Name,
		"i16f16.relMean", res.I16F16.RelMean, "i32f32.relMean", res.I32F32.RelMean,
		"elapsedMs", res.Elapsed)
	return res
}

func measureAt[T types.Number](ctx context.Context, s Strategy, f Function, exact bool) Stats {
	format := types.FormatOf[T]()
	xs := s.Sample(f.Domain, types.ToFloat(types.MinOf[T]()), types.ToFloat(types.MaxOf[T]()))

	c := newCollector(len(xs))
	for i, x := range xs {
		if i%checkEvery == 0 && ctx.Err() != nil {
			break
		}
		in := types.FromFloat[T](x)
		out, xerr := ops.Eval(f.Func, in)
		if xerr != nil {
			c.skip()
			continue
		}
		c.add(types.ToFloat(out[0]), reference(f, format.ToDecimal, format.ToFloat64, int64(in), exact))
	}
	return c.stats()
}

// reference evaluates the reference at the quantized input, so the
// measured error is that of the function and not of input rounding.
func reference(
	f Function,
	toDecimal func(int64) decimal.Decimal,
	toFloat func(int64) float64,
	raw int64,
	exact bool,
) float64 {
	if exact && f.Exact != nil {
		return f.Exact(toDecimal(raw)).InexactFloat64()
	}
	return f.Ref(toFloat(raw))
}
