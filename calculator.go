package dulp

import (
	"context"
	"time"

	"github.com/hupe1980/dulp/internal/conv"
	"github.com/hupe1980/dulp/internal/mem"
	"github.com/hupe1980/dulp/internal/simd"
	"github.com/hupe1980/dulp/ndarray"
	"golang.org/x/sync/errgroup"
)

// chunkAlign keeps parallel chunk boundaries on whole kernel blocks.
const chunkAlign = 64

// Calculator runs element-wise valuation and distance operations over
// arrays. It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	opts   options
	logger *Logger
}

// NewCalculator returns a Calculator configured by opts.
func NewCalculator(opts ...Option) *Calculator {
	o := applyOptions(opts)
	c := &Calculator{
		opts:   o,
		logger: o.logger,
	}
	c.logger.Debug("calculator ready",
		"isa", simd.ActiveISA().String(),
		"kernels", simd.Kernels(),
		"parallel_threshold", o.parallelThreshold,
		"concurrency", o.concurrency,
	)
	return c
}

// Valuate64 returns the valuation of every element of x.
func (c *Calculator) Valuate64(ctx context.Context, x *ndarray.Array[float64]) (*ndarray.Array[uint64], error) {
	start := time.Now()
	out, chunks, err := mapUnary(ctx, c, x, simd.Val64)
	return finish(ctx, c, opVal, start, out, chunks, c.opts.metricsCollector.RecordValuation, err)
}

// Valuate32 returns the valuation of every element of x.
func (c *Calculator) Valuate32(ctx context.Context, x *ndarray.Array[float32]) (*ndarray.Array[uint32], error) {
	start := time.Now()
	out, chunks, err := mapUnary(ctx, c, x, simd.Val32)
	return finish(ctx, c, opVal, start, out, chunks, c.opts.metricsCollector.RecordValuation, err)
}

// Distance64 returns the element-wise order distance from a to b over their
// broadcast shape.
func (c *Calculator) Distance64(ctx context.Context, a, b *ndarray.Array[float64]) (*ndarray.Array[float64], error) {
	start := time.Now()
	out, chunks, err := mapBinary(ctx, c, a, b, simd.Dulp64)
	return finish(ctx, c, opDulp, start, out, chunks, c.opts.metricsCollector.RecordDistance, err)
}

// Distance32 returns the element-wise order distance from a to b over their
// broadcast shape.
func (c *Calculator) Distance32(ctx context.Context, a, b *ndarray.Array[float32]) (*ndarray.Array[float32], error) {
	start := time.Now()
	out, chunks, err := mapBinary(ctx, c, a, b, simd.Dulp32)
	return finish(ctx, c, opDulp, start, out, chunks, c.opts.metricsCollector.RecordDistance, err)
}

// Difference64 returns vb - va element-wise over the broadcast shape.
func (c *Calculator) Difference64(ctx context.Context, va, vb *ndarray.Array[uint64]) (*ndarray.Array[float64], error) {
	start := time.Now()
	out, chunks, err := mapBinary(ctx, c, va, vb, simd.Dif64)
	return finish(ctx, c, opDif, start, out, chunks, c.opts.metricsCollector.RecordDifference, err)
}

// Difference32 returns vb - va element-wise over the broadcast shape.
func (c *Calculator) Difference32(ctx context.Context, va, vb *ndarray.Array[uint32]) (*ndarray.Array[float32], error) {
	start := time.Now()
	out, chunks, err := mapBinary(ctx, c, va, vb, simd.Dif32)
	return finish(ctx, c, opDif, start, out, chunks, c.opts.metricsCollector.RecordDifference, err)
}

func mapUnary[T any, R mem.Element](ctx context.Context, c *Calculator, x *ndarray.Array[T], kernel func(dst []R, src []T)) (*ndarray.Array[R], int, error) {
	out, err := newOutput[R](x.Shape())
	if err != nil {
		return nil, 0, err
	}
	dst, src := out.Data(), x.Data()
	chunks, err := c.run(ctx, len(dst), func(lo, hi int) {
		kernel(dst[lo:hi], src[lo:hi])
	})
	if err != nil {
		return nil, 0, err
	}
	return out, chunks, nil
}

func mapBinary[T any, R mem.Element](ctx context.Context, c *Calculator, a, b *ndarray.Array[T], kernel func(dst []R, a, b []T)) (*ndarray.Array[R], int, error) {
	shape, err := ndarray.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, 0, err
	}
	if a, err = ndarray.BroadcastTo(a, shape...); err != nil {
		return nil, 0, err
	}
	if b, err = ndarray.BroadcastTo(b, shape...); err != nil {
		return nil, 0, err
	}

	out, err := newOutput[R](shape)
	if err != nil {
		return nil, 0, err
	}
	dst, sa, sb := out.Data(), a.Data(), b.Data()
	chunks, err := c.run(ctx, len(dst), func(lo, hi int) {
		kernel(dst[lo:hi], sa[lo:hi], sb[lo:hi])
	})
	if err != nil {
		return nil, 0, err
	}
	return out, chunks, nil
}

// newOutput allocates a result array on a cache-line aligned buffer.
func newOutput[R mem.Element](shape []int) (*ndarray.Array[R], error) {
	if len(shape) == 0 {
		return ndarray.New[R]()
	}
	n, err := conv.Product(shape)
	if err != nil {
		return nil, err
	}
	buf, err := mem.Aligned[R](n)
	if err != nil {
		return nil, err
	}
	return ndarray.FromSlice(buf, shape...)
}

// run calls fn over [0, n), split into chunks that execute concurrently
// once n reaches the parallel threshold. It returns the number of chunks.
func (c *Calculator) run(ctx context.Context, n int, fn func(lo, hi int)) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	workers := c.opts.concurrency
	if c.opts.parallelThreshold <= 0 || n < c.opts.parallelThreshold || workers <= 1 {
		fn(0, n)
		return 1, nil
	}

	chunk := (n + workers - 1) / workers
	chunk = (chunk + chunkAlign - 1) &^ (chunkAlign - 1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	chunks := 0
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		chunks++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return chunks, nil
}

func finish[R any](ctx context.Context, c *Calculator, op string, start time.Time, out *ndarray.Array[R], chunks int, record func(int, time.Duration, error), err error) (*ndarray.Array[R], error) {
	err = translateError(op, err)

	var (
		shape []int
		count int
	)
	if err == nil {
		shape = out.Shape()
		count = out.Size()
	} else {
		out = nil
	}

	record(count, time.Since(start), err)
	c.logger.LogArrayOp(ctx, op, shape, count, chunks, err)
	return out, err
}
