package dulp

import (
	"log/slog"
	"runtime"
)

// DefaultParallelThreshold is the element count from which a Calculator
// splits an array operation across goroutines.
const DefaultParallelThreshold = 1 << 16

type options struct {
	metricsCollector  MetricsCollector
	logger            *Logger
	parallelThreshold int
	concurrency       int
}

// Option configures a Calculator.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring
// array operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &dulp.BasicMetricsCollector{}
//	calc := dulp.NewCalculator(dulp.WithMetricsCollector(metrics))
//	// ... use calc ...
//	stats := metrics.GetStats()
//	fmt.Printf("Distances: %d, Avg latency: %dns\n", stats.DistanceCount, stats.DistanceAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := dulp.NewJSONLogger(slog.LevelDebug)
//	calc := dulp.NewCalculator(dulp.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithParallelThreshold sets the element count from which array operations
// are split into chunks that run concurrently. Values <= 0 disable
// parallel execution.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		o.parallelThreshold = n
	}
}

// WithConcurrency caps the number of goroutines used by one array
// operation. Values <= 0 select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector:  NoopMetricsCollector{},
		logger:            NoopLogger(),
		parallelThreshold: DefaultParallelThreshold,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
