package dulp

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics
// of array operations.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordValuation is called after each ValArray call.
	// count is the number of elements produced (0 on error).
	RecordValuation(count int, duration time.Duration, err error)

	// RecordDistance is called after each DulpArray call.
	RecordDistance(count int, duration time.Duration, err error)

	// RecordDifference is called after each DifArray call.
	RecordDifference(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordValuation(int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordDistance(int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordDifference(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ValuationCount    atomic.Int64
	ValuationErrors   atomic.Int64
	ValuationElements atomic.Int64
	DistanceCount     atomic.Int64
	DistanceErrors    atomic.Int64
	DistanceElements  atomic.Int64
	DistanceNanos     atomic.Int64
	DifferenceCount   atomic.Int64
	DifferenceErrors  atomic.Int64
}

// RecordValuation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordValuation(count int, _ time.Duration, err error) {
	b.ValuationCount.Add(1)
	b.ValuationElements.Add(int64(count))
	if err != nil {
		b.ValuationErrors.Add(1)
	}
}

// RecordDistance implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDistance(count int, duration time.Duration, err error) {
	b.DistanceCount.Add(1)
	b.DistanceElements.Add(int64(count))
	b.DistanceNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DistanceErrors.Add(1)
	}
}

// RecordDifference implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDifference(_ int, _ time.Duration, err error) {
	b.DifferenceCount.Add(1)
	if err != nil {
		b.DifferenceErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ValuationCount:    b.ValuationCount.Load(),
		ValuationErrors:   b.ValuationErrors.Load(),
		ValuationElements: b.ValuationElements.Load(),
		DistanceCount:     b.DistanceCount.Load(),
		DistanceErrors:    b.DistanceErrors.Load(),
		DistanceElements:  b.DistanceElements.Load(),
		DistanceAvgNanos:  b.getAvgDistanceNanos(),
		DifferenceCount:   b.DifferenceCount.Load(),
		DifferenceErrors:  b.DifferenceErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgDistanceNanos() int64 {
	count := b.DistanceCount.Load()
	if count == 0 {
		return 0
	}
	return b.DistanceNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ValuationCount    int64
	ValuationErrors   int64
	ValuationElements int64
	DistanceCount     int64
	DistanceErrors    int64
	DistanceElements  int64
	DistanceAvgNanos  int64
	DifferenceCount   int64
	DifferenceErrors  int64
}
