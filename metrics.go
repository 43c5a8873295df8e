package staticalloc

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting allocator metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAllocPages is called after each page allocation.
	// pages is the number of pages requested, duration is the time taken
	// including lock acquisition, err is nil if the request was granted.
	RecordAllocPages(pages uint64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocPages(uint64, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocCount      atomic.Int64
	AllocErrors     atomic.Int64
	AllocTotalNanos atomic.Int64
	PagesGranted    atomic.Uint64
}

// RecordAllocPages implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocPages(pages uint64, duration time.Duration, err error) {
	b.AllocCount.Add(1)
	b.AllocTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	b.PagesGranted.Add(pages)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	count := b.AllocCount.Load()
	var avg int64
	if count > 0 {
		avg = b.AllocTotalNanos.Load() / count
	}
	return BasicMetricsStats{
		AllocCount:    count,
		AllocErrors:   b.AllocErrors.Load(),
		AllocAvgNanos: avg,
		PagesGranted:  b.PagesGranted.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	AllocCount    int64
	AllocErrors   int64
	AllocAvgNanos int64
	PagesGranted  uint64
}
