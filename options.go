package staticalloc

import (
	"github.com/hupe1980/staticalloc/internal/resource"
)

type options struct {
	pageSize         int
	backing          []byte
	anonSize         int
	heapSize         int
	budget           *Budget
	logger           *Logger
	metricsCollector MetricsCollector
	backingSet       int
}

// Option configures New.
type Option func(*options)

// WithPageSize sets the page size in bytes that AllocPages counts in.
// Defaults to PageSize (64 KiB, one WebAssembly page).
func WithPageSize(size int) Option {
	return func(o *options) {
		o.pageSize = size
	}
}

// WithBacking makes the allocator hand out ranges of buf. The allocator owns
// buf from then on.
func WithBacking(buf []byte) Option {
	return func(o *options) {
		o.backing = buf
		o.backingSet++
	}
}

// WithAnonBacking backs the allocator with an anonymous off-heap mapping of
// size bytes, released by Close. This is the default, sized ScratchLenBytes,
// when no backing option is given.
func WithAnonBacking(size int) Option {
	return func(o *options) {
		o.anonSize = size
		o.backingSet++
	}
}

// WithHeapBacking backs the allocator with a cache-line aligned buffer of
// size bytes on the Go heap.
func WithHeapBacking(size int) Option {
	return func(o *options) {
		o.heapSize = size
		o.backingSet++
	}
}

// WithBudget makes every grant reserve its length from b. A Budget may be
// shared by several allocators.
func WithBudget(b *Budget) Option {
	return func(o *options) {
		o.budget = b
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// Budget caps the bytes granted by the allocators that share it.
type Budget struct {
	c *resource.Controller
}

// NewBudget returns a Budget of limit bytes. A limit of 0 only tracks usage.
func NewBudget(limit int64) *Budget {
	return &Budget{c: resource.NewController(resource.Config{MemoryLimitBytes: limit})}
}

// Usage returns the bytes currently reserved.
func (b *Budget) Usage() int64 {
	return b.c.MemoryUsage()
}

// Limit returns the configured limit in bytes (0 if unlimited).
func (b *Budget) Limit() int64 {
	return b.c.MemoryLimit()
}
