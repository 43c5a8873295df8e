package staticalloc

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/hupe1980/staticalloc/internal/arena"
	"github.com/hupe1980/staticalloc/internal/mem"
)

const (
	// PageSize is the default page size (64 KiB, one WebAssembly page).
	PageSize = arena.WasmPageSize
	// ScratchLenBytes is the length of the static buffer behind Default (32 MiB).
	ScratchLenBytes = arena.ScratchLenBytes
)

// Pages is a count of fixed-size pages.
type Pages = arena.Pages

// Stats tracks allocator usage.
type Stats = arena.Stats

// Allocator hands out non-overlapping page-sized ranges of one fixed-length
// buffer by advancing a cursor. It never frees and never grows.
type Allocator struct {
	arena   *arena.Arena
	logger  *Logger
	metrics MetricsCollector
}

var defaultAllocator = &Allocator{
	arena:   arena.Static(),
	logger:  NoopLogger(),
	metrics: NoopMetricsCollector{},
}

// Default returns the process-wide allocator over the static scratch buffer.
// Its page size is PageSize and Close is a no-op.
func Default() *Allocator {
	return defaultAllocator
}

// AllocPages allocates from the process-wide allocator. See Allocator.AllocPages.
func AllocPages(pages Pages) (unsafe.Pointer, error) {
	return defaultAllocator.AllocPages(pages)
}

// New creates an Allocator. Without a backing option it maps ScratchLenBytes
// of anonymous memory.
func New(optFns ...Option) (*Allocator, error) {
	o := options{
		pageSize:         PageSize,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}

	if o.backingSet > 1 {
		return nil, ErrConflictingBacking
	}

	arenaOpts := []arena.Option{arena.WithPageSize(o.pageSize)}
	if o.budget != nil {
		arenaOpts = append(arenaOpts, arena.WithMemoryAcquirer(o.budget.c))
	}

	var (
		ar  *arena.Arena
		err error
	)
	switch {
	case o.backing != nil:
		ar, err = arena.New(o.backing, arenaOpts...)
	case o.heapSize > 0:
		ar, err = arena.New(mem.AllocAligned(o.heapSize, mem.CacheLine), arenaOpts...)
	case o.anonSize != 0:
		ar, err = arena.NewAnon(o.anonSize, arenaOpts...)
	case o.backingSet == 1:
		// An empty backing buffer: an allocator that refuses everything.
		ar, err = arena.New(nil, arenaOpts...)
	default:
		ar, err = arena.NewAnon(ScratchLenBytes, arenaOpts...)
	}
	if err != nil {
		return nil, err
	}

	return &Allocator{
		arena:   ar,
		logger:  o.logger.WithAllocator(ar.Len(), ar.PageSize()),
		metrics: o.metricsCollector,
	}, nil
}

// AllocPages grants pages whole pages and returns the base address of the
// range, exclusively owned by the caller until the process exits.
//
// The request is granted iff cursor+bytes < capacity, so a request ending
// exactly at the end of the buffer is refused. A refusal returns an error
// matching ErrAlloc (an *AllocError) and leaves the cursor unchanged. A zero
// page count returns the address at the cursor without advancing it.
func (a *Allocator) AllocPages(pages Pages) (unsafe.Pointer, error) {
	start := time.Now()
	p, err := a.arena.AllocPages(pages)
	a.record(pages, start, err)
	return p, err
}

// AllocPagesBytes is AllocPages returning the range as a slice whose capacity
// is clamped to the range.
func (a *Allocator) AllocPagesBytes(pages Pages) ([]byte, error) {
	start := time.Now()
	b, err := a.arena.AllocPagesBytes(pages)
	a.record(pages, start, err)
	return b, err
}

func (a *Allocator) record(pages Pages, start time.Time, err error) {
	a.metrics.RecordAllocPages(uint64(pages), time.Since(start), err)
	a.logger.LogAllocPages(pages, a.arena.Cursor(), err)
}

// Cursor returns the offset of the next grant.
func (a *Allocator) Cursor() int { return a.arena.Cursor() }

// Len returns the length of the backing buffer.
func (a *Allocator) Len() int { return a.arena.Len() }

// Remaining returns the number of bytes past the cursor.
func (a *Allocator) Remaining() int { return a.arena.Remaining() }

// PageSize returns the page size in bytes.
func (a *Allocator) PageSize() int { return a.arena.PageSize() }

// Stats returns the current allocator statistics.
func (a *Allocator) Stats() Stats { return a.arena.Stats() }

// Close refuses further allocations, returns granted bytes to the Budget and
// releases an anonymous mapping. Ranges handed out from a mapping become
// invalid. Close on Default is a no-op.
func (a *Allocator) Close() error {
	if a == defaultAllocator {
		return nil
	}
	err := a.arena.Close()
	a.logger.LogClose(a.arena.Stats(), err)
	if err != nil {
		return fmt.Errorf("staticalloc: close: %w", err)
	}
	return nil
}

func (a *Allocator) String() string {
	return a.arena.String()
}
