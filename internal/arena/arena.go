// Package arena implements a page-granularity bump allocator over a single
// fixed-length buffer.
//
// # Concurrency Model
//
// AllocPages, AllocPagesBytes and AllocPagesOffset are safe for concurrent use.
// The check-and-advance sequence runs under one mutex, so no two callers ever
// observe the same cursor value. Close must not race with allocations.
//
// # Memory Management
//
// The cursor only moves forward. Memory handed out stays owned by the caller
// until the process exits (or, for an anonymous mapping, until Close). There is
// no Free and no Reset.
package arena

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/staticalloc/internal/conv"
	"github.com/hupe1980/staticalloc/internal/mmap"
)

// MemoryAcquirer is an interface for reserving memory against a budget.
type MemoryAcquirer interface {
	AcquireMemory(amount int64) error
	ReleaseMemory(amount int64)
}

var (
	// ErrAlloc is returned when the backing buffer cannot satisfy a request.
	ErrAlloc = errors.New("arena: allocation failed")
	// ErrInvalidPageSize is returned when the configured page size is not positive.
	ErrInvalidPageSize = errors.New("arena: invalid page size")
	// ErrClosed is the cause recorded when allocating from a closed arena.
	ErrClosed = errors.New("arena: closed")
)

// AllocError describes a refused allocation. It matches ErrAlloc with errors.Is.
type AllocError struct {
	Pages     Pages
	Requested Bytes // 0 if the byte length overflowed
	Cursor    int
	Capacity  int
	cause     error
}

func (e *AllocError) Error() string {
	msg := fmt.Sprintf("arena: allocation failed: %d pages (%d bytes) at offset %d of %d",
		e.Pages, e.Requested, e.Cursor, e.Capacity)
	if e.cause != nil {
		return msg + ": " + e.cause.Error()
	}
	return msg
}

// Is reports whether target is ErrAlloc.
func (e *AllocError) Is(target error) bool { return target == ErrAlloc }

func (e *AllocError) Unwrap() error { return e.cause }

// Stats tracks arena usage.
type Stats struct {
	Grants       uint64 // Historical: successful allocations
	Failures     uint64 // Historical: refused allocations
	PagesGranted uint64 // Historical: pages handed out
	BytesGranted uint64 // Current: equals the cursor
	Capacity     uint64 // Length of the backing buffer
}

type atomicStats struct {
	Grants       atomic.Uint64
	Failures     atomic.Uint64
	PagesGranted atomic.Uint64
	BytesGranted atomic.Uint64
}

// Arena is a bump allocator over one fixed-length buffer.
type Arena struct {
	mu       sync.Mutex
	buf      []byte
	offset   int // cursor, guarded by mu
	pageSize int
	closed   bool
	static   bool
	mapping  *mmap.Mapping // non-nil if the arena owns an anonymous mapping
	acquirer MemoryAcquirer
	acquired int64 // bytes reserved from acquirer
	stats    atomicStats
}

// Option is a configuration option for Arena.
type Option func(*Arena)

// WithPageSize sets the page size in bytes. Defaults to WasmPageSize.
func WithPageSize(size int) Option {
	return func(a *Arena) {
		a.pageSize = size
	}
}

// WithMemoryAcquirer sets the memory budget consulted before every grant.
func WithMemoryAcquirer(acquirer MemoryAcquirer) Option {
	return func(a *Arena) {
		a.acquirer = acquirer
	}
}

// New creates an Arena that allocates from buf. The arena takes ownership of
// buf; the caller must not touch it afterwards except through granted ranges.
func New(buf []byte, opts ...Option) (*Arena, error) {
	a := &Arena{
		buf:      buf,
		pageSize: WasmPageSize,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.pageSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, a.pageSize)
	}
	return a, nil
}

// NewAnon creates an Arena backed by an anonymous off-heap mapping of size
// bytes. Close releases the mapping.
func NewAnon(size int, opts ...Option) (*Arena, error) {
	mapping, err := mmap.MapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("failed to map anonymous memory for arena: %w", err)
	}

	a, err := New(mapping.Bytes(), opts...)
	if err != nil {
		_ = mapping.Close()
		return nil, err
	}
	a.mapping = mapping
	return a, nil
}

type grant struct {
	offset int
	base   unsafe.Pointer
	data   []byte
}

// reserve is the only place the cursor is checked and advanced.
func (a *Arena) reserve(pages Pages) (grant, error) {
	size, ok := pages.Bytes(a.pageSize)

	a.mu.Lock()
	defer a.mu.Unlock()

	capacity := len(a.buf)
	fail := func(cause error) (grant, error) {
		a.stats.Failures.Add(1)
		return grant{}, &AllocError{
			Pages:     pages,
			Requested: size,
			Cursor:    a.offset,
			Capacity:  capacity,
			cause:     cause,
		}
	}

	if a.closed {
		return fail(ErrClosed)
	}
	if !ok {
		return fail(nil)
	}
	n, err := conv.Uint64ToInt(uint64(size))
	if err != nil {
		return fail(nil)
	}

	// Strict: a grant ending exactly at capacity is refused.
	if n >= capacity-a.offset {
		return fail(nil)
	}

	if a.acquirer != nil && n > 0 {
		if err := a.acquirer.AcquireMemory(int64(n)); err != nil {
			return fail(err)
		}
		a.acquired += int64(n)
	}

	start := a.offset
	end := start + n
	g := grant{
		offset: start,
		base:   unsafe.Pointer(&a.buf[start]), //nolint:gosec // start < capacity
		data:   a.buf[start:end:end],
	}
	a.offset = end

	a.stats.Grants.Add(1)
	a.stats.PagesGranted.Add(uint64(pages))
	a.stats.BytesGranted.Add(uint64(size))

	return g, nil
}

// AllocPages grants pages whole pages and returns the base address of the
// range. The range is exclusively owned by the caller and never overlaps any
// other grant.
//
// The request is refused with an error matching ErrAlloc when
// cursor+bytes >= capacity. A zero page count returns the address at the
// cursor without advancing it.
func (a *Arena) AllocPages(pages Pages) (unsafe.Pointer, error) {
	g, err := a.reserve(pages)
	if err != nil {
		return nil, err
	}
	return g.base, nil
}

// AllocPagesBytes is AllocPages returning the granted range as a slice whose
// capacity is clamped to the range.
func (a *Arena) AllocPagesBytes(pages Pages) ([]byte, error) {
	g, err := a.reserve(pages)
	if err != nil {
		return nil, err
	}
	return g.data, nil
}

// AllocPagesOffset is AllocPages returning the offset of the range within the
// backing buffer.
func (a *Arena) AllocPagesOffset(pages Pages) (int, error) {
	g, err := a.reserve(pages)
	if err != nil {
		return 0, err
	}
	return g.offset, nil
}

// Get returns a pointer to the byte at offset, or nil if offset has not been
// handed out yet.
func (a *Arena) Get(offset int) unsafe.Pointer {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed || offset < 0 || offset >= a.offset {
		return nil
	}
	return unsafe.Pointer(&a.buf[offset]) //nolint:gosec // offset < cursor <= capacity
}

// Cursor returns the current allocation offset.
func (a *Arena) Cursor() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.offset
}

// Len returns the length of the backing buffer.
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.buf)
}

// Remaining returns the number of bytes past the cursor.
func (a *Arena) Remaining() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.buf) - a.offset
}

// PageSize returns the configured page size in bytes.
func (a *Arena) PageSize() int {
	return a.pageSize
}

// Stats returns the current arena statistics.
func (a *Arena) Stats() Stats {
	capacity, _ := conv.IntToUint64(a.Len())
	return Stats{
		Grants:       a.stats.Grants.Load(),
		Failures:     a.stats.Failures.Load(),
		PagesGranted: a.stats.PagesGranted.Load(),
		BytesGranted: a.stats.BytesGranted.Load(),
		Capacity:     capacity,
	}
}

// Usage returns the share of the buffer handed out, in percent.
func (a *Arena) Usage() float64 {
	stats := a.Stats()
	if stats.Capacity == 0 {
		return 0
	}
	return float64(stats.BytesGranted) / float64(stats.Capacity) * 100
}

// Close refuses further allocations, returns reserved bytes to the memory
// budget and unmaps an owned anonymous mapping. Ranges handed out from a
// mapping become invalid. Close on the static arena is a no-op.
func (a *Arena) Close() error {
	if a.static {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	if a.acquirer != nil && a.acquired > 0 {
		a.acquirer.ReleaseMemory(a.acquired)
		a.acquired = 0
	}

	if a.mapping != nil {
		err := a.mapping.Close()
		a.buf = nil
		return err
	}
	return nil
}

func (a *Arena) String() string {
	stats := a.Stats()
	return fmt.Sprintf(
		"Arena{capacity: %.2f MB, granted: %.2f MB, usage: %.1f%%, grants: %d, failures: %d}",
		float64(stats.Capacity)/(1024*1024),
		float64(stats.BytesGranted)/(1024*1024),
		a.Usage(),
		stats.Grants,
		stats.Failures,
	)
}
