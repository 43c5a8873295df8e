// Package staticalloc provides backing memory and a mutual-exclusion primitive
// for allocators that run without an operating system heap, such as a Go
// program compiled for a sandboxed WebAssembly runtime.
//
// It has two independent parts:
//
//   - Allocator, a page-granularity bump allocator over one fixed-length
//     buffer. It never frees and never grows.
//   - Exclusive, a lock-guarded cell that gives one caller at a time mutable
//     access to a value.
//
// A higher-level allocator (block sizing, free lists, the malloc/free
// surface) calls AllocPages when it needs another chunk and may keep its own
// bookkeeping in an Exclusive. The two parts do not call each other.
//
// # Quick Start
//
//	// The process-wide allocator over a 32 MiB static array.
//	base, err := staticalloc.AllocPages(4)
//	if errors.Is(err, staticalloc.ErrAlloc) {
//	    // capacity exhausted, fall back or fail the request
//	}
//
//	// An explicit allocator over caller-owned memory.
//	a, _ := staticalloc.New(
//	    staticalloc.WithBacking(buf),
//	    staticalloc.WithPageSize(4096),
//	)
//	chunk, _ := a.AllocPagesBytes(2)
//
// # Allocation
//
// A request for n pages is converted to bytes and granted iff
// cursor+bytes < capacity. The comparison is strict: a request that would end
// exactly at the end of the buffer is refused. Granted ranges never overlap
// and stay owned by the caller until the process exits. Failures are reported
// as errors matching ErrAlloc; the allocation path never panics.
//
// # Exclusive Access
//
//	var state staticalloc.Exclusive[freeList] // zero value is ready to use
//
//	n := staticalloc.WithExclusiveAccess(&state, func(fl *freeList) int {
//	    return fl.pop()
//	})
//
// WithExclusiveAccess is not re-entrant. Build with -tags extra_assertions to
// turn a re-entrant call into a panic with ErrReentrant; the default build
// compiles the check out entirely.
//
// # Thread Safety
//
// Every Allocator and Exclusive operation is safe for concurrent use. Both
// block on a mutex without timeout; there is no try-lock path.
package staticalloc
