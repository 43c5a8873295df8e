// Package resource implements a memory budget shared by one or more arenas.
//
// A Controller caps the number of bytes granted across every arena that
// consults it. The arena reserves against the budget after its own bounds
// check passes and before the cursor moves, so a refusal leaves the arena
// untouched:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 8 << 20, // 8 MiB across all arenas
//	})
//
//	a, _ := arena.New(buf, arena.WithMemoryAcquirer(rc))
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and an atomic
// counter for usage. AcquireMemory is non-blocking and returns immediately
// with ErrMemoryLimitExceeded if the limit would be exceeded. Memory is only
// released when an arena is closed.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
