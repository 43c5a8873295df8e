package staticalloc

import (
	"errors"

	"github.com/hupe1980/staticalloc/internal/arena"
	"github.com/hupe1980/staticalloc/internal/exclusive"
	"github.com/hupe1980/staticalloc/internal/resource"
)

var (
	// ErrAlloc is returned when the backing buffer cannot satisfy a request.
	// It is the only allocation failure; there are no partial grants.
	ErrAlloc = arena.ErrAlloc

	// ErrMemoryLimitExceeded is wrapped by an ErrAlloc failure caused by a
	// Budget rather than by the buffer.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded

	// ErrInvalidPageSize is returned by New for a page size that is not positive.
	ErrInvalidPageSize = arena.ErrInvalidPageSize

	// ErrConflictingBacking is returned by New when more than one backing
	// buffer option is given.
	ErrConflictingBacking = errors.New("staticalloc: conflicting backing options")

	// ErrReentrant is the panic value of a re-entrant WithExclusiveAccess in
	// builds with the extra_assertions tag. It is never returned.
	ErrReentrant = exclusive.ErrReentrant
)

// AllocError describes a refused allocation: the pages requested, their byte
// length, the cursor and the capacity at the time. It matches ErrAlloc.
type AllocError = arena.AllocError
