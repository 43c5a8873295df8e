package staticalloc

import "github.com/hupe1980/staticalloc/internal/exclusive"

// AssertionsEnabled reports whether this build checks for re-entrant
// WithExclusiveAccess calls (the extra_assertions build tag).
const AssertionsEnabled = exclusive.AssertionsEnabled

// Exclusive holds a value of type T that is only reachable through
// WithExclusiveAccess. The zero value holds the zero T and is ready to use.
type Exclusive[T any] = exclusive.Cell[T]

// NewExclusive returns an Exclusive holding v.
func NewExclusive[T any](v T) *Exclusive[T] {
	return exclusive.NewCell(v)
}

// WithExclusiveAccess runs f with exclusive, mutable access to the value held
// by c and returns f's result unchanged. It blocks while another call holds c.
//
// f must not call WithExclusiveAccess on c again, directly or indirectly. With
// the extra_assertions build tag such a call panics with ErrReentrant; without
// it the call is unchecked and never returns.
func WithExclusiveAccess[T, U any](c *Exclusive[T], f func(*T) U) U {
	return exclusive.With(c, f)
}
