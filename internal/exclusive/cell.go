package exclusive

import (
	"errors"
	"sync"
)

// ErrReentrant is the panic value raised by a re-entrant With in builds with
// the extra_assertions tag.
var ErrReentrant = errors.New("exclusive: Cell is not re-entrant")

// Cell holds a value of type T and serializes access to it.
//
// The zero Cell is ready to use and holds the zero T, so a Cell can be a
// package-level variable without any initialization code. A Cell must not be
// copied after first use.
type Cell[T any] struct {
	mu    sync.Mutex
	guard guard
	value T
}

// NewCell returns a Cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// With runs f with exclusive, mutable access to the value held by c and
// returns whatever f returns. It blocks until no other call holds c.
//
// f must not call With on c again. The lock is released on every exit path,
// including a panic in f.
func With[T, U any](c *Cell[T], f func(*T) U) U {
	id := c.guard.enter()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.guard.acquire(id)
	defer c.guard.release()

	return f(&c.value)
}

// Do is With for functions that return nothing.
func (c *Cell[T]) Do(f func(*T)) {
	With(c, func(v *T) struct{} {
		f(v)
		return struct{}{}
	})
}
