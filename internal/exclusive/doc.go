// Package exclusive provides Cell, a value guarded by a mutex that hands one
// caller at a time a mutable pointer to it.
//
// # Re-entrancy
//
// Cell is not re-entrant. The function passed to With must not call With (or
// Do) on the same Cell, directly or indirectly. Whether that precondition is
// checked is a build-time choice:
//
//	go build -tags extra_assertions ./...
//
// With the tag, a re-entrant call panics with ErrReentrant before it blocks.
// Without it the check is compiled out: Cell carries no extra state and a
// re-entrant call deadlocks on the mutex.
//
// Cell is not a general-purpose mutex wrapper and is unsuitable for recursive
// algorithms that operate on the same cell.
package exclusive
