//go:build extra_assertions

package exclusive

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
)

// AssertionsEnabled reports whether re-entrancy is checked in this build.
const AssertionsEnabled = true

type goid = uint64

type guard struct {
	busy   bool          // guarded by Cell.mu
	holder atomic.Uint64 // goroutine inside With, 0 if none
}

// enter runs before the lock is taken so a re-entrant call fails instead of
// deadlocking.
func (g *guard) enter() goid {
	id := currentGoroutineID()
	if g.holder.Load() == id {
		panic(ErrReentrant)
	}
	return id
}

func (g *guard) acquire(id goid) {
	if g.busy {
		panic(ErrReentrant)
	}
	g.busy = true
	g.holder.Store(id)
}

func (g *guard) release() {
	g.holder.Store(0)
	g.busy = false
}

var goroutinePrefix = []byte("goroutine ")

// currentGoroutineID parses the id out of the "goroutine N [...]" header that
// runtime.Stack writes first.
func currentGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		panic("exclusive: cannot determine goroutine id: " + err.Error())
	}
	return id
}
