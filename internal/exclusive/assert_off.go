//go:build !extra_assertions

package exclusive

// AssertionsEnabled reports whether re-entrancy is checked in this build.
const AssertionsEnabled = false

type goid = struct{}

type guard struct{}

func (*guard) enter() goid { return goid{} }

func (*guard) acquire(goid) {}

func (*guard) release() {}
