package arena

import "github.com/hupe1980/staticalloc/internal/mem"

// ScratchLenBytes is the length of the process-wide static buffer (32 MiB).
const ScratchLenBytes = 32 * 1024 * 1024

// The extra cache line lets the usable region start on an aligned address.
var scratch [ScratchLenBytes + mem.CacheLine]byte

var static = &Arena{
	buf:      mem.Align(scratch[:], mem.CacheLine)[:ScratchLenBytes:ScratchLenBytes],
	pageSize: WasmPageSize,
	static:   true,
}

// Static returns the process-wide arena over the static scratch buffer.
// It uses WasmPageSize pages and has no memory budget.
func Static() *Arena {
	return static
}
