package mem

import (
	"unsafe"
)

// CacheLine is the alignment of the static scratch buffer and of heap
// backing buffers (64 bytes).
const CacheLine = 64

// Align returns the longest suffix of buf whose first byte sits at an address
// divisible by align. align must be a power of two. It returns nil if buf is
// too short to contain an aligned byte.
func Align(buf []byte, align int) []byte {
	if len(buf) == 0 || align <= 0 || align&(align-1) != 0 {
		return nil
	}

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	mask := uintptr(align - 1)
	offset := int((uintptr(align) - (addr & mask)) & mask)
	if offset >= len(buf) {
		return nil
	}

	return buf[offset:len(buf):len(buf)]
}

// AllocAligned allocates a zeroed byte slice of the given size whose first
// byte is aligned to align, which must be a power of two.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size, align int) []byte {
	if size <= 0 || align <= 0 || align&(align-1) != 0 {
		return nil
	}

	buf := Align(make([]byte, size+align), align)
	return buf[:size:size]
}
