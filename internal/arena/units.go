package arena

import "math/bits"

// WasmPageSize is the size of a WebAssembly linear-memory page (64 KiB).
const WasmPageSize = 64 * 1024

// Pages is a count of fixed-size pages.
type Pages uint64

// Bytes is a length in bytes.
type Bytes uint64

// Bytes converts the page count to a byte length for the given page size.
// The second result is false if the product overflows.
func (p Pages) Bytes(pageSize int) (Bytes, bool) {
	if pageSize <= 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(p), uint64(pageSize))
	if hi != 0 {
		return 0, false
	}
	return Bytes(lo), true
}

// PagesFor returns the number of pages needed to hold n bytes, rounding up.
func PagesFor(n Bytes, pageSize int) Pages {
	if pageSize <= 0 {
		return 0
	}
	ps := uint64(pageSize)
	return Pages(uint64(n)/ps + min(uint64(n)%ps, 1))
}
