package mem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}
	aligns := []int{8, CacheLine, 4096}

	for _, align := range aligns {
		for _, size := range sizes {
			t.Run(fmt.Sprintf("size=%d/align=%d", size, align), func(t *testing.T) {
				buf := AllocAligned(size, align)
				require.Len(t, buf, size)
				assert.Equal(t, size, cap(buf))

				addr := uintptr(unsafe.Pointer(&buf[0]))
				assert.Equal(t, uintptr(0), addr%uintptr(align))
			})
		}
	}

	assert.Nil(t, AllocAligned(0, CacheLine))
	assert.Nil(t, AllocAligned(-1, CacheLine))
	assert.Nil(t, AllocAligned(16, 3))
}

func TestAlign(t *testing.T) {
	var backing [256]byte

	buf := Align(backing[:], CacheLine)
	require.NotNil(t, buf)
	assert.Equal(t, uintptr(0), uintptr(unsafe.Pointer(&buf[0]))%CacheLine)
	assert.GreaterOrEqual(t, len(buf), 256-CacheLine+1)

	// The aligned view shares memory with the input.
	buf[0] = 7
	assert.Contains(t, backing[:], byte(7))

	assert.Nil(t, Align(nil, CacheLine))
	assert.Nil(t, Align(backing[:], 0))
	assert.Nil(t, Align(backing[:], 48))
}
