package linearmem

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasmerio/wasmer-go/wasmer"

	"github.com/hupe1980/staticalloc"
)

func TestNew(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	defer runtime.KeepAlive(m)

	assert.Equal(t, 4*staticalloc.PageSize, m.Len())
	assert.Len(t, m.Bytes(), 4*staticalloc.PageSize)

	_, err = New(-1)
	assert.Error(t, err)
}

func TestMemory_Allocator(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	defer runtime.KeepAlive(m)

	a, err := m.Allocator()
	require.NoError(t, err)
	assert.Equal(t, staticalloc.PageSize, a.PageSize())
	assert.Equal(t, m.Len(), a.Len())

	b, err := a.AllocPagesBytes(3)
	require.NoError(t, err)
	b[0] = 0x2A
	assert.Equal(t, byte(0x2A), m.Bytes()[0])

	// The fourth page would end exactly at the end of the memory.
	_, err = a.AllocPages(1)
	assert.ErrorIs(t, err, staticalloc.ErrAlloc)

	_, err = m.Allocator(staticalloc.WithBacking(nil))
	assert.ErrorIs(t, err, staticalloc.ErrConflictingBacking)
}

func TestInstantiate(t *testing.T) {
	wasmBytes, err := wasmer.Wat2Wasm(`(module (memory (export "memory") 2 2))`)
	require.NoError(t, err)

	m, err := Instantiate(wasmBytes, DefaultExport)
	require.NoError(t, err)
	defer runtime.KeepAlive(m)
	assert.Equal(t, 2*staticalloc.PageSize, m.Len())

	a, err := m.Allocator()
	require.NoError(t, err)
	_, err = a.AllocPages(1)
	require.NoError(t, err)
	assert.Equal(t, staticalloc.PageSize, a.Cursor())

	_, err = Instantiate(wasmBytes, "heap")
	assert.ErrorIs(t, err, ErrNoMemory)

	_, err = Instantiate([]byte("not wasm"), DefaultExport)
	assert.Error(t, err)
}
