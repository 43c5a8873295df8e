// Package linearmem backs a staticalloc.Allocator with a WebAssembly linear
// memory, so a host can carve page-aligned ranges out of a guest's address
// space the same way the guest itself would.
//
// Memories are created with equal minimum and maximum sizes and are never
// grown; the allocator sees one fixed-length buffer.
//
// The byte slice behind a Memory lives in memory owned by the wasmer store.
// Keep the Memory reachable for as long as the allocator or any granted range
// is in use.
package linearmem

import (
	"errors"
	"fmt"

	"github.com/wasmerio/wasmer-go/wasmer"

	"github.com/hupe1980/staticalloc"
	"github.com/hupe1980/staticalloc/internal/conv"
)

// DefaultExport is the conventional name of a module's exported memory.
const DefaultExport = "memory"

// ErrNoMemory is returned when a module does not export the requested memory.
var ErrNoMemory = errors.New("linearmem: memory export not found")

// Memory is a fixed-size WebAssembly linear memory.
type Memory struct {
	store    *wasmer.Store
	instance *wasmer.Instance // nil for a standalone memory
	mem      *wasmer.Memory
}

// New creates a standalone linear memory of pages 64 KiB pages.
func New(pages int) (*Memory, error) {
	n, err := conv.IntToUint32(pages)
	if err != nil {
		return nil, fmt.Errorf("linearmem: invalid page count: %w", err)
	}

	limits, err := wasmer.NewLimits(n, n)
	if err != nil {
		return nil, fmt.Errorf("linearmem: %w", err)
	}

	store := wasmer.NewStore(wasmer.NewEngine())
	return &Memory{
		store: store,
		mem:   wasmer.NewMemory(store, wasmer.NewMemoryType(limits)),
	}, nil
}

// Instantiate compiles and instantiates wasmBytes without imports and returns
// the memory it exports under name.
func Instantiate(wasmBytes []byte, name string) (*Memory, error) {
	store := wasmer.NewStore(wasmer.NewEngine())

	module, err := wasmer.NewModule(store, wasmBytes)
	if err != nil {
		return nil, fmt.Errorf("linearmem: compile module: %w", err)
	}

	instance, err := wasmer.NewInstance(module, wasmer.NewImportObject())
	if err != nil {
		return nil, fmt.Errorf("linearmem: instantiate module: %w", err)
	}

	mem, err := instance.Exports.GetMemory(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNoMemory, name, err)
	}

	return &Memory{
		store:    store,
		instance: instance,
		mem:      mem,
	}, nil
}

// Bytes returns the memory's contents.
func (m *Memory) Bytes() []byte {
	return m.mem.Data()
}

// Len returns the memory's size in bytes.
func (m *Memory) Len() int {
	n, err := conv.UintToInt(m.mem.DataSize())
	if err != nil {
		return 0
	}
	return n
}

// Allocator returns an allocator over the whole memory that counts in
// WebAssembly pages. opts may add a logger, metrics or a budget; a backing
// option makes New fail with staticalloc.ErrConflictingBacking.
func (m *Memory) Allocator(opts ...staticalloc.Option) (*staticalloc.Allocator, error) {
	base := []staticalloc.Option{
		staticalloc.WithBacking(m.Bytes()),
		staticalloc.WithPageSize(staticalloc.PageSize),
	}
	return staticalloc.New(append(base, opts...)...)
}
