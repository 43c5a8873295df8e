package staticalloc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type freeList struct {
	heads []uintptr
	count int
}

var freeLists Exclusive[freeList]

func TestWithExclusiveAccess(t *testing.T) {
	n := WithExclusiveAccess(&freeLists, func(fl *freeList) int {
		fl.heads = append(fl.heads, 0x1000)
		fl.count++
		return fl.count
	})
	assert.Equal(t, 1, n)

	freeLists.Do(func(fl *freeList) {
		fl.count = 0
		fl.heads = fl.heads[:0]
	})
	assert.Equal(t, 0, WithExclusiveAccess(&freeLists, func(fl *freeList) int { return len(fl.heads) }))
}

func TestWithExclusiveAccess_Concurrent(t *testing.T) {
	c := NewExclusive(freeList{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				WithExclusiveAccess(c, func(fl *freeList) struct{} {
					fl.heads = append(fl.heads, uintptr(j))
					fl.count++
					return struct{}{}
				})
			}
		}()
	}
	wg.Wait()

	got := WithExclusiveAccess(c, func(fl *freeList) [2]int {
		return [2]int{len(fl.heads), fl.count}
	})
	assert.Equal(t, [2]int{1600, 1600}, got)
}

func TestWithExclusiveAccess_WrapsAllocator(t *testing.T) {
	a, _ := newTestAllocator(t, 8*256+1, 256)
	state := NewExclusive(freeList{})

	for i := 0; i < 8; i++ {
		err := WithExclusiveAccess(state, func(fl *freeList) error {
			p, err := a.AllocPages(1)
			if err != nil {
				return err
			}
			fl.heads = append(fl.heads, uintptr(p))
			return nil
		})
		assert.NoError(t, err)
	}

	err := WithExclusiveAccess(state, func(fl *freeList) error {
		_, err := a.AllocPages(1)
		return err
	})
	assert.ErrorIs(t, err, ErrAlloc)
}
