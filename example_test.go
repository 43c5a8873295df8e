package staticalloc_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/staticalloc"
)

// Example demonstrates page grants and the strict capacity check.
func Example() {
	a, err := staticalloc.New(
		staticalloc.WithBacking(make([]byte, 1024)),
		staticalloc.WithPageSize(256),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	if _, err := a.AllocPages(1); err != nil {
		log.Fatal(err)
	}
	fmt.Println("cursor:", a.Cursor())

	_, err = a.AllocPages(3)
	fmt.Println("three more pages refused:", errors.Is(err, staticalloc.ErrAlloc))

	if _, err := a.AllocPages(2); err != nil {
		log.Fatal(err)
	}
	fmt.Println("cursor:", a.Cursor())
	// Output:
	// cursor: 256
	// three more pages refused: true
	// cursor: 768
}

type counters struct {
	grants int
}

// ExampleWithExclusiveAccess demonstrates serializing bookkeeping state.
func ExampleWithExclusiveAccess() {
	var state staticalloc.Exclusive[counters]

	n := staticalloc.WithExclusiveAccess(&state, func(c *counters) int {
		c.grants++
		return c.grants
	})
	fmt.Println(n)
	// Output: 1
}

// ExampleNewBudget demonstrates a memory budget shared by two allocators.
func ExampleNewBudget() {
	budget := staticalloc.NewBudget(4096)

	a, _ := staticalloc.New(staticalloc.WithBacking(make([]byte, 8192)), staticalloc.WithPageSize(4096), staticalloc.WithBudget(budget))
	b, _ := staticalloc.New(staticalloc.WithBacking(make([]byte, 8192)), staticalloc.WithPageSize(4096), staticalloc.WithBudget(budget))

	_, errA := a.AllocPages(1)
	_, errB := b.AllocPages(1)
	fmt.Println(errA == nil, errors.Is(errB, staticalloc.ErrMemoryLimitExceeded))
	// Output: true true
}
