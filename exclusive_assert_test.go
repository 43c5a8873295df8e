//go:build extra_assertions

package staticalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithExclusiveAccess_Reentrant(t *testing.T) {
	assert.True(t, AssertionsEnabled)

	c := NewExclusive(0)
	assert.PanicsWithValue(t, ErrReentrant, func() {
		WithExclusiveAccess(c, func(v *int) int {
			return WithExclusiveAccess(c, func(v *int) int { return *v })
		})
	})
}
