package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_PageCounts(t *testing.T) {
	rng := NewRNG(4711)
	assert.Equal(t, int64(4711), rng.Seed())

	counts := rng.PageCounts(64, 8)
	require.Len(t, counts, 64)
	for _, c := range counts {
		assert.LessOrEqual(t, c, uint64(8))
	}

	rng.Reset()
	assert.Equal(t, counts, rng.PageCounts(64, 8))
}

func TestRNG_Intn(t *testing.T) {
	rng := NewRNG(1)
	for i := 0; i < 100; i++ {
		v := rng.Intn(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
}

func TestCheckSpans(t *testing.T) {
	tests := []struct {
		name    string
		spans   []Span
		wantErr bool
	}{
		{"empty", nil, false},
		{"disjoint", []Span{{0, 256}, {256, 768}}, false},
		{"unordered", []Span{{256, 768}, {0, 256}}, false},
		{"zero length inside", []Span{{0, 256}, {256, 256}}, false},
		{"overlap", []Span{{0, 256}, {128, 384}}, true},
		{"touches capacity", []Span{{256, 1024}}, true},
		{"negative", []Span{{-1, 10}}, true},
		{"inverted", []Span{{20, 10}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSpans(tt.spans, 1024)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
