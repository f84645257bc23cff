package exact

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopK(t *testing.T) {
	tests := []struct {
		name     string
		scores   []float32
		k        int
		expected []int
	}{
		{
			name:     "k smaller than input",
			scores:   []float32{0.1, 0.9, 0.5, 0.7, 0.3},
			k:        3,
			expected: []int{1, 3, 2},
		},
		{
			name:     "k equals input size",
			scores:   []float32{2, 1, 3},
			k:        3,
			expected: []int{2, 0, 1},
		},
		{
			name:     "k larger than input",
			scores:   []float32{2, 1, 3},
			k:        10,
			expected: []int{2, 0, 1},
		},
		{
			name:     "single best",
			scores:   []float32{-5, -1, -3},
			k:        1,
			expected: []int{1},
		},
		{
			name:     "ties prefer lower ids",
			scores:   []float32{5, 5, 5, 5},
			k:        2,
			expected: []int{0, 1},
		},
		{
			name:     "tie on the admission boundary",
			scores:   []float32{5, 9, 5, 5},
			k:        2,
			expected: []int{1, 0},
		},
		{
			name:     "empty input",
			scores:   nil,
			k:        3,
			expected: nil,
		},
		{
			name:     "non-positive k",
			scores:   []float32{1, 2, 3},
			k:        0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TopK(tt.scores, tt.k))
		})
	}
}

func TestTopKProperties(t *testing.T) {
	// Deterministic pseudo-random scores.
	scores := make([]float32, 1000)
	state := uint64(42)
	for i := range scores {
		state = state*6364136223846793005 + 1442695040888963407
		scores[i] = float32(state>>40) / float32(1<<24)
	}

	k := 25
	ids := TopK(scores, k)
	require.Len(t, ids, k)

	// Scores are non-increasing along the result.
	for i := 1; i < len(ids); i++ {
		assert.GreaterOrEqual(t, scores[ids[i-1]], scores[ids[i]])
	}

	// No excluded candidate scores above the worst included one.
	included := make(map[int]bool, len(ids))
	for _, id := range ids {
		included[id] = true
	}
	worst := scores[ids[len(ids)-1]]
	for id, score := range scores {
		if !included[id] {
			assert.LessOrEqual(t, score, worst)
		}
	}
}

func TestTopKNegativeInfinity(t *testing.T) {
	ninf := float32(math.Inf(-1))
	ids := TopK([]float32{ninf, 1, ninf}, 2)
	assert.Equal(t, []int{1, 0}, ids)
}
