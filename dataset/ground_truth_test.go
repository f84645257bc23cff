package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGroundTruth(t *testing.T) *GroundTruth {
	t.Helper()
	gt, err := NewGroundTruth([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)
	return gt
}

func TestNewGroundTruth(t *testing.T) {
	gt := sampleGroundTruth(t)
	assert.Equal(t, 3, gt.Rows())
	assert.Equal(t, 3, gt.Cols())

	_, err := NewGroundTruth([][]int{{1, 2}, {3}})
	assert.Error(t, err, "ragged matrices are rejected")
}

func TestRecall(t *testing.T) {
	gt := sampleGroundTruth(t)

	recall, err := gt.Recall([][]int{{1}, {5}, {1}})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{1.0, 0.0, 0.0}, recall, 0.01)

	mean, err := gt.MeanRecall([][]int{{1}, {5}, {1}})
	require.NoError(t, err)
	assert.InDelta(t, 0.333, mean, 0.01)

	mean, err = gt.MeanRecall([][]int{{1, 2}, {5, 6}, {1, 8}})
	require.NoError(t, err)
	assert.InDelta(t, 0.667, mean, 0.01)
}

func TestRecallLengthMismatch(t *testing.T) {
	gt := sampleGroundTruth(t)

	_, err := gt.Recall([][]int{{1}})
	assert.ErrorContains(t, err, "1 queries")
	assert.ErrorContains(t, err, "3 queries")

	_, err = gt.Recall(nil)
	assert.Error(t, err, "an empty retrieved set does not match three queries")

	_, err = gt.MeanRecall(nil)
	assert.Error(t, err)
}

func TestRecallEmptyGroundTruth(t *testing.T) {
	gt, err := NewGroundTruth(nil)
	require.NoError(t, err)

	recall, err := gt.Recall(nil)
	require.NoError(t, err)
	assert.Empty(t, recall)

	mean, err := gt.MeanRecall(nil)
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), mean)
}

func TestRecallTruncatesPerQuery(t *testing.T) {
	gt := sampleGroundTruth(t)

	// Retrieved lists longer than the stored columns are truncated to the
	// column count; shorter lists truncate the ground-truth prefix instead.
	recall, err := gt.Recall([][]int{
		{1, 2, 3, 99, 98},
		{4},
		{9, 8, 7},
	})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float32{1.0, 1.0, 1.0}, recall, 1e-6)
}

func TestRecallOfGroundTruthAgainstItself(t *testing.T) {
	gt := sampleGroundTruth(t)

	recall, err := gt.Recall(gt.Neighbors())
	require.NoError(t, err)
	for i, r := range recall {
		assert.Equal(t, float32(1.0), r, "query %d", i)
	}

	mean, err := gt.MeanRecall(gt.Neighbors())
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), mean)
}
