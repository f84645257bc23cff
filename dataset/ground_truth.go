package dataset

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// GroundTruth is a dense matrix of exact nearest-neighbor ids, one row per
// query and one column per neighbor rank. It is immutable after construction.
type GroundTruth struct {
	neighbors [][]int
	cols      int
}

// NewGroundTruth creates a ground truth from a neighbor matrix. All rows must
// have the same length.
func NewGroundTruth(neighbors [][]int) (*GroundTruth, error) {
	cols := 0
	if len(neighbors) > 0 {
		cols = len(neighbors[0])
	}
	for i, row := range neighbors {
		if len(row) != cols {
			return nil, fmt.Errorf("neighbor row %d has %d entries but row 0 has %d",
				i, len(row), cols)
		}
	}
	return &GroundTruth{neighbors: neighbors, cols: cols}, nil
}

// Rows returns the number of queries covered.
func (g *GroundTruth) Rows() int { return len(g.neighbors) }

// Cols returns the number of stored neighbors per query.
func (g *GroundTruth) Cols() int { return g.cols }

// Neighbors returns the neighbor matrix. The result aliases internal storage
// and must not be modified.
func (g *GroundTruth) Neighbors() [][]int { return g.neighbors }

// Recall computes the per-query recall of a retrieved set against the exact
// neighbors. For query i, both its retrieved list and its ground-truth row
// are truncated to k = min(len(retrieved[i]), Cols()), and recall is the size
// of the intersection of the two prefixes divided by k. An empty retrieved
// list for a query makes k zero and its recall NaN; that case is propagated,
// not masked.
//
// It returns an error if the number of retrieved lists does not match the
// number of queries.
func (g *GroundTruth) Recall(retrieved [][]int) ([]float32, error) {
	if len(retrieved) != len(g.neighbors) {
		return nil, fmt.Errorf("retrieved set has %d queries, but expected %d queries",
			len(retrieved), len(g.neighbors))
	}

	recall := make([]float32, len(retrieved))
	for i, set := range retrieved {
		k := len(set)
		if g.cols < k {
			k = g.cols
		}

		expected := roaring.New()
		for _, id := range g.neighbors[i][:k] {
			expected.Add(uint32(id))
		}
		got := roaring.New()
		for _, id := range set[:k] {
			got.Add(uint32(id))
		}
		recall[i] = float32(expected.AndCardinality(got)) / float32(k)
	}
	return recall, nil
}

// MeanRecall computes the arithmetic mean of the per-query recall values. An
// empty retrieved set against a zero-query ground truth yields 1.0 by
// convention.
func (g *GroundTruth) MeanRecall(retrieved [][]int) (float32, error) {
	recall, err := g.Recall(retrieved)
	if err != nil {
		return 0, err
	}
	if len(recall) == 0 {
		return 1.0, nil
	}
	var sum float32
	for _, r := range recall {
		sum += r
	}
	return sum / float32(len(recall)), nil
}

// String describes the shape of the neighbor matrix.
func (g *GroundTruth) String() string {
	return fmt.Sprintf("Shape [%d, %d]", len(g.neighbors), g.cols)
}
