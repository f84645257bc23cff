package exact

import (
	"github.com/sbruch/ann-dataset/core"
)

// NormCache holds the precomputed L2 norm of every data point, computed once
// and shared read-only across all query workers. The cosine and Euclidean
// derivations both depend on it.
type NormCache struct {
	norms   []float32
	squared []float32
}

// NewNormCache computes the per-row norms of the given point set. The cost is
// proportional to the total number of dense entries plus stored nonzeros.
func NewNormCache(points *core.PointSet) *NormCache {
	norms := points.L2Norms()
	squared := make([]float32, len(norms))
	for i, n := range norms {
		squared[i] = n * n
	}
	return &NormCache{norms: norms, squared: squared}
}

// Len returns the number of cached norms.
func (c *NormCache) Len() int { return len(c.norms) }

// Norm returns the L2 norm of row i.
func (c *NormCache) Norm(i int) float32 { return c.norms[i] }

// SquaredNorm returns the squared L2 norm of row i.
func (c *NormCache) SquaredNorm(i int) float32 { return c.squared[i] }
