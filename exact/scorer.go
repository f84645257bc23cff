package exact

import (
	"github.com/sbruch/ann-dataset/core"
)

// scoreBuffers holds the per-worker scratch vectors reused across queries so
// that each query allocates nothing. A buffer set is owned by exactly one
// worker and never shared.
type scoreBuffers struct {
	dots      []float32
	cosine    []float32
	euclidean []float32
}

func newScoreBuffers(numPoints int) *scoreBuffers {
	return &scoreBuffers{
		dots:      make([]float32, numPoints),
		cosine:    make([]float32, numPoints),
		euclidean: make([]float32, numPoints),
	}
}

// score computes the dot-product row of query against every data point
// exactly once, then derives the three ranking vectors from it:
//
//   - inner product: the dot products themselves;
//   - cosine: dots[i] / norm(i); the query's own norm is a constant factor
//     across all i and is omitted since it does not change the ranking;
//   - Euclidean: 2*dots[i] - norm(i)^2, which orders points identically to
//     ascending squared Euclidean distance once the query-constant -||q||^2
//     term is dropped.
//
// All three vectors are ranking signals only; their absolute scale carries no
// meaning. Zero-norm data points yield NaN cosine scores, which propagate.
func (b *scoreBuffers) score(data [][]float32, query []float32, cache *NormCache) {
	core.DotProducts(data, query, b.dots)
	for i, s := range b.dots {
		b.cosine[i] = s / cache.Norm(i)
		b.euclidean[i] = 2*s - cache.SquaredNorm(i)
	}
}
