package core

import (
	"github.com/viterin/vek/vek32"
)

// SquaredNorm returns the squared L2 norm of a vector.
func SquaredNorm(vec []float32) float32 {
	if len(vec) == 0 {
		return 0
	}
	return vek32.Dot(vec, vec)
}

// DotProducts writes the dot product of query with every row of matrix into
// out. The caller must ensure out has len(matrix) entries and that every row
// has the same length as query.
func DotProducts(matrix [][]float32, query []float32, out []float32) {
	for i, row := range matrix {
		out[i] = vek32.Dot(row, query)
	}
}

// ScaleInPlace divides every entry of vec by divisor. Dividing by zero
// produces NaN or Inf entries, which are propagated rather than masked.
func ScaleInPlace(vec []float32, divisor float32) {
	if len(vec) == 0 {
		return
	}
	vek32.DivNumber_Inplace(vec, divisor)
}
