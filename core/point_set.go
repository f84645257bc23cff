package core

import (
	"fmt"
	"math"
)

// PointSet is a set of points represented as a matrix, where each row
// corresponds to a single vector. A row may contribute a dense sub-vector, a
// sparse sub-vector, or both; when both components are present they describe
// the same logical points and their dense and sparse dimensions are
// conceptually concatenated.
type PointSet struct {
	dense     [][]float32
	denseCols int
	sparse    *CSRMatrix
}

// NewPointSet creates a point set from an optional dense matrix and an
// optional sparse matrix.
//
// It returns an error if both components are absent, if the dense matrix is
// not rectangular, or if both components are present with different row
// counts.
func NewPointSet(dense [][]float32, sparse *CSRMatrix) (*PointSet, error) {
	if dense == nil && sparse == nil {
		return nil, fmt.Errorf("both dense and sparse sets are empty")
	}
	denseCols := 0
	if dense != nil && len(dense) > 0 {
		denseCols = len(dense[0])
		for i, row := range dense {
			if len(row) != denseCols {
				return nil, fmt.Errorf("dense row %d has %d entries but row 0 has %d",
					i, len(row), denseCols)
			}
		}
	}
	if dense != nil && sparse != nil && len(dense) != sparse.Rows() {
		return nil, fmt.Errorf("there are %d dense vectors but %d sparse vectors",
			len(dense), sparse.Rows())
	}
	return &PointSet{dense: dense, denseCols: denseCols, sparse: sparse}, nil
}

// NumPoints returns the number of points in the point set.
func (p *PointSet) NumPoints() int {
	if p.dense != nil {
		return len(p.dense)
	}
	if p.sparse != nil {
		return p.sparse.Rows()
	}
	return 0
}

// NumDenseDimensions returns the number of dense dimensions.
func (p *PointSet) NumDenseDimensions() int {
	return p.denseCols
}

// NumSparseDimensions returns the number of sparse dimensions.
func (p *PointSet) NumSparseDimensions() int {
	if p.sparse != nil {
		return p.sparse.Cols()
	}
	return 0
}

// NumDimensions returns the total number of dimensions.
func (p *PointSet) NumDimensions() int {
	return p.NumDenseDimensions() + p.NumSparseDimensions()
}

// Dense returns the dense sub-vectors, or nil if the set has none.
func (p *PointSet) Dense() [][]float32 { return p.dense }

// Sparse returns the sparse sub-vectors, or nil if the set has none.
func (p *PointSet) Sparse() *CSRMatrix { return p.sparse }

// Select gathers the points with the given row ids into a new, independent
// point set. Ids may repeat and appear in any order; the output preserves the
// request order and column counts of both components. It returns an error if
// any id is out of range.
func (p *PointSet) Select(ids []int) (*PointSet, error) {
	numPoints := p.NumPoints()
	for _, id := range ids {
		if id < 0 || id >= numPoints {
			return nil, fmt.Errorf("row id %d is out of range for %d points", id, numPoints)
		}
	}

	var dense [][]float32
	if p.dense != nil {
		dense = make([][]float32, len(ids))
		width := p.NumDenseDimensions()
		for j, id := range ids {
			row := make([]float32, width)
			copy(row, p.dense[id])
			dense[j] = row
		}
	}

	var sparse *CSRMatrix
	if p.sparse != nil {
		var err error
		sparse, err = p.sparse.Select(ids)
		if err != nil {
			return nil, err
		}
	}

	return &PointSet{dense: dense, denseCols: p.denseCols, sparse: sparse}, nil
}

// L2Norms returns the combined L2 norm of every point: the square root of the
// sum of the squared dense and squared sparse norms of its row.
func (p *PointSet) L2Norms() []float32 {
	norms := make([]float32, p.NumPoints())
	if p.dense != nil {
		for i, row := range p.dense {
			norms[i] += SquaredNorm(row)
		}
	}
	if p.sparse != nil {
		for i := 0; i < p.sparse.Rows(); i++ {
			_, data := p.sparse.Row(i)
			norms[i] += SquaredNorm(data)
		}
	}
	for i, v := range norms {
		norms[i] = float32(math.Sqrt(float64(v)))
	}
	return norms
}

// L2NormalizeInPlace rescales every point by its combined L2 norm, modifying
// the point set in place. A zero-norm row divides by zero and ends up with
// NaN entries; that case is propagated, not masked.
func (p *PointSet) L2NormalizeInPlace() {
	norms := p.L2Norms()
	if p.dense != nil {
		for i, row := range p.dense {
			ScaleInPlace(row, norms[i])
		}
	}
	if p.sparse != nil {
		for i := 0; i < p.sparse.Rows(); i++ {
			_, data := p.sparse.Row(i)
			ScaleInPlace(data, norms[i])
		}
	}
}

// String describes the shapes of both components.
func (p *PointSet) String() string {
	dense := "is empty"
	if p.dense != nil {
		dense = fmt.Sprintf("has shape [%d, %d]", len(p.dense), p.NumDenseDimensions())
	}
	sparse := "is empty"
	if p.sparse != nil {
		sparse = fmt.Sprintf("has shape [%d, %d]", p.sparse.Rows(), p.sparse.Cols())
	}
	return fmt.Sprintf("Dense set %s; Sparse set %s", dense, sparse)
}
