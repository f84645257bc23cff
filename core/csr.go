package core

import (
	"fmt"
)

// CSRMatrix is a sparse matrix in compressed sparse row form. Row i owns the
// entries in positions indptr[i]:indptr[i+1] of the indices and data arrays.
type CSRMatrix struct {
	indptr  []int
	indices []int
	data    []float32
	cols    int
}

// NewCSRMatrix creates a CSR matrix with the given column count from its
// three backing arrays. The number of rows is len(indptr)-1.
func NewCSRMatrix(cols int, indptr, indices []int, data []float32) (*CSRMatrix, error) {
	if cols < 0 {
		return nil, fmt.Errorf("column count must not be negative, got %d", cols)
	}
	if len(indptr) == 0 {
		return nil, fmt.Errorf("indptr must have at least one entry")
	}
	if indptr[0] != 0 {
		return nil, fmt.Errorf("indptr must start at 0, got %d", indptr[0])
	}
	if len(indices) != len(data) {
		return nil, fmt.Errorf("indices has %d entries but data has %d", len(indices), len(data))
	}
	if indptr[len(indptr)-1] != len(indices) {
		return nil, fmt.Errorf("indptr ends at %d but there are %d nonzeros",
			indptr[len(indptr)-1], len(indices))
	}
	for i := 1; i < len(indptr); i++ {
		if indptr[i] < indptr[i-1] {
			return nil, fmt.Errorf("indptr must be non-decreasing, entry %d is %d after %d",
				i, indptr[i], indptr[i-1])
		}
	}
	for _, col := range indices {
		if col < 0 || col >= cols {
			return nil, fmt.Errorf("column index %d is out of range for %d columns", col, cols)
		}
	}
	return &CSRMatrix{indptr: indptr, indices: indices, data: data, cols: cols}, nil
}

// Rows returns the number of rows.
func (m *CSRMatrix) Rows() int { return len(m.indptr) - 1 }

// Cols returns the number of columns.
func (m *CSRMatrix) Cols() int { return m.cols }

// NNZ returns the total number of stored nonzeros.
func (m *CSRMatrix) NNZ() int { return len(m.data) }

// Row returns the column indices and values of row i. The returned slices
// alias the matrix storage and must not be modified.
func (m *CSRMatrix) Row(i int) (indices []int, data []float32) {
	begin, end := m.indptr[i], m.indptr[i+1]
	return m.indices[begin:end], m.data[begin:end]
}

// Indptr returns the row pointer array. The slice aliases the matrix storage.
func (m *CSRMatrix) Indptr() []int { return m.indptr }

// Indices returns the column index array. The slice aliases the matrix storage.
func (m *CSRMatrix) Indices() []int { return m.indices }

// Data returns the value array. The slice aliases the matrix storage.
func (m *CSRMatrix) Data() []float32 { return m.data }

// Select gathers the given rows into a new, independent CSR matrix with
// len(ids) rows and the same column count. Each output row j carries exactly
// the entries of input row ids[j] in their original intra-row order; ids may
// repeat and appear in any order, and repeated rows are materialized
// independently. The cost is proportional to the number of selected nonzeros.
func (m *CSRMatrix) Select(ids []int) (*CSRMatrix, error) {
	rows := m.Rows()
	nnz := 0
	for _, id := range ids {
		if id < 0 || id >= rows {
			return nil, fmt.Errorf("row id %d is out of range for %d rows", id, rows)
		}
		nnz += m.indptr[id+1] - m.indptr[id]
	}

	indptr := make([]int, len(ids)+1)
	indices := make([]int, 0, nnz)
	data := make([]float32, 0, nnz)
	for j, id := range ids {
		begin, end := m.indptr[id], m.indptr[id+1]
		indices = append(indices, m.indices[begin:end]...)
		data = append(data, m.data[begin:end]...)
		indptr[j+1] = len(indices)
	}
	return &CSRMatrix{indptr: indptr, indices: indices, data: data, cols: m.cols}, nil
}
