package core

import (
	"reflect"
	"testing"
)

// sampleCSR builds the 4x4 sparse matrix
//
//	[ 3 . . . ]
//	[ . . 2 . ]
//	[ . . . . ]
//	[-2 . . . ]
func sampleCSR(t *testing.T) *CSRMatrix {
	t.Helper()
	m, err := NewCSRMatrix(4,
		[]int{0, 1, 2, 2, 3},
		[]int{0, 2, 0},
		[]float32{3, 2, -2},
	)
	if err != nil {
		t.Fatalf("NewCSRMatrix failed: %v", err)
	}
	return m
}

func TestNewCSRMatrixValidation(t *testing.T) {
	tests := []struct {
		name    string
		cols    int
		indptr  []int
		indices []int
		data    []float32
	}{
		{"empty indptr", 4, []int{}, nil, nil},
		{"indptr not starting at zero", 4, []int{1, 2}, []int{0}, []float32{1}},
		{"indices data length mismatch", 4, []int{0, 2}, []int{0, 1}, []float32{1}},
		{"indptr end mismatch", 4, []int{0, 1}, []int{0, 1}, []float32{1, 2}},
		{"decreasing indptr", 4, []int{0, 2, 1, 3}, []int{0, 1, 2}, []float32{1, 2, 3}},
		{"column out of range", 2, []int{0, 1}, []int{2}, []float32{1}},
		{"negative column", 2, []int{0, 1}, []int{-1}, []float32{1}},
		{"negative cols", -1, []int{0}, nil, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCSRMatrix(tt.cols, tt.indptr, tt.indices, tt.data); err == nil {
				t.Error("expected construction error, got none")
			}
		})
	}
}

func TestCSRMatrixShape(t *testing.T) {
	m := sampleCSR(t)
	if m.Rows() != 4 {
		t.Errorf("Rows() = %d; want 4", m.Rows())
	}
	if m.Cols() != 4 {
		t.Errorf("Cols() = %d; want 4", m.Cols())
	}
	if m.NNZ() != 3 {
		t.Errorf("NNZ() = %d; want 3", m.NNZ())
	}

	indices, data := m.Row(1)
	if !reflect.DeepEqual(indices, []int{2}) || !reflect.DeepEqual(data, []float32{2}) {
		t.Errorf("Row(1) = (%v, %v); want ([2], [2])", indices, data)
	}
	indices, data = m.Row(2)
	if len(indices) != 0 || len(data) != 0 {
		t.Errorf("Row(2) = (%v, %v); want empty row", indices, data)
	}
}

func TestCSRMatrixSelect(t *testing.T) {
	m := sampleCSR(t)

	// Reordering with a duplicated row.
	sub, err := m.Select([]int{3, 0, 3})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if sub.Rows() != 3 || sub.Cols() != 4 {
		t.Fatalf("Select result has shape [%d, %d]; want [3, 4]", sub.Rows(), sub.Cols())
	}
	if !reflect.DeepEqual(sub.Indptr(), []int{0, 1, 2, 3}) {
		t.Errorf("Indptr() = %v; want [0 1 2 3]", sub.Indptr())
	}
	if !reflect.DeepEqual(sub.Indices(), []int{0, 0, 0}) {
		t.Errorf("Indices() = %v; want [0 0 0]", sub.Indices())
	}
	if !reflect.DeepEqual(sub.Data(), []float32{-2, 3, -2}) {
		t.Errorf("Data() = %v; want [-2 3 -2]", sub.Data())
	}
}

func TestCSRMatrixSelectEmpty(t *testing.T) {
	m := sampleCSR(t)
	sub, err := m.Select(nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if sub.Rows() != 0 {
		t.Errorf("Rows() = %d; want 0", sub.Rows())
	}
	if sub.Cols() != 4 {
		t.Errorf("Cols() = %d; want 4", sub.Cols())
	}
}

func TestCSRMatrixSelectOutOfRange(t *testing.T) {
	m := sampleCSR(t)
	if _, err := m.Select([]int{4}); err == nil {
		t.Error("expected out-of-range error, got none")
	}
	if _, err := m.Select([]int{-1}); err == nil {
		t.Error("expected out-of-range error for negative id, got none")
	}
}

func TestCSRMatrixSelectIndependence(t *testing.T) {
	m := sampleCSR(t)
	sub, err := m.Select([]int{0})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	sub.Data()[0] = 42
	if _, data := m.Row(0); data[0] != 3 {
		t.Errorf("source matrix mutated through selection: got %v", data[0])
	}
}
