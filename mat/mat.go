// Package mat provides a dense 2-D host image with an explicit row stride. It is the host-side
// counterpart of a pitched device buffer: rows may be padded, and Step reports the distance
// between rows in bytes.
package mat

import (
	"fmt"
	"unsafe"
)

// Mat is a dense rows x cols grid of T. Row r begins stride elements after row r-1.
type Mat[T any] struct {
	rows   int
	cols   int
	stride int
	data   []T
}

// New allocates a tightly packed rows x cols image
func New[T any](rows, cols int) *Mat[T] {
	m := &Mat[T]{}
	m.Create(rows, cols)
	return m
}

// NewWithStride allocates a rows x cols image whose rows begin stride elements apart. stride
// must be at least cols.
func NewWithStride[T any](rows, cols, stride int) *Mat[T] {
	if stride < cols {
		panic(fmt.Sprintf("mat stride %d is narrower than %d columns", stride, cols))
	}
	return &Mat[T]{
		rows:   rows,
		cols:   cols,
		stride: stride,
		data:   make([]T, stride*rows),
	}
}

// Create reallocates the image to rows x cols unless it already has those dimensions, in which
// case the existing data and stride are kept
func (m *Mat[T]) Create(rows, cols int) {
	if m.rows == rows && m.cols == cols && m.data != nil {
		return
	}
	m.rows = rows
	m.cols = cols
	m.stride = cols
	m.data = make([]T, rows*cols)
}

func (m *Mat[T]) Rows() int { return m.rows }
func (m *Mat[T]) Cols() int { return m.cols }

// Empty reports whether the image holds no elements
func (m *Mat[T]) Empty() bool {
	return m == nil || m.rows == 0 || m.cols == 0 || len(m.data) == 0
}

// Step is the distance between rows in bytes
func (m *Mat[T]) Step() int {
	var zero T
	return m.stride * int(unsafe.Sizeof(zero))
}

// Ptr returns the address of element (row, col). The image must not be empty.
func (m *Mat[T]) Ptr(row, col int) unsafe.Pointer {
	return unsafe.Pointer(&m.data[row*m.stride+col])
}

// Data returns the backing slice, including any padding between rows
func (m *Mat[T]) Data() []T {
	return m.data
}

func (m *Mat[T]) At(row, col int) T {
	return m.data[row*m.stride+col]
}

func (m *Mat[T]) Set(row, col int, value T) {
	m.data[row*m.stride+col] = value
}

// Row returns the cols elements of row r
func (m *Mat[T]) Row(r int) []T {
	return m.data[r*m.stride : r*m.stride+m.cols]
}
