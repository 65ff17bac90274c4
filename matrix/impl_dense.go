// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer unchecked hot-path accessors (Elem/SetElem/Index/Row) for the kernels,
//     with descriptive panics under the fdmcheck build tag.
//   - Support no-copy views (MatrixView) over a Dense or over a caller flat slice.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Elem/Row: O(1); Clone: O(r*c); View: O(1);
//     Resize: O(1) amortized when cols are unchanged, O(r*c) otherwise.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxView = "View" // ctor tag for Dense.View
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); zero is legal for either.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Real] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - Zero-area shapes are accepted: an empty grid yields 0×k operators.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Real](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	// make() zero-fills the buffer deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFrom builds a Dense from row slices (deep copy).
// All rows must share the same length; an empty input yields a 0×0 matrix.
// Complexity: O(r*c).
func NewDenseFrom[T Real](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return &Dense[T]{}, nil
	}
	cols := len(rows[0])
	m, _ := NewDense[T](len(rows), cols) // shape is non-negative by construction
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d cols, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Size returns the number of stored elements (rows*cols).
func (m *Dense[T]) Size() int { return len(m.data) }

// Empty reports whether the matrix stores no elements.
func (m *Dense[T]) Empty() bool { return len(m.data) == 0 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Keep unexported; public methods (At/Set) wrap with coordinates and method name.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or non-finite value).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Elem is the hot-path read of (i, j).
// Unchecked in the default build; panics with the violated subscript under fdmcheck.
func (m *Dense[T]) Elem(i, j int) T {
	if checked {
		m.mustRC(i, j)
	}

	return m.data[i*m.c+j]
}

// SetElem is the hot-path write of (i, j); see Elem for checking policy.
func (m *Dense[T]) SetElem(i, j int, v T) {
	if checked {
		m.mustRC(i, j)
	}
	m.data[i*m.c+j] = v
}

// AddElem adds v to (i, j) in place; see Elem for checking policy.
func (m *Dense[T]) AddElem(i, j int, v T) {
	if checked {
		m.mustRC(i, j)
	}
	m.data[i*m.c+j] += v
}

// Index reads the k-th element of the flat row-major buffer.
func (m *Dense[T]) Index(k int) T {
	if checked && (k < 0 || k >= len(m.data)) {
		panic(fmt.Sprintf("matrix: Dense flat index %d out of range [0,%d)", k, len(m.data)))
	}

	return m.data[k]
}

// Row returns row i as a slice aliasing the storage (len == cap == Cols()).
// Writes through the slice update the matrix.
func (m *Dense[T]) Row(i int) []T {
	if checked && (i < 0 || i >= m.r) {
		panic(fmt.Sprintf("matrix: Dense row subscript %d out of range [0,%d)", i, m.r))
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c]
}

// Data exposes the flat row-major buffer (shared, not copied).
func (m *Dense[T]) Data() []T { return m.data }

// mustRC panics with the violated accessor; only called when checked is on.
func (m *Dense[T]) mustRC(i, j int) {
	if i < 0 || i >= m.r {
		panic(fmt.Sprintf("matrix: Dense row subscript %d out of range [0,%d)", i, m.r))
	}
	if j < 0 || j >= m.c {
		panic(fmt.Sprintf("matrix: Dense col subscript %d out of range [0,%d)", j, m.c))
	}
}

// Fill assigns v to every element.
// Complexity: O(r*c).
func (m *Dense[T]) Fill(v T) {
	for k := range m.data {
		m.data[k] = v
	}
}

// Resize changes the shape to rows×cols, keeping the overlapping top-left
// block and zeroing every newly exposed element.
//
// Implementation:
//   - Stage 1: validate non-negative shape.
//   - Stage 2: same column count → grow/shrink the flat buffer in place (reusing capacity).
//   - Stage 3: otherwise allocate and copy the overlapping block row by row.
//
// Behavior highlights:
//   - Reusing capacity keeps per-step operator rebuilds allocation-free.
//
// Complexity:
//   - Time O(1) amortized (same cols), O(rows*cols) otherwise.
func (m *Dense[T]) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}
	n := rows * cols
	if cols == m.c {
		if n <= cap(m.data) {
			old := len(m.data)
			m.data = m.data[:n]
			if n > old {
				clear(m.data[old:]) // capacity may hold stale values
			}
		} else {
			grown := make([]T, n)
			copy(grown, m.data)
			m.data = grown
		}
		m.r = rows

		return nil
	}

	buf := make([]T, n)
	minR, minC := min(rows, m.r), min(cols, m.c)
	var i int
	for i = 0; i < minR; i++ {
		copy(buf[i*cols:i*cols+minC], m.data[i*m.c:i*m.c+minC])
	}
	m.r, m.c, m.data = rows, cols, buf

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// CopyFrom overwrites m with the contents and shape of src, reusing m's buffer
// when it is large enough.
func (m *Dense[T]) CopyFrom(src *Dense[T]) {
	if cap(m.data) >= len(src.data) {
		m.data = m.data[:len(src.data)]
	} else {
		m.data = make([]T, len(src.data))
	}
	copy(m.data, src.data)
	m.r, m.c = src.r, src.c
}

// String provides a readable row-wise dump for diagnostics.
// Not for hot paths; intended for logs and debugging.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
//
// Behavior highlights:
//   - Writes via the view reflect in the base; zero-area windows are legal.
//   - The view must not outlive the next Resize of the base (the buffer may move).
//
// Errors:
//   - ErrBadShape when the window is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) View(r0, c0, rows, cols int) (*MatrixView[T], error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &MatrixView[T]{
		data:   m.data,      // share storage
		off:    r0*m.c + c0, // top-left offset in base
		stride: m.c,         // base row length
		r:      rows,        // view height
		c:      cols,        // view width
	}, nil
}

// MatrixView is a non-owning window into shared storage.
// The owner (a Dense or a caller slice) must outlive the view.
type MatrixView[T Real] struct {
	data   []T // borrowed storage
	off    int // flat offset of element (0,0)
	stride int // distance between consecutive rows in data
	r      int // view height
	c      int // view width
}

// NewMatrixView wraps a caller-owned flat row-major slice as a rows×cols view.
// Errors: ErrBadShape when rows*cols != len(data) or a dimension is negative.
func NewMatrixView[T Real](data []T, rows, cols int) (*MatrixView[T], error) {
	if rows < 0 || cols < 0 || rows*cols != len(data) {
		return nil, fmt.Errorf("NewMatrixView(%d,%d) over %d elements: %w", rows, cols, len(data), ErrBadShape)
	}

	return &MatrixView[T]{data: data, stride: cols, r: rows, c: cols}, nil
}

// Rows returns the number of rows in the view.
func (v *MatrixView[T]) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *MatrixView[T]) Cols() int { return v.c }

// Size returns rows*cols of the window.
func (v *MatrixView[T]) Size() int { return v.r * v.c }

// At reads element (i,j) in the view or returns ErrOutOfRange.
func (v *MatrixView[T]) At(i, j int) (T, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.data[v.off+i*v.stride+j], nil
}

// Set writes element (i,j) in the view (write-through into the owner).
func (v *MatrixView[T]) Set(i, j int, val T) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if f := float64(val); math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	v.data[v.off+i*v.stride+j] = val

	return nil
}

// Elem is the hot-path read of (i, j) in view coordinates.
func (v *MatrixView[T]) Elem(i, j int) T {
	if checked {
		v.mustRC(i, j)
	}

	return v.data[v.off+i*v.stride+j]
}

// SetElem is the hot-path write of (i, j) in view coordinates.
func (v *MatrixView[T]) SetElem(i, j int, val T) {
	if checked {
		v.mustRC(i, j)
	}
	v.data[v.off+i*v.stride+j] = val
}

// Index reads the k-th element of the window in row-major order.
func (v *MatrixView[T]) Index(k int) T {
	if checked && (k < 0 || k >= v.r*v.c) {
		panic(fmt.Sprintf("matrix: MatrixView flat index %d out of range [0,%d)", k, v.r*v.c))
	}

	return v.data[v.off+(k/v.c)*v.stride+k%v.c]
}

// Row returns row i of the window as a slice aliasing the owner.
func (v *MatrixView[T]) Row(i int) []T {
	if checked && (i < 0 || i >= v.r) {
		panic(fmt.Sprintf("matrix: MatrixView row subscript %d out of range [0,%d)", i, v.r))
	}
	base := v.off + i*v.stride

	return v.data[base : base+v.c : base+v.c]
}

// Fill assigns val to every element of the window.
func (v *MatrixView[T]) Fill(val T) {
	var i, j int
	for i = 0; i < v.r; i++ {
		row := v.Row(i)
		for j = range row {
			row[j] = val
		}
	}
}

func (v *MatrixView[T]) mustRC(i, j int) {
	if i < 0 || i >= v.r {
		panic(fmt.Sprintf("matrix: MatrixView row subscript %d out of range [0,%d)", i, v.r))
	}
	if j < 0 || j >= v.c {
		panic(fmt.Sprintf("matrix: MatrixView col subscript %d out of range [0,%d)", j, v.c))
	}
}
