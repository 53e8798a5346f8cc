// SPDX-License-Identifier: MIT

// Package matrix - CDense: the complex128 twin of Dense for quantum amplitudes.
//
// Same contract as Dense: row-major, bounds-checked At/Set, finite-only values,
// deep Clone. Kept as a separate concrete type so real kernels stay free of
// complex arithmetic.

package matrix

import (
	"fmt"
	"math/cmplx"
	"strings"
)

const ctxCFrom = "NewCDenseFrom"

func cdenseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CDense.%s(%d,%d): %w", method, row, col, err)
}

// CDense is a concrete row-major complex128 matrix.
type CDense struct {
	r, c int
	data []complex128
}

var _ fmt.Stringer = (*CDense)(nil)

// NewCDense creates an r×c zero matrix.
// Errors: ErrInvalidDimensions if rows <= 0 or cols <= 0.
func NewCDense(rows, cols int) (*CDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &CDense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewCDenseFrom builds a CDense from a row literal (copied).
// Errors: ErrInvalidDimensions (empty or ragged), ErrNaNInf.
func NewCDenseFrom(rows [][]complex128) (*CDense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxCFrom, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m, err := NewCDense(len(rows), cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxCFrom, err)
	}
	var i, j int
	for i = range rows {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w", ctxCFrom, i, len(rows[i]), cols, ErrInvalidDimensions)
		}
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxCFrom, err)
			}
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *CDense) Rows() int { return m.r }

// Cols returns the column count.
func (m *CDense) Cols() int { return m.c }

func (m *CDense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *CDense) At(row, col int) (complex128, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, cdenseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col); rejects NaN/Inf in either component.
func (m *CDense) Set(row, col int, v complex128) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return cdenseErrorf(ctxSet, row, col, err)
	}
	if cmplx.IsNaN(v) || cmplx.IsInf(v) {
		return cdenseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy.
func (m *CDense) Clone() *CDense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &CDense{r: m.r, c: m.c, data: cp}
}

// String renders rows for diagnostics using %g on each complex value.
func (m *CDense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
