// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linalg provides the small dense kernels shared by the solvers:
// a square matrix type, a lazy LDLᵀ factorization manager, and basic
// iterative methods (conjugate gradient, power iteration).
package linalg

// Matrix is a square dense matrix stored in row-major order.
type Matrix struct {
	ndim int
	data []float64
}

// NewMatrix returns a zero-initialized ndim×ndim matrix.
func NewMatrix(ndim int) *Matrix {
	return &Matrix{ndim: ndim, data: make([]float64, ndim*ndim)}
}

// NewMatrixOf builds a matrix from the given rows. All rows must have
// length len(rows).
func NewMatrixOf(rows [][]float64) *Matrix {
	n := len(rows)
	m := NewMatrix(n)
	for i, row := range rows {
		if len(row) != n {
			panic("linalg: matrix is not square")
		}
		copy(m.data[i*n:(i+1)*n], row)
	}
	return m
}

// Ndim returns the dimension of the matrix.
func (m *Matrix) Ndim() int { return m.ndim }

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) float64 { return m.data[row*m.ndim+col] }

// Set assigns the element at (row, col).
func (m *Matrix) Set(row, col int, v float64) { m.data[row*m.ndim+col] = v }

// Add accumulates v into the element at (row, col).
func (m *Matrix) Add(row, col int, v float64) { m.data[row*m.ndim+col] += v }

// Clear fills the whole matrix with value.
func (m *Matrix) Clear(value float64) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Identity rewrites the matrix as the identity.
func (m *Matrix) Identity() {
	m.Clear(0)
	for i := 0; i < m.ndim; i++ {
		m.Set(i, i, 1)
	}
}

// SetDiag assigns the diagonal from val.
func (m *Matrix) SetDiag(val []float64) {
	for i, v := range val {
		m.Set(i, i, v)
	}
}

// Scale multiplies every element by alpha.
func (m *Matrix) Scale(alpha float64) {
	for i := range m.data {
		m.data[i] *= alpha
	}
}

// Trace returns the sum of the diagonal elements.
func (m *Matrix) Trace() float64 {
	t := 0.0
	for i := 0; i < m.ndim; i++ {
		t += m.At(i, i)
	}
	return t
}

// MulVec computes y = M·x.
func (m *Matrix) MulVec(x []float64) []float64 {
	y := make([]float64, m.ndim)
	for i := 0; i < m.ndim; i++ {
		s := 0.0
		for j := 0; j < m.ndim; j++ {
			s += m.At(i, j) * x[j]
		}
		y[i] = s
	}
	return y
}

// Copy returns a deep copy of the matrix.
func (m *Matrix) Copy() *Matrix {
	c := NewMatrix(m.ndim)
	copy(c.data, m.data)
	return c
}
