// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sparsemat provides a triplet-format sparse matrix implementing
// gonum.org/v1/exp/linsolve's MulVecToer, for use as the SparseNewton
// descent strategy's regularized Hessian operator.
//
// The diagonal is kept separately from the off-diagonal triplet list so
// that the τI regularization schedule can rescale it without re-walking
// or duplicating off-diagonal entries.
package sparsemat

import "gonum.org/v1/gonum/mat"

type entry struct {
	i, j int
	v    float64
}

// Matrix is a square sparse matrix in triplet format, split into an
// off-diagonal entry list and an explicit diagonal.
type Matrix struct {
	n    int
	data []entry
	diag []float64
}

// NewMatrix returns an empty n×n sparse matrix.
func NewMatrix(n int) *Matrix {
	if n <= 0 {
		panic("sparsemat: invalid dimension")
	}
	return &Matrix{n: n, diag: make([]float64, n)}
}

// Reset clears all entries, reusing backing storage.
func (m *Matrix) Reset() {
	m.data = m.data[:0]
	for i := range m.diag {
		m.diag[i] = 0
	}
}

// Dims returns the matrix's row and column count.
func (m *Matrix) Dims() (r, c int) { return m.n, m.n }

// Set stores a matrix entry. Diagonal entries (i == j) are stored
// separately from off-diagonal entries so AddToDiag can rescale them.
func (m *Matrix) Set(i, j int, v float64) {
	if i < 0 || m.n <= i || j < 0 || m.n <= j {
		panic("sparsemat: index out of range")
	}
	if i == j {
		m.diag[i] = v
		return
	}
	if v == 0 {
		return
	}
	m.data = append(m.data, entry{i, j, v})
}

// AddToDiag adds tau to every diagonal entry, implementing the τI
// regularization step of the Newton fallback ladder.
func (m *Matrix) AddToDiag(tau float64) {
	for i := range m.diag {
		m.diag[i] += tau
	}
}

// MulVecTo computes A*x or Aᵀ*x and stores the result into dst, satisfying
// linsolve.MulVecToer.
func (m *Matrix) MulVecTo(dst *mat.VecDense, trans bool, x mat.Vector) {
	if x.Len() != m.n || dst.Len() != m.n {
		panic("sparsemat: dimension mismatch")
	}
	dst.Zero()
	for i, d := range m.diag {
		if d != 0 {
			dst.SetVec(i, dst.AtVec(i)+d*x.AtVec(i))
		}
	}
	if trans {
		for _, a := range m.data {
			dst.SetVec(a.j, dst.AtVec(a.j)+a.v*x.AtVec(a.i))
		}
		return
	}
	for _, a := range m.data {
		dst.SetVec(a.i, dst.AtVec(a.i)+a.v*x.AtVec(a.j))
	}
}
