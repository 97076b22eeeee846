// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import "math"

// LDLTMgr performs a square-root-free LDLᵀ factorization of a symmetric
// matrix supplied lazily, one element at a time. A matrix A ∈ ℝᵐˣᵐ is
// positive definite iff 𝐯ᵀA𝐯 > 0 for all 𝐯 ≠ 0; when the factorization
// breaks down the manager produces a witness vector certifying the failure.
//
// Elements are requested only inside the active window [Start, Stop), so the
// cost per assessment is O(p²) in the size of the failing leading block,
// independent of the full dimension.
type LDLTMgr struct {
	Start int       // first row of the active window
	Stop  int       // one past the failing row; zero when the factor succeeded
	Wit   []float64 // witness vector, filled by Witness
	n     int
	t     *Matrix // factor storage: D on the diagonal, L below, scratch above
}

// NewLDLTMgr returns a manager for n×n matrices.
func NewLDLTMgr(n int) *LDLTMgr {
	return &LDLTMgr{Wit: make([]float64, n), n: n, t: NewMatrix(n)}
}

// Ndim returns the dimension the manager was built for.
func (m *LDLTMgr) Ndim() int { return m.n }

// Factor runs the factorization with elements fetched through elem.
// It reports whether the matrix is positive definite; on failure the window
// (Start, Stop) brackets the offending leading block.
func (m *LDLTMgr) Factor(elem func(i, j int) float64) bool {
	m.Start, m.Stop = 0, 0
	for i := 0; i < m.n; i++ {
		d := elem(i, m.Start)
		for j := m.Start; j < i; j++ {
			m.t.Set(j, i, d)
			m.t.Set(i, j, d/m.t.At(j, j))
			s := j + 1
			d = elem(i, s)
			for k := m.Start; k < s; k++ {
				d -= m.t.At(i, k) * m.t.At(k, s)
			}
		}
		m.t.Set(i, i, d)
		if d <= 0 {
			m.Stop = i + 1
			break
		}
	}
	return m.IsSPD()
}

// FactorWithAllowSemidefinite behaves like Factor but tolerates zero pivots:
// a zero diagonal restarts the factorization below it, so only a strictly
// negative pivot fails.
func (m *LDLTMgr) FactorWithAllowSemidefinite(elem func(i, j int) float64) bool {
	m.Start, m.Stop = 0, 0
	for i := 0; i < m.n; i++ {
		d := elem(i, m.Start)
		for j := m.Start; j < i; j++ {
			m.t.Set(j, i, d)
			m.t.Set(i, j, d/m.t.At(j, j))
			s := j + 1
			d = elem(i, s)
			for k := m.Start; k < s; k++ {
				d -= m.t.At(i, k) * m.t.At(k, s)
			}
		}
		m.t.Set(i, i, d)
		if d < 0 {
			m.Stop = i + 1
			break
		}
		if d == 0 {
			// restart below the semidefinite block
			m.Start = i + 1
		}
	}
	return m.IsSPD()
}

// IsSPD reports whether the last factorization completed, i.e. the matrix is
// symmetric positive definite.
func (m *LDLTMgr) IsSPD() bool { return m.Stop == 0 }

// Witness back-substitutes a certificate vector 𝐯 with 𝐯ᵀA𝐯 < 0 into Wit and
// returns the (nonnegative) violation −𝐯ᵀA𝐯. It must only be called after a
// failed factorization.
func (m *LDLTMgr) Witness() float64 {
	if m.IsSPD() {
		panic("linalg: witness requested for a positive definite matrix")
	}
	stop := m.Stop
	p := stop - 1
	m.Wit[p] = 1.0
	for i := p; i > m.Start; i-- {
		m.Wit[i-1] = 0.0
		for k := i; k < stop; k++ {
			m.Wit[i-1] -= m.t.At(k, i-1) * m.Wit[k]
		}
	}
	return -m.t.At(p, p)
}

// SymQuad evaluates 𝐯ᵀA𝐯 over the active window using the witness vector,
// with elements of A fetched through elem.
func (m *LDLTMgr) SymQuad(elem func(i, j int) float64) float64 {
	res := 0.0
	for i := m.Start; i < m.Stop; i++ {
		s := 0.0
		for j := i + 1; j < m.Stop; j++ {
			s += elem(i, j) * m.Wit[j]
		}
		res += m.Wit[i] * (elem(i, i)*m.Wit[i] + 2.0*s)
	}
	return res
}

// SqrtR writes into r the upper-triangular matrix R with A = RᵀR.
// The factorization must have succeeded.
func (m *LDLTMgr) SqrtR(r *Matrix) {
	if !m.IsSPD() {
		panic("linalg: square root of a non positive definite matrix")
	}
	for i := 0; i < m.n; i++ {
		r.Set(i, i, math.Sqrt(m.t.At(i, i)))
		for j := i + 1; j < m.n; j++ {
			r.Set(i, j, m.t.At(j, i)*r.At(i, i))
			r.Set(j, i, 0)
		}
	}
}
