// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"github.com/convexlab/ellalgo/cutplane"
	"github.com/convexlab/ellalgo/linalg"
)

// QmiOracle assesses the quadratic matrix inequality
//
//	find  𝐱
//	s.t.  t·I − F(𝐱)ᵀF(𝐱) ⪰ 0,  F(𝐱) = F₀ − x₁F₁ − ⋯ − xₙFₙ
//
// The level t is adjustable through Update, which makes the oracle usable
// under a bisection search.
type QmiOracle struct {
	f  []*linalg.Matrix
	f0 *linalg.Matrix
	fx *linalg.Matrix // row i caches F(𝐱)ᵀ row i, i.e. column i of F(𝐱)
	t  float64

	count int
	mq    *linalg.LDLTMgr
}

// NewQmiOracle returns an oracle for t·I − F(𝐱)ᵀF(𝐱) ⪰ 0 with the given
// level t.
func NewQmiOracle(f []*linalg.Matrix, f0 *linalg.Matrix, t float64) *QmiOracle {
	m := f0.Ndim()
	return &QmiOracle{f: f, f0: f0, fx: linalg.NewMatrix(m), t: t, mq: linalg.NewLDLTMgr(m)}
}

// Update sets the level t for subsequent assessments.
func (o *QmiOracle) Update(t float64) { o.t = t }

// AssessFeas reports ok=false when the inequality holds at x. Rows of F(𝐱)ᵀ
// are computed on first touch and reused across the factorization.
func (o *QmiOracle) AssessFeas(x []float64) (cutplane.Cut[[]float64], bool) {
	o.count = 0
	m := o.f0.Ndim()

	elem := func(i, j int) float64 {
		if o.count < i+1 {
			o.count = i + 1
			for l := 0; l < m; l++ {
				v := o.f0.At(l, i)
				for k, xk := range x {
					v -= o.f[k].At(l, i) * xk
				}
				o.fx.Set(i, l, v)
			}
		}
		a := 0.0
		for l := 0; l < m; l++ {
			a -= o.fx.At(i, l) * o.fx.At(j, l)
		}
		if i == j {
			a += o.t
		}
		return a
	}

	if o.mq.Factor(elem) {
		return cutplane.Cut[[]float64]{}, false
	}

	ep := o.mq.Witness()
	start, stop := o.mq.Start, o.mq.Stop

	// w = Σᵢ vᵢ·F(𝐱)ᵀ[i,:] over the witness window
	w := make([]float64, m)
	for i := start; i < stop; i++ {
		vi := o.mq.Wit[i]
		for l := 0; l < m; l++ {
			w[l] += vi * o.fx.At(i, l)
		}
	}
	g := make([]float64, len(x))
	for k := range x {
		s := 0.0
		for l := 0; l < m; l++ {
			uk := 0.0
			for i := start; i < stop; i++ {
				uk += o.mq.Wit[i] * o.f[k].At(l, i)
			}
			s += uk * w[l]
		}
		g[k] = -2.0 * s
	}
	return cutplane.NewCut(g, ep), true
}
