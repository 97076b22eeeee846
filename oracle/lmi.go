// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"github.com/convexlab/ellalgo/cutplane"
	"github.com/convexlab/ellalgo/linalg"
)

// LmiOracle assesses the linear matrix inequality
//
//	find  𝐱
//	s.t.  B − x₁F₁ − ⋯ − xₙFₙ ⪰ 0
//
// Matrix elements are fetched lazily, so an infeasible point only pays for
// the leading block where the factorization breaks down.
type LmiOracle struct {
	mq *linalg.LDLTMgr
	f  []*linalg.Matrix
	f0 *linalg.Matrix
}

// NewLmiOracle returns an oracle for the constraint B − Σₖ xₖFₖ ⪰ 0.
func NewLmiOracle(f []*linalg.Matrix, b *linalg.Matrix) *LmiOracle {
	return &LmiOracle{mq: linalg.NewLDLTMgr(b.Ndim()), f: f, f0: b}
}

// AssessFeas reports ok=false when the inequality holds at x; otherwise it
// returns the cut (𝐯ᵀFₖ𝐯, −𝐯ᵀA(𝐱)𝐯) built from the witness vector 𝐯.
func (o *LmiOracle) AssessFeas(x []float64) (cutplane.Cut[[]float64], bool) {
	elem := func(i, j int) float64 {
		a := o.f0.At(i, j)
		for k, xk := range x {
			a -= o.f[k].At(i, j) * xk
		}
		return a
	}
	if o.mq.Factor(elem) {
		return cutplane.Cut[[]float64]{}, false
	}
	ep := o.mq.Witness() // must precede SymQuad
	g := make([]float64, len(x))
	for k := range x {
		g[k] = o.mq.SymQuad(o.f[k].At)
	}
	return cutplane.NewCut(g, ep), true
}

// Lmi0Oracle assesses the homogeneous linear matrix inequality
//
//	find  𝐱
//	s.t.  x₁F₁ + ⋯ + xₙFₙ ⪰ 0
type Lmi0Oracle struct {
	mq *linalg.LDLTMgr
	f  []*linalg.Matrix
}

// NewLmi0Oracle returns an oracle for the constraint Σₖ xₖFₖ ⪰ 0 with
// dim×dim coefficient matrices.
func NewLmi0Oracle(dim int, f []*linalg.Matrix) *Lmi0Oracle {
	return &Lmi0Oracle{mq: linalg.NewLDLTMgr(dim), f: f}
}

// AssessFeas reports ok=false when the inequality holds at x.
func (o *Lmi0Oracle) AssessFeas(x []float64) (cutplane.Cut[[]float64], bool) {
	elem := func(i, j int) float64 {
		a := 0.0
		for k, xk := range x {
			a += o.f[k].At(i, j) * xk
		}
		return a
	}
	if o.mq.Factor(elem) {
		return cutplane.Cut[[]float64]{}, false
	}
	ep := o.mq.Witness() // must precede SymQuad
	g := make([]float64, len(x))
	for k := range x {
		g[k] = -o.mq.SymQuad(o.f[k].At)
	}
	return cutplane.NewCut(g, ep), true
}

// LmiOldOracle solves the same problem as LmiOracle but materializes the
// full matrix A(𝐱) = B − Σₖ xₖFₖ before factorizing. It is kept as a
// baseline for the lazy variant.
type LmiOldOracle struct {
	m  int
	mq *linalg.LDLTMgr
	f  []*linalg.Matrix
	f0 *linalg.Matrix
	a  *linalg.Matrix
}

// NewLmiOldOracle returns a materializing oracle for B − Σₖ xₖFₖ ⪰ 0 with
// dim×dim coefficient matrices.
func NewLmiOldOracle(dim int, f []*linalg.Matrix, b *linalg.Matrix) *LmiOldOracle {
	return &LmiOldOracle{m: dim, mq: linalg.NewLDLTMgr(dim), f: f, f0: b, a: linalg.NewMatrix(dim)}
}

// AssessFeas reports ok=false when the inequality holds at x.
func (o *LmiOldOracle) AssessFeas(x []float64) (cutplane.Cut[[]float64], bool) {
	for i := 0; i < o.m; i++ {
		for j := 0; j < o.m; j++ {
			a := o.f0.At(i, j)
			for k, xk := range x {
				a -= o.f[k].At(i, j) * xk
			}
			o.a.Set(i, j, a)
		}
	}
	if o.mq.Factor(o.a.At) {
		return cutplane.Cut[[]float64]{}, false
	}
	ep := o.mq.Witness() // must precede SymQuad
	g := make([]float64, len(x))
	for k := range x {
		g[k] = o.mq.SymQuad(o.f[k].At)
	}
	return cutplane.NewCut(g, ep), true
}
