// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ellipsoid

import (
	"github.com/convexlab/ellalgo/cutplane"
	"github.com/convexlab/ellalgo/linalg"
)

// Vec is the point type of the multi-dimensional spaces.
type Vec = []float64

// Ell is an n-dimensional ellipsoid search space
//
//	ℰ = {𝐱 | (𝐱 - 𝐱ᶜ)ᵀ(κQ)⁻¹(𝐱 - 𝐱ᶜ) ≤ 1}
//
// with Q kept symmetric (no promise of positive definiteness). The scale κ is
// carried separately so that each update touches Q by a rank-one correction
// only; set NoDeferTrick to fold κ back into Q after every update.
type Ell struct {
	NoDeferTrick bool

	n     int
	kappa float64
	mq    *linalg.Matrix
	xc    Vec
	tsq   float64
	calc  Calc
}

func newEll(kappa float64, mq *linalg.Matrix, xc Vec) *Ell {
	n := len(xc)
	return &Ell{n: n, kappa: kappa, mq: mq, xc: xc, calc: NewCalc(n)}
}

// NewEll builds the ball of squared radius alpha centered at xc.
func NewEll(alpha float64, xc Vec) *Ell {
	mq := linalg.NewMatrix(len(xc))
	mq.Identity()
	return newEll(alpha, mq, append(Vec(nil), xc...))
}

// NewEllDiag builds an axis-aligned ellipsoid with squared semi-axes val.
func NewEllDiag(val, xc Vec) *Ell {
	mq := linalg.NewMatrix(len(xc))
	mq.SetDiag(val)
	return newEll(1.0, mq, append(Vec(nil), xc...))
}

// Copy returns an independent copy of the space.
func (e *Ell) Copy() *Ell {
	c := *e
	c.mq = e.mq.Copy()
	c.xc = append(Vec(nil), e.xc...)
	return &c
}

// Center returns a copy of the current center.
func (e *Ell) Center() Vec { return append(Vec(nil), e.xc...) }

// SetCenter moves the center to xc.
func (e *Ell) SetCenter(xc Vec) { copy(e.xc, xc) }

// ShrinkMetric returns τ² = κ·𝐠ᵀQ𝐠 of the most recent cut, the squared
// extent of the ellipsoid along the cut direction.
func (e *Ell) ShrinkMetric() float64 { return e.tsq }

// SetUseParallelCut toggles recognition of parallel cuts.
func (e *Ell) SetUseParallelCut(value bool) { e.calc.UseParallelCut = value }

// Update shrinks the space by a deep cut (offset ≥ 0).
func (e *Ell) Update(cut cutplane.Cut[Vec]) cutplane.CutStatus {
	return e.updateCore(cut, e.deepCutStrategy)
}

// UpdateCentral shrinks the space by a central cut, ignoring the offset of a
// single cut and the lower offset of a parallel one.
func (e *Ell) UpdateCentral(cut cutplane.Cut[Vec]) cutplane.CutStatus {
	return e.updateCore(cut, e.centralCutStrategy)
}

// UpdateQ shrinks the space by a relaxed cut whose offset may be negative.
func (e *Ell) UpdateQ(cut cutplane.Cut[Vec]) cutplane.CutStatus {
	return e.updateCore(cut, e.qCutStrategy)
}

func (e *Ell) deepCutStrategy(cut cutplane.Cut[Vec], tsq float64) (cutplane.CutStatus, float64, float64, float64) {
	if cut.Parallel {
		return e.calc.CalcParallelDeepCut(cut.Beta, cut.Beta1, tsq)
	}
	return e.calc.CalcDeepCut(cut.Beta, tsq)
}

func (e *Ell) centralCutStrategy(cut cutplane.Cut[Vec], tsq float64) (cutplane.CutStatus, float64, float64, float64) {
	if cut.Parallel {
		return e.calc.CalcParallelCentralCut(cut.Beta1, tsq)
	}
	return e.calc.CalcCentralCut(tsq)
}

func (e *Ell) qCutStrategy(cut cutplane.Cut[Vec], tsq float64) (cutplane.CutStatus, float64, float64, float64) {
	if cut.Parallel {
		return e.calc.CalcParallelDeepCutQ(cut.Beta, cut.Beta1, tsq)
	}
	return e.calc.CalcDeepCutQ(cut.Beta, tsq)
}

// updateCore applies one cut: it measures the ellipsoid along the gradient,
// asks the strategy for (ϱ, σ, δ), then recenters and performs the rank-one
// correction of Q.
func (e *Ell) updateCore(cut cutplane.Cut[Vec], strategy func(cutplane.Cut[Vec], float64) (cutplane.CutStatus, float64, float64, float64)) cutplane.CutStatus {
	grad := cut.Grad
	gradT := make(Vec, e.n) // Q·𝐠
	omega := 0.0
	for i := 0; i < e.n; i++ {
		s := 0.0
		for j := 0; j < e.n; j++ {
			s += e.mq.At(i, j) * grad[j]
		}
		gradT[i] = s
		omega += s * grad[i]
	}

	e.tsq = e.kappa * omega

	status, rho, sigma, delta := strategy(cut, e.tsq)
	if status != cutplane.Success {
		return status
	}

	rOmega := rho / omega
	for i := range e.xc {
		e.xc[i] -= rOmega * gradT[i]
	}

	// Q ← Q - (σ/ω)·(Q𝐠)(Q𝐠)ᵀ, lower triangle first then mirrored
	r := sigma / omega
	for i := 0; i < e.n; i++ {
		rQg := r * gradT[i]
		for j := 0; j < i; j++ {
			e.mq.Add(i, j, -rQg*gradT[j])
			e.mq.Set(j, i, e.mq.At(i, j))
		}
		e.mq.Add(i, i, -rQg*gradT[i])
	}

	e.kappa *= delta

	if e.NoDeferTrick {
		e.mq.Scale(e.kappa)
		e.kappa = 1.0
	}
	return status
}
