// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ellipsoid

import (
	"github.com/convexlab/ellalgo/cutplane"
	"github.com/convexlab/ellalgo/linalg"
)

// EllStable is an ellipsoid search space holding Q in factored LDLᵀ form,
// which keeps the rank-one updates numerically stable over long runs. The
// storage layout inside mq is: inv(D) on the diagonal, the unit factor L
// above it, and scratch products below it.
type EllStable struct {
	n     int
	kappa float64
	mq    *linalg.Matrix
	xc    Vec
	tsq   float64
	calc  Calc
}

func newEllStable(kappa float64, mq *linalg.Matrix, xc Vec) *EllStable {
	n := len(xc)
	return &EllStable{n: n, kappa: kappa, mq: mq, xc: xc, calc: NewCalc(n)}
}

// NewEllStable builds the ball of squared radius alpha centered at xc.
func NewEllStable(alpha float64, xc Vec) *EllStable {
	mq := linalg.NewMatrix(len(xc))
	mq.Identity()
	return newEllStable(alpha, mq, append(Vec(nil), xc...))
}

// NewEllStableDiag builds an axis-aligned ellipsoid with squared semi-axes
// val; the diagonal stores the reciprocals since mq carries inv(D).
func NewEllStableDiag(val, xc Vec) *EllStable {
	mq := linalg.NewMatrix(len(xc))
	for i, v := range val {
		mq.Set(i, i, 1.0/v)
	}
	return newEllStable(1.0, mq, append(Vec(nil), xc...))
}

// Copy returns an independent copy of the space.
func (e *EllStable) Copy() *EllStable {
	c := *e
	c.mq = e.mq.Copy()
	c.xc = append(Vec(nil), e.xc...)
	return &c
}

// Center returns a copy of the current center.
func (e *EllStable) Center() Vec { return append(Vec(nil), e.xc...) }

// SetCenter moves the center to xc.
func (e *EllStable) SetCenter(xc Vec) { copy(e.xc, xc) }

// ShrinkMetric returns τ² of the most recent cut.
func (e *EllStable) ShrinkMetric() float64 { return e.tsq }

// SetUseParallelCut toggles recognition of parallel cuts.
func (e *EllStable) SetUseParallelCut(value bool) { e.calc.UseParallelCut = value }

// Update shrinks the space by a deep cut (offset ≥ 0).
func (e *EllStable) Update(cut cutplane.Cut[Vec]) cutplane.CutStatus {
	return e.updateCore(cut, func(c cutplane.Cut[Vec], tsq float64) (cutplane.CutStatus, float64, float64, float64) {
		if c.Parallel {
			return e.calc.CalcParallelDeepCut(c.Beta, c.Beta1, tsq)
		}
		return e.calc.CalcDeepCut(c.Beta, tsq)
	})
}

// UpdateCentral shrinks the space by a central cut.
func (e *EllStable) UpdateCentral(cut cutplane.Cut[Vec]) cutplane.CutStatus {
	return e.updateCore(cut, func(c cutplane.Cut[Vec], tsq float64) (cutplane.CutStatus, float64, float64, float64) {
		if c.Parallel {
			return e.calc.CalcParallelCentralCut(c.Beta1, tsq)
		}
		return e.calc.CalcCentralCut(tsq)
	})
}

// UpdateQ shrinks the space by a relaxed cut whose offset may be negative.
func (e *EllStable) UpdateQ(cut cutplane.Cut[Vec]) cutplane.CutStatus {
	return e.updateCore(cut, func(c cutplane.Cut[Vec], tsq float64) (cutplane.CutStatus, float64, float64, float64) {
		if c.Parallel {
			return e.calc.CalcParallelDeepCutQ(c.Beta, c.Beta1, tsq)
		}
		return e.calc.CalcDeepCutQ(c.Beta, tsq)
	})
}

// updateCore works entirely on the LDLᵀ factors: the measurement along the
// gradient costs two triangular solves, and the ellipsoid correction becomes
// a rank-one update of L and inv(D).
func (e *EllStable) updateCore(cut cutplane.Cut[Vec], strategy func(cutplane.Cut[Vec], float64) (cutplane.CutStatus, float64, float64, float64)) cutplane.CutStatus {
	g := cut.Grad
	n := e.n

	// inv(L)·𝐠, stashing the products L(j,i)·invLg(j) below the diagonal
	// for the rank-one update below
	invLg := append(Vec(nil), g...)
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			e.mq.Set(i, j, e.mq.At(j, i)*invLg[j])
			invLg[i] -= e.mq.At(i, j)
		}
	}

	// inv(D)·inv(L)·𝐠 and ω = 𝐠ᵀQ𝐠
	invDinvLg := append(Vec(nil), invLg...)
	gQg := append(Vec(nil), invLg...)
	omega := 0.0
	for i := 0; i < n; i++ {
		invDinvLg[i] *= e.mq.At(i, i)
		gQg[i] = invDinvLg[i] * invLg[i]
		omega += gQg[i]
	}

	e.tsq = e.kappa * omega

	status, rho, sigma, delta := strategy(cut, e.tsq)
	if status != cutplane.Success {
		return status
	}

	// Q·𝐠 = inv(Lᵀ)·inv(D)·inv(L)·𝐠 by backward substitution
	qg := append(Vec(nil), invDinvLg...)
	for i := n - 1; i > 0; i-- {
		for j := i; j < n; j++ {
			qg[i-1] -= e.mq.At(i, j) * qg[j]
		}
	}

	// rank-one update of the factors
	mu := sigma / (1.0 - sigma)
	oldt := omega / mu
	m := n - 1
	for j := 0; j < m; j++ {
		t := oldt + gQg[j]
		beta2 := invDinvLg[j] / t
		e.mq.Set(j, j, e.mq.At(j, j)*(oldt/t)) // update inv(D)
		for l := j + 1; l < n; l++ {
			e.mq.Add(j, l, beta2*e.mq.At(l, j))
		}
		oldt = t
	}
	t := oldt + gQg[m]
	e.mq.Set(m, m, e.mq.At(m, m)*(oldt/t))

	e.kappa *= delta

	rOmega := rho / omega
	for i := range e.xc {
		e.xc[i] -= rOmega * qg[i]
	}
	return status
}
