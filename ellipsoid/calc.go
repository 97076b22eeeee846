// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ellipsoid

import (
	"math"

	"github.com/convexlab/ellalgo/cutplane"
)

// Calc gates the raw CalcCore formulas with feasibility checks and status
// reporting. The plain variants require nonnegative offsets (the assessed
// point is the exact center); the Q variants tolerate negative offsets,
// which arise when a quantized oracle assesses a rounded, off-center point.
type Calc struct {
	UseParallelCut bool

	nF     float64
	helper CalcCore
}

// NewCalc prepares the calculator for dimension ndim. Parallel cuts are
// enabled by default.
func NewCalc(ndim int) Calc {
	return Calc{UseParallelCut: true, nF: float64(ndim), helper: NewCalcCore(ndim)}
}

// CalcParallelDeepCut assesses the slab (β₀, β₁). A reversed pair leaves no
// solution; a slab whose far side misses the ellipsoid degenerates into the
// single deep cut β₀.
func (c Calc) CalcParallelDeepCut(beta0, beta1, tsq float64) (cutplane.CutStatus, float64, float64, float64) {
	if beta1 < beta0 {
		return cutplane.NoSoln, 0, 0, 0
	}
	if (beta1 > 0 && tsq <= beta1*beta1) || !c.UseParallelCut {
		return c.CalcDeepCut(beta0, tsq)
	}
	rho, sigma, delta := c.helper.CalcParallelCut(beta0, beta1, tsq)
	return cutplane.Success, rho, sigma, delta
}

// CalcParallelCentralCut assesses the slab (0, β₁).
func (c Calc) CalcParallelCentralCut(beta1, tsq float64) (cutplane.CutStatus, float64, float64, float64) {
	if beta1 < 0 {
		return cutplane.NoSoln, 0, 0, 0
	}
	if tsq < beta1*beta1 || !c.UseParallelCut {
		return c.CalcCentralCut(tsq)
	}
	rho, sigma, delta := c.helper.CalcParallelCentralCut(beta1, tsq)
	return cutplane.Success, rho, sigma, delta
}

// CalcDeepCut assesses a single cut with offset β ≥ 0. The cut leaves no
// solution when it lies entirely beyond the ellipsoid (τ < β).
func (c Calc) CalcDeepCut(beta, tsq float64) (cutplane.CutStatus, float64, float64, float64) {
	if beta < 0 {
		panic("ellipsoid: deep cut requires a nonnegative offset")
	}
	if tsq < beta*beta {
		return cutplane.NoSoln, 0, 0, 0
	}
	rho, sigma, delta := c.helper.CalcBiasCut(beta, math.Sqrt(tsq))
	return cutplane.Success, rho, sigma, delta
}

// CalcCentralCut assesses a cut through the center.
func (c Calc) CalcCentralCut(tsq float64) (cutplane.CutStatus, float64, float64, float64) {
	rho, sigma, delta := c.helper.CalcCentralCut(math.Sqrt(tsq))
	return cutplane.Success, rho, sigma, delta
}

// CalcParallelDeepCutQ is the quantized counterpart of CalcParallelDeepCut:
// a concave offset pair (η = τ² + n·β₀β₁ ≤ 0) cannot shrink the ellipsoid.
func (c Calc) CalcParallelDeepCutQ(beta0, beta1, tsq float64) (cutplane.CutStatus, float64, float64, float64) {
	if beta1 < beta0 {
		return cutplane.NoSoln, 0, 0, 0
	}
	if (beta1 > 0 && tsq <= beta1*beta1) || !c.UseParallelCut {
		return c.CalcDeepCutQ(beta0, tsq)
	}
	b0b1 := beta0 * beta1
	eta := tsq + c.nF*b0b1
	if eta <= 0 {
		return cutplane.NoEffect, 0, 0, 1
	}
	rho, sigma, delta := c.helper.CalcParallelCutFast(beta0, beta1, tsq, b0b1, eta)
	return cutplane.Success, rho, sigma, delta
}

// CalcDeepCutQ is the quantized counterpart of CalcDeepCut: the offset may be
// negative, and a cut too shallow to bite (η = τ + n·β ≤ 0) has no effect.
func (c Calc) CalcDeepCutQ(beta, tsq float64) (cutplane.CutStatus, float64, float64, float64) {
	tau := math.Sqrt(tsq)
	if tau < beta {
		return cutplane.NoSoln, 0, 0, 0
	}
	eta := tau + c.nF*beta
	if eta <= 0 {
		return cutplane.NoEffect, 0, 0, 1
	}
	rho, sigma, delta := c.helper.CalcBiasCutFast(beta, tau, eta)
	return cutplane.Success, rho, sigma, delta
}
