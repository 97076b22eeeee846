// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ellipsoid implements the ellipsoid method search spaces driven by
// the cutplane package. An ellipsoid
//
//	ℰ = {𝐱 | (𝐱 - 𝐱ᶜ)ᵀ(κQ)⁻¹(𝐱 - 𝐱ᶜ) ≤ 1}
//
// is shrunk by each cut into the minimum-volume ellipsoid containing the
// remaining half-space (or slab, for a parallel cut).
package ellipsoid

import "math"

// CalcCore evaluates the update parameters (ϱ, σ, δ) of the ellipsoid method
// for a fixed dimension n:
//
//	𝐱ᶜ ← 𝐱ᶜ - (ϱ/ω)·Q𝐠
//	Q  ← Q - (σ/ω)·(Q𝐠)(Q𝐠)ᵀ
//	κ  ← δ·κ          with ω = 𝐠ᵀQ𝐠
//
// The methods are pure; feasibility gating lives in Calc.
type CalcCore struct {
	nF     float64
	nPlus1 float64
	halfN  float64
	invN   float64
	cst1   float64 // n²/(n²-1)
	cst2   float64 // 2/(n+1)
}

// NewCalcCore prepares the constants for dimension ndim (ndim ≥ 2).
func NewCalcCore(ndim int) CalcCore {
	nF := float64(ndim)
	nSq := nF * nF
	return CalcCore{
		nF:     nF,
		nPlus1: nF + 1.0,
		halfN:  nF / 2.0,
		invN:   1.0 / nF,
		cst1:   nSq / (nSq - 1.0),
		cst2:   2.0 / (nF + 1.0),
	}
}

// CalcParallelCut handles the slab between two parallel cuts:
//
//	𝐠ᵀ(𝐱 - 𝐱ᶜ) + β₀ ≤ 0
//	𝐠ᵀ(𝐱 - 𝐱ᶜ) + β₁ ≥ 0
func (c CalcCore) CalcParallelCut(beta0, beta1, tsq float64) (rho, sigma, delta float64) {
	b0b1 := beta0 * beta1
	eta := tsq + c.nF*b0b1
	return c.CalcParallelCutFast(beta0, beta1, tsq, b0b1, eta)
}

// CalcParallelCutFast is CalcParallelCut with the products β₀β₁ and
// η = τ² + n·β₀β₁ already at hand:
//
//	 _
//	 β = (β₀ + β₁)/2
//	                       _
//	 h = (τ² + β₀β₁)/2 + n·β²
//	              ____________________
//	             ╱       　        _
//	 k = h + ╲╱ h² - (n+1)·η·β²
//	              _
//	 σ = η/k, ϱ = β·σ
//	                  _
//	 δ·τ² = τ² + (1/μ)·(β²σ - β₀β₁)  with 1/μ = η/(k - η)
func (c CalcCore) CalcParallelCutFast(beta0, beta1, tsq, b0b1, eta float64) (rho, sigma, delta float64) {
	bavg := 0.5 * (beta0 + beta1)
	bavgsq := bavg * bavg
	h := 0.5*(tsq+b0b1) + c.nF*bavgsq
	k := h + math.Sqrt(h*h-c.nPlus1*eta*bavgsq)
	invMuPlus1 := eta / k
	invMu := eta / (k - eta)
	rho = bavg * invMuPlus1
	sigma = invMuPlus1
	delta = (tsq + invMu*(bavgsq*invMuPlus1-b0b1)) / tsq
	return rho, sigma, delta
}

// CalcParallelCentralCut handles a slab whose lower cut passes through the
// center:
//
//	𝐠ᵀ(𝐱 - 𝐱ᶜ)      ≤ 0
//	𝐠ᵀ(𝐱 - 𝐱ᶜ) + β₁ ≥ 0
//
//	α₁² = β₁²/τ²
//	k = (n/2)·α₁²
//	r = k + √(1 - α₁² + k²)
//	ϱ = β₁/(r+1), σ = 2/(r+1), δ = r/(r - 1/n)
func (c CalcCore) CalcParallelCentralCut(beta1, tsq float64) (rho, sigma, delta float64) {
	b1sq := beta1 * beta1
	a1sq := b1sq / tsq
	k := c.halfN * a1sq
	r := k + math.Sqrt(1.0-a1sq+k*k)
	rPlus1 := r + 1.0
	rho = beta1 / rPlus1
	sigma = 2.0 / rPlus1
	delta = r / (r - c.invN)
	return rho, sigma, delta
}

// CalcBiasCut handles a single deep cut 𝐠ᵀ(𝐱 - 𝐱ᶜ) + β ≤ 0 with 0 ≤ β ≤ τ.
func (c CalcCore) CalcBiasCut(beta, tau float64) (rho, sigma, delta float64) {
	return c.CalcBiasCutFast(beta, tau, tau+c.nF*beta)
}

// CalcBiasCutFast is CalcBiasCut with η = τ + n·β already at hand:
//
//	ϱ = η/(n+1)
//	σ = 2ϱ/(τ+β)
//	δ = n²/(n²-1)·(1 - (β/τ)²)
func (c CalcCore) CalcBiasCutFast(beta, tau, eta float64) (rho, sigma, delta float64) {
	alpha := beta / tau
	sigma = c.cst2 * eta / (tau + beta)
	rho = eta / c.nPlus1
	delta = c.cst1 * (1.0 - alpha*alpha)
	return rho, sigma, delta
}

// CalcCentralCut handles a cut through the center, 𝐠ᵀ(𝐱 - 𝐱ᶜ) ≤ 0:
//
//	ϱ = τ/(n+1), σ = 2/(n+1), δ = n²/(n²-1)
func (c CalcCore) CalcCentralCut(tau float64) (rho, sigma, delta float64) {
	return tau / c.nPlus1, c.cst2, c.cst1
}
