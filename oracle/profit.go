// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oracle provides separation oracles for several classic convex
// problems: profit maximization under a Cobb-Douglas production function,
// linear and quadratic matrix inequalities, and FIR lowpass filter design.
// Each oracle plugs into the drivers of package cutplane.
package oracle

import (
	"math"

	"github.com/convexlab/ellalgo/cutplane"
)

// ProfitOracle assesses the profit maximization problem
//
//	max  p·(A·x₁^α·x₂^β) − v₁x₁ − v₂x₂
//	s.t. x₁ ≤ k
//
// taken from [Aliabadi and Salahi, 2013], where p·(A·x₁^α·x₂^β) is a
// Cobb-Douglas production function with market price p, production scale A
// and output elasticities (α, β). The assessment point 𝐲 = log 𝐱 makes the
// problem convex.
type ProfitOracle struct {
	logPA float64
	logK  float64

	// Elasticities are the exponents (α, β) of the production function.
	// The robust variant perturbs them between assessments.
	Elasticities []float64

	priceOut []float64
}

// NewProfitOracle returns an oracle for market price p, production scale
// scaleA, input bound k, elasticities (α, β) and output prices v.
func NewProfitOracle(p, scaleA, k float64, elasticities, v []float64) *ProfitOracle {
	return &ProfitOracle{
		logPA:        math.Log(p * scaleA),
		logK:         math.Log(k),
		Elasticities: elasticities,
		priceOut:     v,
	}
}

// AssessOptim assesses 𝐲 against the best-so-far profit gamma, raising gamma
// when the point improves on it.
func (o *ProfitOracle) AssessOptim(y []float64, gamma *float64) (cutplane.Cut[[]float64], bool) {
	// y₀ ≤ log k
	if f1 := y[0] - o.logK; f1 > 0.0 {
		return cutplane.NewCut([]float64{1.0, 0.0}, f1), false
	}

	logCobb := o.logPA + o.Elasticities[0]*y[0] + o.Elasticities[1]*y[1]
	x0, x1 := math.Exp(y[0]), math.Exp(y[1])
	vx := o.priceOut[0]*x0 + o.priceOut[1]*x1
	te := *gamma + vx

	fj := math.Log(te) - logCobb
	if fj < 0.0 {
		te = math.Exp(logCobb)
		*gamma = te - vx
		g := []float64{
			o.priceOut[0]*x0/te - o.Elasticities[0],
			o.priceOut[1]*x1/te - o.Elasticities[1],
		}
		return cutplane.NewCut(g, 0.0), true
	}
	g := []float64{
		o.priceOut[0]*x0/te - o.Elasticities[0],
		o.priceOut[1]*x1/te - o.Elasticities[1],
	}
	return cutplane.NewCut(g, fj), false
}

// ProfitOracleRb is the robust counterpart of ProfitOracle: the parameters
// carry interval uncertainties
//
//	α' = α ± e₁,  β' = β ± e₂,  p' = p ± e₃,  k' = k ± e₃,  v' = v ± e₃
//
// and each assessment evaluates the worst-case corner for the current sign
// of 𝐲.
type ProfitOracleRb struct {
	uie          []float64
	elasticities []float64
	p            *ProfitOracle
}

// NewProfitOracleRb returns a robust oracle; e holds the elasticity
// uncertainties and e3 the price/bound/cost uncertainty.
func NewProfitOracleRb(p, scaleA, k float64, elasticities, v, e []float64, e3 float64) *ProfitOracleRb {
	vUp := []float64{v[0] + e3, v[1] + e3}
	return &ProfitOracleRb{
		uie:          e,
		elasticities: elasticities,
		p:            NewProfitOracle(p-e3, scaleA, k-e3, elasticities, vUp),
	}
}

// AssessOptim picks the pessimistic elasticities for the sign of 𝐲 and
// delegates to the nominal oracle.
func (o *ProfitOracleRb) AssessOptim(y []float64, gamma *float64) (cutplane.Cut[[]float64], bool) {
	aRb := []float64{o.elasticities[0], o.elasticities[1]}
	if y[0] > 0.0 {
		aRb[0] -= o.uie[0]
	} else {
		aRb[0] += o.uie[0]
	}
	if y[1] > 0.0 {
		aRb[1] -= o.uie[1]
	} else {
		aRb[1] += o.uie[1]
	}
	o.p.Elasticities = aRb
	return o.p.AssessOptim(y, gamma)
}

// ProfitOracleQ is the discrete variant of ProfitOracle: the input
// quantities 𝐱 = exp 𝐲 must be integers, so each assessment rounds 𝐱 to the
// nearest integer point before evaluating.
type ProfitOracleQ struct {
	p  *ProfitOracle
	yd []float64
}

// NewProfitOracleQ returns a quantized oracle with the same parameters as
// NewProfitOracle.
func NewProfitOracleQ(p, scaleA, k float64, elasticities, v []float64) *ProfitOracleQ {
	return &ProfitOracleQ{p: NewProfitOracle(p, scaleA, k, elasticities, v)}
}

// AssessQ evaluates the rounded point near 𝐲 and translates the resulting
// cut back to 𝐲. On a retry it keeps the previous rounding.
func (o *ProfitOracleQ) AssessQ(y []float64, gamma *float64, retry bool) (cutplane.Cut[[]float64], bool, []float64, bool) {
	if !retry {
		x0 := math.Round(math.Exp(y[0]))
		x1 := math.Round(math.Exp(y[1]))
		if x0 == 0.0 {
			x0 = 1.0 // nearest integer other than zero
		}
		if x1 == 0.0 {
			x1 = 1.0
		}
		o.yd = []float64{math.Log(x0), math.Log(x1)}
	}
	cut, shrunk := o.p.AssessOptim(o.yd, gamma)
	cut.Beta += cut.Grad[0]*(o.yd[0]-y[0]) + cut.Grad[1]*(o.yd[1]-y[1])
	return cut, shrunk, o.yd, false
}
