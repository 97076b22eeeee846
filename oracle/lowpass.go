// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"math"

	"github.com/convexlab/ellalgo/cutplane"
)

// LowpassOracle assesses an FIR lowpass filter design problem,
// adapted from Almir Mutapcic's CVX formulation (2006):
//
//	min   γ
//	s.t.  L²(ω) ≤ R(ω) ≤ U²(ω)  ∀ω ∈ [0, ωpass]
//	      R(ω) ≤ γ               ∀ω ∈ [ωstop, π]
//	      R(ω) ≥ 0               ∀ω ∈ [0, π]
//
// where R(ω) is the squared magnitude frequency response, the Fourier
// transform of the autocorrelation coefficients 𝐫 (the assessment point).
// Spectral factorization recovers the impulse response afterwards. The band
// constraints come in upper/lower pairs, so most assessments produce
// parallel cuts.
type LowpassOracle struct {
	a      [][]float64 // a[i]·𝐫 = R(ωᵢ) on the discretization grid
	lpsq   float64
	upsq   float64
	nwpass int
	nwstop int

	// MoreAlt reports whether constraint rows other than the objective were
	// still unchecked when the last assessment returned, i.e. whether a
	// retry at another rounding could produce a different cut.
	MoreAlt bool
}

// NewLowpassOracle returns an oracle for an order-n filter with squared
// passband bounds (lpsq, upsq) and normalized band edges (wpass, wstop).
func NewLowpassOracle(n int, lpsq, upsq, wpass, wstop float64) *LowpassOracle {
	// rule-of-thumb discretization (from Cheney's Approximation Theory)
	m := 15 * n
	a := make([][]float64, m)
	for i := 0; i < m; i++ {
		w := float64(i) * math.Pi / float64(m-1)
		row := make([]float64, n+1)
		row[0] = 1.0
		for j := 1; j <= n; j++ {
			row[j] = 2.0 * math.Cos(w*float64(j))
		}
		a[i] = row
	}
	return &LowpassOracle{
		a:       a,
		lpsq:    lpsq,
		upsq:    upsq,
		nwpass:  int(math.Floor(wpass*float64(m-1))) + 1,
		nwstop:  int(math.Floor(wstop*float64(m-1))) + 1,
		MoreAlt: true,
	}
}

// NewLowpassCase returns an order-n oracle with the canonical ±0.125
// passband ripple and 0.125 stopband attenuation, along with the initial
// stopband level Sp².
func NewLowpassCase(n int) (*LowpassOracle, float64) {
	delta0Wpass := 0.125
	delta0Wstop := 0.125
	// passband ripple and stopband attenuation in dB
	delta1 := 20.0 * math.Log10(1.0+delta0Wpass)
	delta2 := 20.0 * math.Log10(delta0Wstop)

	lp := math.Pow(10, -delta1/20)
	up := math.Pow(10, +delta1/20)
	sp := math.Pow(10, +delta2/20)

	omega := NewLowpassOracle(n, lp*lp, up*up, 0.12, 0.20)
	return omega, sp * sp
}

func (o *LowpassOracle) rowDot(k int, x []float64) float64 {
	sum := 0.0
	for j, xj := range x {
		sum += o.a[k][j] * xj
	}
	return sum
}

func (o *LowpassOracle) rowCopy(k int, neg bool) []float64 {
	g := make([]float64, len(o.a[k]))
	if neg {
		for j, v := range o.a[k] {
			g[j] = -v
		}
	} else {
		copy(g, o.a[k])
	}
	return g
}

// AssessOptim checks the spectral constraints in band order and lowers the
// stopband level gamma once every constraint holds.
func (o *LowpassOracle) AssessOptim(x []float64, gamma *float64) (cutplane.Cut[[]float64], bool) {
	o.MoreAlt = true

	// nonnegative-real constraint at ω = 0
	if x[0] < 0.0 {
		g := make([]float64, len(x))
		g[0] = -1.0
		return cutplane.NewCut(g, -x[0]), false
	}

	// passband ripple bounds
	for k := 0; k < o.nwpass; k++ {
		v := o.rowDot(k, x)
		if v > o.upsq {
			return cutplane.NewParallelCut(o.rowCopy(k, false), v-o.upsq, v-o.lpsq), false
		}
		if v < o.lpsq {
			return cutplane.NewParallelCut(o.rowCopy(k, true), o.lpsq-v, o.upsq-v), false
		}
	}

	// stopband attenuation
	fmax := math.Inf(-1)
	kmax := 0
	for k := o.nwstop; k < len(o.a); k++ {
		v := o.rowDot(k, x)
		if v > *gamma {
			return cutplane.NewParallelCut(o.rowCopy(k, false), v-*gamma, v), false
		}
		if v < 0.0 {
			return cutplane.NewParallelCut(o.rowCopy(k, true), -v, -v+*gamma), false
		}
		if v > fmax {
			fmax = v
			kmax = k
		}
	}

	// nonnegative-real constraint on the transition band
	for k := o.nwpass; k < o.nwstop; k++ {
		if v := o.rowDot(k, x); v < 0.0 {
			return cutplane.NewCut(o.rowCopy(k, true), -v), false
		}
	}

	o.MoreAlt = false

	*gamma = fmax
	return cutplane.NewParallelCut(o.rowCopy(kmax, false), 0.0, fmax), true
}
