// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ellipsoid

import (
	"math"

	"github.com/convexlab/ellalgo/cutplane"
)

// Ell1D is the one-dimensional search space, a plain interval maintained by
// its center and radius.
type Ell1D struct {
	r   float64
	xc  float64
	tsq float64
}

// NewEll1D builds the interval [l, u].
func NewEll1D(l, u float64) *Ell1D {
	r := (u - l) / 2
	return &Ell1D{r: r, xc: l + r}
}

// Copy returns an independent copy of the interval.
func (e *Ell1D) Copy() *Ell1D {
	c := *e
	return &c
}

// Center returns the current center.
func (e *Ell1D) Center() float64 { return e.xc }

// SetCenter moves the center to xc.
func (e *Ell1D) SetCenter(xc float64) { e.xc = xc }

// ShrinkMetric returns τ² of the most recent cut.
func (e *Ell1D) ShrinkMetric() float64 { return e.tsq }

// Update shrinks the interval by the cut g·(x - xc) + β ≤ 0. A central cut
// halves the interval; a cut beyond the far end leaves no solution; a cut
// short of the near end has no effect.
func (e *Ell1D) Update(cut cutplane.Cut[float64]) cutplane.CutStatus {
	g, beta := cut.Grad, cut.Beta

	tau := math.Abs(e.r * g)
	e.tsq = tau * tau

	if beta == 0 {
		e.r /= 2
		if g > 0 {
			e.xc -= e.r
		} else {
			e.xc += e.r
		}
		return cutplane.Success
	}
	if beta > tau {
		return cutplane.NoSoln
	}
	if beta < -tau {
		return cutplane.NoEffect
	}

	bound := e.xc - beta/g
	u, l := e.xc+e.r, e.xc-e.r
	if g > 0 {
		u = bound
	} else {
		l = bound
	}

	e.r = (u - l) / 2
	e.xc = l + e.r
	return cutplane.Success
}
