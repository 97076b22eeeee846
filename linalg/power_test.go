// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func eigResidual(a *Matrix, x []float64, eig float64) float64 {
	ax := a.MulVec(x)
	s := 0.0
	for i := range x {
		d := ax[i] - eig*x[i]
		s += d * d
	}
	return math.Sqrt(s)
}

func TestPowerIteration(t *testing.T) {
	a := NewMatrixOf([][]float64{
		{3.7, -3.6, 0.7},
		{-3.6, 4.3, -2.8},
		{0.7, -2.8, 5.4},
	})
	opts := EigOptions{MaxIters: 2000, Tol: 1e-9}

	x := []float64{0.3, 0.5, 0.4}
	eig, numIters := PowerIteration(a, x, opts)
	assert.Less(t, numIters, opts.MaxIters)
	assert.InDelta(t, 1.0, math.Sqrt(dot(x, x)), 1e-9)
	assert.Less(t, eigResidual(a, x, eig), 1e-4)
}

func TestPowerIterationL1(t *testing.T) {
	a := NewMatrixOf([][]float64{
		{3.7, -3.6, 0.7},
		{-3.6, 4.3, -2.8},
		{0.7, -2.8, 5.4},
	})
	opts := EigOptions{MaxIters: 2000, Tol: 1e-9}

	x := []float64{0.3, 0.5, 0.4}
	eig, numIters := PowerIterationL1(a, x, opts)
	assert.Less(t, numIters, opts.MaxIters)
	assert.InDelta(t, 1.0, math.Sqrt(dot(x, x)), 1e-9)
	assert.Less(t, eigResidual(a, x, eig), 1e-4)

	// both variants agree on the dominant eigenvalue
	x2 := []float64{0.3, 0.5, 0.4}
	eig2, _ := PowerIteration(a, x2, opts)
	assert.InDelta(t, eig2, eig, 1e-6)
}
