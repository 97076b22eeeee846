// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradientQuadratic(t *testing.T) {
	f := func(x []float64) float64 { return x[0]*x[0] + 3.0*x[0]*x[1] }
	x := []float64{2.0, -1.0}
	grad := make([]float64, 2)
	Gradient(f, x, grad)

	assert.InDelta(t, 1.0, grad[0], 1e-7)
	assert.InDelta(t, 6.0, grad[1], 1e-7)
	// the probe must restore the evaluation point
	assert.Equal(t, []float64{2.0, -1.0}, x)
}

func TestGradientTranscendental(t *testing.T) {
	f := func(x []float64) float64 { return math.Log(1.0 + math.Exp(x[0])) }
	x := []float64{0.5}
	grad := make([]float64, 1)
	Gradient(f, x, grad)

	want := math.Exp(0.5) / (1.0 + math.Exp(0.5))
	assert.InDelta(t, want, grad[0], 1e-7)
}

func TestGradientDimensionPanics(t *testing.T) {
	assert.Panics(t, func() {
		Gradient(func([]float64) float64 { return 0 }, []float64{1}, []float64{0, 0})
	})
}
