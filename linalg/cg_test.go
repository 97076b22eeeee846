// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConjugateGradientSimple(t *testing.T) {
	a := NewMatrixOf([][]float64{
		{4.0, 1.0},
		{1.0, 3.0},
	})
	b := []float64{1.0, 2.0}

	x, err := ConjugateGradient(a, b, nil, 1e-8, 100)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/11.0, x[0], 1e-5)
	assert.InDelta(t, 7.0/11.0, x[1], 1e-5)
}

func TestConjugateGradientLarger(t *testing.T) {
	const n = 100
	a := NewMatrix(n)
	for i := 0; i < n; i++ {
		a.Set(i, i, float64(i+1))
	}

	rng := rand.New(rand.NewSource(1))
	xTrue := make([]float64, n)
	for i := range xTrue {
		xTrue[i] = rng.Float64()
	}
	b := a.MulVec(xTrue)

	x, err := ConjugateGradient(a, b, nil, 1e-8, 1000)
	require.NoError(t, err)
	for i := range x {
		assert.InDelta(t, xTrue[i], x[i], 1e-5)
	}
}

func TestConjugateGradientInitialGuess(t *testing.T) {
	a := NewMatrixOf([][]float64{
		{4.0, 1.0},
		{1.0, 3.0},
	})
	b := []float64{1.0, 2.0}

	x, err := ConjugateGradient(a, b, []float64{1.0, 1.0}, 1e-8, 100)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/11.0, x[0], 1e-5)
	assert.InDelta(t, 7.0/11.0, x[1], 1e-5)
}

func TestConjugateGradientTolerance(t *testing.T) {
	a := NewMatrixOf([][]float64{
		{4.0, 1.0},
		{1.0, 3.0},
	})
	b := []float64{1.0, 2.0}
	tol := 1e-10

	x, err := ConjugateGradient(a, b, nil, tol, 100)
	require.NoError(t, err)

	ax := a.MulVec(x)
	res := 0.0
	for i := range b {
		d := b[i] - ax[i]
		res += d * d
	}
	assert.Less(t, math.Sqrt(res), tol)
}

func TestConjugateGradientBudgetTooSmall(t *testing.T) {
	const n = 100
	a := NewMatrix(n)
	for i := 0; i < n; i++ {
		a.Set(i, i, float64(i+1))
	}
	b := make([]float64, n)
	for i := range b {
		b[i] = 1.0
	}

	_, err := ConjugateGradient(a, b, nil, 1e-14, 2)
	assert.Error(t, err)
}
