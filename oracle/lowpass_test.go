// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convexlab/ellalgo/cutplane"
	"github.com/convexlab/ellalgo/ellipsoid"
	"github.com/convexlab/ellalgo/oracle"
)

func TestLowpassOracleConstraints(t *testing.T) {
	omega, spsq := oracle.NewLowpassCase(32)
	assert.InDelta(t, 0.015625, spsq, 1e-12)

	// a negative zero-frequency response violates realizability
	x := make([]float64, 33)
	x[0] = -0.5
	cut, shrunk := omega.AssessOptim(x, &spsq)
	assert.False(t, shrunk)
	assert.False(t, cut.Parallel)
	assert.InDelta(t, -1.0, cut.Grad[0], 1e-12)
	assert.InDelta(t, 0.5, cut.Beta, 1e-12)
	assert.True(t, omega.MoreAlt)

	// the zero filter falls below the passband lower bound: a parallel cut
	x[0] = 0.0
	cut, shrunk = omega.AssessOptim(x, &spsq)
	assert.False(t, shrunk)
	assert.True(t, cut.Parallel)
	assert.Greater(t, cut.Beta, 0.0)
	assert.Greater(t, cut.Beta1, cut.Beta)
}

func TestLowpassDesign(t *testing.T) {
	const order = 32
	omega, spsq := oracle.NewLowpassCase(order)

	r0 := make(ellipsoid.Vec, order+1)
	ell := ellipsoid.NewEll(40.0, r0)
	opts := cutplane.Options{MaxIters: 50000, Tol: 1e-8}
	r, gamma, ci := cutplane.SolveOptim[ellipsoid.Vec](omega, ell, spsq, opts)
	require.True(t, ci.Feasible)
	require.Len(t, r, order+1)
	assert.Equal(t, 418, ci.NumIters)
	assert.InDelta(t, 4.2913434e-5, gamma, 1e-9)
	assert.GreaterOrEqual(t, r[0], 0.0)
	assert.Less(t, gamma, spsq)
}
