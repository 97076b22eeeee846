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
	"github.com/convexlab/ellalgo/linalg"
	"github.com/convexlab/ellalgo/oracle"
)

// The fixtures build F(𝐱) = F₀ − x₁F₁ − x₂F₂ whose norm is minimized at
// 𝐱 = (3, 1), where F(𝐱) = diag(1, 0, −1) and t* = ‖F(𝐱)‖² = 1.

func TestQmiOracleAssess(t *testing.T) {
	f := []*linalg.Matrix{
		linalg.NewMatrixOf([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}),
		linalg.NewMatrixOf([][]float64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}),
	}
	f0 := linalg.NewMatrixOf([][]float64{{4, 1, 0}, {1, 3, 1}, {0, 1, 2}})

	// at 𝐱 = (3, 1), F(𝐱)ᵀF(𝐱) = diag(1, 0, 1)
	omega := oracle.NewQmiOracle(f, f0, 2.0)
	_, infeas := omega.AssessFeas([]float64{3.0, 1.0})
	assert.False(t, infeas)

	// at t = 0.5 the first pivot of t·I − F(𝐱)ᵀF(𝐱) is −0.5
	omega.Update(0.5)
	cut, infeas := omega.AssessFeas([]float64{3.0, 1.0})
	require.True(t, infeas)
	assert.InDelta(t, 0.5, cut.Beta, 1e-12)
	assert.Len(t, cut.Grad, 2)
}

func TestQmiBisection(t *testing.T) {
	f := []*linalg.Matrix{
		linalg.NewMatrixOf([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}),
		linalg.NewMatrixOf([][]float64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}),
	}
	f0 := linalg.NewMatrixOf([][]float64{{4, 1, 0}, {1, 3, 1}, {0, 1, 2}})

	omega := oracle.NewQmiOracle(f, f0, 100.0)
	ell := ellipsoid.NewEll(9.0, ellipsoid.Vec{0.0, 0.0})
	adaptor := cutplane.NewBisectAdaptor[ellipsoid.Vec, *ellipsoid.Ell](omega, ell, cutplane.DefaultOptions())

	intvl := cutplane.Interval[float64]{Lower: 0.0, Upper: 100.0}
	ci := cutplane.Bisect[float64](adaptor, &intvl, cutplane.DefaultOptions())
	require.True(t, ci.Feasible)
	assert.Equal(t, 33, ci.NumIters)
	assert.InDelta(t, 1.0, intvl.Upper, 1e-4)

	x := adaptor.XBest()
	require.Len(t, x, 2)
	assert.InDelta(t, 3.0, x[0], 1e-2)
	assert.InDelta(t, 1.0, x[1], 1e-2)
}
