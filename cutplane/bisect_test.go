// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cutplane_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convexlab/ellalgo/cutplane"
	"github.com/convexlab/ellalgo/ellipsoid"
)

// monotoneOracle accepts any candidate at or above a fixed threshold.
type monotoneOracle struct {
	threshold float64
}

func (o monotoneOracle) AssessBisect(gamma float64) bool { return gamma >= o.threshold }

func TestBisectScalar(t *testing.T) {
	intvl := &cutplane.Interval[float64]{Lower: -100.0, Upper: 100.0}
	ci := cutplane.Bisect[float64](monotoneOracle{threshold: math.Pi}, intvl, cutplane.DefaultOptions())
	assert.True(t, ci.Feasible)
	assert.Less(t, intvl.Upper-intvl.Lower, 2e-8)
	assert.InDelta(t, math.Pi, intvl.Upper, 1e-7)
	// τ halves from 100; the first value below 1e-8 appears at iteration 34
	assert.Equal(t, 34, ci.NumIters)
}

func TestBisectNothingAccepted(t *testing.T) {
	intvl := &cutplane.Interval[float64]{Lower: 0.0, Upper: 1.0}
	ci := cutplane.Bisect[float64](monotoneOracle{threshold: 2.0}, intvl, cutplane.DefaultOptions())
	assert.False(t, ci.Feasible, "feasible only if some probe moved the upper bound")
}

func TestBisectInvertedInterval(t *testing.T) {
	intvl := &cutplane.Interval[float64]{Lower: 1.0, Upper: 0.0}
	assert.Panics(t, func() {
		cutplane.Bisect[float64](monotoneOracle{}, intvl, cutplane.DefaultOptions())
	})
}

// boundedFeasOracle cycles four linear constraints round-robin, the last one
// parameterized by the bisection level:
//
//	x ≥ −1,  y ≥ −2,  x + y ≤ 1,  2x − 3y ≤ γ
type boundedFeasOracle struct {
	idx    int
	target float64
}

func (o *boundedFeasOracle) AssessFeas(xc []float64) (cutplane.Cut[[]float64], bool) {
	x, y := xc[0], xc[1]
	for i := 0; i != 4; i++ {
		o.idx = (o.idx + 1) % 4 // round robin
		var fj float64
		var g []float64
		switch o.idx {
		case 0:
			fj, g = -x-1.0, []float64{-1.0, 0.0}
		case 1:
			fj, g = -y-2.0, []float64{0.0, -1.0}
		case 2:
			fj, g = x+y-1.0, []float64{1.0, 1.0}
		case 3:
			fj, g = 2.0*x-3.0*y-o.target, []float64{2.0, -3.0}
		}
		if fj > 0.0 {
			return cutplane.NewCut(g, fj), true
		}
	}
	return cutplane.Cut[[]float64]{}, false
}

func (o *boundedFeasOracle) Update(gamma float64) { o.target = gamma }

func TestBisectAdaptor(t *testing.T) {
	space := ellipsoid.NewEll(100.0, []float64{0.0, 0.0})
	omega := &boundedFeasOracle{target: -1e100}
	opts := cutplane.Options{MaxIters: 2000, Tol: 1e-8}
	adaptor := cutplane.NewBisectAdaptor[ellipsoid.Vec, *ellipsoid.Ell](omega, space, opts)

	intvl := &cutplane.Interval[float64]{Lower: -100.0, Upper: 100.0}
	ci := cutplane.Bisect[float64](adaptor, intvl, opts)
	require.True(t, ci.Feasible)
	assert.Equal(t, 34, ci.NumIters)

	// the committed center satisfies every constraint at the final level
	x := adaptor.XBest()
	require.Len(t, x, 2)
	assert.GreaterOrEqual(t, x[0], -1.0-1e-6)
	assert.GreaterOrEqual(t, x[1], -2.0-1e-6)
	assert.LessOrEqual(t, x[0]+x[1], 1.0+1e-6)
	assert.LessOrEqual(t, 2.0*x[0]-3.0*x[1], intvl.Upper+1e-6)
}

func TestBisectIntegerInterval(t *testing.T) {
	intvl := &cutplane.Interval[int]{Lower: 0, Upper: 1000}
	ci := cutplane.Bisect[int](intThreshold(427), intvl, cutplane.Options{MaxIters: 100, Tol: 0.5})
	assert.True(t, ci.Feasible)
	assert.Equal(t, 427, intvl.Upper)
}

type intThreshold int

func (th intThreshold) AssessBisect(gamma int) bool { return gamma >= int(th) }
