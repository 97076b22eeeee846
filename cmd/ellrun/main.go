// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ellrun solves the bundled example problems with the ellipsoid
// method and logs the convergence results.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/lmittmann/tint"

	"github.com/convexlab/ellalgo/cutplane"
	"github.com/convexlab/ellalgo/ellipsoid"
	"github.com/convexlab/ellalgo/linalg"
	"github.com/convexlab/ellalgo/oracle"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

var (
	problem  = flag.String("problem", "all", "problem to solve: profit, lmi, lowpass or all")
	stable   = flag.Bool("stable", false, "use the numerically stable factored ellipsoid")
	maxIters = flag.Int("max-iters", 2000, "iteration budget per solve")
	tol      = flag.Float64("tol", 1e-8, "stopping tolerance on the shrink metric")
)

func newSpace(alpha float64, xc ellipsoid.Vec) cutplane.SearchSpace[ellipsoid.Vec] {
	if *stable {
		return ellipsoid.NewEllStable(alpha, xc)
	}
	return ellipsoid.NewEll(alpha, xc)
}

// sdpOracle minimizes 𝐜ᵀ𝐱 subject to two linear matrix inequalities.
type sdpOracle struct {
	lmi1 *oracle.LmiOracle
	lmi2 *oracle.LmiOracle
	c    []float64
}

func (o *sdpOracle) AssessOptim(x []float64, gamma *float64) (cutplane.Cut[[]float64], bool) {
	if cut, infeas := o.lmi1.AssessFeas(x); infeas {
		return cut, false
	}
	if cut, infeas := o.lmi2.AssessFeas(x); infeas {
		return cut, false
	}
	f0 := 0.0
	for i, ci := range o.c {
		f0 += ci * x[i]
	}
	if f1 := f0 - *gamma; f1 > 0.0 {
		return cutplane.NewCut(append([]float64(nil), o.c...), f1), false
	}
	*gamma = f0
	return cutplane.NewCut(append([]float64(nil), o.c...), 0.0), true
}

func runProfit(opts cutplane.Options) {
	omega := oracle.NewProfitOracle(20.0, 40.0, 30.5,
		[]float64{0.1, 0.4}, []float64{10.0, 35.0})
	space := newSpace(100.0, ellipsoid.Vec{0.0, 0.0})
	y, gamma, ci := cutplane.SolveOptim[ellipsoid.Vec](omega, space, 0.0, opts)
	if !ci.Feasible {
		slog.Error("profit: no feasible point", "status", ci.Status, "iters", ci.NumIters)
		return
	}
	slog.Info("profit solved",
		"iters", ci.NumIters,
		"status", ci.Status,
		"profit", gamma,
		"x1", math.Exp(y[0]),
		"x2", math.Exp(y[1]))
}

func runLmi(opts cutplane.Options) {
	f1 := []*linalg.Matrix{
		linalg.NewMatrixOf([][]float64{{-7, -11}, {-11, 3}}),
		linalg.NewMatrixOf([][]float64{{7, -18}, {-18, 8}}),
		linalg.NewMatrixOf([][]float64{{-2, -8}, {-8, 1}}),
	}
	b1 := linalg.NewMatrixOf([][]float64{{33, -9}, {-9, 26}})
	f2 := []*linalg.Matrix{
		linalg.NewMatrixOf([][]float64{{-21, -11, 0}, {-11, 10, 8}, {0, 8, 5}}),
		linalg.NewMatrixOf([][]float64{{0, 10, 16}, {10, -10, -10}, {16, -10, 3}}),
		linalg.NewMatrixOf([][]float64{{-5, 2, -17}, {2, -6, 8}, {-17, 8, 6}}),
	}
	b2 := linalg.NewMatrixOf([][]float64{{14, 9, 40}, {9, 91, 10}, {40, 10, 15}})
	c := []float64{1.0, -1.0, 1.0}

	omega := &sdpOracle{
		lmi1: oracle.NewLmiOracle(f1, b1),
		lmi2: oracle.NewLmiOracle(f2, b2),
		c:    c,
	}

	space := newSpace(10.0, ellipsoid.Vec{0.0, 0.0, 0.0})
	x, gamma, ci := cutplane.SolveOptim[ellipsoid.Vec](omega, space, 1e100, opts)
	if !ci.Feasible {
		slog.Error("lmi: no feasible point", "status", ci.Status, "iters", ci.NumIters)
		return
	}
	slog.Info("lmi solved",
		"iters", ci.NumIters,
		"status", ci.Status,
		"objective", gamma,
		"x", fmt.Sprintf("%.6f", x))
}

func runLowpass(opts cutplane.Options) {
	const order = 32
	omega, spsq := oracle.NewLowpassCase(order)
	space := newSpace(40.0, make(ellipsoid.Vec, order+1))
	r, gamma, ci := cutplane.SolveOptim[ellipsoid.Vec](omega, space, spsq, opts)
	if !ci.Feasible {
		slog.Error("lowpass: no feasible design", "status", ci.Status, "iters", ci.NumIters)
		return
	}
	slog.Info("lowpass designed",
		"iters", ci.NumIters,
		"status", ci.Status,
		"order", order,
		"stopband", fmt.Sprintf("%.2f dB", 20*math.Log10(math.Sqrt(gamma))),
		"r0", r[0])
}

func main() {
	flag.Parse()
	opts := cutplane.Options{MaxIters: *maxIters, Tol: *tol}

	switch *problem {
	case "profit":
		runProfit(opts)
	case "lmi":
		runLmi(opts)
	case "lowpass":
		runLowpass(opts)
	case "all":
		runProfit(opts)
		runLmi(opts)
		runLowpass(opts)
	default:
		slog.Error("unknown problem", "problem", *problem)
		os.Exit(2)
	}
}
