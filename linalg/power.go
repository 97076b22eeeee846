// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import "math"

// EigOptions bound a power iteration run.
type EigOptions struct {
	MaxIters int
	Tol      float64
}

// PowerIteration estimates the dominant eigenpair of a symmetric matrix by
// repeated multiplication with 2-norm renormalization. x is the starting
// vector and holds the eigenvector estimate on return; the iteration stops
// once consecutive iterates agree (up to sign) in l1 norm.
func PowerIteration(a *Matrix, x []float64, opts EigOptions) (eig float64, numIters int) {
	normalize(x)
	x1 := make([]float64, len(x))
	for niter := 0; niter < opts.MaxIters; niter++ {
		copy(x1, x)
		copy(x, a.MulVec(x1))
		normalize(x)
		if l1Dist(x, x1, -1) <= opts.Tol || l1Dist(x, x1, +1) <= opts.Tol {
			return dot(a.MulVec(x1), x1), niter
		}
	}
	return dot(a.MulVec(x), x), opts.MaxIters
}

// PowerIterationL1 is the cheaper variant that renormalizes by the l1 norm
// during the iteration and postpones the 2-norm scaling to the very end.
func PowerIterationL1(a *Matrix, x []float64, opts EigOptions) (eig float64, numIters int) {
	scale(x, 1/l1Norm(x))
	x1 := make([]float64, len(x))
	for niter := 0; niter < opts.MaxIters; niter++ {
		copy(x1, x)
		copy(x, a.MulVec(x1))
		scale(x, 1/l1Norm(x))
		if l1Dist(x, x1, -1) <= opts.Tol || l1Dist(x, x1, +1) <= opts.Tol {
			normalize(x)
			return dot(a.MulVec(x), x), niter
		}
	}
	normalize(x)
	return dot(a.MulVec(x), x), opts.MaxIters
}

func normalize(x []float64) { scale(x, 1/math.Sqrt(dot(x, x))) }

func scale(x []float64, alpha float64) {
	for i := range x {
		x[i] *= alpha
	}
}

func l1Norm(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += math.Abs(v)
	}
	return s
}

// l1Dist returns ‖x + sign·y‖₁.
func l1Dist(x, y []float64, sign float64) float64 {
	s := 0.0
	for i := range x {
		s += math.Abs(x[i] + sign*y[i])
	}
	return s
}
