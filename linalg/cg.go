// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"fmt"
	"math"
)

// ConjugateGradient solves the linear system A·x = b for a symmetric
// positive definite A. x0 is an optional starting point (nil means the
// origin); the iteration stops once the residual norm drops below tol and
// fails with an error when maxIters rounds were not enough.
func ConjugateGradient(a *Matrix, b, x0 []float64, tol float64, maxIters int) ([]float64, error) {
	ndim := len(b)
	x := make([]float64, ndim)
	if x0 != nil {
		copy(x, x0)
	}

	residual := make([]float64, ndim)
	ax := a.MulVec(x)
	for i := range residual {
		residual[i] = b[i] - ax[i]
	}
	director := append([]float64(nil), residual...)
	rNormSq := dot(residual, residual)

	for i := 0; i < maxIters; i++ {
		ap := a.MulVec(director)
		alpha := rNormSq / dot(director, ap)
		for j := range x {
			x[j] += alpha * director[j]
			residual[j] -= alpha * ap[j]
		}
		rNormSqNew := dot(residual, residual)
		if math.Sqrt(rNormSqNew) < tol {
			return x, nil
		}
		beta := rNormSqNew / rNormSq
		for j := range director {
			director[j] = residual[j] + beta*director[j]
		}
		rNormSq = rNormSqNew
	}
	return nil, fmt.Errorf("linalg: conjugate gradient did not converge after %d iterations", maxIters)
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
