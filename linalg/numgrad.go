// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import "math"

// cube root of the machine epsilon, the optimal relative step for a
// central difference
var cubeEps = math.Pow(math.Nextafter(1, 2)-1, 1.0/3)

// Gradient estimates ∇𝒇(𝐱) by central differences and writes it into grad.
// The step for coordinate i is h = ϵ^(1/3)·max(1, |xᵢ|), which balances
// truncation against round-off error. 𝐱 is restored before returning.
//
// Oracles produce exact subgradients; this estimator exists to cross-check
// them where 𝒇 is smooth.
func Gradient(f func(x []float64) float64, x, grad []float64) {
	if len(x) != len(grad) {
		panic("linalg: gradient dimension not match")
	}
	for i, xi := range x {
		h := cubeEps * math.Max(1.0, math.Abs(xi))
		x[i] = xi + h
		fp := f(x)
		x[i] = xi - h
		fm := f(x)
		x[i] = xi
		grad[i] = (fp - fm) / (2.0 * h)
	}
}
