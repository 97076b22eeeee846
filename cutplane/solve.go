// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cutplane

// SolveFeasible finds a point in a convex set described by a separation
// oracle:
//
//	find 𝐱  s.t.  𝒇(𝐱) ≤ 0
//
// Each round the oracle assesses the center of the space. A feasible center
// ends the search; otherwise the returned cut shrinks the space. The search
// fails when the cut leaves no solution, when the space falls below the
// tolerance, or when the iteration budget runs out.
func SolveFeasible[T any](omega OracleFeas[T], space SearchSpace[T], opts Options) CInfo {
	for niter := 0; niter < opts.MaxIters; niter++ {
		cut, ok := omega.AssessFeas(space.Center())
		if !ok { // feasible solution obtained
			return CInfo{Feasible: true, NumIters: niter, Status: Success}
		}
		status := space.Update(cut)
		if status != Success {
			return CInfo{NumIters: niter, Status: status}
		}
		if space.ShrinkMetric() < opts.Tol {
			return CInfo{NumIters: niter, Status: SmallEnough}
		}
	}
	return CInfo{NumIters: opts.MaxIters, Status: Success}
}

// SolveOptim minimizes a convex objective by level-set search:
//
//	minimize γ  s.t.  𝒇(𝐱, γ) ≤ 0
//
// gamma is the best objective level known so far; the oracle tightens it
// whenever the center attains a better level, in which case the center is
// recorded as the incumbent before the cut is applied. xBest is the zero
// value of T when no improving point was ever found.
func SolveOptim[T any](omega OracleOptim[T], space SearchSpace[T], gamma float64, opts Options) (xBest T, gammaBest float64, ci CInfo) {
	var feasible bool
	for niter := 0; niter < opts.MaxIters; niter++ {
		cut, shrunk := omega.AssessOptim(space.Center(), &gamma)
		if shrunk { // better gamma obtained
			feasible = true
			xBest = space.Center()
		}
		status := space.Update(cut)
		if status != Success {
			return xBest, gamma, CInfo{Feasible: feasible, NumIters: niter, Status: status}
		}
		if space.ShrinkMetric() < opts.Tol {
			return xBest, gamma, CInfo{Feasible: feasible, NumIters: niter, Status: SmallEnough}
		}
	}
	return xBest, gamma, CInfo{Feasible: feasible, NumIters: opts.MaxIters, Status: Success}
}

// SolveQ minimizes a convex objective over a discrete (quantized) domain.
// The oracle assesses a rounded point near the center, so cut offsets may be
// negative and the space must accept them via UpdateQ.
//
// The retry flag stays raised once a cut had no effect and an alternative
// rounding existed; it is intentionally never lowered again during a solve,
// keeping the oracle in its more conservative regime for the remainder of
// the search.
func SolveQ[T any](omega OracleQ[T], space SearchSpaceQ[T], gamma float64, opts Options) (xBest T, gammaBest float64, ci CInfo) {
	var feasible bool
	retry := false
	for niter := 0; niter < opts.MaxIters; niter++ {
		cut, shrunk, x0, moreAlt := omega.AssessQ(space.Center(), &gamma, retry)
		if shrunk { // better gamma obtained
			feasible = true
			xBest = x0
		}
		status := space.UpdateQ(cut)
		switch status {
		case NoEffect:
			if !moreAlt { // no alternative rounding remains
				return xBest, gamma, CInfo{Feasible: feasible, NumIters: niter, Status: status}
			}
			retry = true
		case NoSoln:
			return xBest, gamma, CInfo{Feasible: feasible, NumIters: niter, Status: status}
		}
		if space.ShrinkMetric() < opts.Tol {
			return xBest, gamma, CInfo{Feasible: feasible, NumIters: niter, Status: SmallEnough}
		}
	}
	return xBest, gamma, CInfo{Feasible: feasible, NumIters: opts.MaxIters, Status: Success}
}
