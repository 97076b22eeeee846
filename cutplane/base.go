// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cutplane implements the cutting-plane method for convex programming.
//
// A function 𝒇(𝐱) is convex if there always exists a subgradient 𝐠(𝐱) such that
//
//	𝒇(𝐳) ≥ 𝒇(𝐱) + 𝐠(𝐱)ᵀ(𝐳 - 𝐱)  ∀𝐳, 𝐱 ∈ dom 𝒇
//
// The affine inequality 𝐠ᵀ(𝐱 - 𝐱ᶜ) + β ≤ 0 is called a cutting-plane, or a
// "cut" for short: every feasible point lies in the half-space it describes.
// A separation oracle either asserts that the current evaluation point is
// feasible, or produces a cut separating the point from the feasible region.
//
// The drivers in this package repeatedly query an oracle at the center of a
// SearchSpace, apply the returned cut to shrink the space, and stop when the
// space becomes too small to contain a further improvement.
package cutplane

// CutStatus reports the outcome of applying a cut to a search space.
type CutStatus int

const (
	// Success : the space was shrunk by the cut and the search may continue.
	Success CutStatus = iota
	// NoSoln : the cut excludes the entire remaining space, so the problem
	// admits no solution there.
	NoSoln
	// SmallEnough : the space has shrunk below the requested tolerance.
	SmallEnough
	// NoEffect : the cut cannot reduce the space (e.g. a concave pair of
	// offsets in a quantized problem).
	NoEffect
)

// String returns a human-readable name of the status.
func (s CutStatus) String() string {
	switch s {
	case Success:
		return "Success"
	case NoSoln:
		return "NoSoln"
	case SmallEnough:
		return "SmallEnough"
	case NoEffect:
		return "NoEffect"
	}
	return "Unknown"
}

// Options bound a single solve. The fields are read once at the start of a
// driver call and never modified.
type Options struct {
	MaxIters int     // maximum number of oracle queries
	Tol      float64 // stop once the shrink metric falls below this value
}

// DefaultOptions returns the canonical iteration budget and tolerance.
func DefaultOptions() Options {
	return Options{MaxIters: 2000, Tol: 1e-8}
}

// CInfo summarizes a finished solve.
type CInfo struct {
	Feasible bool      // whether a feasible (or improving) point was found
	NumIters int       // number of oracle queries performed
	Status   CutStatus // status that terminated the solve
}

// Cut is a separating half-space produced by an oracle:
//
//	𝐠ᵀ(𝐱 - 𝐱ᶜ) + β ≤ 0
//
// A parallel cut carries a second offset and restricts both sides:
//
//	𝐠ᵀ(𝐱 - 𝐱ᶜ) + β  ≤ 0
//	𝐠ᵀ(𝐱 - 𝐱ᶜ) + β₁ ≥ 0
//
// Ownership of Grad transfers to the search space when the cut is applied;
// oracles must hand out a fresh gradient on every assessment.
type Cut[T any] struct {
	Grad     T
	Beta     float64
	Beta1    float64 // second offset, meaningful only when Parallel is set
	Parallel bool
}

// NewCut builds a single deep cut.
func NewCut[T any](grad T, beta float64) Cut[T] {
	return Cut[T]{Grad: grad, Beta: beta}
}

// NewParallelCut builds a parallel cut from the offset pair (β, β₁).
func NewParallelCut[T any](grad T, beta, beta1 float64) Cut[T] {
	return Cut[T]{Grad: grad, Beta: beta, Beta1: beta1, Parallel: true}
}

// SearchSpace is a convex region maintained by the cutting-plane drivers.
// T is the point type, typically []float64 or float64.
type SearchSpace[T any] interface {
	// Center returns a copy of the current center of the space.
	Center() T
	// Update shrinks the space by the given cut.
	Update(cut Cut[T]) CutStatus
	// ShrinkMetric measures the remaining extent of the space along the most
	// recent cut. Drivers stop once it falls below Options.Tol.
	ShrinkMetric() float64
}

// SearchSpaceQ is a space accepting the relaxed cuts of quantized problems,
// whose offsets may be negative because the assessed point is a rounded one
// lying off-center.
type SearchSpaceQ[T any] interface {
	Center() T
	UpdateQ(cut Cut[T]) CutStatus
	ShrinkMetric() float64
}

// MutableSpace additionally allows cloning and recentering; the bisection
// adaptor probes feasibility on a clone and commits the center on success.
// S is the concrete space type so that Copy preserves it.
type MutableSpace[T, S any] interface {
	SearchSpace[T]
	Copy() S
	SetCenter(xc T)
}

// OracleFeas assesses feasibility of a point.
type OracleFeas[T any] interface {
	// AssessFeas returns ok=false when xc is feasible, otherwise a cut
	// separating xc from the feasible region.
	AssessFeas(xc T) (cut Cut[T], ok bool)
}

// OracleOptim assesses a point against the best objective value found so far.
type OracleOptim[T any] interface {
	// AssessOptim returns a cut and whether gamma was improved (the cut is
	// then a central one through the new level set).
	AssessOptim(xc T, gamma *float64) (cut Cut[T], shrunk bool)
}

// OracleQ assesses a rounded (quantized) point derived from xc.
type OracleQ[T any] interface {
	// AssessQ evaluates a discrete point near xc. It returns the cut, whether
	// gamma was improved, the discrete point itself, and whether further
	// alternative roundings remain when the cut has no effect.
	AssessQ(xc T, gamma *float64, retry bool) (cut Cut[T], shrunk bool, x T, moreAlt bool)
}

// OracleBisect decides whether a candidate level gamma is feasible.
type OracleBisect[N Number] interface {
	AssessBisect(gamma N) bool
}

// OracleFeasBisect is a feasibility oracle that can be re-parameterized by a
// level value, making it usable under a bisection search.
type OracleFeasBisect[T any] interface {
	OracleFeas[T]
	// Update re-parameterizes the oracle for a new level gamma.
	Update(gamma float64)
}
