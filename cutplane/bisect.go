// Copyright ©2026 convexlab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cutplane

// Number is a numeric type usable as a bisection interval endpoint.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Interval is the half-open range (Lower, Upper] narrowed by Bisect.
type Interval[N Number] struct {
	Lower N
	Upper N
}

// halfNonnegative halves a nonnegative width without ever producing a
// negative value; integer widths round toward zero.
func halfNonnegative[N Number](x N) N {
	if x < 0 {
		panic("cutplane: inverted interval")
	}
	return x / 2
}

// Bisect performs a binary search for the smallest feasible level within
// intvl, assuming omega is monotone: once a level is feasible every larger
// level is too. The interval is narrowed in place; feasibility is reported
// iff the upper bound moved from its original value.
func Bisect[N Number](omega OracleBisect[N], intvl *Interval[N], opts Options) CInfo {
	if intvl.Lower > intvl.Upper {
		panic("cutplane: inverted interval")
	}
	uOrig := intvl.Upper

	for niter := 0; niter < opts.MaxIters; niter++ {
		tau := halfNonnegative(intvl.Upper - intvl.Lower)
		if float64(tau) < opts.Tol { // no more progress possible
			return CInfo{Feasible: intvl.Upper != uOrig, NumIters: niter, Status: SmallEnough}
		}
		gamma := intvl.Lower + tau
		if omega.AssessBisect(gamma) { // feasible level obtained
			intvl.Upper = gamma
		} else {
			intvl.Lower = gamma
		}
	}
	return CInfo{Feasible: intvl.Upper != uOrig, NumIters: opts.MaxIters, Status: Success}
}

// BisectAdaptor turns a re-parameterizable feasibility oracle into a
// bisection oracle: each probe re-parameterizes omega with the candidate
// level and runs a feasibility search on a copy of the space. The real
// space is recentered only when the probe succeeds, so failed probes leave
// no trace.
type BisectAdaptor[T any, S MutableSpace[T, S]] struct {
	omega OracleFeasBisect[T]
	space S
	opts  Options
}

// NewBisectAdaptor wires omega and space together under the given options.
func NewBisectAdaptor[T any, S MutableSpace[T, S]](omega OracleFeasBisect[T], space S, opts Options) *BisectAdaptor[T, S] {
	return &BisectAdaptor[T, S]{omega: omega, space: space, opts: opts}
}

// XBest returns the center committed by the most recent successful probe.
func (b *BisectAdaptor[T, S]) XBest() T { return b.space.Center() }

// AssessBisect probes whether the level gamma admits a feasible point.
func (b *BisectAdaptor[T, S]) AssessBisect(gamma float64) bool {
	space := b.space.Copy()
	b.omega.Update(gamma)
	info := SolveFeasible[T](b.omega, space, b.opts)
	if info.Feasible {
		b.space.SetCenter(space.Center())
	}
	return info.Feasible
}
