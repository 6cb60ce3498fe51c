/*
Package bspline evaluates rational B-spline curves over weighted control
points, using the Cox–de Boor basis functions on a clamped uniform knot
vector.
*/
package bspline

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"

	"github.com/curvekit/curvekit"
)

// tracer writes to trace with key 'bspline'
func tracer() tracing.Trace {
	return tracing.Select("bspline")
}

// KnotVector is a non-decreasing sequence of parameter breakpoints. A vector
// for n control points and a given degree has length n+degree+1.
type KnotVector []float64

// UniformKnots produces a clamped (open) uniform knot vector: degree+1
// zeros, n-degree-1 interior knots evenly spaced in (0,1), and degree+1
// ones. It returns nil when n < degree+1, i.e. when no valid vector exists.
// For n == degree+1 there are no interior knots and the spline collapses to
// a single Bézier-equivalent span.
func UniformKnots(n, degree int) KnotVector {
	if degree < 1 || n < degree+1 {
		tracer().Debugf("no uniform knot vector for n=%d, degree=%d", n, degree)
		return nil
	}
	knots := make(KnotVector, 0, n+degree+1)
	for i := 0; i <= degree; i++ {
		knots = append(knots, 0)
	}
	spans := n - degree
	for i := 1; i < spans; i++ {
		knots = append(knots, float64(i)/float64(spans))
	}
	for i := 0; i <= degree; i++ {
		knots = append(knots, 1)
	}
	return knots
}

// Domain returns the parameter interval [knots[degree], knots[n]] on which
// the spline is defined.
func (k KnotVector) Domain(degree int) (lo, hi float64) {
	return k[degree], k[len(k)-degree-1]
}

// Valid checks that the vector can carry a clamped spline of the given
// degree: long enough for at least one control point, non-decreasing, with
// degree+1-fold multiplicity at both ends.
func (k KnotVector) Valid(degree int) bool {
	if degree < 1 || len(k) < 2*(degree+1) {
		return false
	}
	for i := 1; i < len(k); i++ {
		if k[i] < k[i-1] {
			return false
		}
	}
	for i := 0; i <= degree; i++ {
		if !curvekit.Is0(k[i]-k[0]) || !curvekit.Is0(k[len(k)-1-i]-k[len(k)-1]) {
			return false
		}
	}
	return true
}

// Multiplicities counts how often each knot value occurs, in a sorted map of
// knot value to count. Values within ε of each other are merged.
func (k KnotVector) Multiplicities() *treemap.Map {
	mults := treemap.NewWith(utils.Float64Comparator)
	for _, knot := range k {
		knot = curvekit.Round(knot)
		count := 0
		if c, ok := mults.Get(knot); ok {
			count = c.(int)
		}
		mults.Put(knot, count+1)
	}
	return mults
}
