/*
Package bezier evaluates rational Bézier curves over weighted control
points, using De Casteljau's algorithm on homogeneous coordinates.

The weight channel undergoes the same affine reduction as the coordinate
channels, which is equivalent to evaluating the rational Bézier formula

	Σ B_i,n(t)·w_i·P_i / Σ B_i,n(t)·w_i

without constructing Bernstein polynomials explicitly.
*/
package bezier

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/curvekit/curvekit"
)

// tracer writes to trace with key 'bezier'
func tracer() tracing.Trace {
	return tracing.Select("bezier")
}

// DefaultSteps is the sample count used by callers that have no explicit
// step setting.
const DefaultSteps = 100

// A control point in homogeneous form: coordinates premultiplied by the
// weight, plus the weight itself as a third channel.
type homog struct {
	xy curvekit.Pair
	w  float64
}

func lift(points []curvekit.ControlPoint) []homog {
	hs := make([]homog, len(points))
	for i, cp := range points {
		hs[i] = homog{xy: curvekit.P(cp.P.X()*cp.W, cp.P.Y()*cp.W), w: cp.W}
	}
	return hs
}

// Degree returns the polynomial degree of the Bézier curve over the given
// control points. There is no independent degree parameter: the degree is
// always one less than the point count.
func Degree(points []curvekit.ControlPoint) int {
	return len(points) - 1
}

// PointAt evaluates the rational Bézier curve at parameter t. t is taken as
// given and not clamped into [0,1]. ok is false for an empty point sequence;
// a single point is returned unchanged, its weight ignored.
func PointAt(points []curvekit.ControlPoint, t float64) (curvekit.Pair, bool) {
	switch len(points) {
	case 0:
		return curvekit.Origin, false
	case 1:
		return points[0].P, true
	}
	hs := lift(points)
	for k := len(hs); k > 1; k-- {
		for i := 0; i < k-1; i++ {
			hs[i] = homog{
				xy: hs[i].xy.Lerp(hs[i+1].xy, t),
				w:  (1-t)*hs[i].w + t*hs[i+1].w,
			}
		}
	}
	h := hs[0]
	if h.w == 0 {
		// all-zero weight configuration, skip the perspective divide
		return h.xy, true
	}
	return curvekit.P(h.xy.X()/h.w, h.xy.Y()/h.w), true
}

// Sample generates the full curve as steps+1 points at evenly spaced
// parameters over [0,1]. Fewer than 2 control points yield an empty curve;
// a non-positive step count degenerates to a single sample at t=0.
func Sample(points []curvekit.ControlPoint, steps int) []curvekit.Pair {
	if len(points) < 2 {
		tracer().Debugf("bezier curve needs at least 2 control points, got %d", len(points))
		return nil
	}
	if steps < 1 {
		p, _ := PointAt(points, 0)
		return []curvekit.Pair{p}
	}
	curve := make([]curvekit.Pair, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p, _ := PointAt(points, t)
		curve = append(curve, p)
	}
	tracer().Debugf("sampled degree-%d bezier curve with %d points", Degree(points), len(curve))
	return curve
}
