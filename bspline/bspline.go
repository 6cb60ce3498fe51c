package bspline

import (
	"github.com/curvekit/curvekit"
)

// PointAt evaluates the rational B-spline of the given degree at parameter
// t. If knots is nil a clamped uniform vector is generated for the point
// count. t is clamped into the valid domain [knots[degree], knots[n]];
// out-of-domain parameters are never rejected. ok is false when the point
// count cannot support the degree (n < degree+1) or the knot vector has the
// wrong length.
func PointAt(points []curvekit.ControlPoint, t float64, degree int, knots KnotVector) (curvekit.Pair, bool) {
	n := len(points)
	if degree < 1 || n < degree+1 {
		return curvekit.Origin, false
	}
	if knots == nil {
		knots = UniformKnots(n, degree)
	}
	if len(knots) != n+degree+1 {
		tracer().Errorf("knot vector of length %d cannot serve %d points of degree %d",
			len(knots), n, degree)
		return curvekit.Origin, false
	}
	lo, hi := knots.Domain(degree)
	if t < lo {
		t = lo
	} else if t > hi {
		t = hi
	}
	var sx, sy, sw float64
	for i := 0; i < n; i++ {
		b := Basis(i, degree+1, t, knots)
		if b == 0 {
			continue
		}
		bw := b * points[i].W
		sx += bw * points[i].P.X()
		sy += bw * points[i].P.Y()
		sw += bw
	}
	if sw == 0 {
		// degenerate weight sum, fall back to the unnormalized accumulation
		return curvekit.P(sx, sy), true
	}
	return curvekit.P(sx/sw, sy/sw), true
}

// Sample generates the full curve as steps+1 points at evenly spaced
// parameters across the valid knot domain (not across [0,1]). Too few
// control points for the degree yield an empty curve; a non-positive step
// count degenerates to a single sample at the domain start.
func Sample(points []curvekit.ControlPoint, degree, steps int, knots KnotVector) []curvekit.Pair {
	n := len(points)
	if degree < 1 || n < degree+1 {
		tracer().Debugf("spline of degree %d needs at least %d control points, got %d",
			degree, degree+1, n)
		return nil
	}
	if knots == nil {
		knots = UniformKnots(n, degree)
	}
	if len(knots) != n+degree+1 {
		return nil
	}
	if steps < 1 {
		p, _ := PointAt(points, knots[degree], degree, knots)
		return []curvekit.Pair{p}
	}
	lo, hi := knots.Domain(degree)
	curve := make([]curvekit.Pair, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := lo + (hi-lo)*float64(i)/float64(steps)
		p, ok := PointAt(points, t, degree, knots)
		if !ok {
			return nil
		}
		curve = append(curve, p)
	}
	tracer().Debugf("sampled degree-%d spline over [%g,%g] with %d points",
		degree, lo, hi, len(curve))
	return curve
}
