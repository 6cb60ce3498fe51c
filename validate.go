package curvekit

// Family selects one of the two supported curve families.
type Family string

const (
	// Bezier curves take their degree implicitly from the point count.
	Bezier Family = "bezier"
	// BSpline curves carry an explicit degree parameter.
	BSpline Family = "spline"
)

// ParseFamily maps a family tag (as found in interchange documents) onto a
// Family. ok is false for unknown tags.
func ParseFamily(tag string) (Family, bool) {
	switch Family(tag) {
	case Bezier:
		return Bezier, true
	case BSpline:
		return BSpline, true
	}
	return "", false
}

// ValidCurve checks the degree/point-count consistency rules shared by both
// curve families: a Bézier curve needs at least 2 control points, a B-spline
// of degree d needs at least d+1. Empty sequences and unknown families are
// always invalid.
func ValidCurve(points []ControlPoint, family Family, degree int) bool {
	n := len(points)
	if n == 0 {
		return false
	}
	switch family {
	case Bezier:
		return n >= 2
	case BSpline:
		return degree >= 1 && n >= degree+1
	}
	tracer().Debugf("validity check for unknown curve family '%s'", family)
	return false
}

// EffectiveDegree caps a requested B-spline degree at what the point count
// supports: min(requested, n-1), never below 1.
func EffectiveDegree(requested, pointCount int) int {
	d := requested
	if pointCount-1 < d {
		d = pointCount - 1
	}
	if d < 1 {
		d = 1
	}
	return d
}
