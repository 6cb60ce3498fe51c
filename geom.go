package curvekit

// Box is an axis-aligned bounding box.
type Box struct {
	Min Pair
	Max Pair
}

// Width of the box.
func (b Box) Width() float64 {
	return b.Max.X() - b.Min.X()
}

// Height of the box.
func (b Box) Height() float64 {
	return b.Max.Y() - b.Min.Y()
}

// Contains is a predicate: does p lie within the box (bounds inclusive)?
func (b Box) Contains(p Pair) bool {
	return b.Min.X() <= p.X() && p.X() <= b.Max.X() &&
		b.Min.Y() <= p.Y() && p.Y() <= b.Max.Y()
}

// Dist returns the euclidean distance between two pairs.
func Dist(p1, p2 Pair) float64 {
	return p1.Dist(p2)
}

// BoundingBox returns the smallest box containing all points.
// ok is false for an empty sequence.
func BoundingBox(points []Pair) (box Box, ok bool) {
	if len(points) == 0 {
		return Box{}, false
	}
	minx, miny := points[0].F()
	maxx, maxy := minx, miny
	for _, p := range points[1:] {
		x, y := p.F()
		minx = min(minx, x)
		miny = min(miny, y)
		maxx = max(maxx, x)
		maxy = max(maxy, y)
	}
	return Box{Min: P(minx, miny), Max: P(maxx, maxy)}, true
}

// NearestControlPoint scans points for the one strictly closest to target.
// It returns the index of the first point with distance < threshold that
// undercuts all points before it, or -1 if no point is closer than the
// threshold.
func NearestControlPoint(points []ControlPoint, target Pair, threshold float64) int {
	nearest := -1
	mindist := threshold
	for i, cp := range points {
		if d := cp.P.Dist(target); d < mindist {
			mindist = d
			nearest = i
		}
	}
	return nearest
}
