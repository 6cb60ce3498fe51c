/*
Package polygon represents control polylines and sampled curve output as
polygons. Polygons can be handed to downstream consumers as polyclip-go
contours, which is also how bounding boxes are computed here.
*/
package polygon

import (
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"

	"github.com/curvekit/curvekit"
)

// L traces with key 'polygon'.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is an ordered sequence of knots, open (a polyline) or cyclic.
type Polygon struct {
	points []curvekit.Pair
	cycle  bool
}

// NullPolygon creates an empty polygon, to be extended with Knot() calls
// and optionally closed with Cycle().
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a point. Part of builder functionality.
func (pg *Polygon) Knot(p curvekit.Pair) *Polygon {
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is the polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Pt returns knot i, with cyclic wrap-around for closed polygons.
func (pg *Polygon) Pt(i int) curvekit.Pair {
	if pg.cycle {
		i = i % len(pg.points)
	}
	return pg.points[i]
}

// Box creates a cyclic polygon spanning a rectangle between a top-left and
// a bottom-right corner.
func Box(topleft, bottomright curvekit.Pair) *Polygon {
	return NullPolygon().
		Knot(topleft).
		Knot(curvekit.P(bottomright.X(), topleft.Y())).
		Knot(bottomright).
		Knot(curvekit.P(topleft.X(), bottomright.Y())).
		Cycle()
}

// FromCurve wraps sampled curve output in an open polygon.
func FromCurve(samples []curvekit.Pair) *Polygon {
	pg := NullPolygon()
	pg.points = append(pg.points, samples...)
	return pg
}

// ControlPolygon builds the open polygon connecting a control point
// sequence in order; weights are dropped.
func ControlPolygon(points []curvekit.ControlPoint) *Polygon {
	return FromCurve(curvekit.Pairs(points))
}

// AsString pretty-prints a polygon.
func AsString(pg *Polygon) string {
	var s string
	for i, p := range pg.points {
		if i > 0 {
			s += " -- "
		}
		s += fmt.Sprintf("%s", p)
	}
	if pg.cycle {
		s += " -- cycle"
	}
	return s
}

// Length returns the total arc length of the polygon's edges, including the
// closing edge for cyclic polygons.
func (pg *Polygon) Length() float64 {
	total := 0.0
	for i := 1; i < len(pg.points); i++ {
		total += pg.points[i-1].Dist(pg.points[i])
	}
	if pg.cycle && len(pg.points) > 1 {
		total += pg.points[len(pg.points)-1].Dist(pg.points[0])
	}
	return total
}

// Contour converts the polygon into a polyclip contour.
func (pg *Polygon) Contour() polyclip.Contour {
	contour := make(polyclip.Contour, 0, len(pg.points))
	for _, p := range pg.points {
		contour = append(contour, polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return contour
}

// Clip converts the polygon into a single-contour polyclip polygon, ready
// for boolean operations by downstream consumers.
func (pg *Polygon) Clip() polyclip.Polygon {
	return polyclip.Polygon{pg.Contour()}
}

// BoundingBox returns the polygon's bounding box. ok is false for an empty
// polygon.
func (pg *Polygon) BoundingBox() (curvekit.Box, bool) {
	if len(pg.points) == 0 {
		return curvekit.Box{}, false
	}
	r := pg.Contour().BoundingBox()
	L().Debugf("bounding box %g,%g .. %g,%g", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	return curvekit.Box{
		Min: curvekit.P(r.Min.X, r.Min.Y),
		Max: curvekit.P(r.Max.X, r.Max.Y),
	}, true
}
