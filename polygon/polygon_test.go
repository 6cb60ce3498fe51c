package polygon

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/curvekit/curvekit"
	"github.com/curvekit/curvekit/bezier"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(curvekit.P(0, 0)).Knot(curvekit.P(1, 3)).Knot(curvekit.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	if !pg.IsCycle() {
		t.Errorf("Expected polygon to be cyclic")
	}
	if pg.Pt(3) != pg.Pt(0) {
		t.Errorf("Expected cyclic wrap-around at knot 3")
	}
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(curvekit.P(0, 5), curvekit.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	assert.InDelta(t, 16.0, box.Length(), 1e-12)
}

func TestControlPolygon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cps := []curvekit.ControlPoint{curvekit.CP(0, 0, 1), curvekit.CP(3, 4, 2), curvekit.CP(6, 0, 1)}
	pg := ControlPolygon(cps)
	assert.Equal(t, 3, pg.N())
	assert.False(t, pg.IsCycle())
	assert.InDelta(t, 10.0, pg.Length(), 1e-12)
}

func TestContour(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := Box(curvekit.P(0, 2), curvekit.P(2, 0))
	contour := pg.Contour()
	if assert.Len(t, contour, 4) {
		assert.Equal(t, 0.0, contour[0].X)
		assert.Equal(t, 2.0, contour[0].Y)
	}
	assert.Len(t, pg.Clip(), 1)
}

func TestBoundingBoxAgreesWithGeom(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cps := []curvekit.ControlPoint{
		curvekit.CP(0, 0, 1), curvekit.CP(2, 5, 0.7), curvekit.CP(5, 5, 1.8), curvekit.CP(7, -1, 1),
	}
	curve := bezier.Sample(cps, 64)
	pg := FromCurve(curve)
	box, ok := pg.BoundingBox()
	if !ok {
		t.Fatalf("Expected a bounding box for the sampled curve")
	}
	want, _ := curvekit.BoundingBox(curve)
	assert.InDelta(t, want.Min.X(), box.Min.X(), 1e-12)
	assert.InDelta(t, want.Min.Y(), box.Min.Y(), 1e-12)
	assert.InDelta(t, want.Max.X(), box.Max.X(), 1e-12)
	assert.InDelta(t, want.Max.Y(), box.Max.Y(), 1e-12)
	assert.InDelta(t, 7.0, box.Width(), 1e-9)
}

func TestEmptyPolygon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if _, ok := NullPolygon().BoundingBox(); ok {
		t.Errorf("Expected no bounding box for an empty polygon")
	}
	assert.Equal(t, 0.0, NullPolygon().Length())
}
