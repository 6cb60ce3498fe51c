package bspline

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestUniformKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := UniformKnots(5, 3)
	want := KnotVector{0, 0, 0, 0, 0.5, 1, 1, 1, 1}
	if assert.Len(t, knots, 9) {
		for i := range want {
			assert.InDelta(t, want[i], knots[i], 1e-12, "knot %d", i)
		}
	}
}

func TestUniformKnotsSingleSpan(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// n == degree+1: no interior knots, a pure Bézier-equivalent span
	knots := UniformKnots(4, 3)
	assert.Equal(t, KnotVector{0, 0, 0, 0, 1, 1, 1, 1}, knots)
}

func TestUniformKnotsTooFewPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Nil(t, UniformKnots(3, 3))
	assert.Nil(t, UniformKnots(0, 1))
	assert.Nil(t, UniformKnots(5, 0))
}

func TestKnotDomain(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := UniformKnots(7, 2)
	lo, hi := knots.Domain(2)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}

func TestKnotVectorValid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.True(t, UniformKnots(5, 3).Valid(3))
	assert.True(t, UniformKnots(4, 3).Valid(3))
	assert.False(t, KnotVector{0, 0, 1, 1}.Valid(3), "too short for degree 3")
	assert.False(t, KnotVector{0, 0, 0, 0, 0.5, 0.4, 1, 1, 1, 1}.Valid(3), "decreasing knots")
	assert.False(t, KnotVector{0, 0, 0, 0.1, 0.5, 1, 1, 1, 1}.Valid(3), "unclamped start")
	assert.False(t, KnotVector(nil).Valid(3))
}

func TestKnotMultiplicities(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mults := UniformKnots(5, 3).Multiplicities()
	assert.Equal(t, 3, mults.Size(), "expected 3 distinct knot values")
	keys := mults.Keys()
	wantKnots := []float64{0, 0.5, 1}
	wantCounts := []int{4, 1, 4}
	for i, k := range keys {
		assert.InDelta(t, wantKnots[i], k.(float64), 1e-9)
		count, _ := mults.Get(k)
		assert.Equal(t, wantCounts[i], count.(int), "multiplicity of knot %g", wantKnots[i])
	}
}
