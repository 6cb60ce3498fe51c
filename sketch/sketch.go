package sketch

import (
	"github.com/curvekit/curvekit"
	"github.com/curvekit/curvekit/bezier"
	"github.com/curvekit/curvekit/bspline"
)

// Sketch is one editing session: an ordered control point sequence and the
// settings to evaluate it. The zero value is not usable, start with New.
type Sketch struct {
	points   []curvekit.ControlPoint
	settings Settings
}

// New creates an empty sketch.
func New(settings Settings) *Sketch {
	return &Sketch{settings: settings}
}

// Settings returns the current settings.
func (s *Sketch) Settings() Settings {
	return s.settings
}

// Configure replaces the settings.
func (s *Sketch) Configure(settings Settings) {
	s.settings = settings
}

// N returns the number of control points.
func (s *Sketch) N() int {
	return len(s.points)
}

// Points returns a copy of the control point sequence. Evaluators never see
// the internal slice.
func (s *Sketch) Points() []curvekit.ControlPoint {
	return append([]curvekit.ControlPoint(nil), s.points...)
}

// AddPoint appends a control point, clamping its weight.
func (s *Sketch) AddPoint(x, y, w float64) *Sketch {
	s.points = append(s.points, curvekit.CP(x, y, w))
	return s
}

// MovePoint relocates control point i. Out-of-range indices are ignored.
func (s *Sketch) MovePoint(i int, p curvekit.Pair) bool {
	if i < 0 || i >= len(s.points) {
		return false
	}
	s.points[i] = s.points[i].MovedTo(p)
	return true
}

// SetWeight replaces the weight of control point i with a clamped value.
func (s *Sketch) SetWeight(i int, w float64) bool {
	if i < 0 || i >= len(s.points) {
		return false
	}
	s.points[i] = s.points[i].Reweighted(w)
	return true
}

// RemovePoint deletes control point i.
func (s *Sketch) RemovePoint(i int) bool {
	if i < 0 || i >= len(s.points) {
		return false
	}
	s.points = append(s.points[:i], s.points[i+1:]...)
	return true
}

// NearestPoint finds the control point closest to target within threshold,
// -1 if none qualifies.
func (s *Sketch) NearestPoint(target curvekit.Pair, threshold float64) int {
	return curvekit.NearestControlPoint(s.points, target, threshold)
}

// EffectiveDegree returns the degree evaluation will actually use: the
// point count caps the configured degree for splines, and a Bézier degree
// is the point count minus one.
func (s *Sketch) EffectiveDegree() int {
	if s.settings.Family == curvekit.Bezier {
		return bezier.Degree(s.points)
	}
	return curvekit.EffectiveDegree(s.settings.Degree, len(s.points))
}

// Valid reports whether the sketch currently describes an evaluable curve.
func (s *Sketch) Valid() bool {
	return curvekit.ValidCurve(s.points, s.settings.Family, s.EffectiveDegree())
}

// Curve regenerates the sampled curve from the current points and settings.
// An under-constrained sketch yields an empty curve.
func (s *Sketch) Curve() []curvekit.Pair {
	steps := s.settings.StepCount()
	switch s.settings.Family {
	case curvekit.Bezier:
		return bezier.Sample(s.points, steps)
	case curvekit.BSpline:
		return bspline.Sample(s.points, s.EffectiveDegree(), steps, nil)
	}
	tracer().Errorf("cannot evaluate unknown curve family '%s'", s.settings.Family)
	return nil
}

// BoundingBox returns the bounding box of the control points. ok is false
// for an empty sketch.
func (s *Sketch) BoundingBox() (curvekit.Box, bool) {
	return curvekit.BoundingBox(curvekit.Pairs(s.points))
}
