/*
Package sketch holds the caller-owned state of a curve editing session: an
ordered control point sequence plus the evaluation settings for one curve
family. All mutation is by value replacement; regeneration of the sampled
curve is an explicit call, and nothing in this package (or below it) keeps
global state.

The package also owns the JSON interchange document used to persist and
exchange sketches.
*/
package sketch

import (
	"math"

	"github.com/npillmayer/schuko/tracing"

	"github.com/curvekit/curvekit"
	"github.com/curvekit/curvekit/bezier"
)

// tracer writes to trace with key 'sketch'
func tracer() tracing.Trace {
	return tracing.Select("sketch")
}

// Settings selects the curve family and its evaluation parameters. Degree
// and InterpolationStep only apply to splines; Bézier curves take their
// degree from the point count and sample a fixed step count.
type Settings struct {
	Family            curvekit.Family
	Degree            int
	InterpolationStep float64
	Samples           int
}

// DefaultSettings returns the settings a fresh sketch of the given family
// starts with: cubic splines sampled at step 0.01, Bézier curves at 100
// samples.
func DefaultSettings(family curvekit.Family) Settings {
	s := Settings{
		Family:  family,
		Samples: bezier.DefaultSteps,
	}
	if family == curvekit.BSpline {
		s.Degree = 3
		s.InterpolationStep = 0.01
	}
	return s
}

// StepCount derives the sample count: for splines with a positive
// interpolation step it is ceil(1/step), otherwise the configured sample
// count, falling back to the default.
func (s Settings) StepCount() int {
	if s.Family == curvekit.BSpline && s.InterpolationStep > 0 {
		return int(math.Ceil(1 / s.InterpolationStep))
	}
	if s.Samples > 0 {
		return s.Samples
	}
	return bezier.DefaultSteps
}
