package curvekit

// Weight bounds for control points. Weights are clamped into this range on
// every construction path, so a zero weight can never reach an evaluator.
const (
	MinWeight = 0.1
	MaxWeight = 3.0
)

// ClampWeight forces w into [MinWeight, MaxWeight].
func ClampWeight(w float64) float64 {
	if w < MinWeight {
		return MinWeight
	}
	if w > MaxWeight {
		return MaxWeight
	}
	return w
}

// ControlPoint is a weighted 2D point. The weight pulls the curve towards
// (W > 1) or away from (W < 1) the point.
type ControlPoint struct {
	P Pair
	W float64
}

// CP constructs a control point, clamping the weight.
func CP(x, y, w float64) ControlPoint {
	return ControlPoint{P: P(x, y), W: ClampWeight(w)}
}

// Reweighted returns a copy of the control point with a new (clamped) weight.
// The receiver is unchanged.
func (cp ControlPoint) Reweighted(w float64) ControlPoint {
	return ControlPoint{P: cp.P, W: ClampWeight(w)}
}

// MovedTo returns a copy of the control point at a new position.
func (cp ControlPoint) MovedTo(p Pair) ControlPoint {
	return ControlPoint{P: p, W: cp.W}
}

func (cp ControlPoint) String() string {
	return cp.P.String()
}

// Pairs extracts the coordinates of a control point sequence.
func Pairs(points []ControlPoint) []Pair {
	prs := make([]Pair, len(points))
	for i, cp := range points {
		prs[i] = cp.P
	}
	return prs
}

// Weights extracts the weights of a control point sequence.
func Weights(points []ControlPoint) []float64 {
	ws := make([]float64, len(points))
	for i, cp := range points {
		ws[i] = cp.W
	}
	return ws
}
