package bspline

// Basis evaluates the Cox–de Boor basis function N_{i,k} at parameter t,
// where k is the order (degree+1) and i the index of the control point the
// function blends. Out-of-range indices evaluate to 0.
//
// The recursion is unrolled into a dynamic-programming triangle over the
// orders 1..k, so evaluation is a bounded O(k²) loop instead of a recursive
// descent. Terms with a zero-length knot interval in the denominator are
// skipped entirely rather than patched with an epsilon.
func Basis(i, k int, t float64, knots KnotVector) float64 {
	if k < 1 || i < 0 || i+k >= len(knots) {
		return 0
	}
	row := make([]float64, k)
	for j := range row {
		row[j] = spanIndicator(i+j, t, knots)
	}
	for ord := 2; ord <= k; ord++ {
		for j := 0; j <= k-ord; j++ {
			var v float64
			if d := knots[i+j+ord-1] - knots[i+j]; d != 0 {
				v += (t - knots[i+j]) / d * row[j]
			}
			if d := knots[i+j+ord] - knots[i+j+1]; d != 0 {
				v += (knots[i+j+ord] - t) / d * row[j+1]
			}
			row[j] = v
		}
	}
	return row[0]
}

// spanIndicator is the order-1 base case: 1 on the half-open span
// [knots[i], knots[i+1]), 0 elsewhere. The half-open convention would make
// every basis function vanish exactly at the top of the domain, dropping the
// final curve sample to the origin; to close the curve onto the last control
// point the final nonempty span is treated as closed at the top knot value.
func spanIndicator(i int, t float64, knots KnotVector) float64 {
	if knots[i] <= t && t < knots[i+1] {
		return 1
	}
	if top := knots[len(knots)-1]; t == top && knots[i+1] == top && knots[i] < top {
		return 1
	}
	return 0
}
