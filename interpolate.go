package h2si

import "math"

// LerpComponents returns (1-t)·a + t·b componentwise.
// t outside [0, 1] extrapolates along the same line.
func LerpComponents(a, b Components, t float64) Components {
	var out Components
	for k := range out {
		out[k] = (1-t)*a[k] + t*b[k]
	}
	return out
}

// Lerp interpolates two complex-form colours. It runs on the flat view, so
// Lerp(a, b, t).Components() == LerpComponents(a.Components(), b.Components(), t).
func Lerp(a, b H2SI, t float64) H2SI {
	return LerpComponents(a.Components(), b.Components(), t).Complex()
}

// Distance is the Euclidean distance between two colours in the six-real
// embedding.
func Distance(a, b Components) float64 {
	var sum float64
	for k := range a {
		d := a[k] - b[k]
		sum += d * d
	}
	return math.Sqrt(sum)
}
