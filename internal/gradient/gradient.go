// Package gradient parses HCL gradient documents and samples them in H2SI
// space.
package gradient

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/h2si"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultSteps is the sample count used when a gradient omits steps.
const DefaultSteps = 5

// MinIntensity is the intensity floor applied before encoding a stop.
// H2SI has no image for I = 0, so black is encoded as a near-black.
const MinIntensity = 1e-6

// Gradient is a named, ordered list of colour stops.
type Gradient struct {
	Name     string
	Steps    int
	Stops    []Stop
	DefRange hcl.Range
}

// Stop is a colour pinned at a position in [0, 1].
type Stop struct {
	At    float64
	Color colorful.Color
	Range hcl.Range // source range of the color expression
}

// Sample is one evaluated point along a gradient.
type Sample struct {
	T          float64
	Color      colorful.Color
	HSI        h2si.HSI
	Components h2si.Components
}

// Encode converts an RGB colour to H2SI components.
func Encode(c colorful.Color) (h2si.Components, error) {
	hsi := h2si.RGBToHSI(c.R, c.G, c.B)
	hsi.I = math.Max(hsi.I, MinIntensity)
	return h2si.HSIToComponents(hsi)
}

// Decode converts H2SI components back to a clamped RGB colour.
func Decode(v h2si.Components) (colorful.Color, h2si.HSI) {
	hsi := v.HSI()
	r, g, b := h2si.HSIToRGB(hsi)
	return colorful.Color{R: r, G: g, B: b}, hsi
}

// Mix blends two RGB colours in H2SI space.
func Mix(a, b colorful.Color, t float64) (colorful.Color, error) {
	va, err := Encode(a)
	if err != nil {
		return colorful.Color{}, err
	}
	vb, err := Encode(b)
	if err != nil {
		return colorful.Color{}, err
	}
	c, _ := Decode(h2si.LerpComponents(va, vb, t))
	return c, nil
}

// Sample evaluates the gradient at n evenly spaced positions from 0 to 1.
// Positions before the first stop or after the last take that stop's colour.
func (g Gradient) Sample(n int) ([]Sample, error) {
	if n < 2 {
		return nil, fmt.Errorf("gradient %q: need at least 2 samples, got %d", g.Name, n)
	}
	if len(g.Stops) < 2 {
		return nil, fmt.Errorf("gradient %q: need at least 2 stops, got %d", g.Name, len(g.Stops))
	}

	encoded := make([]h2si.Components, len(g.Stops))
	for k, s := range g.Stops {
		v, err := Encode(s.Color)
		if err != nil {
			return nil, fmt.Errorf("gradient %q: stop %d: %w", g.Name, k, err)
		}
		encoded[k] = v
	}

	samples := make([]Sample, n)
	for j := range samples {
		t := float64(j) / float64(n-1)
		v := g.at(encoded, t)
		c, hsi := Decode(v)
		samples[j] = Sample{T: t, Color: c, HSI: hsi, Components: v}
	}
	return samples, nil
}

// at returns the interpolated components at position t.
func (g Gradient) at(encoded []h2si.Components, t float64) h2si.Components {
	last := len(g.Stops) - 1
	if t <= g.Stops[0].At {
		return encoded[0]
	}
	if t >= g.Stops[last].At {
		return encoded[last]
	}

	for k := 0; k < last; k++ {
		lo, hi := g.Stops[k].At, g.Stops[k+1].At
		if t > hi {
			continue
		}
		// Coincident stops form a hard edge.
		if hi == lo {
			return encoded[k+1]
		}
		return h2si.LerpComponents(encoded[k], encoded[k+1], (t-lo)/(hi-lo))
	}
	return encoded[last]
}
