package h2si

import (
	"fmt"
	"math"
)

// HSI is a colour in the cylindrical Hue-Saturation-Intensity model.
// H is in radians, conventionally [0, 2π). S and I are in [0, 1].
type HSI struct {
	H, S, I float64
}

// String returns the colour as "hsi(H, S, I)" with six decimals.
func (c HSI) String() string {
	return fmt.Sprintf("hsi(%.6f, %.6f, %.6f)", c.H+0, c.S+0, c.I+0)
}

// NormalizeHue maps any angle in radians to [0, 2π).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 2*math.Pi)
	if h < 0 {
		h += 2 * math.Pi
	}
	// -tiny + 2π rounds up to 2π
	if h >= 2*math.Pi {
		h = 0
	}
	return h
}

// RGBToHSI converts RGB channels in [0, 1] to HSI.
// Intensity is the mid-range of the channels, saturation their spread, and
// hue the angle of the chroma vector with pure red at 0.
func RGBToHSI(r, g, b float64) HSI {
	maxv := max(r, g, b)
	minv := min(r, g, b)

	h := math.Atan2(math.Sqrt(3)*(g-b), 2*r-g-b)
	if h < 0 {
		h += 2 * math.Pi
	}

	return HSI{H: h, S: maxv - minv, I: (maxv + minv) / 2}
}

// HSIToRGB is the inverse of RGBToHSI for colours inside the RGB cube.
// Channels outside [0, 1] are clamped.
func HSIToRGB(c HSI) (r, g, b float64) {
	sin, cos := math.Sincos(c.H)

	// Zero-sum chroma direction whose RGBToHSI hue is c.H.
	dr := 2 * cos / 3
	dg := -cos/3 + sin/math.Sqrt(3)
	db := -cos/3 - sin/math.Sqrt(3)

	hi := max(dr, dg, db)
	lo := min(dr, dg, db)
	k := c.S / (hi - lo)
	mid := c.I - k*(hi+lo)/2

	return clamp01(mid + k*dr), clamp01(mid + k*dg), clamp01(mid + k*db)
}

// checkInput validates c for the forward conversions and returns S and I
// clamped to [0, 1].
func checkInput(c HSI) (s, i float64, err error) {
	if !(c.I > 0) {
		return 0, 0, fmt.Errorf("%w: got %v", ErrDegenerateIntensity, c.I)
	}
	if math.IsNaN(c.H) || math.IsInf(c.H, 0) {
		return 0, 0, fmt.Errorf("%w: H must be finite, got %v", ErrOutOfRange, c.H)
	}
	if !inRange(c.S) {
		return 0, 0, fmt.Errorf("%w: S = %v", ErrOutOfRange, c.S)
	}
	if !inRange(c.I) {
		return 0, 0, fmt.Errorf("%w: I = %v", ErrOutOfRange, c.I)
	}
	return clamp01(c.S), clamp01(c.I), nil
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
