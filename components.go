package h2si

import (
	"fmt"
	"math"
	"strings"
)

// Components is the flat form of an H2SI colour:
// [Re X1, Im X1, Re X2, Im X2, Re X3, Im X3].
type Components [6]float64

// HSIToComponents encodes an HSI colour straight into the flat layout.
//
// The result matches HSIToH2SI(c).Components() within floating-point
// tolerance, but needs a single Sincos and no atan:
//
//	cos 2H = cos²H - sin²H
//	sin 2H = 2 sinH cosH
//	cos(atan x) = 1/sqrt(1+x²)
//	sin(atan x) = x/sqrt(1+x²)
//
// S and I within Tolerance of [0, 1] are clamped; further out, or a
// non-finite H, returns ErrOutOfRange. I <= 0 returns ErrDegenerateIntensity.
func HSIToComponents(c HSI) (Components, error) {
	s, i, err := checkInput(c)
	if err != nil {
		return Components{}, err
	}

	sinH, cosH := math.Sincos(c.H)
	cos2H := cosH*cosH - sinH*sinH
	sin2H := 2 * sinH * cosH

	x := math.Sqrt((1 - i) / i)
	d := math.Sqrt(1 + x*x)

	a := math.Sqrt(1 - s/2)
	k := math.Sqrt(s / 2)

	return Components{
		a / d, a * x / d,
		k * cos2H * cosH, -k * cos2H * sinH,
		k * sin2H * cosH, k * sin2H * sinH,
	}, nil
}

// ComponentsToHSI decodes a flat component slice.
// It returns ErrInvalidArgument unless len(v) is exactly 6.
func ComponentsToHSI(v []float64) (HSI, error) {
	if len(v) != len(Components{}) {
		return HSI{}, fmt.Errorf("%w: want 6 components, got %d", ErrInvalidArgument, len(v))
	}
	return Components(v).HSI(), nil
}

// HSI decodes the colour back to HSI, clamping S and I to [0, 1].
func (v Components) HSI() HSI {
	s, i := v.saturationIntensity()

	h := math.Atan2(v[4]+v[3], v[2]+v[5])
	if h < 0 {
		h += 2 * math.Pi
	}

	return HSI{H: h, S: clamp01(s), I: clamp01(i)}
}

// Complex returns the complex-triplet view of v.
func (v Components) Complex() H2SI {
	return H2SI{
		X1: complex(v[0], v[1]),
		X2: complex(v[2], v[3]),
		X3: complex(v[4], v[5]),
	}
}

// Slice returns a copy of v as a slice.
func (v Components) Slice() []float64 {
	return append([]float64(nil), v[:]...)
}

// Validate reports ErrOutOfRange if the unclamped S or I of v lies outside
// [0, 1] by more than Tolerance.
func (v Components) Validate() error {
	s, i := v.saturationIntensity()
	if !inRange(s) {
		return fmt.Errorf("%w: S = %g", ErrOutOfRange, s)
	}
	if !inRange(i) {
		return fmt.Errorf("%w: I = %g", ErrOutOfRange, i)
	}
	return nil
}

func (v Components) String() string {
	parts := make([]string, len(v))
	for k, f := range v {
		// +0 drops the sign of negative zero
		parts[k] = fmt.Sprintf("%.6f", f+0)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// saturationIntensity returns the unclamped S and I of v.
func (v Components) saturationIntensity() (s, i float64) {
	s = 2 * (v[2]*v[2] + v[3]*v[3] + v[4]*v[4] + v[5]*v[5])
	i = v[0] * v[0] / (1 - s/2)
	return s, i
}

func inRange(f float64) bool {
	return f >= -Tolerance && f <= 1+Tolerance
}
