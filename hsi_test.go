package h2si

import (
	"math"
	"testing"
)

func TestRGBToHSI(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    HSI
	}{
		{"red", 1, 0, 0, HSI{H: 0, S: 1, I: 0.5}},
		{"green", 0, 1, 0, HSI{H: 2 * math.Pi / 3, S: 1, I: 0.5}},
		{"blue", 0, 0, 1, HSI{H: 4 * math.Pi / 3, S: 1, I: 0.5}},
		{"white", 1, 1, 1, HSI{H: 0, S: 0, I: 1}},
		{"black", 0, 0, 0, HSI{H: 0, S: 0, I: 0}},
		{"gray", 0.5, 0.5, 0.5, HSI{H: 0, S: 0, I: 0.5}},
		{"yellow", 1, 1, 0, HSI{H: math.Pi / 3, S: 1, I: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSI(tt.r, tt.g, tt.b)
			if hueDiff(got.H, tt.want.H) > 1e-12 {
				t.Errorf("H = %f, want %f", got.H, tt.want.H)
			}
			if math.Abs(got.S-tt.want.S) > 1e-12 {
				t.Errorf("S = %f, want %f", got.S, tt.want.S)
			}
			if math.Abs(got.I-tt.want.I) > 1e-12 {
				t.Errorf("I = %f, want %f", got.I, tt.want.I)
			}
		})
	}
}

func TestRGBToHSI_RedIsHueZero(t *testing.T) {
	if got := RGBToHSI(1, 0, 0).H; got != 0 {
		t.Errorf("H(red) = %v, want exactly 0", got)
	}
}

func TestHSIToRGB_Roundtrip(t *testing.T) {
	colors := [][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0.5, 0.5, 0.5},
		{235.0 / 255, 111.0 / 255, 146.0 / 255},
		{49.0 / 255, 116.0 / 255, 143.0 / 255},
		{156.0 / 255, 207.0 / 255, 216.0 / 255},
		{0.2, 0.9, 0.4},
	}

	for _, c := range colors {
		hsi := RGBToHSI(c[0], c[1], c[2])
		r, g, b := HSIToRGB(hsi)
		if math.Abs(r-c[0]) > 1e-9 || math.Abs(g-c[1]) > 1e-9 || math.Abs(b-c[2]) > 1e-9 {
			t.Errorf("HSIToRGB(RGBToHSI(%v)) = (%f, %f, %f)", c, r, g, b)
		}
	}
}

func TestHSIToRGB_ClampsOutOfGamut(t *testing.T) {
	r, g, b := HSIToRGB(HSI{H: 0, S: 1, I: 0.9})
	for _, v := range []float64{r, g, b} {
		if v < 0 || v > 1 {
			t.Errorf("channel %f outside [0, 1]", v)
		}
	}
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-1e-20, 0},
	}
	for _, tt := range tests {
		got := NormalizeHue(tt.in)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("NormalizeHue(%g) = %g, want %g", tt.in, got, tt.want)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("NormalizeHue(%g) = %g outside [0, 2π)", tt.in, got)
		}
	}
}

func TestStringers(t *testing.T) {
	if got, want := (HSI{H: 1, S: 0.5, I: 0.25}).String(), "hsi(1.000000, 0.500000, 0.250000)"; got != want {
		t.Errorf("HSI.String() = %q, want %q", got, want)
	}
	if got, want := (Components{1, 0, 0.5, 0, 0, 0.25}).String(), "[1.000000 0.000000 0.500000 0.000000 0.000000 0.250000]"; got != want {
		t.Errorf("Components.String() = %q, want %q", got, want)
	}
	if got, want := (H2SI{X1: 1}).String(), "X1=(1.000000+0.000000i) X2=(0.000000+0.000000i) X3=(0.000000+0.000000i)"; got != want {
		t.Errorf("H2SI.String() = %q, want %q", got, want)
	}
}
