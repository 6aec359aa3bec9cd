// Package h2si converts colours between HSI and the H2SI perceptual colour
// space, and interpolates colours in H2SI coordinates.
//
// H2SI encodes a colour as three complex numbers X1, X2, X3 with
//
//	S = 2(|X2|² + |X3|²)
//	I = Re(X1)² / (1 - S/2)
//
// Linear blends of these coordinates approximate perceptually uniform
// blending better than blends in HSI or RGB. See "H2SI - A New Perceptual
// Colour Space" by Nölle, Suda and Boxleitner.
//
// A point has two encodings: H2SI (three complex128) and Components (six
// float64). They are lossless views of the same six numbers.
//
// Every function in this package is pure and safe for concurrent use.
package h2si

import (
	"fmt"
	"math"
	"math/cmplx"
)

// H2SI is the complex-triplet form of an H2SI colour.
type H2SI struct {
	X1, X2, X3 complex128
}

// HSIToH2SI encodes an HSI colour with direct complex arithmetic:
//
//	X1 = sqrt(1 - S/2) · exp(i·atan(sqrt((1-I)/I)))
//	X2 = sqrt(S/2)·cos(2H) · exp(-i·H)
//	X3 = sqrt(S/2)·sin(2H) · exp(i·H)
//
// S and I within Tolerance of [0, 1] are clamped; further out, or a
// non-finite H, returns ErrOutOfRange. I <= 0 returns ErrDegenerateIntensity.
func HSIToH2SI(c HSI) (H2SI, error) {
	s, i, err := checkInput(c)
	if err != nil {
		return H2SI{}, err
	}

	a := math.Sqrt(1 - s/2)
	k := math.Sqrt(s / 2)

	return H2SI{
		X1: complex(a, 0) * cmplx.Exp(complex(0, math.Atan(math.Sqrt((1-i)/i)))),
		X2: complex(k*math.Cos(2*c.H), 0) * cmplx.Exp(complex(0, -c.H)),
		X3: complex(k*math.Sin(2*c.H), 0) * cmplx.Exp(complex(0, c.H)),
	}, nil
}

// H2SIToHSI decodes an H2SI colour. It is the same as x.HSI().
func H2SIToHSI(x H2SI) HSI {
	return x.HSI()
}

// HSI decodes the colour back to HSI, clamping S and I to [0, 1].
func (x H2SI) HSI() HSI {
	return x.Components().HSI()
}

// Components returns the flat six-real view of x.
func (x H2SI) Components() Components {
	return Components{
		real(x.X1), imag(x.X1),
		real(x.X2), imag(x.X2),
		real(x.X3), imag(x.X3),
	}
}

// Validate reports ErrOutOfRange if the unclamped S or I of x lies outside
// [0, 1] by more than Tolerance.
func (x H2SI) Validate() error {
	return x.Components().Validate()
}

func (x H2SI) String() string {
	return fmt.Sprintf("X1=%.6f X2=%.6f X3=%.6f", unsignZero(x.X1), unsignZero(x.X2), unsignZero(x.X3))
}

// unsignZero drops the sign of negative-zero parts so they print as 0.
func unsignZero(z complex128) complex128 {
	return complex(real(z)+0, imag(z)+0)
}
