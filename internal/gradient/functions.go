package gradient

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/h2si"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// EvalContext returns the HCL evaluation context for gradient documents.
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"hsi":      makeHSIFunc(),
			"rgb":      makeRGBFunc(),
			"mix":      makeMixFunc(),
			"brighten": makeBrightenFunc(),
		},
	}
}

// makeHSIFunc creates an HCL function that builds a colour from HSI.
// Usage: hsi(120, 0.8, 0.5), hue in degrees.
func makeHSIFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a colour from hue (degrees), saturation and intensity (0 to 1)",
		Params: []function.Parameter{
			{Name: "hue", Type: cty.Number},
			{Name: "saturation", Type: cty.Number},
			{Name: "intensity", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			h, _ := args[0].AsBigFloat().Float64()
			s, _ := args[1].AsBigFloat().Float64()
			i, _ := args[2].AsBigFloat().Float64()

			if s < 0 || s > 1 {
				return cty.NilVal, function.NewArgErrorf(1, "saturation must be within [0, 1], got %v", s)
			}
			if i < 0 || i > 1 {
				return cty.NilVal, function.NewArgErrorf(2, "intensity must be within [0, 1], got %v", i)
			}

			r, g, b := h2si.HSIToRGB(h2si.HSI{H: h2si.NormalizeHue(h * math.Pi / 180), S: s, I: i})
			return cty.StringVal(colorful.Color{R: r, G: g, B: b}.Hex()), nil
		},
	})
}

// makeRGBFunc creates an HCL function that builds a colour from 0-255 channels.
// Usage: rgb(235, 111, 146)
func makeRGBFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a colour from red, green and blue channels (0 to 255)",
		Params: []function.Parameter{
			{Name: "red", Type: cty.Number},
			{Name: "green", Type: cty.Number},
			{Name: "blue", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			var ch [3]float64
			for k, arg := range args {
				v, _ := arg.AsBigFloat().Float64()
				if v < 0 || v > 255 {
					return cty.NilVal, function.NewArgErrorf(k, "channel must be within [0, 255], got %v", v)
				}
				ch[k] = v / 255
			}
			return cty.StringVal(colorful.Color{R: ch[0], G: ch[1], B: ch[2]}.Hex()), nil
		},
	})
}

// makeMixFunc creates an HCL function that blends two colours in H2SI space.
// Usage: mix("#ff0000", "#0000ff", 0.5)
func makeMixFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Blends two colours in H2SI space",
		Params: []function.Parameter{
			{Name: "from", Type: cty.String},
			{Name: "to", Type: cty.String},
			{Name: "t", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			a, err := ParseColor(args[0].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			b, err := ParseColor(args[1].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(1, err)
			}
			t, _ := args[2].AsBigFloat().Float64()

			mixed, err := Mix(a, b, t)
			if err != nil {
				return cty.NilVal, fmt.Errorf("mixing: %w", err)
			}
			return cty.StringVal(mixed.Clamped().Hex()), nil
		},
	})
}

// makeBrightenFunc creates an HCL function that shifts a colour's HSI
// intensity, keeping hue and saturation. Negative amounts darken.
// Usage: brighten("#eb6f92", 0.1)
func makeBrightenFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Adds amount to a colour's intensity",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := ParseColor(args[0].AsString())
			if err != nil {
				return cty.NilVal, function.NewArgError(0, err)
			}
			amount, _ := args[1].AsBigFloat().Float64()

			hsi := h2si.RGBToHSI(c.R, c.G, c.B)
			hsi.I = min(max(hsi.I+amount, 0), 1)
			r, g, b := h2si.HSIToRGB(hsi)
			return cty.StringVal(colorful.Color{R: r, G: g, B: b}.Hex()), nil
		},
	})
}
