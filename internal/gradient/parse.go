package gradient

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/zclconf/go-cty/cty"
)

// fileSchema is the top level of a gradient document.
type fileSchema struct {
	Gradients []gradientBlock `hcl:"gradient,block"`
}

type gradientBlock struct {
	Name     string      `hcl:"name,label"`
	Steps    *int        `hcl:"steps,optional"`
	Stops    []stopBlock `hcl:"stop,block"`
	DefRange hcl.Range   `hcl:",def_range"`
}

type stopBlock struct {
	At    float64        `hcl:"at"`
	Color hcl.Expression `hcl:"color"`
}

// ParseColor parses a hex colour, with or without the leading #.
func ParseColor(s string) (colorful.Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q: must be #rgb or #rrggbb", s)
	}
	return c, nil
}

// Parse reads and decodes a gradient document from disk.
func Parse(path string) ([]Gradient, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading gradient file: %w", err)
	}

	gradients, diags := ParseSource(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %s", path, diags.Error())
	}
	return gradients, nil
}

// ParseSource decodes a gradient document held in memory. It keeps going
// after an invalid gradient so that every problem is reported.
func ParseSource(src []byte, filename string) ([]Gradient, hcl.Diagnostics) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}

	ctx := EvalContext()

	var raw fileSchema
	if diags := gohcl.DecodeBody(file.Body, ctx, &raw); diags.HasErrors() {
		return nil, diags
	}

	if len(raw.Gradients) == 0 {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "No gradient blocks",
			Detail:   "A gradient document needs at least one gradient block.",
			Subject:  &hcl.Range{Filename: filename, Start: hcl.InitialPos, End: hcl.InitialPos},
		}}
	}

	var all hcl.Diagnostics
	gradients := make([]Gradient, 0, len(raw.Gradients))
	seen := make(map[string]bool, len(raw.Gradients))

	for _, block := range raw.Gradients {
		defRange := block.DefRange
		if seen[block.Name] {
			all = append(all, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate gradient",
				Detail:   fmt.Sprintf("Gradient %q is defined more than once.", block.Name),
				Subject:  &defRange,
			})
			continue
		}
		seen[block.Name] = true

		g, diags := decodeGradient(block, ctx)
		all = append(all, diags...)
		if !diags.HasErrors() {
			gradients = append(gradients, g)
		}
	}

	return gradients, all
}

func decodeGradient(block gradientBlock, ctx *hcl.EvalContext) (Gradient, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	defRange := block.DefRange

	g := Gradient{
		Name:     block.Name,
		Steps:    DefaultSteps,
		DefRange: block.DefRange,
	}

	if block.Steps != nil {
		if *block.Steps < 2 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid steps",
				Detail:   fmt.Sprintf("gradient %q: steps must be at least 2, got %d", block.Name, *block.Steps),
				Subject:  &defRange,
			})
		}
		g.Steps = *block.Steps
	}

	if len(block.Stops) < 2 {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Not enough stops",
			Detail:   fmt.Sprintf("gradient %q: needs at least 2 stops, got %d", block.Name, len(block.Stops)),
			Subject:  &defRange,
		})
	}

	prev := 0.0
	for k, sb := range block.Stops {
		rng := sb.Color.Range()

		if sb.At < 0 || sb.At > 1 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Stop position out of range",
				Detail:   fmt.Sprintf("gradient %q: stop %d: at must be within [0, 1], got %v", block.Name, k, sb.At),
				Subject:  &rng,
			})
		} else if sb.At < prev {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Stops out of order",
				Detail:   fmt.Sprintf("gradient %q: stop %d: at %v is before the previous stop at %v", block.Name, k, sb.At, prev),
				Subject:  &rng,
			})
		}
		prev = sb.At

		val, valDiags := sb.Color.Value(ctx)
		if valDiags.HasErrors() {
			diags = append(diags, valDiags...)
			continue
		}
		if !val.Type().Equals(cty.String) || val.IsNull() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid color",
				Detail:   fmt.Sprintf("gradient %q: stop %d: color must be a string", block.Name, k),
				Subject:  &rng,
			})
			continue
		}

		c, err := ParseColor(val.AsString())
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid color",
				Detail:   fmt.Sprintf("gradient %q: stop %d: %s", block.Name, k, err),
				Subject:  &rng,
			})
			continue
		}

		g.Stops = append(g.Stops, Stop{At: sb.At, Color: c, Range: rng})
	}

	return g, diags
}
