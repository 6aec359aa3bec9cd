package lsp

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/h2si/internal/gradient"
	"github.com/lucasb-eyer/go-colorful"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "h2si"

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

// AnalysisResult holds everything produced by analyzing a gradient document.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Gradients   []gradient.Gradient
	Colors      []ColorLocation
}

// ColorLocation records a resolved stop colour at a source position.
type ColorLocation struct {
	Range    protocol.Range
	Color    colorful.Color
	Gradient string
	At       float64
}

// Analyze parses a gradient document from memory. Every HCL and validation
// problem becomes a diagnostic; every stop of a valid gradient becomes a
// colour location.
func Analyze(filename, content string) *AnalysisResult {
	gradients, diags := gradient.ParseSource([]byte(content), filename)

	result := &AnalysisResult{Gradients: gradients}
	for _, d := range diags {
		result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(content, d))
	}

	for _, g := range gradients {
		for _, s := range g.Stops {
			result.Colors = append(result.Colors, ColorLocation{
				Range:    hclRangeToLSP(content, s.Range),
				Color:    s.Color,
				Gradient: g.Name,
				At:       s.At,
			})
		}
	}

	return result
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(content string, d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagnosticSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(content, *d.Subject)
	}

	return diag
}

func strPtr(s string) *string {
	return &s
}
