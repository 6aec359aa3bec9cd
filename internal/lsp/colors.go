package lsp

import (
	"fmt"
	"math"
	"strings"

	"github.com/jsvensson/h2si"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts a colorful.Color to a protocol.Color.
func colorToLSP(c colorful.Color) protocol.Color {
	c = c.Clamped()
	return protocol.Color{
		Red:   float32(c.R),
		Green: float32(c.G),
		Blue:  float32(c.B),
		Alpha: 1.0,
	}
}

func colorFromLSP(c protocol.Color) colorful.Color {
	return colorful.Color{R: float64(c.Red), G: float64(c.Green), B: float64(c.Blue)}.Clamped()
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// hsiCall renders c as an hsi() call with the hue in degrees.
func hsiCall(c colorful.Color) string {
	hsi := h2si.RGBToHSI(c.R, c.G, c.B)
	deg := hsi.H * 180 / math.Pi
	return fmt.Sprintf("hsi(%.1f, %.3f, %.3f)", deg+0, hsi.S+0, hsi.I+0)
}

func rgbCall(c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// colorPresentation offers replacements for a picked colour. String literals
// and hsi()/rgb() calls can be rewritten; mix() calls are derived values and
// are left alone.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	text := extractText(content, params.Range)
	if !strings.HasPrefix(text, "\"") && !strings.HasPrefix(text, "hsi(") && !strings.HasPrefix(text, "rgb(") {
		return []protocol.ColorPresentation{}
	}

	c := colorFromLSP(params.Color)
	hex := c.Hex()
	options := []string{"\"" + hex + "\"", hsiCall(c), rgbCall(c)}

	presentations := make([]protocol.ColorPresentation, 0, len(options))
	for _, newText := range options {
		presentations = append(presentations, protocol.ColorPresentation{
			Label: strings.Trim(newText, "\""),
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: newText,
			},
		})
	}
	return presentations
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	return documentColors(s.getResult(string(params.TextDocument.URI))), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
