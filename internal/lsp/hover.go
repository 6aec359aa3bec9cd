package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/h2si"
	"github.com/jsvensson/h2si/internal/gradient"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// hover produces a Hover response for the given cursor position. It shows the
// stop's colour as hex, RGB, HSI and its H2SI components.
// Returns nil if no stop colour is at the position.
func hover(result *AnalysisResult, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		c := cl.Color.Clamped()
		hsi := h2si.RGBToHSI(c.R, c.G, c.B)

		var b strings.Builder
		fmt.Fprintf(&b, "**%s** at %g\n\n", cl.Gradient, cl.At)
		fmt.Fprintf(&b, "`%s` \u00b7 `%s`\n\n", c.Hex(), rgbCall(c))
		fmt.Fprintf(&b, "HSI `%s`", hsi)
		if v, err := gradient.Encode(c); err == nil {
			fmt.Fprintf(&b, "\n\nH2SI `%s`", v)
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: b.String(),
			},
			Range: &cl.Range,
		}
	}

	return nil
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	return hover(s.getResult(string(params.TextDocument.URI)), params.Position), nil
}
