package lsp

import (
	"strings"

	"github.com/jsvensson/h2si/internal/format"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// endPosition returns the position just past the last character of content.
func endPosition(content string) protocol.Position {
	lines := strings.Split(content, "\n")
	last := lines[len(lines)-1]
	return protocol.Position{
		Line:      uint32(len(lines) - 1),
		Character: uint32(utf16Len(last)),
	}
}

// formatEdits returns a single whole-document edit, or none if content is
// already canonical.
func formatEdits(content string) []protocol.TextEdit {
	formatted := format.Format(content)
	if formatted == content {
		return []protocol.TextEdit{}
	}
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   endPosition(content),
		},
		NewText: formatted,
	}}
}

// textDocumentFormatting handles textDocument/formatting requests.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return formatEdits(content), nil
}
