package lsp

import (
	"strings"
	"unicode/utf16"

	"github.com/hashicorp/hcl/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// LSP characters are UTF-16 code units. HCL columns count grapheme
// clusters, so positions are converted through byte offsets instead.

// utf16Len returns the length of s in UTF-16 code units.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += max(utf16.RuneLen(r), 1)
	}
	return n
}

// byteOffset returns the byte index in line of the UTF-16 offset char,
// or len(line) if char is past the end.
func byteOffset(line string, char uint32) int {
	units := uint32(0)
	for b, r := range line {
		if units >= char {
			return b
		}
		units += uint32(max(utf16.RuneLen(r), 1))
	}
	return len(line)
}

// hclPosToLSP converts an HCL position in content to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(content string, pos hcl.Pos) protocol.Position {
	line := uint32(max(pos.Line-1, 0))
	if pos.Byte < 0 || pos.Byte > len(content) {
		return protocol.Position{Line: line, Character: uint32(max(pos.Column-1, 0))}
	}
	start := strings.LastIndexByte(content[:pos.Byte], '\n') + 1
	return protocol.Position{Line: line, Character: uint32(utf16Len(content[start:pos.Byte]))}
}

// hclRangeToLSP converts an HCL range in content to an LSP range.
func hclRangeToLSP(content string, r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(content, r.Start),
		End:   hclPosToLSP(content, r.End),
	}
}

// offsetOf returns the byte offset of pos in content, clamped to the
// content's bounds.
func offsetOf(lines []string, pos protocol.Position) int {
	offset := 0
	for k := 0; k < int(pos.Line); k++ {
		if k >= len(lines) {
			return offset
		}
		offset += len(lines[k]) + 1
	}
	if int(pos.Line) >= len(lines) {
		return offset
	}
	return offset + byteOffset(lines[pos.Line], pos.Character)
}

// extractText extracts the source text at a given LSP range from document
// content. A reversed range yields "".
func extractText(content string, r protocol.Range) string {
	lines := strings.Split(content, "\n")
	start := min(offsetOf(lines, r.Start), len(content))
	end := min(offsetOf(lines, r.End), len(content))
	if start >= end {
		return ""
	}
	return content[start:end]
}
