// Package format rewrites gradient documents in canonical HCL style.
package format

import (
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var (
	multipleBlankLines        = regexp.MustCompile(`\n{3,}`)
	blankLineAfterOpenBrace   = regexp.MustCompile(`\{\n\s*\n`)
	blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)
)

// Format returns content in canonical style: hclwrite indentation and
// alignment, at most one blank line in a row, no blank lines hugging braces,
// and a single trailing newline.
//
// It tolerates invalid HCL, so editors can format while the user types.
func Format(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	out := string(hclwrite.Format([]byte(content)))
	out = multipleBlankLines.ReplaceAllString(out, "\n\n")
	out = blankLineAfterOpenBrace.ReplaceAllString(out, "{\n")
	out = blankLineBeforeCloseBrace.ReplaceAllString(out, "\n${1}")

	return strings.TrimRight(out, "\n") + "\n"
}

// IsFormatted reports whether content is already in canonical style.
func IsFormatted(content string) bool {
	return Format(content) == content
}
