// ABOUTME: Markdown rendering for outgoing Matrix messages
// ABOUTME: HTML via goldmark, with a plain-text formatting stripper as fallback

package bridge

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
)

// formattingChars matches the Markdown symbols the model tends to emit.
var formattingChars = regexp.MustCompile("[*_`]")

// renderHTML converts a Markdown answer to HTML for the formatted body.
func renderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// stripFormatting removes bold/italic/code markers so a plain-text fallback
// doesn't show raw formatting symbols.
func stripFormatting(s string) string {
	return formattingChars.ReplaceAllString(s, "")
}

// mentionsGitHub reports whether the message looks like it refers to a
// GitHub profile or repository link.
func mentionsGitHub(s string) bool {
	return strings.Contains(strings.ToLower(s), "github.com")
}
