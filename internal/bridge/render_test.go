// ABOUTME: Tests for reply rendering helpers
// ABOUTME: Markdown-to-HTML conversion, formatting stripper, GitHub detection

package bridge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	html, err := renderHTML("**Головні мови:**\n\n- Go\n- Python")
	require.NoError(t, err)

	assert.Contains(t, html, "<strong>Головні мови:</strong>")
	assert.Contains(t, html, "<li>Go</li>")
	assert.Contains(t, html, "<li>Python</li>")
}

func TestRenderHTML_InlineCode(t *testing.T) {
	html, err := renderHTML("Подивіться на `main.go`")
	require.NoError(t, err)
	assert.Contains(t, html, "<code>main.go</code>")
}

func TestRenderHTML_PlainTextPassesThrough(t *testing.T) {
	html, err := renderHTML("just text")
	require.NoError(t, err)
	assert.Contains(t, html, "just text")
	assert.False(t, strings.Contains(html, "<strong>"))
}

func TestStripFormatting(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold** and _italic_ and `code`", "bold and italic and code"},
		{"no formatting", "no formatting"},
		{"*а також українською*", "а також українською"},
	}
	for _, tt := range tests {
		if got := stripFormatting(tt.in); got != tt.want {
			t.Errorf("stripFormatting(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMentionsGitHub(t *testing.T) {
	assert.True(t, mentionsGitHub("check https://github.com/octocat"))
	assert.True(t, mentionsGitHub("GITHUB.COM/someone"))
	assert.True(t, mentionsGitHub("github.com/foo/bar please"))
	assert.False(t, mentionsGitHub("tell me about golang"))
	assert.False(t, mentionsGitHub("gitlab.com/foo"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	assert.Equal(t, "аб...", truncate("абвгд", 2))
}
