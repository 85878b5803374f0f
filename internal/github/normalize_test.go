// ABOUTME: Tests for user and repository identifier normalization
// ABOUTME: Covers bare handles, URLs with trailing slash, query, and fragment

package github

import (
	"strings"
	"testing"
)

func TestNormalizeUser(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alice", "alice"},
		{"  alice  ", "alice"},
		{"github.com/alice", "alice"},
		{"github.com/alice/", "alice"},
		{"https://github.com/alice", "alice"},
		{"https://github.com/alice/repos", "alice"},
		{"https://www.github.com/alice/", "alice"},
		{"http://github.com/alice", "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeUser(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeUser(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if strings.ContainsAny(got, "/:") {
				t.Errorf("NormalizeUser(%q) = %q, contains slash or scheme characters", tt.in, got)
			}
		})
	}
}

func TestNormalizeRepo(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"foo/bar", "foo/bar"},
		{"foo/bar/", "foo/bar"},
		{"https://github.com/foo/bar", "foo/bar"},
		{"https://github.com/foo/bar/", "foo/bar"},
		{"https://github.com/foo/bar/?x=1", "foo/bar"},
		{"https://github.com/foo/bar?tab=readme", "foo/bar"},
		{"https://github.com/foo/bar#readme", "foo/bar"},
		{"github.com/foo/bar/#section", "foo/bar"},
		{"  https://github.com/foo/bar  ", "foo/bar"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeRepo(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeRepo(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
