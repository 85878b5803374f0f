// ABOUTME: Tests for the GitHub tool pack
// ABOUTME: Verifies tool names, schemas, and argument plumbing into the client

package tools

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/gitscout/internal/github"
)

func TestGitHubPack_Definitions(t *testing.T) {
	pack := GitHubPack(github.New(""))
	require.Len(t, pack, 5)

	names := make(map[string]Definition)
	for _, tool := range pack {
		names[tool.Definition.Name] = tool.Definition
	}

	for _, want := range []string{
		"investigate_github_user",
		"list_github_repositories",
		"inspect_github_repository",
		"get_github_repository_structure",
		"inspect_github_repository_files",
	} {
		assert.Contains(t, names, want)
	}

	// Each tool requires exactly one identifier parameter.
	for name, def := range names {
		var required int
		for _, p := range def.Params {
			if p.Required {
				required++
				assert.Equal(t, TypeString, p.Type, "%s required param should be a string", name)
			}
		}
		assert.Equal(t, 1, required, "%s should require exactly one param", name)
		assert.NotEmpty(t, def.Description)
	}
}

func TestGitHubPack_RegistersCleanly(t *testing.T) {
	r := NewRegistry(slog.Default())
	require.NoError(t, r.Register(GitHubPack(github.New(""))...))
	assert.Len(t, r.Definitions(), 5)
}

func TestGitHubPack_ArgumentPlumbing(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	}))
	defer srv.Close()

	r := NewRegistry(slog.Default())
	require.NoError(t, r.Register(GitHubPack(github.NewWithBaseURL(srv.URL, ""))...))

	// URL-shaped username is normalized before hitting the API.
	out, err := r.Execute(context.Background(), "investigate_github_user", map[string]any{
		"username": "https://github.com/octocat",
	})
	require.NoError(t, err)
	assert.Equal(t, "/users/octocat", gotPath)
	// The failure is folded into the report, naming the original argument.
	assert.Contains(t, out, "https://github.com/octocat")
	assert.Contains(t, out, "Error fetching data for user")

	// Numeric arguments arrive as float64 from JSON decoding.
	out, err = r.Execute(context.Background(), "get_github_repository_structure", map[string]any{
		"repository":  "https://github.com/foo/bar",
		"max_entries": float64(25),
	})
	require.NoError(t, err)
	assert.Equal(t, "/repos/foo/bar", gotPath)
	assert.Contains(t, out, "Error getting folder structure for")

	_, err = r.Execute(context.Background(), "list_github_repositories", map[string]any{
		"username":  "alice",
		"max_repos": "50", // quoted number still works
	})
	require.NoError(t, err)
	assert.Equal(t, "/users/alice", gotPath)
	_ = gotQuery
}
