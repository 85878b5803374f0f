// ABOUTME: Tests for the genai conversion helpers
// ABOUTME: History-to-content and definition-to-declaration mapping

package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/2389/gitscout/internal/agent"
	"github.com/2389/gitscout/internal/tools"
)

func TestToContents(t *testing.T) {
	history := []agent.Message{
		{Role: "user", Content: "tell me about github.com/octocat"},
		{Role: "model", ToolCalls: []agent.ToolCall{
			{Name: "investigate_github_user", Args: map[string]any{"username": "octocat"}},
		}},
		{Role: "tool", ToolName: "investigate_github_user", Content: "User: octocat"},
		{Role: "model", Content: "Ось що я знайшов."},
	}

	contents := toContents(history)
	require.Len(t, contents, 4)

	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "tell me about github.com/octocat", contents[0].Parts[0].Text)

	assert.Equal(t, "model", contents[1].Role)
	require.NotNil(t, contents[1].Parts[0].FunctionCall)
	assert.Equal(t, "investigate_github_user", contents[1].Parts[0].FunctionCall.Name)
	assert.Equal(t, "octocat", contents[1].Parts[0].FunctionCall.Args["username"])

	// Tool results ride in a user-role content as function responses.
	assert.Equal(t, "user", contents[2].Role)
	require.NotNil(t, contents[2].Parts[0].FunctionResponse)
	assert.Equal(t, "investigate_github_user", contents[2].Parts[0].FunctionResponse.Name)
	assert.Equal(t, "User: octocat", contents[2].Parts[0].FunctionResponse.Response["result"])

	assert.Equal(t, "model", contents[3].Role)
	assert.Equal(t, "Ось що я знайшов.", contents[3].Parts[0].Text)
}

func TestToDeclarations(t *testing.T) {
	defs := []tools.Definition{
		{
			Name:        "inspect_github_repository",
			Description: "inspects a repository",
			Params: []tools.Param{
				{Name: "repository", Type: tools.TypeString, Description: "owner/name", Required: true},
				{Name: "max_files", Type: tools.TypeInteger, Description: "sample size"},
			},
		},
	}

	decls := toDeclarations(defs)
	require.Len(t, decls, 1)

	decl := decls[0]
	assert.Equal(t, "inspect_github_repository", decl.Name)
	require.NotNil(t, decl.Parameters)
	assert.Equal(t, genai.TypeObject, decl.Parameters.Type)

	repo := decl.Parameters.Properties["repository"]
	require.NotNil(t, repo)
	assert.Equal(t, genai.TypeString, repo.Type)

	maxFiles := decl.Parameters.Properties["max_files"]
	require.NotNil(t, maxFiles)
	assert.Equal(t, genai.TypeInteger, maxFiles.Type)

	assert.Equal(t, []string{"repository"}, decl.Parameters.Required)
}

func TestToContents_ModelTextAndCallsTogether(t *testing.T) {
	history := []agent.Message{
		{Role: "model", Content: "thinking", ToolCalls: []agent.ToolCall{{Name: "x"}}},
	}

	contents := toContents(history)
	require.Len(t, contents, 1)
	require.Len(t, contents[0].Parts, 2)
	assert.Equal(t, "thinking", contents[0].Parts[0].Text)
	assert.Equal(t, "x", contents[0].Parts[1].FunctionCall.Name)
}
