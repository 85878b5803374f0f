// ABOUTME: The GitHub tool pack: five read-only investigation tools
// ABOUTME: Thin adapters between model tool calls and the github report operations

package tools

import (
	"context"

	"github.com/2389/gitscout/internal/github"
)

// GitHubPack builds the five GitHub investigation tools backed by the
// given client. Handlers never return errors; the report operations fold
// every failure into descriptive text.
func GitHubPack(client *github.Client) []*Tool {
	h := &githubHandlers{client: client}
	return []*Tool{
		{
			Definition: Definition{
				Name:        "investigate_github_user",
				Description: "Investigates a GitHub user's profile, repositories, and activity. Returns a detailed summary including repositories, languages, and stats.",
				Params: []Param{
					{Name: "username", Type: TypeString, Description: "The GitHub username to investigate. Can be extracted from URLs like 'github.com/username'.", Required: true},
				},
			},
			Handler: h.investigateUser,
		},
		{
			Definition: Definition{
				Name:        "list_github_repositories",
				Description: "Returns a list of repositories for a GitHub user with stars, language, and description.",
				Params: []Param{
					{Name: "username", Type: TypeString, Description: "GitHub username or profile URL.", Required: true},
					{Name: "max_repos", Type: TypeInteger, Description: "Maximum number of repositories to list. Defaults to 300."},
				},
			},
			Handler: h.listRepositories,
		},
		{
			Definition: Definition{
				Name:        "inspect_github_repository",
				Description: "Performs a code-level inspection of a GitHub repository: metadata plus code snippets sampled from source files.",
				Params: []Param{
					{Name: "repository", Type: TypeString, Description: "GitHub repository identifier or URL, e.g. 'owner/name' or 'https://github.com/owner/name'.", Required: true},
					{Name: "max_files", Type: TypeInteger, Description: "Maximum number of code files to sample. Defaults to 10."},
					{Name: "path_filter", Type: TypeString, Description: "Optional substring to focus on paths containing it, e.g. 'src', 'backend', 'api'."},
				},
			},
			Handler: h.inspectRepository,
		},
		{
			Definition: Definition{
				Name:        "get_github_repository_structure",
				Description: "Returns the folder/file structure for a GitHub repository as an indented tree.",
				Params: []Param{
					{Name: "repository", Type: TypeString, Description: "GitHub repository identifier or URL, e.g. 'owner/name' or 'https://github.com/owner/name'.", Required: true},
					{Name: "max_entries", Type: TypeInteger, Description: "Maximum number of tree entries (directories + files). Defaults to 500."},
				},
			},
			Handler: h.repositoryStructure,
		},
		{
			Definition: Definition{
				Name:        "inspect_github_repository_files",
				Description: "Returns short code snippets for many files in a GitHub repository.",
				Params: []Param{
					{Name: "repository", Type: TypeString, Description: "GitHub repository identifier or URL, e.g. 'owner/name' or 'https://github.com/owner/name'.", Required: true},
					{Name: "max_files", Type: TypeInteger, Description: "Maximum number of files to include. Defaults to 200."},
					{Name: "max_chars_per_file", Type: TypeInteger, Description: "Maximum number of characters per file snippet. Defaults to 300."},
					{Name: "path_filter", Type: TypeString, Description: "Optional substring to focus on paths containing it."},
				},
			},
			Handler: h.inspectRepositoryFiles,
		},
	}
}

type githubHandlers struct {
	client *github.Client
}

func (h *githubHandlers) investigateUser(ctx context.Context, args map[string]any) string {
	username := stringArg(args, "username", "")
	return h.client.UserSummary(ctx, username)
}

func (h *githubHandlers) listRepositories(ctx context.Context, args map[string]any) string {
	username := stringArg(args, "username", "")
	maxRepos := intArg(args, "max_repos", github.DefaultListMax)
	return h.client.ListUserRepositories(ctx, username, maxRepos)
}

func (h *githubHandlers) inspectRepository(ctx context.Context, args map[string]any) string {
	repo := stringArg(args, "repository", "")
	maxFiles := intArg(args, "max_files", github.DefaultInspectMaxFiles)
	pathFilter := stringArg(args, "path_filter", "")
	return h.client.InspectRepository(ctx, repo, maxFiles, pathFilter)
}

func (h *githubHandlers) repositoryStructure(ctx context.Context, args map[string]any) string {
	repo := stringArg(args, "repository", "")
	maxEntries := intArg(args, "max_entries", github.DefaultTreeMaxEntries)
	return h.client.RepositoryTree(ctx, repo, maxEntries)
}

func (h *githubHandlers) inspectRepositoryFiles(ctx context.Context, args map[string]any) string {
	repo := stringArg(args, "repository", "")
	maxFiles := intArg(args, "max_files", github.DefaultSnippetMaxFiles)
	maxChars := intArg(args, "max_chars_per_file", github.DefaultSnippetChars)
	pathFilter := stringArg(args, "path_filter", "")
	return h.client.InspectRepositoryFiles(ctx, repo, maxFiles, maxChars, pathFilter)
}
