// ABOUTME: The five report operations exposed to the agent as tools
// ABOUTME: Each returns a plain-text report and converts every failure into a descriptive string

package github

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
)

// Caps and defaults for the report operations. The registry documents the
// same defaults in the tool schemas.
const (
	userSummaryRepoCap = 200
	readmeSnippetChars = 500

	DefaultListMax         = 300
	DefaultInspectMaxFiles = 10
	DefaultTreeMaxEntries  = 500
	DefaultSnippetMaxFiles = 200
	DefaultSnippetChars    = 300
	inspectSnippetChars    = 1500
	inspectSizeFactor      = 4
	snippetSizeFactor      = 20
)

// sourceExtensions is the allow-list used by InspectRepository. Only files
// with these extensions are sampled; assets and binaries are skipped.
var sourceExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".tsx": true, ".jsx": true,
	".java": true, ".go": true, ".rs": true, ".rb": true, ".php": true,
	".cs": true, ".cpp": true, ".cc": true, ".c": true, ".h": true, ".hpp": true,
	".scala": true, ".kt": true, ".swift": true,
	".sh": true, ".ps1": true, ".bash": true,
	".sql": true,
	".yaml": true, ".yml": true, ".toml": true, ".ini": true,
	".ipynb": true,
}

// language maps an empty primary language to "Unknown".
func language(r *Repository) string {
	if r.Language == "" {
		return "Unknown"
	}
	return r.Language
}

// description maps an empty description to a readable placeholder.
func description(r *Repository) string {
	if r.Description == "" {
		return "No description provided."
	}
	return r.Description
}

// orEmpty renders absent profile fields the way the API reports them.
func orEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// UserSummary builds a profile report for a user: bio and stats, language
// histogram and total stars over a bounded repo sample, the top repositories
// by stars with readme snippets, and a full listing of the sample.
func (c *Client) UserSummary(ctx context.Context, userID string) string {
	login := NormalizeUser(userID)

	user, err := c.GetUser(ctx, login)
	if err != nil {
		return fmt.Sprintf("Error fetching data for user %s: %v", userID, err)
	}

	summary := []string{
		fmt.Sprintf("User: %s (%s)", user.Login, orEmpty(user.Name)),
		fmt.Sprintf("Bio: %s", orEmpty(user.Bio)),
		fmt.Sprintf("Location: %s", orEmpty(user.Location)),
		fmt.Sprintf("Public Repos: %d", user.PublicRepos),
		fmt.Sprintf("Followers: %d", user.Followers),
		fmt.Sprintf("Profile URL: %s", user.HTMLURL),
		"",
		"Repository overview:",
	}

	// A broad sample gives the full picture for most users while staying
	// within API and token limits.
	repos, err := c.ListRepos(ctx, user.Login, userSummaryRepoCap)
	if err != nil {
		return fmt.Sprintf("Error fetching data for user %s: %v", userID, err)
	}

	c.logger.Info("built user summary", "user", user.Login, "repos", len(repos))

	if len(repos) == 0 {
		summary = append(summary, "No public repositories found.")
		return strings.Join(summary, "\n")
	}

	languageCounts := make(map[string]int)
	totalStars := 0
	for i := range repos {
		totalStars += repos[i].StargazersCount
		languageCounts[language(&repos[i])]++
	}

	summary = append(summary,
		fmt.Sprintf("- Repositories analyzed (sample): %d", len(repos)),
		fmt.Sprintf("- Total stars across analyzed repos: %d", totalStars),
		"- Languages (by repo count):",
	)

	langs := make([]string, 0, len(languageCounts))
	for lang := range languageCounts {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		if languageCounts[langs[i]] != languageCounts[langs[j]] {
			return languageCounts[langs[i]] > languageCounts[langs[j]]
		}
		return langs[i] < langs[j]
	})
	for _, lang := range langs {
		summary = append(summary, fmt.Sprintf("  • %s: %d repos", lang, languageCounts[lang]))
	}

	summary = append(summary, "", "Top repositories by stars (up to 10):")
	top := make([]Repository, len(repos))
	copy(top, repos)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].StargazersCount > top[j].StargazersCount
	})
	if len(top) > 10 {
		top = top[:10]
	}

	for i := range top {
		repo := &top[i]
		summary = append(summary,
			fmt.Sprintf("- %s (Stars: %d, Language: %s)", repo.FullName, repo.StargazersCount, language(repo)),
			fmt.Sprintf("  Description: %s", description(repo)),
			fmt.Sprintf("  URL: %s", repo.HTMLURL),
		)

		readme, err := c.GetReadmeText(ctx, repo.FullName)
		if err != nil {
			summary = append(summary, "  README: Not found")
			continue
		}
		summary = append(summary, fmt.Sprintf("  README snippet: %s...", truncateChars(readme, readmeSnippetChars)))
	}

	// The full sample lets the model see the broader portfolio, including
	// repositories without descriptions.
	summary = append(summary, "", "All analyzed repositories:")
	for i := range repos {
		repo := &repos[i]
		summary = append(summary, fmt.Sprintf(
			"- %s | Stars: %d | Language: %s | Description: %s",
			repo.FullName, repo.StargazersCount, language(repo), description(repo),
		))
	}

	return strings.Join(summary, "\n")
}

// ListUserRepositories lists up to maxRepos repositories with basic metadata
// in the API's default iteration order.
func (c *Client) ListUserRepositories(ctx context.Context, userID string, maxRepos int) string {
	if maxRepos <= 0 {
		maxRepos = DefaultListMax
	}
	login := NormalizeUser(userID)

	user, err := c.GetUser(ctx, login)
	if err != nil {
		return fmt.Sprintf("Error listing repositories for user %s: %v", userID, err)
	}

	lines := []string{
		fmt.Sprintf("Repositories for user: %s (%s)", user.Login, orEmpty(user.Name)),
		fmt.Sprintf("Total public repos reported by GitHub: %d", user.PublicRepos),
		"",
		fmt.Sprintf("Listing up to %d repositories:", maxRepos),
	}

	repos, err := c.ListRepos(ctx, user.Login, maxRepos)
	if err != nil {
		return fmt.Sprintf("Error listing repositories for user %s: %v", userID, err)
	}

	for i := range repos {
		repo := &repos[i]
		lines = append(lines, fmt.Sprintf(
			"- %s | Stars: %d | Language: %s | URL: %s",
			repo.FullName, repo.StargazersCount, language(repo), repo.HTMLURL,
		))
		if repo.Description != "" {
			lines = append(lines, fmt.Sprintf("  Description: %s", repo.Description))
		}
	}

	if len(repos) == 0 {
		lines = append(lines, "No public repositories found.")
	}

	c.logger.Info("listed repositories", "user", user.Login, "count", len(repos), "max", maxRepos)

	return strings.Join(lines, "\n")
}

// InspectRepository samples a limited number of source files from a
// repository breadth-first and returns metadata plus code snippets.
func (c *Client) InspectRepository(ctx context.Context, repoID string, maxFiles int, pathFilter string) string {
	if maxFiles <= 0 {
		maxFiles = DefaultInspectMaxFiles
	}
	id := NormalizeRepo(repoID)

	repo, err := c.GetRepo(ctx, id)
	if err != nil {
		return fmt.Sprintf("Error inspecting repository %s: %v", repoID, err)
	}

	summary := []string{
		fmt.Sprintf("Repository: %s", repo.FullName),
		fmt.Sprintf("Description: %s", description(repo)),
		fmt.Sprintf("Stars: %d", repo.StargazersCount),
		fmt.Sprintf("Forks: %d", repo.ForksCount),
		fmt.Sprintf("Language: %s", language(repo)),
		fmt.Sprintf("URL: %s", repo.HTMLURL),
		"",
		"Code inspection (limited sample):",
	}

	// Breadth-first over directories; one contents call per directory.
	queue := []string{""}
	filesAdded := 0

	for len(queue) > 0 && filesAdded < maxFiles {
		dir := queue[0]
		queue = queue[1:]

		entries, err := c.ListContents(ctx, id, dir)
		if err != nil {
			continue
		}

		for i := range entries {
			if filesAdded >= maxFiles {
				break
			}
			item := &entries[i]

			if item.Type == "dir" {
				queue = append(queue, item.Path)
				continue
			}
			if pathFilter != "" && !strings.Contains(strings.ToLower(item.Path), strings.ToLower(pathFilter)) {
				continue
			}
			// Skip very large files to avoid huge responses.
			if item.Size > inspectSnippetChars*inspectSizeFactor {
				continue
			}
			if !sourceExtensions[strings.ToLower(path.Ext(item.Path))] {
				continue
			}

			text, err := c.GetFileText(ctx, id, item.Path)
			if err != nil {
				continue
			}

			summary = append(summary,
				"",
				fmt.Sprintf("File: %s (approx. %d bytes)", item.Path, item.Size),
				"Code snippet:",
				truncateChars(text, inspectSnippetChars),
			)
			filesAdded++
		}
	}

	if filesAdded == 0 {
		summary = append(summary, "\nNo suitable code files were found with the current limits.")
	}

	return strings.Join(summary, "\n")
}

// RepositoryTree renders a depth-first folder/file tree limited to
// maxEntries entries, with directories grouped before files at each level.
func (c *Client) RepositoryTree(ctx context.Context, repoID string, maxEntries int) string {
	if maxEntries <= 0 {
		maxEntries = DefaultTreeMaxEntries
	}
	id := NormalizeRepo(repoID)

	repo, err := c.GetRepo(ctx, id)
	if err != nil {
		return fmt.Sprintf("Error getting folder structure for %s: %v", repoID, err)
	}

	lines := []string{
		fmt.Sprintf("Repository: %s", repo.FullName),
		fmt.Sprintf("URL: %s", repo.HTMLURL),
		"",
		fmt.Sprintf("Folder structure (up to %d entries):", maxEntries),
	}

	type frame struct {
		path  string
		depth int
	}
	stack := []frame{{"", 0}}
	entriesSeen := 0

	for len(stack) > 0 && entriesSeen < maxEntries {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := c.ListContents(ctx, id, top.path)
		if err != nil {
			continue
		}

		// Directories first, then by path, to keep siblings grouped.
		sort.SliceStable(entries, func(i, j int) bool {
			di, dj := entries[i].Type == "dir", entries[j].Type == "dir"
			if di != dj {
				return di
			}
			return entries[i].Path < entries[j].Path
		})

		for i := range entries {
			if entriesSeen >= maxEntries {
				break
			}
			item := &entries[i]
			indent := strings.Repeat("  ", top.depth)

			if item.Type == "dir" {
				lines = append(lines, fmt.Sprintf("%s[D] %s/", indent, path.Base(item.Path)))
				stack = append(stack, frame{item.Path, top.depth + 1})
			} else {
				lines = append(lines, fmt.Sprintf("%s[F] %s", indent, path.Base(item.Path)))
			}
			entriesSeen++
		}
	}

	if entriesSeen >= maxEntries {
		lines = append(lines, fmt.Sprintf(
			"\n(Tree truncated at %d entries to keep the response manageable.)", maxEntries,
		))
	}

	if entriesSeen == 0 {
		lines = append(lines, "No files or folders found in repository.")
	}

	return strings.Join(lines, "\n")
}

// InspectRepositoryFiles walks the repository breadth-first and emits an
// indented snippet for every text file, limited only by a coarse size-based
// binary heuristic.
func (c *Client) InspectRepositoryFiles(ctx context.Context, repoID string, maxFiles, maxChars int, pathFilter string) string {
	if maxFiles <= 0 {
		maxFiles = DefaultSnippetMaxFiles
	}
	if maxChars <= 0 {
		maxChars = DefaultSnippetChars
	}
	id := NormalizeRepo(repoID)

	repo, err := c.GetRepo(ctx, id)
	if err != nil {
		return fmt.Sprintf("Error inspecting files for %s: %v", repoID, err)
	}

	lines := []string{
		fmt.Sprintf("Repository: %s", repo.FullName),
		fmt.Sprintf("URL: %s", repo.HTMLURL),
		"",
		fmt.Sprintf("File snippets (up to %d files, %d characters each):", maxFiles, maxChars),
	}

	queue := []string{""}
	filesAdded := 0

	for len(queue) > 0 && filesAdded < maxFiles {
		dir := queue[0]
		queue = queue[1:]

		entries, err := c.ListContents(ctx, id, dir)
		if err != nil {
			continue
		}

		for i := range entries {
			if filesAdded >= maxFiles {
				break
			}
			item := &entries[i]

			if item.Type == "dir" {
				queue = append(queue, item.Path)
				continue
			}
			if pathFilter != "" && !strings.Contains(strings.ToLower(item.Path), strings.ToLower(pathFilter)) {
				continue
			}
			// Size hint doubles as a binary heuristic.
			if item.Size > maxChars*snippetSizeFactor {
				continue
			}

			text, err := c.GetFileText(ctx, id, item.Path)
			if err != nil {
				continue
			}

			snippet := truncateChars(text, maxChars)
			lines = append(lines,
				"",
				fmt.Sprintf("File: %s (approx. %d bytes)", item.Path, item.Size),
				"Snippet:",
				indentLines(snippet, "    "),
			)
			filesAdded++
		}
	}

	if filesAdded == 0 {
		lines = append(lines, "\nNo suitable text files were found with the current limits.")
	}

	return strings.Join(lines, "\n")
}

// truncateChars keeps the first max runes of s.
func truncateChars(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// indentLines prefixes every line of s with the given prefix.
func indentLines(s, prefix string) string {
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		parts[i] = prefix + p
	}
	return strings.Join(parts, "\n")
}
