// ABOUTME: Thin GitHub REST client used by the report operations
// ABOUTME: Maps API status codes to sentinel errors and decodes base64 file content

package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// Error constants
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidToken  = errors.New("invalid token")
	ErrRateLimited   = errors.New("rate limit exceeded")
	ErrRequestFailed = errors.New("could not obtain data from the GitHub API")
)

// User is a GitHub user profile.
type User struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	HTMLURL     string `json:"html_url"`
}

// Repository is GitHub repository metadata.
type Repository struct {
	FullName        string `json:"full_name"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	Language        string `json:"language"`
	HTMLURL         string `json:"html_url"`
}

// ContentEntry is one entry from the repository contents API: a file or a
// directory. For file lookups the base64 content is populated.
type ContentEntry struct {
	Type     string `json:"type"` // "file" or "dir"
	Name     string `json:"name"`
	Path     string `json:"path"`
	Size     int    `json:"size"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// apiError is the JSON error body GitHub returns on failures.
type apiError struct {
	Message string `json:"message"`
}

// Client performs read-only calls against the GitHub REST API.
// A zero token is allowed; requests are then unauthenticated and
// subject to lower rate limits.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger
}

// New creates a client against the public GitHub API.
func New(token string) *Client {
	return NewWithBaseURL(DefaultBaseURL, token)
}

// NewWithBaseURL creates a client against a custom API endpoint. Used by tests.
func NewWithBaseURL(baseURL, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		logger:     slog.Default().With("component", "github"),
	}
}

// get performs a GET against the API and decodes the JSON response into v.
func (c *Client) get(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, apiMessage(body))
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrInvalidToken, apiMessage(body))
	case http.StatusForbidden:
		if resp.Header.Get("X-RateLimit-Remaining") == "0" {
			return fmt.Errorf("%w: %s", ErrRateLimited, apiMessage(body))
		}
		return fmt.Errorf("%w: HTTP 403: %s", ErrRequestFailed, apiMessage(body))
	default:
		return fmt.Errorf("%w: HTTP %d: %s", ErrRequestFailed, resp.StatusCode, apiMessage(body))
	}
}

// apiMessage extracts the "message" field from a GitHub error body.
func apiMessage(body []byte) string {
	var e apiError
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(string(body))
}

// GetUser fetches a user profile by login.
func (c *Client) GetUser(ctx context.Context, login string) (*User, error) {
	var u User
	if err := c.get(ctx, "/users/"+url.PathEscape(login), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// repoPageSize is the per_page value used for repository listing.
const repoPageSize = 100

// ListRepos fetches up to max repositories for a user, in the API's default
// iteration order, following pagination until the cap or the last page.
func (c *Client) ListRepos(ctx context.Context, login string, max int) ([]Repository, error) {
	var repos []Repository
	for page := 1; len(repos) < max; page++ {
		endpoint := fmt.Sprintf("/users/%s/repos?per_page=%d&page=%d", url.PathEscape(login), repoPageSize, page)
		var batch []Repository
		if err := c.get(ctx, endpoint, &batch); err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}
		repos = append(repos, batch...)
		if len(batch) < repoPageSize {
			break
		}
	}
	if len(repos) > max {
		repos = repos[:max]
	}
	return repos, nil
}

// GetRepo fetches repository metadata for a normalized "owner/name" id.
func (c *Client) GetRepo(ctx context.Context, repoID string) (*Repository, error) {
	var r Repository
	if err := c.get(ctx, "/repos/"+repoID, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListContents fetches the directory listing at path within a repository.
// An empty path lists the repository root.
func (c *Client) ListContents(ctx context.Context, repoID, path string) ([]ContentEntry, error) {
	endpoint := "/repos/" + repoID + "/contents/" + escapePath(path)
	body, err := c.getRaw(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	// The contents API returns an array for directories and an object for files.
	var entries []ContentEntry
	if err := json.Unmarshal(body, &entries); err == nil {
		return entries, nil
	}
	var single ContentEntry
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, fmt.Errorf("decoding contents: %w", err)
	}
	return []ContentEntry{single}, nil
}

// GetFileText fetches a file's content and decodes it to text. Bytes that are
// not valid UTF-8 are dropped, matching a lossy text decode.
func (c *Client) GetFileText(ctx context.Context, repoID, path string) (string, error) {
	var entry ContentEntry
	endpoint := "/repos/" + repoID + "/contents/" + escapePath(path)
	if err := c.get(ctx, endpoint, &entry); err != nil {
		return "", err
	}
	return decodeContent(&entry)
}

// GetReadmeText fetches the repository readme decoded as text.
func (c *Client) GetReadmeText(ctx context.Context, repoID string) (string, error) {
	var entry ContentEntry
	if err := c.get(ctx, "/repos/"+repoID+"/readme", &entry); err != nil {
		return "", err
	}
	return decodeContent(&entry)
}

// getRaw performs a GET and returns the raw body, applying the same
// status-code mapping as get.
func (c *Client) getRaw(ctx context.Context, endpoint string) ([]byte, error) {
	var raw json.RawMessage
	if err := c.get(ctx, endpoint, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// decodeContent turns a contents API entry into text.
func decodeContent(entry *ContentEntry) (string, error) {
	if entry.Encoding != "" && entry.Encoding != "base64" {
		return "", fmt.Errorf("unsupported content encoding %q", entry.Encoding)
	}
	// GitHub wraps base64 payloads in newlines.
	compact := strings.ReplaceAll(entry.Content, "\n", "")
	data, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return "", fmt.Errorf("decoding content: %w", err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

// escapePath escapes a repository path segment by segment, keeping slashes.
func escapePath(p string) string {
	if p == "" {
		return ""
	}
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
