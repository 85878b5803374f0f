// ABOUTME: Shared httptest fixture simulating the GitHub REST API
// ABOUTME: Serves users, paginated repo lists, contents listings, and readmes from in-memory data

package github

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"sort"
	"strconv"
	"strings"
	"testing"
)

// fakeGitHub is an in-memory stand-in for the GitHub REST API.
type fakeGitHub struct {
	users map[string]User
	// repos per user login, in listing order
	userRepos map[string][]Repository
	// repo metadata by "owner/name"
	repos map[string]Repository
	// file contents by "owner/name" then path
	files map[string]map[string]string
	// readme text by "owner/name"
	readmes map[string]string
	// request counter, for call-shape assertions
	requests int
}

func (f *fakeGitHub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.requests++
		p := strings.TrimPrefix(r.URL.Path, "/")
		parts := strings.Split(p, "/")

		switch {
		case len(parts) == 2 && parts[0] == "users":
			if u, ok := f.users[parts[1]]; ok {
				writeJSON(w, u)
				return
			}
			notFound(w)
		case len(parts) == 3 && parts[0] == "users" && parts[2] == "repos":
			repos, ok := f.userRepos[parts[1]]
			if !ok {
				notFound(w)
				return
			}
			writeJSON(w, pageOf(repos, r))
		case len(parts) == 3 && parts[0] == "repos":
			if repo, ok := f.repos[parts[1]+"/"+parts[2]]; ok {
				writeJSON(w, repo)
				return
			}
			notFound(w)
		case len(parts) == 4 && parts[0] == "repos" && parts[3] == "readme":
			id := parts[1] + "/" + parts[2]
			if text, ok := f.readmes[id]; ok {
				writeJSON(w, ContentEntry{
					Type:     "file",
					Name:     "README.md",
					Path:     "README.md",
					Size:     len(text),
					Content:  base64.StdEncoding.EncodeToString([]byte(text)),
					Encoding: "base64",
				})
				return
			}
			notFound(w)
		case len(parts) >= 4 && parts[0] == "repos" && parts[3] == "contents":
			id := parts[1] + "/" + parts[2]
			sub := strings.Join(parts[4:], "/")
			f.serveContents(w, id, sub)
		default:
			notFound(w)
		}
	}
}

func (f *fakeGitHub) serveContents(w http.ResponseWriter, repoID, sub string) {
	files, ok := f.files[repoID]
	if !ok {
		notFound(w)
		return
	}

	// Exact file hit.
	if content, ok := files[sub]; ok {
		writeJSON(w, ContentEntry{
			Type:     "file",
			Name:     path.Base(sub),
			Path:     sub,
			Size:     len(content),
			Content:  base64.StdEncoding.EncodeToString([]byte(content)),
			Encoding: "base64",
		})
		return
	}

	// Directory listing: immediate children of sub.
	prefix := sub
	if prefix != "" {
		prefix += "/"
	}
	seen := map[string]ContentEntry{}
	for fp, content := range files {
		if !strings.HasPrefix(fp, prefix) {
			continue
		}
		rest := strings.TrimPrefix(fp, prefix)
		if rest == "" {
			continue
		}
		if idx := strings.Index(rest, "/"); idx >= 0 {
			dir := prefix + rest[:idx]
			seen[dir] = ContentEntry{Type: "dir", Name: rest[:idx], Path: dir}
		} else {
			seen[fp] = ContentEntry{Type: "file", Name: rest, Path: fp, Size: len(content)}
		}
	}
	if len(seen) == 0 && sub != "" {
		notFound(w)
		return
	}

	entries := make([]ContentEntry, 0, len(seen))
	for _, e := range seen {
		entries = append(entries, e)
	}
	// The real API lists alphabetically.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	writeJSON(w, entries)
}

func pageOf(repos []Repository, r *http.Request) []Repository {
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage <= 0 {
		perPage = 30
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= len(repos) {
		return []Repository{}
	}
	end := start + perPage
	if end > len(repos) {
		end = len(repos)
	}
	return repos[start:end]
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func notFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"message": "Not Found"}`))
}

// newTestClient starts a fake API server and returns a client against it.
func newTestClient(t *testing.T, f *fakeGitHub) *Client {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	return NewWithBaseURL(srv.URL, "")
}
