// ABOUTME: Identifier normalization for GitHub users and repositories
// ABOUTME: Accepts bare handles, owner/name pairs, and full profile/repo URLs

package github

import "strings"

// hostMarker is the token that separates URL noise from the identifier.
const hostMarker = "github.com/"

// NormalizeUser reduces a username or profile URL to a bare login.
//
//	"https://github.com/alice"  -> "alice"
//	"github.com/alice/"         -> "alice"
//	"alice"                     -> "alice"
func NormalizeUser(user string) string {
	user = strings.TrimSpace(user)
	if idx := strings.Index(user, hostMarker); idx >= 0 {
		user = user[idx+len(hostMarker):]
	}
	if idx := strings.Index(user, "/"); idx >= 0 {
		user = user[:idx]
	}
	return strings.TrimSpace(user)
}

// NormalizeRepo reduces a repository identifier or URL to "owner/name" form.
// Query strings, fragments, and trailing slashes are stripped.
//
//	"https://github.com/foo/bar/?x=1" -> "foo/bar"
//	"foo/bar"                         -> "foo/bar"
func NormalizeRepo(repo string) string {
	repo = strings.TrimSpace(repo)
	if idx := strings.Index(repo, hostMarker); idx >= 0 {
		repo = repo[idx+len(hostMarker):]
	}
	if idx := strings.Index(repo, "#"); idx >= 0 {
		repo = repo[:idx]
	}
	if idx := strings.Index(repo, "?"); idx >= 0 {
		repo = repo[:idx]
	}
	return strings.Trim(repo, "/")
}
