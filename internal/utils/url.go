package utils

import (
	"net/url"
	"strings"
)

// IsHTTPURL checks if a URL uses HTTP or HTTPS scheme
func IsHTTPURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// IsOwnerRepoRef reports whether s looks like a bare "owner/repo" reference:
// exactly two non-empty path segments and no host-like dot in the first.
func IsOwnerRepoRef(s string) bool {
	parts := strings.Split(strings.Trim(s, "/"), "/")
	if len(parts) != 2 {
		return false
	}
	if parts[0] == "" || parts[1] == "" {
		return false
	}
	return !strings.Contains(parts[0], ".")
}

// SplitOwnerRepo splits an "owner/repo" reference, stripping a trailing .git
// suffix from the repository name.
func SplitOwnerRepo(s string) (owner, repo string, ok bool) {
	parts := strings.Split(strings.Trim(s, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), true
}
