// Package patterns maps documentation-site URLs onto the paths of the JSON
// render-node artifacts behind them. Each hosting convention is one Handler;
// the Registry dispatches to the highest-priority handler that recognizes a
// URL. A catch-all handler guarantees dispatch always succeeds.
package patterns

import (
	"net/url"
	"strings"
)

// ResponseType tags the kind of payload a handler's path points at.
type ResponseType string

const (
	ResponseRenderNode      ResponseType = "renderNode"
	ResponseTableOfContents ResponseType = "tableOfContents"
	ResponseSearchIndex     ResponseType = "searchIndex"
	ResponseCustom          ResponseType = "custom"
)

// DeferredPrefix marks a candidate path that encodes an owner/repo reference
// and must go through repository resolution before any fetch is attempted.
const DeferredPrefix = "github://"

// Handler recognizes one hosting convention and rewrites a URL's path into a
// candidate JSON artifact path. Handlers are stateless and safe for
// concurrent use.
type Handler interface {
	// Identifier is the unique handler name
	Identifier() string
	// Priority orders dispatch; higher is checked first
	Priority() int
	// ResponseType tags what the resolved path points at
	ResponseType() ResponseType
	// CanHandle reports whether this handler recognizes the URL
	CanHandle(u *url.URL) bool
	// ResolveJSONPath rewrites the URL's path into a candidate artifact
	// path, without the .json suffix
	ResolveJSONPath(u *url.URL) string
}

// DeferredPath builds a deferred-marker candidate path for owner/repo.
func DeferredPath(owner, repo string) string {
	return DeferredPrefix + owner + "/" + repo
}

// ParseDeferred extracts owner/repo from a deferred-marker path.
func ParseDeferred(candidate string) (owner, repo string, ok bool) {
	if !strings.HasPrefix(candidate, DeferredPrefix) {
		return "", "", false
	}
	ref := strings.TrimPrefix(candidate, DeferredPrefix)
	parts := strings.SplitN(ref, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// insertDataSegment places a "data" segment immediately before the first
// "documentation" segment of p, preserving everything ahead of it (version
// and project prefixes included). The second return reports whether a
// documentation segment was found.
func insertDataSegment(p string) (string, bool) {
	segs := strings.Split(strings.Trim(p, "/"), "/")
	for i, s := range segs {
		if s != "documentation" {
			continue
		}
		if i > 0 && segs[i-1] == "data" {
			return "/" + strings.Join(segs, "/"), true
		}
		out := make([]string, 0, len(segs)+1)
		out = append(out, segs[:i]...)
		out = append(out, "data")
		out = append(out, segs[i:]...)
		return "/" + strings.Join(out, "/"), true
	}
	return p, false
}

// wrapDataDocumentation wraps a whole path under data/documentation/.
func wrapDataDocumentation(p string) string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return "/data/documentation"
	}
	return "/data/documentation/" + trimmed
}

func pathSegments(p string) []string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
