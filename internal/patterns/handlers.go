package patterns

import (
	"net/url"
	"strings"
)

// Hosting conventions recognized by the built-in handlers.
const (
	AppleHost         = "developer.apple.com"
	PackageIndexHost  = "swiftpackageindex.com"
	PagesHostSuffix   = ".github.io"
	GitHubHost        = "github.com"
	TutorialsDataPath = "/tutorials/data"
)

// Handler identifiers.
const (
	AppleDocIdentifier      = "apple-documentation"
	AppleDocIndexIdentifier = "apple-documentation-index"
	AppleTutorialIdentifier = "apple-tutorials"
	PackageIndexIdentifier  = "swift-package-index"
	GitHubRepoIdentifier    = "github-repository"
	GitHubPagesIdentifier   = "github-pages"
	GenericIdentifier       = "generic"
)

func hostEquals(u *url.URL, host string) bool {
	h := strings.ToLower(u.Hostname())
	return h == host || h == "www."+host
}

// AppleDocHandler matches framework pages under /documentation/ on the Apple
// developer portal. Their render-node JSON lives under the internal
// tutorials/data prefix.
type AppleDocHandler struct{}

func (AppleDocHandler) Identifier() string         { return AppleDocIdentifier }
func (AppleDocHandler) Priority() int              { return 90 }
func (AppleDocHandler) ResponseType() ResponseType { return ResponseRenderNode }

func (AppleDocHandler) CanHandle(u *url.URL) bool {
	return hostEquals(u, AppleHost) && strings.HasPrefix(u.Path, "/documentation/")
}

func (AppleDocHandler) ResolveJSONPath(u *url.URL) string {
	return TutorialsDataPath + u.Path
}

// AppleDocIndexHandler matches the bare /documentation aggregation root. Its
// JSON is a table of contents with an incompatible schema, so callers must
// short-circuit with guidance instead of fetching.
type AppleDocIndexHandler struct{}

func (AppleDocIndexHandler) Identifier() string         { return AppleDocIndexIdentifier }
func (AppleDocIndexHandler) Priority() int              { return 100 }
func (AppleDocIndexHandler) ResponseType() ResponseType { return ResponseTableOfContents }

func (AppleDocIndexHandler) CanHandle(u *url.URL) bool {
	p := strings.TrimSuffix(u.Path, "/")
	return hostEquals(u, AppleHost) && p == "/documentation"
}

func (AppleDocIndexHandler) ResolveJSONPath(u *url.URL) string {
	return u.Path
}

// AppleTutorialHandler matches tutorials pages on the Apple developer portal
// and inserts the data directory segment when it is missing.
type AppleTutorialHandler struct{}

func (AppleTutorialHandler) Identifier() string         { return AppleTutorialIdentifier }
func (AppleTutorialHandler) Priority() int              { return 80 }
func (AppleTutorialHandler) ResponseType() ResponseType { return ResponseRenderNode }

func (AppleTutorialHandler) CanHandle(u *url.URL) bool {
	return hostEquals(u, AppleHost) && strings.HasPrefix(u.Path, "/tutorials")
}

func (AppleTutorialHandler) ResolveJSONPath(u *url.URL) string {
	if strings.HasPrefix(u.Path, TutorialsDataPath+"/") || u.Path == TutorialsDataPath {
		return u.Path
	}
	rest := strings.Trim(strings.TrimPrefix(u.Path, "/tutorials"), "/")
	if rest == "" {
		return TutorialsDataPath
	}
	return TutorialsDataPath + "/" + rest
}

// PackageIndexHandler matches the Swift Package Index documentation mirror
// and ensures a data segment precedes the documentation segment.
type PackageIndexHandler struct{}

func (PackageIndexHandler) Identifier() string         { return PackageIndexIdentifier }
func (PackageIndexHandler) Priority() int              { return 70 }
func (PackageIndexHandler) ResponseType() ResponseType { return ResponseRenderNode }

func (PackageIndexHandler) CanHandle(u *url.URL) bool {
	return hostEquals(u, PackageIndexHost)
}

func (PackageIndexHandler) ResolveJSONPath(u *url.URL) string {
	if p, ok := insertDataSegment(u.Path); ok {
		return p
	}
	return wrapDataDocumentation(u.Path)
}

// GitHubRepoHandler matches bare repository references on the source host.
// It produces no directly fetchable path; the deferred marker routes the
// request through repository resolution.
type GitHubRepoHandler struct{}

func (GitHubRepoHandler) Identifier() string         { return GitHubRepoIdentifier }
func (GitHubRepoHandler) Priority() int              { return 60 }
func (GitHubRepoHandler) ResponseType() ResponseType { return ResponseCustom }

func (GitHubRepoHandler) CanHandle(u *url.URL) bool {
	if !hostEquals(u, GitHubHost) {
		return false
	}
	return len(pathSegments(u.Path)) >= 2
}

func (GitHubRepoHandler) ResolveJSONPath(u *url.URL) string {
	segs := pathSegments(u.Path)
	if len(segs) < 2 {
		return ""
	}
	return DeferredPath(segs[0], strings.TrimSuffix(segs[1], ".git"))
}

// GitHubPagesHandler matches DocC static exports on *.github.io. The rewrite
// preserves any version or project prefix ahead of the documentation
// segment; paths without one are wrapped whole.
type GitHubPagesHandler struct{}

func (GitHubPagesHandler) Identifier() string         { return GitHubPagesIdentifier }
func (GitHubPagesHandler) Priority() int              { return 50 }
func (GitHubPagesHandler) ResponseType() ResponseType { return ResponseRenderNode }

func (GitHubPagesHandler) CanHandle(u *url.URL) bool {
	return strings.HasSuffix(strings.ToLower(u.Hostname()), PagesHostSuffix)
}

func (GitHubPagesHandler) ResolveJSONPath(u *url.URL) string {
	if p, ok := insertDataSegment(u.Path); ok {
		return p
	}
	return wrapDataDocumentation(u.Path)
}

// GenericHandler is the catch-all. It matches unconditionally at priority
// zero and assumes the standard DocC data/documentation layout.
type GenericHandler struct{}

func (GenericHandler) Identifier() string         { return GenericIdentifier }
func (GenericHandler) Priority() int              { return 0 }
func (GenericHandler) ResponseType() ResponseType { return ResponseRenderNode }

func (GenericHandler) CanHandle(*url.URL) bool { return true }

func (GenericHandler) ResolveJSONPath(u *url.URL) string {
	trimmed := strings.Trim(u.Path, "/")
	if strings.HasPrefix(trimmed, "data/documentation/") || trimmed == "data/documentation" {
		return "/" + trimmed
	}
	return wrapDataDocumentation(u.Path)
}
