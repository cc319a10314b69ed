package patterns

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

// TestAppleDocHandler tests recognition and rewriting of developer portal
// framework pages
func TestAppleDocHandler(t *testing.T) {
	h := AppleDocHandler{}

	tests := []struct {
		name      string
		url       string
		canHandle bool
		path      string
	}{
		{
			name:      "framework page",
			url:       "https://developer.apple.com/documentation/swiftui",
			canHandle: true,
			path:      "/tutorials/data/documentation/swiftui",
		},
		{
			name:      "nested symbol page",
			url:       "https://developer.apple.com/documentation/swiftui/view/body",
			canHandle: true,
			path:      "/tutorials/data/documentation/swiftui/view/body",
		},
		{
			name:      "www host alias",
			url:       "https://www.developer.apple.com/documentation/uikit",
			canHandle: true,
			path:      "/tutorials/data/documentation/uikit",
		},
		{
			name:      "documentation root is not a page",
			url:       "https://developer.apple.com/documentation",
			canHandle: false,
		},
		{
			name:      "other host",
			url:       "https://example.com/documentation/swiftui",
			canHandle: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := mustParse(t, tt.url)
			assert.Equal(t, tt.canHandle, h.CanHandle(u))
			if tt.canHandle {
				assert.Equal(t, tt.path, h.ResolveJSONPath(u))
			}
		})
	}
}

// TestAppleDocIndexHandler tests that only the bare documentation root maps
// to the table-of-contents response type
func TestAppleDocIndexHandler(t *testing.T) {
	h := AppleDocIndexHandler{}

	assert.True(t, h.CanHandle(mustParse(t, "https://developer.apple.com/documentation")))
	assert.True(t, h.CanHandle(mustParse(t, "https://developer.apple.com/documentation/")))
	assert.False(t, h.CanHandle(mustParse(t, "https://developer.apple.com/documentation/swiftui")))
	assert.Equal(t, ResponseTableOfContents, h.ResponseType())
}

// TestAppleTutorialHandler tests the data segment insertion on tutorials
// paths
func TestAppleTutorialHandler(t *testing.T) {
	h := AppleTutorialHandler{}

	tests := []struct {
		name string
		url  string
		path string
	}{
		{
			name: "tutorial page",
			url:  "https://developer.apple.com/tutorials/swiftui/creating-and-combining-views",
			path: "/tutorials/data/swiftui/creating-and-combining-views",
		},
		{
			name: "data segment already present",
			url:  "https://developer.apple.com/tutorials/data/swiftui",
			path: "/tutorials/data/swiftui",
		},
		{
			name: "tutorials root",
			url:  "https://developer.apple.com/tutorials",
			path: "/tutorials/data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := mustParse(t, tt.url)
			require.True(t, h.CanHandle(u))
			assert.Equal(t, tt.path, h.ResolveJSONPath(u))
		})
	}
}

// TestPackageIndexHandler tests rewriting of Swift Package Index
// documentation URLs
func TestPackageIndexHandler(t *testing.T) {
	h := PackageIndexHandler{}

	tests := []struct {
		name string
		url  string
		path string
	}{
		{
			name: "documentation path gains data segment",
			url:  "https://swiftpackageindex.com/apple/swift-nio/2.65.0/documentation/niocore",
			path: "/apple/swift-nio/2.65.0/data/documentation/niocore",
		},
		{
			name: "data segment is not duplicated",
			url:  "https://swiftpackageindex.com/apple/swift-nio/data/documentation/niocore",
			path: "/apple/swift-nio/data/documentation/niocore",
		},
		{
			name: "path without documentation segment is wrapped",
			url:  "https://swiftpackageindex.com/apple/swift-nio",
			path: "/data/documentation/apple/swift-nio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := mustParse(t, tt.url)
			require.True(t, h.CanHandle(u))
			assert.Equal(t, tt.path, h.ResolveJSONPath(u))
		})
	}
}

// TestGitHubPagesHandler tests that prefixes ahead of the documentation
// segment survive the rewrite
func TestGitHubPagesHandler(t *testing.T) {
	h := GitHubPagesHandler{}

	tests := []struct {
		name string
		url  string
		path string
	}{
		{
			name: "project prefix preserved",
			url:  "https://acme.github.io/widget-kit/documentation/widgetkit",
			path: "/widget-kit/data/documentation/widgetkit",
		},
		{
			name: "version prefix preserved",
			url:  "https://acme.github.io/widget-kit/2.1.0/documentation/widgetkit",
			path: "/widget-kit/2.1.0/data/documentation/widgetkit",
		},
		{
			name: "already rewritten path unchanged",
			url:  "https://acme.github.io/widget-kit/data/documentation/widgetkit",
			path: "/widget-kit/data/documentation/widgetkit",
		},
		{
			name: "no documentation segment wraps whole path",
			url:  "https://acme.github.io/widget-kit",
			path: "/data/documentation/widget-kit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := mustParse(t, tt.url)
			require.True(t, h.CanHandle(u))
			assert.Equal(t, tt.path, h.ResolveJSONPath(u))
		})
	}

	assert.False(t, h.CanHandle(mustParse(t, "https://example.com/documentation/x")))
}

// TestGitHubRepoHandler tests the deferred marker for bare repository
// references
func TestGitHubRepoHandler(t *testing.T) {
	h := GitHubRepoHandler{}

	u := mustParse(t, "https://github.com/apple/swift-nio")
	require.True(t, h.CanHandle(u))
	assert.Equal(t, ResponseCustom, h.ResponseType())
	assert.Equal(t, "github://apple/swift-nio", h.ResolveJSONPath(u))

	owner, repo, ok := ParseDeferred(h.ResolveJSONPath(u))
	require.True(t, ok)
	assert.Equal(t, "apple", owner)
	assert.Equal(t, "swift-nio", repo)

	// .git suffix stripped
	assert.Equal(t, "github://apple/swift-nio",
		h.ResolveJSONPath(mustParse(t, "https://github.com/apple/swift-nio.git")))

	// owner-only URLs are not repository references
	assert.False(t, h.CanHandle(mustParse(t, "https://github.com/apple")))
}

// TestGenericHandler tests the catch-all accepts any URL
func TestGenericHandler(t *testing.T) {
	h := GenericHandler{}

	assert.True(t, h.CanHandle(mustParse(t, "https://docs.example.org/anything")))
	assert.Equal(t, "/data/documentation/mylib",
		h.ResolveJSONPath(mustParse(t, "https://docs.example.org/mylib")))
	assert.Equal(t, "/data/documentation/mylib",
		h.ResolveJSONPath(mustParse(t, "https://docs.example.org/data/documentation/mylib")))
	assert.Equal(t, "/data/documentation",
		h.ResolveJSONPath(mustParse(t, "https://docs.example.org/")))
}

// TestParseDeferred tests marker round-tripping and rejection of malformed
// markers
func TestParseDeferred(t *testing.T) {
	owner, repo, ok := ParseDeferred(DeferredPath("acme", "widget-kit"))
	require.True(t, ok)
	assert.Equal(t, "acme", owner)
	assert.Equal(t, "widget-kit", repo)

	_, _, ok = ParseDeferred("/data/documentation/widgetkit")
	assert.False(t, ok)

	_, _, ok = ParseDeferred("github://missing-repo")
	assert.False(t, ok)
}
