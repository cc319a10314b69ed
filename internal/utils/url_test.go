package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsHTTPURL tests scheme detection
func TestIsHTTPURL(t *testing.T) {
	assert.True(t, IsHTTPURL("https://example.com"))
	assert.True(t, IsHTTPURL("http://example.com/path"))
	assert.False(t, IsHTTPURL("ftp://example.com"))
	assert.False(t, IsHTTPURL("example.com"))
	assert.False(t, IsHTTPURL("owner/repo"))
}

// TestIsOwnerRepoRef tests bare repository reference detection
func TestIsOwnerRepoRef(t *testing.T) {
	assert.True(t, IsOwnerRepoRef("apple/swift-nio"))
	assert.True(t, IsOwnerRepoRef("acme/widget-kit"))
	assert.True(t, IsOwnerRepoRef("/apple/swift-nio/"))

	assert.False(t, IsOwnerRepoRef("apple"))
	assert.False(t, IsOwnerRepoRef("apple/swift-nio/extra"))
	assert.False(t, IsOwnerRepoRef("developer.apple.com/documentation"))
	assert.False(t, IsOwnerRepoRef(""))
	assert.False(t, IsOwnerRepoRef("//"))
}

// TestSplitOwnerRepo tests splitting and .git stripping
func TestSplitOwnerRepo(t *testing.T) {
	owner, repo, ok := SplitOwnerRepo("apple/swift-nio.git")
	assert.True(t, ok)
	assert.Equal(t, "apple", owner)
	assert.Equal(t, "swift-nio", repo)

	_, _, ok = SplitOwnerRepo("just-one")
	assert.False(t, ok)
}
