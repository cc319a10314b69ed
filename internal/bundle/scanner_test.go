package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// TestScanner_Scan tests bundle discovery in a directory tree
func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Sources", "WidgetKit", "Documentation.docc", "WidgetKit.md"), "# WidgetKit\n\nBuild widgets.\n")
	writeFile(t, filepath.Join(root, "Sources", "WidgetKit", "Documentation.docc", "guides", "Setup.md"), "# Setup\n")
	writeFile(t, filepath.Join(root, "Sources", "Other", "README.md"), "# Not a bundle\n")

	scanner := NewScanner(nil)
	bundles, err := scanner.Scan(root)
	require.NoError(t, err)
	require.Len(t, bundles, 1)

	b := bundles[0]
	assert.Equal(t, "Documentation", b.Name)
	assert.Len(t, b.Markdown, 2)
}

// TestScanner_Scan_Empty tests an empty tree
func TestScanner_Scan_Empty(t *testing.T) {
	scanner := NewScanner(nil)
	bundles, err := scanner.Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, bundles)
}

// TestScanner_Synthesize tests render node synthesis from the first usable
// article, skipping guides
func TestScanner_Synthesize(t *testing.T) {
	root := t.TempDir()
	bundleDir := filepath.Join(root, "Documentation.docc")
	writeFile(t, filepath.Join(bundleDir, "guides", "AAA.md"), "# Guide\n\nShould be skipped.\n")
	writeFile(t, filepath.Join(bundleDir, "WidgetKit.md"), "# `WidgetKit`\n\nBuild widgets fast.\n")

	scanner := NewScanner(nil)
	bundles, err := scanner.Scan(root)
	require.NoError(t, err)
	require.Len(t, bundles, 1)

	node, err := scanner.Synthesize(bundles[0])
	require.NoError(t, err)
	assert.Equal(t, "WidgetKit", node.Metadata.Title)
	assert.Equal(t, "Build widgets fast.", node.AbstractText())
}

// TestScanner_Synthesize_NoArticles tests the error when no article has a
// title
func TestScanner_Synthesize_NoArticles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Documentation.docc", "notes.md"), "no heading here\n")

	scanner := NewScanner(nil)
	bundles, err := scanner.Scan(root)
	require.NoError(t, err)
	require.Len(t, bundles, 1)

	_, err = scanner.Synthesize(bundles[0])
	assert.Error(t, err)
}
