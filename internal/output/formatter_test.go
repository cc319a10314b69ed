package output

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/swiftdocs-go/internal/domain"
)

func sampleNode() *domain.RenderNode {
	return &domain.RenderNode{
		SchemaVersion: domain.SchemaVersion{Major: 0, Minor: 3, Patch: 0},
		Kind:          "symbol",
		Identifier: domain.Identifier{
			URL:               "doc://example/documentation/widgetkit",
			InterfaceLanguage: "swift",
		},
		Metadata: domain.NodeMetadata{
			Title:       "WidgetKit",
			Role:        "collection",
			RoleHeading: "Framework",
		},
		Abstract: []domain.TextFragment{
			{Type: "text", Text: "Build widgets fast."},
		},
	}
}

// TestRenderMarkdown tests frontmatter and body layout
func TestRenderMarkdown(t *testing.T) {
	fetchedAt := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	got, err := RenderMarkdown(sampleNode(), fetchedAt)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "---\n"))
	assert.Contains(t, got, "title: WidgetKit\n")
	assert.Contains(t, got, "schema_version: 0.3.0\n")
	assert.Contains(t, got, "fetched_at: \"2026-08-30T12:00:00Z\"\n")
	assert.Contains(t, got, "\n---\n\n# WidgetKit\n")
	assert.Contains(t, got, "\nBuild widgets fast.\n")
}

// TestSummary tests the terminal summary line
func TestSummary(t *testing.T) {
	got := Summary(sampleNode())

	assert.Contains(t, got, "WidgetKit (Framework)")
	assert.Contains(t, got, "Build widgets fast.")
	assert.Contains(t, got, "doc://example/documentation/widgetkit")
}

// TestWriter tests writing and the force flag
func TestWriter(t *testing.T) {
	dir := t.TempDir()
	node := sampleNode()
	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	w := NewWriter(WriterOptions{BaseDir: dir})
	path, err := w.Write(node, early)
	require.NoError(t, err)
	assert.Equal(t, w.Path(node), path)

	// Existing files are kept without force
	_, err = w.Write(node, late)
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "2026-01-01T00:00:00Z")

	// force overwrites
	forced := NewWriter(WriterOptions{BaseDir: dir, Force: true})
	_, err = forced.Write(node, late)
	require.NoError(t, err)
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "2026-08-30T00:00:00Z")
}

// TestSlugify tests output filename derivation
func TestSlugify(t *testing.T) {
	assert.Equal(t, "widgetkit", slugify("WidgetKit"))
	assert.Equal(t, "widget-kit-2-0", slugify("Widget Kit 2.0"))
	assert.Equal(t, "", slugify("!!!"))
}
