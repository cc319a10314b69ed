package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTitle tests first-heading extraction
func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "simple heading",
			src:  "# WidgetKit\n\nBuild widgets.\n",
			want: "WidgetKit",
		},
		{
			name: "backticks stripped",
			src:  "# `WidgetKit`\n\nBuild widgets.\n",
			want: "WidgetKit",
		},
		{
			name: "heading after prose",
			src:  "Some intro text.\n\n# Real Title\n",
			want: "Real Title",
		},
		{
			name: "subheading is not a title",
			src:  "## Section\n\nText.\n",
			want: "",
		},
		{
			name: "empty document",
			src:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.src))
		})
	}
}

// TestAbstract tests first-paragraph extraction
func TestAbstract(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "first prose line",
			src:  "# Title\n\nThe abstract line.\n\nMore text.\n",
			want: "The abstract line.",
		},
		{
			name: "headings and lists skipped",
			src:  "# Title\n## Sub\n- item one\n* item two\n1. ordered\n\nActual abstract.\n",
			want: "Actual abstract.",
		},
		{
			name: "no prose",
			src:  "# Title\n- only\n- lists\n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Abstract(tt.src))
		})
	}
}

// TestSynthesize tests render node construction from markdown source
func TestSynthesize(t *testing.T) {
	node, err := Synthesize("# `WidgetKit`\n\nBuild widgets fast.\n", "https://github.com/acme/widget-kit")
	require.NoError(t, err)

	assert.Equal(t, "WidgetKit", node.Metadata.Title)
	assert.Equal(t, "Build widgets fast.", node.AbstractText())
	assert.Equal(t, "article", node.Kind)
	assert.Equal(t, "https://github.com/acme/widget-kit", node.Identifier.URL)
	assert.Equal(t, "swift", node.Identifier.InterfaceLanguage)
	assert.Equal(t, "0.3.0", node.SchemaVersion.String())
}

// TestSynthesize_NoTitle tests rejection of sources without a heading
func TestSynthesize_NoTitle(t *testing.T) {
	_, err := Synthesize("just text, no heading\n", "https://example.com")
	assert.ErrorIs(t, err, ErrNoTitle)
}
