// Package output renders decoded documentation to markdown with YAML
// frontmatter and writes it to the filesystem.
package output

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/swiftdocs-go/internal/domain"
)

// Frontmatter is the YAML metadata block prepended to rendered markdown
type Frontmatter struct {
	Title         string `yaml:"title"`
	URL           string `yaml:"url,omitempty"`
	Kind          string `yaml:"kind,omitempty"`
	Language      string `yaml:"language,omitempty"`
	SchemaVersion string `yaml:"schema_version"`
	FetchedAt     string `yaml:"fetched_at"`
}

// RenderMarkdown converts a render node to a markdown document with
// frontmatter.
func RenderMarkdown(node *domain.RenderNode, fetchedAt time.Time) (string, error) {
	fm := Frontmatter{
		Title:         node.Title(),
		URL:           node.Identifier.URL,
		Kind:          node.Metadata.Role,
		Language:      node.Identifier.InterfaceLanguage,
		SchemaVersion: node.SchemaVersion.String(),
		FetchedAt:     fetchedAt.UTC().Format(time.RFC3339),
	}

	meta, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("failed to marshal frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	b.WriteString("# " + node.Title() + "\n")
	if abstract := node.AbstractText(); abstract != "" {
		b.WriteString("\n" + abstract + "\n")
	}
	return b.String(), nil
}

// Summary returns a short terminal-friendly description of a render node.
func Summary(node *domain.RenderNode) string {
	var b strings.Builder
	b.WriteString(node.Title())
	if role := node.Metadata.RoleHeading; role != "" {
		b.WriteString(" (" + role + ")")
	} else if node.Metadata.Role != "" {
		b.WriteString(" (" + node.Metadata.Role + ")")
	}
	if abstract := node.AbstractText(); abstract != "" {
		b.WriteString("\n" + abstract)
	}
	if node.Identifier.URL != "" {
		b.WriteString("\n" + node.Identifier.URL)
	}
	return b.String()
}
