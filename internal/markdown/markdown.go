// Package markdown extracts render-node metadata from raw markdown. It backs
// the last-resort path of repository resolution and local bundle scanning,
// where no JSON artifact exists and a minimal one is synthesized.
package markdown

import (
	"errors"
	"strings"
	"unicode"

	"github.com/quantmind-br/swiftdocs-go/internal/domain"
)

// ErrNoTitle indicates the markdown has no level-1 heading
var ErrNoTitle = errors.New("markdown has no level-1 heading")

// Title returns the first level-1 heading with inline-code markers stripped.
// Returns "" when the document has none.
func Title(src string) string {
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			title := strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
			return strings.ReplaceAll(title, "`", "")
		}
	}
	return ""
}

// Abstract returns the first non-empty line that is neither a heading nor a
// list item.
func Abstract(src string) string {
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || isListItem(trimmed) {
			continue
		}
		return trimmed
	}
	return ""
}

func isListItem(line string) bool {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "+ ") {
		return true
	}
	// Ordered list: digits followed by a dot or paren
	i := 0
	for i < len(line) && unicode.IsDigit(rune(line[i])) {
		i++
	}
	if i == 0 || i >= len(line) {
		return false
	}
	return line[i] == '.' || line[i] == ')'
}

// Synthesize builds a minimal render node from raw markdown. The title comes
// from the first level-1 heading; without one the document is not usable as
// an artifact.
func Synthesize(src, sourceURL string) (*domain.RenderNode, error) {
	title := Title(src)
	if title == "" {
		return nil, ErrNoTitle
	}

	node := &domain.RenderNode{
		SchemaVersion: domain.SchemaVersion{Major: 0, Minor: 3, Patch: 0},
		Kind:          "article",
		Identifier: domain.Identifier{
			URL:               sourceURL,
			InterfaceLanguage: "swift",
		},
		Metadata: domain.NodeMetadata{Title: title},
	}

	if abstract := Abstract(src); abstract != "" {
		node.Abstract = []domain.TextFragment{{Type: "text", Text: abstract}}
	}

	return node, nil
}
