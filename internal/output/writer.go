package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quantmind-br/swiftdocs-go/internal/domain"
)

// Writer handles writing rendered documents to the filesystem
type Writer struct {
	baseDir string
	force   bool
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	BaseDir string
	Force   bool
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.BaseDir == "" {
		opts.BaseDir = "./docs"
	}
	return &Writer{
		baseDir: opts.BaseDir,
		force:   opts.Force,
	}
}

// Write renders node to markdown and saves it under the base directory,
// returning the path written. Existing files are skipped unless force is
// set.
func (w *Writer) Write(node *domain.RenderNode, fetchedAt time.Time) (string, error) {
	path := w.Path(node)

	if !w.force {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	content, err := RenderMarkdown(node, fetchedAt)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// Path returns the output path for a render node.
func (w *Writer) Path(node *domain.RenderNode) string {
	name := slugify(node.Title())
	if name == "" {
		name = "documentation"
	}
	return filepath.Join(w.baseDir, name+".md")
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '.', r == '/':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
