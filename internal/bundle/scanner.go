// Package bundle discovers DocC documentation bundles on the local
// filesystem and synthesizes render nodes from their markdown articles.
package bundle

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/quantmind-br/swiftdocs-go/internal/domain"
	"github.com/quantmind-br/swiftdocs-go/internal/markdown"
	"github.com/quantmind-br/swiftdocs-go/internal/utils"
)

const (
	bundleSuffix = ".docc"
	skippedDir   = "guides"
)

// Bundle is a documentation bundle found on disk
type Bundle struct {
	Path     string
	Name     string
	Markdown []string
}

// Scanner finds documentation bundles under a directory tree
type Scanner struct {
	logger *utils.Logger
}

// NewScanner creates a new Scanner
func NewScanner(logger *utils.Logger) *Scanner {
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}
	return &Scanner{logger: logger.WithComponent("bundle")}
}

// Scan walks root and returns every documentation bundle it contains, with
// the bundle's markdown articles sorted by path. Articles under a guides
// directory are listed but skipped at synthesis time.
func (s *Scanner) Scan(root string) ([]Bundle, error) {
	var bundles []Bundle

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || !strings.HasSuffix(d.Name(), bundleSuffix) {
			return nil
		}

		b := Bundle{
			Path: p,
			Name: strings.TrimSuffix(d.Name(), bundleSuffix),
		}
		walkErr := filepath.WalkDir(p, func(inner string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".md") {
				b.Markdown = append(b.Markdown, inner)
			}
			return nil
		})
		if walkErr != nil {
			return walkErr
		}
		sort.Strings(b.Markdown)
		bundles = append(bundles, b)
		return filepath.SkipDir
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	s.logger.Debug().Str("root", root).Int("bundles", len(bundles)).Msg("Scan complete")
	return bundles, nil
}

// Synthesize builds a render node from the first usable markdown article in
// the bundle.
func (s *Scanner) Synthesize(b Bundle) (*domain.RenderNode, error) {
	for _, file := range b.Markdown {
		rel, err := filepath.Rel(b.Path, file)
		if err != nil || underSkippedDir(rel) {
			continue
		}
		src, err := os.ReadFile(file)
		if err != nil {
			s.logger.Debug().Str("path", file).Err(err).Msg("Read failed")
			continue
		}
		node, err := markdown.Synthesize(string(src), "file://"+b.Path)
		if err != nil {
			continue
		}
		return node, nil
	}
	return nil, fmt.Errorf("%w: no markdown article in %s", domain.ErrNotFound, b.Path)
}

func underSkippedDir(rel string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(filepath.Dir(rel)), "/") {
		if seg == skippedDir {
			return true
		}
	}
	return false
}
