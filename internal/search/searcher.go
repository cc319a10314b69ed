package search

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/schollz/progressbar/v3"

	"github.com/quantmind-br/swiftdocs-go/internal/utils"
)

// source file extensions worth scanning for documentation keywords
var searchExtensions = map[string]bool{
	".md":    true,
	".swift": true,
	".txt":   true,
}

// Match is a single keyword hit
type Match struct {
	File string
	Line int
	Text string
}

// Options controls a search run
type Options struct {
	ShowProgress bool
	MaxMatches   int
}

// Searcher clones repositories and scans them for keywords
type Searcher struct {
	cloner Cloner
	logger *utils.Logger
}

// NewSearcher creates a new Searcher
func NewSearcher(cloner Cloner, logger *utils.Logger) *Searcher {
	if cloner == nil {
		cloner = NewCloner()
	}
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}
	return &Searcher{cloner: cloner, logger: logger.WithComponent("search")}
}

// Search shallow-clones repoURL into a temporary directory and scans it for
// keyword. The clone is removed before returning.
func (s *Searcher) Search(ctx context.Context, repoURL, keyword string, opts Options) ([]Match, error) {
	dir, err := os.MkdirTemp("", "swiftdocs-search-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	s.logger.Info().Str("url", repoURL).Msg("Cloning repository")
	_, err = s.cloner.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:          repoURL,
		Depth:        1,
		SingleBranch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clone %s: %w", repoURL, err)
	}

	return s.SearchDir(ctx, dir, keyword, opts)
}

// SearchDir scans an existing directory tree for keyword, case-insensitively,
// in markdown, Swift, and plain-text files.
func (s *Searcher) SearchDir(ctx context.Context, dir, keyword string, opts Options) ([]Match, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil, fmt.Errorf("search keyword cannot be empty")
	}

	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if searchExtensions[strings.ToLower(filepath.Ext(p))] {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("Searching"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
		)
	}

	var matches []Match
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		hits, err := scanFile(file, keyword)
		if err != nil {
			s.logger.Debug().Str("path", file).Err(err).Msg("Scan failed")
		} else {
			for _, hit := range hits {
				rel, relErr := filepath.Rel(dir, hit.File)
				if relErr == nil {
					hit.File = filepath.ToSlash(rel)
				}
				matches = append(matches, hit)
				if opts.MaxMatches > 0 && len(matches) >= opts.MaxMatches {
					if bar != nil {
						bar.Finish()
					}
					return matches, nil
				}
			}
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	return matches, nil
}

func scanFile(path, keyword string) ([]Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var matches []Match
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.Contains(strings.ToLower(text), keyword) {
			matches = append(matches, Match{
				File: path,
				Line: line,
				Text: strings.TrimSpace(text),
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}
