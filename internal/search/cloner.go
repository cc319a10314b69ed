// Package search clones a repository and scans its documentation sources
// for a keyword.
package search

import (
	"context"
	"os"

	git "github.com/go-git/go-git/v5"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
)

// Cloner defines the interface for repository clone operations
type Cloner interface {
	PlainCloneContext(ctx context.Context, path string, isBare bool, o *git.CloneOptions) (*git.Repository, error)
}

// RealCloner implements Cloner using go-git
type RealCloner struct{}

// NewCloner creates a new RealCloner
func NewCloner() *RealCloner {
	return &RealCloner{}
}

// PlainCloneContext calls git.PlainCloneContext, attaching token auth when
// GITHUB_TOKEN is set.
func (c *RealCloner) PlainCloneContext(ctx context.Context, path string, isBare bool, o *git.CloneOptions) (*git.Repository, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" && o.Auth == nil {
		o.Auth = &githttp.BasicAuth{
			Username: "token",
			Password: token,
		}
	}
	return git.PlainCloneContext(ctx, path, isBare, o)
}
