// Package github is a minimal unauthenticated client for the GitHub REST
// endpoints the resolver needs: release listing, recursive file trees, and
// raw file content. Private or rate-limited responses degrade to ordinary
// fetch errors.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/quantmind-br/swiftdocs-go/internal/domain"
	"github.com/quantmind-br/swiftdocs-go/internal/utils"
	"golang.org/x/time/rate"
)

const (
	// DefaultAPIBase is the GitHub REST API base URL
	DefaultAPIBase = "https://api.github.com"
	// DefaultRawBase is the raw file content base URL
	DefaultRawBase = "https://raw.githubusercontent.com"
)

// Release is one entry from the release-listing endpoint
type Release struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
}

// TreeEntry is one entry of a recursive file tree
type TreeEntry struct {
	Path string `json:"path"`
	Type string `json:"type"` // "blob" or "tree"
}

// Tree is a recursive file tree
type Tree struct {
	SHA       string      `json:"sha"`
	Tree      []TreeEntry `json:"tree"`
	Truncated bool        `json:"truncated"`
}

// Client queries the GitHub API through a shared Fetcher. A client-side rate
// limiter keeps the unauthenticated quota intact across a long candidate
// search.
type Client struct {
	fetcher domain.Fetcher
	apiBase string
	rawBase string
	limiter *rate.Limiter
	logger  *utils.Logger
}

// ClientOptions contains options for creating a Client
type ClientOptions struct {
	Fetcher           domain.Fetcher
	APIBase           string
	RawBase           string
	RequestsPerSecond float64
	Logger            *utils.Logger
}

// NewClient creates a new GitHub API client
func NewClient(opts ClientOptions) *Client {
	if opts.APIBase == "" {
		opts.APIBase = DefaultAPIBase
	}
	if opts.RawBase == "" {
		opts.RawBase = DefaultRawBase
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 2
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}

	return &Client{
		fetcher: opts.Fetcher,
		apiBase: opts.APIBase,
		rawBase: opts.RawBase,
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 4),
		logger:  logger.WithComponent("github"),
	}
}

// Releases lists the most recent releases of a repository, newest first.
func (c *Client) Releases(ctx context.Context, owner, repo string, limit int) ([]Release, error) {
	if limit <= 0 {
		limit = 10
	}
	endpoint := fmt.Sprintf("%s/repos/%s/%s/releases?per_page=%d",
		c.apiBase, url.PathEscape(owner), url.PathEscape(repo), limit)

	var releases []Release
	if err := c.getJSON(ctx, endpoint, &releases); err != nil {
		return nil, err
	}
	return releases, nil
}

// Tree fetches the recursive file tree of a repository at ref.
func (c *Client) Tree(ctx context.Context, owner, repo, ref string) (*Tree, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/git/trees/%s?recursive=1",
		c.apiBase, url.PathEscape(owner), url.PathEscape(repo), url.PathEscape(ref))

	var tree Tree
	if err := c.getJSON(ctx, endpoint, &tree); err != nil {
		return nil, err
	}
	if tree.Truncated {
		c.logger.Debug().Str("repo", owner+"/"+repo).Msg("File tree truncated by the API")
	}
	return &tree, nil
}

// RawFile fetches the raw content of one file. The Accept header is omitted
// on purpose: raw content is not JSON. A raw fetch is a candidate attempt
// and is never retried.
func (c *Client) RawFile(ctx context.Context, owner, repo, ref, path string) ([]byte, error) {
	target := fmt.Sprintf("%s/%s/%s/%s/%s", c.rawBase, owner, repo, ref, path)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.fetcher.Get(ctx, target, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == 404 {
		return nil, domain.NewFetchError(target, 404, domain.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.NewFetchError(target, resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode))
	}
	return resp.Body, nil
}

// getJSON fetches a metadata endpoint and decodes the response. A transient
// 5xx gets exactly one backoff retry; a failure here would otherwise
// silently discard the whole release-derived candidate tier. Artifact
// fetches never come through this path.
func (c *Client) getJSON(ctx context.Context, endpoint string, v interface{}) error {
	headers := map[string]string{"Accept": "application/vnd.github+json"}

	operation := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.fetcher.Get(ctx, endpoint, headers)
		if err != nil {
			return backoff.Permanent(err)
		}
		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			if err := json.Unmarshal(resp.Body, v); err != nil {
				return backoff.Permanent(&domain.DecodeError{URL: endpoint, Err: err})
			}
			return nil
		case resp.StatusCode == 404:
			return backoff.Permanent(domain.NewFetchError(endpoint, 404, domain.ErrNotFound))
		case resp.StatusCode >= 500:
			return domain.NewFetchError(endpoint, resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode))
		default:
			return backoff.Permanent(domain.NewFetchError(endpoint, resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode)))
		}
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(b, 1), ctx))
}
