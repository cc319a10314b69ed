// Package resolver turns a documentation URL into a decoded render-node
// artifact. It dispatches through the pattern registry, fetches the
// candidate JSON artifact, and runs the layered fallback search when the
// primary guess fails.
package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/quantmind-br/swiftdocs-go/internal/domain"
	"github.com/quantmind-br/swiftdocs-go/internal/github"
	"github.com/quantmind-br/swiftdocs-go/internal/patterns"
	"github.com/quantmind-br/swiftdocs-go/internal/utils"
)

// DefaultBaseURL is prepended to bare path inputs
const DefaultBaseURL = "https://developer.apple.com"

// DefaultFallbackBranch is the branch tried after release-derived versions
const DefaultFallbackBranch = "main"

// Resolver is the fetch orchestrator. Every invocation is a single logical
// flow; all fallback candidates are tried strictly sequentially and nothing
// is cached between invocations.
type Resolver struct {
	registry       *patterns.Registry
	fetcher        domain.Fetcher
	github         *github.Client
	logger         *utils.Logger
	baseURL        string
	maxReleases    int
	fallbackBranch string
}

// Options contains options for creating a Resolver
type Options struct {
	Registry       *patterns.Registry
	Fetcher        domain.Fetcher
	GitHub         *github.Client
	Logger         *utils.Logger
	BaseURL        string
	MaxReleases    int
	FallbackBranch string
}

// New creates a new Resolver
func New(opts Options) *Resolver {
	if opts.Registry == nil {
		opts.Registry = patterns.DefaultRegistry()
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.MaxReleases <= 0 {
		opts.MaxReleases = 10
	}
	if opts.FallbackBranch == "" {
		opts.FallbackBranch = DefaultFallbackBranch
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}

	return &Resolver{
		registry:       opts.Registry,
		fetcher:        opts.Fetcher,
		github:         opts.GitHub,
		logger:         logger.WithComponent("resolver"),
		baseURL:        opts.BaseURL,
		maxReleases:    opts.MaxReleases,
		fallbackBranch: opts.FallbackBranch,
	}
}

// Registry returns the pattern registry, for runtime handler registration.
func (r *Resolver) Registry() *patterns.Registry {
	return r.registry
}

// FetchDocumentation resolves input to a JSON artifact, fetches it, and
// decodes it.
func (r *Resolver) FetchDocumentation(ctx context.Context, input string) (*domain.RenderNode, error) {
	u, err := r.normalize(input)
	if err != nil {
		return nil, err
	}

	handler, err := r.registry.Match(u)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidURL, u)
	}

	r.logger.Debug().
		Str("url", u.String()).
		Str("handler", handler.Identifier()).
		Msg("Dispatched URL")

	if handler.ResponseType() == patterns.ResponseTableOfContents {
		return nil, &domain.TableOfContentsError{
			URL:      u.String(),
			Guidance: "point at a specific page instead, e.g. /documentation/<framework>",
		}
	}

	candidate := handler.ResolveJSONPath(u)
	if owner, repo, ok := patterns.ParseDeferred(candidate); ok {
		return r.resolveRepository(ctx, owner, repo)
	}

	target := buildJSONURL(u, candidate)
	node, err := r.fetchRenderNode(ctx, target)
	if err == nil {
		return node, nil
	}

	// The catch-all gets exactly one alternate guess on 404 before giving
	// up; any other handler's 404 is final.
	if handler.Identifier() == patterns.GenericIdentifier && domain.IsStatus(err, 404) {
		alt := ensureDocumentationPrefix(u.Path)
		if alt != candidate {
			if node, altErr := r.fetchRenderNode(ctx, buildJSONURL(u, alt)); altErr == nil {
				return node, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, u)
	}
	if domain.IsStatus(err, 404) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, target)
	}
	return nil, err
}

// normalize turns the input into an absolute URL. Bare paths go to the
// default base; bare owner/repo references go to the source host.
func (r *Resolver) normalize(input string) (*url.URL, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", domain.ErrInvalidURL)
	}

	if !strings.Contains(s, "://") {
		switch {
		case strings.HasPrefix(s, "/"):
			s = strings.TrimSuffix(r.baseURL, "/") + s
		case utils.IsOwnerRepoRef(s):
			s = "https://" + patterns.GitHubHost + "/" + s
		default:
			s = "https://" + s
		}
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidURL, input)
	}

	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	return u, nil
}

// fetchRenderNode is the fetch-and-decode primitive shared with repository
// resolution. A decode mismatch is terminal: it signals the wrong hosting
// convention, not a transient fault.
func (r *Resolver) fetchRenderNode(ctx context.Context, target string) (*domain.RenderNode, error) {
	resp, err := r.fetcher.Get(ctx, target, map[string]string{"Accept": "application/json"})
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == 404:
		return nil, domain.NewFetchError(target, 404, domain.ErrNotFound)
	default:
		return nil, domain.NewFetchError(target, resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	var node domain.RenderNode
	if err := json.Unmarshal(resp.Body, &node); err != nil {
		return nil, &domain.DecodeError{URL: target, Err: err}
	}
	if node.Metadata.Title == "" && node.Identifier.URL == "" {
		return nil, &domain.DecodeError{URL: target, Err: errors.New("payload is not a render node")}
	}

	r.logger.Debug().Str("url", target).Str("title", node.Metadata.Title).Msg("Decoded render node")
	return &node, nil
}

// buildJSONURL rebuilds an absolute URL from the original scheme and host,
// appending the .json suffix when absent.
func buildJSONURL(u *url.URL, candidate string) string {
	p := candidate
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, ".json") {
		p += ".json"
	}
	return u.Scheme + "://" + u.Host + p
}

// ensureDocumentationPrefix prefixes the path with documentation/ when it is
// not already there.
func ensureDocumentationPrefix(p string) string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return "/documentation"
	}
	if strings.HasPrefix(trimmed, "documentation/") || trimmed == "documentation" {
		return "/" + trimmed
	}
	return "/documentation/" + trimmed
}
