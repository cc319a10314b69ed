package resolver

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/quantmind-br/swiftdocs-go/internal/domain"
	"github.com/quantmind-br/swiftdocs-go/internal/markdown"
)

const (
	bundleSuffix = ".docc"
	skippedDir   = "guides"
)

// resolveRepository runs the layered fallback search for a bare repository
// reference: hosted unversioned artifacts, release-versioned artifacts, the
// default branch, and finally markdown synthesized from the repository tree.
// Individual candidate failures are swallowed; only context cancellation
// aborts the sweep early.
func (r *Resolver) resolveRepository(ctx context.Context, owner, repo string) (*domain.RenderNode, error) {
	owner = strings.ToLower(owner)
	repo = strings.ToLower(repo)
	log := r.logger.With().Str("owner", owner).Str("repo", repo).Logger()

	names := moduleNames(repo)
	pagesBase := fmt.Sprintf("https://%s.github.io/%s", owner, repo)

	var candidates []string
	for _, name := range names {
		candidates = append(candidates, fmt.Sprintf("%s/data/documentation/%s.json", pagesBase, name))
	}
	for _, ver := range r.releaseVersions(ctx, owner, repo) {
		for _, name := range names {
			candidates = append(candidates, fmt.Sprintf("%s/%s/data/documentation/%s.json", pagesBase, ver, name))
		}
	}
	for _, name := range branchNames(names, repo) {
		candidates = append(candidates, fmt.Sprintf("%s/%s/data/documentation/%s.json", pagesBase, r.fallbackBranch, name))
	}

	for _, target := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		node, err := r.fetchRenderNode(ctx, target)
		if err == nil {
			log.Debug().Str("url", target).Msg("Resolved repository documentation")
			return node, nil
		}
		log.Debug().Str("url", target).Err(err).Msg("Candidate failed")
	}

	if node, err := r.resolveFromMarkdown(ctx, owner, repo); err == nil {
		return node, nil
	} else {
		log.Debug().Err(err).Msg("Markdown fallback failed")
	}

	return nil, fmt.Errorf("%w: no documentation for %s/%s", domain.ErrNotFound, owner, repo)
}

// releaseVersions lists published releases and maps their tags to sorted,
// deduplicated documentation version directories. Metadata failures yield an
// empty slice so the sweep can move on to the branch fallback.
func (r *Resolver) releaseVersions(ctx context.Context, owner, repo string) []string {
	if r.github == nil {
		return nil
	}
	releases, err := r.github.Releases(ctx, owner, repo, r.maxReleases)
	if err != nil {
		r.logger.Debug().Str("repo", owner+"/"+repo).Err(err).Msg("Release listing failed")
		return nil
	}

	seen := make(map[string]struct{})
	var versions []string
	for _, rel := range releases {
		ver, ok := NormalizeVersion(rel.TagName)
		if !ok {
			continue
		}
		if _, dup := seen[ver]; dup {
			continue
		}
		seen[ver] = struct{}{}
		versions = append(versions, ver)
	}
	SortVersionsDesc(versions)
	return versions
}

// resolveFromMarkdown is the last resort: walk the repository tree for a
// documentation bundle and synthesize a render node from its first markdown
// article.
func (r *Resolver) resolveFromMarkdown(ctx context.Context, owner, repo string) (*domain.RenderNode, error) {
	if r.github == nil {
		return nil, fmt.Errorf("%w: no repository client", domain.ErrNotFound)
	}
	tree, err := r.github.Tree(ctx, owner, repo, "HEAD")
	if err != nil {
		return nil, err
	}

	var bundles []string
	for _, entry := range tree.Tree {
		if entry.Type == "tree" && strings.HasSuffix(entry.Path, bundleSuffix) {
			bundles = append(bundles, entry.Path)
		}
	}
	sort.Strings(bundles)

	for _, bundle := range bundles {
		var files []string
		for _, entry := range tree.Tree {
			if entry.Type != "blob" || !strings.HasSuffix(entry.Path, ".md") {
				continue
			}
			if !strings.HasPrefix(entry.Path, bundle+"/") {
				continue
			}
			if underSkippedDir(strings.TrimPrefix(entry.Path, bundle+"/")) {
				continue
			}
			files = append(files, entry.Path)
		}
		sort.Strings(files)

		for _, file := range files {
			src, err := r.github.RawFile(ctx, owner, repo, "HEAD", file)
			if err != nil {
				r.logger.Debug().Str("path", file).Err(err).Msg("Raw fetch failed")
				continue
			}
			node, err := markdown.Synthesize(string(src), fmt.Sprintf("https://github.com/%s/%s", owner, repo))
			if err != nil {
				continue
			}
			return node, nil
		}
	}

	return nil, fmt.Errorf("%w: no markdown article in %s/%s", domain.ErrNotFound, owner, repo)
}

// moduleNames lists candidate module names for a repository, most likely
// first: separators removed, the swift- prefix stripped, then the raw name.
func moduleNames(repo string) []string {
	repo = strings.ToLower(repo)
	collapsed := strings.NewReplacer("-", "", "_", "", ".", "").Replace(repo)
	stripped := strings.NewReplacer("-", "", "_", "", ".", "").Replace(strings.TrimPrefix(repo, "swift-"))

	seen := make(map[string]struct{}, 3)
	var names []string
	for _, name := range []string{collapsed, stripped, repo} {
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// branchNames extends the module names with the raw repository name for the
// branch fallback, deduplicated.
func branchNames(names []string, repo string) []string {
	seen := make(map[string]struct{}, len(names)+1)
	var out []string
	for _, name := range append(append([]string{}, names...), strings.ToLower(repo)) {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func underSkippedDir(rel string) bool {
	for _, seg := range strings.Split(path.Dir(rel), "/") {
		if seg == skippedDir {
			return true
		}
	}
	return false
}
