package patterns

import (
	"fmt"
	"net/url"
	"sort"
	"sync"

	"github.com/quantmind-br/swiftdocs-go/internal/domain"
)

// Registry holds pattern handlers ordered by descending priority. Handlers
// with equal priority keep registration order, oldest first; that
// tie-breaking is a contract, not an accident of sort stability. The
// registry lives for the whole process and is safe for concurrent
// registration and lookup.
type Registry struct {
	mu      sync.RWMutex
	entries []registryEntry
	nextSeq int
}

type registryEntry struct {
	handler Handler
	seq     int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry creates a registry with all built-in handlers, the
// catch-all included, so dispatch is total.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(AppleDocIndexHandler{})
	r.Register(AppleDocHandler{})
	r.Register(AppleTutorialHandler{})
	r.Register(PackageIndexHandler{})
	r.Register(GitHubRepoHandler{})
	r.Register(GitHubPagesHandler{})
	r.Register(GenericHandler{})
	return r
}

// Register adds a handler. Callers may register additional handlers at
// runtime with arbitrary priority.
func (r *Registry) Register(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, registryEntry{handler: h, seq: r.nextSeq})
	r.nextSeq++

	sort.SliceStable(r.entries, func(i, j int) bool {
		if r.entries[i].handler.Priority() != r.entries[j].handler.Priority() {
			return r.entries[i].handler.Priority() > r.entries[j].handler.Priority()
		}
		return r.entries[i].seq < r.entries[j].seq
	})
}

// Match returns the highest-priority handler that recognizes the URL. With
// the catch-all registered it cannot fail; the error exists only for a
// misconfigured registry.
func (r *Registry) Match(u *url.URL) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.handler.CanHandle(u) {
			return e.handler, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNoHandler, u)
}

// Handlers returns the handlers in dispatch order.
func (r *Registry) Handlers() []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Handler, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.handler
	}
	return out
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
