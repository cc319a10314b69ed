package domain

import "context"

// Fetcher defines the interface for HTTP fetching
type Fetcher interface {
	// Get fetches a URL. Extra headers are applied on top of the client's
	// base headers. Non-2xx statuses are returned in the Response, not as
	// errors; only transport failures produce an error.
	Get(ctx context.Context, url string, headers map[string]string) (*Response, error)
	// Close releases resources
	Close() error
}
