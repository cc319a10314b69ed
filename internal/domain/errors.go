package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrInvalidURL indicates the input could not be turned into a routable URL
	ErrInvalidURL = errors.New("invalid URL")

	// ErrNotFound indicates no documentation artifact exists after all fallbacks
	ErrNotFound = errors.New("documentation not found")

	// ErrNoHandler indicates registry dispatch failed (missing catch-all)
	ErrNoHandler = errors.New("no pattern handler matched")
)

// FetchError represents a transport or HTTP status failure for one request.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError
func NewFetchError(url string, statusCode int, err error) *FetchError {
	return &FetchError{
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// DecodeError indicates a payload did not match the render-node schema.
// It signals a hosting-convention mismatch, not a transient fault, and is
// never retried.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error for %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TableOfContentsError is a directive, not a failure: the request targeted an
// aggregation page whose JSON uses an incompatible schema. Guidance tells the
// caller how to adjust the input.
type TableOfContentsError struct {
	URL      string
	Guidance string
}

func (e *TableOfContentsError) Error() string {
	return fmt.Sprintf("%s is a table-of-contents page: %s", e.URL, e.Guidance)
}

// IsNotFound reports whether err represents a missing remote resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStatus reports whether err is a FetchError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.StatusCode == status
}
