package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFetchError tests formatting and unwrapping
func TestFetchError(t *testing.T) {
	err := NewFetchError("https://example.com/x.json", 404, ErrNotFound)

	assert.Contains(t, err.Error(), "https://example.com/x.json")
	assert.Contains(t, err.Error(), "404")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestIsNotFound tests detection through wrapping
func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("context: %w", ErrNotFound)))
	assert.True(t, IsNotFound(NewFetchError("u", 404, ErrNotFound)))
	assert.False(t, IsNotFound(errors.New("other")))
	assert.False(t, IsNotFound(nil))
}

// TestIsStatus tests status extraction from wrapped fetch errors
func TestIsStatus(t *testing.T) {
	err := NewFetchError("u", 503, fmt.Errorf("HTTP 503"))

	assert.True(t, IsStatus(err, 503))
	assert.False(t, IsStatus(err, 404))
	assert.True(t, IsStatus(fmt.Errorf("wrapped: %w", err), 503))
	assert.False(t, IsStatus(errors.New("plain"), 500))
}

// TestDecodeError tests unwrapping of the inner cause
func TestDecodeError(t *testing.T) {
	cause := errors.New("unexpected token")
	err := &DecodeError{URL: "https://example.com/x.json", Err: cause}

	assert.Contains(t, err.Error(), "https://example.com/x.json")
	assert.ErrorIs(t, err, cause)
}

// TestTableOfContentsError tests the guidance message
func TestTableOfContentsError(t *testing.T) {
	err := &TableOfContentsError{URL: "https://developer.apple.com/documentation", Guidance: "pick a page"}
	assert.Contains(t, err.Error(), "https://developer.apple.com/documentation")
}
