package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrInvalidFormat indicates the manifest is not valid JSON or uses an
	// unknown format version
	ErrInvalidFormat = errors.New("manifest must be a valid Package.resolved file")

	// ErrNoPins indicates the manifest has no pinned dependencies
	ErrNoPins = errors.New("manifest contains no pinned dependencies")
)
