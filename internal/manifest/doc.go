// Package manifest loads Swift package dependency manifests
// (Package.resolved files) and normalizes their pins across format
// versions, enabling batch documentation lookups for every dependency of
// a package.
//
// # Manifest Format
//
// Version 1 wraps pins in an object envelope:
//
//	{"object": {"pins": [{"package": "NIO",
//	                      "repositoryURL": "https://github.com/apple/swift-nio.git",
//	                      "state": {"version": "2.65.0"}}]}, "version": 1}
//
// Versions 2 and 3 list pins at the top level:
//
//	{"version": 2, "pins": [{"identity": "swift-nio",
//	                         "location": "https://github.com/apple/swift-nio.git",
//	                         "state": {"version": "2.65.0"}}]}
//
// # Usage
//
// Load a manifest file:
//
//	loader := manifest.NewLoader()
//	deps, err := loader.Load("Package.resolved")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, dep := range deps {
//	    // Resolve documentation for each dependency
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrFileNotFound: manifest file does not exist
//   - ErrInvalidFormat: file is not valid JSON or has an unknown version
//   - ErrNoPins: manifest has no pinned dependencies
package manifest
