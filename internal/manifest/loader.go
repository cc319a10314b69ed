package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Loader loads and normalizes Package.resolved manifests
type Loader struct{}

// NewLoader creates a new manifest loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a Package.resolved file from the given path
func (l *Loader) Load(path string) ([]Dependency, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	return l.LoadFromBytes(data)
}

// LoadFromBytes parses dependencies from raw manifest bytes, detecting the
// format version from the envelope.
func (l *Loader) LoadFromBytes(data []byte) ([]Dependency, error) {
	var probe struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	var deps []Dependency
	switch probe.Version {
	case 1:
		var env envelopeV1
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		for _, pin := range env.Object.Pins {
			owner, repo := splitGitHubLocation(pin.RepositoryURL)
			deps = append(deps, Dependency{
				Identity: strings.ToLower(pin.Package),
				Location: pin.RepositoryURL,
				Owner:    owner,
				Repo:     repo,
				Version:  pin.State.Version,
				Revision: pin.State.Revision,
			})
		}
	case 2, 3:
		var env envelopeV2
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		for _, pin := range env.Pins {
			owner, repo := splitGitHubLocation(pin.Location)
			deps = append(deps, Dependency{
				Identity: strings.ToLower(pin.Identity),
				Location: pin.Location,
				Owner:    owner,
				Repo:     repo,
				Version:  pin.State.Version,
				Revision: pin.State.Revision,
			})
		}
	default:
		return nil, fmt.Errorf("%w: unknown version %d", ErrInvalidFormat, probe.Version)
	}

	if len(deps) == 0 {
		return nil, ErrNoPins
	}
	return deps, nil
}
