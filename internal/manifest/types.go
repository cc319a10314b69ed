package manifest

import (
	"net/url"
	"strings"
)

// Dependency is a pinned package dependency, normalized across manifest
// format versions
type Dependency struct {
	Identity string
	Location string
	Owner    string
	Repo     string
	Version  string
	Revision string
}

// Hosted reports whether the dependency points at a github.com repository
// and therefore can be resolved to hosted documentation.
func (d Dependency) Hosted() bool {
	return d.Owner != "" && d.Repo != ""
}

// Ref returns the owner/repo reference for hosted dependencies, or the raw
// location otherwise.
func (d Dependency) Ref() string {
	if d.Hosted() {
		return d.Owner + "/" + d.Repo
	}
	return d.Location
}

// envelopeV1 is the version 1 Package.resolved layout
type envelopeV1 struct {
	Object struct {
		Pins []pinV1 `json:"pins"`
	} `json:"object"`
	Version int `json:"version"`
}

type pinV1 struct {
	Package       string   `json:"package"`
	RepositoryURL string   `json:"repositoryURL"`
	State         pinState `json:"state"`
}

// envelopeV2 covers versions 2 and 3, which share a layout
type envelopeV2 struct {
	Version int     `json:"version"`
	Pins    []pinV2 `json:"pins"`
}

type pinV2 struct {
	Identity string   `json:"identity"`
	Location string   `json:"location"`
	State    pinState `json:"state"`
}

type pinState struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
}

// splitGitHubLocation extracts owner and repo from a github.com repository
// URL. Returns empty strings for locations on other hosts.
func splitGitHubLocation(location string) (owner, repo string) {
	u, err := url.Parse(strings.TrimSpace(location))
	if err != nil {
		return "", ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	if host != "github.com" {
		return "", ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", ""
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git")
}
