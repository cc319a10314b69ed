package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config represents the application configuration
type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http" yaml:"http"`
	GitHub   GitHubConfig   `mapstructure:"github" yaml:"github"`
	Resolver ResolverConfig `mapstructure:"resolver" yaml:"resolver"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// HTTPConfig contains HTTP client settings
type HTTPConfig struct {
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	UserAgent string        `mapstructure:"user_agent" yaml:"user_agent"`
	ProxyURL  string        `mapstructure:"proxy_url" yaml:"proxy_url"`
}

// GitHubConfig contains GitHub API settings
type GitHubConfig struct {
	APIBase           string  `mapstructure:"api_base" yaml:"api_base"`
	RawBase           string  `mapstructure:"raw_base" yaml:"raw_base"`
	MaxReleases       int     `mapstructure:"max_releases" yaml:"max_releases"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
}

// ResolverConfig contains URL resolution settings
type ResolverConfig struct {
	BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
	FallbackBranch string `mapstructure:"fallback_branch" yaml:"fallback_branch"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
	Force     bool   `mapstructure:"force" yaml:"force"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration, replacing out-of-range values with
// defaults.
func (c *Config) Validate() error {
	if c.HTTP.Timeout < time.Second {
		c.HTTP.Timeout = DefaultHTTPTimeout
	}
	if c.HTTP.ProxyURL != "" {
		if _, err := url.Parse(c.HTTP.ProxyURL); err != nil {
			return fmt.Errorf("invalid http.proxy_url: %w", err)
		}
	}
	if c.GitHub.APIBase == "" {
		c.GitHub.APIBase = DefaultAPIBase
	}
	if c.GitHub.RawBase == "" {
		c.GitHub.RawBase = DefaultRawBase
	}
	if c.GitHub.MaxReleases < 1 {
		c.GitHub.MaxReleases = DefaultMaxReleases
	}
	if c.GitHub.RequestsPerSecond <= 0 {
		c.GitHub.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if c.Resolver.BaseURL == "" {
		c.Resolver.BaseURL = DefaultBaseURL
	}
	if c.Resolver.FallbackBranch == "" {
		c.Resolver.FallbackBranch = DefaultFallbackBranch
	}
	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputDir
	}
	return nil
}
