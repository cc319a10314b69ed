package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values
const (
	// HTTP defaults
	DefaultHTTPTimeout = 30 * time.Second

	// GitHub defaults
	DefaultAPIBase           = "https://api.github.com"
	DefaultRawBase           = "https://raw.githubusercontent.com"
	DefaultMaxReleases       = 10
	DefaultRequestsPerSecond = 2.0

	// Resolver defaults
	DefaultBaseURL        = "https://developer.apple.com"
	DefaultFallbackBranch = "main"

	// Output defaults
	DefaultOutputDir = "./docs"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".swiftdocs"
	}
	return filepath.Join(home, ".swiftdocs")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout: DefaultHTTPTimeout,
		},
		GitHub: GitHubConfig{
			APIBase:           DefaultAPIBase,
			RawBase:           DefaultRawBase,
			MaxReleases:       DefaultMaxReleases,
			RequestsPerSecond: DefaultRequestsPerSecond,
		},
		Resolver: ResolverConfig{
			BaseURL:        DefaultBaseURL,
			FallbackBranch: DefaultFallbackBranch,
		},
		Output: OutputConfig{
			Directory: DefaultOutputDir,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
