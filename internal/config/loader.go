package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration from file, environment, and defaults
// Uses the global viper instance to access CLI flag bindings
func Load() (*Config, error) {
	v := viper.GetViper()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())
	v.AddConfigPath(".")

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables (SWIFTDOCS_*)
	v.SetEnvPrefix("SWIFTDOCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("http.timeout", DefaultHTTPTimeout)
	v.SetDefault("http.user_agent", "")
	v.SetDefault("http.proxy_url", "")

	v.SetDefault("github.api_base", DefaultAPIBase)
	v.SetDefault("github.raw_base", DefaultRawBase)
	v.SetDefault("github.max_releases", DefaultMaxReleases)
	v.SetDefault("github.requests_per_second", DefaultRequestsPerSecond)

	v.SetDefault("resolver.base_url", DefaultBaseURL)
	v.SetDefault("resolver.fallback_branch", DefaultFallbackBranch)

	v.SetDefault("output.directory", DefaultOutputDir)
	v.SetDefault("output.force", false)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	return os.MkdirAll(ConfigDir(), 0755)
}
