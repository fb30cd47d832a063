// Package config provides configuration management for the blocked tool.
package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Default configuration values.
const (
	// DefaultAPIBaseURL is the GitHub REST API base used to build issue endpoints.
	DefaultAPIBaseURL = "https://api.github.com/"
	// DefaultReason is emitted when a watched issue closed and the caller gave no reason.
	DefaultReason = "Issue was closed."
)

// DefaultRemotes is the remote preference order used to recover repository
// coordinates from shorthand issue patterns.
var DefaultRemotes = []string{"upstream", "origin"}

// Config represents the application configuration.
type Config struct {
	APIBaseURL    string   `yaml:"api_base_url"`
	DefaultReason string   `yaml:"default_reason"`
	Remotes       []string `yaml:"remotes"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("%w: api_base_url is empty", ErrInvalidConfig)
	}
	parsed, err := url.Parse(c.APIBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: api_base_url %q is not an absolute URL", ErrInvalidConfig, c.APIBaseURL)
	}
	if len(c.Remotes) == 0 {
		return fmt.Errorf("%w: remotes list is empty", ErrInvalidConfig)
	}
	for _, remote := range c.Remotes {
		if strings.TrimSpace(remote) == "" {
			return fmt.Errorf("%w: remotes list contains an empty name", ErrInvalidConfig)
		}
	}
	return nil
}
