package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manager interface provides configuration loading functionality.
type Manager interface {
	// LoadConfig loads configuration from the specified file path, filling
	// unset fields with defaults. A missing file yields the defaults.
	LoadConfig(configPath string) (*Config, error)

	// DefaultConfig returns the default configuration.
	DefaultConfig() *Config
}

type realManager struct{}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{}
}

// LoadConfig loads configuration from the specified file path.
func (m *realManager) LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return m.DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := m.DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if len(config.Remotes) == 0 {
		config.Remotes = append([]string{}, DefaultRemotes...)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns the default configuration.
func (m *realManager) DefaultConfig() *Config {
	return &Config{
		APIBaseURL:    DefaultAPIBaseURL,
		DefaultReason: DefaultReason,
		Remotes:       append([]string{}, DefaultRemotes...),
	}
}
