package config

import (
	"fmt"
	"os"
)

// Manager loads and holds the process configuration.
type Manager struct {
	config *ServerConfig
}

// NewManager creates a config manager.
func NewManager() *Manager {
	return &Manager{}
}

// Load loads configuration from file and environment, validates it, and
// caches the result.
func (m *Manager) Load(configPath string) (*ServerConfig, error) {
	if m.config != nil {
		return m.config, nil
	}

	loader := NewLoader()

	fileConfig, err := loader.LoadFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	m.config = loader.MergeWithEnv(loader.MergeOverDefaults(fileConfig))

	valid, errors := NewValidator().Validate(m.config)
	if !valid {
		fmt.Fprintf(os.Stderr, "Configuration validation errors:\n")
		for _, e := range errors {
			fmt.Fprintf(os.Stderr, "  - %s\n", e)
		}
		return nil, fmt.Errorf("invalid configuration")
	}

	return m.config, nil
}

// Get returns the current configuration, loading defaults if needed.
func (m *Manager) Get() *ServerConfig {
	if m.config == nil {
		if _, err := m.Load(""); err != nil {
			return Default()
		}
	}
	return m.config
}

// HostConfig returns the host gateway configuration.
func (m *Manager) HostConfig() *HostConfig {
	return &m.Get().Host
}

// ServerSettings returns server settings.
func (m *Manager) ServerSettings() *ServerSettings {
	return &m.Get().Server
}

// LoggingConfig returns logging configuration.
func (m *Manager) LoggingConfig() *LoggingConfig {
	return &m.Get().Logging
}

// FeaturesConfig returns feature flags.
func (m *Manager) FeaturesConfig() *FeaturesConfig {
	return &m.Get().Features
}
