package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the assistant configuration
type Config struct {
	// DBLocation overrides the default database path when set.
	DBLocation string `yaml:"db_location,omitempty"`

	// ParserURL is the remote parser endpoint. Empty disables the
	// remote parser entirely; the local parser is always available.
	ParserURL string `yaml:"parser_url,omitempty"`

	// ParserTimeoutSeconds bounds the remote parser call.
	ParserTimeoutSeconds int `yaml:"parser_timeout_seconds"`

	// SuggestionLimit caps how many suggestions the CLI prints.
	SuggestionLimit int `yaml:"suggestion_limit"`

	// Language selects the input normalizer ("en", "hi").
	Language string `yaml:"language"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ParserTimeoutSeconds: 10,
		SuggestionLimit:      8,
		Language:             "hi",
	}
}

// Manager manages configuration persistence
type Manager struct {
	configPath string
}

// NewManager creates a configuration manager using the default path
// under the user's config directory.
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return &Manager{
		configPath: filepath.Join(homeDir, ".config", "shopassist", "config.yaml"),
	}, nil
}

// NewManagerWithPath creates a config manager with a custom config path
func NewManagerWithPath(configPath string) *Manager {
	return &Manager{configPath: configPath}
}

// Load reads the configuration from file, or returns default if file doesn't exist
func (m *Manager) Load() (*Config, error) {
	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateAndSetDefaults(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// Save writes the configuration to file
func (m *Manager) Save(config *Config) error {
	if err := validateAndSetDefaults(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// validateAndSetDefaults validates configuration and fills missing fields
func validateAndSetDefaults(config *Config) error {
	if config.ParserTimeoutSeconds <= 0 {
		config.ParserTimeoutSeconds = 10
	}
	if config.ParserTimeoutSeconds > 120 {
		return fmt.Errorf("parser_timeout_seconds cannot exceed 120")
	}
	if config.SuggestionLimit <= 0 {
		config.SuggestionLimit = 8
	}
	if config.SuggestionLimit > 50 {
		return fmt.Errorf("suggestion_limit cannot exceed 50")
	}
	if config.Language == "" {
		config.Language = "hi"
	}
	if config.Language != "en" && config.Language != "hi" {
		return fmt.Errorf("unsupported language: %s", config.Language)
	}
	return nil
}

// GetConfigPath returns the path to the config file
func (m *Manager) GetConfigPath() string {
	return m.configPath
}

// Update modifies a specific configuration value
func (m *Manager) Update(key, value string) error {
	config, err := m.Load()
	if err != nil {
		return err
	}

	switch key {
	case "db-location":
		config.DBLocation = value
	case "parser-url":
		config.ParserURL = value
	case "parser-timeout":
		timeout, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for parser-timeout: %s", value)
		}
		config.ParserTimeoutSeconds = timeout
	case "suggestion-limit":
		limit, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for suggestion-limit: %s", value)
		}
		config.SuggestionLimit = limit
	case "language":
		config.Language = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	return m.Save(config)
}

// Get returns the value for a specific configuration key
func (m *Manager) Get(key string) (string, error) {
	config, err := m.Load()
	if err != nil {
		return "", err
	}

	switch key {
	case "db-location":
		if config.DBLocation == "" {
			return "[default]", nil
		}
		return config.DBLocation, nil
	case "parser-url":
		if config.ParserURL == "" {
			return "[disabled]", nil
		}
		return config.ParserURL, nil
	case "parser-timeout":
		return strconv.Itoa(config.ParserTimeoutSeconds), nil
	case "suggestion-limit":
		return strconv.Itoa(config.SuggestionLimit), nil
	case "language":
		return config.Language, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// List returns all configuration keys and values
func (m *Manager) List() (map[string]string, error) {
	config, err := m.Load()
	if err != nil {
		return nil, err
	}

	result := map[string]string{
		"db-location":      config.DBLocation,
		"parser-url":       config.ParserURL,
		"parser-timeout":   strconv.Itoa(config.ParserTimeoutSeconds),
		"suggestion-limit": strconv.Itoa(config.SuggestionLimit),
		"language":         config.Language,
	}
	if result["db-location"] == "" {
		result["db-location"] = "[default]"
	}
	if result["parser-url"] == "" {
		result["parser-url"] = "[disabled]"
	}
	return result, nil
}
