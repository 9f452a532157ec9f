package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Provider names accepted in the config file and the settings form.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// EnvAPIKey overrides the stored API key when set.
const EnvAPIKey = "TAGMEND_API_KEY"

// Default models per provider, used when the config leaves Model empty.
const (
	DefaultGeminiModel    = "gemini-2.0-flash"
	DefaultAnthropicModel = "claude-sonnet-4-5-20250929"
)

// DefaultTheme is the theme used when the config names none.
const DefaultTheme = "dark-purple"

// Config holds the application configuration
type Config struct {
	Provider      string `json:"provider"`                // AI provider: "gemini" or "anthropic"
	Model         string `json:"model,omitempty"`         // Provider model ID; empty means the provider default
	APIKey        string `json:"api_key,omitempty"`       // Stored key; TAGMEND_API_KEY wins when set
	Theme         string `json:"theme,omitempty"`         // UI theme name (e.g., "dark-purple", "nord")
	Notifications bool   `json:"notifications,omitempty"` // Desktop notifications when corrections arrive

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tagmend"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return loadFrom(path)
}

func loadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.applyDefaults()
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Fill in anything an older or hand-edited file leaves blank. This must
	// happen before Validate() since Validate() only reads.
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills empty fields with their defaults.
//
// Thread-safety: NOT thread-safe; only called from loadFrom before the
// Config is shared across goroutines.
func (c *Config) applyDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderGemini
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.Provider {
	case ProviderGemini, ProviderAnthropic:
	default:
		return fmt.Errorf("unknown provider %q (want %q or %q)", c.Provider, ProviderGemini, ProviderAnthropic)
	}

	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.filePath, data, 0644)
}

// GetProvider returns the configured provider name
func (c *Config) GetProvider() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Provider
}

// SetProvider sets the provider name
func (c *Config) SetProvider(provider string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Provider = provider
}

// GetModel returns the configured model, or the provider's default when the
// config leaves it empty.
func (c *Config) GetModel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Model != "" {
		return c.Model
	}
	if c.Provider == ProviderAnthropic {
		return DefaultAnthropicModel
	}
	return DefaultGeminiModel
}

// GetStoredModel returns the model from the config file only, without the
// provider default fallback. The settings form edits this value.
func (c *Config) GetStoredModel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Model
}

// SetModel sets the model ID. Pass empty string to use the provider default.
func (c *Config) SetModel(model string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Model = model
}

// GetAPIKey returns the key to use for requests: the TAGMEND_API_KEY
// environment variable when set, otherwise the stored key.
func (c *Config) GetAPIKey() string {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.APIKey
}

// GetStoredAPIKey returns the key from the config file only, ignoring the
// environment. The settings form edits this value.
func (c *Config) GetStoredAPIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.APIKey
}

// SetAPIKey sets the stored API key
func (c *Config) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.APIKey = key
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Notifications
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Notifications = enabled
}
