package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if got := cfg.GetProvider(); got != ProviderGemini {
		t.Errorf("GetProvider() = %q, want %q", got, ProviderGemini)
	}
	if got := cfg.GetTheme(); got != DefaultTheme {
		t.Errorf("GetTheme() = %q, want %q", got, DefaultTheme)
	}
	if cfg.GetNotificationsEnabled() {
		t.Error("GetNotificationsEnabled() = true by default")
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := &Config{
		Provider:      ProviderAnthropic,
		Model:         "claude-sonnet-4-5-20250929",
		APIKey:        "sk-test",
		Theme:         "nord",
		Notifications: true,
		filePath:      path,
	}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if got := loaded.GetProvider(); got != ProviderAnthropic {
		t.Errorf("GetProvider() = %q, want %q", got, ProviderAnthropic)
	}
	if got := loaded.GetModel(); got != "claude-sonnet-4-5-20250929" {
		t.Errorf("GetModel() = %q", got)
	}
	if got := loaded.GetStoredAPIKey(); got != "sk-test" {
		t.Errorf("GetStoredAPIKey() = %q", got)
	}
	if got := loaded.GetTheme(); got != "nord" {
		t.Errorf("GetTheme() = %q", got)
	}
	if !loaded.GetNotificationsEnabled() {
		t.Error("GetNotificationsEnabled() = false after round trip")
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := &Config{Provider: ProviderGemini, filePath: path}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file missing after Save: %v", err)
	}
}

func TestSave_OmitsEmptyOptionalFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := &Config{Provider: ProviderGemini, filePath: path}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, present := raw["api_key"]; present {
		t.Error("empty api_key was written to disk")
	}
	if _, present := raw["model"]; present {
		t.Error("empty model was written to disk")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		wantErr  bool
	}{
		{"gemini", ProviderGemini, false},
		{"anthropic", ProviderAnthropic, false},
		{"unknown", "openai", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Provider: tt.provider}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFrom_RejectsUnknownProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"provider":"llama"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadFrom(path); err == nil {
		t.Error("loadFrom() accepted an unknown provider")
	}
}

func TestGetModel_DefaultsPerProvider(t *testing.T) {
	tests := []struct {
		provider string
		model    string
		want     string
	}{
		{ProviderGemini, "", DefaultGeminiModel},
		{ProviderAnthropic, "", DefaultAnthropicModel},
		{ProviderGemini, "gemini-2.0-pro", "gemini-2.0-pro"},
	}

	for _, tt := range tests {
		cfg := &Config{Provider: tt.provider, Model: tt.model}
		if got := cfg.GetModel(); got != tt.want {
			t.Errorf("GetModel() with provider=%s model=%q = %q, want %q", tt.provider, tt.model, got, tt.want)
		}
	}
}

func TestGetAPIKey_EnvOverridesStored(t *testing.T) {
	cfg := &Config{Provider: ProviderGemini, APIKey: "stored-key"}

	t.Setenv(EnvAPIKey, "env-key")
	if got := cfg.GetAPIKey(); got != "env-key" {
		t.Errorf("GetAPIKey() = %q, want env override", got)
	}
	if got := cfg.GetStoredAPIKey(); got != "stored-key" {
		t.Errorf("GetStoredAPIKey() = %q, want stored key", got)
	}

	t.Setenv(EnvAPIKey, "")
	if got := cfg.GetAPIKey(); got != "stored-key" {
		t.Errorf("GetAPIKey() = %q, want stored key without env", got)
	}
}
