package config

import (
	"os"
	"path/filepath"
	"testing"
)

// withConfigDir points the package at an isolated directory for one test.
func withConfigDir(t *testing.T, dir string) {
	t.Helper()
	SetCustomConfigDir(dir)
	t.Cleanup(func() {
		SetCustomConfigDir("")
		SetCustomCredentialsPath("")
	})
}

func TestLoadConfigDefaultsWhenNoFile(t *testing.T) {
	withConfigDir(t, t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.CredentialsPath != "credentials.json" {
		t.Errorf("CredentialsPath = %q, want credentials.json", cfg.CredentialsPath)
	}

	if cfg.TokenDir != "_metadata" {
		t.Errorf("TokenDir = %q, want _metadata", cfg.TokenDir)
	}

	if cfg.User != "user" {
		t.Errorf("User = %q, want user", cfg.User)
	}

	if cfg.RootFolderID != "root" {
		t.Errorf("RootFolderID = %q, want root", cfg.RootFolderID)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	withConfigDir(t, t.TempDir())

	cfg := GetDefaultConfig()
	cfg.ApplicationName = "gdrivekit-test"
	cfg.PageSize = 250

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if loaded.ApplicationName != "gdrivekit-test" {
		t.Errorf("ApplicationName = %q", loaded.ApplicationName)
	}

	if loaded.PageSize != 250 {
		t.Errorf("PageSize = %d, want 250", loaded.PageSize)
	}
}

func TestSparseConfigFileGetsDefaults(t *testing.T) {
	dir := t.TempDir()
	withConfigDir(t, dir)

	sparse := []byte("application_name: sparse-app\n")
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), sparse, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.ApplicationName != "sparse-app" {
		t.Errorf("ApplicationName = %q", cfg.ApplicationName)
	}

	if cfg.TokenDir != "_metadata" || cfg.PageSize != 100 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestCredentialsFlagOverride(t *testing.T) {
	withConfigDir(t, t.TempDir())
	SetCustomCredentialsPath("/alt/creds.json")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.CredentialsPath != "/alt/creds.json" {
		t.Errorf("CredentialsPath = %q, want flag override", cfg.CredentialsPath)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(*Config) {}, false},
		{"nil handled separately", nil, true},
		{"empty credentials", func(c *Config) { c.CredentialsPath = "" }, true},
		{"empty token dir", func(c *Config) { c.TokenDir = "" }, true},
		{"empty user", func(c *Config) { c.User = "" }, true},
		{"zero page size", func(c *Config) { c.PageSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg *Config
			if tt.mutate != nil {
				cfg = GetDefaultConfig()
				tt.mutate(cfg)
			}

			err := ValidateConfig(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInvalidYAMLRejected(t *testing.T) {
	dir := t.TempDir()
	withConfigDir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig accepted invalid YAML")
	}
}
