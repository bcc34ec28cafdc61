// Package config loads and saves the gdrivekit YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const ConfigFileName = "config.yaml"

// appDirName is the subdirectory under the user config dir.
const appDirName = "gdrivekit"

var (
	customConfigDir       string
	customCredentialsPath string
)

// Config is the recognized configuration surface.
type Config struct {
	// CredentialsPath is the OAuth client secret JSON file.
	CredentialsPath string `yaml:"credentials_path"`
	// TokenDir is the directory holding cached OAuth tokens.
	TokenDir string `yaml:"token_dir"`
	// User keys the cached token inside TokenDir.
	User string `yaml:"user"`
	// ApplicationName is attached to outgoing requests when non-empty.
	ApplicationName string `yaml:"application_name,omitempty"`
	// RootFolderID is the default parent for operations that take none.
	RootFolderID string `yaml:"root_folder_id"`
	// PageSize is the default page size for listing commands.
	PageSize int64 `yaml:"page_size"`
	// AuthorizeOnStart runs the authorization flow when a session is
	// constructed instead of deferring it to the first command.
	AuthorizeOnStart bool `yaml:"authorize_on_start"`
}

// SetCustomConfigDir overrides the config search directory (--config-dir).
func SetCustomConfigDir(dir string) {
	customConfigDir = dir
}

// SetCustomCredentialsPath overrides the credentials file (--credentials).
func SetCustomCredentialsPath(path string) {
	customCredentialsPath = path
}

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() *Config {
	return &Config{
		CredentialsPath: "credentials.json",
		TokenDir:        "_metadata",
		User:            "user",
		RootFolderID:    "root",
		PageSize:        100,
	}
}

// LoadConfig loads configuration from the standard search paths, falling
// back to defaults when no config file exists. Flag overrides are applied
// after loading.
func LoadConfig() (*Config, error) {
	cfg := GetDefaultConfig()

	for _, configPath := range getConfigSearchPaths() {
		if _, err := os.Stat(configPath); err == nil {
			loaded, err := loadConfigFromFile(configPath)
			if err != nil {
				return nil, err
			}

			cfg = loaded

			break
		}
	}

	applyDefaults(cfg)

	if customCredentialsPath != "" {
		cfg.CredentialsPath = customCredentialsPath
	}

	return cfg, nil
}

// SaveConfig saves configuration to the appropriate location.
func SaveConfig(cfg *Config) error {
	configPath, err := getConfigFilePath()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CreateDefaultConfig writes the default configuration to disk.
func CreateDefaultConfig() error {
	return SaveConfig(GetDefaultConfig())
}

// ValidateConfig checks the loaded configuration for values that would fail
// at first use.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if cfg.CredentialsPath == "" {
		return fmt.Errorf("credentials_path must not be empty")
	}

	if cfg.TokenDir == "" {
		return fmt.Errorf("token_dir must not be empty")
	}

	if cfg.User == "" {
		return fmt.Errorf("user must not be empty")
	}

	if cfg.PageSize < 1 {
		return fmt.Errorf("page_size must be >= 1, got %d", cfg.PageSize)
	}

	return nil
}

// GetConfigDir returns the global configuration directory.
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}

	return filepath.Join(base, appDirName), nil
}

// getConfigSearchPaths returns the list of paths to search for config files:
// custom dir (if set), global config directory, then current directory.
func getConfigSearchPaths() []string {
	var paths []string

	if customConfigDir != "" {
		paths = append(paths, filepath.Join(customConfigDir, ConfigFileName))
	}

	if globalConfigDir, err := GetConfigDir(); err == nil {
		paths = append(paths, filepath.Join(globalConfigDir, ConfigFileName))
	}

	paths = append(paths, ConfigFileName)

	return paths
}

// getConfigFilePath returns the path where config should be saved.
func getConfigFilePath() (string, error) {
	if customConfigDir != "" {
		return filepath.Join(customConfigDir, ConfigFileName), nil
	}

	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, ConfigFileName), nil
}

func loadConfigFromFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return &cfg, nil
}

// applyDefaults fills zero values so a sparse config file still works.
func applyDefaults(cfg *Config) {
	def := GetDefaultConfig()

	if cfg.CredentialsPath == "" {
		cfg.CredentialsPath = def.CredentialsPath
	}

	if cfg.TokenDir == "" {
		cfg.TokenDir = def.TokenDir
	}

	if cfg.User == "" {
		cfg.User = def.User
	}

	if cfg.RootFolderID == "" {
		cfg.RootFolderID = def.RootFolderID
	}

	if cfg.PageSize == 0 {
		cfg.PageSize = def.PageSize
	}
}
