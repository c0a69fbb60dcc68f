package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/lista/internal/kvstore"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig `yaml:"storage"`
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`
}

// StorageConfig selects and configures the key-value backend
type StorageConfig struct {
	// Backend is one of sqlite, file, memory, redis
	Backend string `yaml:"backend"`
	// Path of the sqlite database or JSON document; empty uses the data dir
	Path string `yaml:"path,omitempty"`

	RedisAddr      string `yaml:"redis_addr,omitempty"`
	RedisPassword  string `yaml:"redis_password,omitempty"`
	RedisDB        int    `yaml:"redis_db,omitempty"`
	RedisNamespace string `yaml:"redis_namespace,omitempty"`
}

// StoreOptions converts the storage section into kvstore options
func (s StorageConfig) StoreOptions() kvstore.Options {
	return kvstore.Options{
		Backend:        s.Backend,
		Path:           s.Path,
		RedisAddr:      s.RedisAddr,
		RedisPassword:  s.RedisPassword,
		RedisDB:        s.RedisDB,
		RedisNamespace: s.RedisNamespace,
	}
}

// DefaultStorageConfig returns the sqlite backend in the data directory
func DefaultStorageConfig() StorageConfig {
	return StorageConfig{Backend: kvstore.BackendSQLite}
}

// Default returns a config with every section at its default
func Default() *Config {
	return &Config{
		Storage:     DefaultStorageConfig(),
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
}

// loadThemeFile loads and merges theme from LISTA_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("LISTA_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv applies LISTA_BACKEND on top of the file
func applyEnv(config *Config) {
	if backend := os.Getenv("LISTA_BACKEND"); backend != "" {
		config.Storage.Backend = backend
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		applyEnv(config)
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path
// Returns default config if file doesn't exist
func LoadFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		applyEnv(config)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)
	applyEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "lista", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "lista", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = kvstore.BackendSQLite
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
