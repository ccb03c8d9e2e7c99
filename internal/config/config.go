package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultListen         = ":8080"
	DefaultFeedURL        = "http://localhost:3000/crawling3"
	DefaultLocale         = "ko"
	DefaultTimeout        = 30 * time.Second
	DefaultMaxUploadBytes = 10 << 20 // 10MB
	DefaultMaxRows        = 10000
)

// Config is the dashboard configuration.
type Config struct {
	// Address the HTTP server listens on
	Listen string `yaml:"listen,omitempty"`

	// Draw feed endpoint
	FeedURL string `yaml:"feed_url,omitempty"`

	// Optional csv/xlsx file served locally at /crawling3
	DrawsFile string `yaml:"draws_file,omitempty"`

	// Locale used for string ordering in the spreadsheet sort
	Locale string `yaml:"locale,omitempty"`

	// Feed request timeout
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Upload limits
	MaxUploadBytes int64 `yaml:"max_upload_bytes,omitempty"`
	MaxRows        int   `yaml:"max_rows,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Listen:         DefaultListen,
		FeedURL:        DefaultFeedURL,
		Locale:         DefaultLocale,
		Timeout:        DefaultTimeout,
		MaxUploadBytes: DefaultMaxUploadBytes,
		MaxRows:        DefaultMaxRows,
	}
}

// configPathFunc can be overridden in tests.
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing.
// Returns the original function so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

// defaultConfigPath returns ~/.config/lottoboard/config.yaml
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lottoboard", "config.yaml"), nil
}

// DefaultConfigPath returns ~/.config/lottoboard/config.yaml
func DefaultConfigPath() (string, error) {
	return configPathFunc()
}

// Load loads config from the default path, returns defaults if not found
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path. Fields missing from the
// file keep their defaults.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath writes the config as YAML.
func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Validate rejects values the server cannot run with.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive")
	}
	if c.MaxRows <= 0 {
		return fmt.Errorf("max_rows must be positive")
	}
	return nil
}
