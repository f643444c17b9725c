package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config holds client configuration stored under the XDG config dir.
type Config struct {
	ServerURL      string            `yaml:"server_url"`
	APIKey         string            `yaml:"api_key,omitempty"`
	Language       string            `yaml:"language"`
	Theme          string            `yaml:"theme"`
	VimKeys        bool              `yaml:"vim_keys"`
	CategoryColors map[string]string `yaml:"category_colors,omitempty"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Language: "en",
		Theme:    "dark",
		VimKeys:  true,
	}
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "engram", "config.yaml")
}

// DataDir returns the directory for client-side state (bookmarks).
func DataDir() string {
	return filepath.Join(xdg.DataHome, "engram")
}

// Load reads and parses the config file. A missing file yields the default
// configuration; a malformed one is an error.
func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Language == "" {
		cfg.Language = "en"
	}
	return cfg, nil
}

// Save writes the config to disk with owner-only permissions; the file can
// carry an API key.
func (c *Config) Save() error {
	return c.saveTo(Path())
}

func (c *Config) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
