// Package config loads the optional spanviz TOML configuration file.
// Every field has a default, so running without a config file works.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appName = "spanviz"

// Config holds all user-tunable settings.
type Config struct {
	Output OutputConfig `toml:"output"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig controls where and how artifacts are written.
type OutputConfig struct {
	// Dir is the directory for rendered drawings and reports.
	Dir string `toml:"dir"`
	// Formats are the default artifact encodings (svg, png, dot).
	Formats []string `toml:"formats"`
	// Views are the default drawings to produce per graph.
	Views []string `toml:"views"`
}

// CacheConfig selects and tunes the result cache.
type CacheConfig struct {
	// Backend is one of "file", "redis" or "none".
	Backend string `toml:"backend"`
	// Dir overrides the file backend's directory.
	Dir string `toml:"dir"`
	// RedisAddr is the host:port of the redis backend.
	RedisAddr string `toml:"redis_addr"`
	// TTLHours bounds entry lifetime. Zero disables expiration.
	TTLHours int `toml:"ttl_hours"`
}

// ServerConfig tunes the HTTP API.
type ServerConfig struct {
	// Addr is the listen address of the serve command.
	Addr string `toml:"addr"`
}

// LogConfig tunes logging.
type LogConfig struct {
	// Level is one of "debug", "info", "warn" or "error".
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Dir:     "out",
			Formats: []string{"svg"},
			Views:   []string{"comparison"},
		},
		Cache: CacheConfig{
			Backend:   "file",
			RedisAddr: "localhost:6379",
			TTLHours:  24 * 7,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path on top of the defaults. A missing
// file is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the XDG location of the config file
// (~/.config/spanviz/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the directory for the file cache backend, preferring
// the configured override, then the XDG cache home.
func (c CacheConfig) CacheDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
