package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("default cache backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Log.Level)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("default server addr = %q", cfg.Server.Addr)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[output]
dir = "reports"
formats = ["png", "dot"]

[cache]
backend = "redis"
redis_addr = "cache.internal:6379"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Dir != "reports" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if len(cfg.Output.Formats) != 2 || cfg.Output.Formats[0] != "png" {
		t.Errorf("Output.Formats = %v", cfg.Output.Formats)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "cache.internal:6379" {
		t.Errorf("cache config = %+v", cfg.Cache)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	// Untouched sections keep their defaults.
	if cfg.Cache.TTLHours != 24*7 {
		t.Errorf("Cache.TTLHours = %d", cfg.Cache.TTLHours)
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestCacheDirPrecedence(t *testing.T) {
	c := CacheConfig{Dir: "/tmp/custom"}
	dir, err := c.CacheDir()
	if err != nil {
		t.Fatalf("CacheDir: %v", err)
	}
	if dir != "/tmp/custom" {
		t.Errorf("CacheDir = %q, want configured override", dir)
	}

	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err = CacheConfig{}.CacheDir()
	if err != nil {
		t.Fatalf("CacheDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", "spanviz") {
		t.Errorf("CacheDir = %q, want XDG path", dir)
	}
}
