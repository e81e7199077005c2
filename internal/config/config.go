// Package config loads StudioBridge configuration from environment
// variables layered over built-in defaults, and validates it before the
// application starts.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// MindbodyConfig carries upstream API credentials. APIKey, SiteID,
// SourceName and SourcePassword are required; startup aborts without them.
type MindbodyConfig struct {
	APIKey         string `koanf:"api_key" validate:"required"`
	SiteID         string `koanf:"site_id" validate:"required"`
	SourceName     string `koanf:"source_name" validate:"required"`
	SourcePassword string `koanf:"source_password" validate:"required"`
	APIURL         string `koanf:"api_url" validate:"omitempty,url"`
}

// ServerConfig configures the web API listener.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout time.Duration `koanf:"timeout"`
}

// LogConfig configures zerolog output.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// DataConfig locates the mirror database and settings file.
type DataConfig struct {
	Dir          string `koanf:"dir"`
	SettingsPath string `koanf:"settings_path"`
}

// SyncConfig controls the background mirror sync.
type SyncConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Interval time.Duration `koanf:"interval" validate:"min=0"`
}

// Config is the root configuration.
type Config struct {
	Mindbody MindbodyConfig `koanf:"mindbody"`
	Server   ServerConfig   `koanf:"server"`
	Log      LogConfig      `koanf:"log"`
	Data     DataConfig     `koanf:"data"`
	Sync     SyncConfig     `koanf:"sync"`
}

// defaultConfig returns the built-in defaults, overridden by environment
// variables.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:    "127.0.0.1",
			Port:    8430,
			Timeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Sync: SyncConfig{
			Enabled:  true,
			Interval: 30 * time.Minute,
		},
	}
}

// envTransform maps environment variable names onto config paths:
// MINDBODY_API_KEY -> mindbody.api_key, SERVER_PORT -> server.port,
// LOG_LEVEL -> log.level, DATA_DIR -> data.dir, SYNC_INTERVAL ->
// sync.interval.
func envTransform(key string) string {
	key = strings.ToLower(key)

	// DATA_DIR and SETTINGS_PATH are flat aliases kept for operator
	// convenience.
	switch key {
	case "data_dir":
		return "data.dir"
	case "settings_path":
		return "data.settings_path"
	}

	for _, section := range []string{"mindbody", "server", "log", "data", "sync"} {
		prefix := section + "_"
		if strings.HasPrefix(key, prefix) {
			return section + "." + strings.TrimPrefix(key, prefix)
		}
	}
	return ""
}

// Load builds the configuration from defaults and the environment.
func Load() (Config, error) {
	return load(nil)
}

// load is the testable core: extra maps layer on top of the environment.
func load(extra map[string]string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	for key, value := range extra {
		if path := envTransform(key); path != "" {
			if err := k.Set(path, value); err != nil {
				return Config{}, fmt.Errorf("set %s: %w", key, err)
			}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate enforces the fail-fast startup checks.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) {
			bad := make([]string, 0, len(fields))
			for _, f := range fields {
				bad = append(bad, f.Namespace())
			}
			return fmt.Errorf("configuration invalid: %s", strings.Join(bad, ", "))
		}
		return fmt.Errorf("configuration invalid: %w", err)
	}
	return nil
}
