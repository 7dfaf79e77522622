// Package config loads the application configuration from a YAML file
// with env var overrides. A missing or broken config file falls back
// to the defaults.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
)

// ConfigFileName is the name of the config file in the base directory.
const ConfigFileName = "config.yml"

// AppConfig is the app configuration.
// Port is the port number to listen on.
// ItemCount is the size of the seeded items collection.
// FakeItemNames switches the seeded item names to generated product names.
type AppConfig struct {
	Port          int  `koanf:"port" json:"port" yaml:"port"`
	ItemCount     int  `koanf:"itemCount" json:"itemCount" yaml:"itemCount"`
	FakeItemNames bool `koanf:"fakeItemNames" json:"fakeItemNames" yaml:"fakeItemNames"`
}

// Config is the main configuration struct.
type Config struct {
	App     *AppConfig `koanf:"app" json:"app" yaml:"app"`
	BaseDir string     `koanf:"-" json:"-" yaml:"-"`

	mu sync.Mutex
}

// GetApp returns the app config.
func (c *Config) GetApp() *AppConfig {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.App
}

// EnsureConfigValues fills in defaults for any values the file left unset.
func (c *Config) EnsureConfigValues() {
	defaults := NewDefaultAppConfig()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.App == nil {
		c.App = defaults
		return
	}

	if c.App.Port == 0 {
		c.App.Port = defaults.Port
	}
	if c.App.ItemCount == 0 {
		c.App.ItemCount = defaults.ItemCount
	}
}

// Reload throws away the current values and loads a fresh copy from the file.
// Used by the config watcher.
func (c *Config) Reload() {
	filePath := filepath.Join(c.BaseDir, ConfigFileName)

	k := koanf.New(".")
	if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
		slog.Error("error loading config", "error", err)
		return
	}

	c.mu.Lock()
	if err := transformConfig(k).Unmarshal("", c); err != nil {
		c.mu.Unlock()
		slog.Error("error unmarshalling config", "error", err)
		return
	}
	c.mu.Unlock()

	c.EnsureConfigValues()
	slog.Info("configuration reloaded")
}

// transformConfig applies env var overrides: a key like app.port can be
// overridden with APP_PORT.
func transformConfig(k *koanf.Koanf) *koanf.Koanf {
	transformed := koanf.New(".")
	for key, value := range k.All() {
		envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		finalValue := value
		if envValue, exists := os.LookupEnv(envKey); exists {
			finalValue = envValue
		}
		_ = transformed.Set(key, finalValue)
	}
	return transformed
}

// MustConfig creates a new config from the YAML file in baseDir.
// In case the file does not exist or has incorrect YAML it returns
// a default config.
func MustConfig(baseDir string) *Config {
	res := NewDefaultConfig(baseDir)
	filePath := filepath.Join(baseDir, ConfigFileName)

	k := koanf.New(".")
	if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
		slog.Error("error loading config, using fallback", "error", err)
		return res
	}

	if err := transformConfig(k).Unmarshal("", res); err != nil {
		slog.Error("error loading config, using fallback", "error", err)
		return NewDefaultConfig(baseDir)
	}

	res.EnsureConfigValues()
	res.BaseDir = baseDir

	return res
}

// NewConfigFromContent creates a new config from YAML file content.
func NewConfigFromContent(content []byte) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := transformConfig(k).Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.EnsureConfigValues()
	return cfg, nil
}

// NewDefaultConfig creates a new default config.
func NewDefaultConfig(baseDir string) *Config {
	return &Config{
		App:     NewDefaultAppConfig(),
		BaseDir: baseDir,
	}
}

// NewDefaultAppConfig creates the default app config.
func NewDefaultAppConfig() *AppConfig {
	return &AppConfig{
		Port:      8080,
		ItemCount: 100,
	}
}
