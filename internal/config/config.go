// Package config resolves jekafood settings from defaults, an optional YAML
// file, a .env file and the process environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/HullPerse/jekafood/internal/app"
	applog "github.com/HullPerse/jekafood/internal/log"
)

const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

type AMQPSection struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
}

type Config struct {
	Backend  string      `yaml:"backend"`
	DBPath   string      `yaml:"db_path"`
	JSONPath string      `yaml:"json_path"`
	Timezone string      `yaml:"timezone"`
	LogLevel string      `yaml:"log_level"`
	AMQP     AMQPSection `yaml:"amqp"`
}

// Default returns the built-in settings. Paths fall back to the working
// directory when the user config dir cannot be resolved.
func Default() Config {
	dbPath, err := app.DefaultDBPath()
	if err != nil {
		dbPath = "jekafood.db"
	}
	jsonPath, err := app.DefaultJSONPath()
	if err != nil {
		jsonPath = "data-storage.json"
	}
	return Config{
		Backend:  BackendSQLite,
		DBPath:   dbPath,
		JSONPath: jsonPath,
		Timezone: "UTC",
		LogLevel: "warn",
		AMQP: AMQPSection{
			Exchange:   "jekafood",
			RoutingKey: "store.changed",
		},
	}
}

// Load builds the effective configuration. An empty path means the default
// config file; a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		if p, err := app.DefaultConfigPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return cfg, err
		}
	}
	// .env is optional; a missing file keeps the environment as is.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	applyEnv(&cfg)
	return cfg, nil
}

// LoadFile reads only defaults plus the file at path, ignoring the
// environment.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if err := mergeFile(&cfg, path); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Backend = getEnv("JEKAFOOD_BACKEND", cfg.Backend)
	cfg.DBPath = getEnv("JEKAFOOD_DB_PATH", cfg.DBPath)
	cfg.JSONPath = getEnv("JEKAFOOD_JSON_PATH", cfg.JSONPath)
	cfg.Timezone = getEnv("JEKAFOOD_TIMEZONE", cfg.Timezone)
	cfg.LogLevel = getEnv("JEKAFOOD_LOG_LEVEL", cfg.LogLevel)
	cfg.AMQP.URL = getEnv("JEKAFOOD_AMQP_URL", cfg.AMQP.URL)
	cfg.AMQP.Exchange = getEnv("JEKAFOOD_AMQP_EXCHANGE", cfg.AMQP.Exchange)
	cfg.AMQP.RoutingKey = getEnv("JEKAFOOD_AMQP_ROUTING_KEY", cfg.AMQP.RoutingKey)
}

// Save writes cfg as YAML, creating the parent directory.
func (c Config) Save(path string) error {
	if err := app.EnsureDir(path); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(strings.TrimSpace(c.Timezone))
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// DataPath is the file the selected backend persists to.
func (c Config) DataPath() string {
	if c.Backend == BackendJSON {
		return c.JSONPath
	}
	return c.DBPath
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var problems []string

	switch c.Backend {
	case BackendSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			problems = append(problems, "db_path cannot be empty when using the sqlite backend")
		}
	case BackendJSON:
		if strings.TrimSpace(c.JSONPath) == "" {
			problems = append(problems, "json_path cannot be empty when using the json backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid backend '%s': must be one of [%s %s]", c.Backend, BackendSQLite, BackendJSON))
	}

	if _, err := c.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("invalid timezone '%s'", c.Timezone))
	}
	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}

	if c.AMQP.URL != "" {
		if u, err := url.Parse(c.AMQP.URL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL: %v", err))
		} else if u.Scheme != "amqp" && u.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", u.Scheme))
		}
		if c.AMQP.Exchange == "" {
			problems = append(problems, "amqp.exchange cannot be empty when amqp.url is set")
		}
		if c.AMQP.RoutingKey == "" {
			problems = append(problems, "amqp.routing_key cannot be empty when amqp.url is set")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// Keys lists the settable keys in display order.
func Keys() []string {
	keys := make([]string, 0, len(accessors))
	for k := range accessors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value stored under a dotted key.
func (c *Config) Get(key string) (string, error) {
	acc, ok := accessors[normalizeKey(key)]
	if !ok {
		return "", fmt.Errorf("unknown config key %q", key)
	}
	return *acc(c), nil
}

// Set assigns value to a dotted key such as amqp.url.
func (c *Config) Set(key, value string) error {
	acc, ok := accessors[normalizeKey(key)]
	if !ok {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	*acc(c) = strings.TrimSpace(value)
	return nil
}

var accessors = map[string]func(*Config) *string{
	"backend":          func(c *Config) *string { return &c.Backend },
	"db_path":          func(c *Config) *string { return &c.DBPath },
	"json_path":        func(c *Config) *string { return &c.JSONPath },
	"timezone":         func(c *Config) *string { return &c.Timezone },
	"log_level":        func(c *Config) *string { return &c.LogLevel },
	"amqp.url":         func(c *Config) *string { return &c.AMQP.URL },
	"amqp.exchange":    func(c *Config) *string { return &c.AMQP.Exchange },
	"amqp.routing_key": func(c *Config) *string { return &c.AMQP.RoutingKey },
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(key)), "-", "_")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
