// Package config loads the service configuration from TOML files,
// an environment-specific overlay, and PROMPTBOOK_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/promptbook/internal/prompts"
	"github.com/JaimeStill/promptbook/internal/theme"
	"github.com/JaimeStill/promptbook/pkg/database"
	"github.com/JaimeStill/promptbook/pkg/kv"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvPromptbookEnv             = "PROMPTBOOK_ENV"
	EnvPromptbookShutdownTimeout = "PROMPTBOOK_SHUTDOWN_TIMEOUT"
	EnvPromptbookVersion         = "PROMPTBOOK_VERSION"
)

var storeEnv = &kv.Env{
	Driver:               "PROMPTBOOK_STORE_DRIVER",
	BoltPath:             "PROMPTBOOK_STORE_BOLT_PATH",
	BlobContainerName:    "PROMPTBOOK_STORE_BLOB_CONTAINER_NAME",
	BlobConnectionString: "PROMPTBOOK_STORE_BLOB_CONNECTION_STRING",
	RedisAddr:            "PROMPTBOOK_STORE_REDIS_ADDR",
	RedisPassword:        "PROMPTBOOK_STORE_REDIS_PASSWORD",
	RedisDB:              "PROMPTBOOK_STORE_REDIS_DB",
	RedisPrefix:          "PROMPTBOOK_STORE_REDIS_PREFIX",
}

var databaseEnv = &database.Env{
	Path:            "PROMPTBOOK_DB_PATH",
	Host:            "PROMPTBOOK_DB_HOST",
	Port:            "PROMPTBOOK_DB_PORT",
	Name:            "PROMPTBOOK_DB_NAME",
	User:            "PROMPTBOOK_DB_USER",
	Password:        "PROMPTBOOK_DB_PASSWORD",
	SSLMode:         "PROMPTBOOK_DB_SSL_MODE",
	MaxOpenConns:    "PROMPTBOOK_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "PROMPTBOOK_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "PROMPTBOOK_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "PROMPTBOOK_DB_CONN_TIMEOUT",
}

var libraryEnv = &prompts.Env{
	StorageKey:  "PROMPTBOOK_LIBRARY_STORAGE_KEY",
	ReseedEmpty: "PROMPTBOOK_LIBRARY_RESEED_EMPTY",
}

var themeEnv = &theme.Env{
	StorageKey: "PROMPTBOOK_THEME_STORAGE_KEY",
	Persist:    "PROMPTBOOK_THEME_PERSIST",
}

// Config is the root configuration for the Promptbook service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Store           kv.Config       `toml:"store"`
	Database        database.Config `toml:"database"`
	API             APIConfig       `toml:"api"`
	Library         prompts.Config  `toml:"library"`
	Theme           theme.Config    `toml:"theme"`
	Logging         LoggingConfig   `toml:"logging"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the PROMPTBOOK_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvPromptbookEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Parse decodes TOML data into a Config without finalizing it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Store.Merge(&overlay.Store)
	c.Database.Merge(&overlay.Database)
	c.API.Merge(&overlay.API)
	c.Library.Merge(&overlay.Library)
	c.Theme.Merge(&overlay.Theme)
	c.Logging.Merge(&overlay.Logging)
}

// Finalize applies defaults, environment variable overrides, and validation
// to the root config and every sub-config. The database config is only
// finalized when the store driver persists through SQL.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Store.Finalize(storeEnv); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if c.Store.SQL() {
		c.Database.Driver = c.Store.DatabaseDriver()
		if c.Database.Driver == database.DriverSQLite && c.Database.Path == "" {
			c.Database.Path = filepath.Join(filepath.Dir(c.Store.Bolt.Path), "promptbook.sqlite")
		}
		if err := c.Database.Finalize(databaseEnv); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Library.Finalize(libraryEnv); err != nil {
		return fmt.Errorf("library: %w", err)
	}
	if err := c.Theme.Finalize(themeEnv); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	if err := c.Logging.Finalize(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvPromptbookShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvPromptbookVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

func overlayPath() string {
	if env := os.Getenv(EnvPromptbookEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
