package theme

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultStorageKey is the backing-store key holding the preference.
const DefaultStorageKey = "@theme_store"

// Config holds theme settings. With Persist disabled the preference lives
// in memory only and resets to the default on restart.
type Config struct {
	StorageKey string `toml:"storage_key"`
	Persist    *bool  `toml:"persist"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	StorageKey string
	Persist    string
}

// Persisted reports whether the preference is written to the backing store.
func (c *Config) Persisted() bool {
	return c.Persist == nil || *c.Persist
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.StorageKey != "" {
		c.StorageKey = overlay.StorageKey
	}
	if overlay.Persist != nil {
		c.Persist = overlay.Persist
	}
}

func (c *Config) loadDefaults() {
	if c.StorageKey == "" {
		c.StorageKey = DefaultStorageKey
	}
	if c.Persist == nil {
		persist := true
		c.Persist = &persist
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.StorageKey != "" {
		if v := os.Getenv(env.StorageKey); v != "" {
			c.StorageKey = v
		}
	}
	if env.Persist != "" {
		if v := os.Getenv(env.Persist); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.Persist = &b
			}
		}
	}
}

func (c *Config) validate() error {
	if c.StorageKey == "" {
		return fmt.Errorf("storage_key required")
	}
	return nil
}
