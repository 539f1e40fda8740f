package prompts

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultStorageKey is the backing-store key holding the serialized collection.
const DefaultStorageKey = "@prompt_store"

// Config holds prompt library settings. ReseedEmpty replaces a stored empty
// collection with the seed set on hydration instead of keeping it empty.
type Config struct {
	StorageKey  string `toml:"storage_key"`
	ReseedEmpty bool   `toml:"reseed_empty"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	StorageKey  string
	ReseedEmpty string
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
	if overlay.ReseedEmpty {
		c.ReseedEmpty = true
	}
}

func (c *Config) loadDefaults() {
	if c.StorageKey == "" {
		c.StorageKey = DefaultStorageKey
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.StorageKey != "" {
		if v := os.Getenv(env.StorageKey); v != "" {
			c.StorageKey = v
		}
	}
	if env.ReseedEmpty != "" {
		if v := os.Getenv(env.ReseedEmpty); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.ReseedEmpty = b
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
