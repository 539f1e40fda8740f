package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/JaimeStill/promptbook/pkg/database"
)

// Supported store drivers.
const (
	DriverBolt     = "bolt"
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverBlob     = "blob"
	DriverRedis    = "redis"
)

// Config selects and configures the backing store driver.
// SQL drivers are configured through database.Config.
type Config struct {
	Driver string      `toml:"driver"`
	Bolt   BoltConfig  `toml:"bolt"`
	Blob   BlobConfig  `toml:"blob"`
	Redis  RedisConfig `toml:"redis"`
}

// BoltConfig holds the bbolt file location and bucket.
type BoltConfig struct {
	Path    string `toml:"path"`
	Bucket  string `toml:"bucket"`
	Timeout string `toml:"timeout"`
}

// BlobConfig holds Azure Blob Storage connection parameters.
type BlobConfig struct {
	ContainerName    string `toml:"container_name"`
	ConnectionString string `toml:"connection_string"`
}

// RedisConfig holds Redis connection parameters.
type RedisConfig struct {
	Addr        string `toml:"addr"`
	Password    string `toml:"password"`
	DB          int    `toml:"db"`
	Prefix      string `toml:"prefix"`
	DialTimeout string `toml:"dial_timeout"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Driver               string
	BoltPath             string
	BlobContainerName    string
	BlobConnectionString string
	RedisAddr            string
	RedisPassword        string
	RedisDB              string
	RedisPrefix          string
}

// SQL reports whether the driver persists through database.System.
func (c *Config) SQL() bool {
	return c.Driver == DriverPostgres || c.Driver == DriverSQLite
}

// DatabaseDriver returns the database/sql driver name for SQL drivers.
func (c *Config) DatabaseDriver() string {
	if c.Driver == DriverSQLite {
		return database.DriverSQLite
	}
	return database.DriverPostgres
}

// BoltTimeoutDuration returns Bolt.Timeout as a time.Duration.
func (c *Config) BoltTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Bolt.Timeout)
	return d
}

// RedisDialTimeoutDuration returns Redis.DialTimeout as a time.Duration.
func (c *Config) RedisDialTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Redis.DialTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	if env != nil {
		c.loadEnv(env)
	}
	c.loadDefaults()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Driver != "" {
		c.Driver = overlay.Driver
	}
	if overlay.Bolt.Path != "" {
		c.Bolt.Path = overlay.Bolt.Path
	}
	if overlay.Bolt.Bucket != "" {
		c.Bolt.Bucket = overlay.Bolt.Bucket
	}
	if overlay.Bolt.Timeout != "" {
		c.Bolt.Timeout = overlay.Bolt.Timeout
	}
	if overlay.Blob.ContainerName != "" {
		c.Blob.ContainerName = overlay.Blob.ContainerName
	}
	if overlay.Blob.ConnectionString != "" {
		c.Blob.ConnectionString = overlay.Blob.ConnectionString
	}
	if overlay.Redis.Addr != "" {
		c.Redis.Addr = overlay.Redis.Addr
	}
	if overlay.Redis.Password != "" {
		c.Redis.Password = overlay.Redis.Password
	}
	if overlay.Redis.DB != 0 {
		c.Redis.DB = overlay.Redis.DB
	}
	if overlay.Redis.Prefix != "" {
		c.Redis.Prefix = overlay.Redis.Prefix
	}
	if overlay.Redis.DialTimeout != "" {
		c.Redis.DialTimeout = overlay.Redis.DialTimeout
	}
}

func (c *Config) loadDefaults() {
	if c.Driver == "" {
		c.Driver = DriverBolt
	}
	if c.Bolt.Path == "" {
		c.Bolt.Path = defaultBoltPath()
	}
	if c.Bolt.Bucket == "" {
		c.Bolt.Bucket = "promptbook"
	}
	if c.Bolt.Timeout == "" {
		c.Bolt.Timeout = "1s"
	}
	if c.Blob.ContainerName == "" {
		c.Blob.ContainerName = "promptbook"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.DialTimeout == "" {
		c.Redis.DialTimeout = "5s"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Driver != "" {
		if v := os.Getenv(env.Driver); v != "" {
			c.Driver = v
		}
	}
	if env.BoltPath != "" {
		if v := os.Getenv(env.BoltPath); v != "" {
			c.Bolt.Path = v
		}
	}
	if env.BlobContainerName != "" {
		if v := os.Getenv(env.BlobContainerName); v != "" {
			c.Blob.ContainerName = v
		}
	}
	if env.BlobConnectionString != "" {
		if v := os.Getenv(env.BlobConnectionString); v != "" {
			c.Blob.ConnectionString = v
		}
	}
	if env.RedisAddr != "" {
		if v := os.Getenv(env.RedisAddr); v != "" {
			c.Redis.Addr = v
		}
	}
	if env.RedisPassword != "" {
		if v := os.Getenv(env.RedisPassword); v != "" {
			c.Redis.Password = v
		}
	}
	if env.RedisDB != "" {
		if v := os.Getenv(env.RedisDB); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.Redis.DB = n
			}
		}
	}
	if env.RedisPrefix != "" {
		if v := os.Getenv(env.RedisPrefix); v != "" {
			c.Redis.Prefix = v
		}
	}
}

func (c *Config) validate() error {
	switch c.Driver {
	case DriverMemory, DriverPostgres, DriverSQLite:
	case DriverBolt:
		if _, err := time.ParseDuration(c.Bolt.Timeout); err != nil {
			return fmt.Errorf("invalid bolt timeout: %w", err)
		}
	case DriverBlob:
		if c.Blob.ConnectionString == "" {
			return fmt.Errorf("blob connection_string required")
		}
	case DriverRedis:
		if _, err := time.ParseDuration(c.Redis.DialTimeout); err != nil {
			return fmt.Errorf("invalid redis dial_timeout: %w", err)
		}
	default:
		return fmt.Errorf("unsupported driver: %q", c.Driver)
	}
	return nil
}

func defaultBoltPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".promptbook", "promptbook.db")
	}
	return filepath.Join(dir, "promptbook", "promptbook.db")
}
