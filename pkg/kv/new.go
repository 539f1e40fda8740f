package kv

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/promptbook/pkg/database"
)

// New creates the store selected by cfg.Driver. SQL drivers require db;
// other drivers ignore it.
func New(cfg *Config, db database.System, logger *slog.Logger) (System, error) {
	switch cfg.Driver {
	case DriverBolt:
		return newBolt(cfg, logger), nil
	case DriverMemory:
		return NewMemory(), nil
	case DriverPostgres, DriverSQLite:
		if db == nil {
			return nil, fmt.Errorf("driver %s requires a database connection", cfg.Driver)
		}
		return newSQL(cfg.Driver, db, logger), nil
	case DriverBlob:
		return newBlob(cfg, logger)
	case DriverRedis:
		return newRedis(cfg, logger), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", cfg.Driver)
	}
}
