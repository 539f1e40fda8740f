// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, backing store, optional SQL database)
// that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/promptbook/internal/config"
	"github.com/JaimeStill/promptbook/pkg/database"
	"github.com/JaimeStill/promptbook/pkg/kv"
	"github.com/JaimeStill/promptbook/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// Database is nil unless the store driver persists through SQL.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Store     kv.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := NewLogger(&cfg.Logging, os.Stderr)

	var db database.System
	if cfg.Store.SQL() {
		var err error
		db, err = database.New(&cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
	}

	store, err := kv.New(&cfg.Store, db, logger)
	if err != nil {
		return nil, fmt.Errorf("store init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Store:     store,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
// The database is started before the store that depends on it.
func (i *Infrastructure) Start() error {
	if i.Database != nil {
		if err := i.Database.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("database start failed: %w", err)
		}
	}
	if err := i.Store.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("store start failed: %w", err)
	}
	return nil
}
