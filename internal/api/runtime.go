package api

import (
	"github.com/JaimeStill/promptbook/internal/config"
	"github.com/JaimeStill/promptbook/internal/infrastructure"
	"github.com/JaimeStill/promptbook/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination   pagination.Config
	MaxBodyBytes int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Store:     infra.Store,
		},
		Pagination:   cfg.API.Pagination,
		MaxBodyBytes: cfg.API.MaxBodySizeBytes(),
	}
}
