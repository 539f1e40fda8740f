// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/JaimeStill/promptbook/internal/config"
	"github.com/JaimeStill/promptbook/pkg/middleware"
	"github.com/JaimeStill/promptbook/pkg/module"
)

// NewModule creates the API module serving domain's handlers.
// Requests are rejected with 503 until every startup hook has completed.
func NewModule(cfg *config.Config, runtime *Runtime, domain *Domain) (*module.Module, error) {
	mux := http.NewServeMux()
	if err := registerRoutes(mux, domain, cfg, runtime); err != nil {
		return nil, err
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.Ready(runtime.Lifecycle))

	return m, nil
}
