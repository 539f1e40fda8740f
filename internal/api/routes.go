package api

import (
	"fmt"
	"maps"
	"net/http"

	"github.com/JaimeStill/promptbook/internal/config"
	"github.com/JaimeStill/promptbook/internal/prompts"
	"github.com/JaimeStill/promptbook/internal/theme"
	"github.com/JaimeStill/promptbook/pkg/openapi"
	"github.com/JaimeStill/promptbook/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) error {
	groups := []routes.Group{
		domain.Prompts.Handler(runtime.MaxBodyBytes).Routes(),
		domain.Theme.Handler(runtime.MaxBodyBytes).Routes(),
	}

	routes.Register(mux, groups...)

	spec, err := buildSpec(cfg, groups)
	if err != nil {
		return err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(spec))

	return nil
}

func buildSpec(cfg *config.Config, groups []routes.Group) ([]byte, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	schemas := prompts.Schemas()
	maps.Copy(schemas, theme.Schemas())
	spec.Components.AddSchemas(schemas)

	routes.Describe(spec, "", groups...)

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi spec: %w", err)
	}
	return data, nil
}
