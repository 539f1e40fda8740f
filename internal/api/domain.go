package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/JaimeStill/promptbook/internal/config"
	"github.com/JaimeStill/promptbook/internal/prompts"
	"github.com/JaimeStill/promptbook/internal/theme"
	"github.com/JaimeStill/promptbook/pkg/lifecycle"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Prompts prompts.System
	Theme   theme.System
}

// NewDomain creates all domain systems from the API runtime.
// Each system owns a write-behind queue over the shared store.
func NewDomain(cfg *config.Config, runtime *Runtime) *Domain {
	return &Domain{
		Prompts: prompts.New(
			runtime.Store,
			runtime.Logger,
			cfg.Library,
			runtime.Pagination,
		),
		Theme: theme.New(
			runtime.Store,
			runtime.Logger,
			cfg.Theme,
		),
	}
}

// Start registers hydration and background writers with the coordinator.
func (d *Domain) Start(lc *lifecycle.Coordinator) error {
	if err := d.Prompts.Start(lc); err != nil {
		return fmt.Errorf("prompts start failed: %w", err)
	}
	if err := d.Theme.Start(lc); err != nil {
		return fmt.Errorf("theme start failed: %w", err)
	}
	return nil
}

// Flush waits for every domain's pending writes.
func (d *Domain) Flush(ctx context.Context) error {
	return errors.Join(
		d.Prompts.Flush(ctx),
		d.Theme.Flush(ctx),
	)
}
