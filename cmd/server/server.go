package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JaimeStill/promptbook/internal/config"
	"github.com/JaimeStill/promptbook/internal/infrastructure"
	"github.com/JaimeStill/promptbook/pkg/formatting"
)

type Server struct {
	infra       *infrastructure.Infrastructure
	modules     *Modules
	http        *httpServer
	httpTimeout time.Duration
	failed      chan error
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"store", infra.Store.Name(),
		"max_body", formatting.FormatBytes(cfg.API.MaxBodySizeBytes(), 0),
	)

	return &Server{
		infra:       infra,
		modules:     modules,
		http:        newHTTPServer(&cfg.Server, router, infra.Logger),
		httpTimeout: cfg.Server.ShutdownTimeoutDuration(),
		failed:      make(chan error, 2),
	}, nil
}

// Failed reports fatal errors raised after Start returned: a failed
// startup hook or a listener error.
func (s *Server) Failed() <-chan error {
	return s.failed
}

func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}
	if err := s.modules.Domain.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	s.http.Start(s.failed)

	go func() {
		if err := s.infra.Lifecycle.WaitForStartup(); err != nil {
			s.infra.Logger.Error("startup failed", "error", err)
			s.failed <- err
			return
		}
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown drains HTTP traffic, flushes pending domain writes, and then
// stops the lifecycle so stores close only after their final writes.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	httpCtx, httpCancel := context.WithTimeout(ctx, s.httpTimeout)
	defer httpCancel()

	var errs []error
	if err := s.http.Shutdown(httpCtx); err != nil {
		errs = append(errs, fmt.Errorf("http: %w", err))
	}
	if err := s.modules.Domain.Flush(ctx); err != nil {
		errs = append(errs, fmt.Errorf("flush: %w", err))
	}

	remaining := timeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining = max(time.Until(deadline), time.Second)
	}
	if err := s.infra.Lifecycle.Shutdown(remaining); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
