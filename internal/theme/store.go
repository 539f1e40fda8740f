package theme

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/JaimeStill/promptbook/pkg/kv"
	"github.com/JaimeStill/promptbook/pkg/lifecycle"
)

type store struct {
	kv     kv.Store
	writer *kv.Writer
	logger *slog.Logger
	cfg    Config

	mu       sync.RWMutex
	theme    Theme
	explicit bool
}

// New creates a theme store implementing the System interface.
func New(kvs kv.Store, logger *slog.Logger, cfg Config) System {
	logger = logger.With("system", "theme")
	return &store{
		kv:     kvs,
		writer: kv.NewWriter(kvs, logger),
		logger: logger,
		cfg:    cfg,
		theme:  Default,
	}
}

func (s *store) Handler(maxBodyBytes int64) *Handler {
	return NewHandler(s, s.logger, maxBodyBytes)
}

func (s *store) Start(lc *lifecycle.Coordinator) error {
	if !s.cfg.Persisted() {
		s.logger.Info("theme persistence disabled")
		return nil
	}

	s.writer.Start(lc)
	lc.OnStartup(s.Hydrate)
	return nil
}

// Hydrate never fails startup: a missing or unreadable preference leaves the default.
func (s *store) Hydrate(ctx context.Context) error {
	if !s.cfg.Persisted() {
		return nil
	}

	data, err := s.kv.Get(ctx, s.cfg.StorageKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logger.Warn("theme load failed", "key", s.cfg.StorageKey, "error", err)
		}
		return nil
	}

	t, err := Parse(string(data))
	if err != nil {
		s.logger.Warn("ignoring stored theme", "key", s.cfg.StorageKey, "value", string(data))
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// a preference set while loading wins over the stored one
	if !s.explicit {
		s.theme = t
	}
	s.logger.Info("theme loaded", "theme", s.theme)
	return nil
}

func (s *store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *store) SetTheme(t Theme) error {
	t, err := Parse(string(t))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = t
	s.explicit = true
	if s.cfg.Persisted() {
		s.writer.Enqueue(s.cfg.StorageKey, []byte(t))
	}

	s.logger.Info("theme set", "theme", t)
	return nil
}

func (s *store) IsDark(host Appearance) bool {
	return Effective(s.Theme(), host)
}

func (s *store) Flush(ctx context.Context) error {
	if !s.cfg.Persisted() {
		return nil
	}
	return s.writer.Flush(ctx)
}
