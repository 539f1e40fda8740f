package prompts

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/promptbook/pkg/kv"
	"github.com/JaimeStill/promptbook/pkg/lifecycle"
	"github.com/JaimeStill/promptbook/pkg/pagination"
)

type repo struct {
	store      kv.Store
	writer     *kv.Writer
	logger     *slog.Logger
	cfg        Config
	pagination pagination.Config
	now        func() time.Time
	newID      func() string

	mu      sync.RWMutex
	prompts []Prompt
	ready   bool
}

// Option customizes a repository.
type Option func(*repo)

// WithClock replaces the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *repo) { r.now = now }
}

// WithIDGenerator replaces the prompt id generator.
func WithIDGenerator(fn func() string) Option {
	return func(r *repo) { r.newID = fn }
}

// New creates a prompt repository implementing the System interface.
func New(
	store kv.Store,
	logger *slog.Logger,
	cfg Config,
	pagination pagination.Config,
	opts ...Option,
) System {
	logger = logger.With("system", "prompts")

	r := &repo{
		store:      store,
		writer:     kv.NewWriter(store, logger),
		logger:     logger,
		cfg:        cfg,
		pagination: pagination,
		now:        time.Now,
		newID:      uuid.NewString,
		prompts:    []Prompt{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *repo) Handler(maxBodyBytes int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxBodyBytes)
}

func (r *repo) Start(lc *lifecycle.Coordinator) error {
	r.writer.Start(lc)
	lc.OnStartup(r.Hydrate)
	return nil
}

func (r *repo) Hydrate(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ready {
		return nil
	}

	key := r.cfg.StorageKey
	data, err := r.store.Get(ctx, key)

	switch {
	case errors.Is(err, kv.ErrNotFound):
		r.prompts = Seed(r.timestamp())
		r.persist()
		r.logger.Info("library seeded", "key", key, "prompts", len(r.prompts))

	case err != nil:
		return fmt.Errorf("%w: load %s: %w", ErrStorage, key, err)

	default:
		var stored []Prompt
		if err := json.Unmarshal(data, &stored); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}

		if len(stored) == 0 && r.cfg.ReseedEmpty {
			r.prompts = Seed(r.timestamp())
			r.persist()
			r.logger.Info("empty library reseeded", "key", key)
			break
		}

		r.prompts = make([]Prompt, len(stored))
		for i, p := range stored {
			r.prompts[i] = p.clone()
		}
		r.logger.Info("library loaded", "key", key, "prompts", len(r.prompts))
	}

	r.ready = true
	return nil
}

func (r *repo) Ready() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ready
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Prompt], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.ready {
		return nil, ErrNotReady
	}

	if page != pagination.All {
		page.Normalize(r.pagination)
	}

	result := pagination.Paginate(filters.Apply(r.prompts), page)
	for i := range result.Data {
		result.Data[i] = result.Data[i].clone()
	}
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Prompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	p := r.prompts[i].clone()
	return &p, nil
}

func (r *repo) History(ctx context.Context, id string) ([]Version, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return cloneSlice(r.prompts[i].VersionHistory), nil
}

func (r *repo) Tags(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.ready {
		return nil, ErrNotReady
	}

	tags := []string{}
	for _, p := range r.prompts {
		for _, tag := range p.Tags {
			if !slices.Contains(tags, tag) {
				tags = append(tags, tag)
			}
		}
	}
	return tags, nil
}

func (r *repo) Add(ctx context.Context, cmd CreateCommand) (*Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.ready {
		return nil, ErrNotReady
	}

	title := strings.TrimSpace(cmd.Title)
	text := strings.TrimSpace(cmd.Text)
	if title == "" || text == "" {
		return nil, ErrInvalid
	}

	now := r.timestamp()
	p := Prompt{
		ID:             r.uniqueID(),
		Title:          title,
		Description:    strings.TrimSpace(cmd.Description),
		Text:           text,
		Tags:           cloneSlice(cmd.Tags),
		LLMType:        cmp.Or(cmd.LLMType, DefaultLLMType),
		Examples:       cloneSlice(cmd.Examples),
		CreatedAt:      now,
		UpdatedAt:      now,
		Version:        1,
		VersionHistory: []Version{},
	}

	r.prompts = append(r.prompts, p)
	r.persist()

	r.logger.Info("prompt added", "id", p.ID)
	out := p.clone()
	return &out, nil
}

func (r *repo) Update(ctx context.Context, id string, cmd UpdateCommand) (*Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	if blank(cmd.Title) || blank(cmd.Text) {
		return nil, ErrInvalid
	}

	p := r.prompts[i].clone()
	p.VersionHistory = append(p.VersionHistory, Version{
		Version:   p.Version,
		Text:      p.Text,
		UpdatedAt: p.UpdatedAt,
	})

	if cmd.Title != nil {
		p.Title = strings.TrimSpace(*cmd.Title)
	}
	if cmd.Description != nil {
		p.Description = strings.TrimSpace(*cmd.Description)
	}
	if cmd.Text != nil {
		p.Text = strings.TrimSpace(*cmd.Text)
	}
	if cmd.Tags != nil {
		p.Tags = cloneSlice(*cmd.Tags)
	}
	if cmd.LLMType != nil {
		p.LLMType = cmp.Or(*cmd.LLMType, DefaultLLMType)
	}
	if cmd.Examples != nil {
		p.Examples = cloneSlice(*cmd.Examples)
	}

	p.UpdatedAt = r.timestamp()
	if p.UpdatedAt.Before(p.CreatedAt) {
		p.UpdatedAt = p.CreatedAt
	}
	p.Version++

	r.prompts[i] = p
	r.persist()

	r.logger.Info("prompt updated", "id", id, "version", p.Version)
	out := p.clone()
	return &out, nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.lookup(id)
	if err != nil {
		return err
	}

	r.prompts = slices.Delete(r.prompts, i, i+1)
	r.persist()

	r.logger.Info("prompt deleted", "id", id)
	return nil
}

func (r *repo) Archive(ctx context.Context, id string) (*Prompt, error) {
	return r.setArchived(id, true)
}

func (r *repo) Restore(ctx context.Context, id string) (*Prompt, error) {
	return r.setArchived(id, false)
}

func (r *repo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.ready {
		return ErrNotReady
	}

	key := r.cfg.StorageKey

	// a queued write landing after the removal would resurrect the collection
	if err := r.writer.Flush(ctx); err != nil {
		return fmt.Errorf("%w: flush pending writes: %w", ErrStorage, err)
	}
	if err := r.store.Remove(ctx, key); err != nil {
		return fmt.Errorf("%w: remove %s: %w", ErrStorage, key, err)
	}

	r.prompts = []Prompt{}
	r.logger.Info("library cleared", "key", key)
	return nil
}

func (r *repo) Flush(ctx context.Context) error {
	return r.writer.Flush(ctx)
}

func (r *repo) setArchived(id string, archived bool) (*Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	r.prompts[i].IsArchived = archived
	r.persist()

	r.logger.Info("prompt archive state changed", "id", id, "archived", archived)
	out := r.prompts[i].clone()
	return &out, nil
}

// lookup returns the index of id. Callers hold r.mu.
func (r *repo) lookup(id string) (int, error) {
	if !r.ready {
		return -1, ErrNotReady
	}

	i := slices.IndexFunc(r.prompts, func(p Prompt) bool {
		return p.ID == id
	})
	if i < 0 {
		return -1, ErrNotFound
	}
	return i, nil
}

// persist serializes the whole collection and queues it for writing.
// Callers hold r.mu so queued payloads follow mutation order.
func (r *repo) persist() {
	data, err := json.Marshal(r.prompts)
	if err != nil {
		r.logger.Error("encode library failed", "error", err)
		return
	}
	r.writer.Enqueue(r.cfg.StorageKey, data)
}

func (r *repo) uniqueID() string {
	for {
		id := r.newID()
		if !slices.ContainsFunc(r.prompts, func(p Prompt) bool { return p.ID == id }) {
			return id
		}
	}
}

// timestamp returns the current UTC time at the millisecond precision of ISO-8601 strings.
func (r *repo) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}

func blank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) == ""
}
