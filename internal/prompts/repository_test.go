package prompts_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/JaimeStill/promptbook/internal/prompts"
	"github.com/JaimeStill/promptbook/pkg/kv"
	"github.com/JaimeStill/promptbook/pkg/lifecycle"
	"github.com/JaimeStill/promptbook/pkg/pagination"
)

var testPagination = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

// fakeStore counts writes and can fail removal.
type fakeStore struct {
	*kv.Memory

	mu        sync.Mutex
	sets      int
	removeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{Memory: kv.NewMemory()}
}

func (s *fakeStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.sets++
	s.mu.Unlock()
	return s.Memory.Set(ctx, key, value)
}

func (s *fakeStore) Remove(ctx context.Context, key string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	return s.Memory.Remove(ctx, key)
}

func (s *fakeStore) writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}

func (s *fakeStore) stored(t *testing.T) []prompts.Prompt {
	t.Helper()

	data, err := s.Get(context.Background(), prompts.DefaultStorageKey)
	if err != nil {
		t.Fatalf("stored library: %v", err)
	}

	var out []prompts.Prompt
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("decode stored library: %v", err)
	}
	return out
}

type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func counterIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("p-%d", n)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newSystem(store kv.Store, cfg prompts.Config, opts ...prompts.Option) prompts.System {
	if cfg.StorageKey == "" {
		cfg.StorageKey = prompts.DefaultStorageKey
	}
	clock := &stepClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	opts = append([]prompts.Option{
		prompts.WithClock(clock.Now),
		prompts.WithIDGenerator(counterIDs()),
	}, opts...)
	return prompts.New(store, discardLogger(), cfg, testPagination, opts...)
}

func startSystem(t *testing.T, store kv.Store, cfg prompts.Config, opts ...prompts.Option) prompts.System {
	t.Helper()

	sys := newSystem(store, cfg, opts...)
	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := lc.WaitForStartup(); err != nil {
		t.Fatalf("WaitForStartup() error = %v", err)
	}
	t.Cleanup(func() {
		_ = lc.Shutdown(5 * time.Second)
	})
	return sys
}

func flush(t *testing.T, sys prompts.System) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sys.Flush(ctx); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
}

func listAll(t *testing.T, sys prompts.System) []prompts.Prompt {
	t.Helper()

	result, err := sys.List(context.Background(), pagination.All, prompts.Filters{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	return result.Data
}

func addPrompt(t *testing.T, sys prompts.System, title, text string) *prompts.Prompt {
	t.Helper()

	p, err := sys.Add(context.Background(), prompts.CreateCommand{Title: title, Text: text})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	return p
}

func ptr[T any](v T) *T { return &v }

func TestHydrateAbsentSeedsAndWrites(t *testing.T) {
	store := newFakeStore()
	sys := startSystem(t, store, prompts.Config{})

	if !sys.Ready() {
		t.Fatal("system should be ready after startup")
	}

	got := listAll(t, sys)
	if len(got) != 3 {
		t.Fatalf("prompts: got %d, want 3", len(got))
	}
	for i, want := range []string{"1", "2", "3"} {
		if got[i].ID != want {
			t.Errorf("prompt %d id: got %s, want %s", i, got[i].ID, want)
		}
		if got[i].Version != 1 || len(got[i].VersionHistory) != 0 {
			t.Errorf("prompt %s: seed should be version 1 with no history", got[i].ID)
		}
	}

	flush(t, sys)
	if stored := store.stored(t); len(stored) != 3 {
		t.Errorf("stored prompts: got %d, want 3", len(stored))
	}
}

func TestHydrateEmptyCollection(t *testing.T) {
	tests := []struct {
		name   string
		reseed bool
		want   int
	}{
		{"kept empty by default", false, 0},
		{"reseeded when configured", true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			store.Memory.Set(context.Background(), prompts.DefaultStorageKey, []byte("[]"))

			sys := startSystem(t, store, prompts.Config{ReseedEmpty: tt.reseed})

			if got := len(listAll(t, sys)); got != tt.want {
				t.Errorf("prompts: got %d, want %d", got, tt.want)
			}

			flush(t, sys)
			if got := len(store.stored(t)); got != tt.want {
				t.Errorf("stored prompts: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHydrateAdoptsStoredCollection(t *testing.T) {
	created := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	stored := []prompts.Prompt{{
		ID:         "abc",
		Title:      "Stored",
		Text:       "v3 text",
		Tags:       []string{"x"},
		LLMType:    prompts.LLMClaude2,
		Examples:   []prompts.Example{},
		CreatedAt:  created,
		UpdatedAt:  created.Add(time.Hour),
		IsArchived: true,
		Version:    3,
		VersionHistory: []prompts.Version{
			{Version: 1, Text: "v1 text", UpdatedAt: created},
			{Version: 2, Text: "v2 text", UpdatedAt: created.Add(time.Minute)},
		},
	}}
	data, _ := json.Marshal(stored)

	store := newFakeStore()
	store.Memory.Set(context.Background(), prompts.DefaultStorageKey, data)

	sys := startSystem(t, store, prompts.Config{})

	got, err := sys.Find(context.Background(), "abc")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if !reflect.DeepEqual(*got, stored[0]) {
		t.Errorf("adopted prompt differs:\ngot  %+v\nwant %+v", *got, stored[0])
	}
	if store.writes() != 0 {
		t.Errorf("hydrating a stored library should not write, got %d writes", store.writes())
	}
}

func TestHydrateUndecodable(t *testing.T) {
	store := newFakeStore()
	store.Memory.Set(context.Background(), prompts.DefaultStorageKey, []byte("{not json"))

	sys := newSystem(store, prompts.Config{})
	lc := lifecycle.New()
	t.Cleanup(func() { _ = lc.Shutdown(5 * time.Second) })

	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := lc.WaitForStartup(); err == nil {
		t.Fatal("expected startup to fail on an undecodable library")
	}
	if sys.Ready() {
		t.Error("system should not be ready")
	}
	if _, err := sys.Add(context.Background(), prompts.CreateCommand{Title: "T", Text: "X"}); !errors.Is(err, prompts.ErrNotReady) {
		t.Errorf("Add() error = %v, want ErrNotReady", err)
	}
}

func TestHydrateTwiceIsNoop(t *testing.T) {
	store := newFakeStore()
	sys := startSystem(t, store, prompts.Config{})
	addPrompt(t, sys, "Mine", "text")

	if err := sys.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate() error = %v", err)
	}
	if got := len(listAll(t, sys)); got != 4 {
		t.Errorf("prompts: got %d, want 4", got)
	}
}

func TestOperationsBeforeHydrate(t *testing.T) {
	sys := newSystem(newFakeStore(), prompts.Config{})
	ctx := context.Background()

	if _, err := sys.List(ctx, pagination.All, prompts.Filters{}); !errors.Is(err, prompts.ErrNotReady) {
		t.Errorf("List() error = %v, want ErrNotReady", err)
	}
	if _, err := sys.Find(ctx, "1"); !errors.Is(err, prompts.ErrNotReady) {
		t.Errorf("Find() error = %v, want ErrNotReady", err)
	}
	if err := sys.Delete(ctx, "1"); !errors.Is(err, prompts.ErrNotReady) {
		t.Errorf("Delete() error = %v, want ErrNotReady", err)
	}
	if err := sys.DeleteAll(ctx); !errors.Is(err, prompts.ErrNotReady) {
		t.Errorf("DeleteAll() error = %v, want ErrNotReady", err)
	}
}

func TestAddAssignsServerFields(t *testing.T) {
	sys := startSystem(t, newFakeStore(), prompts.Config{})

	p, err := sys.Add(context.Background(), prompts.CreateCommand{
		Title:       "  T  ",
		Description: " d ",
		Text:        " X ",
		Tags:        []string{"a", "a", "b"},
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if p.ID == "" {
		t.Error("id should be assigned")
	}
	if p.Title != "T" || p.Text != "X" || p.Description != "d" {
		t.Errorf("text fields not trimmed: %+v", p)
	}
	if p.Version != 1 || len(p.VersionHistory) != 0 || p.IsArchived {
		t.Errorf("new prompt state: version=%d history=%d archived=%v", p.Version, len(p.VersionHistory), p.IsArchived)
	}
	if !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Errorf("createdAt %v != updatedAt %v", p.CreatedAt, p.UpdatedAt)
	}
	if p.LLMType != prompts.DefaultLLMType {
		t.Errorf("llmType: got %s, want %s", p.LLMType, prompts.DefaultLLMType)
	}
	// tag de-duplication belongs to the form layer
	if !reflect.DeepEqual(p.Tags, []string{"a", "a", "b"}) {
		t.Errorf("tags: got %v", p.Tags)
	}
}

func TestAddValidation(t *testing.T) {
	sys := startSystem(t, newFakeStore(), prompts.Config{})

	tests := []struct {
		name string
		cmd  prompts.CreateCommand
	}{
		{"blank title", prompts.CreateCommand{Title: "   ", Text: "X"}},
		{"blank text", prompts.CreateCommand{Title: "T", Text: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := sys.Add(context.Background(), tt.cmd); !errors.Is(err, prompts.ErrInvalid) {
				t.Errorf("Add() error = %v, want ErrInvalid", err)
			}
		})
	}

	if got := len(listAll(t, sys)); got != 3 {
		t.Errorf("prompts: got %d, want 3", got)
	}
}

func TestAddIDsAreDistinct(t *testing.T) {
	sys := startSystem(t, newFakeStore(), prompts.Config{}, prompts.WithIDGenerator(func() string {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}))

	seen := map[string]bool{}
	for _, p := range listAll(t, sys) {
		seen[p.ID] = true
	}

	for i := range 50 {
		p := addPrompt(t, sys, fmt.Sprintf("T%d", i), "X")
		if seen[p.ID] {
			t.Fatalf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestAddRegeneratesCollidingID(t *testing.T) {
	ids := []string{"1", "2", "fresh"}
	gen := func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	sys := startSystem(t, newFakeStore(), prompts.Config{}, prompts.WithIDGenerator(gen))

	p := addPrompt(t, sys, "T", "X")
	if p.ID != "fresh" {
		t.Errorf("id: got %s, want fresh", p.ID)
	}
}

func TestConcurrentAdds(t *testing.T) {
	sys := startSystem(t, newFakeStore(), prompts.Config{})

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Go(func() {
			if _, err := sys.Add(context.Background(), prompts.CreateCommand{Title: fmt.Sprintf("T%d", i), Text: "X"}); err != nil {
				t.Errorf("Add() error = %v", err)
			}
		})
	}
	wg.Wait()

	all := listAll(t, sys)
	if len(all) != 23 {
		t.Fatalf("prompts: got %d, want 23", len(all))
	}

	seen := map[string]bool{}
	for _, p := range all {
		if seen[p.ID] {
			t.Errorf("duplicate id %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestUpdateSnapshotsPreviousState(t *testing.T) {
	sys := startSystem(t, newFakeStore(), prompts.Config{})
	orig := addPrompt(t, sys, "T", "original")

	updated, err := sys.Update(context.Background(), orig.ID, prompts.UpdateCommand{Text: ptr("changed")})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Version != 2 {
		t.Errorf("version: got %d, want 2", updated.Version)
	}
	want := []prompts.Version{{Version: 1, Text: "original", UpdatedAt: orig.UpdatedAt}}
	if !reflect.DeepEqual(updated.VersionHistory, want) {
		t.Errorf("history: got %+v, want %+v", updated.VersionHistory, want)
	}
	if updated.Text != "changed" || updated.Title != "T" {
		t.Errorf("fields: got title=%q text=%q", updated.Title, updated.Text)
	}
	if !updated.CreatedAt.Equal(orig.CreatedAt) {
		t.Error("createdAt must not change")
	}
	if !updated.UpdatedAt.After(orig.UpdatedAt) {
		t.Errorf("updatedAt %v should be after %v", updated.UpdatedAt, orig.UpdatedAt)
	}
}

func TestUpdateRepeatedly(t *testing.T) {
	sys := startSystem(t, newFakeStore(), prompts.Config{})
	p := addPrompt(t, sys, "T", "v1")

	const n = 5
	for i := range n {
		text := fmt.Sprintf("v%d", i+2)
		if _, err := sys.Update(context.Background(), p.ID, prompts.UpdateCommand{Text: &text}); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	}

	got, _ := sys.Find(context.Background(), p.ID)
	if got.Version != n+1 {
		t.Errorf("version: got %d, want %d", got.Version, n+1)
	}
	if len(got.VersionHistory) != n {
		t.Fatalf("history length: got %d, want %d", len(got.VersionHistory), n)
	}
	for i, v := range got.VersionHistory {
		if v.Version != i+1 || v.Text != fmt.Sprintf("v%d", i+1) {
			t.Errorf("history[%d]: got %+v", i, v)
		}
	}

	history, err := sys.History(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if !reflect.DeepEqual(history, got.VersionHistory) {
		t.Error("History() should match versionHistory")
	}
}

func TestUpdateRejectsBlankRequiredFields(t *testing.T) {
	sys := startSystem(t, newFakeStore(), prompts.Config{})
	p := addPrompt(t, sys, "T", "X")

	if _, err := sys.Update(context.Background(), p.ID, prompts.UpdateCommand{Text: ptr("  ")}); !errors.Is(err, prompts.ErrInvalid) {
		t.Errorf("Update() error = %v, want ErrInvalid", err)
	}

	got, _ := sys.Find(context.Background(), p.ID)
	if got.Version != 1 || got.Text != "X" {
		t.Errorf("state changed after rejected update: %+v", got)
	}
}

func TestUnknownIDLeavesStateUntouched(t *testing.T) {
	store := newFakeStore()
	sys := startSystem(t, store, prompts.Config{})
	flush(t, sys)

	before := listAll(t, sys)
	writes := store.writes()
	ctx := context.Background()

	if _, err := sys.Update(ctx, "missing", prompts.UpdateCommand{Text: ptr("x")}); !errors.Is(err, prompts.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
	if err := sys.Delete(ctx, "missing"); !errors.Is(err, prompts.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
	if _, err := sys.Archive(ctx, "missing"); !errors.Is(err, prompts.ErrNotFound) {
		t.Errorf("Archive() error = %v, want ErrNotFound", err)
	}
	if _, err := sys.Restore(ctx, "missing"); !errors.Is(err, prompts.ErrNotFound) {
		t.Errorf("Restore() error = %v, want ErrNotFound", err)
	}

	flush(t, sys)
	if !reflect.DeepEqual(listAll(t, sys), before) {
		t.Error("collection changed after operations on an unknown id")
	}
	if store.writes() != writes {
		t.Errorf("writes: got %d, want %d", store.writes(), writes)
	}
}

func TestArchiveRestore(t *testing.T) {
	sys := startSystem(t, newFakeStore(), prompts.Config{})
	p := addPrompt(t, sys, "T", "X")
	updated, _ := sys.Update(context.Background(), p.ID, prompts.UpdateCommand{Text: ptr("Y")})

	archived, err := sys.Archive(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Archive() error = %v", err)
	}
	if !archived.IsArchived {
		t.Error("prompt should be archived")
	}

	restored, err := sys.Restore(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if restored.IsArchived {
		t.Error("prompt should be restored")
	}

	if restored.Version != updated.Version || restored.Text != updated.Text ||
		!reflect.DeepEqual(restored.VersionHistory, updated.VersionHistory) ||
		!restored.UpdatedAt.Equal(updated.UpdatedAt) {
		t.Errorf("archive round trip changed content:\ngot  %+v\nwant %+v", restored, updated)
	}
}

func TestDeleteIsIdempotentOnCollection(t *testing.T) {
	sys := startSystem(t, newFakeStore(), prompts.Config{})

	if err := sys.Delete(context.Background(), "2"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	for _, p := range listAll(t, sys) {
		if p.ID == "2" {
			t.Fatal("deleted prompt still listed")
		}
	}

	if err := sys.Delete(context.Background(), "2"); !errors.Is(err, prompts.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
	if got := len(listAll(t, sys)); got != 2 {
		t.Errorf("prompts: got %d, want 2", got)
	}
}

func TestDeleteAll(t *testing.T) {
	store := newFakeStore()
	sys := startSystem(t, store, prompts.Config{})
	addPrompt(t, sys, "T", "X")

	if err := sys.DeleteAll(context.Background()); err != nil {
		t.Fatalf("DeleteAll() error = %v", err)
	}

	if got := len(listAll(t, sys)); got != 0 {
		t.Errorf("prompts: got %d, want 0", got)
	}

	flush(t, sys)
	if _, err := store.Get(context.Background(), prompts.DefaultStorageKey); !errors.Is(err, kv.ErrNotFound) {
		t.Errorf("stored key: got err %v, want kv.ErrNotFound", err)
	}
}

func TestDeleteAllStorageFailure(t *testing.T) {
	store := newFakeStore()
	sys := startSystem(t, store, prompts.Config{})
	addPrompt(t, sys, "T", "X")

	before := listAll(t, sys)
	store.removeErr = errors.New("disk unavailable")

	err := sys.DeleteAll(context.Background())
	if !errors.Is(err, prompts.ErrStorage) {
		t.Fatalf("DeleteAll() error = %v, want ErrStorage", err)
	}
	if prompts.MapHTTPStatus(err) != 502 {
		t.Errorf("status: got %d, want 502", prompts.MapHTTPStatus(err))
	}

	if after := listAll(t, sys); !reflect.DeepEqual(before, after) {
		t.Error("collection changed after failed DeleteAll")
	}
}

func TestPersistedPayloadMatchesMemory(t *testing.T) {
	store := newFakeStore()
	sys := startSystem(t, store, prompts.Config{})

	p := addPrompt(t, sys, "T", "X")
	sys.Update(context.Background(), p.ID, prompts.UpdateCommand{Tags: &[]string{"go"}})
	sys.Archive(context.Background(), "1")
	sys.Delete(context.Background(), "3")

	flush(t, sys)
	if stored := store.stored(t); !reflect.DeepEqual(stored, listAll(t, sys)) {
		t.Errorf("stored library differs from memory:\nstored %+v\nmemory %+v", stored, listAll(t, sys))
	}
}

func TestPersistedFieldNames(t *testing.T) {
	store := newFakeStore()
	sys := startSystem(t, store, prompts.Config{})
	flush(t, sys)

	data, _ := store.Get(context.Background(), prompts.DefaultStorageKey)
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("stored library is not a JSON array: %v", err)
	}

	for _, field := range []string{
		"id", "title", "description", "text", "tags", "llmType", "examples",
		"createdAt", "updatedAt", "isArchived", "version", "versionHistory",
	} {
		if _, ok := raw[0][field]; !ok {
			t.Errorf("missing field %s", field)
		}
	}
}

func TestPersistedTimestampsUseMilliseconds(t *testing.T) {
	store := newFakeStore()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sys := startSystem(t, store, prompts.Config{}, prompts.WithClock(func() time.Time { return day }))

	p := addPrompt(t, sys, "Digest", "Summarize {{input}}")
	if _, err := sys.Update(context.Background(), p.ID, prompts.UpdateCommand{Text: ptr("Summarize briefly")}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	flush(t, sys)

	data, _ := store.Get(context.Background(), prompts.DefaultStorageKey)
	var raw []struct {
		ID             string `json:"id"`
		CreatedAt      string `json:"createdAt"`
		VersionHistory []struct {
			UpdatedAt string `json:"updatedAt"`
		} `json:"versionHistory"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}

	for _, r := range raw {
		if r.ID != p.ID {
			continue
		}
		if r.CreatedAt != "2024-01-01T00:00:00.000Z" {
			t.Errorf("createdAt = %q, want 2024-01-01T00:00:00.000Z", r.CreatedAt)
		}
		if len(r.VersionHistory) != 1 || r.VersionHistory[0].UpdatedAt != "2024-01-01T00:00:00.000Z" {
			t.Errorf("versionHistory = %+v", r.VersionHistory)
		}
		return
	}
	t.Fatalf("prompt %s not persisted", p.ID)
}

func TestReadsReturnCopies(t *testing.T) {
	sys := startSystem(t, newFakeStore(), prompts.Config{})

	p, _ := sys.Find(context.Background(), "1")
	p.Tags[0] = "mutated"
	p.Title = "mutated"

	again, _ := sys.Find(context.Background(), "1")
	if again.Tags[0] == "mutated" || again.Title == "mutated" {
		t.Error("caller mutation leaked into repository state")
	}
}

func TestListAppliesFiltersAndPages(t *testing.T) {
	sys := startSystem(t, newFakeStore(), prompts.Config{})
	sys.Archive(context.Background(), "2")

	active := false
	result, err := sys.List(
		context.Background(),
		pagination.PageRequest{Page: 1, PageSize: 1},
		prompts.Filters{Archived: &active},
	)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if result.Total != 2 || result.TotalPages != 2 {
		t.Errorf("total=%d pages=%d, want 2 and 2", result.Total, result.TotalPages)
	}
	if len(result.Data) != 1 || result.Data[0].ID != "1" {
		t.Errorf("data: got %+v", result.Data)
	}

	tags, err := sys.Tags(context.Background())
	if err != nil {
		t.Fatalf("Tags() error = %v", err)
	}
	if len(tags) != 9 || tags[0] != "email" {
		t.Errorf("tags: got %v", tags)
	}
}
