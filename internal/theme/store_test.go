package theme_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/JaimeStill/promptbook/internal/theme"
	"github.com/JaimeStill/promptbook/pkg/kv"
	"github.com/JaimeStill/promptbook/pkg/lifecycle"
)

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func persist(v bool) *bool { return &v }

func startStore(t *testing.T, store kv.Store, cfg theme.Config) theme.System {
	t.Helper()

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	sys := theme.New(store, discard(), cfg)
	lc := lifecycle.New()
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := lc.WaitForStartup(); err != nil {
		t.Fatalf("WaitForStartup() error = %v", err)
	}
	t.Cleanup(func() { _ = lc.Shutdown(5 * time.Second) })
	return sys
}

func flush(t *testing.T, sys theme.System) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sys.Flush(ctx); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
}

func TestHydrate(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   theme.Theme
	}{
		{"absent defaults to system", "", theme.SystemTheme},
		{"stored dark", "dark", theme.Dark},
		{"stored light", "light", theme.Light},
		{"unknown value ignored", "purple", theme.SystemTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := kv.NewMemory()
			if tt.stored != "" {
				store.Set(context.Background(), theme.DefaultStorageKey, []byte(tt.stored))
			}

			sys := startStore(t, store, theme.Config{})
			if got := sys.Theme(); got != tt.want {
				t.Errorf("theme = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetThemePersistsBareString(t *testing.T) {
	store := kv.NewMemory()
	sys := startStore(t, store, theme.Config{})

	if err := sys.SetTheme(theme.Dark); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	if got := sys.Theme(); got != theme.Dark {
		t.Errorf("theme = %q, want dark before persistence", got)
	}

	flush(t, sys)
	data, err := store.Get(context.Background(), theme.DefaultStorageKey)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(data) != "dark" {
		t.Errorf("stored = %q, want dark", data)
	}
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	sys := startStore(t, kv.NewMemory(), theme.Config{})

	if err := sys.SetTheme("sepia"); !errors.Is(err, theme.ErrInvalid) {
		t.Errorf("SetTheme() error = %v, want ErrInvalid", err)
	}
	if got := sys.Theme(); got != theme.SystemTheme {
		t.Errorf("theme = %q, want system", got)
	}
}

func TestPersistDisabled(t *testing.T) {
	store := kv.NewMemory()
	store.Set(context.Background(), theme.DefaultStorageKey, []byte("dark"))

	sys := startStore(t, store, theme.Config{Persist: persist(false)})
	if got := sys.Theme(); got != theme.SystemTheme {
		t.Errorf("theme = %q, want system when persistence is disabled", got)
	}

	if err := sys.SetTheme(theme.Light); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	flush(t, sys)

	data, _ := store.Get(context.Background(), theme.DefaultStorageKey)
	if string(data) != "dark" {
		t.Errorf("stored = %q, want untouched dark", data)
	}
}

func TestSetBeforeHydrateWins(t *testing.T) {
	store := kv.NewMemory()
	store.Set(context.Background(), theme.DefaultStorageKey, []byte("light"))

	sys := theme.New(store, discard(), theme.Config{StorageKey: theme.DefaultStorageKey})
	if err := sys.SetTheme(theme.Dark); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	if err := sys.Hydrate(context.Background()); err != nil {
		t.Fatalf("Hydrate() error = %v", err)
	}

	if got := sys.Theme(); got != theme.Dark {
		t.Errorf("theme = %q, want dark", got)
	}
}

func TestIsDark(t *testing.T) {
	sys := startStore(t, kv.NewMemory(), theme.Config{})

	if !sys.IsDark(theme.AppearanceDark) {
		t.Error("system preference should follow a dark host")
	}

	sys.SetTheme(theme.Light)
	if sys.IsDark(theme.AppearanceDark) {
		t.Error("light preference should ignore the host")
	}
}
