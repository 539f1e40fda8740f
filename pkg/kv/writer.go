package kv

import (
	"context"
	"log/slog"
	"sync"

	"github.com/JaimeStill/promptbook/pkg/lifecycle"
)

// Writer persists values in the background. Enqueue never blocks the caller.
// Pending values for the same key coalesce so only the latest is written,
// and failures are logged rather than returned.
type Writer struct {
	store  Store
	logger *slog.Logger

	mu      sync.Mutex
	pending map[string][]byte
	busy    bool
	idle    chan struct{}
	wake    chan struct{}
	done    chan struct{}
}

// NewWriter creates a Writer over store. Call Start or Run to begin draining.
func NewWriter(store Store, logger *slog.Logger) *Writer {
	idle := make(chan struct{})
	close(idle)

	return &Writer{
		store:   store,
		logger:  logger.With("system", "kv-writer"),
		pending: make(map[string][]byte),
		idle:    idle,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Start runs the writer until the coordinator context is cancelled.
// Store shutdown hooks run concurrently with the final drain, so callers
// Flush before shutting down the coordinator.
func (w *Writer) Start(lc *lifecycle.Coordinator) {
	go w.Run(lc.Context())

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		<-w.done
		w.logger.Info("writer stopped")
	})
}

// Enqueue schedules value to be written under key, replacing any value
// already pending for that key.
func (w *Writer) Enqueue(key string, value []byte) {
	w.mu.Lock()
	if !w.busy {
		w.busy = true
		w.idle = make(chan struct{})
	}
	w.pending[key] = value
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Run drains pending writes until ctx is done, then performs a final drain
// on a context that is no longer cancelled. Values whose write was cut short
// by ctx stay pending for that final drain.
func (w *Writer) Run(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			w.drain(context.WithoutCancel(ctx))
			return
		case <-w.wake:
			if ctx.Err() != nil {
				continue
			}
			w.drain(ctx)
		}
	}
}

// Flush blocks until every value enqueued before the call has been written
// or ctx is done.
func (w *Writer) Flush(ctx context.Context) error {
	w.mu.Lock()
	idle := w.idle
	w.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Writer) drain(ctx context.Context) {
	for ctx.Err() == nil {
		w.mu.Lock()
		if len(w.pending) == 0 {
			if w.busy {
				w.busy = false
				close(w.idle)
			}
			w.mu.Unlock()
			return
		}
		batch := w.pending
		w.pending = make(map[string][]byte)
		w.mu.Unlock()

		for key, value := range batch {
			if ctx.Err() != nil {
				w.requeue(key, value)
				continue
			}
			if err := w.store.Set(ctx, key, value); err != nil {
				if ctx.Err() != nil {
					w.requeue(key, value)
					continue
				}
				w.logger.Error("persist failed", "key", key, "error", err)
				continue
			}
			w.logger.Debug("persisted", "key", key, "bytes", len(value))
		}
	}
}

// requeue returns value to the pending set unless a newer value for key
// was enqueued in the meantime.
func (w *Writer) requeue(key string, value []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.pending[key]; !ok {
		w.pending[key] = value
	}
}
