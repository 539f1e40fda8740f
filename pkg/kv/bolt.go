package kv

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/JaimeStill/promptbook/pkg/lifecycle"
)

type boltStore struct {
	path    string
	bucket  []byte
	timeout time.Duration
	logger  *slog.Logger

	mu sync.RWMutex
	db *bolt.DB
}

func newBolt(cfg *Config, logger *slog.Logger) *boltStore {
	return &boltStore{
		path:    cfg.Bolt.Path,
		bucket:  []byte(cfg.Bolt.Bucket),
		timeout: cfg.BoltTimeoutDuration(),
		logger:  logger.With("system", "kv", "driver", DriverBolt),
	}
}

func (s *boltStore) Name() string {
	return DriverBolt
}

func (s *boltStore) Start(lc *lifecycle.Coordinator) error {
	if err := s.open(); err != nil {
		return err
	}

	s.logger.Info("bolt store ready", "path", s.path)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := s.close(); err != nil {
			s.logger.Error("bolt close failed", "error", err)
			return
		}
		s.logger.Info("bolt store closed")
	})

	return nil
}

func (s *boltStore) open() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create bolt directory: %w", err)
	}

	db, err := bolt.Open(s.path, 0o600, &bolt.Options{Timeout: s.timeout})
	if err != nil {
		return fmt.Errorf("open bolt %s: %w", s.path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("create bolt bucket: %w", err)
	}

	s.mu.Lock()
	s.db = db
	s.mu.Unlock()
	return nil
}

func (s *boltStore) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *boltStore) conn() (*bolt.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotStarted
	}
	return s.db, nil
}

func (s *boltStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var value []byte
	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// values are only valid for the life of the transaction
		value = slices.Clone(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *boltStore) Set(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	db, err := s.conn()
	if err != nil {
		return err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

func (s *boltStore) Remove(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	db, err := s.conn()
	if err != nil {
		return err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
