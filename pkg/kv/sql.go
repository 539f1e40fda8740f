package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/promptbook/pkg/database"
	"github.com/JaimeStill/promptbook/pkg/lifecycle"
	"github.com/JaimeStill/promptbook/pkg/repository"
)

// SQLite has no migration runner; the schema is ensured on Start.
// PostgreSQL tables are created by cmd/migrate.
const sqliteSchema = `CREATE TABLE IF NOT EXISTS kv_entries (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

type sqlStore struct {
	db     database.System
	driver string
	logger *slog.Logger
}

func newSQL(driver string, db database.System, logger *slog.Logger) *sqlStore {
	return &sqlStore{
		db:     db,
		driver: driver,
		logger: logger.With("system", "kv", "driver", driver),
	}
}

func (s *sqlStore) Name() string {
	return s.driver
}

func (s *sqlStore) Start(lc *lifecycle.Coordinator) error {
	if s.driver != DriverSQLite {
		return nil
	}

	if _, err := s.db.Connection().ExecContext(lc.Context(), sqliteSchema); err != nil {
		return fmt.Errorf("ensure kv schema: %w", err)
	}

	s.logger.Info("kv schema ready")
	return nil
}

// rebind rewrites ? placeholders into the $n form PostgreSQL expects.
func (s *sqlStore) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func scanValue(s repository.Scanner) ([]byte, error) {
	var v []byte
	err := s.Scan(&v)
	return v, err
}

func (s *sqlStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	q := s.rebind("SELECT value FROM kv_entries WHERE key = ?")
	v, err := repository.QueryOne(ctx, s.db.Connection(), q, []any{key}, scanValue)
	if err != nil {
		err = repository.MapError(err, ErrNotFound, nil)
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return v, nil
}

func (s *sqlStore) Set(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	q := s.rebind(`
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at
		RETURNING key`)

	_, err := repository.WithTx(ctx, s.db.Connection(), func(tx *sql.Tx) (string, error) {
		return repository.QueryOne(ctx, tx, q, []any{key, value}, func(sc repository.Scanner) (string, error) {
			var k string
			err := sc.Scan(&k)
			return k, err
		})
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *sqlStore) Remove(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	q := s.rebind("DELETE FROM kv_entries WHERE key = ?")
	n, err := repository.Exec(ctx, s.db.Connection(), q, key)
	if err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	if n == 0 {
		s.logger.Debug("remove of absent key", "key", key)
	}
	return nil
}
