package kv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/JaimeStill/promptbook/pkg/lifecycle"
)

type redisStore struct {
	client      *redis.Client
	prefix      string
	logger      *slog.Logger
	cfg         RedisConfig
}

func newRedis(cfg *Config, logger *slog.Logger) *redisStore {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: cfg.RedisDialTimeoutDuration(),
	})

	return &redisStore{
		client: client,
		prefix: cfg.Redis.Prefix,
		logger: logger.With("system", "kv", "driver", DriverRedis),
		cfg:    cfg.Redis,
	}
}

func (s *redisStore) Name() string {
	return DriverRedis
}

func (s *redisStore) Start(lc *lifecycle.Coordinator) error {
	if err := s.client.Ping(lc.Context()).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}

	s.logger.Info("redis connection established",
		slog.String("addr", s.cfg.Addr),
		slog.Int("db", s.cfg.DB),
	)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		s.logger.Info("closing redis connection")
		if err := s.client.Close(); err != nil {
			s.logger.Error("redis close failed", "error", err)
		}
	})

	return nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return data, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) Remove(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}
