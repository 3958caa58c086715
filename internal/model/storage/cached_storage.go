package storage

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finances-ledger/internal/clients/cache"
	"max.ks1230/finances-ledger/internal/logger"
)

// KV is the byte-oriented backend the persistence layer writes through.
// Get reports a missing key with ok == false and a nil error.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type valueCache interface {
	Put(key string, value []byte) error
	Fetch(key string) ([]byte, error)
	Invalidate(key string) error
}

// CachedStorage is a read-through, write-through cache in front of a
// backend. The backend stays authoritative: cache failures are logged and
// never fail an operation.
type CachedStorage struct {
	backend KV
	cache   valueCache
}

func NewCachedStorage(backend KV, cache valueCache) *CachedStorage {
	return &CachedStorage{backend: backend, cache: cache}
}

func (s *CachedStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.cache.Fetch(key)
	if err == nil {
		return value, true, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		logger.Warn("cache fetch failed", zap.String("key", key), zap.Error(err))
	}

	value, ok, err := s.backend.Get(ctx, key)
	if err != nil || !ok {
		return value, ok, err
	}
	if err = s.cache.Put(key, value); err != nil {
		logger.Warn("cache put failed", zap.String("key", key), zap.Error(err))
	}
	return value, true, nil
}

func (s *CachedStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := s.backend.Set(ctx, key, value); err != nil {
		s.invalidate(key)
		return err
	}
	if err := s.cache.Put(key, value); err != nil {
		logger.Warn("cache put failed", zap.String("key", key), zap.Error(err))
		s.invalidate(key)
	}
	return nil
}

func (s *CachedStorage) Delete(ctx context.Context, key string) error {
	s.invalidate(key)
	return s.backend.Delete(ctx, key)
}

func (s *CachedStorage) Close() error {
	return s.backend.Close()
}

func (s *CachedStorage) invalidate(key string) {
	if err := s.cache.Invalidate(key); err != nil {
		logger.Warn("cache invalidate failed", zap.String("key", key), zap.Error(err))
	}
}
