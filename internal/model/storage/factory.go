package storage

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finances-ledger/internal/clients/cache"
	"max.ks1230/finances-ledger/internal/config"
	"max.ks1230/finances-ledger/internal/logger"
)

// NewFromConfig opens the configured backend and puts memcached in front of
// it when hosts are configured.
func NewFromConfig(conf *config.Service) (KV, error) {
	var (
		kv  KV
		err error
	)
	switch conf.Storage().Driver() {
	case config.DriverMemory:
		kv = NewInMemStorage()
	case config.DriverSQLite:
		kv, err = NewSQLiteStorage(conf.Storage().SQLitePath())
	case config.DriverPostgres:
		kv, err = NewPostgresStorage(conf.Postgres())
	default:
		err = errors.Errorf("unknown storage driver %q", conf.Storage().Driver())
	}
	if err != nil {
		return nil, errors.Wrap(err, "init storage")
	}

	if !conf.Memcached().Enabled() {
		return kv, nil
	}
	mc, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Warn("memcached unavailable, running without cache", zap.Error(err))
		return kv, nil
	}
	return NewCachedStorage(kv, mc), nil
}
