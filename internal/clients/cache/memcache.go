package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finances-ledger/internal/logger"
)

// ErrMiss is returned by Fetch when the key is not cached.
var ErrMiss = memcache.ErrCacheMiss

const maxKeyLength = 250

type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

// formatKey turns a storage key into a valid memcache key: no spaces or
// control characters, at most 250 bytes.
func formatKey(key string) string {
	escaped := url.PathEscape(key)
	if len(escaped) <= maxKeyLength {
		return escaped
	}
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func (mc *MemcacheClient) Put(key string, value []byte) error {
	logger.Debug("cache put", zap.String("key", key))
	return mc.client.Set(&memcache.Item{
		Key:   formatKey(key),
		Value: value,
	})
}

func (mc *MemcacheClient) Fetch(key string) ([]byte, error) {
	logger.Debug("cache fetch", zap.String("key", key))
	item, err := mc.client.Get(formatKey(key))
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}

func (mc *MemcacheClient) Invalidate(key string) error {
	logger.Debug("cache invalidate", zap.String("key", key))
	err := mc.client.Delete(formatKey(key))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		return err
	}
	return nil
}
