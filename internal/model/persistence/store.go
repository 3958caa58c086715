package persistence

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finances-ledger/internal/entity/transaction"
	"max.ks1230/finances-ledger/internal/logger"
	"max.ks1230/finances-ledger/internal/model/customerr"
)

type kvStorage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type config interface {
	KeyPrefix() string
}

// Store persists each user's transaction list under
// "<prefix>:<user>:transactions" as a JSON array.
type Store struct {
	kv     kvStorage
	prefix string
}

func NewStore(kv kvStorage, config config) *Store {
	return &Store{kv: kv, prefix: config.KeyPrefix()}
}

func (s *Store) transactionsKey(user string) string {
	return s.prefix + ":" + user + ":transactions"
}

// Load returns the user's transactions in stored order. A user with nothing
// stored has an empty ledger. Records that fail validation are a
// StorageError, never silently dropped.
func (s *Store) Load(ctx context.Context, user string) ([]transaction.Record, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "loadTransactions")
	defer span.Finish()

	key := s.transactionsKey(user)
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, customerr.NewStorage("load", key, err)
	}
	if !ok {
		return []transaction.Record{}, nil
	}

	records, err := decode(raw)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("stored transactions are corrupt", zap.String("key", key), zap.Error(err))
		return nil, customerr.NewStorage("load", key, err)
	}
	span.SetTag("records", len(records))
	return records, nil
}

// Save replaces everything stored for the user with records.
func (s *Store) Save(ctx context.Context, user string, records []transaction.Record) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "saveTransactions")
	defer span.Finish()
	span.SetTag("records", len(records))

	key := s.transactionsKey(user)
	if records == nil {
		records = []transaction.Record{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return customerr.NewStorage("save", key, errors.Wrap(err, "encode transactions"))
	}
	if err = s.kv.Set(ctx, key, raw); err != nil {
		ext.Error.Set(span, true)
		return customerr.NewStorage("save", key, err)
	}
	return nil
}

func decode(raw []byte) ([]transaction.Record, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return []transaction.Record{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	records := make([]transaction.Record, 0)
	if err := dec.Decode(&records); err != nil {
		return nil, errors.Wrap(err, "decode transactions")
	}
	if dec.More() {
		return nil, errors.New("decode transactions: trailing data")
	}

	seen := make(map[int64]struct{}, len(records))
	for i, r := range records {
		if err := r.Validate(); err != nil {
			// Reported as corruption, not as a caller validation error.
			return nil, errors.Errorf("record %d: %v", i, err)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, errors.Errorf("record %d: duplicate id %d", i, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return records, nil
}
