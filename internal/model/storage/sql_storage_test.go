package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLStorage {
	t.Helper()
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "db", "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func Test_SQLiteStorage_ShouldRoundTripRecords(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t)

	_, ok, err := s.Get(ctx, "dev.finances:alice:transactions")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "dev.finances:alice:transactions", []byte(`[{"id":1}]`)))
	require.NoError(t, s.Set(ctx, "dev.finances:alice:transactions", []byte(`[]`)))

	value, ok, err := s.Get(ctx, "dev.finances:alice:transactions")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(value))

	require.NoError(t, s.Delete(ctx, "dev.finances:alice:transactions"))
	_, ok, err = s.Get(ctx, "dev.finances:alice:transactions")
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_SQLiteStorage_ShouldSurviveReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.db")

	first, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "dev.finances:activeUser", []byte("alice")))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	defer second.Close()

	value, ok, err := second.Get(ctx, "dev.finances:activeUser")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", string(value))
}
