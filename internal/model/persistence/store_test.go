package persistence

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/finances-ledger/internal/entity/transaction"
	"max.ks1230/finances-ledger/internal/model/customerr"
	"max.ks1230/finances-ledger/internal/model/storage"
)

type prefixConfig string

func (p prefixConfig) KeyPrefix() string {
	return string(p)
}

const testPrefix = prefixConfig("dev.finances")

type brokenKV struct{}

func (brokenKV) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("disk on fire")
}

func (brokenKV) Set(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

func (brokenKV) Delete(context.Context, string) error {
	return errors.New("disk on fire")
}

func Test_Load_ForUnknownUser_ShouldReturnEmpty(t *testing.T) {
	s := NewStore(storage.NewInMemStorage(), testPrefix)

	records, err := s.Load(context.Background(), "alice")

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func Test_SaveThenLoad_ShouldRoundTripInOrder(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewInMemStorage(), testPrefix)
	want := []transaction.Record{
		{ID: 2, Description: "Salary", Amount: 500000, Date: "01/06/2024", Time: "09:00"},
		{ID: 1, Description: "Rent", Amount: -150000, Date: "05/06/2024"},
	}

	require.NoError(t, s.Save(ctx, "alice", want))
	got, err := s.Load(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.False(t, got[1].HasTime())
}

func Test_Save_ShouldOverwriteAndStayPerUser(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewInMemStorage()
	s := NewStore(kv, testPrefix)

	require.NoError(t, s.Save(ctx, "alice", []transaction.Record{{ID: 1, Description: "a", Amount: 1, Date: "01/01/2024"}}))
	require.NoError(t, s.Save(ctx, "bob", []transaction.Record{{ID: 9, Description: "b", Amount: -1, Date: "02/01/2024"}}))
	require.NoError(t, s.Save(ctx, "alice", nil))

	alice, err := s.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, alice)

	bob, err := s.Load(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bob, 1)
	assert.Equal(t, int64(9), bob[0].ID)

	raw, ok, err := kv.Get(ctx, "dev.finances:alice:transactions")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", string(raw))
}

func Test_Load_ShouldTreatNullAsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewInMemStorage()
	require.NoError(t, kv.Set(ctx, "dev.finances:alice:transactions", []byte("null")))

	records, err := NewStore(kv, testPrefix).Load(ctx, "alice")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func Test_Load_ShouldRejectCorruptData(t *testing.T) {
	cases := map[string]string{
		"not json":       `{{{`,
		"not an array":   `{"id":1}`,
		"float amount":   `[{"id":1,"description":"x","amount":1.5,"date":"01/01/2024"}]`,
		"unknown field":  `[{"id":1,"description":"x","amount":1,"date":"01/01/2024","type":"income"}]`,
		"bad date":       `[{"id":1,"description":"x","amount":1,"date":"2024-01-01"}]`,
		"blank desc":     `[{"id":1,"description":" ","amount":1,"date":"01/01/2024"}]`,
		"missing id":     `[{"description":"x","amount":1,"date":"01/01/2024"}]`,
		"duplicate ids":  `[{"id":1,"description":"x","amount":1,"date":"01/01/2024"},{"id":1,"description":"y","amount":2,"date":"01/01/2024"}]`,
		"trailing value": `[] []`,
	}
	for name, raw := range cases {
		ctx := context.Background()
		kv := storage.NewInMemStorage()
		require.NoError(t, kv.Set(ctx, "dev.finances:alice:transactions", []byte(raw)))

		_, err := NewStore(kv, testPrefix).Load(ctx, "alice")

		assert.True(t, customerr.IsStorage(err), name)
		assert.False(t, customerr.IsValidation(err), name)
	}
}

func Test_BackendFailures_ShouldBeStorageErrors(t *testing.T) {
	ctx := context.Background()
	s := NewStore(brokenKV{}, testPrefix)

	_, err := s.Load(ctx, "alice")
	assert.True(t, customerr.IsStorage(err))

	err = s.Save(ctx, "alice", nil)
	assert.True(t, customerr.IsStorage(err))
	assert.Contains(t, err.Error(), "quota exceeded")
}
