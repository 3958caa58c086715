package kafka

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/finances-ledger/internal/entity/transaction"
	"max.ks1230/finances-ledger/internal/model/ledger"
)

func Test_LedgerChanged_ShouldPublishKeyedEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	ev := ledger.Event{
		Kind:   ledger.Added,
		User:   "alice",
		Record: transaction.Record{ID: 5, Description: "Rent", Amount: -150000, Date: "05/06/2024"},
	}
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got ledger.Event
		require.NoError(t, json.Unmarshal(val, &got))
		assert.Equal(t, ev, got)
		return nil
	})

	p := newEventPublisher(producer, "ledger-events")
	p.LedgerChanged(context.Background(), ev)

	require.NoError(t, producer.Close())
}

func Test_LedgerChanged_ShouldSkipReloads(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)

	p := newEventPublisher(producer, "ledger-events")
	p.LedgerChanged(context.Background(), ledger.Event{Kind: ledger.Reloaded, User: "alice"})

	require.NoError(t, producer.Close())
}

func Test_Publish_ShouldReturnBrokerError(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := newEventPublisher(producer, "ledger-events")
	err := p.Publish(ledger.Event{Kind: ledger.Removed, User: "alice"})

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, producer.Close())
}
