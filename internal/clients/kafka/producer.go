package kafka

import (
	"context"
	"encoding/json"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finances-ledger/internal/logger"
	"max.ks1230/finances-ledger/internal/model/ledger"
)

type producerConfig interface {
	Brokers() []string
	EventsTopic() string
}

// EventPublisher forwards ledger changes to a topic, keyed by user so that
// one user's events stay ordered within a partition.
type EventPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewEventPublisher(cfg producerConfig) (*EventPublisher, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create producer")
	}
	return newEventPublisher(producer, cfg.EventsTopic()), nil
}

func newEventPublisher(producer sarama.SyncProducer, topic string) *EventPublisher {
	return &EventPublisher{producer: producer, topic: topic}
}

func (p *EventPublisher) Publish(ev ledger.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "encode event")
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.User),
		Value: sarama.ByteEncoder(payload),
	})
	return errors.Wrap(err, "send event")
}

// LedgerChanged publishes additions and removals. A broker failure is
// logged: the ledger change is already persisted and stays valid.
func (p *EventPublisher) LedgerChanged(_ context.Context, ev ledger.Event) {
	if ev.Kind == ledger.Reloaded {
		return
	}
	if err := p.Publish(ev); err != nil {
		logger.Error("failed to publish ledger event",
			zap.String("kind", string(ev.Kind)),
			zap.String("user", ev.User),
			zap.Error(err))
	}
}

func (p *EventPublisher) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
