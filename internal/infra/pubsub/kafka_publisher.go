package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"greenscore/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/twmb/franz-go/pkg/kgo"
)

// kafkaPublisher implements EventPublisher with a franz-go producer.
// Records are keyed by user ID so one user's events land on one partition in order.
type kafkaPublisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewKafkaPublisher connects a producer to the given brokers
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerLinger(5*time.Millisecond),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka client")
	}

	return &kafkaPublisher{
		client: client,
		topic:  topic,
		logger: logger,
	}, nil
}

// PublishPurchaseRecorded produces the event synchronously
func (p *kafkaPublisher) PublishPurchaseRecorded(ctx context.Context, event *service.PurchaseRecordedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := eventAttributes(event)
	headers := make([]kgo.RecordHeader, 0, len(attributes))
	for key, value := range attributes {
		headers = append(headers, kgo.RecordHeader{Key: key, Value: []byte(value)})
	}

	record := &kgo.Record{
		Topic:   p.topic,
		Key:     []byte(event.UserID),
		Value:   data,
		Headers: headers,
	}

	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return errors.Wrap(err, "failed to produce purchase event")
	}

	p.logger.DebugContext(ctx, "[Kafka] Event published successfully",
		slog.Int64("purchase_id", event.PurchaseID),
		slog.Int("partition", int(record.Partition)),
		slog.Int64("offset", record.Offset),
	)

	return nil
}

// Close flushes buffered records and closes the client
func (p *kafkaPublisher) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := p.client.Flush(ctx)
	p.client.Close()

	return errors.WithStack(err)
}
