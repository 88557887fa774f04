package worker

import (
	"context"
	"log/slog"
	"time"

	"greenscore/config"
	"greenscore/internal/delivery"
	"greenscore/internal/delivery/worker/handler"
	"greenscore/internal/domain/constants"

	"github.com/pkg/errors"
	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/fx"
)

const (
	defaultConsumerGroup = "greenscore-auditworker"

	maxProcessAttempts = 5
	initialRetryDelay  = 200 * time.Millisecond
)

// eventProcessor is the part of handler.PurchaseEventProcessor the consumer needs
type eventProcessor interface {
	Process(ctx context.Context, data []byte, attributes map[string]string) error
}

type kafkaConsumer struct {
	client    *kgo.Client
	processor eventProcessor
	logger    *slog.Logger

	// stopped is cancelled by the lifecycle hook to end the poll loop
	stopped context.Context
	stop    context.CancelFunc
}

// disabledConsumer stands in when the worker is not configured for Kafka
type disabledConsumer struct {
	logger *slog.Logger
}

func (d *disabledConsumer) Serve(context.Context) error {
	d.logger.Info("Kafka consumer disabled; purchase events arrive through /push only")

	return nil
}

// KafkaConsumerParams holds dependencies for the Kafka consumer
type KafkaConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.PurchaseEventProcessor
}

// NewKafkaConsumer joins the configured consumer group when pubsub.provider is kafka
func NewKafkaConsumer(params KafkaConsumerParams) (delivery.Delivery, error) {
	cfg := params.Cfg.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderKafka {
		return &disabledConsumer{logger: params.Logger}, nil
	}

	consumer, err := newKafkaConsumer(cfg.Kafka, params.Processor, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Shutting down Kafka consumer")
			consumer.stop()
			consumer.client.Close()

			return nil
		},
	})

	return consumer, nil
}

func newKafkaConsumer(cfg config.KafkaConfig, processor eventProcessor, logger *slog.Logger) (*kafkaConsumer, error) {
	if len(cfg.Brokers) == 0 || cfg.Topic == "" {
		return nil, errors.New("pubsub.kafka.brokers and pubsub.kafka.topic are required for the kafka consumer")
	}

	group := cfg.ConsumerGroup
	if group == "" {
		group = defaultConsumerGroup
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ConsumerGroup(group),
		kgo.ConsumeTopics(cfg.Topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
		kgo.DisableAutoCommit(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka consumer")
	}

	stopped, stop := context.WithCancel(context.Background())

	return &kafkaConsumer{
		client:    client,
		processor: processor,
		logger:    logger.With(slog.String("component", "kafka_consumer"), slog.String("group", group)),
		stopped:   stopped,
		stop:      stop,
	}, nil
}

// Serve polls until the lifecycle stops the consumer. Offsets are committed after each
// batch is processed, so a crash redelivers rather than skips events.
func (k *kafkaConsumer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	context.AfterFunc(k.stopped, cancel)

	k.logger.Info("Starting Kafka consumer")

	for {
		fetches := k.client.PollFetches(ctx)
		if fetches.IsClientClosed() || ctx.Err() != nil {
			return nil
		}

		fetches.EachError(func(topic string, partition int32, err error) {
			k.logger.Error("Kafka fetch failed",
				slog.String("topic", topic),
				slog.Int("partition", int(partition)),
				slog.Any("error", err),
			)
		})

		fetches.EachRecord(func(record *kgo.Record) {
			k.handle(ctx, record)
		})

		if err := k.client.CommitUncommittedOffsets(ctx); err != nil && ctx.Err() == nil {
			k.logger.Warn("Failed to commit offsets", slog.Any("error", err))
		}
	}
}

// handle processes one record, retrying retryable failures with backoff.
// After maxProcessAttempts the record is skipped; the next purchase for the user re-audits it.
func (k *kafkaConsumer) handle(ctx context.Context, record *kgo.Record) {
	attributes := make(map[string]string, len(record.Headers))
	for _, header := range record.Headers {
		attributes[header.Key] = string(header.Value)
	}

	delay := initialRetryDelay
	backoff := time.NewTimer(delay)
	backoff.Stop()
	defer backoff.Stop()

	for attempt := 1; ; attempt++ {
		err := k.processor.Process(ctx, record.Value, attributes)
		if err == nil {
			return
		}

		retryable := handler.IsRetryableError(err)
		logAttrs := []any{
			slog.Int("partition", int(record.Partition)),
			slog.Int64("offset", record.Offset),
			slog.Int("attempt", attempt),
			slog.Bool("retryable", retryable),
			slog.Any("error", err),
		}
		if !retryable || attempt >= maxProcessAttempts {
			k.logger.Error("Dropping purchase event", logAttrs...)

			return
		}
		k.logger.Warn("Retrying purchase event", logAttrs...)

		backoff.Reset(delay)
		select {
		case <-ctx.Done():
			return
		case <-backoff.C:
		}
		delay *= 2
	}
}
