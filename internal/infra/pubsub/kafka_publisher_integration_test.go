//go:build integration

package pubsub

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"greenscore/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/twmb/franz-go/pkg/kgo"
)

func TestKafkaPublisher_Redpanda(t *testing.T) {
	ctx := context.Background()

	container, err := redpanda.Run(ctx, "docker.redpanda.com/redpandadata/redpanda:v24.2.4",
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		t.Fatalf("failed to start redpanda container: %v", err)
	}
	testcontainers.CleanupContainer(t, container)

	broker, err := container.KafkaSeedBroker(ctx)
	require.NoError(t, err)

	const topic = "purchase-recorded"

	publisher, err := NewKafkaPublisher([]string{broker}, topic, newDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisher.Close() })

	event := newTestEvent()
	require.NoError(t, publisher.PublishPurchaseRecorded(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	t.Cleanup(consumer.Close)

	pollCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	fetches := consumer.PollFetches(pollCtx)
	require.Empty(t, fetches.Errors())

	records := fetches.Records()
	require.Len(t, records, 1)
	assert.Equal(t, event.UserID, string(records[0].Key))

	var decoded service.PurchaseRecordedEvent
	require.NoError(t, json.Unmarshal(records[0].Value, &decoded))
	assert.Equal(t, *event, decoded)

	headers := make(map[string]string, len(records[0].Headers))
	for _, h := range records[0].Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "req-1", headers["request_id"])
	assert.Equal(t, "42", headers["purchase_id"])
}
