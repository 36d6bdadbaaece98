//go:build integration

package logstore_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"polyglot/internal/backends/logstore"
	"polyglot/internal/platform/config"
	"polyglot/internal/platform/kafka"
	id "polyglot/pkg/domain"
	"polyglot/pkg/testutil/containers"
)

func TestKafkaMirrorProducesEntries(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	rp := containers.GetManager().GetRedpanda(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	topic := "polyglot.logs.test"
	producer, err := kafka.NewClient(config.KafkaConfig{Brokers: rp.Brokers, Topic: topic})
	require.NoError(t, err)
	require.NoError(t, kafka.EnsureTopic(ctx, producer, topic, 1, 1))
	require.NoError(t, kafka.EnsureTopic(ctx, producer, topic, 1, 1), "second provisioning is a no-op")

	mirror := logstore.NewKafkaMirror(producer, nil)
	entry := id.LogEntry{UserID: 9, Action: "purchase", Timestamp: time.Now().UTC(), Tags: []string{"Neo4j"}}
	mirror.Publish(ctx, entry)
	require.NoError(t, mirror.Close(10*time.Second), "close delivers the buffered record")

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rp.Brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollRecords(ctx, 1)
	require.NoError(t, fetches.Err())
	records := fetches.Records()
	require.Len(t, records, 1)
	require.Equal(t, "9", string(records[0].Key))

	var got id.LogEntry
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	require.Equal(t, "purchase", got.Action)
}
