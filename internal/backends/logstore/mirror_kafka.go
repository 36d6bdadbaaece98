package logstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/twmb/franz-go/pkg/kgo"

	id "polyglot/pkg/domain"
)

var mirrorResults = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "polyglot_logstore_mirror_records_total",
	Help: "Log entries produced to the mirror topic, by result.",
}, []string{"result"})

// Mirror receives every appended entry. It never fails the append.
type Mirror interface {
	Publish(ctx context.Context, entry id.LogEntry)
}

// KafkaMirror produces entries to the client's default topic, keyed by user.
type KafkaMirror struct {
	client *kgo.Client
	logger *slog.Logger
}

func NewKafkaMirror(client *kgo.Client, logger *slog.Logger) *KafkaMirror {
	if logger == nil {
		logger = slog.Default()
	}
	return &KafkaMirror{client: client, logger: logger}
}

// Publish produces asynchronously; failures are logged and counted.
func (m *KafkaMirror) Publish(ctx context.Context, entry id.LogEntry) {
	raw, err := json.Marshal(entry)
	if err != nil {
		mirrorResults.WithLabelValues("encode_error").Inc()
		m.logger.WarnContext(ctx, "log mirror encode failed", "error", err)
		return
	}
	record := &kgo.Record{Key: []byte(entry.UserID.String()), Value: raw}
	m.client.Produce(context.WithoutCancel(ctx), record, func(_ *kgo.Record, err error) {
		if err != nil {
			mirrorResults.WithLabelValues("error").Inc()
			m.logger.Warn("log mirror produce failed", "user_id", entry.UserID, "error", err)
			return
		}
		mirrorResults.WithLabelValues("ok").Inc()
	})
}

// Close flushes buffered records for up to timeout and then closes the client.
// Records still buffered at the deadline are failed by the close.
func (m *KafkaMirror) Close(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	err := m.client.Flush(ctx)
	m.client.Close()
	if err != nil {
		return fmt.Errorf("flush log mirror: %w", err)
	}
	return nil
}
