package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/svi-heatmap/internal/config"
	"github.com/couchcryptid/svi-heatmap/internal/domain"
	"github.com/jonboulle/clockwork"
	kafkago "github.com/segmentio/kafka-go"
)

// maxBatch bounds the messages sent per WriteMessages call.
const maxBatch = 500

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher produces one message per scored row to a Kafka topic.
// It implements pipeline.Sink.
type Publisher struct {
	writer messageWriter
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured export topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: w, clock: clockwork.NewRealClock(), logger: logger}
}

// Publish serializes every row of t and writes them in batches. It returns
// the number of rows written before any error.
func (p *Publisher) Publish(ctx context.Context, selection string, t *domain.Table) (int, error) {
	if t.Len() == 0 {
		return 0, nil
	}

	exportedAt := p.clock.Now().UTC()
	written := 0
	for start := 0; start < t.Len(); start += maxBatch {
		end := min(start+maxBatch, t.Len())
		msgs := make([]kafkago.Message, 0, end-start)
		for i := start; i < end; i++ {
			msg, err := rowToMessage(t, i, selection, exportedAt)
			if err != nil {
				return written, err
			}
			msgs = append(msgs, msg)
		}
		if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
			return written, fmt.Errorf("write messages: %w", err)
		}
		written += len(msgs)
		p.logger.Debug("batch published", "selection", selection, "messages", len(msgs))
	}
	return written, nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// rowToMessage marshals row i of t into a Kafka message keyed by location.
func rowToMessage(t *domain.Table, i int, selection string, exportedAt time.Time) (kafkago.Message, error) {
	rec := t.Record(i)
	data, err := json.Marshal(rec)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize row %d: %w", i, err)
	}
	return kafkago.Message{
		Key:   []byte(recordString(rec, domain.ColLocation)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "state", Value: []byte(recordString(rec, domain.ColState))},
			{Key: "selection", Value: []byte(selection)},
			{Key: "exported_at", Value: []byte(exportedAt.Format(time.RFC3339))},
		},
	}, nil
}

func recordString(rec map[string]any, col string) string {
	switch v := rec[col].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
