// Package kafka publishes order status events to a Kafka topic.
// The publisher is optional: with no brokers configured it degrades to a
// no-op, so the fulfillment flow never depends on broker availability.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// OrderStatusChangedEvent is the wire representation of one status transition.
type OrderStatusChangedEvent struct {
	EventID    string    `json:"eventId"`
	OrderID    int64     `json:"orderId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher emits order status events to a Kafka topic. Publishing is best
// effort: failures are logged and reported but the caller is expected to
// ignore them.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

var _ ports.EventPublisher = (*Publisher)(nil)

// NewPublisher creates a publisher for the given brokers and topic.
// brokersCSV is a comma-separated broker list; when it is empty the
// publisher is disabled and every publish is a silent no-op.
func NewPublisher(brokersCSV, topic string, logger *slog.Logger) *Publisher {
	p := &Publisher{
		logger: logger.With("component", "kafka_publisher"),
	}

	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}

	if len(brokers) == 0 {
		return p
	}

	p.writer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	return p
}

// Enabled reports whether a broker is configured.
func (p *Publisher) Enabled() bool {
	return p.writer != nil
}

// PublishStatusChanged emits one status-transition event keyed by order id,
// so transitions of the same order stay in partition order.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	if !p.Enabled() {
		return nil
	}

	payload := OrderStatusChangedEvent{
		EventID:    uuid.NewString(),
		OrderID:    int64(event.OrderID),
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt.UTC(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to marshal order status event", "error", err)
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: data,
		Time:  time.Now().UTC(),
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish order status event",
			"orderId", event.OrderID.String(), "status", event.Status.String(), "error", err)
		return err
	}

	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
