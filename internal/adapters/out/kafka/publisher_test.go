package kafka_test

import (
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher_NoBrokersDisabled(t *testing.T) {
	p := kafka.NewPublisher("", "order-events", slog.Default())
	assert.False(t, p.Enabled())

	// A disabled publisher accepts events without error.
	err := p.PublishStatusChanged(t.Context(), ports.OrderStatusChanged{
		OrderID:    kernel.OrderID(1),
		Status:     order.Pending,
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestNewPublisher_BrokerListParsing(t *testing.T) {
	p := kafka.NewPublisher(" localhost:9092 , localhost:9093 ", "order-events", slog.Default())
	assert.True(t, p.Enabled())
	require.NoError(t, p.Close())

	p = kafka.NewPublisher(" , ", "order-events", slog.Default())
	assert.False(t, p.Enabled())
}
