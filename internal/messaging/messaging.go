// Package messaging publishes order lifecycle events.
package messaging

import (
	"context"
	"log/slog"
)

const (
	// TopicOrderStatusChanged carries entity.OrderStatusChanged payloads keyed by order uuid.
	TopicOrderStatusChanged = "order.status_changed"
)

type Config struct {
	Brokers []string `mapstructure:"brokers"`
	// Topic overrides TopicOrderStatusChanged.
	Topic        string `mapstructure:"topic"`
	WriteTimeout string `mapstructure:"write_timeout"`
}

// StatusTopic returns the topic order status events go to.
func (c *Config) StatusTopic() string {
	if c.Topic != "" {
		return c.Topic
	}
	return TopicOrderStatusChanged
}

// Noop drops every event. Used when no brokers are configured.
type Noop struct{}

func (Noop) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	slog.Default().DebugContext(ctx, "event dropped, no brokers configured",
		slog.String("topic", topic),
		slog.String("key", key),
	)
	return nil
}

func (Noop) Close() error {
	return nil
}
