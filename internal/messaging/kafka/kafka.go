package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MihaiKuro/asd/internal/messaging"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	defaultWriteTimeout = 5 * time.Second
	// Events are written one at a time from request handlers, so the writer
	// must not wait to fill a batch.
	batchTimeout = 10 * time.Millisecond
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkaGo.Message) error
	Close() error
}

// Publisher writes JSON encoded events through one shared kafka writer.
type Publisher struct {
	w       messageWriter
	timeout time.Duration
}

// NewPublisher creates a publisher for the configured brokers.
// The topic is chosen per message.
func NewPublisher(c *messaging.Config) (*Publisher, error) {
	if len(c.Brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}
	timeout := defaultWriteTimeout
	if c.WriteTimeout != "" {
		var err error
		timeout, err = time.ParseDuration(c.WriteTimeout)
		if err != nil {
			return nil, fmt.Errorf("kafka: bad write timeout %q: %w", c.WriteTimeout, err)
		}
	}
	w := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(c.Brokers...),
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           timeout,
		BatchSize:              1,
		BatchTimeout:           batchTimeout,
	}
	return &Publisher{w: w, timeout: timeout}, nil
}

// PublishEvent writes event to topic. Events with the same key land on the same partition.
func (p *Publisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.w.WriteMessages(ctx, kafkaGo.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to write to %s: %w", topic, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.w.Close()
}
