package producer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageWriter is the subset of *kafkago.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type Publisher struct {
	writer MessageWriter
	topic  string
	logger *zap.Logger
}

func NewPublisher(writer MessageWriter, topic string, logger ...*zap.Logger) *Publisher {
	l := zap.L().Named("kafka.producer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.producer")
	}
	return &Publisher{writer: writer, topic: topic, logger: l}
}

// Publish writes payload as JSON, keyed by aggregate id so events for one
// employee stay ordered within a partition.
func (p *Publisher) Publish(ctx context.Context, key, eventType string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := kafkago.Message{
		Topic: p.topic,
		Key:   []byte(key),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(eventType)},
			{Key: "aggregate_type", Value: []byte("employee")},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish event failed",
			zap.String("event_type", eventType),
			zap.String("topic", p.topic),
			zap.String("key", key),
			zap.Error(err),
		)
		return err
	}

	p.logger.Debug("event published",
		zap.String("event_type", eventType),
		zap.String("topic", p.topic),
		zap.String("key", key),
	)
	return nil
}
