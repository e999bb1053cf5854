package producer

import (
	"context"

	"github.com/CodeWithFin/platypus-website/internal/events"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the producer needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type outboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       []byte
	Attempts      int
}

func publishEvent(ctx context.Context, writer MessageWriter, event outboxEvent) error {
	msg := kafka.Message{
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafka.Header{
			{Key: events.HeaderEventType, Value: []byte(event.EventType)},
			{Key: events.HeaderAggregateType, Value: []byte(event.AggregateType)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}
