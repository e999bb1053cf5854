package consumer

import (
	"context"
	"log"

	"github.com/CodeWithFin/platypus-website/internal/email"
	"github.com/CodeWithFin/platypus-website/internal/events"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

func ConsumeMessages(ctx context.Context, reader MessageReader, emailService email.Service) {
	log.Println("[CONSUMER] Started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[CONSUMER] Error fetching message: %v", err)
			continue
		}

		eventType := getHeader(msg.Headers, events.HeaderEventType)

		if eventType == events.TypeOrderPlaced {
			if err := handleOrderPlaced(ctx, msg.Value, emailService); err != nil {
				log.Printf("[CONSUMER] Error handling %s: %v", events.TypeOrderPlaced, err)
			} else {
				if err := reader.CommitMessages(ctx, msg); err != nil {
					log.Printf("[CONSUMER] Error committing message: %v", err)
				}
			}
		} else {
			// Skip unknown event types
			_ = reader.CommitMessages(ctx, msg)
		}
	}
}
