package app

import (
	"context"
	"log"

	"github.com/CodeWithFin/platypus-website/internal/messaging/kafka/producer"
)

// startOutboxWorker ships queued order events to kafka until ctx ends.
// done closes after the final flush.
func startOutboxWorker(ctx context.Context, outbox *producer.Outbox) (done <-chan struct{}) {
	log.Println("[WORKER] Starting outbox processor...")

	ch := make(chan struct{})
	go func() {
		defer close(ch)
		outbox.Run(ctx)
		log.Println("[WORKER] Stopped")
	}()
	return ch
}
