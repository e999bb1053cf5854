package producer

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/CodeWithFin/platypus-website/internal/events"

	"github.com/google/uuid"
)

const (
	defaultInterval    = 5 * time.Second
	defaultMaxAttempts = 5
	defaultBatchSize   = 10
	defaultCapacity    = 1000
	shutdownTimeout    = 5 * time.Second
)

type Options struct {
	Interval    time.Duration
	MaxAttempts int
	BatchSize   int
	// Capacity bounds the queue; the oldest event is dropped when full.
	Capacity int
}

// Outbox queues events in memory and ships them to kafka from Run, so
// publishing never blocks a checkout on the broker.
type Outbox struct {
	writer MessageWriter
	opts   Options

	mu      sync.Mutex
	pending []outboxEvent
}

func NewOutbox(writer MessageWriter, opts Options) *Outbox {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.Capacity <= 0 {
		opts.Capacity = defaultCapacity
	}
	return &Outbox{writer: writer, opts: opts}
}

func (o *Outbox) PublishOrderPlaced(_ context.Context, e events.OrderPlaced) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}

	o.enqueue(outboxEvent{
		ID:            uuid.NewString(),
		AggregateID:   e.OrderID,
		AggregateType: events.AggregateOrder,
		EventType:     events.TypeOrderPlaced,
		Payload:       payload,
	})
	return nil
}

func (o *Outbox) enqueue(e outboxEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.pending) >= o.opts.Capacity {
		log.Printf("[WORKER] Outbox full, dropping event %s", o.pending[0].ID)
		o.pending = o.pending[1:]
	}
	o.pending = append(o.pending, e)
}

// Pending reports how many events wait to be sent.
func (o *Outbox) Pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.pending)
}

func (o *Outbox) Run(ctx context.Context) {
	ticker := time.NewTicker(o.opts.Interval)
	defer ticker.Stop()

	log.Printf("[WORKER] Outbox processor started (polling every %s)", o.opts.Interval)

	for {
		select {
		case <-ctx.Done():
			o.drain()
			return
		case <-ticker.C:
			o.Flush(ctx)
		}
	}
}

// drain flushes batch after batch until the queue is empty or the
// shutdown deadline passes. Every failed send uses up an attempt, so the
// loop ends even while the broker is down.
func (o *Outbox) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for o.Pending() > 0 && ctx.Err() == nil {
		o.Flush(ctx)
	}
	if n := o.Pending(); n > 0 {
		log.Printf("[WORKER] Outbox stopped with %d unsent events", n)
	}
}

// Flush sends up to one batch of pending events. Failed events go back to
// the queue until they run out of attempts.
func (o *Outbox) Flush(ctx context.Context) {
	o.mu.Lock()
	n := min(len(o.pending), o.opts.BatchSize)
	batch := make([]outboxEvent, n)
	copy(batch, o.pending[:n])
	o.pending = o.pending[n:]
	o.mu.Unlock()

	if len(batch) == 0 {
		return
	}

	log.Printf("[WORKER] Processing %d pending events", len(batch))

	var retry []outboxEvent
	for _, event := range batch {
		if err := publishEvent(ctx, o.writer, event); err != nil {
			event.Attempts++
			if event.Attempts >= o.opts.MaxAttempts {
				log.Printf("[WORKER] Giving up on event %s after %d attempts: %v", event.ID, event.Attempts, err)
				continue
			}
			log.Printf("[WORKER] Failed to publish event %s: %v", event.ID, err)
			retry = append(retry, event)
			continue
		}

		log.Printf("[WORKER] Event %s sent", event.ID)
	}

	if len(retry) > 0 {
		o.mu.Lock()
		o.pending = append(retry, o.pending...)
		// events queued while the batch was out may have filled it
		if over := len(o.pending) - o.opts.Capacity; over > 0 {
			for _, e := range o.pending[:over] {
				log.Printf("[WORKER] Outbox full, dropping event %s", e.ID)
			}
			o.pending = o.pending[over:]
		}
		o.mu.Unlock()
	}
}
