package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/CodeWithFin/platypus-website/internal/config"
	"github.com/CodeWithFin/platypus-website/internal/email"
	"github.com/CodeWithFin/platypus-website/internal/messaging/kafka/consumer"

	"github.com/segmentio/kafka-go"
)

const consumerGroup = "order-confirmation-group"

// RunConsumer reads order events and mails confirmations until SIGINT or
// SIGTERM.
func RunConsumer(cfg config.Config) error {
	log.Println("[CONSUMER] Starting order confirmation consumer...")

	emailService := email.NewNoopService()
	if cfg.ResendAPIKey != "" {
		svc, err := email.NewResendService(email.ResendOptions{
			APIKey:    cfg.ResendAPIKey,
			FromEmail: cfg.ResendFromEmail,
		})
		if err != nil {
			return err
		}
		emailService = svc
	} else {
		log.Println("[CONSUMER] RESEND_API_KEY not set, confirmations are not sent")
	}

	// Setup Kafka reader
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.KafkaTopic,
		GroupID: consumerGroup,
	})
	defer reader.Close()
	log.Println("[CONSUMER] Kafka reader initialized")

	// Start consuming
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, emailService)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	log.Println("[CONSUMER] Stopped")

	return nil
}
