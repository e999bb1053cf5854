package main

import (
	"log"

	"github.com/CodeWithFin/platypus-website/internal/app"
	"github.com/CodeWithFin/platypus-website/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.KafkaBroker == "" {
		log.Fatal("[CONSUMER] KAFKA_BROKER is required")
	}

	if err := app.RunConsumer(cfg); err != nil {
		log.Fatalf("[CONSUMER] %v", err)
	}
}
