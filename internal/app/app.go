package app

import (
	"context"
	"io"

	"github.com/CodeWithFin/platypus-website/internal/config"
	"github.com/CodeWithFin/platypus-website/internal/events"
	"github.com/CodeWithFin/platypus-website/internal/messaging/kafka/producer"
	"github.com/CodeWithFin/platypus-website/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// App is the wired storefront API.
type App struct {
	Router *gin.Engine

	outbox  *producer.Outbox
	closers []io.Closer
	logger  *zap.Logger
}

type infra struct {
	storage storage.Storage
	events  events.Publisher
	outbox  *producer.Outbox
}

func BuildApp(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{logger: logger}

	// 1. Setup Infrastructure
	var in infra
	if cfg.RedisAddr != "" {
		rdb, err := connectRedisWithRetry(cfg.RedisAddr, 5, logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, rdb)
		in.storage = storage.NewRedis(rdb)
	} else {
		logger.Info("REDIS_ADDR not set, using in-memory storage")
		in.storage = storage.NewMemory()
	}

	if cfg.KafkaBroker != "" {
		writer, err := connectKafkaWithRetry(cfg.KafkaBroker, cfg.KafkaTopic, 5, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, writer)
		in.outbox = producer.NewOutbox(writer, producer.Options{})
		in.events = in.outbox
	} else {
		logger.Info("KAFKA_BROKER not set, order events are dropped")
		in.events = events.NewNoop()
	}
	a.outbox = in.outbox

	// 2. Register Modules & Routes
	router := gin.Default()
	if err := registerModules(router, cfg, in, logger); err != nil {
		a.Close()
		return nil, err
	}
	a.Router = router

	return a, nil
}

// Start launches the background workers. They stop with ctx; the returned
// channel closes once they have drained.
func (a *App) Start(ctx context.Context) <-chan struct{} {
	if a.outbox == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	return startOutboxWorker(ctx, a.outbox)
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("close failed", zap.Error(err))
		}
	}
	a.closers = nil
}
