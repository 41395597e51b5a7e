package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariefcatur/go-seller-orders/internal/config"
	"github.com/ariefcatur/go-seller-orders/internal/inventory"
	kafkax "github.com/ariefcatur/go-seller-orders/internal/kafka"
	"github.com/ariefcatur/go-seller-orders/internal/logx"
	"github.com/ariefcatur/go-seller-orders/internal/redisx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	name := cfg.ServiceName + "-projector"

	log, err := logx.New(cfg.Env, cfg.LogLevel, name)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Service: dedup via Redis (pakai event_id)
	svc := &inventory.Service{
		Cache: redisx.NewProductCache(rdb, cfg.CacheTTL, log),
		Dedup: func(ctx context.Context, eventID string) (bool, error) {
			return redisx.MarkOnce(ctx, rdb, name, eventID)
		},
		Forget: func(ctx context.Context, eventID string) error {
			return redisx.Unmark(ctx, rdb, name, eventID)
		},
		Log: log,
	}

	// Consumer
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.ProjectorGroup, cfg.KafkaTopic, cfg.ProjectorWorkers, log)
	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Info("projector started",
			zap.String("group", cfg.ProjectorGroup),
			zap.String("topic", cfg.KafkaTopic),
			zap.Int("workers", cfg.ProjectorWorkers))
		if err := cons.Start(ctx, svc.HandleOrderEvent); err != nil {
			log.Error("consumer exit", zap.Error(err))
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Info("shutting down projector")
	cancel()
	<-done
}
