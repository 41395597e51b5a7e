package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/go-seller-orders/internal/auth"
	"github.com/ariefcatur/go-seller-orders/internal/config"
	"github.com/ariefcatur/go-seller-orders/internal/httpx"
	kafkax "github.com/ariefcatur/go-seller-orders/internal/kafka"
	"github.com/ariefcatur/go-seller-orders/internal/logx"
	"github.com/ariefcatur/go-seller-orders/internal/memstore"
	"github.com/ariefcatur/go-seller-orders/internal/orders"
	"github.com/ariefcatur/go-seller-orders/internal/postgres"
	"github.com/ariefcatur/go-seller-orders/internal/redisx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := logx.New(cfg.Env, cfg.LogLevel, cfg.ServiceName)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Store
	var store orders.Store
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		log.Warn("using in-memory store, data is lost on restart")
		store = memstore.New()
	default:
		db, err := postgres.Connect(ctx, cfg.PostgresDSN, postgres.PoolOptions{})
		if err != nil {
			log.Fatal("db connect", zap.Error(err))
		}
		defer db.Close()
		if err := postgres.Migrate(ctx, db); err != nil {
			log.Fatal("db migrate", zap.Error(err))
		}
		store = postgres.NewStore(db)
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, 1024, log)
	prod.Start()

	// Service & handler
	tokens := auth.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)
	svc := &orders.Service{
		Store:        store,
		Hasher:       auth.BcryptHasher{Cost: 10},
		Tokens:       tokens,
		Cache:        redisx.NewProductCache(rdb, cfg.CacheTTL, log),
		Events:       prod,
		Log:          log,
		Name:         cfg.ServiceName,
		ReleaseStock: cfg.ReleaseStock,
	}

	router := httpx.NewRouter(log, tokens)
	h := &httpx.Handler{Svc: svc, Log: log}
	h.Register(router)

	// HTTP server
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// graceful shutdown
	go func() {
		log.Info("http listening", zap.String("addr", cfg.HTTPAddr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Warn("http shutdown", zap.Error(err))
	}
	prod.Close() // tutup inbox -> flush & close writer, Emit yang telat dapat ErrProducerClosed
}
