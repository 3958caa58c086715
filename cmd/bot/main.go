package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/finances-ledger/internal/clients/kafka"
	"max.ks1230/finances-ledger/internal/clients/tg"
	"max.ks1230/finances-ledger/internal/config"
	"max.ks1230/finances-ledger/internal/logger"
	"max.ks1230/finances-ledger/internal/model/ledger"
	"max.ks1230/finances-ledger/internal/model/messages"
	"max.ks1230/finances-ledger/internal/model/storage"
	"max.ks1230/finances-ledger/internal/tracing"
)

const shutdownTimeout = 10 * time.Second

func main() {
	defer logger.Sync()
	logger.Info("Bot init - start")

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	tracer, err := tracing.Init(conf.Jaeger())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer tracer.Close()

	kv, err := storage.NewFromConfig(conf)
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}
	defer kv.Close()

	var observers []ledger.Observer
	if conf.Kafka().Enabled() {
		publisher, err := kafka.NewEventPublisher(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer:", zap.Error(err))
		}
		defer publisher.Close()
		observers = append(observers, publisher)
	}

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	msgService := messages.NewService(client, kv, conf.App(), observers...)

	logger.Info("Bot init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		client.ListenUpdates(ctx, msgService)
		return nil
	})
	if addr := conf.Metrics().Addr(); addr != "" {
		g.Go(func() error {
			return serveMetrics(ctx, addr)
		})
	}

	if err = g.Wait(); err != nil {
		logger.Error("bot stopped with error", zap.Error(err))
	}
}

func serveMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown", zap.Error(err))
		}
	}()

	logger.Info("serving metrics", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve metrics")
	}
	return nil
}
