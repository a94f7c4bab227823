package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/DairouWang/TroutTracker/internal/adapter/http"
	"github.com/DairouWang/TroutTracker/internal/cache"
	"github.com/DairouWang/TroutTracker/internal/config"
	"github.com/DairouWang/TroutTracker/internal/gazetteer"
	"github.com/DairouWang/TroutTracker/internal/observability"
	"github.com/DairouWang/TroutTracker/internal/override"
	"github.com/DairouWang/TroutTracker/internal/resolver"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	store := gazetteer.New(cfg.GazetteerPath, cfg.HydrographyPath, logger)
	if records, err := store.Load(); err != nil {
		metrics.DatasetLoadErrs.Inc()
		logger.Error("gazetteer dataset failed to load at startup, will retry on first request", "error", err)
	} else {
		metrics.GazetteerSize.Set(float64(len(records)))
	}

	overrides := override.New(cfg.OverridePath, logger)

	resultCache := buildResultCache(cfg, logger)

	res := resolver.New(store, overrides, resultCache, cfg.MinTokenScore, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, store, res, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

// buildResultCache wires an in-process LRU in front of a DynamoDB backend
// when CACHE_TABLE is configured. An unset CACHE_TABLE disables caching
// entirely; every resolve computes live.
func buildResultCache(cfg *config.Config, logger *slog.Logger) cache.ResultCache {
	if cfg.CacheTable == "" {
		logger.Info("CACHE_TABLE unset, result caching disabled")
		return cache.NullCache{}
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		logger.Error("failed to load AWS config, caching disabled", "error", err)
		return cache.NullCache{}
	}

	backend := cache.NewDynamoBackend(dynamodb.NewFromConfig(awsCfg), cfg.CacheTable, logger)
	return cache.NewLRUFront(backend, cfg.CacheLRUSize, logger)
}
