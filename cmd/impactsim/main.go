package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/impact-sim/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/impact-sim/internal/adapter/kafka"
	"github.com/couchcryptid/impact-sim/internal/adapter/neo"
	"github.com/couchcryptid/impact-sim/internal/adapter/simbackend"
	"github.com/couchcryptid/impact-sim/internal/config"
	"github.com/couchcryptid/impact-sim/internal/observability"
	"github.com/couchcryptid/impact-sim/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"golang.org/x/sync/errgroup"
)

// alwaysReady serves /readyz when the Kafka pipeline is disabled.
type alwaysReady struct{}

func (alwaysReady) CheckReadiness(context.Context) error { return nil }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	neoClient := neo.NewClient(cfg.NEOAPIKey, cfg.NEOBaseURL, cfg.NEOTimeout, cfg.NEORatePerSec, metrics, logger)
	opts := []httpadapter.Option{
		httpadapter.WithMetrics(metrics),
		httpadapter.WithPlanetRadius(cfg.PlanetRadiusUnits),
		httpadapter.WithNEO(neo.NewCachedLooker(neoClient, cfg.NEOCacheSize, metrics)),
	}
	logger.Info("neo lookups enabled", "base_url", cfg.NEOBaseURL, "cache_size", cfg.NEOCacheSize)

	if cfg.SimBackendURL != "" {
		backend := simbackend.NewClient(cfg.SimBackendURL, cfg.SimBackendTimeout, logger)
		if err := backend.CheckReadiness(ctx); err != nil {
			logger.Warn("simulation backend not reachable at startup", "url", cfg.SimBackendURL, "error", err)
		}
		opts = append(opts, httpadapter.WithSimulator(backend))
		logger.Info("simulation backend enabled", "url", cfg.SimBackendURL)
	} else {
		logger.Info("simulation backend disabled")
	}

	var (
		ready  sharedobs.ReadinessChecker = alwaysReady{}
		p      *pipeline.Pipeline
		reader *kafkaadapter.Reader
		writer *kafkaadapter.Writer
	)
	if cfg.PipelineEnabled {
		reader = kafkaadapter.NewReader(cfg, logger)
		writer = kafkaadapter.NewWriter(cfg, logger)
		transformer := pipeline.NewTransformer(cfg.PlanetRadiusUnits, logger, metrics)
		p = pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)
		ready = p
	} else {
		logger.Info("kafka pipeline disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, ready, logger, opts...)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if p != nil {
		g.Go(func() error {
			return p.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("service error", "error", err)
	}

	if reader != nil {
		if err := reader.Close(); err != nil {
			logger.Error("kafka reader close error", "error", err)
		}
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
