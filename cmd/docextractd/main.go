package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/joseph-ayodele/docextract/internal/async"
	"github.com/joseph-ayodele/docextract/internal/common"
	"github.com/joseph-ayodele/docextract/internal/core"
	"github.com/joseph-ayodele/docextract/internal/ingest"
	repo "github.com/joseph-ayodele/docextract/internal/repository"
	svc "github.com/joseph-ayodele/docextract/internal/server"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg := common.LoadConfig()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ledger, err := repo.OpenLedger(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open job ledger", "error", err)
		os.Exit(1)
	}
	defer ledger.Close(logger)
	if ledger == nil {
		logger.Warn("DB_URL not set, running without a job ledger")
	}

	caps := core.BuildCapabilities(ctx, cfg, logger)
	processor := core.NewProcessor(logger, caps, ledger.Repo())

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Output.QueueWorkers),
		async.WithQueueSize(cfg.Output.QueueSize),
		async.WithProcessTimeout(cfg.Output.JobTimeout),
	)
	dispatcher := ingest.NewDispatcher(processor, queue, cfg.Output.Dir, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	extraction := svc.NewExtractionService(processor, ledger.Repo(), dispatcher, cfg.Output.Dir, cfg.Server.MaxConcurrent, logger)
	svc.RegisterExtractionServer(grpcServer, extraction)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(svc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("docextractd listening", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})

	if cfg.Output.WatchDir != "" {
		paths, errs, err := ingest.StartWatcher(gctx, ingest.WatchConfig{
			Roots:       []string{cfg.Output.WatchDir},
			InitialScan: true,
			Debounce:    cfg.Output.WatchDebounce,
			Logger:      logger,
		})
		if err != nil {
			logger.Error("failed to start watcher", "dir", cfg.Output.WatchDir, "error", err)
			os.Exit(1)
		}
		logger.Info("watching for documents", "dir", cfg.Output.WatchDir, "debounce", cfg.Output.WatchDebounce)
		g.Go(func() error {
			return watchLoop(gctx, dispatcher, paths, errs, logger)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		healthServer.Shutdown()
		grpcServer.GracefulStop()

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		queue.Shutdown(sctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("docextractd stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("docextractd stopped")
}

// watchLoop dispatches watcher paths until both watcher channels close.
func watchLoop(ctx context.Context, d *ingest.Dispatcher, paths <-chan string, errs <-chan error, logger *slog.Logger) error {
	for paths != nil || errs != nil {
		select {
		case p, ok := <-paths:
			if !ok {
				paths = nil
				continue
			}
			res, err := d.IngestPath(ctx, p)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				logger.Warn("watch ingest failed", "path", p, "error", err)
				continue
			}
			if !res.Deduplicated {
				logger.Info("watch ingest queued", "path", p, "job_id", res.JobID, "out", res.OutputDir)
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Warn("watcher reported error", "error", err)
		}
	}
	return nil
}
