package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/danuarta/schedules-tracker/gen/proto/schedules/v1"
	"github.com/danuarta/schedules-tracker/internal/async"
	"github.com/danuarta/schedules-tracker/internal/carrier"
	"github.com/danuarta/schedules-tracker/internal/catalog"
	"github.com/danuarta/schedules-tracker/internal/common"
	"github.com/danuarta/schedules-tracker/internal/export"
	"github.com/danuarta/schedules-tracker/internal/ingest"
	"github.com/danuarta/schedules-tracker/internal/parser"
	repo "github.com/danuarta/schedules-tracker/internal/repository"
	svc "github.com/danuarta/schedules-tracker/internal/server"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Database.DSN == "" {
		logger.Error("missing DB_URL environment variable")
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	catalogRepo := repo.NewCatalogRepository(entc, logger)

	cache, err := catalog.OpenCache(cfg.Catalog.CachePath, logger)
	if err != nil {
		logger.Error("failed to open local cache", "error", err)
		os.Exit(1)
	}
	defer func() { _ = cache.Close() }()

	syncer := catalog.NewSyncer(cache, catalogRepo, cfg.Catalog.SyncTimeout, logger)

	if cfg.Catalog.SeedPath != "" {
		if _, err := catalog.SeedFromFile(ctx, cache, cfg.Catalog.SeedPath, logger); err != nil {
			logger.Error("seed import failed", "path", cfg.Catalog.SeedPath, "error", err)
			os.Exit(1)
		}
	}

	// Resolver learns into the local cache; sync promotes it later.
	resolver, err := catalog.NewResolver(ctx, cache, cfg.Catalog.FuzzyThreshold, logger)
	if err != nil {
		logger.Error("failed to build resolver index", "error", err)
		os.Exit(1)
	}
	logger.Info("resolver ready", "fuzzy_threshold", resolver.Threshold())

	registry := carrier.NewRegistry()
	engine := parser.NewEngine(registry, resolver, logger)
	exporter := export.NewService(cfg.Export.OutputDir, logger)
	processor := ingest.NewProcessor(engine, exporter, logger)

	// gRPC server
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	parserService := svc.NewParserService(engine, logger)
	v1.RegisterParserServiceServer(grpcServer, parserService)
	catalogService := svc.NewCatalogService(catalogRepo, resolver, logger)
	v1.RegisterCatalogServiceServer(grpcServer, catalogService)
	syncService := svc.NewSyncService(syncer, resolver, logger)
	v1.RegisterSyncServiceServer(grpcServer, syncService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	queue := async.NewParseQueue(processor, logger,
		async.WithWorkers(cfg.Watch.Workers),
		async.WithQueueSize(512),
		async.WithProcessTimeout(time.Minute),
	)

	if cfg.Watch.Dir != "" {
		events, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       []string{cfg.Watch.Dir},
			InitialScan: true,
			Debounce:    cfg.Watch.PollInterval,
		})
		if err != nil {
			logger.Error("failed to start watcher", "dir", cfg.Watch.Dir, "error", err)
			os.Exit(1)
		}
		go func() {
			for path := range events {
				_ = queue.Enqueue(ctx, async.Job{
					Path:        path,
					SubmittedAt: time.Now(),
					TraceID:     uuid.New().String(),
				})
			}
		}()
		go func() {
			for err := range watchErrs {
				logger.Error("watch error", "error", err)
			}
		}()
		logger.Info("watching for schedule drops", "dir", cfg.Watch.Dir)
	}

	logger.Info("schedules-tracker listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
