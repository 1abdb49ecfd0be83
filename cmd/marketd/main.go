package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	catalogpb "github.com/kahawa-labs/beanmarket/gen/proto/catalog/v1"
	"github.com/kahawa-labs/beanmarket/internal/common"
	"github.com/kahawa-labs/beanmarket/internal/export"
	"github.com/kahawa-labs/beanmarket/internal/llm/openai"
	"github.com/kahawa-labs/beanmarket/internal/pipeline"
	repo "github.com/kahawa-labs/beanmarket/internal/repository"
	"github.com/kahawa-labs/beanmarket/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
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
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health OK")

	// Wire repositories
	supplierRepo := repo.NewSupplierRepository(entc, logger)
	listingRepo := repo.NewListingRepository(entc, logger)
	runRepo := repo.NewExtractionRunRepository(entc, logger)

	// Extraction client + orchestrator
	extractor := openai.NewClient(openai.Config{
		APIKey:          cfg.LLM.APIKey,
		BaseURL:         cfg.LLM.BaseURL,
		Model:           cfg.LLM.Model,
		Temperature:     cfg.LLM.Temperature,
		Timeout:         cfg.LLM.Timeout,
		MaxOutputTokens: cfg.LLM.MaxOutputTokens,
	}, logger)
	orch := pipeline.NewOrchestrator(extractor, listingRepo, pipeline.Options{
		MaxChunkSize: cfg.Extract.ChunkSize,
		MaxChunks:    cfg.Extract.MaxChunks,
		Pacing:       cfg.Extract.ChunkPacing,
		Retry: pipeline.RetryConfig{
			MaxRetries: cfg.Extract.MaxRetries,
			Backoff:    cfg.Extract.RetryBackoff,
		},
	}, logger)

	exportSvc := export.NewService(listingRepo, logger)

	// gRPC server
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	catalogpb.RegisterExtractionServiceServer(grpcServer,
		server.NewExtractionService(orch, supplierRepo, listingRepo, runRepo, cfg.LLM.Model, logger))
	catalogpb.RegisterCatalogServiceServer(grpcServer,
		server.NewCatalogService(supplierRepo, listingRepo, exportSvc, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
