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

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	invoicespb "github.com/luis-carvajal/invoice-extractor/gen/proto/invoices/v1"
	"github.com/luis-carvajal/invoice-extractor/internal/common"
	"github.com/luis-carvajal/invoice-extractor/internal/export"
	"github.com/luis-carvajal/invoice-extractor/internal/extract"
	"github.com/luis-carvajal/invoice-extractor/internal/ingest"
	"github.com/luis-carvajal/invoice-extractor/internal/pipeline"
	repo "github.com/luis-carvajal/invoice-extractor/internal/repository"
	svc "github.com/luis-carvajal/invoice-extractor/internal/server"
	"github.com/luis-carvajal/invoice-extractor/internal/template"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
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

	registry, err := newRegistry(cfg)
	if err != nil {
		logger.Error("failed to build template registry", "error", err)
		os.Exit(1)
	}

	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	filesRepo := repo.NewInvoiceFileRepository(entc, logger)
	jobsRepo := repo.NewParseJobRepository(entc, logger)

	extractor := extract.NewExtractor(extract.Config{
		Pdftotext: cfg.Extract.Pdftotext,
		MaxPages:  cfg.Extract.MaxPages,
	}, logger)

	pipe := pipeline.New(extractor, registry, logger)
	pipe.Jobs = jobsRepo
	pipe.Invoices = invoicesRepo

	queue := pipeline.NewQueue(pipe, logger,
		pipeline.WithWorkers(cfg.Parse.Workers),
		pipeline.WithQueueSize(512),
		pipeline.WithJobTimeout(cfg.Parse.DocumentTimeout),
	)
	queue.Start(ctx)
	defer queue.Shutdown()

	// Optional hot-folder ingestion.
	if dirs := os.Getenv("INGEST_DIRS"); dirs != "" {
		ingestor := ingest.NewFSIngestor(filesRepo, logger)
		evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:       strings.Split(dirs, ","),
			InitialScan: true,
			Debounce:    2 * time.Second,
		}, logger)
		if err != nil {
			logger.Error("failed to start ingest watcher", "dirs", dirs, "error", err)
			os.Exit(1)
		}
		go func() {
			for path := range evCh {
				res, err := ingestor.IngestPath(ctx, path)
				if err != nil {
					logger.Warn("ingest failed", "path", path, "error", err)
					continue
				}
				if res.Deduplicated {
					logger.Info("duplicate ignored", "path", path, "file_id", res.FileID)
					continue
				}
				queue.Enqueue(ctx, path)
			}
		}()
		go func() {
			for err := range errCh {
				logger.Error("watcher error", "error", err)
			}
		}()
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(svc.UnaryRequestID(logger)),
	)

	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	invoicespb.RegisterInvoicesServiceServer(grpcServer, svc.NewInvoicesService(pipe, invoicesRepo, logger))
	exportSvc := export.NewService(invoicesRepo, logger)
	invoicespb.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportSvc, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
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
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}

func newRegistry(cfg *common.Config) (*template.Registry, error) {
	reg := template.NewRegistry(cfg.Parse.DefaultCurrency)
	if path := cfg.Parse.TemplateConfigPath; path != "" {
		tc, err := template.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		if err := reg.Apply(tc); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
