package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/luis-carvajal/invoice-extractor/gen/ent"
	"github.com/luis-carvajal/invoice-extractor/internal/common"
	"github.com/luis-carvajal/invoice-extractor/internal/export"
	"github.com/luis-carvajal/invoice-extractor/internal/extract"
	"github.com/luis-carvajal/invoice-extractor/internal/ingest"
	"github.com/luis-carvajal/invoice-extractor/internal/pipeline"
	repo "github.com/luis-carvajal/invoice-extractor/internal/repository"
	"github.com/luis-carvajal/invoice-extractor/internal/template"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use an in-memory SQLite database")
		dir     = flag.String("dir", "", "directory to process invoices from (required)")
		out     = flag.String("out", "", "output file path (defaults next to the input directory)")
		format  = flag.String("format", "xlsx", "export format: xlsx or json")
		workers = flag.Int("workers", 0, "parse workers (defaults to PARSE_WORKERS)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *format != "xlsx" && *format != "json" {
		printError("Error: --format must be xlsx or json\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "invoices."+*format)
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if *workers <= 0 {
		*workers = cfg.Parse.Workers
	}

	var entc *ent.Client
	if *inmem {
		var err error
		entc, err = repo.OpenSQLite(ctx, "", logger)
		if err != nil {
			logger.Error("failed to open in-memory database", "error", err)
			os.Exit(1)
		}
		defer func() { _ = entc.Close() }()
	} else {
		if err := cfg.Validate(); err != nil {
			logger.Error("invalid configuration", "error", err)
			os.Exit(1)
		}
		var err error
		var pool *pgxpool.Pool
		entc, pool, err = openPostgres(ctx, cfg, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer repo.Close(entc, pool, logger)
	}

	registry := template.NewRegistry(cfg.Parse.DefaultCurrency)
	if path := cfg.Parse.TemplateConfigPath; path != "" {
		tc, err := template.LoadConfig(path)
		if err != nil {
			logger.Error("failed to load template config", "path", path, "error", err)
			os.Exit(1)
		}
		if err := registry.Apply(tc); err != nil {
			logger.Error("failed to apply template config", "error", err)
			os.Exit(1)
		}
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

	// Register files up front so re-runs deduplicate on content.
	ingestor := ingest.NewFSIngestor(filesRepo, logger)
	ingested, err := ingestor.IngestDirectory(ctx, *dir)
	if err != nil {
		logger.Error("failed to ingest directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	fileByPath := make(map[string]uuid.UUID, len(ingested))
	for _, res := range ingested {
		fileByPath[res.SourcePath] = res.FileID
	}
	logger.Info("ingestion complete", "dir", *dir, "files", len(ingested))

	queue := pipeline.NewQueue(pipe, logger,
		pipeline.WithWorkers(*workers),
		pipeline.WithJobTimeout(cfg.Parse.DocumentTimeout),
	)
	queue.Start(ctx)
	for path := range fileByPath {
		queue.Enqueue(ctx, path)
	}
	queue.Shutdown()

	results := queue.Results()
	for _, res := range results {
		if fileID, ok := fileByPath[res.Path]; ok && res.JobID != uuid.Nil {
			if err := jobsRepo.AttachFile(ctx, res.JobID, fileID); err != nil {
				logger.Warn("failed to link job to file", "job_id", res.JobID, "error", err)
			}
		}
		logger.Info("parsed", "path", res.Path, "summary", res.FormatForLog())
	}

	exportSvc := export.NewService(invoicesRepo, logger)
	var payload []byte
	switch *format {
	case "json":
		payload, err = exportSvc.ExportJSON(ctx, repo.ListFilter{})
	default:
		payload, err = exportSvc.ExportXLSX(ctx, repo.ListFilter{})
	}
	if err != nil {
		logger.Error("failed to export invoices", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, payload, 0o644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete",
		"files_ingested", len(ingested),
		"parsed", len(results),
		"failed", len(queue.Failed()),
		"output", *out,
	)
	if len(queue.Failed()) > 0 {
		os.Exit(2)
	}
}

func openPostgres(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
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
		return nil, nil, err
	}
	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		repo.Close(entc, pool, logger)
		return nil, nil, err
	}
	return entc, pool, nil
}
