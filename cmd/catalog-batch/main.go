package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kahawa-labs/beanmarket/constants"
	"github.com/kahawa-labs/beanmarket/gen/ent"
	"github.com/kahawa-labs/beanmarket/internal/common"
	"github.com/kahawa-labs/beanmarket/internal/export"
	"github.com/kahawa-labs/beanmarket/internal/llm/openai"
	"github.com/kahawa-labs/beanmarket/internal/pipeline"
	repo "github.com/kahawa-labs/beanmarket/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem     = flag.Bool("inmem", false, "use in-memory SQLite database")
		file      = flag.String("file", "", "catalogue text file to extract (required)")
		supplier  = flag.String("supplier", "Local Batch", "supplier name to attach listings to")
		locale    = flag.String("locale", "en", "catalogue locale (en or es)")
		out       = flag.String("out", "", "output XLSX file path (optional, defaults next to input)")
		checkDups = flag.Bool("check-dups", true, "skip listings already stored for the supplier")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}
	if !constants.IsSupportedLocale(*locale) {
		printError("Error: --locale must be one of: en, es\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*file), "listings.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	text, err := os.ReadFile(*file)
	if err != nil {
		logger.Error("failed to read catalogue file", "file", *file, "error", err)
		os.Exit(1)
	}

	// Open database: in-memory SQLite for local runs, Postgres otherwise
	var entc *ent.Client
	if *inmem {
		entc, err = repo.OpenSQLiteInMemory(ctx, logger)
		if err != nil {
			logger.Error("failed to open in-memory database", "error", err)
			os.Exit(1)
		}
		defer func() { _ = entc.Close() }()
	} else {
		if cfg.Database.DSN == "" {
			printError("Error: DB_URL env var is required (or pass --inmem)\n")
			os.Exit(1)
		}
		client, pool, err := repo.Open(ctx, repo.Config{
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
		defer repo.Close(client, pool, logger)
		entc = client
	}

	// Wire repositories
	supplierRepo := repo.NewSupplierRepository(entc, logger)
	listingRepo := repo.NewListingRepository(entc, logger)
	runRepo := repo.NewExtractionRunRepository(entc, logger)

	sup, err := supplierRepo.GetOrCreateByName(ctx, *supplier, "USD")
	if err != nil {
		logger.Error("failed to get or create supplier", "error", err)
		os.Exit(1)
	}
	logger.Info("using supplier", "id", sup.ID, "name", sup.Name)

	if cfg.LLM.APIKey == "" {
		printError("Error: OPENAI_API_KEY env var is required\n")
		os.Exit(1)
	}
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

	run, err := runRepo.Start(ctx, &sup.ID, *locale, len(text))
	if err != nil {
		logger.Error("failed to record extraction run", "error", err)
		os.Exit(1)
	}

	sum, err := orch.Run(ctx, pipeline.Request{
		Text:            string(text),
		SupplierID:      sup.ID,
		SupplierName:    sup.Name,
		Locale:          *locale,
		Truncate:        true,
		CheckDuplicates: *checkDups,
	})
	if err != nil {
		_ = runRepo.FinishFailure(ctx, run.ID, "EXTRACTION_FAILED", err.Error())
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}

	inserted := 0
	if len(sum.Listings) > 0 {
		inserted, err = listingRepo.BulkInsert(ctx, sup.ID, sum.Listings)
		if err != nil {
			_ = runRepo.FinishFailure(ctx, run.ID, "DB_ERROR", err.Error())
			logger.Error("failed to persist listings", "error", err)
			os.Exit(1)
		}
	}

	st := constants.RunStatusSucceeded
	if sum.ErrorCode != "" || sum.ChunksFailed > 0 {
		st = constants.RunStatusPartial
	}
	_ = runRepo.Finish(ctx, run.ID, repo.RunOutcome{
		Summary:          sum,
		Status:           st,
		ListingsInserted: inserted,
		ModelName:        cfg.LLM.Model,
	})

	// Export to XLSX
	logger.Info("exporting to XLSX", "output", *out)
	exportSvc := export.NewService(listingRepo, logger)
	xlsxBytes, err := exportSvc.ExportListingsXLSX(ctx, sup.ID)
	if err != nil {
		logger.Error("failed to export listings", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch extraction complete",
		"chunks_total", sum.ChunksTotal,
		"chunks_processed", sum.ChunksProcessed,
		"chunks_failed", sum.ChunksFailed,
		"duplicates_skipped", sum.DuplicatesSkipped,
		"listings_inserted", inserted,
		"output_file", *out)

	fmt.Printf("Batch extraction complete!\n")
	fmt.Printf("- Chunks processed: %d/%d\n", sum.ChunksProcessed, sum.ChunksTotal)
	fmt.Printf("- Listings inserted: %d\n", inserted)
	fmt.Printf("- Duplicates skipped: %d\n", sum.DuplicatesSkipped)
	fmt.Printf("- Output: %s\n", *out)
}
