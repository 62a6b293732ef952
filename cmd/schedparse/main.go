package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/danuarta/schedules-tracker/internal/carrier"
	"github.com/danuarta/schedules-tracker/internal/catalog"
	"github.com/danuarta/schedules-tracker/internal/common"
	"github.com/danuarta/schedules-tracker/internal/export"
	"github.com/danuarta/schedules-tracker/internal/ingest"
	"github.com/danuarta/schedules-tracker/internal/parser"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		file        = flag.String("file", "", "recognized-text file to parse")
		dir         = flag.String("dir", "", "directory of text files to process in batch")
		carrierFlag = flag.String("carrier", "", "carrier override (skips detection)")
		format      = flag.String("format", "table", "output format: table or email")
		xlsxOut     = flag.String("xlsx", "", "also write an XLSX workbook to this path")
	)
	flag.Parse()

	if *file == "" && *dir == "" {
		printError("Error: --file or --dir is required\n")
		os.Exit(1)
	}
	if *format != "table" && *format != "email" {
		printError("Error: --format must be table or email\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	cfg := common.LoadConfig()
	ctx := context.Background()

	// Offline by design: the CLI resolves against the local cache only.
	cache, err := catalog.OpenCache(cfg.Catalog.CachePath, logger)
	if err != nil {
		printError("Error: open cache: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = cache.Close() }()

	if cfg.Catalog.SeedPath != "" {
		if _, err := catalog.SeedFromFile(ctx, cache, cfg.Catalog.SeedPath, logger); err != nil {
			printError("Error: seed import: %v\n", err)
			os.Exit(1)
		}
	}

	resolver, err := catalog.NewResolver(ctx, cache, cfg.Catalog.FuzzyThreshold, logger)
	if err != nil {
		printError("Error: build resolver: %v\n", err)
		os.Exit(1)
	}

	engine := parser.NewEngine(carrier.NewRegistry(), resolver, logger)

	if *dir != "" {
		exporter := export.NewService(cfg.Export.OutputDir, logger)
		processor := ingest.NewProcessor(engine, exporter, logger)
		// The carrier override rides the context so every file in the batch
		// gets it.
		batchCtx := common.WithCarrierHint(ctx, *carrierFlag)
		results, stats, err := processor.ProcessDirectory(batchCtx, *dir, nil, true)
		if err != nil {
			printError("Error: batch: %v\n", err)
			os.Exit(1)
		}
		for _, r := range results {
			if r.Err != "" {
				fmt.Printf("FAIL %s: %s\n", r.Path, r.Err)
			} else {
				fmt.Printf("OK   %s\n", r.Path)
			}
		}
		fmt.Printf("scanned=%d matched=%d succeeded=%d failed=%d\n",
			stats.Scanned, stats.Matched, stats.Succeeded, stats.Failed)
		return
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		printError("Error: read %s: %v\n", *file, err)
		os.Exit(1)
	}

	result, err := engine.Parse(ctx, parser.Request{
		Text:         string(data),
		CarrierHint:  *carrierFlag,
		FilenameHint: filepath.Base(*file),
	})
	if err != nil {
		printError("Error: parse: %v\n", err)
		os.Exit(1)
	}

	if !result.HasSchedules() {
		fmt.Printf("No schedules found (carrier: %s).\n", result.Carrier)
		if result.TextSample != "" {
			fmt.Printf("Text sample:\n%s\n", result.TextSample)
		}
		return
	}

	if result.Carrier != "" {
		fmt.Printf("Carrier: %s\n", result.Carrier)
	}
	switch *format {
	case "email":
		fmt.Println(export.FormatEmail(result.Options))
	default:
		fmt.Println(export.FormatTable(result.Options))
	}
	for _, w := range result.Warnings {
		fmt.Printf("warning: %s: %s\n", w.Code, w.Message)
	}
	for _, o := range result.Options {
		for _, w := range o.Warnings {
			fmt.Printf("warning (%s): %s: %s\n", o.Vessel, w.Code, w.Message)
		}
	}

	if *xlsxOut != "" {
		exporter := export.NewService(cfg.Export.OutputDir, logger)
		buf, err := exporter.SchedulesXLSX(result)
		if err != nil {
			printError("Error: xlsx: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxOut, buf, 0o644); err != nil {
			printError("Error: write %s: %v\n", *xlsxOut, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *xlsxOut)
	}
}
