package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/danuarta/schedules-tracker/internal/catalog"
	"github.com/danuarta/schedules-tracker/internal/common"
	repo "github.com/danuarta/schedules-tracker/internal/repository"
)

func main() {
	var (
		push = flag.Bool("push", false, "promote local learning to the remote store")
		pull = flag.Bool("pull", false, "replace the local cache with remote state")
	)
	flag.Parse()

	if *push == *pull {
		fmt.Fprintln(os.Stderr, "Error: exactly one of --push or --pull is required")
		os.Exit(1)
	}

	logger := slog.Default()
	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		fmt.Fprintln(os.Stderr, "Error: DB_URL env var is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: open database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	cache, err := catalog.OpenCache(cfg.Catalog.CachePath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: open cache: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = cache.Close() }()

	remote := repo.NewCatalogRepository(entc, logger)
	syncer := catalog.NewSyncer(cache, remote, cfg.Catalog.SyncTimeout, logger)

	if *push {
		stats, err := syncer.Push(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: push: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("pushed vessels=%d aliases=%d skipped=%d\n",
			stats.VesselsPushed, stats.AliasesPushed, stats.Skipped)
		for _, c := range stats.Conflicts {
			fmt.Printf("conflict (remote wins): %s\n", c)
		}
		return
	}

	snap, err := syncer.Pull(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: pull: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("pulled vessels=%d aliases=%d\n", len(snap.Vessels), len(snap.Aliases))
}
