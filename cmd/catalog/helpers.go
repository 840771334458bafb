package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/product-catalog/internal/catalog"
	"github.com/Veraticus/product-catalog/internal/common"
	"github.com/Veraticus/product-catalog/internal/config"
	"github.com/Veraticus/product-catalog/internal/fixtures"
	"github.com/Veraticus/product-catalog/internal/storage"
)

// openFixtureSource returns the configured fixture source. The returned
// close function is always safe to call.
func openFixtureSource(ctx context.Context, cfg config.FixturesConfig) (fixtures.Source, func(), error) {
	noop := func() {}

	switch cfg.Source {
	case config.SourceEmbedded:
		return fixtures.Embedded(), noop, nil

	case config.SourceDir:
		return fixtures.Dir(cfg.Path), noop, nil

	case config.SourceSQLite:
		store, err := openStorage(ctx, cfg.Path)
		if err != nil {
			return nil, noop, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				slog.Warn("Failed to close database", "error", err)
			}
		}, nil

	default:
		return nil, noop, fmt.Errorf("%w: %q", common.ErrUnknownFixtureSource, cfg.Source)
	}
}

// openStorage opens and migrates the database at path, retrying while
// another process holds the lock.
func openStorage(ctx context.Context, path string) (*storage.SQLiteStorage, error) {
	var store *storage.SQLiteStorage

	err := common.WithRetry(ctx, func() error {
		s, err := storage.NewSQLiteStorage(ctx, path)
		if err != nil {
			return err
		}
		if err := s.Migrate(ctx); err != nil {
			_ = s.Close()
			return err
		}
		store = s
		return nil
	}, common.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: 200 * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	return store, nil
}

// loadCatalog loads fixtures from the configured source and joins them.
func loadCatalog(ctx context.Context, cfg config.FixturesConfig) (*catalog.Catalog, error) {
	src, closeSource, err := openFixtureSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	set, err := src.Load(ctx)
	if err != nil {
		return nil, common.NewUserError("Could not load fixtures", err)
	}

	slog.Debug("Loaded fixtures",
		"source", cfg.Source,
		"users", len(set.Users),
		"categories", len(set.Categories),
		"products", len(set.Products))

	return catalog.New(set), nil
}
