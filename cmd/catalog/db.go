package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/product-catalog/internal/cli"
	"github.com/Veraticus/product-catalog/internal/config"
	"github.com/Veraticus/product-catalog/internal/fixtures"
	"github.com/Veraticus/product-catalog/internal/storage"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func dbCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the fixture database",
		Long:  `Seed a SQLite database with fixtures and inspect what it holds.`,
	}

	cmd.AddCommand(dbSeedCmd())
	cmd.AddCommand(dbStatusCmd())

	return cmd
}

func dbSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Copy fixtures into a SQLite database",
		Long: `Copy users, categories and products into a SQLite database, replacing
whatever it held. Reads the embedded fixtures unless --from names a directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbPath, _ := cmd.Flags().GetString("db")
			from, _ := cmd.Flags().GetString("from")

			var src fixtures.Source = fixtures.Embedded()
			if from != "" {
				src = fixtures.Dir(config.ExpandPath(from))
			}

			interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
			ctx := interrupts.HandleInterrupts(cmd.Context(), "Nothing was written. Run seed again to retry.")
			defer interrupts.Stop()

			counts, err := seedDatabase(ctx, config.ExpandPath(dbPath), src, cmd.ErrOrStderr())
			if err != nil {
				if interrupts.WasInterrupted() {
					return nil
				}
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf(
				"Seeded %d users, %d categories and %d products",
				counts.Users, counts.Categories, counts.Products)))
			return err
		},
	}

	cmd.Flags().String("db", "", "database path")
	cmd.Flags().String("from", "", "fixture directory (default: embedded fixtures)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func dbStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show schema version and row counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbPath, _ := cmd.Flags().GetString("db")
			return printStatus(cmd.Context(), cmd.OutOrStdout(), config.ExpandPath(dbPath))
		},
	}

	cmd.Flags().String("db", "", "database path")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

// seedDatabase replaces the contents of the database at dbPath with the
// fixtures from src, drawing progress on progressOut.
func seedDatabase(ctx context.Context, dbPath string, src fixtures.Source, progressOut io.Writer) (storage.Counts, error) {
	set, err := src.Load(ctx)
	if err != nil {
		return storage.Counts{}, fmt.Errorf("failed to load fixtures: %w", err)
	}

	store, err := openStorage(ctx, dbPath)
	if err != nil {
		return storage.Counts{}, err
	}
	defer func() { _ = store.Close() }()

	total := len(set.Users) + len(set.Categories) + len(set.Products)
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(progressOut),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Seeding fixtures...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(progressOut)
		}),
	)

	err = store.SaveFixtures(ctx, set, func() {
		if err := bar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	})
	if err != nil {
		return storage.Counts{}, fmt.Errorf("failed to seed database: %w", err)
	}

	counts, err := store.Counts(ctx)
	if err != nil {
		return storage.Counts{}, err
	}

	slog.Info("Seeded database", "path", dbPath, "rows", counts.Total())
	return counts, nil
}

func printStatus(ctx context.Context, out io.Writer, dbPath string) error {
	store, err := openStorage(ctx, dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	schema, err := store.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	counts, err := store.Counts(ctx)
	if err != nil {
		return err
	}

	lines := []string{
		cli.FormatTitle("Fixture database"),
		fmt.Sprintf("Path:       %s", store.Path()),
		fmt.Sprintf("Schema:     v%d (expected v%d)", schema, storage.ExpectedSchemaVersion),
		fmt.Sprintf("Users:      %d", counts.Users),
		fmt.Sprintf("Categories: %d", counts.Categories),
		fmt.Sprintf("Products:   %d", counts.Products),
	}
	if counts.Total() == 0 {
		lines = append(lines, cli.FormatWarning("Database is empty. Run 'catalog db seed' first."))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
