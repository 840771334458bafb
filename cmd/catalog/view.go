package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/product-catalog/internal/common"
	"github.com/Veraticus/product-catalog/internal/config"
	"github.com/Veraticus/product-catalog/internal/tui"
	"github.com/Veraticus/product-catalog/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive catalog viewer",
		Long: `Open the terminal viewer. Press / to search, ctrl+x to clear the search,
ctrl+r to reset all filters and ? for help.`,
		RunE: runView,
	}
	addViewFlags(cmd)
	return cmd
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("query", "q", "", "initial search query")
	cmd.Flags().String("theme", "", "color theme (default, catppuccin-mocha)")
	cmd.Flags().Bool("mouse", false, "enable mouse support")
	cmd.Flags().Bool("inline", false, "render inline instead of taking over the terminal")
}

func runView(cmd *cobra.Command, _ []string) error {
	if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
		viper.Set("tui.theme", theme)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the viewer, so logs go to a file or nowhere.
	logFile, err := setupViewLogging(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer func() { _ = logFile.Close() }()
	}

	ctx := cmd.Context()
	src, closeSource, err := openFixtureSource(ctx, cfg.Fixtures)
	if err != nil {
		return err
	}
	defer closeSource()

	query, _ := cmd.Flags().GetString("query")
	mouse, _ := cmd.Flags().GetBool("mouse")
	inline, _ := cmd.Flags().GetBool("inline")

	opts := []tui.Option{
		tui.WithSource(src),
		tui.WithTheme(themes.GetTheme(cfg.TUI.Theme)),
		tui.WithQuery(query),
		tui.WithMouse(mouse),
		tui.WithAltScreen(!inline),
	}
	if cfg.TUI.Width > 0 && cfg.TUI.Height > 0 {
		opts = append(opts, tui.WithSize(cfg.TUI.Width, cfg.TUI.Height))
	}

	return tui.Run(ctx, opts...)
}

func setupViewLogging(cfg config.Config) (*os.File, error) {
	level, err := common.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	if cfg.TUI.LogFile == "" {
		return nil, common.SetupLoggerTo(io.Discard, level, cfg.Logging.Format)
	}

	f, err := os.OpenFile(cfg.TUI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if err := common.SetupLoggerTo(f, level, cfg.Logging.Format); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}
