package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Veraticus/product-catalog/internal/cli"
	"github.com/Veraticus/product-catalog/internal/common"
	"github.com/Veraticus/product-catalog/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "catalog",
		Short: "🛒 Browse products by name, category and owner",
		Long: `catalog joins users, categories and products into one list and lets you
narrow it with a live, case-insensitive search.

Run it without a subcommand to open the terminal viewer.`,
		PersistentPreRunE: initConfig,
		RunE:              runView,
		SilenceUsage:      true,
	}
)

func init() {
	config.SetDefaults(viper.GetViper())

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/catalog/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("source", "embedded", "fixture source (embedded, dir, sqlite)")
	rootCmd.PersistentFlags().String("fixtures", "", "fixture directory or database path")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("fixtures.source", rootCmd.PersistentFlags().Lookup("source"))
	_ = viper.BindPFlag("fixtures.path", rootCmd.PersistentFlags().Lookup("fixtures"))

	addViewFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(viewCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(dbCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err for the user, preferring the friendly message of a
// UserError.
func printError(w io.Writer, err error) {
	msg := err.Error()
	var userErr *common.UserError
	if errors.As(err, &userErr) {
		msg = userErr.UserMessage
	}
	fmt.Fprintln(w, cli.FormatError(msg))
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/catalog", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// CATALOG_FIXTURES_SOURCE sets fixtures.source.
	viper.SetEnvPrefix("CATALOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level, err := common.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	if err := common.SetupLogger(level, cfg.Logging.Format); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	slog.Debug("Configuration loaded",
		"config_file", viper.ConfigFileUsed(),
		"source", cfg.Fixtures.Source)
	return nil
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, common.NewUserError("Invalid configuration", err)
	}
	return cfg, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			slog.Info("catalog version", "version", version)
		},
	}
}
