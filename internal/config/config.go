// Package config loads and validates the catalog configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/product-catalog/internal/common"
	"github.com/Veraticus/product-catalog/internal/tui/themes"
	"github.com/spf13/viper"
)

// SourceKind names where fixtures are read from.
type SourceKind string

// Supported fixture sources.
const (
	SourceEmbedded SourceKind = "embedded"
	SourceDir      SourceKind = "dir"
	SourceSQLite   SourceKind = "sqlite"
)

// Config is the typed view of the application configuration.
type Config struct {
	Logging  LoggingConfig
	Fixtures FixturesConfig
	TUI      TUIConfig
	Web      WebConfig
}

// LoggingConfig controls the global slog logger.
type LoggingConfig struct {
	Level  string
	Format string
}

// FixturesConfig selects the fixture source.
type FixturesConfig struct {
	Source SourceKind
	Path   string
}

// TUIConfig controls the terminal viewer.
type TUIConfig struct {
	Theme   string
	LogFile string
	Width   int
	Height  int
}

// WebConfig controls the HTTP viewer.
type WebConfig struct {
	Addr string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("fixtures.source", string(SourceEmbedded))
	v.SetDefault("fixtures.path", "")
	v.SetDefault("tui.theme", "default")
	v.SetDefault("tui.log_file", "")
	v.SetDefault("tui.width", 0)
	v.SetDefault("tui.height", 0)
	v.SetDefault("web.addr", ":8080")
}

// Load reads v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		Fixtures: FixturesConfig{
			Source: SourceKind(v.GetString("fixtures.source")),
			Path:   ExpandPath(v.GetString("fixtures.path")),
		},
		TUI: TUIConfig{
			Theme:   v.GetString("tui.theme"),
			LogFile: ExpandPath(v.GetString("tui.log_file")),
			Width:   v.GetInt("tui.width"),
			Height:  v.GetInt("tui.height"),
		},
		Web: WebConfig{
			Addr: v.GetString("web.addr"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for unusable values.
func (c Config) Validate() error {
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.Logging.Format)
	}

	switch c.Fixtures.Source {
	case SourceEmbedded:
	case SourceDir, SourceSQLite:
		if c.Fixtures.Path == "" {
			return fmt.Errorf("%w: fixtures.path is required for source %q", common.ErrMissingConfig, c.Fixtures.Source)
		}
	default:
		return fmt.Errorf("%w: %w %q", common.ErrInvalidConfig, common.ErrUnknownFixtureSource, c.Fixtures.Source)
	}

	if !themes.IsKnown(c.TUI.Theme) {
		return fmt.Errorf("%w: unknown theme %q", common.ErrInvalidConfig, c.TUI.Theme)
	}

	if c.TUI.Width < 0 || c.TUI.Height < 0 {
		return fmt.Errorf("%w: tui size %dx%d", common.ErrInvalidConfig, c.TUI.Width, c.TUI.Height)
	}

	if c.Web.Addr == "" {
		return fmt.Errorf("%w: web.addr is empty", common.ErrInvalidConfig)
	}

	return nil
}

// ExpandPath resolves a leading ~ to the home directory and then expands
// $VAR references. A ~ inside the path is left alone.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + path[1:]
		}
	}
	return os.ExpandEnv(path)
}
