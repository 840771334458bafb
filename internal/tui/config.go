package tui

import (
	"github.com/Veraticus/product-catalog/internal/catalog"
	"github.com/Veraticus/product-catalog/internal/fixtures"
	"github.com/Veraticus/product-catalog/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme        themes.Theme
	Source       fixtures.Source
	Catalog      *catalog.Catalog
	InitialQuery string
	Width        int
	Height       int
	MouseSupport bool
	AltScreen    bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Source:    fixtures.Embedded(),
		Width:     80,
		Height:    24,
		AltScreen: true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithSource sets where fixtures are loaded from on startup.
func WithSource(src fixtures.Source) Option {
	return func(c *Config) {
		c.Source = src
	}
}

// WithCatalog uses an already joined catalog and skips loading.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *Config) {
		c.Catalog = cat
	}
}

// WithQuery sets the query applied once the catalog is ready.
func WithQuery(query string) Option {
	return func(c *Config) {
		c.InitialQuery = query
	}
}

// WithMouse enables mouse support.
func WithMouse(enabled bool) Option {
	return func(c *Config) {
		c.MouseSupport = enabled
	}
}

// WithAltScreen controls whether the program takes over the whole terminal.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
