package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/product-catalog/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, overrides map[string]any) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(t, nil))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, SourceEmbedded, cfg.Fixtures.Source)
	assert.Equal(t, "default", cfg.TUI.Theme)
	assert.Equal(t, ":8080", cfg.Web.Addr)
}

func TestLoad_FromYAML(t *testing.T) {
	v := newViper(t, nil)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
logging:
  level: debug
  format: json
fixtures:
  source: dir
  path: /srv/fixtures
tui:
  theme: catppuccin-mocha
  width: 120
web:
  addr: 127.0.0.1:9000
`)))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, SourceDir, cfg.Fixtures.Source)
	assert.Equal(t, "/srv/fixtures", cfg.Fixtures.Path)
	assert.Equal(t, "catppuccin-mocha", cfg.TUI.Theme)
	assert.Equal(t, 120, cfg.TUI.Width)
	assert.Equal(t, 0, cfg.TUI.Height)
	assert.Equal(t, "127.0.0.1:9000", cfg.Web.Addr)
}

func TestLoad_ExpandsPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := Load(newViper(t, map[string]any{
		"fixtures.source": "sqlite",
		"fixtures.path":   "~/catalog.db",
		"tui.log_file":    "~/catalog.log",
	}))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "catalog.db"), cfg.Fixtures.Path)
	assert.Equal(t, filepath.Join(home, "catalog.log"), cfg.TUI.LogFile)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		overrides map[string]any
		wantErr   error
		name      string
	}{
		{name: "bad level", overrides: map[string]any{"logging.level": "loud"}, wantErr: common.ErrInvalidConfig},
		{name: "bad format", overrides: map[string]any{"logging.format": "xml"}, wantErr: common.ErrInvalidConfig},
		{name: "unknown source", overrides: map[string]any{"fixtures.source": "s3"}, wantErr: common.ErrUnknownFixtureSource},
		{name: "dir without path", overrides: map[string]any{"fixtures.source": "dir"}, wantErr: common.ErrMissingConfig},
		{name: "sqlite without path", overrides: map[string]any{"fixtures.source": "sqlite"}, wantErr: common.ErrMissingConfig},
		{name: "unknown theme", overrides: map[string]any{"tui.theme": "solarized"}, wantErr: common.ErrInvalidConfig},
		{name: "negative width", overrides: map[string]any{"tui.width": -1}, wantErr: common.ErrInvalidConfig},
		{name: "empty addr", overrides: map[string]any{"web.addr": ""}, wantErr: common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newViper(t, tt.overrides))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("CATALOG_TEST_DIR", "/data")

	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "~", want: home},
		{input: "~/fixtures", want: filepath.Join(home, "fixtures")},
		{input: "$CATALOG_TEST_DIR/catalog.db", want: "/data/catalog.db"},
		{input: "/abs/path", want: "/abs/path"},
		{input: "relative/~", want: "relative/~"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
