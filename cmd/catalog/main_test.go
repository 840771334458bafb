package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/product-catalog/internal/catalog"
	"github.com/Veraticus/product-catalog/internal/cli"
	"github.com/Veraticus/product-catalog/internal/common"
	"github.com/Veraticus/product-catalog/internal/config"
	"github.com/Veraticus/product-catalog/internal/fixtures"
	"github.com/Veraticus/product-catalog/internal/tui/viewmodel"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embeddedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	set, err := fixtures.Embedded().Load(context.Background())
	require.NoError(t, err)
	return catalog.New(set)
}

func TestRenderList_AllProducts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderList(&buf, embeddedCatalog(t), ""))

	out := buf.String()
	assert.Contains(t, out, "Product Categories")
	assert.Contains(t, out, "Laptop")
	assert.Contains(t, out, "💻 - Electronics")
	assert.Contains(t, out, "10 of 10 products")
	assert.NotContains(t, out, "matching")
}

func TestRenderList_Query(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderList(&buf, embeddedCatalog(t), "BE"))

	out := buf.String()
	assert.Contains(t, out, "Beer")
	assert.Contains(t, out, "Roma")
	assert.NotContains(t, out, "Milk")
	assert.Contains(t, out, `1 of 10 products matching "BE"`)
}

func TestRenderList_NoMatches(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderList(&buf, embeddedCatalog(t), "zzz"))

	out := buf.String()
	assert.Contains(t, out, viewmodel.NoMatchingMessage)
	assert.NotContains(t, out, "of 10 products")
}

func TestOpenFixtureSource(t *testing.T) {
	ctx := context.Background()

	src, closeSource, err := openFixtureSource(ctx, config.FixturesConfig{Source: config.SourceEmbedded})
	require.NoError(t, err)
	closeSource()
	set, err := src.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, set.Products, 10)

	_, closeSource, err = openFixtureSource(ctx, config.FixturesConfig{Source: "ftp"})
	assert.ErrorIs(t, err, common.ErrUnknownFixtureSource)
	closeSource()
}

func TestOpenFixtureSource_MissingDir(t *testing.T) {
	ctx := context.Background()

	_, err := loadCatalog(ctx, config.FixturesConfig{
		Source: config.SourceDir,
		Path:   filepath.Join(t.TempDir(), "nope"),
	})
	assert.ErrorIs(t, err, common.ErrFixtureMissing)

	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)
}

func TestSeedDatabase_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "catalog.db")

	counts, err := seedDatabase(ctx, dbPath, fixtures.Embedded(), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 4, counts.Users)
	assert.Equal(t, 5, counts.Categories)
	assert.Equal(t, 10, counts.Products)

	fromDB, err := loadCatalog(ctx, config.FixturesConfig{Source: config.SourceSQLite, Path: dbPath})
	require.NoError(t, err)

	want := embeddedCatalog(t)
	if diff := cmp.Diff(want.Products(), fromDB.Products()); diff != "" {
		t.Errorf("products differ after seeding (-want +got):\n%s", diff)
	}
}

func TestPrintStatus(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	var empty bytes.Buffer
	require.NoError(t, printStatus(ctx, &empty, dbPath))
	assert.Contains(t, empty.String(), "Database is empty")

	_, err := seedDatabase(ctx, dbPath, fixtures.Embedded(), io.Discard)
	require.NoError(t, err)

	var seeded bytes.Buffer
	require.NoError(t, printStatus(ctx, &seeded, dbPath))
	out := seeded.String()
	assert.Contains(t, out, "Schema:     v2 (expected v2)")
	assert.Contains(t, out, "Products:   10")
	assert.False(t, strings.Contains(out, "Database is empty"))
}

func TestListCmd_Execute(t *testing.T) {
	var buf bytes.Buffer
	cmd := listCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--query", "an"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, buf.String(), "Banana")
	assert.Contains(t, buf.String(), "Jeans")
	assert.Contains(t, buf.String(), "2 of 10 products")
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "user error shows friendly message",
			err:  common.NewUserError("Could not load fixtures", errors.New("open users.json: no such file")),
			want: "Could not load fixtures",
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printError(&buf, tt.err)
			assert.Equal(t, cli.FormatError(tt.want)+"\n", buf.String())
			assert.Contains(t, buf.String(), cli.ErrorIcon)
		})
	}
}
