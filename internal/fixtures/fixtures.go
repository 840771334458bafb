// Package fixtures loads the read-only users, categories and products the
// catalog is built from.
package fixtures

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/product-catalog/internal/common"
	"github.com/Veraticus/product-catalog/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.json
var embedded embed.FS

// Fixture file base names, without extension.
const (
	UsersFile      = "users"
	CategoriesFile = "categories"
	ProductsFile   = "products"
)

// Set is one complete fixture data set.
type Set struct {
	Users      []model.User
	Categories []model.Category
	Products   []model.Product
}

// Source yields a fixture set.
type Source interface {
	Load(ctx context.Context) (Set, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (Set, error)

// Load implements Source.
func (f SourceFunc) Load(ctx context.Context) (Set, error) {
	return f(ctx)
}

// Embedded returns the data set compiled into the binary.
func Embedded() Source {
	return fsSource{fsys: embedded, root: "data", name: "embedded"}
}

// Dir returns a source reading users, categories and products files from
// path. Each file may be .json, .yaml or .yml.
func Dir(path string) Source {
	return fsSource{fsys: os.DirFS(path), root: ".", name: path}
}

type fsSource struct {
	fsys fs.FS
	root string
	name string
}

// Load implements Source.
func (s fsSource) Load(ctx context.Context) (Set, error) {
	if err := ctx.Err(); err != nil {
		return Set{}, err
	}

	var set Set
	if err := s.decode(UsersFile, &set.Users); err != nil {
		return Set{}, err
	}
	if err := s.decode(CategoriesFile, &set.Categories); err != nil {
		return Set{}, err
	}
	if err := s.decode(ProductsFile, &set.Products); err != nil {
		return Set{}, err
	}

	slog.Debug("loaded fixtures",
		"source", s.name,
		"users", len(set.Users),
		"categories", len(set.Categories),
		"products", len(set.Products))

	return set, nil
}

func (s fsSource) decode(base string, v any) error {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		name := filepath.ToSlash(filepath.Join(s.root, base+ext))
		data, err := fs.ReadFile(s.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := Decode(name, data, v); err != nil {
			return err
		}
		return nil
	}
	return fmt.Errorf("%w: %s in %s", common.ErrFixtureMissing, base, s.name)
}

// Decode unmarshals fixture data, choosing the format from the file name.
func Decode(name string, data []byte, v any) error {
	var err error
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(v)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(v)
	default:
		return fmt.Errorf("%w: unsupported extension %q", common.ErrFixtureDecode, filepath.Ext(name))
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", common.ErrFixtureDecode, name, err)
	}
	return nil
}
