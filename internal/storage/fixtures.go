package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Veraticus/product-catalog/internal/fixtures"
	"github.com/Veraticus/product-catalog/internal/model"
)

// Counts reports how many rows each fixture table holds.
type Counts struct {
	Users      int
	Categories int
	Products   int
}

// Total returns the number of rows across all tables.
func (c Counts) Total() int {
	return c.Users + c.Categories + c.Products
}

// SaveFixtures replaces the stored fixtures with set in a single
// transaction. onRow, if not nil, is called after every inserted row.
func (s *SQLiteStorage) SaveFixtures(ctx context.Context, set fixtures.Set, onRow func()) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSet(set); err != nil {
		return err
	}
	if onRow == nil {
		onRow = func() {}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", mapError(err))
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			slog.Error("Failed to rollback transaction", "error", rollbackErr)
		}
	}()

	for _, table := range []string{"products", "categories", "users"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, mapError(err))
		}
	}

	if err := insertUsers(ctx, tx, set.Users, onRow); err != nil {
		return err
	}
	if err := insertCategories(ctx, tx, set.Categories, onRow); err != nil {
		return err
	}
	if err := insertProducts(ctx, tx, set.Products, onRow); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit fixtures: %w", mapError(err))
	}
	committed = true

	slog.Info("Saved fixtures",
		"users", len(set.Users),
		"categories", len(set.Categories),
		"products", len(set.Products))
	return nil
}

func insertUsers(ctx context.Context, tx *sql.Tx, users []model.User, onRow func()) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO users (position, id, name, username, sex) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare user insert: %w", mapError(err))
	}
	defer func() { _ = stmt.Close() }()

	for i, u := range users {
		if _, err := stmt.ExecContext(ctx, i, u.ID, u.Name, u.Username, string(u.Sex)); err != nil {
			return fmt.Errorf("failed to insert user %d: %w", u.ID, mapError(err))
		}
		onRow()
	}
	return nil
}

func insertCategories(ctx context.Context, tx *sql.Tx, categories []model.Category, onRow func()) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO categories (position, id, title, icon, owner_id) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare category insert: %w", mapError(err))
	}
	defer func() { _ = stmt.Close() }()

	for i, c := range categories {
		if _, err := stmt.ExecContext(ctx, i, c.ID, c.Title, c.Icon, c.OwnerID); err != nil {
			return fmt.Errorf("failed to insert category %d: %w", c.ID, mapError(err))
		}
		onRow()
	}
	return nil
}

func insertProducts(ctx context.Context, tx *sql.Tx, products []model.Product, onRow func()) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO products (position, id, name, category_id) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare product insert: %w", mapError(err))
	}
	defer func() { _ = stmt.Close() }()

	for i, p := range products {
		if _, err := stmt.ExecContext(ctx, i, p.ID, p.Name, p.CategoryID); err != nil {
			return fmt.Errorf("failed to insert product %d: %w", p.ID, mapError(err))
		}
		onRow()
	}
	return nil
}

// Load implements fixtures.Source. Rows come back in the order they were
// saved.
func (s *SQLiteStorage) Load(ctx context.Context) (fixtures.Set, error) {
	if err := validateContext(ctx); err != nil {
		return fixtures.Set{}, err
	}

	var set fixtures.Set

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, username, sex FROM users ORDER BY position`)
	if err != nil {
		return fixtures.Set{}, fmt.Errorf("failed to query users: %w", mapError(err))
	}
	set.Users, err = scanAll(rows, func(r *sql.Rows) (model.User, error) {
		var u model.User
		var sex string
		err := r.Scan(&u.ID, &u.Name, &u.Username, &sex)
		u.Sex = model.Sex(sex)
		return u, err
	})
	if err != nil {
		return fixtures.Set{}, fmt.Errorf("failed to read users: %w", err)
	}

	rows, err = s.db.QueryContext(ctx, `SELECT id, title, icon, owner_id FROM categories ORDER BY position`)
	if err != nil {
		return fixtures.Set{}, fmt.Errorf("failed to query categories: %w", mapError(err))
	}
	set.Categories, err = scanAll(rows, func(r *sql.Rows) (model.Category, error) {
		var c model.Category
		err := r.Scan(&c.ID, &c.Title, &c.Icon, &c.OwnerID)
		return c, err
	})
	if err != nil {
		return fixtures.Set{}, fmt.Errorf("failed to read categories: %w", err)
	}

	rows, err = s.db.QueryContext(ctx, `SELECT id, name, category_id FROM products ORDER BY position`)
	if err != nil {
		return fixtures.Set{}, fmt.Errorf("failed to query products: %w", mapError(err))
	}
	set.Products, err = scanAll(rows, func(r *sql.Rows) (model.Product, error) {
		var p model.Product
		err := r.Scan(&p.ID, &p.Name, &p.CategoryID)
		return p, err
	})
	if err != nil {
		return fixtures.Set{}, fmt.Errorf("failed to read products: %w", err)
	}

	slog.Debug("Loaded fixtures from database",
		"path", s.dbPath,
		"users", len(set.Users),
		"categories", len(set.Categories),
		"products", len(set.Products))
	return set, nil
}

// Counts returns the number of stored rows per table.
func (s *SQLiteStorage) Counts(ctx context.Context) (Counts, error) {
	if err := validateContext(ctx); err != nil {
		return Counts{}, err
	}

	var c Counts
	err := s.db.QueryRowContext(ctx, `SELECT
		(SELECT COUNT(*) FROM users),
		(SELECT COUNT(*) FROM categories),
		(SELECT COUNT(*) FROM products)`).Scan(&c.Users, &c.Categories, &c.Products)
	if err != nil {
		return Counts{}, fmt.Errorf("failed to count fixtures: %w", mapError(err))
	}
	return c, nil
}

// scanAll drains rows through scan and closes them.
func scanAll[T any](rows *sql.Rows, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer func() { _ = rows.Close() }()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, mapError(err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return out, nil
}
