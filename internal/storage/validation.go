// Package storage keeps catalog fixtures in a SQLite database.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/product-catalog/internal/fixtures"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
	ErrEmptySet    = errors.New("fixture set has no rows")
	ErrInvalidID   = errors.New("id must be positive")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateSet checks a fixture set before it is written. Dangling and
// duplicate references are legal and left to the joiner.
func validateSet(set fixtures.Set) error {
	if len(set.Users)+len(set.Categories)+len(set.Products) == 0 {
		return ErrEmptySet
	}

	for i, u := range set.Users {
		if u.ID <= 0 {
			return fmt.Errorf("user at index %d: %w", i, ErrInvalidID)
		}
	}
	for i, c := range set.Categories {
		if c.ID <= 0 {
			return fmt.Errorf("category at index %d: %w", i, ErrInvalidID)
		}
	}
	for i, p := range set.Products {
		if p.ID <= 0 {
			return fmt.Errorf("product at index %d: %w", i, ErrInvalidID)
		}
	}
	return nil
}
