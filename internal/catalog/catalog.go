package catalog

import (
	"log/slog"
	"slices"

	"github.com/Veraticus/product-catalog/internal/fixtures"
	"github.com/Veraticus/product-catalog/internal/model"
)

// Catalog holds the fixtures and their joined projections. It is built once
// and never mutated.
type Catalog struct {
	users      []model.User
	categories []model.Category
	joined     []model.CategoryWithUser
	products   []model.ProductWithCategory
}

// New runs both joins over set.
func New(set fixtures.Set) *Catalog {
	users := slices.Clone(set.Users)
	categories := slices.Clone(set.Categories)
	joined := BuildCategoriesWithUsers(categories, users)
	products := BuildProductsWithCategories(set.Products, joined)

	var orphans, ownerless int
	for _, p := range products {
		switch {
		case p.Category == nil:
			orphans++
		case p.Category.User == nil:
			ownerless++
		}
	}
	if orphans > 0 || ownerless > 0 {
		slog.Debug("catalog has unresolved references",
			"products_without_category", orphans,
			"products_without_owner", ownerless)
	}

	return &Catalog{
		users:      users,
		categories: categories,
		joined:     joined,
		products:   products,
	}
}

// Users returns the users in fixture order.
func (c *Catalog) Users() []model.User {
	return slices.Clone(c.users)
}

// Categories returns the raw categories in fixture order.
func (c *Catalog) Categories() []model.Category {
	return slices.Clone(c.categories)
}

// CategoriesWithUsers returns the joined categories in fixture order.
func (c *Catalog) CategoriesWithUsers() []model.CategoryWithUser {
	return slices.Clone(c.joined)
}

// Products returns the denormalized products in fixture order.
func (c *Catalog) Products() []model.ProductWithCategory {
	return slices.Clone(c.products)
}
