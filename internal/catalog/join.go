// Package catalog joins the raw fixtures into the denormalized product list.
package catalog

import "github.com/Veraticus/product-catalog/internal/model"

// ResolveOwner returns the first user whose id equals ownerID, or nil.
// The result points into users.
func ResolveOwner(ownerID int, users []model.User) *model.User {
	for i := range users {
		if users[i].ID == ownerID {
			return &users[i]
		}
	}
	return nil
}

// ResolveCategory returns the first joined category whose id equals
// categoryID, or nil. The result points into categories.
func ResolveCategory(categoryID int, categories []model.CategoryWithUser) *model.CategoryWithUser {
	for i := range categories {
		if categories[i].ID == categoryID {
			return &categories[i]
		}
	}
	return nil
}

// BuildCategoriesWithUsers attaches the owning user to every category.
// Order and length are preserved.
func BuildCategoriesWithUsers(categories []model.Category, users []model.User) []model.CategoryWithUser {
	out := make([]model.CategoryWithUser, len(categories))
	for i, c := range categories {
		out[i] = model.CategoryWithUser{
			Category: c,
			User:     ResolveOwner(c.OwnerID, users),
		}
	}
	return out
}

// BuildProductsWithCategories attaches the joined category to every product.
// Order and length are preserved.
func BuildProductsWithCategories(products []model.Product, categories []model.CategoryWithUser) []model.ProductWithCategory {
	out := make([]model.ProductWithCategory, len(products))
	for i, p := range products {
		out[i] = model.ProductWithCategory{
			Product:  p,
			Category: ResolveCategory(p.CategoryID, categories),
		}
	}
	return out
}
