package model

// Product is a single catalog entry.
type Product struct {
	Name       string `json:"name" yaml:"name"`
	ID         int    `json:"id" yaml:"id"`
	CategoryID int    `json:"categoryId" yaml:"categoryId"`
}

// CategoryWithUser is a category joined with its owner.
// User is nil when OwnerID matches no user.
type CategoryWithUser struct {
	User *User
	Category
}

// ProductWithCategory is a product joined with its category.
// Category is nil when CategoryID matches no category.
type ProductWithCategory struct {
	Category *CategoryWithUser
	Product
}

// Owner returns the owning user of the product's category, or nil when
// either link is missing.
func (p ProductWithCategory) Owner() *User {
	if p.Category == nil {
		return nil
	}
	return p.Category.User
}
