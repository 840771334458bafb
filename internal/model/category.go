// Package model holds the catalog entities shared across packages.
package model

// Category groups products and belongs to a single user.
type Category struct {
	Title   string `json:"title" yaml:"title"`
	Icon    string `json:"icon" yaml:"icon"`
	ID      int    `json:"id" yaml:"id"`
	OwnerID int    `json:"ownerId" yaml:"ownerId"`
}
