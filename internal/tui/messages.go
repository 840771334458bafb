package tui

import "github.com/Veraticus/product-catalog/internal/catalog"

// Data loading messages.
type catalogLoadedMsg struct {
	catalog *catalog.Catalog
	err     error
}

// Error handling.
type errorMsg struct {
	err     error
	context string
}
