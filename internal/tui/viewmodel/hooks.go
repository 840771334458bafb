package viewmodel

// Hook names identify rendered elements for external test harnesses.
// Renderers must emit them verbatim.
const (
	HookSearchField       = "SearchField"
	HookClearButton       = "ClearButton"
	HookNoMatchingMessage = "NoMatchingMessage"
	HookResetAllButton    = "ResetAllButton"
	HookProductTable      = "ProductTable"
	HookProduct           = "Product"
	HookProductID         = "ProductId"
	HookProductName       = "ProductName"
	HookProductCategory   = "ProductCategory"
	HookProductUser       = "ProductUser"

	// Presentational only, not wired to any state.
	HookFilterAllUsers = "FilterAllUsers"
	HookFilterUser     = "FilterUser"
	HookAllCategories  = "AllCategories"
	HookCategory       = "Category"
	HookSortIcon       = "SortIcon"
)

// NoMatchingMessage is shown exactly when no product matches the query.
const NoMatchingMessage = "No products matching selected criteria"

// ResetAllLabel is the caption of the reset-all control.
const ResetAllLabel = "Reset all filters"
