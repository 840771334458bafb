// Package viewmodel derives the display data of the catalog page, free of
// any rendering concerns.
package viewmodel

// AppState represents the overall application state.
type AppState int

const (
	// StateLoading indicates fixtures are still loading.
	StateLoading AppState = iota
	// StateBrowsing indicates the table has focus.
	StateBrowsing
	// StateSearching indicates the search field has focus.
	StateSearching
	// StateHelp indicates the help overlay is shown.
	StateHelp
	// StateError indicates loading failed.
	StateError
)

// KeyBinding represents a keyboard shortcut.
type KeyBinding struct {
	Key         string
	Description string
	IsActive    bool
}

// ActiveKeyBindings returns only the currently active key bindings.
func ActiveKeyBindings(bindings []KeyBinding) []KeyBinding {
	var active []KeyBinding
	for _, kb := range bindings {
		if kb.IsActive {
			active = append(active, kb)
		}
	}
	return active
}
