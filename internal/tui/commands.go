package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/product-catalog/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
)

// loadTimeout bounds how long fixture loading may take.
const loadTimeout = 30 * time.Second

// loadCatalog loads the fixtures and joins them.
func (m Model) loadCatalog() tea.Cmd {
	src := m.config.Source
	return func() tea.Msg {
		if src == nil {
			return catalogLoadedMsg{err: errors.New("fixture source not configured")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		set, err := src.Load(ctx)
		if err != nil {
			return catalogLoadedMsg{err: fmt.Errorf("failed to load fixtures: %w", err)}
		}

		return catalogLoadedMsg{catalog: catalog.New(set)}
	}
}
