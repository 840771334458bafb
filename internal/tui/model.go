package tui

import (
	"log/slog"

	"github.com/Veraticus/product-catalog/internal/catalog"
	"github.com/Veraticus/product-catalog/internal/filter"
	"github.com/Veraticus/product-catalog/internal/tui/components"
	"github.com/Veraticus/product-catalog/internal/tui/themes"
	"github.com/Veraticus/product-catalog/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the main TUI state.
type Model struct {
	theme     themes.Theme
	lastError error
	catalog   *catalog.Catalog
	engine    *filter.Engine
	// latest is written by the engine subscription and shared by every copy
	// of the model.
	latest        *filter.Snapshot
	unsubscribe   func()
	view          viewmodel.CatalogView
	filters       components.FilterPanelModel
	products      components.ProductTableModel
	help          help.Model
	config        Config
	keymap        KeyMap
	height        int
	width         int
	state         viewmodel.AppState
	previousState viewmodel.AppState
	quitting      bool
	ready         bool
}

// NewModel creates a new model with the given options.
func NewModel(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	m := Model{
		state:    viewmodel.StateLoading,
		config:   cfg,
		keymap:   DefaultKeyMap(),
		theme:    cfg.Theme,
		help:     help.New(),
		filters:  components.NewFilterPanel(cfg.Theme),
		products: components.NewProductTable(cfg.Theme),
		width:    cfg.Width,
		height:   cfg.Height,
	}
	m.handleResize()

	if cfg.Catalog != nil {
		m.setCatalog(cfg.Catalog)
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.ready {
		return nil
	}
	return m.loadCatalog()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case catalogLoadedMsg:
		if msg.err != nil {
			return m, func() tea.Msg { return errorMsg{err: msg.err, context: "loading fixtures"} }
		}
		m.setCatalog(msg.catalog)
		return m, nil

	case errorMsg:
		slog.Error("TUI error", "context", msg.context, "error", msg.err)
		m.lastError = msg.err
		m.state = viewmodel.StateError
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case viewmodel.StateLoading:
		return m.renderLoading()
	case viewmodel.StateError:
		return m.renderError()
	case viewmodel.StateHelp:
		return m.renderHelp()
	default:
		return m.renderCatalog()
	}
}

// State returns the current application state.
func (m Model) State() viewmodel.AppState {
	return m.state
}

// Query returns the active filter query.
func (m Model) Query() string {
	if m.engine == nil {
		return ""
	}
	return m.engine.Query()
}

// CatalogView returns the data currently on screen.
func (m Model) CatalogView() viewmodel.CatalogView {
	return m.view
}

// Elements returns the hook-addressed nodes currently on screen.
func (m Model) Elements() []viewmodel.Element {
	if !m.ready {
		return nil
	}
	return m.view.Elements()
}

// Close releases the engine subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// setCatalog builds the filter engine over cat and renders the first view.
func (m *Model) setCatalog(cat *catalog.Catalog) {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}

	m.catalog = cat
	m.engine = filter.NewEngine(cat.Products())

	latest := m.engine.Snapshot()
	m.latest = &latest
	m.unsubscribe = m.engine.Subscribe(func(s filter.Snapshot) {
		latest = s
	})

	m.ready = true
	m.state = viewmodel.StateBrowsing

	if m.config.InitialQuery != "" {
		m.engine.SetQuery(m.config.InitialQuery)
	}
	m.syncView()
}

// syncView projects the latest engine snapshot onto the components.
func (m *Model) syncView() {
	m.view = viewmodel.NewCatalogView(
		*m.latest,
		m.catalog.Users(),
		m.catalog.Categories(),
		len(m.catalog.Products()),
	)
	m.filters.SetView(m.view)
	m.products.SetView(m.view)
}

// setQuery forwards the search field value to the engine.
func (m *Model) setQuery(query string) {
	m.engine.SetQuery(query)
	m.syncView()
	slog.Debug("Query changed", "query", query, "visible", m.view.VisibleCount())
}

// reset clears the query.
func (m *Model) reset() {
	m.engine.Reset()
	m.syncView()
	slog.Debug("Filters reset")
}

// handleKey routes a key press according to the current state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		return m.quit()
	}

	switch m.state {
	case viewmodel.StateLoading, viewmodel.StateError:
		if key.Matches(msg, m.keymap.Quit) {
			return m.quit()
		}
		return m, nil

	case viewmodel.StateHelp:
		if key.Matches(msg, m.keymap.Help, m.keymap.Quit) {
			m.state = m.previousState
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Clear):
		if m.view.ShowClearButton() {
			m.reset()
		}
		return m, nil

	case key.Matches(msg, m.keymap.ResetAll):
		m.reset()
		return m, nil
	}

	if m.state == viewmodel.StateSearching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Search):
		m.state = viewmodel.StateSearching
		cmd := m.filters.Focus()
		return m, cmd

	case key.Matches(msg, m.keymap.Help):
		m.previousState = m.state
		m.state = viewmodel.StateHelp
		return m, nil

	case key.Matches(msg, m.keymap.Quit):
		return m.quit()

	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen
	}

	var cmd tea.Cmd
	m.products, cmd = m.products.Update(msg)
	return m, cmd
}

// handleSearchKey feeds a key press to the search field. Every change of the
// field value is applied to the engine before the next render.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.filters, cmd = m.filters.Update(msg)

	if value := m.filters.Value(); value != m.engine.Query() {
		m.setQuery(value)
	}
	if !m.filters.Focused() {
		m.state = viewmodel.StateBrowsing
	}

	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	// Borders take 2 columns.
	usableWidth := max(20, m.width-2)
	m.filters.Resize(usableWidth)

	// Title 2, filter panel 7, status bar 1, borders 2.
	m.products.Resize(usableWidth, max(4, m.height-12))
	m.help.Width = usableWidth
}
