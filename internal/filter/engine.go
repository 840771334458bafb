// Package filter derives the visible product list from a free-text query.
package filter

import (
	"strings"

	"github.com/Veraticus/product-catalog/internal/model"
)

// Snapshot is a consistent view of the engine state.
type Snapshot struct {
	Query   string
	Visible []model.ProductWithCategory
}

// Listener is called synchronously after every state change.
type Listener func(Snapshot)

// Engine holds the query and the visible products derived from it.
// It is not safe for concurrent use; each UI surface owns its own engine.
type Engine struct {
	// listeners are notified in subscription order. Removed slots are nil.
	listeners []Listener
	query     string
	all       []model.ProductWithCategory
	visible   []model.ProductWithCategory
}

// NewEngine creates an engine over all with an empty query.
func NewEngine(all []model.ProductWithCategory) *Engine {
	e := &Engine{all: all}
	e.visible = VisibleProducts(e.all, e.query)
	return e
}

// SetQuery replaces the query as-is and recomputes the visible list.
func (e *Engine) SetQuery(query string) {
	e.query = query
	e.visible = VisibleProducts(e.all, e.query)
	e.notify()
}

// Reset clears the query.
func (e *Engine) Reset() {
	e.SetQuery("")
}

// Query returns the current query.
func (e *Engine) Query() string {
	return e.query
}

// Visible returns the products matching the current query, in catalog order.
func (e *Engine) Visible() []model.ProductWithCategory {
	out := make([]model.ProductWithCategory, len(e.visible))
	copy(out, e.visible)
	return out
}

// Snapshot returns the current query together with its visible list.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{Query: e.query, Visible: e.Visible()}
}

// Subscribe registers fn for state changes. The returned func removes it.
func (e *Engine) Subscribe(fn Listener) (unsubscribe func()) {
	id := len(e.listeners)
	e.listeners = append(e.listeners, fn)
	return func() {
		e.listeners[id] = nil
	}
}

func (e *Engine) notify() {
	if len(e.listeners) == 0 {
		return
	}
	snap := e.Snapshot()
	for _, fn := range e.listeners {
		if fn != nil {
			fn(snap)
		}
	}
}

// VisibleProducts returns the products whose lower-cased name contains the
// lower-cased query. An empty query matches everything. Order is preserved.
func VisibleProducts(all []model.ProductWithCategory, query string) []model.ProductWithCategory {
	needle := strings.ToLower(query)
	visible := make([]model.ProductWithCategory, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			visible = append(visible, p)
		}
	}
	return visible
}
