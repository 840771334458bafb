package web

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/Veraticus/product-catalog/internal/filter"
	"github.com/Veraticus/product-catalog/internal/tui/viewmodel"
)

// queryParam is the form field carrying the search text.
const queryParam = "query"

// knownHooks are the only names the page template may emit as data-cy.
var knownHooks = map[string]bool{
	viewmodel.HookSearchField:       true,
	viewmodel.HookClearButton:       true,
	viewmodel.HookNoMatchingMessage: true,
	viewmodel.HookResetAllButton:    true,
	viewmodel.HookProductTable:      true,
	viewmodel.HookProduct:           true,
	viewmodel.HookProductID:         true,
	viewmodel.HookProductName:       true,
	viewmodel.HookProductCategory:   true,
	viewmodel.HookProductUser:       true,
	viewmodel.HookFilterAllUsers:    true,
	viewmodel.HookFilterUser:        true,
	viewmodel.HookAllCategories:     true,
	viewmodel.HookCategory:          true,
	viewmodel.HookSortIcon:          true,
}

var templateFuncs = template.FuncMap{
	"hook": func(name string) (string, error) {
		if !knownHooks[name] {
			return "", fmt.Errorf("unknown hook %q", name)
		}
		return name, nil
	},
	"resetLabel": func() string { return viewmodel.ResetAllLabel },
	"noMatching": func() string { return viewmodel.NoMatchingMessage },
}

// productResponse is one visible row in the JSON API.
type productResponse struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	User      string `json:"user"`
	UserColor string `json:"userColor,omitempty"`
	ID        int    `json:"id"`
	HasUser   bool   `json:"hasUserCell"`
}

// productsResponse is the body of GET /api/products.
type productsResponse struct {
	Query    string            `json:"query"`
	Products []productResponse `json:"products"`
	Total    int               `json:"total"`
	Visible  int               `json:"visible"`
}

// catalogView filters the shared catalog with a request-local engine.
func (s *Server) catalogView(query string) viewmodel.CatalogView {
	engine := filter.NewEngine(s.catalog.Products())
	engine.SetQuery(query)

	return viewmodel.NewCatalogView(
		engine.Snapshot(),
		s.catalog.Users(),
		s.catalog.Categories(),
		len(s.catalog.Products()),
	)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	view := s.catalogView(r.URL.Query().Get(queryParam))

	// Render into a buffer so a template failure still yields a clean 500.
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, view); err != nil {
		writeError(w, s.logger, fmt.Errorf("failed to render catalog: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Debug("Client went away", "error", err)
	}
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	view := s.catalogView(r.URL.Query().Get(queryParam))

	products := make([]productResponse, len(view.Rows))
	for i, row := range view.Rows {
		products[i] = productResponse{
			ID:        row.ID,
			Name:      row.Name,
			Category:  row.CategoryLabel,
			User:      row.UserName,
			UserColor: string(row.UserColor),
			HasUser:   row.HasUserCell(),
		}
	}

	writeJSON(w, http.StatusOK, productsResponse{
		Query:    view.Query,
		Products: products,
		Total:    view.TotalCount,
		Visible:  view.VisibleCount(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
