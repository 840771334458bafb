package viewmodel

import (
	"github.com/Veraticus/product-catalog/internal/filter"
	"github.com/Veraticus/product-catalog/internal/model"
)

// UserColor classifies the user cell for coloring.
type UserColor string

const (
	// ColorNone applies no color.
	ColorNone UserColor = ""
	// ColorLink is used for male users.
	ColorLink UserColor = "link-color"
	// ColorDanger is used for female users.
	ColorDanger UserColor = "danger-color"
)

// SortIcon is the static icon shown next to a column title.
type SortIcon string

const (
	SortIconNone SortIcon = "fa-sort"
	SortIconDown SortIcon = "fa-sort-down"
	SortIconUp   SortIcon = "fa-sort-up"
)

// CatalogView is everything a renderer needs to draw the catalog page.
type CatalogView struct {
	Query         string
	Rows          []ProductRowView
	Columns       []ColumnView
	UserLinks     []LinkView
	CategoryLinks []LinkView
	TotalCount    int
}

// ProductRowView holds the display values of one visible product.
type ProductRowView struct {
	Name          string
	CategoryLabel string
	UserName      string
	UserColor     UserColor
	ID            int
	HasCategory   bool
}

// ColumnView is a table header cell.
type ColumnView struct {
	Title    string
	SortIcon SortIcon
}

// LinkView is a static filter link or button.
type LinkView struct {
	Label string
	Hook  string
	ID    int
	All   bool
}

// DefaultColumns are the product table headers. Their sort icons are static.
func DefaultColumns() []ColumnView {
	return []ColumnView{
		{Title: "ID", SortIcon: SortIconNone},
		{Title: "Product", SortIcon: SortIconDown},
		{Title: "Category", SortIcon: SortIconUp},
		{Title: "User", SortIcon: SortIconNone},
	}
}

// NewCatalogView projects an engine snapshot and the static fixtures into a
// CatalogView.
func NewCatalogView(snap filter.Snapshot, users []model.User, categories []model.Category, total int) CatalogView {
	rows := make([]ProductRowView, len(snap.Visible))
	for i, p := range snap.Visible {
		rows[i] = NewProductRow(p)
	}

	return CatalogView{
		Query:         snap.Query,
		Rows:          rows,
		Columns:       DefaultColumns(),
		UserLinks:     userLinks(users),
		CategoryLinks: categoryLinks(categories),
		TotalCount:    total,
	}
}

// NewProductRow derives the display values of p.
func NewProductRow(p model.ProductWithCategory) ProductRowView {
	row := ProductRowView{
		ID:            p.ID,
		Name:          p.Name,
		CategoryLabel: CategoryLabel(p.Category),
		HasCategory:   p.Category != nil,
	}
	if owner := p.Owner(); owner != nil {
		row.UserName = owner.Name
		row.UserColor = UserColorFor(owner)
	}
	return row
}

// CategoryLabel renders "icon - title", or "" when c is nil.
func CategoryLabel(c *model.CategoryWithUser) string {
	if c == nil {
		return ""
	}
	return c.Icon + " - " + c.Title
}

// UserColorFor maps a user's sex onto a color class. Unknown values and nil
// users get ColorNone.
func UserColorFor(u *model.User) UserColor {
	if u == nil {
		return ColorNone
	}
	switch u.Sex {
	case model.SexMale:
		return ColorLink
	case model.SexFemale:
		return ColorDanger
	default:
		return ColorNone
	}
}

// ShowClearButton reports whether the clear control is visible.
func (v CatalogView) ShowClearButton() bool {
	return v.Query != ""
}

// ShowNoMatching reports whether the no-results message is visible.
func (v CatalogView) ShowNoMatching() bool {
	return len(v.Rows) == 0
}

// VisibleCount returns the number of visible rows.
func (v CatalogView) VisibleCount() int {
	return len(v.Rows)
}

// HasUserCell reports whether the user cell is rendered with content.
// Rows without a category render an empty cell.
func (r ProductRowView) HasUserCell() bool {
	return r.HasCategory
}

func userLinks(users []model.User) []LinkView {
	links := make([]LinkView, 0, len(users)+1)
	links = append(links, LinkView{Label: "All", Hook: HookFilterAllUsers, All: true})
	for _, u := range users {
		links = append(links, LinkView{Label: u.Name, Hook: HookFilterUser, ID: u.ID})
	}
	return links
}

func categoryLinks(categories []model.Category) []LinkView {
	links := make([]LinkView, 0, len(categories)+1)
	links = append(links, LinkView{Label: "All", Hook: HookAllCategories, All: true})
	for _, c := range categories {
		links = append(links, LinkView{Label: c.Title, Hook: HookCategory, ID: c.ID})
	}
	return links
}
