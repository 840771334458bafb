package viewmodel

import (
	"testing"

	"github.com/Veraticus/product-catalog/internal/filter"
	"github.com/Veraticus/product-catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	maxUser  = model.User{ID: 1, Name: "Max", Sex: model.SexMale}
	annaUser = model.User{ID: 2, Name: "Anna", Sex: model.SexFemale}
	drinks   = model.Category{ID: 1, Title: "Drinks", Icon: "🍺", OwnerID: 1}
)

func TestNewProductRow(t *testing.T) {
	tests := []struct {
		name    string
		product model.ProductWithCategory
		want    ProductRowView
	}{
		{
			name: "male owner",
			product: model.ProductWithCategory{
				Product:  model.Product{ID: 1, Name: "Milk", CategoryID: 1},
				Category: &model.CategoryWithUser{Category: drinks, User: &maxUser},
			},
			want: ProductRowView{
				ID:            1,
				Name:          "Milk",
				CategoryLabel: "🍺 - Drinks",
				UserName:      "Max",
				UserColor:     ColorLink,
				HasCategory:   true,
			},
		},
		{
			name: "female owner",
			product: model.ProductWithCategory{
				Product:  model.Product{ID: 2, Name: "Apple", CategoryID: 3},
				Category: &model.CategoryWithUser{Category: model.Category{ID: 3, Title: "Fruits", Icon: "🍏", OwnerID: 2}, User: &annaUser},
			},
			want: ProductRowView{
				ID:            2,
				Name:          "Apple",
				CategoryLabel: "🍏 - Fruits",
				UserName:      "Anna",
				UserColor:     ColorDanger,
				HasCategory:   true,
			},
		},
		{
			name: "owner missing",
			product: model.ProductWithCategory{
				Product:  model.Product{ID: 3, Name: "Water", CategoryID: 1},
				Category: &model.CategoryWithUser{Category: drinks},
			},
			want: ProductRowView{
				ID:            3,
				Name:          "Water",
				CategoryLabel: "🍺 - Drinks",
				UserColor:     ColorNone,
				HasCategory:   true,
			},
		},
		{
			name: "category missing",
			product: model.ProductWithCategory{
				Product: model.Product{ID: 4, Name: "Ghost", CategoryID: 999},
			},
			want: ProductRowView{
				ID:        4,
				Name:      "Ghost",
				UserColor: ColorNone,
			},
		},
		{
			name: "unexpected sex value",
			product: model.ProductWithCategory{
				Product: model.Product{ID: 5, Name: "Cola", CategoryID: 1},
				Category: &model.CategoryWithUser{
					Category: drinks,
					User:     &model.User{ID: 9, Name: "Sam", Sex: model.Sex("x")},
				},
			},
			want: ProductRowView{
				ID:            5,
				Name:          "Cola",
				CategoryLabel: "🍺 - Drinks",
				UserName:      "Sam",
				UserColor:     ColorNone,
				HasCategory:   true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewProductRow(tt.product)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.HasCategory, got.HasUserCell())
		})
	}
}

func TestUserColorFor(t *testing.T) {
	assert.Equal(t, ColorLink, UserColorFor(&maxUser))
	assert.Equal(t, ColorDanger, UserColorFor(&annaUser))
	assert.Equal(t, ColorNone, UserColorFor(nil))
	assert.Equal(t, ColorNone, UserColorFor(&model.User{Sex: ""}))
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "", CategoryLabel(nil))
	assert.Equal(t, "🍺 - Drinks", CategoryLabel(&model.CategoryWithUser{Category: drinks}))
}

func scenario() []model.ProductWithCategory {
	joined := &model.CategoryWithUser{Category: drinks, User: &maxUser}
	return []model.ProductWithCategory{
		{Product: model.Product{ID: 1, Name: "Milk", CategoryID: 1}, Category: joined},
		{Product: model.Product{ID: 2, Name: "Water", CategoryID: 1}, Category: joined},
	}
}

func TestNewCatalogView_Scenario(t *testing.T) {
	users := []model.User{maxUser}
	categories := []model.Category{drinks}
	e := filter.NewEngine(scenario())

	view := NewCatalogView(e.Snapshot(), users, categories, 2)
	require.Len(t, view.Rows, 2)
	assert.False(t, view.ShowNoMatching())
	assert.False(t, view.ShowClearButton())
	for _, row := range view.Rows {
		assert.Equal(t, "🍺 - Drinks", row.CategoryLabel)
		assert.Equal(t, "Max", row.UserName)
		assert.Equal(t, ColorLink, row.UserColor)
	}

	e.SetQuery("milk")
	view = NewCatalogView(e.Snapshot(), users, categories, 2)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "Milk", view.Rows[0].Name)
	assert.True(t, view.ShowClearButton())
	assert.Equal(t, 1, view.VisibleCount())

	e.SetQuery("juice")
	view = NewCatalogView(e.Snapshot(), users, categories, 2)
	assert.Empty(t, view.Rows)
	assert.True(t, view.ShowNoMatching())
	assert.Equal(t, 2, view.TotalCount)
}

func TestNewCatalogView_StaticLinks(t *testing.T) {
	view := NewCatalogView(filter.Snapshot{}, []model.User{maxUser, annaUser}, []model.Category{drinks}, 0)

	assert.Equal(t, []LinkView{
		{Label: "All", Hook: HookFilterAllUsers, All: true},
		{Label: "Max", Hook: HookFilterUser, ID: 1},
		{Label: "Anna", Hook: HookFilterUser, ID: 2},
	}, view.UserLinks)
	assert.Equal(t, []LinkView{
		{Label: "All", Hook: HookAllCategories, All: true},
		{Label: "Drinks", Hook: HookCategory, ID: 1},
	}, view.CategoryLinks)
	assert.Equal(t, DefaultColumns(), view.Columns)
}
