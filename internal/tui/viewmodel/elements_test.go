package viewmodel

import (
	"testing"

	"github.com/Veraticus/product-catalog/internal/filter"
	"github.com/Veraticus/product-catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elementsFixture(query string) []Element {
	all := []model.ProductWithCategory{
		{
			Product:  model.Product{ID: 1, Name: "Milk", CategoryID: 1},
			Category: &model.CategoryWithUser{Category: drinks, User: &maxUser},
		},
		{Product: model.Product{ID: 2, Name: "Orphan", CategoryID: 9}},
	}
	snap := filter.Snapshot{Query: query, Visible: filter.VisibleProducts(all, query)}
	view := NewCatalogView(snap, []model.User{maxUser, annaUser}, []model.Category{drinks}, len(all))
	return view.Elements()
}

func TestElements_EmptyQuery(t *testing.T) {
	elems := elementsFixture("")

	assert.Len(t, FindElements(elems, HookFilterAllUsers), 1)
	assert.Len(t, FindElements(elems, HookFilterUser), 2)
	assert.Len(t, FindElements(elems, HookAllCategories), 1)
	assert.Len(t, FindElements(elems, HookCategory), 1)
	assert.Len(t, FindElements(elems, HookSortIcon), 4)
	assert.Len(t, FindElements(elems, HookResetAllButton), 1)
	assert.Len(t, FindElements(elems, HookProductTable), 1)
	assert.Empty(t, FindElements(elems, HookClearButton))
	assert.Empty(t, FindElements(elems, HookNoMatchingMessage))

	search := FindElements(elems, HookSearchField)
	require.Len(t, search, 1)
	assert.Empty(t, search[0].Text)

	assert.Len(t, FindElements(elems, HookProduct), 2)
	ids := FindElements(elems, HookProductID)
	require.Len(t, ids, 2)
	assert.Equal(t, "1", ids[0].Text)
	assert.Equal(t, "2", ids[1].Text)

	categories := FindElements(elems, HookProductCategory)
	require.Len(t, categories, 2)
	assert.Equal(t, "🍺 - Drinks", categories[0].Text)
	assert.Empty(t, categories[1].Text)

	// The orphan row has no user cell.
	users := FindElements(elems, HookProductUser)
	require.Len(t, users, 1)
	assert.Equal(t, 0, users[0].Row)
	assert.Equal(t, "Max", users[0].Text)
	assert.Equal(t, string(ColorLink), users[0].Class)
}

func TestElements_QueryWithoutMatches(t *testing.T) {
	elems := elementsFixture("zzz")

	search := FindElements(elems, HookSearchField)
	require.Len(t, search, 1)
	assert.Equal(t, "zzz", search[0].Text)

	assert.Len(t, FindElements(elems, HookClearButton), 1)
	assert.Empty(t, FindElements(elems, HookProduct))
	assert.Len(t, FindElements(elems, HookProductTable), 1)

	msg := FindElements(elems, HookNoMatchingMessage)
	require.Len(t, msg, 1)
	assert.Equal(t, NoMatchingMessage, msg[0].Text)
}

func TestElements_SortIconClasses(t *testing.T) {
	icons := FindElements(elementsFixture(""), HookSortIcon)
	require.Len(t, icons, 4)

	classes := make([]string, len(icons))
	for i, e := range icons {
		classes[i] = e.Class
	}
	assert.Equal(t, []string{"fa-sort", "fa-sort-down", "fa-sort-up", "fa-sort"}, classes)
}
