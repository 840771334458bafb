package filter

import (
	"testing"

	"github.com/Veraticus/product-catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []model.ProductWithCategory {
	drinks := &model.CategoryWithUser{
		Category: model.Category{ID: 1, Title: "Drinks", Icon: "🍺", OwnerID: 1},
		User:     &model.User{ID: 1, Name: "Max", Sex: model.SexMale},
	}
	return []model.ProductWithCategory{
		{Product: model.Product{ID: 1, Name: "Milk", CategoryID: 1}, Category: drinks},
		{Product: model.Product{ID: 2, Name: "Water", CategoryID: 1}, Category: drinks},
		{Product: model.Product{ID: 3, Name: "Buttermilk", CategoryID: 999}},
	}
}

func names(products []model.ProductWithCategory) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestVisibleProducts(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query matches all in order", query: "", want: []string{"Milk", "Water", "Buttermilk"}},
		{name: "lower case", query: "milk", want: []string{"Milk", "Buttermilk"}},
		{name: "upper case", query: "MILK", want: []string{"Milk", "Buttermilk"}},
		{name: "mixed case", query: "wAtEr", want: []string{"Water"}},
		{name: "inner substring", query: "ate", want: []string{"Water"}},
		{name: "no match", query: "juice", want: []string{}},
		{name: "leading space is not trimmed", query: " milk", want: []string{}},
		{name: "trailing space is not trimmed", query: "milk ", want: []string{}},
		{name: "product without category still matches", query: "butter", want: []string{"Buttermilk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleProducts(testProducts(), tt.query)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestVisibleProducts_NonASCII(t *testing.T) {
	products := []model.ProductWithCategory{
		{Product: model.Product{ID: 1, Name: "Äpfel"}},
		{Product: model.Product{ID: 2, Name: "Birnen"}},
	}

	assert.Equal(t, []string{"Äpfel"}, names(VisibleProducts(products, "äPF")))
}

func TestVisibleProducts_EmptyInput(t *testing.T) {
	assert.Empty(t, VisibleProducts(nil, "milk"))
	assert.Empty(t, VisibleProducts(nil, ""))
}

func TestEngine_InitialState(t *testing.T) {
	e := NewEngine(testProducts())

	assert.Equal(t, "", e.Query())
	assert.Equal(t, []string{"Milk", "Water", "Buttermilk"}, names(e.Visible()))
}

func TestEngine_SetQuery(t *testing.T) {
	e := NewEngine(testProducts())

	e.SetQuery("milk")
	assert.Equal(t, "milk", e.Query())
	assert.Equal(t, []string{"Milk", "Buttermilk"}, names(e.Visible()))

	e.SetQuery("juice")
	assert.Equal(t, "juice", e.Query())
	assert.Empty(t, e.Visible())
}

func TestEngine_SetQueryIdempotent(t *testing.T) {
	once := NewEngine(testProducts())
	once.SetQuery("milk")

	twice := NewEngine(testProducts())
	twice.SetQuery("milk")
	twice.SetQuery("milk")

	assert.Equal(t, once.Snapshot(), twice.Snapshot())
}

func TestEngine_CaseInsensitive(t *testing.T) {
	upper := NewEngine(testProducts())
	upper.SetQuery("MILK")

	lower := NewEngine(testProducts())
	lower.SetQuery("milk")

	assert.Equal(t, lower.Visible(), upper.Visible())
}

func TestEngine_ResetEqualsEmptyQuery(t *testing.T) {
	reset := NewEngine(testProducts())
	reset.SetQuery("water")
	reset.Reset()

	empty := NewEngine(testProducts())
	empty.SetQuery("water")
	empty.SetQuery("")

	assert.Equal(t, empty.Snapshot(), reset.Snapshot())
	assert.Len(t, reset.Visible(), 3)
}

func TestEngine_VisibleReturnsCopy(t *testing.T) {
	e := NewEngine(testProducts())

	v := e.Visible()
	v[0].Name = "changed"

	assert.Equal(t, "Milk", e.Visible()[0].Name)
}

func TestEngine_Subscribe(t *testing.T) {
	e := NewEngine(testProducts())

	var got []Snapshot
	unsubscribe := e.Subscribe(func(s Snapshot) {
		got = append(got, s)
	})

	e.SetQuery("wat")
	e.Reset()

	require.Len(t, got, 2)
	assert.Equal(t, "wat", got[0].Query)
	assert.Equal(t, []string{"Water"}, names(got[0].Visible))
	assert.Equal(t, "", got[1].Query)
	assert.Len(t, got[1].Visible, 3)

	unsubscribe()
	e.SetQuery("milk")
	assert.Len(t, got, 2)
}

func TestEngine_SubscriberSeesConsistentState(t *testing.T) {
	e := NewEngine(testProducts())

	e.Subscribe(func(s Snapshot) {
		assert.Equal(t, e.Query(), s.Query)
		assert.Equal(t, VisibleProducts(testProducts(), s.Query), s.Visible)
	})

	for _, q := range []string{"m", "mi", "mil", "milk", "", "WATER"} {
		e.SetQuery(q)
	}
}

func TestEngine_ListenersRunInSubscriptionOrder(t *testing.T) {
	e := NewEngine(testProducts())

	var order []string
	e.Subscribe(func(Snapshot) { order = append(order, "first") })
	unsubscribe := e.Subscribe(func(Snapshot) { order = append(order, "second") })
	e.Subscribe(func(Snapshot) { order = append(order, "third") })

	for range 5 {
		order = nil
		e.SetQuery("milk")
		require.Equal(t, []string{"first", "second", "third"}, order)
	}

	unsubscribe()
	unsubscribe()
	order = nil
	e.Reset()
	assert.Equal(t, []string{"first", "third"}, order)

	e.Subscribe(func(Snapshot) { order = append(order, "fourth") })
	order = nil
	e.SetQuery("water")
	assert.Equal(t, []string{"first", "third", "fourth"}, order)
}
