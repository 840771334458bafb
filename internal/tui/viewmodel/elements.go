package viewmodel

import "strconv"

// Element is one addressable node of the rendered catalog page. Renderers
// that cannot expose attributes (the terminal) publish their hooks through
// Elements so harnesses can query them the same way they query data-cy.
type Element struct {
	Hook  string
	Text  string
	Class string
	// Row is the index of the product row the element belongs to, or -1.
	Row int
}

// Elements flattens the view into its hook-addressed nodes, in page order.
func (v CatalogView) Elements() []Element {
	elems := make([]Element, 0, 8+len(v.UserLinks)+len(v.CategoryLinks)+5*len(v.Rows))

	for _, l := range v.UserLinks {
		elems = append(elems, Element{Hook: l.Hook, Text: l.Label, Row: -1})
	}

	elems = append(elems, Element{Hook: HookSearchField, Text: v.Query, Row: -1})
	if v.ShowClearButton() {
		elems = append(elems, Element{Hook: HookClearButton, Row: -1})
	}

	for _, l := range v.CategoryLinks {
		elems = append(elems, Element{Hook: l.Hook, Text: l.Label, Row: -1})
	}

	elems = append(elems, Element{Hook: HookResetAllButton, Text: ResetAllLabel, Row: -1})

	if v.ShowNoMatching() {
		elems = append(elems, Element{Hook: HookNoMatchingMessage, Text: NoMatchingMessage, Row: -1})
	}

	elems = append(elems, Element{Hook: HookProductTable, Row: -1})
	for _, c := range v.Columns {
		elems = append(elems, Element{Hook: HookSortIcon, Text: c.Title, Class: string(c.SortIcon), Row: -1})
	}

	for i, r := range v.Rows {
		elems = append(elems,
			Element{Hook: HookProduct, Text: r.Name, Row: i},
			Element{Hook: HookProductID, Text: strconv.Itoa(r.ID), Row: i},
			Element{Hook: HookProductName, Text: r.Name, Row: i},
			Element{Hook: HookProductCategory, Text: r.CategoryLabel, Row: i},
		)
		if r.HasUserCell() {
			elems = append(elems, Element{Hook: HookProductUser, Text: r.UserName, Class: string(r.UserColor), Row: i})
		}
	}

	return elems
}

// FindElements returns the elements carrying hook, in page order.
func FindElements(elems []Element, hook string) []Element {
	var found []Element
	for _, e := range elems {
		if e.Hook == hook {
			found = append(found, e)
		}
	}
	return found
}
