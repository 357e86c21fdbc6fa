// Package demo holds the hand-built sample data served by the playground
// pages. Nothing here is persisted; every value is deterministic so pages
// render identically between requests and tests can assert on contents.
package demo

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product is one row of the table and filter demos.
type Product struct {
	ID       uuid.UUID
	Name     string
	Category string
	Price    int // cents
	Stock    int
	Status   string
	AddedAt  time.Time
}

// Lookup lets templates resolve product columns by key, so the generic table
// component can render rows without knowing the concrete type.
func (p Product) Lookup(key string) (any, bool) {
	switch key {
	case "id":
		return p.ID.String(), true
	case "name":
		return p.Name, true
	case "category":
		return p.Category, true
	case "price":
		return fmt.Sprintf("$%d.%02d", p.Price/100, p.Price%100), true
	case "stock":
		return p.Stock, true
	case "status":
		return p.Status, true
	case "added":
		return p.AddedAt.Format("Jan 2, 2006"), true
	default:
		return nil, false
	}
}

// ComponentGroup is one card on the playground index page.
type ComponentGroup struct {
	Title       string
	Description string
	Path        string
}

// Groups returns the component demo catalog shown on the index page.
func Groups() []ComponentGroup {
	return []ComponentGroup{
		{"UI Components", "Buttons, badges, cards, and alerts", "/components"},
		{"Forms", "Inputs, selects, checkboxes, and validation states", "/forms"},
		{"Navigation", "Breadcrumbs, tabs, and menus", "/navigation"},
		{"Table", "Sortable, paginated data table", "/table"},
		{"Filter", "Search and category filtering with pagination", "/filter"},
	}
}

var (
	categories = []string{"Chairs", "Desks", "Lamps", "Rugs", "Shelves"}
	adjectives = []string{"Arc", "Birch", "Cedar", "Dune", "Ember", "Fjord", "Grove", "Haven", "Isle", "Juniper"}
	statuses   = []string{"in stock", "low stock", "backordered"}
)

// Products returns the fixed demo catalog. The catalog is generated rather
// than listed literally, but from constant inputs, so it never changes shape
// between calls.
func Products() []Product {
	base := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	items := make([]Product, 0, len(adjectives)*len(categories))
	for i, adj := range adjectives {
		for j, cat := range categories {
			n := i*len(categories) + j
			items = append(items, Product{
				ID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte(adj+cat)),
				Name:     fmt.Sprintf("%s %s", adj, strings.TrimSuffix(cat, "s")),
				Category: cat,
				Price:    1850 + n*325,
				Stock:    (n * 7) % 40,
				Status:   statuses[n%len(statuses)],
				AddedAt:  base.AddDate(0, 0, -n),
			})
		}
	}
	return items
}

// Filter narrows items by a case-insensitive name search and an exact
// category match. Empty arguments match everything.
func Filter(items []Product, query, category string) []Product {
	out := make([]Product, 0, len(items))
	query = strings.ToLower(strings.TrimSpace(query))
	for _, p := range items {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortBy orders items by one of the table columns. Unknown keys leave the
// catalog order untouched.
func SortBy(items []Product, key string) []Product {
	out := make([]Product, len(items))
	copy(out, items)

	switch key {
	case "name":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case "price":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "stock":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	case "added":
		sort.SliceStable(out, func(i, j int) bool { return out[i].AddedAt.Before(out[j].AddedAt) })
	}
	return out
}

// Categories returns the category filter options in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}
