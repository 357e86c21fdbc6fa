// Package handler contains HTTP handlers for the Adalex UI playground.
//
// Every page serves hand-built fixture data from the demo package; there is
// no persistence behind any of these views.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/adalex/uikit/internal/demo"
	"github.com/adalex/uikit/internal/pagination"
)

// =============================================================================
// Template Data Types
// =============================================================================

// IndexPageData contains data for the playground index page.
type IndexPageData struct {
	CurrentPath string
	Title       string
	Description string
	Groups      []demo.ComponentGroup
}

// Column describes one column of the generic table component. Key is the
// lookup key resolved against each row via the getItem template filter.
type Column struct {
	Key   string
	Label string
}

// TablePageData contains data for the table demo page.
type TablePageData struct {
	CurrentPath string
	Title       string
	Columns     []Column
	Rows        []demo.Product
	Pagination  *pagination.Result
	SortKey     string
}

// FilterPageData contains data for the filter demo page.
type FilterPageData struct {
	CurrentPath string
	Title       string
	Columns     []Column
	Rows        []demo.Product
	Pagination  *pagination.Result
	Query       string
	Category    string
	Categories  []string
	Total       int
}

// =============================================================================
// Handler Configuration
// =============================================================================

// DemoHandler serves the playground pages.
type DemoHandler struct {
	renderer TemplateRenderer
	logger   *slog.Logger
	perPage  int
}

// TemplateRenderer is the interface for rendering HTML templates.
// This interface allows for mocking in tests.
type TemplateRenderer interface {
	RenderHTTP(w http.ResponseWriter, name string, data interface{})
}

// NewDemoHandler creates a new DemoHandler. perPage controls how many rows
// the paginated demos show per page.
func NewDemoHandler(renderer TemplateRenderer, logger *slog.Logger, perPage int) *DemoHandler {
	if perPage <= 0 {
		perPage = 10
	}
	return &DemoHandler{
		renderer: renderer,
		logger:   logger,
		perPage:  perPage,
	}
}

// =============================================================================
// Route Registration
// =============================================================================

// RegisterRoutes registers all playground routes with the provided mux.
//
// Routes:
// - GET /            -> Index (component catalog)
// - GET /components  -> Components (buttons, badges, cards, alerts)
// - GET /forms       -> Forms (inputs and validation states)
// - GET /navigation  -> Navigation (breadcrumbs, tabs, menus)
// - GET /table       -> Table (sortable paginated table)
// - GET /filter      -> Filter (search + category filter with pagination)
func (h *DemoHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /components", h.Components)
	mux.HandleFunc("GET /forms", h.Forms)
	mux.HandleFunc("GET /navigation", h.Navigation)
	mux.HandleFunc("GET /table", h.Table)
	mux.HandleFunc("GET /filter", h.Filter)
}

// =============================================================================
// GET / - Playground Index
// =============================================================================

// Index displays the component catalog.
func (h *DemoHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := IndexPageData{
		CurrentPath: r.URL.Path,
		Title:       "Adalex UI Component Library",
		Description: "Interactive playground for Adalex UI components",
		Groups:      demo.Groups(),
	}
	h.renderer.RenderHTTP(w, "index", data)
}

// =============================================================================
// GET /components - UI Components Showcase
// =============================================================================

// Components displays the basic UI component showcase.
func (h *DemoHandler) Components(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"CurrentPath": r.URL.Path,
		"Title":       "UI Components",
		"Buttons": []map[string]string{
			{"Label": "Primary", "Variant": "primary"},
			{"Label": "Secondary", "Variant": "secondary"},
			{"Label": "Danger", "Variant": "danger"},
			{"Label": "Ghost", "Variant": "ghost"},
		},
		"Badges": []map[string]string{
			{"Label": "New", "Variant": "info"},
			{"Label": "Sale", "Variant": "success"},
			{"Label": "Sold out", "Variant": "warning"},
		},
		"Alerts": []map[string]string{
			{"Message": "Your changes were saved.", "Variant": "success"},
			{"Message": "This component is experimental.", "Variant": "warning"},
			{"Message": "Something went wrong.", "Variant": "error"},
		},
	}
	h.renderer.RenderHTTP(w, "components", data)
}

// =============================================================================
// GET /forms - Form Components
// =============================================================================

// Forms displays the form component showcase.
func (h *DemoHandler) Forms(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"CurrentPath": r.URL.Path,
		"Title":       "Forms",
		"Fields": []map[string]string{
			{"Label": "Name", "Type": "text", "Placeholder": "Jane Doe"},
			{"Label": "Email", "Type": "email", "Placeholder": "jane@example.com"},
			{"Label": "Password", "Type": "password", "Placeholder": ""},
		},
		"Errors": map[string]string{
			"Email": "Enter a valid email address.",
		},
		"Selects": []map[string]interface{}{
			{"Label": "Country", "Options": []string{"Norway", "Sweden", "Denmark"}},
		},
	}
	h.renderer.RenderHTTP(w, "forms", data)
}

// =============================================================================
// GET /navigation - Navigation Components
// =============================================================================

// Navigation displays breadcrumbs, tabs, and menu components.
func (h *DemoHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"CurrentPath": r.URL.Path,
		"Title":       "Navigation",
		"Breadcrumbs": []map[string]string{
			{"Label": "Home", "URL": "/"},
			{"Label": "Catalog", "URL": "/table"},
			{"Label": "Chairs", "URL": ""},
		},
		"Tabs": []map[string]interface{}{
			{"Label": "Overview", "Active": true},
			{"Label": "Specs", "Active": false},
			{"Label": "Reviews", "Active": false},
		},
	}
	h.renderer.RenderHTTP(w, "navigation", data)
}

// =============================================================================
// GET /table - Paginated Table Demo
// =============================================================================

var productColumns = []Column{
	{Key: "name", Label: "Name"},
	{Key: "category", Label: "Category"},
	{Key: "price", Label: "Price"},
	{Key: "stock", Label: "Stock"},
	{Key: "status", Label: "Status"},
	{Key: "added", Label: "Added"},
}

// Table displays a sortable, paginated product table.
func (h *DemoHandler) Table(w http.ResponseWriter, r *http.Request) {
	sortKey := r.URL.Query().Get("sort")
	items := demo.SortBy(demo.Products(), sortKey)

	rows, pg, err := h.paginate(r, items)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	data := TablePageData{
		CurrentPath: r.URL.Path,
		Title:       "Table",
		Columns:     productColumns,
		Rows:        rows,
		Pagination:  pg,
		SortKey:     sortKey,
	}
	h.renderer.RenderHTTP(w, "table", data)
}

// =============================================================================
// GET /filter - Search + Filter Demo
// =============================================================================

// Filter displays the product table narrowed by a search query and a
// category, with pagination that preserves both parameters.
func (h *DemoHandler) Filter(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	items := demo.Filter(demo.Products(), query, category)

	rows, pg, err := h.paginate(r, items)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	data := FilterPageData{
		CurrentPath: r.URL.Path,
		Title:       "Filter",
		Columns:     productColumns,
		Rows:        rows,
		Pagination:  pg,
		Query:       query,
		Category:    category,
		Categories:  demo.Categories(),
		Total:       len(items),
	}
	h.renderer.RenderHTTP(w, "filter", data)
}

// =============================================================================
// Pagination Helpers
// =============================================================================

// paginate slices items down to the requested page and builds the pagination
// control for it. The page URL template keeps every query parameter except
// "page", so search and sort state survives page navigation.
func (h *DemoHandler) paginate(r *http.Request, items []demo.Product) ([]demo.Product, *pagination.Result, error) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	totalPages := (len(items) + h.perPage - 1) / h.perPage
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	pg, err := pagination.Build(page, totalPages, pageURLTemplate(r))
	if err != nil {
		return nil, nil, err
	}

	start := (page - 1) * h.perPage
	end := start + h.perPage
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], pg, nil
}

// pageURLTemplate builds the URL template handed to the pagination builder:
// the request path with all current query parameters except "page", plus a
// trailing page={page} token.
func pageURLTemplate(r *http.Request) string {
	q := r.URL.Query()
	q.Del("page")

	template := r.URL.Path + "?"
	if encoded := q.Encode(); encoded != "" {
		template += encoded + "&"
	}
	return template + "page=" + pagination.PageToken
}
