package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adalex/uikit/internal/demo"
)

// stubRenderer records the last template name and data passed to RenderHTTP.
type stubRenderer struct {
	name string
	data interface{}
}

func (s *stubRenderer) RenderHTTP(w http.ResponseWriter, name string, data interface{}) {
	s.name = name
	s.data = data
	w.WriteHeader(http.StatusOK)
}

func newDemoHandler(perPage int) (*DemoHandler, *stubRenderer) {
	renderer := &stubRenderer{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return NewDemoHandler(renderer, logger, perPage), renderer
}

func TestIndex(t *testing.T) {
	h, renderer := newDemoHandler(10)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	h.Index(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "index", renderer.name)

	data, ok := renderer.data.(IndexPageData)
	require.True(t, ok)
	assert.NotEmpty(t, data.Groups)
	assert.Equal(t, "Adalex UI Component Library", data.Title)
}

func TestTableFirstPage(t *testing.T) {
	h, renderer := newDemoHandler(10)

	req := httptest.NewRequest("GET", "/table", nil)
	rec := httptest.NewRecorder()
	h.Table(rec, req)

	data, ok := renderer.data.(TablePageData)
	require.True(t, ok)

	assert.Len(t, data.Rows, 10)
	require.NotNil(t, data.Pagination)
	assert.Equal(t, 1, data.Pagination.CurrentPage)
	assert.Equal(t, 5, data.Pagination.TotalPages) // 50 products / 10 per page
	assert.False(t, data.Pagination.HasPrevious)
	assert.Equal(t, "/table?page=2", data.Pagination.NextURL)
}

func TestTableSortPreservedInPageURLs(t *testing.T) {
	h, renderer := newDemoHandler(10)

	req := httptest.NewRequest("GET", "/table?sort=price&page=2", nil)
	rec := httptest.NewRecorder()
	h.Table(rec, req)

	data, ok := renderer.data.(TablePageData)
	require.True(t, ok)

	assert.Equal(t, "price", data.SortKey)
	assert.Equal(t, 2, data.Pagination.CurrentPage)
	assert.Equal(t, "/table?sort=price&page=1", data.Pagination.PrevURL)
	assert.Equal(t, "/table?sort=price&page=3", data.Pagination.NextURL)
	for _, p := range data.Pagination.Pages {
		if !p.IsEllipsis {
			assert.Contains(t, p.URL, "sort=price")
		}
	}

	// Rows really are price-sorted
	for i := 1; i < len(data.Rows); i++ {
		assert.LessOrEqual(t, data.Rows[i-1].Price, data.Rows[i].Price)
	}
}

func TestTablePageClamping(t *testing.T) {
	h, renderer := newDemoHandler(10)

	// Beyond the last page: clamp to the final page instead of rendering
	// an empty table.
	req := httptest.NewRequest("GET", "/table?page=999", nil)
	rec := httptest.NewRecorder()
	h.Table(rec, req)

	data, ok := renderer.data.(TablePageData)
	require.True(t, ok)
	assert.Equal(t, 5, data.Pagination.CurrentPage)
	assert.False(t, data.Pagination.HasNext)
	assert.NotEmpty(t, data.Rows)

	// Garbage page parameter: fall back to page one.
	req = httptest.NewRequest("GET", "/table?page=banana", nil)
	h.Table(httptest.NewRecorder(), req)
	data = renderer.data.(TablePageData)
	assert.Equal(t, 1, data.Pagination.CurrentPage)
}

func TestFilterNarrowsAndPaginates(t *testing.T) {
	h, renderer := newDemoHandler(5)

	req := httptest.NewRequest("GET", "/filter?category=Chairs", nil)
	rec := httptest.NewRecorder()
	h.Filter(rec, req)

	data, ok := renderer.data.(FilterPageData)
	require.True(t, ok)

	assert.Equal(t, "Chairs", data.Category)
	assert.Equal(t, 10, data.Total) // one chair per adjective
	assert.Len(t, data.Rows, 5)
	assert.Equal(t, 2, data.Pagination.TotalPages)
	for _, p := range data.Rows {
		assert.Equal(t, "Chairs", p.Category)
	}
	assert.Equal(t, "/filter?category=Chairs&page=2", data.Pagination.NextURL)
}

func TestFilterNoResults(t *testing.T) {
	h, renderer := newDemoHandler(10)

	req := httptest.NewRequest("GET", "/filter?q=nosuchthing", nil)
	rec := httptest.NewRecorder()
	h.Filter(rec, req)

	data, ok := renderer.data.(FilterPageData)
	require.True(t, ok)

	assert.Empty(t, data.Rows)
	assert.Zero(t, data.Total)
	require.NotNil(t, data.Pagination)
	assert.Empty(t, data.Pagination.Pages)
	assert.Empty(t, data.Pagination.PrevURL)
	assert.Empty(t, data.Pagination.NextURL)
}

func TestPageURLTemplate(t *testing.T) {
	req := httptest.NewRequest("GET", "/filter?q=birch&category=Desks&page=3", nil)
	got := pageURLTemplate(req)

	// The page parameter is stripped, everything else survives.
	assert.NotContains(t, got, "page=3")
	assert.Contains(t, got, "q=birch")
	assert.Contains(t, got, "category=Desks")
	assert.Contains(t, got, "page={page}")

	plain := httptest.NewRequest("GET", "/table", nil)
	assert.Equal(t, "/table?page={page}", pageURLTemplate(plain))
}

func TestRegisterRoutes(t *testing.T) {
	h, renderer := newDemoHandler(10)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	for _, path := range []string{"/components", "/forms", "/navigation", "/table", "/filter"} {
		renderer.name = ""
		req := httptest.NewRequest("GET", path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, renderer.name, path)
	}
}

// Keep the fixtures and the column definitions in sync: every column key
// must resolve against a product row.
func TestProductColumnsResolve(t *testing.T) {
	p := demo.Products()[0]
	for _, col := range productColumns {
		_, ok := p.Lookup(col.Key)
		assert.True(t, ok, "column %q", col.Key)
	}
}
