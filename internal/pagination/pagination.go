// Package pagination computes windowed page controls for list pages.
//
// Given a current page, a total page count, and a URL template containing a
// literal {page} token, Build returns the ordered slots of a pagination
// control: page links, ellipsis markers for skipped ranges, and resolved
// previous/next URLs. The computation is pure; callers that need extra query
// parameters on the links rewrite the URLs themselves.
package pagination

import (
	"strconv"
	"strings"

	"github.com/adalex/uikit/internal/domain"
)

// DefaultMaxVisible is the default number of slots (page links plus ellipsis
// markers) rendered by a pagination control.
const DefaultMaxVisible = 7

// PageToken is the placeholder replaced with the page number when resolving
// a URL template.
const PageToken = "{page}"

// Page is one renderable slot of a pagination control: either a page link or
// an ellipsis placeholder. Ellipsis slots have a zero Number and empty URL.
type Page struct {
	Number     int    // 1-indexed page number, 0 for ellipsis slots
	URL        string // url template with {page} resolved, "" for ellipsis
	IsActive   bool   // true for the current page's slot
	IsEllipsis bool   // true for skipped-range placeholders
}

// Result holds everything a template needs to render a pagination control.
// PrevURL is empty when the current page is the first, NextURL when it is
// the last.
type Result struct {
	Pages       []Page
	PrevURL     string
	NextURL     string
	CurrentPage int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
	PrevPage    int
	NextPage    int
}

// slot is one entry of the abstract page window: a page number, or ellipsis
// for a skipped range. Windows are computed in this form first so the
// boundary math stays independent of URL formatting.
type slot int

const ellipsis slot = -1

// Build computes a pagination control with the default window width.
//
// currentPage is 1-indexed and is not clamped: values outside
// [1, totalPages] produce a window with no active slot. A totalPages of 0
// yields an empty control with no previous/next links.
func Build(currentPage, totalPages int, urlTemplate string) (*Result, error) {
	return BuildWindowed(currentPage, totalPages, urlTemplate, DefaultMaxVisible)
}

// BuildWindowed is Build with an explicit window width. maxVisible is the
// maximum number of slots, page links and ellipsis markers combined. Widths
// below 3 leave no room for the boundary pages around an ellipsis and are
// rejected.
func BuildWindowed(currentPage, totalPages int, urlTemplate string, maxVisible int) (*Result, error) {
	if totalPages < 0 {
		return nil, domain.Invalid("pagination.build", "total pages must not be negative, got "+strconv.Itoa(totalPages))
	}
	if maxVisible < 3 {
		return nil, domain.Invalid("pagination.build", "window width must be at least 3, got "+strconv.Itoa(maxVisible))
	}

	w := window(currentPage, totalPages, maxVisible)

	res := &Result{
		Pages:       make([]Page, 0, len(w)),
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
		PrevPage:    currentPage - 1,
		NextPage:    currentPage + 1,
	}

	for _, s := range w {
		if s == ellipsis {
			res.Pages = append(res.Pages, Page{IsEllipsis: true})
			continue
		}
		n := int(s)
		res.Pages = append(res.Pages, Page{
			Number:   n,
			URL:      PageURL(urlTemplate, n),
			IsActive: n == currentPage,
		})
	}

	if res.HasPrevious {
		res.PrevURL = PageURL(urlTemplate, currentPage-1)
	}
	if res.HasNext {
		res.NextURL = PageURL(urlTemplate, currentPage+1)
	}

	return res, nil
}

// PageURL resolves a URL template by substituting the {page} token with the
// decimal page number. A template without the token is returned unchanged.
func PageURL(urlTemplate string, page int) string {
	return strings.ReplaceAll(urlTemplate, PageToken, strconv.Itoa(page))
}

// window selects which page numbers to display around the current page.
//
// Small page counts show every page. Otherwise one of three layouts applies,
// keyed on how close the current page is to either end:
//
//	near start:  1 2 3 4 5 … N
//	near end:    1 … N-4 N-3 N-2 N-1 N
//	middle:      1 … c-1 c c+1 … N
//
// The exact boundaries decide which pages are reachable in one click, so
// they are deliberate: do not "simplify" the off-by-ones.
func window(current, total, maxVisible int) []slot {
	if total <= maxVisible {
		w := make([]slot, total)
		for i := range w {
			w[i] = slot(i + 1)
		}
		return w
	}

	half := maxVisible / 2
	switch {
	case current <= half+1:
		// Near start: a contiguous run from 1, then jump to the last page.
		w := make([]slot, 0, maxVisible)
		for n := 1; n <= maxVisible-2; n++ {
			w = append(w, slot(n))
		}
		return append(w, ellipsis, slot(total))

	case current >= total-half:
		// Near end: first page, then a contiguous run ending at the last.
		w := make([]slot, 0, maxVisible)
		w = append(w, 1, ellipsis)
		for n := total - maxVisible + 3; n <= total; n++ {
			w = append(w, slot(n))
		}
		return w

	default:
		// Middle: both ends pinned, a run centered on the current page.
		w := make([]slot, 0, maxVisible)
		w = append(w, 1, ellipsis)
		for n := current - half + 2; n <= current+half-2; n++ {
			w = append(w, slot(n))
		}
		return append(w, ellipsis, slot(total))
	}
}
