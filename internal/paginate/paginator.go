package paginate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultPageSize is used when a container declares no page size, or
// declares one that does not parse as a positive integer.
const DefaultPageSize = 10

// Surface is the rendering medium a Paginator draws on. It is the only
// channel through which pagination touches item visibility.
//
// Implementations with no indicator target should make SetIndicator a no-op
// rather than fail; the Paginator never checks for one.
type Surface interface {
	// SetItemVisible shows or hides the item at the given 0-based index.
	SetItemVisible(index int, visible bool)

	// SetIndicator updates the page indicator text, e.g. "Page 2 / 5".
	SetIndicator(text string)
}

// State is a snapshot of a Paginator's position.
type State struct {
	CurrentPage int
	TotalPages  int
	PageSize    int
	ItemCount   int
}

// HasPrevious reports whether a previous page exists.
func (s State) HasPrevious() bool { return s.CurrentPage > 1 }

// HasNext reports whether a further page exists.
func (s State) HasNext() bool { return s.CurrentPage < s.TotalPages }

// Paginator pages a fixed, ordered item sequence on a Surface. The item set
// is captured by count at construction and never grows or shrinks.
//
// All transitions run synchronously in the caller's event loop; a Paginator
// is not safe for concurrent use and does not need to be.
type Paginator struct {
	surface     Surface
	currentPage int
	totalPages  int
	pageSize    int
	itemCount   int
}

// ParsePageSize parses a textual page-size attribute. Missing, non-numeric,
// or non-positive values fall back to DefaultPageSize; the result is always
// a positive integer.
func ParsePageSize(attr string) int {
	n, err := strconv.Atoi(strings.TrimSpace(attr))
	if err != nil || n <= 0 {
		return DefaultPageSize
	}
	return n
}

// Attach creates a Paginator for a container holding itemCount items with
// the given textual page-size attribute, and performs the initial Render.
//
// When every item fits on one page, Attach returns nil: no controls should
// be mounted, nothing is hidden, and the container stays fully visible. A
// nil result is the normal small-container case, not an error.
func Attach(surface Surface, itemCount int, sizeAttr string) *Paginator {
	pageSize := ParsePageSize(sizeAttr)
	if itemCount <= pageSize {
		return nil
	}

	p := &Paginator{
		surface:     surface,
		currentPage: 1,
		totalPages:  int(math.Ceil(float64(itemCount) / float64(pageSize))),
		pageSize:    pageSize,
		itemCount:   itemCount,
	}
	p.Render()
	return p
}

// Render applies the current page to the surface: the item at index idx is
// visible iff idx/pageSize+1 equals the current page. It also refreshes the
// page indicator. Render has no other side effects and is idempotent for an
// unchanged current page.
func (p *Paginator) Render() {
	for idx := 0; idx < p.itemCount; idx++ {
		page := idx/p.pageSize + 1
		p.surface.SetItemVisible(idx, page == p.currentPage)
	}
	p.surface.SetIndicator(fmt.Sprintf("Page %d / %d", p.currentPage, p.totalPages))
}

// GoToPrevious moves back one page and re-renders. At the first page it is
// a no-op: the control stays enabled and the handler simply does nothing.
func (p *Paginator) GoToPrevious() {
	if p.currentPage <= 1 {
		return
	}
	p.currentPage--
	p.Render()
}

// GoToNext moves forward one page and re-renders, no-op at the last page.
func (p *Paginator) GoToNext() {
	if p.currentPage >= p.totalPages {
		return
	}
	p.currentPage++
	p.Render()
}

// State returns a snapshot of the paginator's position.
func (p *Paginator) State() State {
	return State{
		CurrentPage: p.currentPage,
		TotalPages:  p.totalPages,
		PageSize:    p.pageSize,
		ItemCount:   p.itemCount,
	}
}

// CurrentPage returns the 1-based current page.
func (p *Paginator) CurrentPage() int { return p.currentPage }

// TotalPages returns the number of pages.
func (p *Paginator) TotalPages() int { return p.totalPages }

// PageSize returns the effective page size.
func (p *Paginator) PageSize() int { return p.pageSize }

// ItemCount returns the fixed number of managed items.
func (p *Paginator) ItemCount() int { return p.itemCount }
