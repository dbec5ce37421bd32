// Package paginate implements client-side pagination over a fixed sequence
// of renderable items.
//
// A Paginator owns a single integer, the current page, as its source of
// truth. Render is the only function allowed to translate that integer into
// visibility changes on a Surface, which keeps the page state machine
// testable independent of any rendering medium. Containers whose item count
// fits within one page never get a Paginator at all: Attach returns nil and
// every item stays visible.
package paginate
