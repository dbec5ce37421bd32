// Package tui contains the Bubble Tea models for the interactive board:
// the root BoardModel, the per-section PageListModel (which is also the
// rendering surface for pagination), the toast stack, and the navigation
// drawer.
//
// All state transitions happen synchronously inside Update on the program's
// single event loop; messages are processed one at a time, so a View always
// reflects the most recently completed transition.
package tui
