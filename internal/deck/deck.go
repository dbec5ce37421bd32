// Package deck defines the static content model: decks of sections whose
// items are rendered, and paged, exactly as loaded. Decks are read once from
// local files; nothing mutates a deck after load.
package deck

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format is the deck file format version understood by this build.
// Files declare theirs in the `format` field; any 1.x file is accepted.
const (
	Format           = "1.0.0"
	FormatConstraint = "^1"
)

// Deck is one deck file: a titled, ordered list of sections.
type Deck struct {
	Format   string    `yaml:"format"   validate:"required"`
	Title    string    `yaml:"title"    validate:"required"`
	Sections []Section `yaml:"sections" validate:"min=1,dive"`
}

// Section is a container of page items. PageSize is kept as the raw
// textual attribute from the file; the pagination layer parses it
// permissively and falls back to its default for anything malformed.
type Section struct {
	Title    string `yaml:"title" validate:"required"`
	PageSize string `yaml:"page_size"`
	Items    []Item `yaml:"items" validate:"dive"`
}

// Item is an opaque renderable unit. Its position within the section is
// fixed at load time.
type Item struct {
	Text string `yaml:"text" validate:"required"`
	Note string `yaml:"note"`
}

var titleCaser = cases.Title(language.English)

// DisplayTitle returns the section title in display casing.
func (s Section) DisplayTitle() string {
	return titleCaser.String(s.Title)
}
