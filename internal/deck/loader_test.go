package deck

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDeck = `format: "1.0.0"
title: Algebra review
sections:
  - title: warm-up questions
    page_size: "5"
    items:
      - text: "What is 7 * 8?"
      - text: "Factor x^2 - 9."
        note: difference of squares
  - title: results
    items:
      - text: "Avery — 9/10"
`

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	d, err := Load(writeDeck(t, sampleDeck))
	require.NoError(t, err)

	assert.Equal(t, "Algebra review", d.Title)
	require.Len(t, d.Sections, 2)

	warmup := d.Sections[0]
	assert.Equal(t, "5", warmup.PageSize)
	require.Len(t, warmup.Items, 2)
	assert.Equal(t, "difference of squares", warmup.Items[1].Note)

	assert.Empty(t, d.Sections[1].PageSize, "page size attribute is optional")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not yaml", content: "sections: ["},
		{name: "missing title", content: "format: \"1.0.0\"\nsections:\n  - title: a\n    items: []\n"},
		{name: "no sections", content: "format: \"1.0.0\"\ntitle: t\nsections: []\n"},
		{name: "item without text", content: "format: \"1.0.0\"\ntitle: t\nsections:\n  - title: a\n    items:\n      - note: only a note\n"},
		{name: "missing format", content: "title: t\nsections:\n  - title: a\n    items: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeDeck(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_FormatVersions(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "current", format: "1.0.0", wantErr: false},
		{name: "newer minor", format: "1.4.0", wantErr: false},
		{name: "short form", format: "1.2", wantErr: false},
		{name: "next major", format: "2.0.0", wantErr: true},
		{name: "garbage", format: "one", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "format: \"" + tt.format + "\"\ntitle: t\nsections:\n  - title: a\n    items:\n      - text: x\n"
			_, err := Load(writeDeck(t, content))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	first := writeDeck(t, sampleDeck)
	second := writeDeck(t, `format: "1.0.0"
title: Geometry
sections:
  - title: proofs
    items:
      - text: "Prove the base angles of an isosceles triangle are equal."
`)

	decks, err := LoadAll(context.Background(), []string{first, second})
	require.NoError(t, err)
	require.Len(t, decks, 2)
	assert.Equal(t, "Algebra review", decks[0].Title)
	assert.Equal(t, "Geometry", decks[1].Title)

	sections := CombineSections(decks)
	require.Len(t, sections, 3)
	assert.Equal(t, "proofs", sections[2].Title)
}

func TestLoadAll_FirstFailureWins(t *testing.T) {
	good := writeDeck(t, sampleDeck)
	bad := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := LoadAll(context.Background(), []string{good, bad})
	assert.Error(t, err)
}

func TestSection_DisplayTitle(t *testing.T) {
	s := Section{Title: "warm-up questions"}
	assert.Equal(t, "Warm-Up Questions", s.DisplayTitle())
}
