package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm_Answers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "lowercase y", input: "y\n", want: true},
		{name: "uppercase Y", input: "Y\n", want: true},
		{name: "yes", input: "yes\n", want: true},
		{name: "mixed-case yes", input: "YeS\n", want: true},
		{name: "n declines", input: "n\n", want: false},
		{name: "empty input defaults to no", input: "\n", want: false},
		{name: "anything else declines", input: "sure\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			res := confirm(&out, strings.NewReader(tt.input), "Proceed?")

			assert.Equal(t, tt.want, res.Accepted)
			assert.False(t, res.Cancelled)
			assert.Contains(t, out.String(), "Proceed? [y/N]")
		})
	}
}

func TestConfirm_EOFDeclines(t *testing.T) {
	var out strings.Builder
	res := confirm(&out, strings.NewReader(""), "Proceed?")

	assert.False(t, res.Accepted)
	assert.False(t, res.Cancelled)
}

func TestConfirm_NonTTYDeclinesImmediately(t *testing.T) {
	// Test processes have no TTY, so the guarded entry point declines
	// without reading anything.
	var out strings.Builder
	res := Confirm(&out, strings.NewReader("y\n"), "Proceed?")

	assert.False(t, res.Accepted)
	assert.Empty(t, out.String(), "no prompt written without a terminal")
}
