package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/classdeck/classdeck/internal/tui"
)

// PromptResult contains the result of a user prompt interaction.
type PromptResult struct {
	// Accepted is true if the user accepted the prompt (typed "y" or "yes")
	Accepted bool
	// Cancelled is true if input could not be read (e.g. Ctrl+C)
	Cancelled bool
}

// Confirm asks a yes/no question and reads one line of input. It returns
// immediately with Accepted=false in non-interactive (non-TTY) environments,
// and defaults to "No" when the user presses Enter without input.
func Confirm(writer io.Writer, reader io.Reader, question string) PromptResult {
	if !tui.IsTTY() {
		return PromptResult{Accepted: false}
	}
	return confirm(writer, reader, question)
}

// confirm is Confirm without the TTY guard, for tests driving piped input.
func confirm(writer io.Writer, reader io.Reader, question string) PromptResult {
	fmt.Fprintf(writer, "? %s [y/N] ", question)

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if scanner.Err() != nil {
			return PromptResult{Cancelled: true}
		}
		// EOF without error - treat as decline (user pressed Ctrl+D)
		return PromptResult{Accepted: false}
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return PromptResult{Accepted: true}
	default:
		return PromptResult{Accepted: false}
	}
}
