// Package console provides the terminal front end: a styled, word-wrapped
// narration sink and a line reader that feeds the command queue.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	exitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FAFD7"))

	shoutStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE"))
)

// Display writes narration lines to a terminal.
type Display struct {
	mu    sync.Mutex
	w     io.Writer
	width int
	color bool
}

// NewDisplay returns a Display writing to w, wrapping at width columns.
// A non-positive width disables wrapping.
func NewDisplay(w io.Writer, width int, color bool) *Display {
	return &Display{w: w, width: width, color: color}
}

// Narrate writes line followed by a newline.
func (d *Display) Narrate(line string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintln(d.w, d.render(line))
}

// Prompt writes the input prompt without a newline.
func (d *Display) Prompt() {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprint(d.w, "> ")
}

func (d *Display) render(line string) string {
	wrapped := line
	if d.width > 0 {
		wrapped = wordwrap.String(line, d.width)
	}
	if !d.color {
		return wrapped
	}
	return styleFor(line).Render(wrapped)
}

// styleFor picks the style of a narration line from its shape.
func styleFor(line string) lipgloss.Style {
	switch {
	case strings.HasPrefix(line, "Exits:"):
		return exitStyle
	case strings.HasSuffix(line, "(yes/no)"):
		return promptStyle
	case isShout(line):
		return shoutStyle
	case !strings.ContainsAny(line, ".!?:\"") && len(line) < 40:
		return titleStyle
	}
	return textStyle
}

// isShout reports whether line is an uppercase exclamation.
func isShout(line string) bool {
	return strings.HasSuffix(line, "!") && line == strings.ToUpper(line) && line != strings.ToLower(line)
}
