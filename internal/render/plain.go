package render

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/davren/calgrid/internal/calendar"
)

// PlainOptions controls the one-shot non-interactive renderer.
type PlainOptions struct {
	Writer  io.Writer
	Window  []calendar.MonthGrid
	Heading string
	Width   int
	Options Options
}

// RunPlain renders the window exactly once and returns.
func RunPlain(opts PlainOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	width := opts.Width
	if width <= 0 {
		width = DetectWidth()
	}

	blocks := BuildBlocks(opts.Window, opts.Options)
	output := Layout(blocks, width)
	if output == "" {
		return nil
	}
	if opts.Heading != "" {
		heading := opts.Heading
		if !noColorMode {
			heading = titleStyle.Render(heading)
		}
		if _, err := fmt.Fprintln(opts.Writer, heading); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(opts.Writer, output)
	return err
}

// DetectWidth tries to determine the terminal width, falling back to 100
// columns.
func DetectWidth() int {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) {
		if w, _, err := term.GetSize(int(fd)); err == nil {
			return w
		}
	}
	return 100
}
