// Package ruler prints the section headers that split demo output.
package ruler

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Section writes a blank line and a header for title.
//
// Terminals get the box-drawing style; pipes, files and buffers get plain
// ASCII so the output stays greppable.
func Section(w io.Writer, title string) {
	if IsTerminal(w) {
		fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
		return
	}
	fmt.Fprintf(w, "\n=== %s ===\n", title)
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
