package cli

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// StdoutIsTerminal reports whether stdout is attached to a terminal. Color
// output is disabled when piping.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Colorize wraps s in the given foreground color when color output is
// enabled, and returns it unchanged otherwise.
func Colorize(s, hexColor string, enabled bool) string {
	if !enabled {
		return s
	}
	p := termenv.ColorProfile()
	return termenv.String(s).Foreground(p.Color(hexColor)).String()
}

// OpenInput returns the file to read from, or stdin when path is empty
// or "-".
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// OpenOutput returns the file to write to, or stdout when path is empty
// or "-".
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
