package terminal

import (
	"io"

	"github.com/doeshing/bsterm/internal/ports"
)

// Display writes router output to a terminal. The first write error is
// kept and later writes are dropped.
type Display struct {
	out io.Writer
	err error
}

// NewDisplay builds a Display for stdout or any writer.
func NewDisplay(out io.Writer) *Display {
	return &Display{out: out}
}

func (d *Display) Write(text string) {
	if d.err != nil || text == "" {
		return
	}
	_, d.err = io.WriteString(d.out, text)
}

// WriteLine ends text with CRLF so raw-mode terminals return to column 0.
func (d *Display) WriteLine(text string) {
	d.Write(text + "\r\n")
}

// Err reports the first write failure.
func (d *Display) Err() error {
	return d.err
}

var _ ports.Display = (*Display)(nil)
