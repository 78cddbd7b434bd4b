package terminal

import (
	"fmt"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// IsTerminal reports whether fd is an interactive terminal.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// MakeRaw switches fd to raw mode so every key, Ctrl+C included, arrives as
// input. The returned func restores the previous mode.
func MakeRaw(fd int) (restore func() error, err error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	return func() error {
		return term.Restore(fd, state)
	}, nil
}
