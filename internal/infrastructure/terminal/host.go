// Package terminal hosts a simulated session on a real terminal or on a
// piped byte stream.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/doeshing/bsterm/internal/domain"
	"github.com/doeshing/bsterm/internal/pkg/logger"
	"github.com/doeshing/bsterm/internal/ports"
)

const readBufferSize = 1024

// Input is the router surface the host drives.
type Input interface {
	HandleData(data string)
	Line() string
	Streaming() bool
}

// Host pumps bytes from a reader into an Input.
type Host struct {
	input  Input
	logger ports.Logger
	// lineMode treats "\n" as Enter, for scripts and pipes.
	lineMode bool
}

// NewHost builds a host. lineMode should be set when the input is not a tty.
func NewHost(input Input, log ports.Logger, lineMode bool) *Host {
	if log == nil {
		log = logger.NewNop()
	}
	return &Host{input: input, logger: log, lineMode: lineMode}
}

// Run feeds in to the input until EOF, Ctrl+D on an empty idle line, or
// ctx cancellation. A reader blocked in Read is abandoned on cancellation.
func (h *Host) Run(ctx context.Context, in io.Reader) error {
	chunks := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go readChunks(in, chunks, readErr, done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case chunk := <-chunks:
			if h.feed(chunk) {
				h.logger.Debug("end of input key", nil)
				return nil
			}
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
	}
}

// feed hands a chunk to the input and reports whether the session should end.
func (h *Host) feed(chunk string) bool {
	if h.lineMode {
		chunk = strings.ReplaceAll(chunk, "\r\n", "\r")
		chunk = strings.ReplaceAll(chunk, "\n", "\r")
	}
	for {
		i := strings.IndexRune(chunk, domain.KeyEOF)
		if i < 0 {
			h.input.HandleData(chunk)
			return false
		}
		h.input.HandleData(chunk[:i])
		if h.input.Line() == "" && !h.input.Streaming() {
			return true
		}
		chunk = chunk[i+1:]
	}
}

// readChunks forwards reads as strings, holding back a trailing partial
// UTF-8 sequence until the rest of it arrives.
func readChunks(in io.Reader, out chan<- string, errc chan<- error, done <-chan struct{}) {
	buf := make([]byte, readBufferSize)
	var pending []byte
	for {
		n, err := in.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			cut := completePrefix(pending)
			if cut > 0 {
				select {
				case out <- string(pending[:cut]):
				case <-done:
					return
				}
				pending = append(pending[:0], pending[cut:]...)
			}
		}
		if err != nil {
			errc <- err
			return
		}
	}
}

// completePrefix returns the length of b without an unfinished trailing rune.
func completePrefix(b []byte) int {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if utf8.FullRune(b[i:]) {
				return len(b)
			}
			return i
		}
	}
	return len(b)
}
