// Package router turns raw terminal input into submitted lines for the
// command processor and renders the replies.
package router

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/doeshing/bsterm/internal/domain"
	"github.com/doeshing/bsterm/internal/pkg/logger"
	"github.com/doeshing/bsterm/internal/ports"
)

const (
	interruptNotice = "\n^C"
	stoppedNotice   = "[MCP-INFO] Server stopped"
	streamHint      = "Press Ctrl+C to stop the server"
	eraseRune       = "\b \b"
)

// escapeSequence matches CSI and SS3 sequences plus Alt-prefixed keys. A
// trailing lone ESC is matched too.
var escapeSequence = regexp.MustCompile(`(?s)\x1b(?:\[[0-?]*[ -/]*[@-~]|O.|.)?`)

// Router owns the line buffer of one session. It is not safe for
// concurrent use; the host feeds it one chunk at a time.
type Router struct {
	processor ports.LineProcessor
	display   ports.Display
	session   *domain.Session
	logger    ports.Logger
	prompt    string

	buffer []rune
}

// New builds a router writing to display.
func New(processor ports.LineProcessor, display ports.Display, session *domain.Session, log ports.Logger, prompt string) *Router {
	if prompt == "" {
		prompt = domain.DefaultPrompt
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Router{
		processor: processor,
		display:   display,
		session:   session,
		logger:    log,
		prompt:    prompt,
	}
}

// Start prints the banner, if any, and the first prompt.
func (r *Router) Start(banner string) {
	if banner != "" {
		r.writeLines(banner)
	}
	r.display.Write(r.prompt)
}

// HandleData accepts one chunk as delivered by the host terminal. Escape
// sequences (arrow and function keys) are dropped wherever they appear.
func (r *Router) HandleData(data string) {
	if strings.IndexByte(data, domain.KeyEscape) >= 0 {
		data = escapeSequence.ReplaceAllString(data, "")
	}
	for _, key := range data {
		r.HandleKey(key)
	}
}

// HandleKey processes a single key.
func (r *Router) HandleKey(key rune) {
	if key == domain.KeyInterrupt {
		r.interrupt()
		return
	}
	if r.session.Streaming() {
		return
	}

	switch {
	case key == domain.KeyEnter:
		r.submit()
	case key == domain.KeyBackspace:
		if len(r.buffer) > 0 {
			r.buffer = r.buffer[:len(r.buffer)-1]
			r.display.Write(eraseRune)
		}
	case key >= ' ' && key != utf8.RuneError:
		r.buffer = append(r.buffer, key)
		r.display.Write(string(key))
	}
}

// Line returns the unsubmitted input.
func (r *Router) Line() string {
	return string(r.buffer)
}

// Streaming reports whether input is suspended by a simulated server.
func (r *Router) Streaming() bool {
	return r.session.Streaming()
}

func (r *Router) interrupt() {
	r.display.WriteLine(interruptNotice)
	if r.session.Interrupt() {
		r.display.WriteLine(stoppedNotice)
		r.logger.Info("stream stopped", map[string]interface{}{"session": r.session.ID.String()})
	}
	r.buffer = r.buffer[:0]
	r.display.Write(r.prompt)
}

func (r *Router) submit() {
	r.display.WriteLine("")

	line := strings.TrimSpace(string(r.buffer))
	r.buffer = r.buffer[:0]
	if line != "" {
		r.logger.Debug("line submitted", map[string]interface{}{
			"session": r.session.ID.String(),
			"line":    line,
		})
		reply := r.processor.Process(line)
		if reply.StartsStream {
			r.display.WriteLine(reply.Text)
			r.session.StartStreaming()
			r.display.WriteLine(streamHint)
			r.logger.Info("stream started", map[string]interface{}{"session": r.session.ID.String()})
		} else if reply.Text != "" {
			r.writeLines(reply.Text)
		}
	}

	if !r.session.Streaming() {
		r.display.Write(r.prompt)
	}
}

func (r *Router) writeLines(text string) {
	for _, line := range strings.Split(text, "\n") {
		r.display.WriteLine(line)
	}
}
