// Package processor maps a submitted terminal line to the simulated output
// of the bs script manager. Nothing is ever executed; replies are canned or
// derived from the session's command registry.
package processor

import (
	"fmt"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/doeshing/bsterm/internal/domain"
	"github.com/doeshing/bsterm/internal/pkg/logger"
	"github.com/doeshing/bsterm/internal/ports"
)

// docsLine opens the documentation site when typed verbatim.
const docsLine = "bs freestyle"

// Service is the command processor of one session.
type Service struct {
	Registry ports.CommandRegistry
	Session  *domain.Session
	Logger   ports.Logger

	// Links is optional; without it the docs shortcut only logs.
	Links   ports.LinkOpener
	DocsURL string

	// Now defaults to time.Now.
	Now func() time.Time
}

// Process handles one line. The result is always a reply, never an error:
// misuse and storage failures are described in the reply text.
func (s *Service) Process(line string) domain.Reply {
	line = strings.TrimSpace(line)
	if line == docsLine {
		s.openDocs()
	}

	tokens := tokenize(line)
	if len(tokens) == 0 {
		return domain.Reply{}
	}
	s.log().Debug("processing line", map[string]interface{}{
		"session": s.sessionID(),
		"verb":    tokens[0],
		"args":    len(tokens) - 1,
	})

	verb, args := tokens[0], tokens[1:]
	if verb == domain.NamespaceCommand {
		return s.namespace(args)
	}
	if fn, ok := builtins()[verb]; ok {
		return domain.Text(fn(s, args))
	}
	return domain.Text(fmt.Sprintf("bash: %s: command not found", verb))
}

// tokenize splits like a POSIX shell so quoted arguments stay whole. Lines
// with unbalanced quotes fall back to plain whitespace splitting.
func tokenize(line string) []string {
	words, err := shellquote.Split(line)
	if err != nil {
		return strings.Fields(line)
	}
	return words
}

func (s *Service) openDocs() {
	if s.Links == nil || s.DocsURL == "" {
		return
	}
	if err := s.Links.Open(s.DocsURL); err != nil {
		s.log().Warn("open docs link failed", map[string]interface{}{
			"url":   s.DocsURL,
			"error": err.Error(),
		})
	}
}

// storageFailure reports a registry error without ending the session.
func (s *Service) storageFailure(op string, err error) domain.Reply {
	s.log().Error("registry "+op+" failed", err, map[string]interface{}{"session": s.sessionID()})
	return domain.Text(fmt.Sprintf("Error: %s: %v", op, err))
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) log() ports.Logger {
	if s.Logger == nil {
		return logger.NewNop()
	}
	return s.Logger
}

func (s *Service) sessionID() string {
	if s.Session == nil {
		return ""
	}
	return s.Session.ID.String()
}

func (s *Service) workingDir() string {
	if s.Session == nil {
		return domain.DefaultWorkingDir
	}
	return s.Session.WorkingDir
}

func (s *Service) user() string {
	if s.Session == nil || s.Session.User == "" {
		return domain.DefaultUser
	}
	return s.Session.User
}

var _ ports.LineProcessor = (*Service)(nil)
