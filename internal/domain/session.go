package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionMode is the input handling state of a session.
type SessionMode int

const (
	// ModeIdle accepts line input normally.
	ModeIdle SessionMode = iota
	// ModeStreaming swallows all input until an interrupt arrives.
	ModeStreaming
)

func (m SessionMode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeStreaming:
		return "streaming"
	default:
		return "unknown"
	}
}

// Session holds per-mount state shared by the router and the processor.
// The working directory is fixed for the life of the session.
type Session struct {
	ID         uuid.UUID
	User       string
	WorkingDir string
	StartedAt  time.Time

	mode SessionMode
}

// NewSession creates an idle session.
func NewSession(user, workingDir string, now time.Time) *Session {
	return &Session{
		ID:         uuid.New(),
		User:       user,
		WorkingDir: workingDir,
		StartedAt:  now,
		mode:       ModeIdle,
	}
}

// Mode reports the current input mode.
func (s *Session) Mode() SessionMode {
	return s.mode
}

// Streaming reports whether a simulated server is running.
func (s *Session) Streaming() bool {
	return s.mode == ModeStreaming
}

// StartStreaming moves idle -> streaming.
func (s *Session) StartStreaming() {
	s.mode = ModeStreaming
}

// Interrupt is the only way out of streaming. It reports whether a stream was stopped.
func (s *Session) Interrupt() bool {
	if s.mode != ModeStreaming {
		return false
	}
	s.mode = ModeIdle
	return true
}
