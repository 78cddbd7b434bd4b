// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The simulation core (processor and router) depends only on these
// abstractions; the infrastructure layer provides the adapters: registry
// backends, the host terminal display, the link opener and logging.
package ports

import (
	"context"

	"github.com/doeshing/bsterm/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.bsterm/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CommandRegistry is the name -> StoredCommand mapping of one session.
// Put overwrites an existing entry entirely; Names is sorted lexicographically.
type CommandRegistry interface {
	Get(name string) (domain.StoredCommand, bool, error)
	Put(cmd domain.StoredCommand) error
	Delete(name string) (bool, error)
	Names() ([]string, error)
	Close() error
}

// RegistryFactory opens a fresh, empty registry for a new session.
type RegistryFactory interface {
	Open(backend domain.RegistryBackend) (CommandRegistry, error)
}

// LineProcessor maps one submitted line to a reply.
type LineProcessor interface {
	Process(line string) domain.Reply
}

// Display is the host surface the router writes to.
// WriteLine terminates the text with a carriage return and line feed.
type Display interface {
	Write(text string)
	WriteLine(text string)
}

// LinkOpener opens an external URL without waiting for it.
type LinkOpener interface {
	Open(url string) error
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
