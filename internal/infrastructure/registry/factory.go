package registry

import (
	"fmt"

	"github.com/doeshing/bsterm/internal/domain"
	"github.com/doeshing/bsterm/internal/ports"
)

// Factory opens registries by backend name.
type Factory struct{}

// NewFactory returns a Factory.
func NewFactory() Factory {
	return Factory{}
}

// Open returns an empty registry for backend.
func (Factory) Open(backend domain.RegistryBackend) (ports.CommandRegistry, error) {
	switch backend {
	case domain.BackendMemory, "":
		return NewMemoryStore(), nil
	case domain.BackendSQLite:
		return NewSQLiteStore()
	default:
		return nil, fmt.Errorf("unsupported registry backend: %s", backend)
	}
}

// Seed copies cmds into reg.
func Seed(reg ports.CommandRegistry, cmds []domain.StoredCommand) error {
	for _, cmd := range cmds {
		if err := reg.Put(cmd); err != nil {
			return fmt.Errorf("seed %s: %w", cmd.Name, err)
		}
	}
	return nil
}

var _ ports.RegistryFactory = Factory{}
