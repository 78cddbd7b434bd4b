package registry

import (
	"sort"

	"github.com/doeshing/bsterm/internal/domain"
	"github.com/doeshing/bsterm/internal/ports"
)

// MemoryStore keeps stored commands in a map for the life of a session.
type MemoryStore struct {
	entries map[string]domain.StoredCommand
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]domain.StoredCommand)}
}

// Get returns the entry stored under name.
func (m *MemoryStore) Get(name string) (domain.StoredCommand, bool, error) {
	cmd, ok := m.entries[name]
	return cmd, ok, nil
}

// Put inserts or replaces the entry.
func (m *MemoryStore) Put(cmd domain.StoredCommand) error {
	m.entries[cmd.Name] = cmd
	return nil
}

// Delete removes name and reports whether it existed.
func (m *MemoryStore) Delete(name string) (bool, error) {
	if _, ok := m.entries[name]; !ok {
		return false, nil
	}
	delete(m.entries, name)
	return true, nil
}

// Names lists entry names in lexicographic order.
func (m *MemoryStore) Names() ([]string, error) {
	names := make([]string, 0, len(m.entries))
	for name := range m.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close drops all entries.
func (m *MemoryStore) Close() error {
	m.entries = make(map[string]domain.StoredCommand)
	return nil
}

var _ ports.CommandRegistry = (*MemoryStore)(nil)
