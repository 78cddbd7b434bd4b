package config

import (
	"errors"
	"fmt"

	"github.com/doeshing/bsterm/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if cfg.Session.Prompt == "" {
		return errors.New("session.prompt must not be empty")
	}
	switch cfg.Registry.Backend {
	case domain.BackendMemory, domain.BackendSQLite:
	default:
		return fmt.Errorf("registry.backend must be memory|sqlite, got %q", cfg.Registry.Backend)
	}
	if cfg.Links.Enabled && cfg.Links.DocsURL == "" {
		return errors.New("links.docs_url must be set when links are enabled")
	}
	return validateSeed(cfg.Seed)
}

func validateSeed(seed []domain.StoredCommand) error {
	seen := make(map[string]struct{}, len(seed))
	for i, cmd := range seed {
		if cmd.Name == "" {
			return fmt.Errorf("seed[%d]: name is required", i)
		}
		if cmd.Command == "" {
			return fmt.Errorf("seed %s: command is required", cmd.Name)
		}
		if _, dup := seen[cmd.Name]; dup {
			return fmt.Errorf("seed %s: duplicate name", cmd.Name)
		}
		seen[cmd.Name] = struct{}{}
	}
	return nil
}
