package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/bsterm/internal/domain"
	"github.com/doeshing/bsterm/internal/ports"
)

// LinkChecker reports whether external links can be opened.
type LinkChecker interface {
	Enabled() bool
}

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	ConfigPath     string
	Registries     ports.RegistryFactory
	Links          LinkChecker
	IsTerminal     func() bool
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, s.configCheck(cfg))
	checks = append(checks, s.registryCheck(cfg))

	if s.IsTerminal != nil {
		if s.IsTerminal() {
			checks = append(checks, ok("Terminal", "stdin is a tty, raw mode available"))
		} else {
			checks = append(checks, warn("Terminal", "stdin is not a tty, input is replayed line by line"))
		}
	}

	checks = append(checks, s.linkCheck(cfg))

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) configCheck(cfg domain.Config) domain.HealthCheck {
	details := fmt.Sprintf("loaded v%s", cfg.ConfigFormatVersion)
	if s.ConfigPath != "" {
		if info, err := os.Stat(s.ConfigPath); err == nil {
			details = fmt.Sprintf("%s from %s (modified %s)", details, s.ConfigPath, humanize.Time(info.ModTime()))
		}
	}
	return ok("Config file", details)
}

func (s *Service) registryCheck(cfg domain.Config) domain.HealthCheck {
	if s.Registries == nil {
		return warn("Registry", "registry factory not initialized")
	}
	backend := cfg.Registry.Backend
	reg, err := s.Registries.Open(backend)
	if err != nil {
		return fail("Registry", err.Error())
	}
	defer reg.Close()

	for _, cmd := range cfg.Seed {
		if err := reg.Put(cmd); err != nil {
			return fail("Registry", fmt.Sprintf("%s: seed %s: %v", backend, cmd.Name, err))
		}
	}
	names, err := reg.Names()
	if err != nil {
		return fail("Registry", fmt.Sprintf("%s: list: %v", backend, err))
	}
	return ok("Registry", fmt.Sprintf("%s backend, %d seed commands", backend, len(names)))
}

func (s *Service) linkCheck(cfg domain.Config) domain.HealthCheck {
	if !cfg.Links.Enabled {
		return warn("Links", "disabled in config")
	}
	if s.Links == nil || !s.Links.Enabled() {
		return warn("Links", "no URL handler found, bs freestyle will not open "+cfg.Links.DocsURL)
	}
	return ok("Links", cfg.Links.DocsURL)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
