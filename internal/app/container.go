package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/bsterm/internal/application/doctor"
	"github.com/doeshing/bsterm/internal/application/processor"
	"github.com/doeshing/bsterm/internal/application/router"
	"github.com/doeshing/bsterm/internal/domain"
	"github.com/doeshing/bsterm/internal/infrastructure/browser"
	"github.com/doeshing/bsterm/internal/infrastructure/config"
	"github.com/doeshing/bsterm/internal/infrastructure/registry"
	"github.com/doeshing/bsterm/internal/infrastructure/terminal"
	"github.com/doeshing/bsterm/internal/pkg/logger"
	"github.com/doeshing/bsterm/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Logger         *logger.ZapLogger
	Registries     ports.RegistryFactory
	Links          *browser.Opener
	DoctorService  *doctor.Service
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(verbose, cfg.Logging.File)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	registries := registry.NewFactory()
	links := browser.NewOpener()

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		ConfigPath:     cfgLoader.Path(),
		Registries:     registries,
		Links:          links,
		IsTerminal: func() bool {
			return terminal.IsTerminal(os.Stdin.Fd())
		},
	}

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Logger:         log,
		Registries:     registries,
		Links:          links,
		DoctorService:  doctorService,
	}, nil
}

// Session bundles the per-session state, registry and processor.
type Session struct {
	State     *domain.Session
	Registry  ports.CommandRegistry
	Processor *processor.Service

	logger *logger.ZapLogger
	prompt string
	now    func() time.Time
}

// OpenSession starts a fresh session on backend, or on the configured
// backend when backend is empty. The registry is seeded from the config.
func (c *Container) OpenSession(backend domain.RegistryBackend) (*Session, error) {
	if backend == "" {
		backend = c.Config.Registry.Backend
	}
	reg, err := c.Registries.Open(backend)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	if err := registry.Seed(reg, c.Config.Seed); err != nil {
		_ = reg.Close()
		return nil, err
	}

	state := domain.NewSession(c.Config.Session.User, c.Config.Session.WorkingDir, time.Now())
	svc := &processor.Service{
		Registry: reg,
		Session:  state,
		Logger:   c.Logger,
		DocsURL:  c.Config.Links.DocsURL,
	}
	if c.Config.Links.Enabled && c.Links != nil {
		svc.Links = c.Links
	}

	c.Logger.Info("session started", map[string]interface{}{
		"session": state.ID.String(),
		"backend": string(backend),
		"seeded":  len(c.Config.Seed),
	})

	return &Session{
		State:     state,
		Registry:  reg,
		Processor: svc,
		logger:    c.Logger,
		prompt:    c.Config.Session.Prompt,
		now:       time.Now,
	}, nil
}

// Attach builds the input router that renders this session on display.
func (s *Session) Attach(display ports.Display) *router.Router {
	return router.New(s.Processor, display, s.State, s.logger, s.prompt)
}

// Close discards the registry and logs the session length.
func (s *Session) Close() error {
	s.logger.Info("session ended", map[string]interface{}{
		"session":  s.State.ID.String(),
		"duration": strings.TrimSpace(humanize.RelTime(s.State.StartedAt, s.now(), "", "")),
	})
	_ = s.logger.Sync()
	if err := s.Registry.Close(); err != nil {
		return fmt.Errorf("close registry: %w", err)
	}
	return nil
}
