package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/bsterm/assets"
	appconfig "github.com/doeshing/bsterm/internal/application/config"
	"github.com/doeshing/bsterm/internal/domain"
	"github.com/doeshing/bsterm/internal/pkg/filesystem"
	"github.com/doeshing/bsterm/internal/ports"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "BSTERM_CONFIG"

// FileLoader loads YAML configuration from ~/.bsterm/config.yaml (overridable via BSTERM_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is created from the
// embedded defaults.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
			return domain.Config{}, fmt.Errorf("write default config: %w", err)
		}
		data = assets.DefaultConfigYAML
	}

	cfg, err := Parse(data)
	if err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := appconfig.Validate(cfg); err != nil {
		return domain.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the resolved config file path.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".bsterm", "config.yaml")
}

// Parse decodes YAML on top of the embedded defaults, so absent keys keep
// their default values while explicit ones (including `seed: []`) win.
func Parse(data []byte) (domain.Config, error) {
	cfg, err := Default()
	if err != nil {
		return domain.Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

// Default returns the embedded default configuration.
func Default() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("embedded default config: %w", err)
	}
	return hydrateDefaults(cfg), nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg domain.Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func ensureConfigDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, domain.DirectoryPermissions)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Session.Prompt == "" {
		cfg.Session.Prompt = domain.DefaultPrompt
	}
	if cfg.Session.User == "" {
		cfg.Session.User = domain.DefaultUser
	}
	if cfg.Session.WorkingDir == "" {
		cfg.Session.WorkingDir = domain.DefaultWorkingDir
	}
	if cfg.Links.DocsURL == "" {
		cfg.Links.DocsURL = domain.DefaultDocsURL
	}
	if cfg.Registry.Backend == "" {
		cfg.Registry.Backend = domain.BackendMemory
	}
	if cfg.Logging.File != "" {
		cfg.Logging.File = expandPath(cfg.Logging.File)
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
