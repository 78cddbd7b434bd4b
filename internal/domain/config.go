package domain

// Config mirrors ~/.bsterm/config.yaml.
type Config struct {
	ConfigFormatVersion string           `yaml:"config_format_version"`
	Session             SessionSettings  `yaml:"session"`
	Links               LinkSettings     `yaml:"links"`
	Registry            RegistrySettings `yaml:"registry"`
	Logging             LoggingSettings  `yaml:"logging"`
	Seed                []StoredCommand  `yaml:"seed"`
}

// SessionSettings controls the simulated terminal session.
type SessionSettings struct {
	Prompt     string `yaml:"prompt"`
	User       string `yaml:"user"`
	WorkingDir string `yaml:"working_dir"`
	Banner     bool   `yaml:"banner"`
}

// LinkSettings configures the documentation link shortcut.
type LinkSettings struct {
	Enabled bool   `yaml:"enabled"`
	DocsURL string `yaml:"docs_url"`
}

// RegistrySettings selects the stored-command backend.
type RegistrySettings struct {
	Backend RegistryBackend `yaml:"backend"`
}

// LoggingSettings routes verbose logs.
type LoggingSettings struct {
	File string `yaml:"file"`
}

// RegistryBackend names a CommandRegistry implementation.
type RegistryBackend string

const (
	BackendMemory RegistryBackend = "memory"
	BackendSQLite RegistryBackend = "sqlite"
)
