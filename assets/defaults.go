package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// CompletionScript is the illustrative bash completion printed by `bs completion`.
//
//go:embed defaults/completion.bash
var CompletionScript string
