package domain

// StoredCommand is one named shortcut kept in the registry. The command text
// is opaque and never executed.
type StoredCommand struct {
	Name      string `yaml:"name"`
	Command   string `yaml:"command"`
	Notes     string `yaml:"notes,omitempty"`
	Directory string `yaml:"directory,omitempty"`
}

// Reply is the processor's answer to one submitted line.
type Reply struct {
	Text string
	// StartsStream puts the input router into streaming mode after Text is shown.
	StartsStream bool
}

// Text wraps a plain reply.
func Text(s string) Reply {
	return Reply{Text: s}
}
