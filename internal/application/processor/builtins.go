package processor

import (
	"strings"

	"github.com/doeshing/bsterm/internal/domain"
)

// clearScreen erases the display and homes the cursor.
const clearScreen = "\x1b[2J\x1b[H"

type builtin func(s *Service, args []string) string

func builtins() map[string]builtin {
	return map[string]builtin{
		"help":   func(*Service, []string) string { return demoHelp },
		"clear":  func(*Service, []string) string { return clearScreen },
		"ls":     func(*Service, []string) string { return fakeListing },
		"pwd":    func(s *Service, _ []string) string { return s.workingDir() },
		"whoami": func(s *Service, _ []string) string { return s.user() },
		"date":   func(s *Service, _ []string) string { return s.now().Format(domain.DateFormat) },
		"echo":   func(_ *Service, args []string) string { return strings.Join(args, " ") },
	}
}
