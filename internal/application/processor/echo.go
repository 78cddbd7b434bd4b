package processor

import (
	"regexp"
	"strings"
)

// Demo affordance: stored commands built on echo "print" their argument so
// the terminal has something to show. It is the only place stored command
// text is inspected.
var (
	quotedEcho = regexp.MustCompile(`echo\s+["']([^"']+)["']`)
	plainEcho  = regexp.MustCompile(`echo\s+(.+)`)

	quoteStripper = strings.NewReplacer(`"`, "", `'`, "")
)

// echoOutput returns what an echo-based stored command would print.
func echoOutput(command string) (string, bool) {
	if !strings.Contains(command, "echo") {
		return "", false
	}
	m := quotedEcho.FindStringSubmatch(command)
	if m == nil {
		m = plainEcho.FindStringSubmatch(command)
	}
	if m == nil {
		return "", false
	}
	return quoteStripper.Replace(m[1]), true
}
