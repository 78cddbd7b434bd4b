package processor

import (
	"fmt"
	"strings"

	"github.com/doeshing/bsterm/assets"
	"github.com/doeshing/bsterm/internal/domain"
)

const mcpStarted = "[MCP-INFO] Starting MCP server: bs-mcp-server"

type subcommand func(s *Service, args []string) domain.Reply

func subcommands() map[string]subcommand {
	return map[string]subcommand{
		"add":        (*Service).add,
		"rm":         (*Service).remove,
		"ls":         (*Service).list,
		"completion": func(*Service, []string) domain.Reply { return domain.Text(assets.CompletionScript) },
		"mcp":        (*Service).mcp,
		"help":       func(*Service, []string) domain.Reply { return domain.Text(namespaceHelp) },
	}
}

// namespace dispatches `bs [--local] <sub> ...`. --local is accepted and ignored.
func (s *Service) namespace(args []string) domain.Reply {
	if len(args) > 0 && args[0] == domain.LocalFlag {
		s.log().Debug("local flag accepted", map[string]interface{}{"session": s.sessionID()})
		args = args[1:]
	}
	if len(args) == 0 {
		return domain.Text(namespaceHelp)
	}
	if fn, ok := subcommands()[args[0]]; ok {
		return fn(s, args[1:])
	}
	return s.run(args[0], args[1:])
}

// mcp only holds the terminal when invoked bare; extra arguments print the
// banner and return to the prompt.
func (s *Service) mcp(args []string) domain.Reply {
	return domain.Reply{Text: mcpStarted, StartsStream: len(args) == 0}
}

func (s *Service) add(args []string) domain.Reply {
	if len(args) < 2 {
		return domain.Text("Error: add requires a name and command")
	}

	cmd := domain.StoredCommand{Name: args[0]}
	for i := 1; i < len(args); i++ {
		hasValue := i+1 < len(args)
		switch arg := args[i]; {
		case (arg == "-n" || arg == "--notes") && hasValue:
			cmd.Notes = args[i+1]
			i++
		case (arg == "-d" || arg == "--dir") && hasValue:
			cmd.Directory = args[i+1]
			i++
		case arg == "--cd":
			cmd.Directory = s.workingDir()
		default:
			if cmd.Command != "" {
				cmd.Command += " "
			}
			cmd.Command += arg
		}
	}
	if cmd.Command == "" {
		return domain.Text("Error: no command specified")
	}

	if err := s.Registry.Put(cmd); err != nil {
		return s.storageFailure("add", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Added command '%s': %s", cmd.Name, cmd.Command)
	if cmd.Notes != "" {
		fmt.Fprintf(&b, " [%s]", cmd.Notes)
	}
	if cmd.Directory != "" {
		fmt.Fprintf(&b, " (runs in %s)", cmd.Directory)
	}
	return domain.Text(b.String())
}

func (s *Service) remove(args []string) domain.Reply {
	if len(args) == 0 {
		return domain.Text("Error: rm requires at least one command name")
	}

	var removed []string
	for _, name := range args {
		ok, err := s.Registry.Delete(name)
		if err != nil {
			return s.storageFailure("rm", err)
		}
		if ok {
			removed = append(removed, name)
		}
	}
	if len(removed) == 0 {
		return domain.Text("No commands found: " + strings.Join(args, ", "))
	}
	return domain.Text("Removed: " + strings.Join(removed, ", "))
}

func (s *Service) list(args []string) domain.Reply {
	var prefix string
	if len(args) > 0 {
		prefix = args[0]
	}

	names, err := s.Registry.Names()
	if err != nil {
		return s.storageFailure("ls", err)
	}
	if len(names) == 0 {
		return domain.Text("No commands stored")
	}

	lines := make([]string, 0, len(names))
	for _, name := range names {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		cmd, ok, err := s.Registry.Get(name)
		if err != nil {
			return s.storageFailure("ls", err)
		}
		if !ok {
			continue
		}
		line := name + ": " + cmd.Command
		if cmd.Notes != "" {
			line += " [" + cmd.Notes + "]"
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return domain.Text("No commands found with prefix: " + prefix)
	}
	return domain.Text(strings.Join(lines, "\n"))
}

// run pretends to execute a stored command.
func (s *Service) run(name string, args []string) domain.Reply {
	cmd, ok, err := s.Registry.Get(name)
	if err != nil {
		return s.storageFailure("run", err)
	}
	if !ok {
		return domain.Text("Command not found: " + name)
	}

	full := cmd.Command
	if len(args) > 0 {
		full += " " + strings.Join(args, " ")
	}
	if out, ok := echoOutput(cmd.Command); ok {
		return domain.Text(out)
	}
	return domain.Text("Executed: " + full)
}
