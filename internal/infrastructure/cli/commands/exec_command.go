package commands

import (
	"fmt"
	"io"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/doeshing/bsterm/internal/app"
	"github.com/doeshing/bsterm/internal/domain"
)

// NewExecCommand creates the exec command
func NewExecCommand(container *app.Container) *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "exec <line...>",
		Short: "Process a single line in a fresh session",
		Example: `  bsterm exec -- bs ls
  bsterm exec "bs add hi 'echo hi there'"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execLine(cmd.OutOrStdout(), container, domain.RegistryBackend(backend), args)
		},
	}

	cmd.Flags().StringVar(&backend, flagBackend, "", "Registry backend (memory|sqlite, default from config)")
	return cmd
}

func execLine(out io.Writer, container *app.Container, backend domain.RegistryBackend, args []string) error {
	session, err := container.OpenSession(backend)
	if err != nil {
		return err
	}

	reply := session.Processor.Process(lineFromArgs(args))
	if reply.Text != "" {
		fmt.Fprintln(out, reply.Text)
	}
	return session.Close()
}

// lineFromArgs keeps a single argument verbatim and re-quotes several so
// words the shell already split stay intact.
func lineFromArgs(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return shellquote.Join(args...)
}
