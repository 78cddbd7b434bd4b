package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/bsterm/internal/app"
	"github.com/doeshing/bsterm/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	return newRootCommand(container), nil
}

func newRootCommand(container *app.Container) *cobra.Command {
	root := &cobra.Command{
		Use:   "bsterm",
		Short: "bsterm - Ben's BS Manager demo terminal",
		Long:  "bsterm simulates the bs script manager in your terminal. Nothing you type is executed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunSession(cmd, container, commands.RunOptions{})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		commands.NewRunCommand(container),
		commands.NewExecCommand(container),
		commands.NewConfigCommand(container),
		commands.NewDoctorCommand(container),
		commands.NewVersionCommand(),
	)
	return root
}
