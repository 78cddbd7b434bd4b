package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/bsterm/internal/app"
	configinfra "github.com/doeshing/bsterm/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with all subcommands
func NewConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect bsterm configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd.Context(), cmd.OutOrStdout(), container)
		},
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show full configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfiguration(cmd.Context(), cmd.OutOrStdout(), container)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file path",
			RunE: func(cmd *cobra.Command, args []string) error {
				if container.ConfigLoader == nil {
					return fmt.Errorf(ErrConfigLoaderUnavailable)
				}
				fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
				return nil
			},
		},
	)

	return configCmd
}

// showConfiguration re-reads the file so edits made since startup show up.
func showConfiguration(ctx context.Context, out io.Writer, container *app.Container) error {
	if container.ConfigProvider == nil {
		return fmt.Errorf(ErrConfigLoaderUnavailable)
	}
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return err
	}
	data, err := configinfra.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
