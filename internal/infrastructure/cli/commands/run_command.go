package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/bsterm/internal/app"
	"github.com/doeshing/bsterm/internal/application/processor"
	"github.com/doeshing/bsterm/internal/domain"
	"github.com/doeshing/bsterm/internal/infrastructure/terminal"
)

// RunOptions overrides config values for one session.
type RunOptions struct {
	Backend  string
	NoBanner bool
}

// NewRunCommand creates the run command
func NewRunCommand(container *app.Container) *cobra.Command {
	var opts RunOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start an interactive bs session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunSession(cmd, container, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Backend, flagBackend, "", "Registry backend (memory|sqlite, default from config)")
	cmd.Flags().BoolVar(&opts.NoBanner, flagNoBanner, false, "Skip the welcome banner")
	return cmd
}

// RunSession hosts one session on the command's input and output. A tty is
// switched to raw mode for the duration; any other input is replayed with
// newlines treated as Enter.
func RunSession(cmd *cobra.Command, container *app.Container, opts RunOptions) (err error) {
	session, err := container.OpenSession(domain.RegistryBackend(opts.Backend))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			container.Logger.Error("close session", cerr, nil)
			if err == nil {
				err = cerr
			}
		}
	}()

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	restore, raw, err := enterRawMode(in)
	if err != nil {
		return err
	}
	if raw {
		defer func() {
			if rerr := restore(); rerr != nil {
				container.Logger.Error("restore terminal", rerr, nil)
				err = errors.Join(err, fmt.Errorf("restore terminal (run `stty sane` to recover): %w", rerr))
			}
		}()
	}
	lineMode := !raw

	display := terminal.NewDisplay(out)
	rt := session.Attach(display)

	banner := ""
	if container.Config.Session.Banner && !opts.NoBanner {
		banner = processor.Banner
	}
	rt.Start(banner)

	host := terminal.NewHost(rt, container.Logger, lineMode)
	if err := host.Run(cmd.Context(), in); err != nil {
		return err
	}
	display.WriteLine("")

	if err := display.Err(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// enterRawMode switches in to raw mode when it is a tty. raw is false for
// pipes and files, which are replayed in line mode.
var enterRawMode = func(in io.Reader) (restore func() error, raw bool, err error) {
	fd, ok := terminalFd(in)
	if !ok {
		return nil, false, nil
	}
	restore, err = terminal.MakeRaw(fd)
	if err != nil {
		return nil, false, err
	}
	return restore, true, nil
}

func terminalFd(in io.Reader) (int, bool) {
	f, ok := in.(*os.File)
	if !ok || !terminal.IsTerminal(f.Fd()) {
		return 0, false
	}
	return int(f.Fd()), true
}
