package browser

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/doeshing/bsterm/internal/domain"
	"github.com/doeshing/bsterm/internal/ports"
)

// Opener implements ports.LinkOpener with the platform URL handler.
type Opener struct {
	timeout  time.Duration
	lookPath func(string) (string, error)
	start    func(ctx context.Context, name string, args ...string) (wait func() error, err error)
}

// NewOpener builds an opener for the current platform.
func NewOpener() *Opener {
	return &Opener{
		timeout:  domain.DefaultLinkTimeout,
		lookPath: exec.LookPath,
		start:    startProcess,
	}
}

// Enabled reports whether a URL handler exists on this platform.
func (o *Opener) Enabled() bool {
	name, _ := o.command("")
	if name == "" {
		return false
	}
	_, err := o.lookPath(name)
	return err == nil
}

// Open launches the handler and returns without waiting for it.
func (o *Opener) Open(url string) error {
	name, args := o.command(url)
	if name == "" {
		return fmt.Errorf("opening links not supported on %s", runtime.GOOS)
	}
	if _, err := o.lookPath(name); err != nil {
		return fmt.Errorf("%s not found: %w", name, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	wait, err := o.start(ctx, name, args...)
	if err != nil {
		cancel()
		return fmt.Errorf("start %s: %w", name, err)
	}
	go func() {
		defer cancel()
		_ = wait()
	}()
	return nil
}

func (o *Opener) command(url string) (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{url}
	default:
		return "", nil
	}
}

func startProcess(ctx context.Context, name string, args ...string) (func() error, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd.Wait, nil
}

var _ ports.LinkOpener = (*Opener)(nil)
