package browser

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestOpenerStartsHandlerWithoutWaiting(t *testing.T) {
	if name, _ := NewOpener().command("x"); name == "" {
		t.Skipf("no URL handler on %s", runtime.GOOS)
	}

	started := make(chan []string, 1)
	release := make(chan struct{})
	o := &Opener{
		timeout:  time.Second,
		lookPath: func(name string) (string, error) { return "/usr/bin/" + name, nil },
		start: func(_ context.Context, name string, args ...string) (func() error, error) {
			started <- append([]string{name}, args...)
			return func() error { <-release; return nil }, nil
		},
	}

	if err := o.Open("https://docs.example.test"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	close(release)

	got := <-started
	if got[len(got)-1] != "https://docs.example.test" {
		t.Errorf("handler args = %v, want url last", got)
	}
}

func TestOpenerMissingHandler(t *testing.T) {
	if name, _ := NewOpener().command("x"); name == "" {
		t.Skipf("no URL handler on %s", runtime.GOOS)
	}
	o := &Opener{
		timeout:  time.Second,
		lookPath: func(string) (string, error) { return "", errors.New("not in PATH") },
		start:    startProcess,
	}
	if o.Enabled() {
		t.Error("Enabled() should be false without a handler")
	}
	err := o.Open("https://docs.example.test")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("Open() error = %v, want not found", err)
	}
}

func TestOpenerStartFailure(t *testing.T) {
	if name, _ := NewOpener().command("x"); name == "" {
		t.Skipf("no URL handler on %s", runtime.GOOS)
	}
	o := &Opener{
		timeout:  time.Second,
		lookPath: func(name string) (string, error) { return name, nil },
		start: func(context.Context, string, ...string) (func() error, error) {
			return nil, errors.New("exec format error")
		},
	}
	if err := o.Open("https://x.test"); err == nil || !strings.Contains(err.Error(), "exec format error") {
		t.Fatalf("Open() error = %v", err)
	}
}
