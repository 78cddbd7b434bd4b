package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/bsterm/internal/domain"
	configinfra "github.com/doeshing/bsterm/internal/infrastructure/config"
)

const testConfig = `session:
  user: ben
  working_dir: /srv/demo
links:
  enabled: false
registry:
  backend: sqlite
seed:
  - name: deploy
    command: ./deploy.sh
`

func buildTestContainer(t *testing.T) *Container {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(configinfra.EnvConfigPath, path)

	c, err := BuildContainer(context.Background(), false)
	if err != nil {
		t.Fatalf("BuildContainer() error = %v", err)
	}
	return c
}

func TestOpenSessionSeedsConfiguredBackend(t *testing.T) {
	c := buildTestContainer(t)

	s, err := c.OpenSession("")
	if err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}
	defer s.Close()

	names, err := s.Registry.Names()
	if err != nil {
		t.Fatalf("Names() error = %v", err)
	}
	if diff := cmp.Diff([]string{"deploy"}, names); diff != "" {
		t.Errorf("seeded names mismatch (-want +got):\n%s", diff)
	}
	if s.Processor.Links != nil {
		t.Error("links disabled in config but opener attached")
	}

	tests := []struct {
		line string
		want string
	}{
		{"whoami", "ben"},
		{"pwd", "/srv/demo"},
		{"bs deploy --prod", "Executed: ./deploy.sh --prod"},
	}
	for _, tt := range tests {
		if got := s.Processor.Process(tt.line).Text; got != tt.want {
			t.Errorf("Process(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSessionsDoNotShareRegistries(t *testing.T) {
	c := buildTestContainer(t)

	first, err := c.OpenSession(domain.BackendMemory)
	if err != nil {
		t.Fatal(err)
	}
	first.Processor.Process("bs add tmp echo hi")
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	second, err := c.OpenSession(domain.BackendMemory)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()
	if got := second.Processor.Process("bs tmp").Text; got != "Command not found: tmp" {
		t.Errorf("second session sees first session's command: %q", got)
	}
	if first.State.ID == second.State.ID {
		t.Error("sessions share an id")
	}
}
