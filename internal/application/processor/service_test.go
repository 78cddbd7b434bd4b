package processor

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/bsterm/internal/domain"
	"github.com/doeshing/bsterm/internal/infrastructure/registry"
)

var demoSeed = []domain.StoredCommand{
	{Name: "hello", Command: `echo "Hello World!"`, Notes: "My first bs command"},
	{Name: "status", Command: `echo "Everything is working great!"`, Notes: "Check system status"},
	{Name: "freestyle", Command: "open freestyle"},
}

func newTestService(t *testing.T, seed ...domain.StoredCommand) *Service {
	t.Helper()
	reg := registry.NewMemoryStore()
	if err := registry.Seed(reg, seed); err != nil {
		t.Fatal(err)
	}
	return &Service{
		Registry: reg,
		Session:  domain.NewSession("user", "/home/user", time.Unix(0, 0)),
		Now:      func() time.Time { return time.Date(2026, 10, 19, 9, 30, 5, 0, time.UTC) },
	}
}

func process(s *Service, line string) string {
	return s.Process(line).Text
}

func TestProcessBuiltins(t *testing.T) {
	s := newTestService(t)

	tests := []struct {
		line string
		want string
	}{
		{"pwd", "/home/user"},
		{"whoami", "user"},
		{"echo", ""},
		{"echo Hello World!", "Hello World!"},
		{`echo "spaced   out"`, "spaced   out"},
		{"clear", "\x1b[2J\x1b[H"},
		{"date", "Mon Oct 19 2026 09:30:05 GMT+0000 (UTC)"},
		{"ls", fakeListing},
		{"help", demoHelp},
		{"  pwd  ", "/home/user"},
		{"", ""},
		{"cowsay moo", "bash: cowsay: command not found"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := process(s, tt.line); got != tt.want {
				t.Errorf("Process(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestNamespaceHelp(t *testing.T) {
	s := newTestService(t)
	for _, line := range []string{"bs", "bs help", "bs --local", "bs --local help"} {
		if got := process(s, line); got != namespaceHelp {
			t.Errorf("Process(%q) did not return namespace help, got %q", line, got)
		}
	}
	if !strings.HasPrefix(namespaceHelp, "bs - Ben's BS Manager") {
		t.Errorf("unexpected help header: %q", strings.SplitN(namespaceHelp, "\n", 2)[0])
	}
}

func TestAddThenRun(t *testing.T) {
	s := newTestService(t)

	got := process(s, `bs add hello "echo Hello World!" -n "My first command"`)
	if want := "Added command 'hello': echo Hello World! [My first command]"; got != want {
		t.Fatalf("add = %q, want %q", got, want)
	}
	if got := process(s, "bs hello"); got != "Hello World!" {
		t.Errorf("run = %q, want %q", got, "Hello World!")
	}
	if got := process(s, "bs ls"); got != "hello: echo Hello World! [My first command]" {
		t.Errorf("ls = %q", got)
	}
}

func TestAddParsesFlags(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		reply string
		want  domain.StoredCommand
	}{
		{
			name:  "multi token command",
			line:  "bs add deploy git push origin main",
			reply: "Added command 'deploy': git push origin main",
			want:  domain.StoredCommand{Name: "deploy", Command: "git push origin main"},
		},
		{
			name:  "dir flag",
			line:  `bs add deploy "git push" --dir ~/projects/myapp`,
			reply: "Added command 'deploy': git push (runs in ~/projects/myapp)",
			want:  domain.StoredCommand{Name: "deploy", Command: "git push", Directory: "~/projects/myapp"},
		},
		{
			name:  "short flags interleaved",
			line:  "bs add build -d /src make -n compile all",
			reply: "Added command 'build': make all [compile] (runs in /src)",
			want:  domain.StoredCommand{Name: "build", Command: "make all", Notes: "compile", Directory: "/src"},
		},
		{
			name:  "cd uses working dir",
			line:  "bs add here pwd --cd",
			reply: "Added command 'here': pwd (runs in /home/user)",
			want:  domain.StoredCommand{Name: "here", Command: "pwd", Directory: "/home/user"},
		},
		{
			name:  "trailing flag without value is command text",
			line:  "bs add x ls -n",
			reply: "Added command 'x': ls -n",
			want:  domain.StoredCommand{Name: "x", Command: "ls -n"},
		},
		{
			name:  "empty notes are omitted",
			line:  `bs add x ls --notes ""`,
			reply: "Added command 'x': ls",
			want:  domain.StoredCommand{Name: "x", Command: "ls"},
		},
		{
			name:  "local flag is a no-op",
			line:  "bs --local add x ls",
			reply: "Added command 'x': ls",
			want:  domain.StoredCommand{Name: "x", Command: "ls"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t)
			if got := process(s, tt.line); got != tt.reply {
				t.Fatalf("reply = %q, want %q", got, tt.reply)
			}
			got, ok, err := s.Registry.Get(tt.want.Name)
			if err != nil || !ok {
				t.Fatalf("Get(%s) = %v, %v", tt.want.Name, ok, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("stored command mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	s := newTestService(t)
	tests := []struct {
		line string
		want string
	}{
		{"bs add", "Error: add requires a name and command"},
		{"bs add onlyname", "Error: add requires a name and command"},
		{"bs add x -n note", "Error: no command specified"},
		{"bs add x --cd", "Error: no command specified"},
	}
	for _, tt := range tests {
		if got := process(s, tt.line); got != tt.want {
			t.Errorf("Process(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
	if names, _ := s.Registry.Names(); len(names) != 0 {
		t.Errorf("failed adds stored entries: %v", names)
	}
}

func TestAddOverwrites(t *testing.T) {
	s := newTestService(t)
	process(s, `bs add deploy "git push" -n first -d /a`)
	process(s, `bs add deploy "make ship"`)

	if got := process(s, "bs ls"); got != "deploy: make ship" {
		t.Errorf("ls after overwrite = %q, want a single replaced entry", got)
	}
	cmd, _, _ := s.Registry.Get("deploy")
	if cmd.Directory != "" || cmd.Notes != "" {
		t.Errorf("overwrite merged old fields: %+v", cmd)
	}
}

func TestRemove(t *testing.T) {
	s := newTestService(t, demoSeed...)

	if got := process(s, "bs rm"); got != "Error: rm requires at least one command name" {
		t.Errorf("rm without args = %q", got)
	}
	if got := process(s, "bs rm hello ghost"); got != "Removed: hello" {
		t.Errorf("rm hello ghost = %q", got)
	}
	if got := process(s, "bs rm ghost phantom"); got != "No commands found: ghost, phantom" {
		t.Errorf("rm missing = %q", got)
	}
	if got := process(s, "bs rm status freestyle"); got != "Removed: status, freestyle" {
		t.Errorf("rm two = %q", got)
	}
	if got := process(s, "bs ls"); got != "No commands stored" {
		t.Errorf("ls after removing all = %q", got)
	}
}

func TestListSeededAndPrefix(t *testing.T) {
	s := newTestService(t, demoSeed...)

	want := strings.Join([]string{
		"freestyle: open freestyle",
		`hello: echo "Hello World!" [My first bs command]`,
		`status: echo "Everything is working great!" [Check system status]`,
	}, "\n")
	if got := process(s, "bs ls"); got != want {
		t.Errorf("ls =\n%s\nwant\n%s", got, want)
	}

	process(s, "bs add hey echo hey")
	if got := process(s, "bs ls he"); got != "hello: echo \"Hello World!\" [My first bs command]\nhey: echo hey" {
		t.Errorf("ls he = %q", got)
	}
	if got := process(s, "bs ls zz"); got != "No commands found with prefix: zz" {
		t.Errorf("ls zz = %q", got)
	}
}

func TestRunStoredCommand(t *testing.T) {
	s := newTestService(t, demoSeed...)
	process(s, "bs add greet echo 'hi there'")
	process(s, "bs add plain echo hi")
	process(s, "bs add deploy git push")
	process(s, "bs add bare echo")

	tests := []struct {
		line string
		want string
	}{
		{"bs hello", "Hello World!"},
		{"bs status", "Everything is working great!"},
		{"bs greet", "hi there"},
		{"bs plain", "hi"},
		{"bs plain ignored args", "hi"},
		{"bs deploy", "Executed: git push"},
		{"bs deploy --force origin", "Executed: git push --force origin"},
		{"bs freestyle", "Executed: open freestyle"},
		{"bs bare", "Executed: echo"},
		{"bs nope", "Command not found: nope"},
	}
	for _, tt := range tests {
		if got := process(s, tt.line); got != tt.want {
			t.Errorf("Process(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestEchoRoundTrip(t *testing.T) {
	s := newTestService(t)
	process(s, `bs add foo "echo hi"`)
	if got := process(s, "bs foo"); got != "hi" {
		t.Errorf("bs foo = %q, want hi", got)
	}
}

func TestMCPStartsStream(t *testing.T) {
	s := newTestService(t)
	for _, line := range []string{"bs mcp", "bs --local mcp"} {
		reply := s.Process(line)
		if !reply.StartsStream {
			t.Errorf("Process(%q) did not start a stream", line)
		}
		if reply.Text != "[MCP-INFO] Starting MCP server: bs-mcp-server" {
			t.Errorf("Process(%q) text = %q", line, reply.Text)
		}
	}
	if s.Process("bs ls").StartsStream {
		t.Error("bs ls should not start a stream")
	}

	reply := s.Process("bs mcp now")
	if reply.StartsStream {
		t.Error("bs mcp with arguments should not start a stream")
	}
	if reply.Text != "[MCP-INFO] Starting MCP server: bs-mcp-server" {
		t.Errorf("bs mcp now text = %q", reply.Text)
	}
}

func TestCompletionScript(t *testing.T) {
	s := newTestService(t)
	got := process(s, "bs completion")
	if !strings.HasPrefix(got, "# bs completion script") {
		t.Errorf("completion header = %q", strings.SplitN(got, "\n", 2)[0])
	}
	if !strings.HasSuffix(got, "complete -F _bs_completion bs") {
		t.Errorf("completion script should end with the complete builtin, got %q", got[len(got)-40:])
	}
}

type linkRecorder struct {
	urls []string
	err  error
}

func (l *linkRecorder) Open(url string) error {
	l.urls = append(l.urls, url)
	return l.err
}

func TestDocsShortcutOpensLink(t *testing.T) {
	links := &linkRecorder{err: errors.New("no browser")}
	s := newTestService(t, demoSeed...)
	s.Links = links
	s.DocsURL = "https://docs.example.test"

	if got := process(s, "bs freestyle"); got != "Executed: open freestyle" {
		t.Errorf("bs freestyle = %q", got)
	}
	process(s, "bs freestyle now")
	process(s, "bs ls")

	if diff := cmp.Diff([]string{"https://docs.example.test"}, links.urls); diff != "" {
		t.Errorf("opened links mismatch (-want +got):\n%s", diff)
	}
}

type failingRegistry struct{ err error }

func (f failingRegistry) Get(string) (domain.StoredCommand, bool, error) {
	return domain.StoredCommand{}, false, f.err
}
func (f failingRegistry) Put(domain.StoredCommand) error { return f.err }
func (f failingRegistry) Delete(string) (bool, error)    { return false, f.err }
func (f failingRegistry) Names() ([]string, error)       { return nil, f.err }
func (f failingRegistry) Close() error                   { return nil }

func TestRegistryFailuresBecomeReplies(t *testing.T) {
	s := &Service{Registry: failingRegistry{err: errors.New("database is locked")}}

	tests := []struct {
		line string
		want string
	}{
		{"bs add x ls", "Error: add: database is locked"},
		{"bs rm x", "Error: rm: database is locked"},
		{"bs ls", "Error: ls: database is locked"},
		{"bs x", "Error: run: database is locked"},
	}
	for _, tt := range tests {
		if got := process(s, tt.line); got != tt.want {
			t.Errorf("Process(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestTokenizeFallsBackOnUnbalancedQuotes(t *testing.T) {
	got := tokenize(`echo "unterminated`)
	if diff := cmp.Diff([]string{"echo", `"unterminated`}, got); diff != "" {
		t.Errorf("tokenize mismatch (-want +got):\n%s", diff)
	}
}
