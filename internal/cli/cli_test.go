package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/surepatch/pkg/component"
	"github.com/matzehuels/surepatch/pkg/config"
	"github.com/matzehuels/surepatch/pkg/errors"
	"github.com/matzehuels/surepatch/pkg/inventory"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	swapOutput(t, &buf)

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(&buf)
	root.SetErr(&buf)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}
	sort.Strings(got)

	want := []string{"completion", "components", "config", "platform", "project", "set"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("subcommands mismatch (-want +got):\n%s", diff)
	}
}

func TestComponentsList(t *testing.T) {
	out, err := execute(t, "components", "--list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"requirements/auto/system/file", "os/auto/system/none", "any/manual/user/none", "any/auto/user/file"} {
		if !strings.Contains(out, want) {
			t.Errorf("--list output missing %q:\n%s", want, out)
		}
	}
}

func TestComponentsExtract(t *testing.T) {
	req := writeFile(t, "requirements.txt", "requests==2.31.0\n# pinned\nurllib3==2.0.7\n")

	out, err := execute(t, "components", "--target", "requirements", "--file", req)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"requests", "2.31.0", "urllib3", "2.0.7", "2 components"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestComponentsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing target", []string{"components"}, errors.ErrCodeInvalidInput},
		{"missing file", []string{"components", "-t", "gemfile_lock", "-f", "/nonexistent/Gemfile.lock"}, errors.ErrCodeFileNotFound},
		{"unsupported", []string{"components", "-t", "gemfile", "--format", "system"}, errors.ErrCodeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestMissingConfig(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "platform", "show")
	if !errors.Is(err, errors.ErrCodeConfigNotFound) {
		t.Fatalf("error = %v, want CONFIG_NOT_FOUND", err)
	}
	if errors.Hint(err) == "" {
		t.Error("missing config should carry a hint")
	}
}

func TestConfigSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	out, err := execute(t, "--config", path, "config", "save", "--team", "acme", "--user", "alice", "--password", "secret")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("output %q should name the file", out)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Team != "acme" || cfg.User != "alice" || cfg.Password != "secret" {
		t.Errorf("loaded %+v", cfg)
	}
}

func TestConfigSavePromptsForPassword(t *testing.T) {
	swapAskOne(t, mockAskOne(false, "typed"))
	path := filepath.Join(t.TempDir(), config.FileName)

	if _, err := execute(t, "--config", path, "config", "save", "--team", "acme", "--user", "alice"); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Password != "typed" {
		t.Errorf("password = %q, want prompted value", cfg.Password)
	}
}

// fakeService is a minimal inventory service.
type fakeService struct {
	mu   sync.Mutex
	org  inventory.Organization
	sets map[string]inventory.ComponentSet
}

func newFakeService(t *testing.T) (*fakeService, string) {
	t.Helper()
	s := &fakeService{
		org: inventory.Organization{
			Name: "acme",
			Platforms: []inventory.Platform{{
				Name:        "web",
				Description: "public web servers",
				Projects: []inventory.Project{{
					Name:                "shop",
					CurrentComponentSet: inventory.ComponentSet{Name: "1.3"},
				}},
			}},
		},
		sets: map[string]inventory.ComponentSet{},
	}

	r := chi.NewRouter()
	r.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "t0k3n"})
	})
	r.Get("/api/organization", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		_ = json.NewEncoder(w).Encode(s.org)
	})
	r.Post("/api/platforms/{platform}/projects/{project}/sets", func(w http.ResponseWriter, r *http.Request) {
		var set inventory.ComponentSet
		if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		s.sets[chi.URLParam(r, "project")] = set
		s.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), config.FileName)
	cfg := &config.Config{Team: "acme", User: "alice", Password: "secret", BaseURL: srv.URL}
	if err := config.Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	return s, path
}

func TestSetCreate(t *testing.T) {
	svc, cfgPath := newFakeService(t)
	req := writeFile(t, "requirements.txt", "requests==2.31.0\nidna==3.4\n")

	out, err := execute(t, "--config", cfgPath, "set", "create", "web", "shop", "-t", "requirements", "-f", req)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Created set 1.4") {
		t.Errorf("output missing set name:\n%s", out)
	}

	want := inventory.ComponentSet{
		Name: "1.4",
		Components: []component.Component{
			{Name: "requests", Version: "2.31.0"},
			{Name: "idna", Version: "3.4"},
		},
	}
	if diff := cmp.Diff(want, svc.sets["shop"]); diff != "" {
		t.Errorf("submitted set mismatch (-want +got):\n%s", diff)
	}
}

func TestSetCreateUnknownProject(t *testing.T) {
	_, cfgPath := newFakeService(t)
	req := writeFile(t, "requirements.txt", "requests==2.31.0\n")

	_, err := execute(t, "--config", cfgPath, "set", "create", "web", "cart", "-t", "requirements", "-f", req)
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Fatalf("error = %v, want NOT_FOUND", err)
	}
}

func TestShowCommands(t *testing.T) {
	_, cfgPath := newFakeService(t)

	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"platform", "show"}, []string{"web", "public web servers"}},
		{[]string{"project", "show", "web"}, []string{"shop", "1.3"}},
		{[]string{"set", "show", "web", "shop"}, []string{"Set 1.3 of shop", "TOTAL"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, append([]string{"--config", cfgPath}, tt.args...)...)
			if err != nil {
				t.Fatal(err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "__start_surepatch"},
		{"zsh", "#compdef surepatch"},
		{"fish", "complete -c surepatch"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			out, err := execute(t, "completion", tt.shell)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("%s completion missing %q:\n%.200s", tt.shell, tt.want, out)
			}
		})
	}

	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh error = nil, want invalid argument")
	}
}
