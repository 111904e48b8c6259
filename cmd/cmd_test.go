package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"ccconfig/config"
	"ccconfig/config/models"
	"ccconfig/internal/platform"
	"ccconfig/internal/prompt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	testStorePath    = "/home/user/.cc-config/profiles.json"
	testSettingsPath = "/home/user/.claude/settings.json"
)

const testStore = `{
  "current": "work",
  "profiles": {
    "default": {},
    "home": {
      "ANTHROPIC_AUTH_TOKEN": "sk-home-0123456789",
      "ANTHROPIC_BASE_URL": "https://home.example.com"
    },
    "work": {
      "ANTHROPIC_AUTH_TOKEN": "sk-work-0123456789",
      "ANTHROPIC_BASE_URL": "https://api.work.example.com",
      "ANTHROPIC_MODEL": "claude-sonnet"
    }
  }
}`

type fakeClipboard struct {
	available bool
	err       error
	copied    []string
}

func (c *fakeClipboard) Available() bool { return c.available }

func (c *fakeClipboard) Copy(text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, text)
	return nil
}

type fakeOpener struct {
	err    error
	opened []string
}

func (o *fakeOpener) Open(path string) error {
	o.opened = append(o.opened, path)
	return o.err
}

// harness wires a CLI to an in-memory filesystem and fake OS capabilities
type harness struct {
	t           *testing.T
	cli         *CLI
	fs          afero.Fs
	clipboard   *fakeClipboard
	opener      *fakeOpener
	reader      *prompt.Scripted
	env         map[string]string
	interactive bool
}

func newHarness(t *testing.T, store string) *harness {
	t.Helper()

	fs := afero.NewMemMapFs()
	if store != "" {
		if err := fs.MkdirAll(filepath.Dir(testStorePath), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := afero.WriteFile(fs, testStorePath, []byte(store), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	h := &harness{
		t:         t,
		fs:        fs,
		clipboard: &fakeClipboard{available: true},
		opener:    &fakeOpener{},
		reader:    prompt.NewScripted(),
		env:       map[string]string{},
	}

	plat := platform.New("linux", "amd64")
	plat.Clipboard = h.clipboard
	plat.Opener = h.opener

	h.cli = &CLI{
		manager:      config.NewManager(testStorePath, config.WithFs(fs)),
		fs:           fs,
		platform:     plat,
		newReader:    func() (prompt.LineReader, error) { return h.reader, nil },
		interactive:  func() bool { return h.interactive },
		getenv:       func(key string) string { return h.env[key] },
		settingsPath: testSettingsPath,
		log:          zerolog.Nop(),
		logSet:       true,
	}
	return h
}

// answer makes the session interactive and queues answers
func (h *harness) answer(answers ...string) {
	h.interactive = true
	h.reader = prompt.NewScripted(answers...)
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(h.cli)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func (h *harness) readStore() string {
	h.t.Helper()
	data, err := afero.ReadFile(h.fs, testStorePath)
	if err != nil {
		h.t.Fatalf("failed to read store: %v", err)
	}
	return string(data)
}

func (h *harness) store() models.Store {
	h.t.Helper()
	var store models.Store
	if err := json.Unmarshal([]byte(h.readStore()), &store); err != nil {
		h.t.Fatalf("store is not valid JSON: %v", err)
	}
	return store
}

func assertContains(t *testing.T, output string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(output, w) {
			t.Errorf("output does not contain %q:\n%s", w, output)
		}
	}
}

func TestRootWithoutArgsPrintsHelp(t *testing.T) {
	h := newHarness(t, testStore)

	out, err := h.run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out, "Available Commands", "list", "use", "current", "open", "add", "remove")
}

func TestRootVersion(t *testing.T) {
	h := newHarness(t, testStore)

	out, err := h.run("--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out, "cc-config "+version, "Commit:")
}

func TestConfigFlagSelectsStore(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  string
	}{
		{name: "flag", args: []string{"--config", "/tmp/alt/profiles.json", "list"}},
		{name: "environment", args: []string{"list"}, env: "/tmp/alt/profiles.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("CC_CONFIG_FILE", tt.env)
			}
			h := newHarness(t, "")
			h.cli.manager = nil

			out, err := h.run(tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertContains(t, out, "* default")

			exists, err := afero.Exists(h.fs, "/tmp/alt/profiles.json")
			if err != nil || !exists {
				t.Errorf("store was not created at the configured path (err %v)", err)
			}
		})
	}
}

func TestDebugFlagEnablesLogging(t *testing.T) {
	h := newHarness(t, testStore)
	h.cli.logSet = false

	var out, errOut bytes.Buffer
	root := NewRootCommand(h.cli)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"--debug", "list"})
	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, errOut.String(), "initialized")
}

func TestList(t *testing.T) {
	h := newHarness(t, testStore)

	out, err := h.run("list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "  default\n  home\n* work\n"; out != want {
		t.Errorf("list output = %q, want %q", out, want)
	}

	alias, err := h.run("ls")
	if err != nil || alias != out {
		t.Errorf("ls output = %q (err %v), want the list output", alias, err)
	}
}

func TestListCreatesDefaultStore(t *testing.T) {
	h := newHarness(t, "")

	out, err := h.run("list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "* default\n" {
		t.Errorf("list output = %q", out)
	}
	if got := h.readStore(); !strings.Contains(got, `"current": "default"`) {
		t.Errorf("default store not written:\n%s", got)
	}
}

func TestListStructuredOutput(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantToken string
		unmarshal func([]byte, interface{}) error
	}{
		{
			name:      "json masks tokens",
			args:      []string{"list", "-o", "json"},
			wantToken: "sk-w**********6789",
			unmarshal: json.Unmarshal,
		},
		{
			name:      "yaml with tokens",
			args:      []string{"list", "-o", "yaml", "--show-tokens"},
			wantToken: "sk-work-0123456789",
			unmarshal: yaml.Unmarshal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, testStore)
			out, err := h.run(tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var got listing
			if err := tt.unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("failed to decode output: %v\n%s", err, out)
			}
			if got.Current != "work" || len(got.Profiles) != 3 {
				t.Errorf("listing = %+v", got)
			}
			if token := got.Profiles["work"].AuthToken; token != tt.wantToken {
				t.Errorf("work token = %q, want %q", token, tt.wantToken)
			}
		})
	}
}

func TestListJSONMatchesStoreFile(t *testing.T) {
	content := strings.Replace(testStore, "https://home.example.com", "https://proxy.example.com/v1?team=a&region=<eu>", 1)
	h := newHarness(t, content)

	out, err := h.run("list", "-o", "json", "--show-tokens")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != content+"\n" {
		t.Errorf("list -o json = %s\nwant the store file:\n%s", out, content)
	}
}

func TestListUnknownFormat(t *testing.T) {
	h := newHarness(t, testStore)
	if _, err := h.run("list", "-o", "xml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestListMalformedStore(t *testing.T) {
	h := newHarness(t, `{"current": "default", "profiles": []}`)

	_, err := h.run("list")
	if !errors.Is(err, config.ErrMalformedStore) {
		t.Fatalf("error = %v, want ErrMalformedStore", err)
	}
	assertContains(t, err.Error(), testStorePath)
}

func TestUse(t *testing.T) {
	const homeLine = `export ANTHROPIC_AUTH_TOKEN="sk-home-0123456789" && export ANTHROPIC_BASE_URL="https://home.example.com" && unset ANTHROPIC_MODEL`

	t.Run("copies to clipboard", func(t *testing.T) {
		h := newHarness(t, testStore)

		out, err := h.run("use", "home")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertContains(t, out,
			"✓ Switched to profile: home",
			"(Linux):",
			homeLine,
			"Copied to clipboard",
			"Restart Claude Code",
		)
		if len(h.clipboard.copied) != 1 || h.clipboard.copied[0] != homeLine {
			t.Errorf("clipboard = %q, want %q", h.clipboard.copied, homeLine)
		}
		if h.store().Current != "home" {
			t.Errorf("current = %q, want home", h.store().Current)
		}
	})

	t.Run("clipboard unavailable", func(t *testing.T) {
		h := newHarness(t, testStore)
		h.clipboard.available = false

		out, err := h.run("use", "home")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertContains(t, out, homeLine, "Clipboard is not available", "sudo apt-get install xclip")
	})

	t.Run("copy fails", func(t *testing.T) {
		h := newHarness(t, testStore)
		h.clipboard.err = errors.New("xclip exited 1")

		out, err := h.run("use", "home")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertContains(t, out, "✗ Automatic copy failed")
		if h.store().Current != "home" {
			t.Error("a failed copy must not undo the switch")
		}
	})

	t.Run("windows syntax", func(t *testing.T) {
		h := newHarness(t, testStore)
		h.cli.platform.Shell = platform.ShellFor(platform.Windows)
		h.cli.platform.Name = "Windows 64"

		out, err := h.run("use", "home")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertContains(t, out,
			`set "ANTHROPIC_AUTH_TOKEN=sk-home-0123456789" && set "ANTHROPIC_BASE_URL=https://home.example.com" && set "ANTHROPIC_MODEL="`,
			"(Windows 64):",
		)
	})

	t.Run("unknown profile", func(t *testing.T) {
		h := newHarness(t, testStore)

		_, err := h.run("use", "missing")
		if !errors.Is(err, config.ErrProfileNotFound) {
			t.Fatalf("error = %v, want ErrProfileNotFound", err)
		}
		if got := h.readStore(); got != testStore {
			t.Errorf("store changed:\n%s", got)
		}
		if len(h.clipboard.copied) != 0 {
			t.Error("nothing should be copied")
		}
	})

	t.Run("sync settings", func(t *testing.T) {
		h := newHarness(t, testStore)

		out, err := h.run("use", "home", "--sync-settings")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertContains(t, out, "Updated Claude Code settings")

		data, err := afero.ReadFile(h.fs, testSettingsPath)
		if err != nil {
			t.Fatalf("settings not written: %v", err)
		}
		assertContains(t, string(data), `"ANTHROPIC_BASE_URL":"https://home.example.com"`)
	})

	t.Run("requires a name", func(t *testing.T) {
		h := newHarness(t, testStore)
		if _, err := h.run("use"); err == nil {
			t.Error("expected an argument error")
		}
	})
}

func TestCurrent(t *testing.T) {
	tests := []struct {
		name     string
		store    string
		env      map[string]string
		want     []string
		dontWant []string
	}{
		{
			name:  "environment matches",
			store: testStore,
			env: map[string]string{
				models.EnvAuthToken: "sk-work-0123456789",
				models.EnvBaseURL:   "https://api.work.example.com",
				models.EnvModel:     "claude-sonnet",
			},
			want: []string{
				"Current profile: work",
				"Base URL: https://api.work.example.com",
				"Token: sk-w**********6789",
				"Model: claude-sonnet",
				"✓ ANTHROPIC_MODEL is set correctly",
			},
			dontWant: []string{"sk-work-0123456789", "⚠", "use work"},
		},
		{
			name:  "environment differs",
			store: testStore,
			env: map[string]string{
				models.EnvAuthToken: "sk-home-0123456789",
				models.EnvBaseURL:   "https://api.work.example.com",
			},
			want: []string{
				"✓ ANTHROPIC_BASE_URL is set correctly",
				"⚠ ANTHROPIC_AUTH_TOKEN is not set or does not match the profile",
				"⚠ ANTHROPIC_MODEL is not set or does not match the profile",
				`Run "cc-config use work" again`,
			},
		},
		{
			name:     "empty default profile",
			store:    "",
			want:     []string{"Current profile: default"},
			dontWant: []string{"─", "✓", "⚠"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.store)
			for k, v := range tt.env {
				h.env[k] = v
			}

			out, err := h.run("current")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertContains(t, out, tt.want...)
			for _, s := range tt.dontWant {
				if strings.Contains(out, s) {
					t.Errorf("output should not contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestCurrentReportsSettingsDrift(t *testing.T) {
	h := newHarness(t, testStore)
	settingsJSON := `{"env": {"ANTHROPIC_AUTH_TOKEN": "sk-other", "ANTHROPIC_BASE_URL": "https://other.example.com"}}`
	if err := h.fs.MkdirAll(filepath.Dir(testSettingsPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(h.fs, testSettingsPath, []byte(settingsJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := h.run("cur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out, "differ from this profile", "--sync-settings")
}

func TestOpen(t *testing.T) {
	t.Run("creates the store first", func(t *testing.T) {
		h := newHarness(t, "")

		out, err := h.run("open")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertContains(t, out, "Created the default config file", "Config file opened")
		if len(h.opener.opened) != 1 || h.opener.opened[0] != testStorePath {
			t.Errorf("opened = %v, want [%s]", h.opener.opened, testStorePath)
		}
		if h.store().Current != models.DefaultProfileName {
			t.Error("default store not created")
		}
	})

	t.Run("opener fails", func(t *testing.T) {
		h := newHarness(t, testStore)
		h.opener.err = errors.New("no opener command found")

		out, err := h.run("open")
		if err == nil {
			t.Fatal("expected an error")
		}
		assertContains(t, out, "Please open the config file manually: "+testStorePath)
		if strings.Contains(out, "Created the default config file") {
			t.Error("existing store should not be recreated")
		}
	})
}

func TestAddWithFlags(t *testing.T) {
	h := newHarness(t, testStore)

	out, err := h.run("add", "lab", "--token", "sk-lab-0123456789", "--model", "claude-opus")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out, `✓ Profile "lab" added`, "Base URL: "+models.DefaultBaseURL, "Token: sk-l*********6789")

	lab := h.store().Profiles["lab"]
	want := models.Profile{AuthToken: "sk-lab-0123456789", BaseURL: models.DefaultBaseURL, Model: "claude-opus"}
	if !reflect.DeepEqual(lab, want) {
		t.Errorf("lab = %+v, want %+v", lab, want)
	}
	if h.store().Current != "work" {
		t.Error("adding must not switch the active profile")
	}
}

func TestAddDuplicateWithFlags(t *testing.T) {
	h := newHarness(t, testStore)

	_, err := h.run("add", "work", "--token", "sk-new")
	if !errors.Is(err, config.ErrProfileAlreadyExists) {
		t.Fatalf("error = %v, want ErrProfileAlreadyExists", err)
	}
	if got := h.readStore(); got != testStore {
		t.Errorf("store changed:\n%s", got)
	}
}

func TestAddInvalidURLWithFlags(t *testing.T) {
	h := newHarness(t, testStore)

	_, err := h.run("add", "lab", "--token", "sk-new", "--url", "ftp://example.com")
	if !errors.Is(err, config.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestAddNotInteractive(t *testing.T) {
	h := newHarness(t, testStore)

	out, err := h.run("add", "lab")
	if !errors.Is(err, errNotInteractive) {
		t.Fatalf("error = %v, want errNotInteractive", err)
	}
	assertContains(t, out, "--token")
}

func TestAddInteractive(t *testing.T) {
	h := newHarness(t, testStore)
	h.answer(
		"work", // taken
		"lab",
		"", // token is required
		"sk-lab-0123456789",
		"not-a-url",
		"https://lab.example.com",
		"claude-opus",
	)

	out, err := h.run("add")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out, `profile "work" already exists`, "A value is required", "invalid URL format", `✓ Profile "lab" added`)
	if strings.Contains(out, "sk-lab-0123456789") {
		t.Error("the token must not be echoed")
	}
	if h.reader.Remaining() != 0 {
		t.Errorf("%d answers left unused", h.reader.Remaining())
	}

	lab := h.store().Profiles["lab"]
	want := models.Profile{AuthToken: "sk-lab-0123456789", BaseURL: "https://lab.example.com", Model: "claude-opus"}
	if !reflect.DeepEqual(lab, want) {
		t.Errorf("lab = %+v, want %+v", lab, want)
	}
}

func TestAddInteractiveDefaults(t *testing.T) {
	h := newHarness(t, testStore)
	h.answer("sk-lab-0123456789", "", "")

	if _, err := h.run("add", "lab"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lab := h.store().Profiles["lab"]
	if lab.BaseURL != models.DefaultBaseURL || lab.Model != "" {
		t.Errorf("lab = %+v, want the default base URL and no model", lab)
	}
	if got := strings.Join(h.reader.Prompts, "|"); strings.Contains(got, "Profile name") {
		t.Errorf("name given as argument should not be asked for: %s", got)
	}
}

func TestAddInteractiveTakenArgument(t *testing.T) {
	h := newHarness(t, testStore)
	h.answer("sk-new")

	_, err := h.run("add", "home")
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("error = %v, want an already exists error", err)
	}
	if h.reader.Remaining() != 1 {
		t.Error("no question should be asked for a taken name")
	}
}

func TestAddInteractiveCancelled(t *testing.T) {
	h := newHarness(t, testStore)
	h.answer("lab") // input ends before the token

	out, err := h.run("add")
	if err != nil {
		t.Fatalf("cancelling should not be an error: %v", err)
	}
	assertContains(t, out, "Cancelled")
	if got := h.readStore(); got != testStore {
		t.Errorf("store changed:\n%s", got)
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		interactive bool
		answers     []string
		wantErr     error
		wantRemoved bool
		want        []string
	}{
		{
			name:        "confirmed",
			target:      "home",
			interactive: true,
			answers:     []string{"y"},
			wantRemoved: true,
			want:        []string{"Token: sk-h**********6789", "Model: not set", `✓ Profile "home" removed`},
		},
		{
			name:        "confirmed with yes",
			target:      "home",
			interactive: true,
			answers:     []string{"YES"},
			wantRemoved: true,
		},
		{
			name:        "declined",
			target:      "home",
			interactive: true,
			answers:     []string{"n"},
			want:        []string{"Cancelled"},
		},
		{
			name:        "empty answer declines",
			target:      "home",
			interactive: true,
			answers:     []string{""},
			want:        []string{"Cancelled"},
		},
		{
			name:        "input closed",
			target:      "home",
			interactive: true,
			want:        []string{"Cancelled"},
		},
		{
			name:        "active profile",
			target:      "work",
			interactive: true,
			answers:     []string{"y"},
			wantErr:     config.ErrCannotRemoveActiveProfile,
		},
		{
			name:        "unknown profile",
			target:      "missing",
			interactive: true,
			answers:     []string{"y"},
			wantErr:     config.ErrProfileNotFound,
		},
		{
			name:    "not interactive",
			target:  "home",
			wantErr: errNotInteractive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, testStore)
			h.answer(tt.answers...)
			h.interactive = tt.interactive

			out, err := h.run("rm", tt.target)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertContains(t, out, tt.want...)

			_, present := h.store().Profiles[tt.target]
			if tt.wantRemoved == present && tt.target != "missing" {
				t.Errorf("profile present = %v, want removed = %v", present, tt.wantRemoved)
			}
			if !tt.wantRemoved {
				if got := h.readStore(); got != testStore {
					t.Errorf("store changed:\n%s", got)
				}
			}
		})
	}
}

func TestEnv(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "active profile",
			args: []string{"env"},
			want: `export ANTHROPIC_AUTH_TOKEN="sk-work-0123456789" && export ANTHROPIC_BASE_URL="https://api.work.example.com" && export ANTHROPIC_MODEL="claude-sonnet"` + "\n",
		},
		{
			name: "named profile as dotenv",
			args: []string{"env", "home", "--format", "dotenv"},
			want: "ANTHROPIC_AUTH_TOKEN=\"sk-home-0123456789\"\nANTHROPIC_BASE_URL=\"https://home.example.com\"\n",
		},
		{
			name: "empty profile as dotenv",
			args: []string{"env", "default", "-f", "dotenv"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, testStore)
			out, err := h.run(tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
			if h.store().Current != "work" {
				t.Error("env must not switch profiles")
			}
		})
	}
}

func TestEnvWrite(t *testing.T) {
	h := newHarness(t, testStore)
	if err := h.fs.MkdirAll("/project", 0o755); err != nil {
		t.Fatal(err)
	}

	out, err := h.run("env", "home", "--write", "/project/.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out, "Wrote home environment to /project/.env")

	data, err := afero.ReadFile(h.fs, "/project/.env")
	if err != nil {
		t.Fatal(err)
	}
	env, err := godotenv.Unmarshal(string(data))
	if err != nil {
		t.Fatalf("written file is not dotenv: %v", err)
	}
	if env[models.EnvAuthToken] != "sk-home-0123456789" || env[models.EnvBaseURL] != "https://home.example.com" {
		t.Errorf("env = %v", env)
	}
	if _, ok := env[models.EnvModel]; ok {
		t.Error("empty fields should be left out")
	}
}

func TestEnvErrors(t *testing.T) {
	h := newHarness(t, testStore)

	if _, err := h.run("env", "missing"); !errors.Is(err, config.ErrProfileNotFound) {
		t.Errorf("error = %v, want ErrProfileNotFound", err)
	}
	if _, err := h.run("env", "--format", "fish"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestUIRequiresTerminal(t *testing.T) {
	h := newHarness(t, testStore)

	_, err := h.run("ui")
	if err == nil || !strings.Contains(err.Error(), "interactive terminal") {
		t.Fatalf("error = %v, want a terminal error", err)
	}
}

func TestInit(t *testing.T) {
	h := newHarness(t, testStore)

	out, err := h.run("init", "zsh", "--name", "profile")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out, "profile() {", `eval "$(command cc-config env "$1")"`)

	if _, err := h.run("init", "powershell"); err == nil {
		t.Error("expected an error for an unsupported shell")
	}
}

func TestInitWrite(t *testing.T) {
	h := newHarness(t, testStore)

	out, err := h.run("init", "bash", "-w", "/home/user/.config/cc-config/init.bash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out, "Wrote shell integration", "source /home/user/.config/cc-config/init.bash")

	data, err := afero.ReadFile(h.fs, "/home/user/.config/cc-config/init.bash")
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, string(data), "ccc() {")
}
