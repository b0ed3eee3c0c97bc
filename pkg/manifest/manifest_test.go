package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const greetManifest = `
name: greet
version: 1.2.3
about: Greets people
flags:
  - name: verbose
    shorthand: v
    type: bool
    usage: enable verbose output
  - name: name
    shorthand: n
    type: string
    default: world
    usage: who to greet
  - name: timeout
    type: duration
    default: 5s
    usage: how long to wait
  - name: tags
    type: stringSlice
    default: a,b
    usage: tags to apply
`

func TestParseManifest(t *testing.T) {
	m, err := Parse([]byte(greetManifest))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if m.Name != "greet" {
		t.Errorf("name = %q, want greet", m.Name)
	}
	if m.Version != "1.2.3" {
		t.Errorf("version = %q, want 1.2.3", m.Version)
	}
	if len(m.Flags) != 4 {
		t.Errorf("flags = %d, want 4", len(m.Flags))
	}
}

func TestLoadManifestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greet.yaml")
	if err := os.WriteFile(path, []byte(greetManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Path() != path {
		t.Errorf("Path() = %q, want %q", m.Path(), path)
	}
}

func TestLoadMissingManifest(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load should fail for a missing file")
	}
	if _, ok := err.(*NotFoundError); !ok {
		t.Errorf("error type = %T, want *NotFoundError", err)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("name: [unclosed"))
	if err == nil {
		t.Fatal("Parse should fail for malformed YAML")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("error type = %T, want *ParseError", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing name", "about: no name here"},
		{"unknown type", "name: x\nflags:\n  - name: f\n    type: complex128"},
		{"duplicate flag", "name: x\nflags:\n  - name: f\n    type: bool\n  - name: f\n    type: bool"},
		{"long shorthand", "name: x\nflags:\n  - name: f\n    type: bool\n    shorthand: fx"},
		{"duplicate shorthand", "name: x\nflags:\n  - name: f\n    type: bool\n    shorthand: f\n  - name: g\n    type: bool\n    shorthand: f"},
		{"bad default", "name: x\nflags:\n  - name: f\n    type: int\n    default: not-a-number"},
	}

	for _, tc := range cases {
		_, err := Parse([]byte(tc.yaml))
		if err == nil {
			t.Errorf("%s: Parse should fail", tc.name)
			continue
		}
		if _, ok := err.(*ValidationError); !ok {
			t.Errorf("%s: error type = %T, want *ValidationError", tc.name, err)
		}
	}
}

func TestBuildFlagSet(t *testing.T) {
	m, err := Parse([]byte(greetManifest))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	fs, err := m.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if err := fs.Parse([]string{"-v", "--timeout=10s"}); err != nil {
		t.Fatalf("flag set parse failed: %v", err)
	}

	verbose, err := fs.GetBool("verbose")
	if err != nil || !verbose {
		t.Errorf("verbose = %v (err %v), want true", verbose, err)
	}

	name, err := fs.GetString("name")
	if err != nil || name != "world" {
		t.Errorf("name = %q (err %v), want default world", name, err)
	}

	timeout, err := fs.GetDuration("timeout")
	if err != nil || timeout != 10*time.Second {
		t.Errorf("timeout = %v (err %v), want 10s", timeout, err)
	}

	tags, err := fs.GetStringSlice("tags")
	if err != nil || len(tags) != 2 || tags[0] != "a" || tags[1] != "b" {
		t.Errorf("tags = %v (err %v), want default [a b]", tags, err)
	}
}

func TestCommandFromManifest(t *testing.T) {
	m, err := Parse([]byte(greetManifest))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cmd, err := m.Command()
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}

	if cmd.Name != "greet" || cmd.Version != "1.2.3" {
		t.Errorf("command metadata = %s/%s, want greet/1.2.3", cmd.Name, cmd.Version)
	}

	matches, err := cmd.TryGetMatchesFrom([]string{"--name", "Alice"})
	if err != nil {
		t.Fatalf("parse through built command failed: %v", err)
	}
	got, _ := matches.GetString("name")
	if got != "Alice" {
		t.Errorf("name = %q, want Alice", got)
	}
}

func TestHiddenFlagOmittedFromUsage(t *testing.T) {
	m, err := Parse([]byte("name: x\nflags:\n  - name: secret\n    type: bool\n    hidden: true"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	fs, err := m.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if usages := fs.FlagUsages(); usages != "" {
		t.Errorf("hidden flag leaked into usage:\n%s", usages)
	}
}
