package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestFindWalksParents(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, FileName)
	writeFile(t, want, "")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	got, ok, err := Find(nested)
	if err != nil || !ok || got != want {
		t.Errorf("Find = %q, %v, %v; want %q", got, ok, err, want)
	}
}

func TestDiscoverWithoutFile(t *testing.T) {
	cfg, path, err := Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	// A bigcalc.toml in an ancestor of the temp dir would be picked up.
	if path == "" && cfg != Default() {
		t.Errorf("Discover = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, `
[output]
quiet = true

[batch]
jobs = 4

[trace]
level = "expr"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Output.Quiet || cfg.Batch.Jobs != 4 || cfg.Trace.Level != "expr" {
		t.Errorf("Load = %+v", cfg)
	}
	if cfg.Output.Color != "auto" || !cfg.Cache.Enabled || cfg.Trace.Mode != "stream" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		name, content, want string
	}{
		{"syntax", "[output\n", "failed to parse TOML"},
		{"unknown", "[output]\nshout = true\n", "unknown keys: output.shout"},
		{"color", "[output]\ncolor = \"rainbow\"\n", "[output].color"},
		{"ui", "[batch]\nui = \"maybe\"\n", "[batch].ui"},
		{"jobs", "[batch]\njobs = -1\n", "[batch].jobs"},
		{"level", "[trace]\nlevel = \"loud\"\n", "[trace].level"},
		{"mode", "[trace]\nmode = \"tape\"\n", "[trace].mode"},
	}
	for _, tc := range cases {
		path := filepath.Join(t.TempDir(), FileName)
		writeFile(t, path, tc.content)
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: Load error = %v, want it to mention %q", tc.name, err, tc.want)
		}
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteDefault(dir)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("round trip = %+v, want %+v", cfg, Default())
	}
	if _, err := WriteDefault(dir); !errors.Is(err, ErrExists) {
		t.Errorf("second WriteDefault error = %v", err)
	}
}
