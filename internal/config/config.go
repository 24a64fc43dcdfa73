// Package config loads bigcalc.toml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"bigcalc/internal/trace"
)

// FileName is the configuration file looked up from the working directory upward.
const FileName = "bigcalc.toml"

// ErrExists is returned by WriteDefault when the target file already exists.
var ErrExists = errors.New("config already exists")

// Config mirrors bigcalc.toml.
type Config struct {
	Output OutputConfig `toml:"output"`
	Batch  BatchConfig  `toml:"batch"`
	Cache  CacheConfig  `toml:"cache"`
	Trace  TraceConfig  `toml:"trace"`
}

type OutputConfig struct {
	Color string `toml:"color"` // auto|on|off
	Quiet bool   `toml:"quiet"`
}

type BatchConfig struct {
	Jobs int    `toml:"jobs"` // 0 = GOMAXPROCS
	UI   string `toml:"ui"`   // auto|on|off
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // empty = $XDG_CACHE_HOME/bigcalc
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
	Mode   string `toml:"mode"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Output: OutputConfig{Color: "auto"},
		Batch:  BatchConfig{UI: "auto"},
		Cache:  CacheConfig{Enabled: true},
		Trace:  TraceConfig{Level: "off", Mode: "stream"},
	}
}

// Find walks from startDir to the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the nearest FileName above startDir. When none
// exists it returns Default and an empty path.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if !isSwitch(c.Output.Color) {
		return fmt.Errorf("[output].color must be auto|on|off, got %q", c.Output.Color)
	}
	if !isSwitch(c.Batch.UI) {
		return fmt.Errorf("[batch].ui must be auto|on|off, got %q", c.Batch.UI)
	}
	if c.Batch.Jobs < 0 {
		return fmt.Errorf("[batch].jobs must be >= 0, got %d", c.Batch.Jobs)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		return fmt.Errorf("[trace].mode: %w", err)
	}
	return nil
}

func isSwitch(s string) bool {
	switch s {
	case "auto", "on", "off":
		return true
	default:
		return false
	}
}

// Encode writes c as TOML.
func Encode(w io.Writer, c Config) error {
	if _, err := io.WriteString(w, "# bigcalc configuration\n"); err != nil {
		return err
	}
	return toml.NewEncoder(w).Encode(c)
}

// WriteDefault creates dir/FileName holding Default. It refuses to
// overwrite an existing file.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrExists, path)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, Default()); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", fmt.Errorf("failed to write config: %w", err)
	}
	return path, nil
}
