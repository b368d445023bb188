package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Session.DurationSec != nil || cfg.Session.Words != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigDecodesSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `[session]
duration = 30
words = 12
lookahead = 15
auto-start = false
punct-set = ".,"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	s := cfg.Session
	if s.DurationSec == nil || *s.DurationSec != 30 {
		t.Fatalf("unexpected duration: %v", s.DurationSec)
	}
	if s.Words == nil || *s.Words != 12 {
		t.Fatalf("unexpected words: %v", s.Words)
	}
	if s.Lookahead == nil || *s.Lookahead != 15 {
		t.Fatalf("unexpected lookahead: %v", s.Lookahead)
	}
	if s.AutoStart == nil || *s.AutoStart {
		t.Fatalf("unexpected auto-start: %v", s.AutoStart)
	}
	if s.PunctSet == nil || *s.PunctSet != ".," {
		t.Fatalf("unexpected punct-set: %v", s.PunctSet)
	}
	if s.ExtendWords != nil {
		t.Fatalf("expected extend-words unset")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[session]\nspeed = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "session.speed") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "typesprint", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/tmp/state", "typesprint", "typesprint.log") {
		t.Fatalf("unexpected log path %q", got)
	}
}
