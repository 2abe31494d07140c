package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iw2rmb/fred/editor"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !f.LineNumbers || f.TabSpaces != 4 || f.Gutter != "dynamic" || f.PendingKeys != "clear" {
		t.Fatalf("defaults: got %+v", f)
	}
}

func TestLoad_OverridesAndUndecoded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	text := `
line_numbers = false
gutter = "fixed"
pending_keys = "keep"
pending_timeout = "750ms"
expand_tabs = true
tab_spaces = 2
colour = "typo"

[status]
background = "4"
`
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.LineNumbers {
		t.Fatalf("line_numbers: got true, want false")
	}
	if f.PendingTimeout.Duration != 750*time.Millisecond {
		t.Fatalf("pending_timeout: got %s, want 750ms", f.PendingTimeout.Duration)
	}
	if f.Status.Background != "4" || f.Status.Foreground != "0" {
		t.Fatalf("status colors: got %+v", f.Status)
	}
	if len(f.Undecoded) != 1 || f.Undecoded[0] != "colour" {
		t.Fatalf("undecoded keys: got %v, want [colour]", f.Undecoded)
	}

	cfg, err := f.Editor()
	if err != nil {
		t.Fatalf("Editor: %v", err)
	}
	if cfg.ShowLineNums || cfg.Gutter != editor.GutterFixed || cfg.Pending != editor.PendingKeep {
		t.Fatalf("editor config: got %+v", cfg)
	}
	if !cfg.ExpandTabs || cfg.TabSpaces != 2 || cfg.PendingTimeout != 750*time.Millisecond {
		t.Fatalf("editor tab/timeout config: got expand=%v spaces=%d timeout=%s", cfg.ExpandTabs, cfg.TabSpaces, cfg.PendingTimeout)
	}
}

func TestLoad_SyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("gutter = "), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load: expected syntax error")
	}
}

func TestParse_BadDuration(t *testing.T) {
	if _, err := Parse(`pending_timeout = "soon"`); err == nil {
		t.Fatalf("Parse: expected duration error")
	}
}

func TestEditor_RejectsUnknownValues(t *testing.T) {
	cases := []string{
		`gutter = "wide"`,
		`pending_keys = "forever"`,
		`tab_spaces = -1`,
		"expand_tabs = true\ntab_spaces = 0",
	}
	for _, text := range cases {
		f, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if _, err := f.Editor(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("Editor for %q: got %v, want ErrInvalid", text, err)
		}
	}
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/fred-test.toml")
	got, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if got != "/tmp/fred-test.toml" {
		t.Fatalf("Path: got %q, want %q", got, "/tmp/fred-test.toml")
	}
}

func TestEditor_ZeroTabSpacesWithoutExpansion(t *testing.T) {
	f, err := Parse("tab_spaces = 0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg, err := f.Editor()
	if err != nil {
		t.Fatalf("Editor: %v", err)
	}
	if cfg.ExpandTabs || cfg.TabSpaces != 0 {
		t.Fatalf("tab config: got expand=%v spaces=%d", cfg.ExpandTabs, cfg.TabSpaces)
	}
}
