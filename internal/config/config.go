// Package config loads fred's TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/fred/editor"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "FRED_CONFIG"

var ErrInvalid = errors.New("invalid config")

// Duration is a time.Duration decoded from a string such as "750ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("%w: duration %q: %v", ErrInvalid, text, err)
	}
	d.Duration = v
	return nil
}

type Colors struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

// File mirrors the on-disk configuration. Unset keys keep their defaults.
type File struct {
	LineNumbers    bool     `toml:"line_numbers"`
	Gutter         string   `toml:"gutter"`
	PendingKeys    string   `toml:"pending_keys"`
	PendingTimeout Duration `toml:"pending_timeout"`
	ExpandTabs     bool     `toml:"expand_tabs"`
	TabSpaces      int      `toml:"tab_spaces"`

	Status      Colors `toml:"status"`
	GutterStyle Colors `toml:"gutter_style"`

	// Undecoded lists keys present in the file that fred does not know.
	Undecoded []string `toml:"-"`
}

func Default() File {
	return File{
		LineNumbers: true,
		Gutter:      "dynamic",
		PendingKeys: "clear",
		TabSpaces:   4,
		Status:      Colors{Foreground: "0", Background: "5"},
		GutterStyle: Colors{Foreground: "240"},
	}
}

// Path returns the config path: $FRED_CONFIG when set, otherwise
// <user config dir>/fred/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, "fred", "config.toml"), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (File, error) {
	f := Default()
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return File{}, fmt.Errorf("load %s: %w", path, err)
	}
	for _, k := range md.Undecoded() {
		f.Undecoded = append(f.Undecoded, k.String())
	}
	sort.Strings(f.Undecoded)
	return f, nil
}

// Parse decodes TOML text over the defaults.
func Parse(text string) (File, error) {
	f := Default()
	if _, err := toml.Decode(text, &f); err != nil {
		return File{}, fmt.Errorf("parse config: %w", err)
	}
	return f, nil
}

// Editor converts f into an editor configuration.
func (f File) Editor() (editor.Config, error) {
	cfg := editor.DefaultConfig()
	cfg.ShowLineNums = f.LineNumbers
	cfg.ExpandTabs = f.ExpandTabs
	cfg.PendingTimeout = f.PendingTimeout.Duration

	switch strings.ToLower(f.Gutter) {
	case "", "dynamic":
		cfg.Gutter = editor.GutterDynamic
	case "fixed":
		cfg.Gutter = editor.GutterFixed
	default:
		return editor.Config{}, fmt.Errorf("%w: gutter %q (want dynamic or fixed)", ErrInvalid, f.Gutter)
	}

	switch strings.ToLower(f.PendingKeys) {
	case "", "clear":
		cfg.Pending = editor.PendingClear
	case "keep":
		cfg.Pending = editor.PendingKeep
	default:
		return editor.Config{}, fmt.Errorf("%w: pending_keys %q (want clear or keep)", ErrInvalid, f.PendingKeys)
	}

	if f.TabSpaces < 0 || (f.ExpandTabs && f.TabSpaces == 0) {
		return editor.Config{}, fmt.Errorf("%w: tab_spaces %d", ErrInvalid, f.TabSpaces)
	}
	if f.PendingTimeout.Duration < 0 {
		return editor.Config{}, fmt.Errorf("%w: pending_timeout %s", ErrInvalid, f.PendingTimeout.Duration)
	}
	cfg.TabSpaces = f.TabSpaces

	cfg.Style.Status = applyColors(cfg.Style.Status, f.Status)
	cfg.Style.Gutter = applyColors(cfg.Style.Gutter, f.GutterStyle)
	return cfg, nil
}

func applyColors(st lipgloss.Style, c Colors) lipgloss.Style {
	if c.Foreground != "" {
		st = st.Foreground(lipgloss.Color(c.Foreground))
	}
	if c.Background != "" {
		st = st.Background(lipgloss.Color(c.Background))
	}
	return st
}
