// Package prefs stores the UI choices Marquee remembers between runs: the
// theme and the tab to open on. They live in ~/.config/marquee/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/marquee/internal/browse"
	"github.com/five82/marquee/internal/config"
)

// Prefs holds the remembered UI choices.
type Prefs struct {
	Theme    string     `toml:"theme"`
	StartTab browse.Tab `toml:"start_tab"`
}

const (
	defaultPrefsPath = "~/.config/marquee/prefs.toml"
	defaultTheme     = "Noir"
)

// Defaults returns the preferences used when nothing usable is stored.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, StartTab: browse.TabHome}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads the preferences at path (or the default location). A missing
// file yields the defaults with no error. An unreadable or malformed file
// also yields the defaults, together with the error so callers can log it.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Defaults(), err
	}

	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return Defaults(), nil
	case err != nil:
		return Defaults(), fmt.Errorf("read prefs: %w", err)
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Defaults(), fmt.Errorf("parse prefs %s: %w", resolved, err)
	}
	return p.normalize(), nil
}

// normalize fills blanks from the defaults and maps an unknown start tab to
// home.
func (p Prefs) normalize() Prefs {
	out := Defaults()
	if theme := strings.TrimSpace(p.Theme); theme != "" {
		out.Theme = theme
	}
	if tab, ok := browse.ParseTab(strings.TrimSpace(string(p.StartTab))); ok {
		out.StartTab = tab
	}
	return out
}

// Save writes p to path, creating parent directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p.normalize())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return config.ExpandPath(path)
}
