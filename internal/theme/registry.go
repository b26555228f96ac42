// Package theme enumerates installed sound themes and keeps the active
// theme in sync between the local configuration and the host's output
// style setting.
package theme

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ccsounds/ccsounds/internal/config"
	"github.com/ccsounds/ccsounds/internal/hook"
	"github.com/ccsounds/ccsounds/internal/paths"
	"github.com/ccsounds/ccsounds/internal/settings"
)

const (
	// ReservedTheme represents "no custom theme" and can never be removed.
	ReservedTheme = "system"

	// ReadmeFileName is the optional per-theme description source.
	ReadmeFileName = "README.md"

	// StyleFileName is the optional per-theme output style document.
	StyleFileName = "style.md"

	noDescription = "No description"
)

// SoundExtensions is the fixed resolution order for sound assets.
var SoundExtensions = []string{".wav", ".mp3", ".aiff"}

// Theme describes one installed theme directory.
type Theme struct {
	Name        string
	Description string
	Sounds      []string // extension-stripped basenames present
	HasStyle    bool
}

// NotFoundError reports an operation against a theme that is not
// installed.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("theme '%s' does not exist", e.Name)
}

// ErrReservedTheme rejects removal of the built-in system theme.
var ErrReservedTheme = errors.New("the system theme cannot be removed")

// Registry manages the themes directory and theme activation.
type Registry struct {
	paths    paths.Paths
	store    *config.Store
	settings *settings.File
}

// NewRegistry creates a Registry backed by the given config store.
func NewRegistry(p paths.Paths, store *config.Store) *Registry {
	return &Registry{paths: p, store: store, settings: settings.NewFile(p)}
}

// List enumerates installed themes in name order. A missing themes root
// yields an empty list, never an error.
func (r *Registry) List() []Theme {
	entries, err := os.ReadDir(r.paths.ThemesRoot())
	if err != nil {
		if !os.IsNotExist(err) {
			log.Debug().Err(err).Msg("Failed to read themes directory")
		}
		return nil
	}

	var themes []Theme
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		themes = append(themes, r.describe(entry.Name()))
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i].Name < themes[j].Name })
	return themes
}

// describe inspects one theme directory.
func (r *Registry) describe(name string) Theme {
	dir := r.paths.ThemeDir(name)
	t := Theme{Name: name, Description: readDescription(filepath.Join(dir, ReadmeFileName))}

	if _, err := os.Stat(filepath.Join(dir, StyleFileName)); err == nil {
		t.HasStyle = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return t
	}
	seen := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !isSoundExtension(ext) {
			continue
		}
		base := strings.TrimSuffix(entry.Name(), ext)
		if !seen[base] {
			seen[base] = true
			t.Sounds = append(t.Sounds, base)
		}
	}
	sort.Strings(t.Sounds)
	return t
}

// readDescription returns the first non-empty heading of a readme, or a
// placeholder when the file is absent or unreadable.
func readDescription(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return noDescription
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			if heading := strings.TrimSpace(strings.TrimLeft(line, "#")); heading != "" {
				return heading
			}
		}
	}
	return noDescription
}

func isSoundExtension(ext string) bool {
	for _, known := range SoundExtensions {
		if strings.EqualFold(ext, known) {
			return true
		}
	}
	return false
}

// Exists reports whether a theme directory is installed.
func (r *Registry) Exists(name string) bool {
	info, err := os.Stat(r.paths.ThemeDir(name))
	return err == nil && info.IsDir()
}

// ResolveSoundPath returns the sound file for an event within the named
// theme, trying each known extension in order. No cross-theme fallback:
// the empty string means the theme ships no sound for this event.
func (r *Registry) ResolveSoundPath(theme string, e hook.Event) string {
	dir := r.paths.ThemeDir(theme)
	for _, ext := range SoundExtensions {
		candidate := filepath.Join(dir, e.Name()+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// SetActive validates and activates a theme: the local configuration and
// the host's output style setting are updated together. Themes without a
// style document clear the host setting so it never dangles.
func (r *Registry) SetActive(name string) error {
	if name != ReservedTheme && !r.Exists(name) {
		return &NotFoundError{Name: name}
	}

	if err := r.store.SetTheme(name); err != nil {
		return err
	}

	return r.SyncStyle(name)
}

// SyncStyle aligns the host's output style setting with the named theme.
func (r *Registry) SyncStyle(name string) error {
	if name != ReservedTheme && r.describe(name).HasStyle {
		return r.settings.SetOutputStyle(name)
	}
	return r.settings.ClearOutputStyle()
}

// Remove deletes a theme directory. Removing the active theme resets the
// configuration to the default theme; removing the reserved theme is
// rejected.
func (r *Registry) Remove(name string) error {
	if name == ReservedTheme {
		return ErrReservedTheme
	}
	if !r.Exists(name) {
		return &NotFoundError{Name: name}
	}

	if err := os.RemoveAll(r.paths.ThemeDir(name)); err != nil {
		return fmt.Errorf("failed to remove theme: %w", err)
	}

	active, err := r.store.Theme()
	if err == nil && active == name {
		if err := r.store.SetTheme(config.DefaultTheme); err != nil {
			return err
		}
		if err := r.SyncStyle(config.DefaultTheme); err != nil {
			log.Debug().Err(err).Msg("Failed to re-sync style after theme removal")
		}
	}

	log.Info().Str("theme", name).Msg("Removed theme")
	return nil
}

// Install copies a user-provided directory into the themes root under the
// given name. Existing themes of the same name are replaced.
func (r *Registry) Install(srcDir, name string) error {
	if name == ReservedTheme {
		return ErrReservedTheme
	}
	info, err := os.Stat(srcDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("'%s' is not a readable directory", srcDir)
	}

	dstDir := r.paths.ThemeDir(name)
	if err := os.RemoveAll(dstDir); err != nil {
		return fmt.Errorf("failed to replace theme: %w", err)
	}
	if err := os.MkdirAll(dstDir, paths.DirPermission); err != nil {
		return fmt.Errorf("failed to create theme directory: %w", err)
	}

	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("failed to read source directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(srcDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(filepath.Join(dstDir, entry.Name()), data, paths.FilePermission); err != nil {
			return fmt.Errorf("failed to write %s: %w", entry.Name(), err)
		}
	}

	log.Info().Str("theme", name).Str("from", srcDir).Msg("Installed theme")
	return nil
}
