// Package upgrade brings an installation up to date with the running
// tool version: configuration schema migration, hash-gated theme asset
// sync, and runtime script refresh. It runs silently at process start
// and is entirely best-effort; a failed step never stops its siblings
// and nothing here ever reaches the caller as an error.
package upgrade

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/ccsounds/ccsounds/internal/assets"
	"github.com/ccsounds/ccsounds/internal/config"
	"github.com/ccsounds/ccsounds/internal/paths"
	"github.com/ccsounds/ccsounds/internal/theme"
)

// Upgrader is the startup upgrade engine.
type Upgrader struct {
	paths    paths.Paths
	store    *config.Store
	registry *theme.Registry
	version  string
}

// New creates an Upgrader for the given installation.
func New(p paths.Paths, store *config.Store, registry *theme.Registry, version string) *Upgrader {
	return &Upgrader{paths: p, store: store, registry: registry, version: version}
}

// Run performs the silent upgrade pass when needed and reports the
// version it upgraded to. ok is false when nothing had to be done.
func (u *Upgrader) Run() (upgradedTo string, ok bool) {
	if !u.needsUpgrade() {
		return "", false
	}

	log.Debug().Str("version", u.version).Msg("Running silent upgrade pass")

	if err := u.mergeConfig(); err != nil {
		log.Debug().Err(err).Msg("Upgrade: config merge skipped")
	}
	if copied, err := u.syncThemes(); err != nil {
		log.Debug().Err(err).Msg("Upgrade: theme sync failed")
	} else if copied > 0 {
		log.Debug().Int("files", copied).Msg("Upgrade: synced theme assets")
	}
	if err := u.resyncStyle(); err != nil {
		log.Debug().Err(err).Msg("Upgrade: style re-activation failed")
	}
	if copied, err := u.refreshScripts(); err != nil {
		log.Debug().Err(err).Msg("Upgrade: script refresh failed")
	} else if copied > 0 {
		log.Debug().Int("files", copied).Msg("Upgrade: refreshed runtime scripts")
	}

	return u.version, true
}

// needsUpgrade triggers on a version mismatch or a missing runtime
// script.
func (u *Upgrader) needsUpgrade() bool {
	for _, script := range []string{u.paths.HookScript(), u.paths.PlayScript()} {
		if _, err := os.Stat(script); err != nil {
			return true
		}
	}

	cfg, err := u.store.Load()
	if err != nil {
		return true
	}
	return cfg.Version != u.version
}

// mergeConfig merges the bundled default configuration under the local
// document (local values win), migrates the result, and stamps the
// running version. Skipped when the tool was never initialized.
func (u *Upgrader) mergeConfig() error {
	data, err := os.ReadFile(u.paths.ConfigFile())
	if err != nil {
		return config.ErrNotInitialized
	}

	var local map[string]json.RawMessage
	if err := json.Unmarshal(data, &local); err != nil {
		return fmt.Errorf("local config unreadable: %w", err)
	}

	merged := make(map[string]json.RawMessage)
	if err := json.Unmarshal(assets.DefaultConfig, &merged); err != nil {
		return fmt.Errorf("bundled config unreadable: %w", err)
	}
	for k, v := range local {
		merged[k] = v
	}

	return u.store.Import(merged)
}

// syncThemes copies every bundled theme file whose digest differs from
// its installed counterpart. Bundled themes are authoritative; local
// edits to them do not survive an upgrade. Returns the number of files
// copied.
func (u *Upgrader) syncThemes() (int, error) {
	copied := 0
	err := fs.WalkDir(assets.Themes, "themes", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel("themes", path)
		if err != nil {
			return err
		}
		dst := filepath.Join(u.paths.ThemesRoot(), rel)

		if d.IsDir() {
			return os.MkdirAll(dst, paths.DirPermission)
		}

		data, err := assets.Themes.ReadFile(path)
		if err != nil {
			return err
		}
		wrote, err := copyIfChanged(data, dst, paths.FilePermission)
		if err != nil {
			// One bad file must not stop the rest of the sync.
			log.Debug().Err(err).Str("file", dst).Msg("Theme asset copy failed")
			return nil
		}
		if wrote {
			copied++
		}
		return nil
	})
	return copied, err
}

// resyncStyle re-activates the style document for the configured theme,
// so activation tracks any just-synced style files.
func (u *Upgrader) resyncStyle() error {
	active, err := u.store.Theme()
	if err != nil {
		return err
	}
	return u.registry.SyncStyle(active)
}

// refreshScripts brings the two runtime scripts up to date and re-applies
// their executable bit. Returns the number of files copied.
func (u *Upgrader) refreshScripts() (int, error) {
	scripts := map[string]string{
		"scripts/" + paths.HookScriptName: u.paths.HookScript(),
		"scripts/" + paths.PlayScriptName: u.paths.PlayScript(),
	}

	copied := 0
	for src, dst := range scripts {
		data, err := assets.Scripts.ReadFile(src)
		if err != nil {
			return copied, err
		}
		if err := os.MkdirAll(filepath.Dir(dst), paths.DirPermission); err != nil {
			return copied, err
		}
		wrote, err := copyIfChanged(data, dst, paths.ScriptPermission)
		if err != nil {
			return copied, err
		}
		if wrote {
			copied++
		}
		// The executable bit matters even when the content is current.
		if err := os.Chmod(dst, paths.ScriptPermission); err != nil {
			return copied, err
		}
	}
	return copied, nil
}

// copyIfChanged writes data to dst iff dst is absent or its content
// digest differs.
func copyIfChanged(data []byte, dst string, perm os.FileMode) (bool, error) {
	want := sha256.Sum256(data)
	if existing, err := os.ReadFile(dst); err == nil {
		have := sha256.Sum256(existing)
		if bytes.Equal(want[:], have[:]) {
			return false, nil
		}
	}
	if err := os.WriteFile(dst, data, perm); err != nil {
		return false, err
	}
	return true, nil
}
