package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/ccsounds/ccsounds/internal/hook"
	"github.com/ccsounds/ccsounds/internal/paths"
)

// Store loads and persists the preference document. Mutators load the
// document on demand and write the whole file back immediately.
type Store struct {
	paths   paths.Paths
	version string
	cached  *Config
}

// NewStore creates a Store for the given installation. version is the
// running tool version, stamped on initialize and migrate.
func NewStore(p paths.Paths, version string) *Store {
	return &Store{paths: p, version: version}
}

// Load reads, migrates, and caches the preference document. A missing or
// corrupt file yields ErrNotInitialized.
func (s *Store) Load() (*Config, error) {
	if s.cached != nil {
		return s.cached, nil
	}

	data, err := os.ReadFile(s.paths.ConfigFile())
	if err != nil {
		log.Debug().Err(err).Str("path", s.paths.ConfigFile()).Msg("No readable config document")
		return nil, ErrNotInitialized
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Debug().Err(err).Msg("Config document is corrupt")
		return nil, ErrNotInitialized
	}

	cfg, err := Migrate(raw)
	if err != nil {
		return nil, err
	}

	s.cached = cfg
	return cfg, nil
}

// Save serializes the cached document as the whole file content.
func (s *Store) Save() error {
	if s.cached == nil {
		return ErrNotInitialized
	}

	if err := os.MkdirAll(filepath.Dir(s.paths.ConfigFile()), paths.DirPermission); err != nil {
		return fmt.Errorf("failed to create install directory: %w", err)
	}

	data, err := json.MarshalIndent(s.cached, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(s.paths.ConfigFile(), data, paths.FilePermission); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log.Debug().Str("path", s.paths.ConfigFile()).Msg("Saved config document")
	return nil
}

// Initialize writes the built-in defaults, stamped with the running tool
// version, replacing any existing document.
func (s *Store) Initialize() (*Config, error) {
	s.cached = Default(s.version)
	if err := s.Save(); err != nil {
		return nil, err
	}
	return s.cached, nil
}

// IsInitialized reports whether a preference document exists on disk.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.paths.ConfigFile())
	return err == nil
}

// MigrateAndStamp reloads the on-disk document, migrates it, stamps the
// running tool version, and persists the result. Used by the upgrade pass.
func (s *Store) MigrateAndStamp() error {
	s.cached = nil
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	cfg.Version = s.version
	return s.Save()
}

// Import replaces the document with the migrated form of raw, stamped
// with the running tool version.
func (s *Store) Import(raw map[string]json.RawMessage) error {
	cfg, err := Migrate(raw)
	if err != nil {
		return err
	}
	cfg.Version = s.version
	s.cached = cfg
	return s.Save()
}

// Theme returns the active theme name.
func (s *Store) Theme() (string, error) {
	cfg, err := s.Load()
	if err != nil {
		return "", err
	}
	return cfg.Theme, nil
}

// SetTheme persists a new active theme name.
func (s *Store) SetTheme(name string) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	cfg.Theme = name
	return s.Save()
}

// ToggleSound flips the master sound switch and returns the new state.
func (s *Store) ToggleSound() (bool, error) {
	cfg, err := s.Load()
	if err != nil {
		return false, err
	}
	cfg.SoundEnabled = !cfg.SoundEnabled
	if err := s.Save(); err != nil {
		return false, err
	}
	return cfg.SoundEnabled, nil
}

// SetSoundEnabled sets the master sound switch.
func (s *Store) SetSoundEnabled(enabled bool) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	cfg.SoundEnabled = enabled
	return s.Save()
}

// SetVolume persists a volume fraction in [0,1].
func (s *Store) SetVolume(fraction float64) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	cfg.SoundVolume = fraction
	return s.Save()
}

// HookState reports whether sounds are enabled for an event, defaulting
// to true when the key is absent.
func (s *Store) HookState(e hook.Event) (bool, error) {
	cfg, err := s.Load()
	if err != nil {
		return false, err
	}
	enabled, ok := cfg.SoundHooks[e.ConfigKey()]
	if !ok {
		return true, nil
	}
	return enabled, nil
}

// SetHookState persists the per-event sound flag.
func (s *Store) SetHookState(e hook.Event, enabled bool) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	if cfg.SoundHooks == nil {
		cfg.SoundHooks = make(map[string]bool)
	}
	cfg.SoundHooks[e.ConfigKey()] = enabled
	return s.Save()
}
