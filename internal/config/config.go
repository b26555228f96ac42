// Package config persists ccsounds user preferences as a single JSON
// document under the install root.
package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ccsounds/ccsounds/internal/hook"
)

// DefaultTheme is the theme activated on first run and the fallback when
// the active theme is removed.
const DefaultTheme = "default"

// Config is the persisted preference document. The schema is a fixed
// whitelist: unknown keys are dropped on load.
type Config struct {
	Theme        string          `json:"theme"`
	SoundEnabled bool            `json:"sound_enabled"`
	SoundVolume  float64         `json:"sound_volume"`
	SoundHooks   map[string]bool `json:"sound_hooks"`
	Version      string          `json:"version"`
}

// Default returns the built-in configuration, stamped with the given tool
// version.
func Default(version string) *Config {
	return &Config{
		Theme:        DefaultTheme,
		SoundEnabled: true,
		SoundVolume:  0.5,
		SoundHooks:   defaultHooks(),
		Version:      version,
	}
}

func defaultHooks() map[string]bool {
	hooks := make(map[string]bool, len(hook.Events()))
	for _, key := range hook.ConfigKeys() {
		hooks[key] = true
	}
	return hooks
}

// legacyRenames maps retired field names to their current counterparts.
// The rename applies only when the current name is absent.
var legacyRenames = map[string]string{
	"enabled": "sound_enabled",
	"volume":  "sound_volume",
	"hooks":   "sound_hooks",
}

// knownKeys is the document schema whitelist.
var knownKeys = map[string]bool{
	"theme":         true,
	"sound_enabled": true,
	"sound_volume":  true,
	"sound_hooks":   true,
	"version":       true,
}

// Migrate renames legacy fields, drops keys outside the schema, and merges
// the result onto the built-in defaults (present keys win). All 7 hook
// flags exist afterwards, missing ones defaulting to true. Migrating an
// already-migrated document is a no-op. The version field is preserved as
// stored; stamping it is the caller's job.
func Migrate(raw map[string]json.RawMessage) (*Config, error) {
	doc := make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		doc[k] = v
	}

	for legacy, current := range legacyRenames {
		if v, ok := doc[legacy]; ok {
			if _, exists := doc[current]; !exists {
				doc[current] = v
			}
			delete(doc, legacy)
		}
	}

	for k := range doc {
		if !knownKeys[k] {
			log.Debug().Str("key", k).Msg("Dropping unknown configuration key")
			delete(doc, k)
		}
	}

	cfg := Default("")
	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode config: %w", err)
	}
	if err := json.Unmarshal(merged, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.SoundHooks == nil {
		cfg.SoundHooks = make(map[string]bool)
	}
	for _, key := range hook.ConfigKeys() {
		if _, ok := cfg.SoundHooks[key]; !ok {
			cfg.SoundHooks[key] = true
		}
	}

	return cfg, nil
}

// ParseVolume validates a volume percentage and returns the stored
// fraction. Only integers in [0,100] are accepted; decimal strings are
// rejected.
func ParseVolume(input string) (float64, error) {
	input = strings.TrimSpace(input)
	percent, err := strconv.Atoi(input)
	if err != nil {
		return 0, &ValidationError{Field: "volume", Message: "must be an integer between 0 and 100"}
	}
	if percent < 0 || percent > 100 {
		return 0, &ValidationError{Field: "volume", Message: "must be between 0 and 100"}
	}
	return float64(percent) / 100, nil
}
