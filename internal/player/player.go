// Package player resolves hook events to sound files and launches a
// platform audio player as a detached process. Nothing in this package
// ever returns an error: notification playback is best-effort by
// contract, and the caller (the host's hook dispatcher) must never be
// delayed or interrupted by it.
package player

import (
	"fmt"
	"os/exec"

	"github.com/rs/zerolog/log"

	"github.com/ccsounds/ccsounds/internal/config"
	"github.com/ccsounds/ccsounds/internal/hook"
	"github.com/ccsounds/ccsounds/internal/theme"
)

// Player decides whether and how to play the sound for a hook event.
type Player struct {
	store    *config.Store
	registry *theme.Registry
}

// New creates a Player over the given store and theme registry.
func New(store *config.Store, registry *theme.Registry) *Player {
	return &Player{store: store, registry: registry}
}

// ShouldPlay reports whether the event should produce a sound: master
// switch on, volume above zero, and the per-event flag enabled.
func (p *Player) ShouldPlay(e hook.Event) bool {
	cfg, err := p.store.Load()
	if err != nil {
		log.Debug().Err(err).Msg("No configuration, staying silent")
		return false
	}
	if !cfg.SoundEnabled || cfg.SoundVolume <= 0 {
		return false
	}
	enabled, ok := cfg.SoundHooks[e.ConfigKey()]
	if !ok {
		return true
	}
	return enabled
}

// Play plays the sound for an event if ShouldPlay allows it.
func (p *Player) Play(e hook.Event) {
	if !p.ShouldPlay(e) {
		return
	}
	p.launch(e)
}

// TestSingle previews an event's sound through the normal gate.
func (p *Player) TestSingle(e hook.Event) {
	p.Play(e)
}

// TestSingleForced previews an event's sound, bypassing the ShouldPlay
// gate. Used by interactive preview actions.
func (p *Player) TestSingleForced(e hook.Event) {
	p.launch(e)
}

// launch resolves the sound file and starts a detached player process.
// Every failure mode degrades to silence.
func (p *Player) launch(e hook.Event) {
	cfg, err := p.store.Load()
	if err != nil {
		log.Debug().Err(err).Msg("No configuration, staying silent")
		return
	}

	file := p.registry.ResolveSoundPath(cfg.Theme, e)
	if file == "" {
		log.Debug().Str("theme", cfg.Theme).Str("event", e.Name()).Msg("No sound asset for event")
		return
	}

	cmd := playbackCommand(file, cfg.SoundVolume)
	if cmd == nil {
		log.Debug().Msg("No audio player available")
		return
	}

	if err := startDetached(cmd); err != nil {
		log.Debug().Err(err).Str("player", cmd.Path).Msg("Failed to start playback")
		return
	}
	log.Debug().Str("file", file).Str("player", cmd.Path).Msg("Playback started")
}

// pulseVolume maps a volume fraction onto paplay's 0-65536 integer scale.
func pulseVolume(fraction float64) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return fmt.Sprintf("%d", int(fraction*65536))
}

// commandAvailable checks whether a player binary is on PATH.
func commandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
