package main

import (
	"github.com/ccsounds/ccsounds/internal/config"
	"github.com/ccsounds/ccsounds/internal/paths"
	"github.com/ccsounds/ccsounds/internal/player"
	"github.com/ccsounds/ccsounds/internal/settings"
	"github.com/ccsounds/ccsounds/internal/theme"
	"github.com/ccsounds/ccsounds/internal/upgrade"
)

// app wires every component over one resolved Paths value. Handlers
// build it once per invocation instead of reaching for globals.
type app struct {
	paths     paths.Paths
	store     *config.Store
	registry  *theme.Registry
	registrar *settings.Registrar
	settings  *settings.File
	player    *player.Player
	upgrader  *upgrade.Upgrader
}

func newApp() (*app, error) {
	p, err := paths.Resolve()
	if err != nil {
		return nil, err
	}

	store := config.NewStore(p, version)
	registry := theme.NewRegistry(p, store)

	return &app{
		paths:     p,
		store:     store,
		registry:  registry,
		registrar: settings.NewRegistrar(p),
		settings:  settings.NewFile(p),
		player:    player.New(store, registry),
		upgrader:  upgrade.New(p, store, registry, version),
	}, nil
}
