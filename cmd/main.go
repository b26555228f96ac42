package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

var (
	version  = "dev"
	revision = "none"
)

// hookInvoked marks the commands Claude Code runs per hook event. They
// skip the startup upgrade pass and keep logging quiet so the host is
// never delayed or polluted.
var hookInvoked = map[string]bool{
	"play":   true,
	"notify": true,
	"test":   true,
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "ccsounds",
		Usage:   "Sound notifications for Claude Code hook events",
		Version: fmt.Sprintf("%s (rev: %s)", version, revision),
		Description: `ccsounds plays short theme sounds when Claude Code raises hook events.
It registers itself in Claude Code's settings, keeps installed themes in
sync across upgrades, and can activate a matching output style.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   "Enable verbose logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "init",
				Usage:   "Initialize configuration and register Claude Code hooks",
				Action:  handleInit,
				Aliases: []string{"i"},
			},
			{
				Name:    "status",
				Usage:   "Show configuration, hooks, and theme state",
				Action:  handleStatus,
				Aliases: []string{"st"},
			},
			{
				Name:    "themes",
				Usage:   "Manage sound themes",
				Aliases: []string{"t"},
				Commands: []*cli.Command{
					{
						Name:    "list",
						Usage:   "List installed themes",
						Action:  handleThemesList,
						Aliases: []string{"ls"},
					},
					{
						Name:      "set",
						Usage:     "Activate a theme",
						Action:    handleThemesSet,
						ArgsUsage: "<name>",
					},
					{
						Name:      "remove",
						Usage:     "Remove an installed theme",
						Action:    handleThemesRemove,
						Aliases:   []string{"rm"},
						ArgsUsage: "<name>",
					},
					{
						Name:      "install",
						Usage:     "Install a theme from a local directory",
						Action:    handleThemesInstall,
						ArgsUsage: "<dir> <name>",
					},
				},
			},
			{
				Name:      "sounds",
				Usage:     "Turn sounds on or off",
				Action:    handleSounds,
				ArgsUsage: "[on|off|toggle]",
			},
			{
				Name:      "volume",
				Usage:     "Show or set the volume (0-100)",
				Action:    handleVolume,
				ArgsUsage: "[percent]",
			},
			{
				Name:  "hooks",
				Usage: "Manage Claude Code hook registration",
				Commands: []*cli.Command{
					{
						Name:   "setup",
						Usage:  "Register hook bindings in Claude Code settings",
						Action: handleHooksSetup,
					},
					{
						Name:   "remove",
						Usage:  "Remove our hook bindings from Claude Code settings",
						Action: handleHooksRemove,
					},
					{
						Name:      "enable",
						Usage:     "Enable the sound for one hook event",
						Action:    handleHookEnable,
						ArgsUsage: "<HookEventName>",
					},
					{
						Name:      "disable",
						Usage:     "Disable the sound for one hook event",
						Action:    handleHookDisable,
						ArgsUsage: "<HookEventName>",
					},
				},
			},
			{
				Name:      "play",
				Usage:     "Play the sound for a hook event (invoked by Claude Code)",
				Action:    handlePlay,
				ArgsUsage: "<HookEventName>",
			},
			{
				Name:      "test",
				Usage:     "Preview the sound for a hook event, ignoring enablement",
				Action:    handleTest,
				ArgsUsage: "<HookEventName>",
			},
			{
				Name:   "notify",
				Usage:  "Handle a Notification hook event from stdin",
				Action: handleNotify,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "desktop",
						Usage: "Show a desktop notification",
						Value: true,
					},
				},
			},
			{
				Name:   "uninstall",
				Usage:  "Remove hooks, style activation, and installed files",
				Action: handleUninstall,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) error {
			if c.Bool("verbose") {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}

			// Hook-invoked commands read config only and must return
			// fast; everything else gets the silent upgrade pass.
			command := c.Args().First()
			if hookInvoked[command] {
				if !c.Bool("verbose") {
					zerolog.SetGlobalLevel(zerolog.WarnLevel)
				}
				return nil
			}
			if command == "init" {
				// init runs the pass itself and reports what it did.
				return nil
			}

			app, err := newApp()
			if err != nil {
				log.Debug().Err(err).Msg("Skipping upgrade pass")
				return nil
			}
			if upgradedTo, ok := app.upgrader.Run(); ok {
				log.Debug().Str("version", upgradedTo).Msg("Installation upgraded")
			}
			return nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("Failed to run application")
	}
}
