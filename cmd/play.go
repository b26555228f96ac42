package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/ccsounds/ccsounds/internal/hook"
	"github.com/ccsounds/ccsounds/internal/notify"
)

// handlePlay is the standalone notification entry point Claude Code
// invokes per hook event. A missing argument is the only failure mode;
// everything past that exits success, playing at most one sound.
func handlePlay(ctx context.Context, c *cli.Command) error {
	name := c.Args().Get(0)
	if name == "" {
		fmt.Fprintln(os.Stderr, "usage: ccsounds play <HookEventName>")
		return cli.Exit("", 1)
	}

	e, err := hook.Parse(name)
	if err != nil {
		log.Debug().Err(err).Msg("Ignoring unknown hook event")
		return nil
	}

	a, err := newApp()
	if err != nil {
		log.Debug().Err(err).Msg("Cannot resolve installation, staying silent")
		return nil
	}

	a.player.Play(e)
	return nil
}

// handleTest previews an event's sound, bypassing the enablement gate.
func handleTest(ctx context.Context, c *cli.Command) error {
	name := c.Args().Get(0)
	if name == "" {
		return fmt.Errorf("hook event name is required")
	}
	e, err := hook.Parse(name)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	a.player.TestSingleForced(e)
	fmt.Printf("Previewing %s\n", e.Name())
	return nil
}

// handleNotify is the dispatcher entry point: it reads the Notification
// payload from stdin, shows a desktop notification, and plays the
// Notification sound. Best-effort on every step.
func handleNotify(ctx context.Context, c *cli.Command) error {
	payload, err := hook.ReadNotificationPayload()
	if err != nil {
		log.Debug().Err(err).Msg("No notification payload on stdin")
		payload = &hook.NotificationPayload{}
	}

	if c.Bool("desktop") {
		notify.Show(payload.Message)
	}

	a, err := newApp()
	if err != nil {
		log.Debug().Err(err).Msg("Cannot resolve installation, staying silent")
		return nil
	}

	a.player.Play(hook.Notification)
	return nil
}
