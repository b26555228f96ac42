package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ccsounds/ccsounds/internal/config"
	"github.com/ccsounds/ccsounds/internal/hook"
)

func handleSounds(ctx context.Context, c *cli.Command) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	var enabled bool
	switch mode := c.Args().Get(0); mode {
	case "on":
		err = a.store.SetSoundEnabled(true)
		enabled = true
	case "off":
		err = a.store.SetSoundEnabled(false)
	case "", "toggle":
		enabled, err = a.store.ToggleSound()
	default:
		return fmt.Errorf("unknown mode: %s (use on, off, or toggle)", mode)
	}
	if err != nil {
		return err
	}

	if enabled {
		fmt.Println("Sounds enabled")
	} else {
		fmt.Println("Sounds disabled")
	}
	return nil
}

func handleVolume(ctx context.Context, c *cli.Command) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	input := c.Args().Get(0)
	if input == "" {
		cfg, err := a.store.Load()
		if err != nil {
			return err
		}
		fmt.Printf("Volume: %d%%\n", int(cfg.SoundVolume*100))
		return nil
	}

	fraction, err := config.ParseVolume(input)
	if err != nil {
		return err
	}
	if err := a.store.SetVolume(fraction); err != nil {
		return err
	}
	fmt.Printf("Volume set to %s%%\n", input)
	return nil
}

func handleHookEnable(ctx context.Context, c *cli.Command) error {
	return setHookState(c, true)
}

func handleHookDisable(ctx context.Context, c *cli.Command) error {
	return setHookState(c, false)
}

func setHookState(c *cli.Command, enabled bool) error {
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
	if err := a.store.SetHookState(e, enabled); err != nil {
		return err
	}

	if enabled {
		fmt.Printf("Enabled sound for %s\n", e.Name())
	} else {
		fmt.Printf("Disabled sound for %s\n", e.Name())
	}
	return nil
}
