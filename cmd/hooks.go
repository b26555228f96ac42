package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ccsounds/ccsounds/internal/hook"
)

func handleHooksSetup(ctx context.Context, c *cli.Command) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.registrar.Setup(); err != nil {
		return err
	}
	fmt.Printf("Registered %d hook bindings in %s\n", len(hook.Events()), a.settings.Path())
	return nil
}

func handleHooksRemove(ctx context.Context, c *cli.Command) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	removed, err := a.registrar.Remove()
	if err != nil {
		return err
	}
	if removed == 0 {
		fmt.Println("No ccsounds hook bindings found")
		return nil
	}
	fmt.Printf("Removed %d hook bindings\n", removed)
	return nil
}
