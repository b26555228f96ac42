package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/ccsounds/ccsounds/internal/theme"
)

func handleThemesList(ctx context.Context, c *cli.Command) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	active, _ := a.store.Theme()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Printf("  %s  %s (no custom sounds)\n", activeMarker(active == theme.ReservedTheme), bold(theme.ReservedTheme))
	for _, t := range a.registry.List() {
		style := ""
		if t.HasStyle {
			style = ", output style"
		}
		fmt.Printf("  %s  %s — %s (%d sounds%s)\n",
			activeMarker(t.Name == active), bold(t.Name), t.Description, len(t.Sounds), style)
	}
	return nil
}

func activeMarker(active bool) string {
	if active {
		return color.GreenString("●")
	}
	return " "
}

func handleThemesSet(ctx context.Context, c *cli.Command) error {
	name := c.Args().Get(0)
	if name == "" {
		return fmt.Errorf("theme name is required")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.registry.SetActive(name); err != nil {
		return err
	}
	fmt.Printf("Set active theme to: %s\n", name)
	return nil
}

func handleThemesRemove(ctx context.Context, c *cli.Command) error {
	name := c.Args().Get(0)
	if name == "" {
		return fmt.Errorf("theme name is required")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.registry.Remove(name); err != nil {
		return err
	}
	fmt.Printf("Removed theme: %s\n", name)

	if active, err := a.store.Theme(); err == nil {
		fmt.Printf("Active theme: %s\n", active)
	}
	return nil
}

func handleThemesInstall(ctx context.Context, c *cli.Command) error {
	dir := c.Args().Get(0)
	name := c.Args().Get(1)
	if dir == "" || name == "" {
		return fmt.Errorf("usage: ccsounds themes install <dir> <name>")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.registry.Install(dir, name); err != nil {
		return err
	}
	fmt.Printf("Installed theme: %s\n", name)
	fmt.Printf("Activate it with: ccsounds themes set %s\n", name)
	return nil
}
