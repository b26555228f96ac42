package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/ccsounds/ccsounds/internal/config"
	"github.com/ccsounds/ccsounds/internal/hook"
)

func handleInit(ctx context.Context, c *cli.Command) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if a.store.IsInitialized() {
		fmt.Println("ccsounds is already initialized")
	} else {
		if _, err := a.store.Initialize(); err != nil {
			return err
		}
		fmt.Printf("Created %s with default configuration\n", a.paths.ConfigFile())
	}

	if _, ok := a.upgrader.Run(); ok {
		fmt.Println("Installed bundled themes and runtime scripts")
	}

	if err := a.registrar.Setup(); err != nil {
		return fmt.Errorf("failed to register hooks: %w", err)
	}
	fmt.Printf("Registered %d hook bindings in %s\n", len(hook.Events()), a.settings.Path())

	active, _ := a.store.Theme()
	fmt.Printf("Active theme: %s\n", active)
	return nil
}

func handleStatus(ctx context.Context, c *cli.Command) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	cfg, err := a.store.Load()
	if errors.Is(err, config.ErrNotInitialized) {
		fmt.Printf("%s ccsounds is not initialized — run 'ccsounds init'\n", red("✗"))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("ccsounds %s\n\n", version)
	if cfg.SoundEnabled {
		fmt.Printf("%s Sounds enabled, volume %d%%\n", green("✓"), int(cfg.SoundVolume*100))
	} else {
		fmt.Printf("%s Sounds disabled\n", yellow("•"))
	}
	fmt.Printf("%s Active theme: %s\n", green("✓"), cfg.Theme)

	installed := a.registrar.Installed()
	if len(installed) == len(hook.Events()) {
		fmt.Printf("%s Hooks registered (%d/%d)\n", green("✓"), len(installed), len(hook.Events()))
	} else if len(installed) > 0 {
		fmt.Printf("%s Hooks partially registered (%d/%d) — run 'ccsounds hooks setup'\n",
			yellow("•"), len(installed), len(hook.Events()))
	} else {
		fmt.Printf("%s Hooks not registered — run 'ccsounds hooks setup'\n", yellow("•"))
	}

	if style, ok, _ := a.settings.OutputStyle(); ok {
		fmt.Printf("%s Output style: %s\n", green("✓"), style)
	}

	fmt.Println("\nPer-event sounds:")
	for _, e := range hook.Events() {
		enabled, _ := a.store.HookState(e)
		marker := green("on ")
		if !enabled {
			marker = yellow("off")
		}
		fmt.Printf("  %s %s\n", marker, e.Name())
	}
	return nil
}

func handleUninstall(ctx context.Context, c *cli.Command) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	// Best-effort, step by step: one failing surface must not keep the
	// others installed. Failures are reported, not fatal.
	var report []string

	if removed, err := a.registrar.Remove(); err != nil {
		report = append(report, fmt.Sprintf("hooks: %v", err))
	} else {
		report = append(report, fmt.Sprintf("hooks: removed %d bindings", removed))
	}

	if err := a.settings.ClearOutputStyle(); err != nil {
		report = append(report, fmt.Sprintf("output style: %v", err))
	} else {
		report = append(report, "output style: cleared")
	}

	if err := os.RemoveAll(a.paths.InstallRoot); err != nil {
		report = append(report, fmt.Sprintf("install root: %v", err))
	} else {
		report = append(report, fmt.Sprintf("install root: removed %s", a.paths.InstallRoot))
	}

	for _, line := range report {
		fmt.Println("  " + line)
	}
	fmt.Println("Uninstall finished")
	return nil
}
