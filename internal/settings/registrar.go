package settings

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ccsounds/ccsounds/internal/hook"
	"github.com/ccsounds/ccsounds/internal/paths"
)

const hooksKey = "hooks"

// Registrar installs and removes the ccsounds command bindings in the
// host's hook-dispatch section. Ownership is structural: a binding is
// ours iff its command string references the install root.
type Registrar struct {
	file  *File
	paths paths.Paths
}

// NewRegistrar creates a Registrar for the given installation.
func NewRegistrar(p paths.Paths) *Registrar {
	return &Registrar{file: NewFile(p), paths: p}
}

// command builds the binding command for one event. Notification gets
// the dispatcher script, which reads the payload from stdin and raises a
// desktop notification alongside the sound; every other event gets the
// standalone player with the event's canonical name.
func (r *Registrar) command(e hook.Event) string {
	if e == hook.Notification {
		return r.paths.HookScript()
	}
	return fmt.Sprintf("%s %s", r.paths.PlayScript(), e.Name())
}

// entry builds the hook-section entry stored under one event key.
func (r *Registrar) entry(e hook.Event) map[string]any {
	return map[string]any{
		"matcher": ".*",
		"hooks": []any{
			map[string]any{
				"type":    "command",
				"command": r.command(e),
			},
		},
	}
}

// Setup writes one binding per known event, replacing whatever the event
// key previously held. Running it twice converges to the same structure.
func (r *Registrar) Setup() error {
	doc, err := r.file.Load()
	if err != nil {
		return err
	}

	hooks, ok := doc[hooksKey].(map[string]any)
	if !ok {
		hooks = make(map[string]any)
	}
	for _, e := range hook.Events() {
		hooks[e.Name()] = []any{r.entry(e)}
	}
	doc[hooksKey] = hooks

	if err := r.file.Save(doc); err != nil {
		return err
	}

	log.Debug().Int("events", len(hook.Events())).Msg("Registered hook bindings")
	return nil
}

// Remove filters our bindings out of every known event key and returns
// how many were removed. Keys emptied by the filter are deleted, and so
// is the whole hooks section when it empties. Unrelated bindings survive.
func (r *Registrar) Remove() (int, error) {
	doc, err := r.file.Load()
	if err != nil {
		return 0, err
	}

	hooks, ok := doc[hooksKey].(map[string]any)
	if !ok {
		return 0, nil
	}

	removed := 0
	for _, e := range hook.Events() {
		entries, ok := hooks[e.Name()].([]any)
		if !ok {
			continue
		}

		kept := make([]any, 0, len(entries))
		for _, entry := range entries {
			if r.owns(entry) {
				removed++
				continue
			}
			kept = append(kept, entry)
		}

		if len(kept) > 0 {
			hooks[e.Name()] = kept
		} else {
			delete(hooks, e.Name())
		}
	}

	if removed == 0 {
		return 0, nil
	}

	if len(hooks) == 0 {
		delete(doc, hooksKey)
	} else {
		doc[hooksKey] = hooks
	}

	if err := r.file.Save(doc); err != nil {
		return 0, err
	}

	log.Debug().Int("removed", removed).Msg("Removed hook bindings")
	return removed, nil
}

// AreInstalled reports whether any event carries one of our bindings.
// Read-only; a missing or unreadable document reads as "not installed".
func (r *Registrar) AreInstalled() bool {
	return len(r.Installed()) > 0
}

// Installed returns the events that currently carry one of our bindings.
func (r *Registrar) Installed() []hook.Event {
	doc, err := r.file.Load()
	if err != nil {
		return nil
	}

	hooks, ok := doc[hooksKey].(map[string]any)
	if !ok {
		return nil
	}

	var installed []hook.Event
	for _, e := range hook.Events() {
		entries, ok := hooks[e.Name()].([]any)
		if !ok {
			continue
		}
		for _, entry := range entries {
			if r.owns(entry) {
				installed = append(installed, e)
				break
			}
		}
	}
	return installed
}

// owns reports whether a hook-section entry belongs to this tool.
func (r *Registrar) owns(entry any) bool {
	entryMap, ok := entry.(map[string]any)
	if !ok {
		return false
	}
	bindings, ok := entryMap[hooksKey].([]any)
	if !ok {
		return false
	}
	for _, binding := range bindings {
		bindingMap, ok := binding.(map[string]any)
		if !ok {
			continue
		}
		cmd, ok := bindingMap["command"].(string)
		if ok && strings.Contains(cmd, r.paths.InstallRoot) {
			return true
		}
	}
	return false
}
