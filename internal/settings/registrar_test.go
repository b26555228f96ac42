package settings

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccsounds/ccsounds/internal/hook"
	"github.com/ccsounds/ccsounds/internal/paths"
)

func readDoc(t *testing.T, p paths.Paths) map[string]any {
	t.Helper()
	data, err := os.ReadFile(p.SettingsFile())
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func writeDoc(t *testing.T, p paths.Paths, doc map[string]any) {
	t.Helper()
	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(p.ClaudeDir, 0755))
	require.NoError(t, os.WriteFile(p.SettingsFile(), data, 0644))
}

func TestSetupCreatesAllBindings(t *testing.T) {
	p := paths.ForClaudeDir(t.TempDir())
	r := NewRegistrar(p)

	require.NoError(t, r.Setup())

	doc := readDoc(t, p)
	hooks, ok := doc["hooks"].(map[string]any)
	require.True(t, ok, "hooks section missing")
	assert.Len(t, hooks, len(hook.Events()))

	entries, ok := hooks["Stop"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.Equal(t, ".*", entry["matcher"])
	bindings := entry["hooks"].([]any)
	require.Len(t, bindings, 1)
	binding := bindings[0].(map[string]any)
	assert.Equal(t, "command", binding["type"])
	assert.Contains(t, binding["command"], p.PlayScript())
	assert.Contains(t, binding["command"], "Stop")

	t.Run("NotificationUsesDispatcher", func(t *testing.T) {
		entries := hooks["Notification"].([]any)
		require.Len(t, entries, 1)
		binding := entries[0].(map[string]any)["hooks"].([]any)[0].(map[string]any)
		assert.Equal(t, p.HookScript(), binding["command"])
	})
}

func TestSetupIsIdempotent(t *testing.T) {
	p := paths.ForClaudeDir(t.TempDir())
	r := NewRegistrar(p)

	require.NoError(t, r.Setup())
	first := readDoc(t, p)
	require.NoError(t, r.Setup())
	second := readDoc(t, p)

	assert.Equal(t, first, second)

	hooks := second["hooks"].(map[string]any)
	for event, entries := range hooks {
		assert.Len(t, entries, 1, "event %s accumulated duplicate entries", event)
	}
}

func TestSetupPreservesUnrelatedSettings(t *testing.T) {
	p := paths.ForClaudeDir(t.TempDir())
	writeDoc(t, p, map[string]any{
		"model": "opus",
		"env":   map[string]any{"FOO": "bar"},
	})

	require.NoError(t, NewRegistrar(p).Setup())

	doc := readDoc(t, p)
	assert.Equal(t, "opus", doc["model"])
	assert.Equal(t, map[string]any{"FOO": "bar"}, doc["env"])
}

func TestRemove(t *testing.T) {
	p := paths.ForClaudeDir(t.TempDir())
	r := NewRegistrar(p)

	require.NoError(t, r.Setup())

	// A third party adds its own binding under an event key we also use.
	foreign := map[string]any{
		"matcher": ".*",
		"hooks": []any{
			map[string]any{"type": "command", "command": "/usr/local/bin/other-tool Stop"},
		},
	}
	doc := readDoc(t, p)
	hooks := doc["hooks"].(map[string]any)
	hooks["Stop"] = append(hooks["Stop"].([]any), foreign)
	writeDoc(t, p, doc)

	removed, err := r.Remove()
	require.NoError(t, err)
	assert.Equal(t, len(hook.Events()), removed)

	after := readDoc(t, p)
	remaining, ok := after["hooks"].(map[string]any)
	require.True(t, ok, "hooks section should survive while a foreign binding remains")
	assert.Len(t, remaining, 1)
	entries := remaining["Stop"].([]any)
	require.Len(t, entries, 1)
	binding := entries[0].(map[string]any)["hooks"].([]any)[0].(map[string]any)
	assert.Equal(t, "/usr/local/bin/other-tool Stop", binding["command"])

	t.Run("SecondRemoveIsNoOp", func(t *testing.T) {
		removed, err := r.Remove()
		require.NoError(t, err)
		assert.Zero(t, removed)
	})
}

func TestRemoveDeletesEmptySection(t *testing.T) {
	p := paths.ForClaudeDir(t.TempDir())
	r := NewRegistrar(p)

	require.NoError(t, r.Setup())
	_, err := r.Remove()
	require.NoError(t, err)

	doc := readDoc(t, p)
	_, present := doc["hooks"]
	assert.False(t, present, "empty hooks section should be deleted")
}

func TestInstalledReadOnly(t *testing.T) {
	p := paths.ForClaudeDir(t.TempDir())
	r := NewRegistrar(p)

	assert.False(t, r.AreInstalled())
	assert.Empty(t, r.Installed())
	_, err := os.Stat(p.SettingsFile())
	assert.True(t, os.IsNotExist(err), "read-only check must not create the document")

	require.NoError(t, r.Setup())
	assert.True(t, r.AreInstalled())
	assert.Len(t, r.Installed(), len(hook.Events()))
}

func TestOutputStyle(t *testing.T) {
	p := paths.ForClaudeDir(t.TempDir())
	f := NewFile(p)

	_, ok, err := f.OutputStyle()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, f.SetOutputStyle("default"))
	name, ok, err := f.OutputStyle()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "default", name)

	require.NoError(t, f.ClearOutputStyle())
	_, ok, err = f.OutputStyle()
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("ClearAbsentIsNoOp", func(t *testing.T) {
		require.NoError(t, f.ClearOutputStyle())
	})
}
