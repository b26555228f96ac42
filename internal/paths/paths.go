// Package paths resolves the on-disk layout of a ccsounds installation.
// Every component receives a Paths value instead of computing locations on
// its own, so tests can point the whole tool at a temporary directory.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// InstallDirName is the directory under the Claude config dir that
	// holds everything ccsounds owns.
	InstallDirName = "ccsounds"

	// ConfigFileName is the local preference document.
	ConfigFileName = "config.json"

	// ThemesDirName holds one subdirectory per installed theme.
	ThemesDirName = "themes"

	// HookScriptName is the notification dispatcher invoked by Claude Code.
	HookScriptName = "ccsounds-hook.sh"

	// PlayScriptName is the standalone player invoked per hook event.
	PlayScriptName = "play-sound.sh"

	// SettingsFileName is the host-owned settings document.
	SettingsFileName = "settings.json"

	// File permissions
	DirPermission    = 0755
	FilePermission   = 0644
	ScriptPermission = 0755
)

// Paths describes every location ccsounds reads or writes.
type Paths struct {
	// ClaudeDir is the host configuration directory, usually ~/.claude.
	ClaudeDir string

	// InstallRoot is ClaudeDir/ccsounds.
	InstallRoot string
}

// Resolve builds the default Paths. CLAUDE_CONFIG_DIR overrides the host
// directory, mirroring how Claude Code itself resolves it.
func Resolve() (Paths, error) {
	if envDir := os.Getenv("CLAUDE_CONFIG_DIR"); envDir != "" {
		return ForClaudeDir(envDir), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("failed to get home directory: %w", err)
	}
	return ForClaudeDir(filepath.Join(homeDir, ".claude")), nil
}

// ForClaudeDir builds Paths rooted at an explicit host directory.
func ForClaudeDir(claudeDir string) Paths {
	return Paths{
		ClaudeDir:   claudeDir,
		InstallRoot: filepath.Join(claudeDir, InstallDirName),
	}
}

// ConfigFile returns the local preference document path.
func (p Paths) ConfigFile() string {
	return filepath.Join(p.InstallRoot, ConfigFileName)
}

// ThemesRoot returns the directory holding installed themes.
func (p Paths) ThemesRoot() string {
	return filepath.Join(p.InstallRoot, ThemesDirName)
}

// ThemeDir returns the directory of a single theme.
func (p Paths) ThemeDir(name string) string {
	return filepath.Join(p.ThemesRoot(), name)
}

// HookScript returns the notification dispatcher path.
func (p Paths) HookScript() string {
	return filepath.Join(p.InstallRoot, HookScriptName)
}

// PlayScript returns the standalone player path.
func (p Paths) PlayScript() string {
	return filepath.Join(p.InstallRoot, PlayScriptName)
}

// SettingsFile returns the host-owned settings document path.
func (p Paths) SettingsFile() string {
	return filepath.Join(p.ClaudeDir, SettingsFileName)
}
