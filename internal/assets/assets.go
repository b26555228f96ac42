// Package assets bundles the theme templates, runtime scripts, and the
// default configuration into the binary. The asset synchronizer extracts
// them into the install root.
package assets

import "embed"

// Themes holds the bundled theme directories, one per theme name.
//
//go:embed all:themes
var Themes embed.FS

// Scripts holds the two runtime scripts: the notification dispatcher and
// the standalone player.
//
//go:embed scripts
var Scripts embed.FS

// DefaultConfig is the bundled default preference document.
//
//go:embed config.default.json
var DefaultConfig []byte
