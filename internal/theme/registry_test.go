package theme

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ccsounds/ccsounds/internal/config"
	"github.com/ccsounds/ccsounds/internal/hook"
	"github.com/ccsounds/ccsounds/internal/paths"
)

func testRegistry(t *testing.T) (*Registry, *config.Store, paths.Paths) {
	t.Helper()
	p := paths.ForClaudeDir(t.TempDir())
	store := config.NewStore(p, "1.0.0")
	if _, err := store.Initialize(); err != nil {
		t.Fatal(err)
	}
	return NewRegistry(p, store), store, p
}

func installTheme(t *testing.T, p paths.Paths, name string, files map[string]string) {
	t.Helper()
	dir := p.ThemeDir(name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	for file, content := range files {
		if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestListMissingRoot(t *testing.T) {
	r, _, _ := testRegistry(t)
	if themes := r.List(); len(themes) != 0 {
		t.Errorf("Expected empty list without themes root, got %v", themes)
	}
}

func TestListDescribesThemes(t *testing.T) {
	r, _, p := testRegistry(t)
	installTheme(t, p, "default", map[string]string{
		"README.md":        "\n# Gentle chimes\n\nBody text.",
		"Stop.wav":         "x",
		"Notification.mp3": "x",
		"style.md":         "style",
		"ignore.txt":       "x",
	})
	installTheme(t, p, "bare", map[string]string{
		"Stop.wav": "x",
	})

	themes := r.List()
	if len(themes) != 2 {
		t.Fatalf("Expected 2 themes, got %d", len(themes))
	}

	bare, def := themes[0], themes[1]
	if def.Name != "default" || bare.Name != "bare" {
		t.Fatalf("Unexpected order: %v", themes)
	}
	if def.Description != "Gentle chimes" {
		t.Errorf("Expected heading description, got %q", def.Description)
	}
	if bare.Description != "No description" {
		t.Errorf("Expected placeholder description, got %q", bare.Description)
	}
	if !def.HasStyle || bare.HasStyle {
		t.Error("Style detection wrong")
	}
	want := []string{"Notification", "Stop"}
	if len(def.Sounds) != len(want) || def.Sounds[0] != want[0] || def.Sounds[1] != want[1] {
		t.Errorf("Expected sounds %v, got %v", want, def.Sounds)
	}
}

func TestResolveSoundPath(t *testing.T) {
	r, _, p := testRegistry(t)
	installTheme(t, p, "default", map[string]string{
		"Stop.mp3":         "x",
		"Notification.wav": "x",
		"Notification.mp3": "x",
	})

	t.Run("ExtensionOrder", func(t *testing.T) {
		got := r.ResolveSoundPath("default", hook.Notification)
		if filepath.Base(got) != "Notification.wav" {
			t.Errorf("Expected .wav to win, got %q", got)
		}
	})

	t.Run("FallbackExtension", func(t *testing.T) {
		got := r.ResolveSoundPath("default", hook.Stop)
		if filepath.Base(got) != "Stop.mp3" {
			t.Errorf("Expected Stop.mp3, got %q", got)
		}
	})

	t.Run("NoFile", func(t *testing.T) {
		if got := r.ResolveSoundPath("default", hook.PreToolUse); got != "" {
			t.Errorf("Expected empty path, got %q", got)
		}
	})

	t.Run("NoCrossThemeFallback", func(t *testing.T) {
		if got := r.ResolveSoundPath("other", hook.Stop); got != "" {
			t.Errorf("Expected empty path for unknown theme, got %q", got)
		}
	})
}

func TestSetActive(t *testing.T) {
	r, store, p := testRegistry(t)
	installTheme(t, p, "styled", map[string]string{"style.md": "s"})
	installTheme(t, p, "plain", map[string]string{"Stop.wav": "x"})

	t.Run("UnknownTheme", func(t *testing.T) {
		err := r.SetActive("missing")
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("Expected NotFoundError, got %v", err)
		}
	})

	t.Run("StyledThemeSetsOutputStyle", func(t *testing.T) {
		if err := r.SetActive("styled"); err != nil {
			t.Fatal(err)
		}
		active, _ := store.Theme()
		if active != "styled" {
			t.Errorf("Config theme not updated: %q", active)
		}
		if style := readOutputStyle(t, p); style != "styled" {
			t.Errorf("Expected outputStyle=styled, got %q", style)
		}
	})

	t.Run("PlainThemeClearsOutputStyle", func(t *testing.T) {
		if err := r.SetActive("plain"); err != nil {
			t.Fatal(err)
		}
		if style := readOutputStyle(t, p); style != "" {
			t.Errorf("Expected cleared outputStyle, got %q", style)
		}
	})

	t.Run("ReservedThemeAlwaysValid", func(t *testing.T) {
		if err := r.SetActive(ReservedTheme); err != nil {
			t.Fatal(err)
		}
		active, _ := store.Theme()
		if active != ReservedTheme {
			t.Errorf("Expected system theme active, got %q", active)
		}
	})
}

func TestRemove(t *testing.T) {
	r, store, p := testRegistry(t)
	installTheme(t, p, "extra", map[string]string{"Stop.wav": "x"})
	installTheme(t, p, "default", map[string]string{"Stop.wav": "x"})

	t.Run("Reserved", func(t *testing.T) {
		if err := r.Remove(ReservedTheme); !errors.Is(err, ErrReservedTheme) {
			t.Errorf("Expected ErrReservedTheme, got %v", err)
		}
	})

	t.Run("ActiveThemeResetsToDefault", func(t *testing.T) {
		if err := r.SetActive("extra"); err != nil {
			t.Fatal(err)
		}
		if err := r.Remove("extra"); err != nil {
			t.Fatal(err)
		}
		if r.Exists("extra") {
			t.Error("Theme directory still present")
		}
		active, _ := store.Theme()
		if active != config.DefaultTheme {
			t.Errorf("Expected fallback to %q, got %q", config.DefaultTheme, active)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		err := r.Remove("extra")
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("Expected NotFoundError, got %v", err)
		}
	})
}

func TestInstall(t *testing.T) {
	r, _, _ := testRegistry(t)

	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "Stop.wav"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := r.Install(src, "custom"); err != nil {
		t.Fatal(err)
	}
	if !r.Exists("custom") {
		t.Error("Installed theme not found")
	}
	if got := r.ResolveSoundPath("custom", hook.Stop); got == "" {
		t.Error("Installed sound not resolvable")
	}

	if err := r.Install(src, ReservedTheme); !errors.Is(err, ErrReservedTheme) {
		t.Errorf("Expected ErrReservedTheme, got %v", err)
	}
}

func readOutputStyle(t *testing.T, p paths.Paths) string {
	t.Helper()
	data, err := os.ReadFile(p.SettingsFile())
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	style, _ := doc["outputStyle"].(string)
	return style
}
