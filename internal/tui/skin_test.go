package tui

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// Skin tests change package-level colours, so they do not run in parallel.

func restoreDefaultSkin(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		if err := InitializeSkin("default", ""); err != nil {
			t.Fatalf("restore default skin: %v", err)
		}
	})
}

func TestBuiltinSkins(t *testing.T) {
	got := BuiltinSkins()
	for _, want := range []string{"default", "mono"} {
		if !slices.Contains(got, want) {
			t.Fatalf("builtin skins %v missing %q", got, want)
		}
	}
}

func TestInitializeSkin_Builtin(t *testing.T) {
	restoreDefaultSkin(t)

	if err := InitializeSkin("mono", ""); err != nil {
		t.Fatalf("InitializeSkin(mono): %v", err)
	}
	if CurrentSkin() != "mono" {
		t.Fatalf("current skin = %q", CurrentSkin())
	}
	if ColorMuted != lipgloss.Color("8") {
		t.Fatalf("muted = %q, want 8", ColorMuted)
	}
	// mono defines no icons; glyphs come from the default set.
	if got := Glyph("fas fa-cogs"); got != "⚙" {
		t.Fatalf("glyph = %q", got)
	}
}

func TestInitializeSkin_UnknownKeepsCurrent(t *testing.T) {
	restoreDefaultSkin(t)

	if err := InitializeSkin("neon", t.TempDir()); err == nil {
		t.Fatal("expected error for unknown skin")
	}
	if CurrentSkin() != "default" {
		t.Fatalf("current skin = %q, want default", CurrentSkin())
	}
}

func TestInitializeSkin_FileOverridesBuiltin(t *testing.T) {
	restoreDefaultSkin(t)

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "skins"), 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("name: custom\ncolors:\n  accent: \"#ff00ff\"\nicons:\n  fas fa-cogs: \"*\"\n")
	if err := os.WriteFile(filepath.Join(dir, "skins", "default.yml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := InitializeSkin("default", dir); err != nil {
		t.Fatalf("InitializeSkin: %v", err)
	}
	if ColorAccent != lipgloss.Color("#ff00ff") {
		t.Fatalf("accent = %q", ColorAccent)
	}
	if ColorText != lipgloss.Color("15") {
		t.Fatalf("unset colour should fall back, got %q", ColorText)
	}
	if got := Glyph("fas fa-cogs"); got != "*" {
		t.Fatalf("glyph = %q, want override", got)
	}
}

func TestInitializeSkin_RejectsUnknownKeys(t *testing.T) {
	restoreDefaultSkin(t)

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "skins"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skins", "bad.yml"), []byte("name: bad\nfont: comic\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := InitializeSkin("bad", dir); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestGlyph_UnknownTag(t *testing.T) {
	if got := Glyph("fas fa-unicorn"); got != fallbackGlyph {
		t.Fatalf("glyph = %q, want fallback", got)
	}
}
