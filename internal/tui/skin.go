package tui

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed skins/*.yml
var builtinSkins embed.FS

// Skin is a named colour palette plus the glyphs used for icon tags.
type Skin struct {
	Name   string            `yaml:"name"`
	Colors SkinColors        `yaml:"colors"`
	Icons  map[string]string `yaml:"icons"`
}

// SkinColors are lipgloss colour strings (hex or ANSI index).
type SkinColors struct {
	Brand     string `yaml:"brand"`
	Accent    string `yaml:"accent"`
	Muted     string `yaml:"muted"`
	Text      string `yaml:"text"`
	StatusBg  string `yaml:"status-bg"`
	Highlight string `yaml:"highlight"`
	Active    string `yaml:"active"`
	Error     string `yaml:"error"`
}

// Palette in use. InitializeSkin replaces these.
var (
	ColorBrand     lipgloss.Color
	ColorAccent    lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorText      lipgloss.Color
	ColorStatusBg  lipgloss.Color
	ColorHighlight lipgloss.Color
	ColorActive    lipgloss.Color
	ColorError     lipgloss.Color
)

var (
	currentSkin  Skin
	defaultIcons map[string]string
)

const fallbackGlyph = "•"

func init() {
	def, err := loadBuiltinSkin("default")
	if err != nil {
		panic(fmt.Sprintf("tui: embedded default skin: %v", err))
	}
	defaultIcons = def.Icons
	applySkin(def)
}

// BuiltinSkins returns the names of the embedded skins.
func BuiltinSkins() []string {
	entries, _ := fs.Glob(builtinSkins, "skins/*.yml")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(filepath.Base(e), ".yml"))
	}
	sort.Strings(names)
	return names
}

// InitializeSkin activates the named skin. A file <configDir>/skins/<name>.yml
// takes precedence over the embedded skin of the same name. On error the
// default skin stays active.
func InitializeSkin(name, configDir string) error {
	if name == "" {
		name = "default"
	}

	if configDir != "" {
		path := filepath.Join(configDir, "skins", name+".yml")
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			s, err := parseSkin(data)
			if err != nil {
				return fmt.Errorf("skin %s: %w", path, err)
			}
			applySkin(s)
			return nil
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("reading skin %s: %w", path, err)
		}
	}

	s, err := loadBuiltinSkin(name)
	if err != nil {
		return err
	}
	applySkin(s)
	return nil
}

// CurrentSkin returns the active skin name.
func CurrentSkin() string { return currentSkin.Name }

func loadBuiltinSkin(name string) (Skin, error) {
	data, err := builtinSkins.ReadFile("skins/" + name + ".yml")
	if err != nil {
		return Skin{}, fmt.Errorf("unknown skin %q (available: %s)", name, strings.Join(BuiltinSkins(), ", "))
	}
	return parseSkin(data)
}

func parseSkin(data []byte) (Skin, error) {
	var s Skin
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Skin{}, fmt.Errorf("decoding skin: %w", err)
	}
	return s, nil
}

func applySkin(s Skin) {
	pick := func(v, def string) lipgloss.Color {
		if v == "" {
			return lipgloss.Color(def)
		}
		return lipgloss.Color(v)
	}
	ColorBrand = pick(s.Colors.Brand, "4")
	ColorAccent = pick(s.Colors.Accent, "12")
	ColorMuted = pick(s.Colors.Muted, "8")
	ColorText = pick(s.Colors.Text, "15")
	ColorStatusBg = pick(s.Colors.StatusBg, "0")
	ColorHighlight = pick(s.Colors.Highlight, "11")
	ColorActive = pick(s.Colors.Active, "10")
	ColorError = pick(s.Colors.Error, "9")
	currentSkin = s
}

// Glyph maps an icon tag to the character the terminal shows for it.
// Tags are opaque; unknown tags get a bullet.
func Glyph(tag string) string {
	if g, ok := currentSkin.Icons[tag]; ok {
		return g
	}
	if g, ok := defaultIcons[tag]; ok {
		return g
	}
	return fallbackGlyph
}
