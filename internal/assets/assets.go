// Package assets loads card textures and fonts once at startup and converts
// source portraits into pixel-art card faces.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Source portraits
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/webp" // Source portraits

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// Options selects where textures and fonts are looked up.
type Options struct {
	Dir          string   // Directory holding <slug>.png card faces
	Fonts        []string // Candidate font files, first one that parses wins
	EmbeddedFont bool     // Fall back to Go Regular when no candidate parses
	TerminalText bool     // Text is drawn in terminal cells; no font file is looked up
}

// OptionsFrom builds Options from loaded settings.
func OptionsFrom(s config.Settings) Options {
	return Options{
		Dir:          config.ExpandHome(s.AssetsDir),
		Fonts:        s.Fonts,
		EmbeddedFont: s.EmbeddedFont,
	}
}

// Library holds the textures and the font for one deck.
// It satisfies memory.Resources.
type Library struct {
	textures map[int]image.Image
	font     *Font
}

// NewLibrary wraps already loaded textures and an optional font.
func NewLibrary(textures map[int]image.Image, font *Font) *Library {
	if textures == nil {
		textures = make(map[int]image.Image)
	}
	return &Library{textures: textures, font: font}
}

// Load reads every texture of the deck and picks a font.
// Missing textures and fonts are not errors; the game degrades instead.
func Load(opts Options, deck core.Deck, logger *log.Logger) *Library {
	if logger == nil {
		logger = log.Default()
	}

	textures, failed := LoadTextures(opts.Dir, deck)
	for _, err := range failed {
		logger.Warn("texture skipped", "error", err)
	}
	logger.Info("textures loaded", "deck", deck.ID, "count", len(textures), "dir", opts.Dir)

	if opts.TerminalText {
		return NewLibrary(textures, TerminalFont)
	}

	font := FindFont(opts.Fonts, opts.EmbeddedFont)
	if font == nil {
		logger.Warn("no usable font found, text disabled")
	} else {
		logger.Info("font selected", "source", font.Source)
	}

	return NewLibrary(textures, font)
}

// Texture returns the card face for a character id.
func (l *Library) Texture(characterID int) (image.Image, bool) {
	img, ok := l.textures[characterID]
	return img, ok && img != nil
}

// HasFont reports whether text can be drawn.
func (l *Library) HasFont() bool {
	return l.font != nil
}

// Font returns the selected font, or nil.
func (l *Library) Font() *Font {
	return l.font
}

// TextureCount returns the number of loaded textures.
func (l *Library) TextureCount() int {
	return len(l.textures)
}

// LoadTextures decodes <dir>/<slug>.png for every character of the deck.
// Absent files are skipped silently; unreadable or corrupt files are
// returned as errors alongside the textures that did load.
func LoadTextures(dir string, deck core.Deck) (map[int]image.Image, []error) {
	textures := make(map[int]image.Image)
	if dir == "" {
		return textures, nil
	}

	var failed []error
	for id, ch := range deck.Characters {
		path := filepath.Join(dir, ch.Slug+".png")
		img, err := decodeFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			failed = append(failed, err)
			continue
		}
		textures[id] = img
	}
	return textures, failed
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	return img, nil
}
