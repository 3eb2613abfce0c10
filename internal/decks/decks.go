// Package decks provides the built-in character decks and loads custom ones
// from YAML files. Built-in decks register themselves with the registry on
// import.
package decks

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

//go:embed data/*.yaml
var builtin embed.FS

// DefaultID is the deck used when none is configured.
const DefaultID = "starwars"

// YAMLDeck represents the YAML structure for a deck file.
type YAMLDeck struct {
	ID         string          `yaml:"id"`
	Title      string          `yaml:"title"`
	Characters []YAMLCharacter `yaml:"characters"`
}

// YAMLCharacter represents a single character in YAML format.
type YAMLCharacter struct {
	Name  string `yaml:"name"`
	Slug  string `yaml:"slug"`
	Color string `yaml:"color"` // "#rrggbb"
}

func init() {
	entries, err := builtin.ReadDir("data")
	if err != nil {
		panic(fmt.Sprintf("decks: reading embedded decks: %v", err))
	}
	for _, e := range entries {
		data, err := builtin.ReadFile("data/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("decks: reading %s: %v", e.Name(), err))
		}
		d, err := ParseYAML(data)
		if err != nil {
			panic(fmt.Sprintf("decks: %s: %v", e.Name(), err))
		}
		registry.Register(d.ID, func() core.Deck { return clone(d) })
	}
}

// ParseYAML parses and validates a deck file.
func ParseYAML(data []byte) (core.Deck, error) {
	var yd YAMLDeck
	if err := yaml.Unmarshal(data, &yd); err != nil {
		return core.Deck{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	d := core.Deck{
		ID:         strings.TrimSpace(yd.ID),
		Title:      strings.TrimSpace(yd.Title),
		Characters: make([]core.Character, 0, len(yd.Characters)),
	}
	if d.Title == "" {
		d.Title = d.ID
	}

	for _, yc := range yd.Characters {
		c := core.Character{Name: yc.Name, Slug: yc.Slug, Color: core.RGB(128, 128, 128)}
		if yc.Color != "" {
			col, ok := core.ParseHex(yc.Color)
			if !ok {
				return core.Deck{}, fmt.Errorf("character %q: bad color %q", yc.Name, yc.Color)
			}
			c.Color = col
		}
		d.Characters = append(d.Characters, c)
	}

	if err := d.Validate(); err != nil {
		return core.Deck{}, err
	}
	return d, nil
}

// LoadFile loads a single deck file.
func LoadFile(path string) (core.Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Deck{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	d, err := ParseYAML(data)
	if err != nil {
		return core.Deck{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return d, nil
}

// LoadDir loads every deck file under root, sorted by ID. Invalid files are
// skipped and reported in the second return value.
func LoadDir(root string) ([]core.Deck, []error, error) {
	var (
		loaded  []core.Deck
		skipped []error
	)

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		deck, err := LoadFile(path)
		if err != nil {
			skipped = append(skipped, err)
			return nil
		}
		loaded = append(loaded, deck)
		return nil
	})
	if err != nil {
		return nil, skipped, fmt.Errorf("walking directory %s: %w", root, err)
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].ID < loaded[j].ID
	})
	return loaded, skipped, nil
}

// RegisterAll adds validated decks to the registry, skipping ids already taken.
// It returns the ids that were registered.
func RegisterAll(list []core.Deck) []string {
	var added []string
	for _, d := range list {
		if registry.Exists(d.ID) {
			continue
		}
		registry.Register(d.ID, func() core.Deck { return clone(d) })
		added = append(added, d.ID)
	}
	return added
}

// Resolve returns the deck to play: the file at path if set, otherwise the
// registered deck id (DefaultID when empty).
func Resolve(id, path string) (core.Deck, error) {
	if path != "" {
		return LoadFile(path)
	}
	if id == "" {
		id = DefaultID
	}
	return registry.Create(id)
}

func clone(d core.Deck) core.Deck {
	d.Characters = append([]core.Character(nil), d.Characters...)
	return d
}
