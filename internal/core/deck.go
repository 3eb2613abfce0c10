package core

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// PairCount is the number of distinct characters in a deck.
const PairCount = 16

// ErrInvalidDeck is returned by Deck.Validate.
var ErrInvalidDeck = errors.New("invalid deck")

// Character is one card face: a display name, a slug used to find its texture
// on disk, and the solid color drawn when no texture is available.
type Character struct {
	Name  string
	Slug  string
	Color RGBA
}

// Deck is a named roster of exactly PairCount characters.
// Card character ids index into Characters.
type Deck struct {
	ID         string
	Title      string
	Characters []Character
}

// Validate checks the deck has PairCount characters with names and unique slugs.
func (d Deck) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidDeck)
	}
	if len(d.Characters) != PairCount {
		return fmt.Errorf("%w %q: has %d characters, need %d", ErrInvalidDeck, d.ID, len(d.Characters), PairCount)
	}
	seen := make(map[string]bool, len(d.Characters))
	for i, c := range d.Characters {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w %q: character %d has no name", ErrInvalidDeck, d.ID, i)
		}
		if strings.TrimSpace(c.Slug) == "" {
			return fmt.Errorf("%w %q: character %q has no slug", ErrInvalidDeck, d.ID, c.Name)
		}
		if seen[c.Slug] {
			return fmt.Errorf("%w %q: duplicate slug %q", ErrInvalidDeck, d.ID, c.Slug)
		}
		seen[c.Slug] = true
	}
	return nil
}

// Character returns the character for id, or a zero Character if out of range.
func (d Deck) Character(id int) Character {
	if id < 0 || id >= len(d.Characters) {
		return Character{}
	}
	return d.Characters[id]
}

// Initials builds the badge text drawn on a card without a texture: up to
// three letters, each starting a word (start of string, or after a space or
// hyphen), upper-cased. Names without such letters yield "???".
func Initials(name string) string {
	var out []rune
	takeNext := true
	for _, r := range name {
		if takeNext && unicode.IsLetter(r) {
			out = append(out, unicode.ToUpper(r))
			if len(out) == 3 {
				break
			}
		}
		takeNext = r == ' ' || r == '-'
	}
	if len(out) == 0 {
		return "???"
	}
	return string(out)
}
