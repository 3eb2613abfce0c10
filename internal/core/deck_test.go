package core

import (
	"errors"
	"fmt"
	"testing"
)

func testDeck() Deck {
	d := Deck{ID: "test", Title: "Test"}
	for i := 0; i < PairCount; i++ {
		d.Characters = append(d.Characters, Character{
			Name:  fmt.Sprintf("Char %d", i),
			Slug:  fmt.Sprintf("char_%d", i),
			Color: RGB(uint8(i*10), 0, 0),
		})
	}
	return d
}

func TestDeckValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Deck)
		valid  bool
	}{
		{"valid", func(*Deck) {}, true},
		{"missing id", func(d *Deck) { d.ID = "" }, false},
		{"too few", func(d *Deck) { d.Characters = d.Characters[:15] }, false},
		{"too many", func(d *Deck) { d.Characters = append(d.Characters, Character{Name: "X", Slug: "x"}) }, false},
		{"empty name", func(d *Deck) { d.Characters[3].Name = " " }, false},
		{"empty slug", func(d *Deck) { d.Characters[3].Slug = "" }, false},
		{"duplicate slug", func(d *Deck) { d.Characters[3].Slug = d.Characters[4].Slug }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := testDeck()
			tc.mutate(&d)
			err := d.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidDeck) {
				t.Errorf("Validate() = %v, expected ErrInvalidDeck", err)
			}
		})
	}
}

func TestDeckCharacterOutOfRange(t *testing.T) {
	d := testDeck()
	if d.Character(-1) != (Character{}) || d.Character(PairCount) != (Character{}) {
		t.Error("out of range Character() should return zero value")
	}
	if d.Character(2).Slug != "char_2" {
		t.Errorf("Character(2).Slug = %q", d.Character(2).Slug)
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Luke Skywalker", "LS"},
		{"Obi-Wan Kenobi", "OWK"},
		{"Yoda", "Y"},
		{"emperor palpatine", "EP"},
		{"A B C D", "ABC"},
		{"R2-D2", "RD"},
		{"C-3PO", "C"},
		{"", "???"},
		{"123 456", "???"},
		{"  - ", "???"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Initials(tc.name); got != tc.expected {
				t.Errorf("Initials(%q) = %q, expected %q", tc.name, got, tc.expected)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	c, ok := ParseHex("#e2bc5e")
	if !ok || c != RGB(226, 188, 94) {
		t.Errorf("ParseHex(#e2bc5e) = %+v, %v", c, ok)
	}
	if _, ok := ParseHex("#12345"); ok {
		t.Error("ParseHex should reject short strings")
	}
	if _, ok := ParseHex("zzzzzz"); ok {
		t.Error("ParseHex should reject non-hex digits")
	}
	if RGB(226, 188, 94).Hex() != "#e2bc5e" {
		t.Errorf("Hex() = %q", RGB(226, 188, 94).Hex())
	}
}
