package registry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vovakirdan/tui-memory/internal/core"
)

func deckWithID(id, title string) core.Deck {
	d := core.Deck{ID: id, Title: title}
	for i := 0; i < core.PairCount; i++ {
		d.Characters = append(d.Characters, core.Character{
			Name: fmt.Sprintf("Card %d", i),
			Slug: fmt.Sprintf("card_%d", i),
		})
	}
	return d
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_test", func() core.Deck { return deckWithID("zz_test", "Test") })
	defer unregister("zz_test")

	if !Exists("zz_test") {
		t.Fatal("Exists() = false after Register")
	}

	d, err := Create("zz_test")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if d.Title != "Test" || len(d.Characters) != core.PairCount {
		t.Errorf("Create() = %q with %d characters", d.Title, len(d.Characters))
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_test" && info.Title == "Test" {
			found = true
		}
	}
	if !found {
		t.Error("List() missing registered deck")
	}
}

func TestListSorted(t *testing.T) {
	Register("zz_b", func() core.Deck { return deckWithID("zz_b", "B") })
	Register("zz_a", func() core.Deck { return deckWithID("zz_a", "A") })
	defer unregister("zz_a")
	defer unregister("zz_b")

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does_not_exist")
	if !errors.Is(err, ErrUnknownDeck) {
		t.Errorf("Create() error = %v, expected ErrUnknownDeck", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		run  func()
	}{
		{"duplicate", func() {
			Register("zz_dup", func() core.Deck { return deckWithID("zz_dup", "Dup") })
			Register("zz_dup", func() core.Deck { return deckWithID("zz_dup", "Dup") })
		}},
		{"invalid deck", func() {
			Register("zz_bad", func() core.Deck { return core.Deck{ID: "zz_bad"} })
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer unregister("zz_dup")
			defer func() {
				if recover() == nil {
					t.Error("Register() did not panic")
				}
			}()
			tc.run()
		})
	}

	if Exists("zz_bad") {
		t.Error("invalid deck was registered")
	}
}
