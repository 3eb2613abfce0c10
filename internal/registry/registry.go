// Package registry provides a global registry of card decks.
// Decks register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// ErrUnknownDeck is returned by Create for an id nobody registered.
var ErrUnknownDeck = errors.New("registry: unknown deck")

// DeckInfo contains metadata about a registered deck.
type DeckInfo struct {
	ID    string
	Title string
}

// Factory returns a fresh copy of a deck.
type Factory func() core.Deck

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a deck factory to the registry.
// Typically called from a deck package's init() function.
// Panics if a deck with the same ID is already registered or if the deck
// the factory builds is invalid.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: deck %q already registered", id))
	}

	d := f()
	if err := d.Validate(); err != nil {
		panic(fmt.Sprintf("registry: deck %q: %v", id, err))
	}

	factories[id] = f
	titles[id] = d.Title
}

// List returns information about all registered decks, sorted by ID.
func List() []DeckInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DeckInfo, 0, len(factories))
	for id := range factories {
		result = append(result, DeckInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a deck by its ID.
// Returns ErrUnknownDeck if the ID is not registered.
func Create(id string) (core.Deck, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return core.Deck{}, fmt.Errorf("%w %q", ErrUnknownDeck, id)
	}

	return f(), nil
}

// Exists checks if a deck with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a deck. Tests only.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, id)
	delete(titles, id)
}
