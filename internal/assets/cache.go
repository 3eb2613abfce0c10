package assets

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Cache loads each deck's library once and shares it between sessions.
// Libraries are read-only after Load, so handing the same one to several
// goroutines is safe.
type Cache struct {
	opts   Options
	logger *log.Logger

	mu   sync.Mutex
	libs map[string]*Library
}

// NewCache creates an empty cache loading with opts.
func NewCache(opts Options, logger *log.Logger) *Cache {
	return &Cache{opts: opts, logger: logger, libs: make(map[string]*Library)}
}

// Get returns the library for deck, loading it on first use.
func (c *Cache) Get(deck core.Deck) *Library {
	c.mu.Lock()
	defer c.mu.Unlock()

	if lib, ok := c.libs[deck.ID]; ok {
		return lib
	}
	lib := Load(c.opts, deck, c.logger)
	c.libs[deck.ID] = lib
	return lib
}

// size returns the number of cached decks.
func (c *Cache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.libs)
}
