package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// Env carries what every terminal game shares: the results store, the
// logger, the asset lookup and the frame rate. All fields are optional.
type Env struct {
	Store    *storage.Store
	Logger   *log.Logger
	Renderer *lipgloss.Renderer // Per SSH session; nil uses the local terminal
	Assets   func(core.Deck) memory.Resources
	TickRate int
	Seed     int64 // 0 = time-based
}

func (e Env) tickRate() int {
	if e.TickRate <= 0 {
		return 60
	}
	return e.TickRate
}

// resources returns the deck's assets. Terminals always draw text.
func (e Env) resources(deck core.Deck) memory.Resources {
	if e.Assets == nil {
		return memory.StaticResources{Font: true}
	}
	return e.Assets(deck)
}
