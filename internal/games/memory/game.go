// Package memory implements the card matching game: the card and pair state
// machines, the session timer, and a driver that turns front-end events into
// session actions. It has no dependency on any UI library.
package memory

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory/layout"
)

// Game drives a Session for one player: it owns the deck, the shuffle RNG,
// the cached layout and the quit flag. Front-ends feed it events and frame
// deltas and draw it through a core.Sink.
type Game struct {
	deck    core.Deck
	rng     *rand.Rand
	session *Session
	round   int // Incremented on every new deal

	width       float64
	height      float64
	layout      layout.Layout
	layoutDirty bool

	quit bool
}

// New creates a game for deck sized to the config's screen. A zero seed
// picks a time-based one.
func New(deck core.Deck, cfg core.RuntimeConfig) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		deck:        deck,
		rng:         rand.New(rand.NewSource(seed)),
		width:       float64(cfg.ScreenW),
		height:      float64(cfg.ScreenH),
		layoutDirty: true,
	}
	g.NewGame()
	return g
}

// ID returns the deck id, used as the results key.
func (g *Game) ID() string {
	return g.deck.ID
}

// Title returns the deck title shown in the HUD.
func (g *Game) Title() string {
	if g.deck.Title == "" {
		return "Memory"
	}
	return g.deck.Title
}

// Session returns the current session. The pointer changes on NewGame.
func (g *Game) Session() *Session {
	return g.session
}

// Round identifies the current deal; it increases on every NewGame.
func (g *Game) Round() int {
	return g.round
}

// NewGame replaces the session with a freshly shuffled one.
func (g *Game) NewGame() {
	g.session = NewSession(g.rng)
	g.round++
}

// Quit asks the front-end to stop. In-flight animations are discarded.
func (g *Game) Quit() {
	g.quit = true
}

// Quitting reports whether a quit was requested.
func (g *Game) Quitting() bool {
	return g.quit
}

// Resize records a new window size; the layout is recomputed on next use.
func (g *Game) Resize(width, height float64) {
	if width == g.width && height == g.height {
		return
	}
	g.width = width
	g.height = height
	g.layoutDirty = true
}

// Layout returns the layout for the current window size.
func (g *Game) Layout() layout.Layout {
	if g.layoutDirty {
		g.layout = layout.Compute(g.width, g.height)
		g.layoutDirty = false
	}
	return g.layout
}

// HandleEvents drains q and applies every event in order.
func (g *Game) HandleEvents(q *core.EventQueue) {
	for _, ev := range q.Drain() {
		g.HandleEvent(ev)
	}
}

// HandleEvent applies a single event.
func (g *Game) HandleEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventClose:
		g.Quit()
	case core.EventKey:
		g.handleKey(ev.Key)
	case core.EventResize:
		g.Resize(ev.Width, ev.Height)
	case core.EventClick:
		g.Click(ev.X, ev.Y)
	case core.EventNone:
		// Nothing to do.
	}
}

func (g *Game) handleKey(key string) {
	switch key {
	case "esc", "escape", "q", "ctrl+c":
		g.Quit()
	case "n", "N":
		g.NewGame()
	}
}

// Click handles a left-button press in window coordinates. The New Game
// button works at any time; card clicks go through the pair controller.
func (g *Game) Click(x, y float64) bool {
	l := g.Layout()
	if l.InNewGame(x, y) {
		g.NewGame()
		return true
	}
	slot := l.CardAt(x, y)
	if slot < 0 {
		return false
	}
	return g.session.Click(slot)
}

// Update advances the session by dt seconds.
func (g *Game) Update(dt float64) {
	if g.layoutDirty {
		g.Layout()
	}
	g.session.Update(dt)
}

// Result returns the final stats of a won session.
func (g *Game) Result() (Result, bool) {
	if !g.session.Won() {
		return Result{}, false
	}
	return Result{
		DeckID:  g.deck.ID,
		Elapsed: time.Duration(g.session.Elapsed() * float64(time.Second)),
		Moves:   g.session.Moves(),
	}, true
}

// Result is the outcome of a finished session.
type Result struct {
	DeckID  string
	Elapsed time.Duration
	Moves   int
}
