package window

import (
	"errors"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-memory/internal/assets"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// Options configures the window front-end.
type Options struct {
	Width      int // Windowed size; also the initial game size
	Height     int
	Fullscreen bool
	TickRate   int
	Seed       int64
	Store      *storage.Store // nil disables results
	Logger     *log.Logger
}

// DefaultOptions returns a 1280x720 fullscreen window at 60 ticks.
func DefaultOptions() Options {
	return Options{Width: 1280, Height: 720, Fullscreen: true, TickRate: 60}
}

// watchedKeys are forwarded to the game as key events.
var watchedKeys = []struct {
	key  ebiten.Key
	name string
}{
	{ebiten.KeyEscape, "esc"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyN, "n"},
}

// App adapts a memory.Game to ebiten.Game.
type App struct {
	game     *memory.Game
	sink     *Sink
	res      memory.Resources
	queue    core.EventQueue
	clock    core.FrameClock
	recorder *storage.Recorder
	width    int
	height   int
}

// NewApp creates the window game for deck. lib may be nil.
func NewApp(deck core.Deck, lib *assets.Library, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		d := DefaultOptions()
		opts.Width, opts.Height = d.Width, d.Height
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = opts.Width
	cfg.ScreenH = opts.Height
	cfg.Seed = opts.Seed
	if opts.TickRate > 0 {
		cfg.TickRate = opts.TickRate
	}

	var font *assets.Font
	if lib != nil {
		font = lib.Font()
	}
	sink := NewSink(font, logger)

	return &App{
		game:     memory.New(deck, cfg),
		sink:     sink,
		res:      resources{lib: lib, font: sink.HasFont()},
		recorder: storage.NewRecorder(opts.Store, logger),
		width:    opts.Width,
		height:   opts.Height,
	}
}

// Game returns the driven game.
func (a *App) Game() *memory.Game {
	return a.game
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	a.pollInput()
	return a.step(time.Now())
}

func (a *App) pollInput() {
	if ebiten.IsWindowBeingClosed() {
		a.queue.Push(core.CloseEvent())
	}
	for _, k := range watchedKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			a.queue.Push(core.KeyEvent(k.name))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.queue.Push(core.ClickEvent(float64(x), float64(y)))
	}
}

// step applies queued events and advances the game to now.
func (a *App) step(now time.Time) error {
	a.game.HandleEvents(&a.queue)
	if a.game.Quitting() {
		return ebiten.Termination
	}

	a.game.Update(a.clock.Tick(now))
	if r, ok := a.game.Result(); ok {
		a.recorder.Record(a.game.Round(), r.DeckID, r.Elapsed, r.Moves)
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.sink.SetTarget(screen)
	a.game.Render(a.sink, a.res)
}

// Layout implements ebiten.Game. The game works in window pixels; a size
// change reaches it as a resize event on the next update.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(1, outsideWidth), max(1, outsideHeight)
	if w != a.width || h != a.height {
		a.width, a.height = w, h
		a.queue.Push(core.ResizeEvent(float64(w), float64(h)))
	}
	return w, h
}

// Run opens the window and blocks until the player quits.
func Run(deck core.Deck, lib *assets.Library, opts Options) error {
	app := NewApp(deck, lib, opts)

	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle(app.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(opts.Fullscreen)
	ebiten.SetWindowClosingHandled(true)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// resources serves textures from the library; text follows the sink.
type resources struct {
	lib  *assets.Library
	font bool
}

func (r resources) Texture(characterID int) (image.Image, bool) {
	if r.lib == nil {
		return nil, false
	}
	return r.lib.Texture(characterID)
}

func (r resources) HasFont() bool {
	return r.font
}
