package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// helpRows is the number of terminal rows below the board used by the help line.
const helpRows = 1

// Model is the Bubble Tea model for one memory game. The game canvas is the
// terminal minus the help line, at two pixels per row.
type Model struct {
	game       *memory.Game
	screen     *core.Screen
	res        memory.Resources
	env        Env
	queue      *core.EventQueue
	clock      core.FrameClock
	keys       GameKeyMap
	help       help.Model
	helpStyle  lipgloss.Style
	recorder   *storage.Recorder
	quitting   bool
	backToMenu bool
	menuMode   bool // Back returns to the menu instead of quitting
}

// NewModel creates a model playing deck on a cols x rows terminal.
func NewModel(deck core.Deck, env Env, cols, rows int) Model {
	cols, boardRows := boardSize(cols, rows)
	game := memory.New(deck, core.RuntimeConfig{
		ScreenW:  cols,
		ScreenH:  boardRows * 2,
		TickRate: env.tickRate(),
		Seed:     env.Seed,
	})

	r := env.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	h := help.New()
	h.Width = cols

	return Model{
		game:      game,
		screen:    core.NewScreen(cols, boardRows),
		res:       env.resources(deck),
		env:       env,
		queue:     &core.EventQueue{},
		recorder:  storage.NewRecorder(env.Store, env.Logger),
		keys:      DefaultGameKeyMap(),
		help:      h,
		helpStyle: r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// WithMenu makes Back return to the menu.
func (m Model) WithMenu() Model {
	m.menuMode = true
	m.keys = MenuGameKeyMap()
	return m
}

func boardSize(cols, rows int) (int, int) {
	return max(1, cols), max(1, rows-helpRows)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.env.tickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey maps keys to game events. They are applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.queue.Push(core.CloseEvent())
	case key.Matches(msg, m.keys.Back):
		if m.menuMode {
			m.backToMenu = true
			return m, nil
		}
		m.queue.Push(core.KeyEvent("esc"))
	case key.Matches(msg, m.keys.NewGame):
		m.queue.Push(core.KeyEvent("n"))
	}
	return m, nil
}

// handleMouse turns a left press on a cell into a click at the center of
// the cell's two pixels.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y < 0 || msg.Y >= m.screen.Height() {
		return m, nil
	}
	m.queue.Push(core.ClickEvent(float64(msg.X)+0.5, float64(msg.Y)*2+1))
	return m, nil
}

// handleResize resizes the canvas now and the layout on the next tick.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	cols, boardRows := boardSize(msg.Width, msg.Height)
	m.screen.Resize(cols, boardRows)
	m.help.Width = cols
	m.queue.Push(core.ResizeEvent(float64(cols), float64(boardRows*2)))
	return m, nil
}

// handleTick applies queued input, advances the game and saves a won result.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	m.game.HandleEvents(m.queue)
	if m.game.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}

	m.game.Update(m.clock.Tick(time.Time(msg)))
	m.saveResult()

	return m, tickCmd(m.env.tickRate())
}

// saveResult stores the result of a won round once.
func (m Model) saveResult() {
	if r, ok := m.game.Result(); ok {
		m.recorder.Record(m.game.Round(), r.DeckID, r.Elapsed, r.Moves)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen, m.res)
	return RenderScreen(m.screen, m.env.Renderer) + "\n" + m.helpStyle.Render(m.help.View(m.keys))
}

// Game returns the game being played.
func (m Model) Game() *memory.Game {
	return m.game
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays deck in the local terminal until the user quits.
func Run(deck core.Deck, env Env, cols, rows int) error {
	model := NewModel(deck, env, cols, rows)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks select cards
	)

	_, err := p.Run()
	return err
}
