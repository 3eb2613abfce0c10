// memory is a card matching game for the terminal and the desktop.
//
// Usage:
//
//	memory list               - List available decks
//	memory play [deck]        - Play in the terminal
//	memory window [deck]      - Play in a native window
//	memory menu               - Pick decks interactively
//	memory serve              - Start SSH server for remote play
//	memory scores [deck]      - Show best results
//	memory assets process     - Build card faces from source images
//
// Global flags:
//
//	--config <path>     - Settings file (default search: ~/.memory/configs, ./configs)
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for a reproducible shuffle
//	--db <path>         - Set database path (default: ~/.memory/scores.db)
//	--deck <id>         - Deck to play
//	--deck-file <path>  - Play a deck from a YAML file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/assets"
	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/decks"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagDeck     string
	flagDeckFile string
	flagLogLevel string
)

// Set up by loadSettings before any command runs.
var (
	settings config.Settings
	logger   *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory - match pairs of character cards",
	Long: `Memory is a card matching game. Sixteen pairs of cards are dealt face
down; flip two at a time and find every pair as fast as you can.

Available commands:
  list     - Show all available decks
  play     - Play in the terminal
  window   - Play in a native window
  menu     - Interactive deck picker
  serve    - Start SSH server for remote play
  scores   - View best results
  assets   - Prepare card textures

Examples:
  memory play
  memory play classic
  memory window --windowed
  memory menu
  memory serve --ssh :2222
  memory scores starwars`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to settings YAML")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.memory/scores.db", "Path to results database (empty disables results)")
	pf.StringVar(&flagDeck, "deck", decks.DefaultID, "Deck id")
	pf.StringVar(&flagDeckFile, "deck-file", "", "Play a deck from a YAML file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(assetsCmd)
}

// loadSettings reads the settings file, applies flags given on the command
// line, builds the logger and registers decks found in decks_dir.
func loadSettings(cmd *cobra.Command, _ []string) error {
	s, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, &s)
	if err := s.Validate(); err != nil {
		return err
	}

	logger = newLogger(s.LogLevel)
	logger.Debug("settings loaded", "source", source)
	settings = s

	registerUserDecks(config.ExpandHome(s.DecksDir))
	return nil
}

// applyFlags overrides settings with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, s *config.Settings) {
	flags := cmd.Flags()
	if flags.Changed("fps") {
		s.FPS = flagFPS
	}
	if flags.Changed("db") {
		s.DBPath = flagDBPath
	}
	if flags.Changed("deck") {
		s.Deck = flagDeck
	}
	if flags.Changed("deck-file") {
		s.DeckFile = flagDeckFile
	}
	if flags.Changed("log-level") {
		s.LogLevel = flagLogLevel
	}
}

func newLogger(level string) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "memory",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	}
	return l
}

func registerUserDecks(dir string) {
	if dir == "" {
		return
	}
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return
	}
	loaded, skipped, err := decks.LoadDir(dir)
	for _, e := range skipped {
		logger.Warn("deck skipped", "error", e)
	}
	if err != nil {
		logger.Warn("cannot read decks directory", "dir", dir, "error", err)
		return
	}
	if added := decks.RegisterAll(loaded); len(added) > 0 {
		logger.Debug("decks registered", "dir", dir, "ids", added)
	}
}

// resolveDeck picks the deck to play: an explicit argument wins over
// --deck-file, which wins over the configured deck id.
func resolveDeck(args []string) (core.Deck, error) {
	if len(args) > 0 {
		return decks.Resolve(args[0], "")
	}
	return decks.Resolve(settings.Deck, config.ExpandHome(settings.DeckFile))
}

// openStore opens the results database. Failures are logged and the game
// runs without results.
func openStore() *storage.Store {
	path := config.ExpandHome(settings.DBPath)
	if path == "" {
		return nil
	}
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("scores database unavailable", "path", path, "error", err)
		return nil
	}
	return store
}

// terminalEnv builds the environment shared by the terminal commands.
func terminalEnv(store *storage.Store) tui.Env {
	opts := assets.OptionsFrom(settings)
	opts.TerminalText = true
	cache := assets.NewCache(opts, logger)
	return tui.Env{
		Store:    store,
		Logger:   logger,
		TickRate: settings.FPS,
		Seed:     flagSeed,
		Assets: func(deck core.Deck) memory.Resources {
			return cache.Get(deck)
		},
	}
}
