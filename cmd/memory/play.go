package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [deck]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. Cards are drawn with half-block
characters, so a large terminal with true colour looks best.

Controls:
  Mouse click  - Flip a card / press New Game
  N            - New game
  Esc/Q/Ctrl+C - Quit

Examples:
  memory play
  memory play classic
  memory play --deck-file ./my-deck.yaml
  memory play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	deck, err := resolveDeck(args)
	if err != nil {
		return err
	}

	width, height := terminalSize()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(deck, terminalEnv(store), width, height); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
