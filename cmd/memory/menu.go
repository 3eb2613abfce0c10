package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a deck from a menu, then play",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a deck.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select deck
  Tab          - Best results
  Q            - Quit

Examples:
  memory menu
  memory menu --fps 30
  memory menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	env := terminalEnv(store)

	width, height := terminalSize()
	selected := settings.Deck

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(selected, width, height)
		if err != nil {
			return err
		}

		// Keep any size changes
		width, height = menuResult.Width, menuResult.Height

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		if menuResult.DeckID == "" {
			return nil
		}
		selected = menuResult.DeckID

		deck, err := registry.Create(selected)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		if err := tui.Run(deck, env, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}
}
