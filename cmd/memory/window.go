package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/assets"
	"github.com/vovakirdan/tui-memory/internal/platform/window"
)

var (
	flagWindowed bool
	flagWidth    int
	flagHeight   int
)

var windowCmd = &cobra.Command{
	Use:   "window [deck]",
	Short: "Play in a native window",
	Long: `Open the game in a window. Card faces are read from assets_dir
(see 'memory assets process'); cards without a face show their colour and
initials.

Controls:
  Mouse click  - Flip a card / press New Game
  N            - New game
  Esc/Q        - Quit

Examples:
  memory window
  memory window --windowed --width 1600 --height 900
  memory window classic`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagWindowed, "windowed", false, "Start in a window instead of fullscreen")
	windowCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width (default from settings)")
	windowCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height (default from settings)")
}

func runWindow(_ *cobra.Command, args []string) error {
	deck, err := resolveDeck(args)
	if err != nil {
		return err
	}

	opts := window.Options{
		Width:      settings.Window.Width,
		Height:     settings.Window.Height,
		Fullscreen: settings.Window.Fullscreen && !flagWindowed,
		TickRate:   settings.FPS,
		Seed:       flagSeed,
		Logger:     logger,
	}
	if flagWidth > 0 {
		opts.Width = flagWidth
	}
	if flagHeight > 0 {
		opts.Height = flagHeight
	}

	assetOpts := assets.OptionsFrom(settings)
	lib := assets.Load(assetOpts, deck, logger)
	if lib.TextureCount() == 0 {
		logger.Warn("no card faces found, cards show initials", "dir", assetOpts.Dir,
			"hint", "memory assets process")
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	opts.Store = store

	if err := window.Run(deck, lib, opts); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
