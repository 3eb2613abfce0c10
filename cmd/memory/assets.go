package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/assets"
)

var (
	flagAssetsDir    string
	flagFaceHeight   int
	flagPixelHeight  int
	flagQuantize     int
	flagContactSheet bool
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Prepare card textures",
}

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Crop and pixelate source images into card faces",
	Long: `For every character of the deck, read <dir>/source/<slug>.{png,jpg,jpeg,webp},
crop it to 3:4, pixelate it, reduce it to a median-cut palette and write
<dir>/processed/<slug>.png.

Exits with status 1 if any character could not be processed.

Examples:
  memory assets process
  memory assets process --deck classic --contact-sheet
  memory assets process --height 320 --pixel-height 48
  memory assets process --quantize 16
  memory assets process --quantize 0   # keep every colour`,
	Args: cobra.NoArgs,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVar(&flagAssetsDir, "dir", "", "Assets root holding source/ and processed/ (default: parent of assets_dir)")
	processCmd.Flags().IntVar(&flagFaceHeight, "height", 256, "Final face height in pixels")
	processCmd.Flags().IntVar(&flagPixelHeight, "pixel-height", 64, "Height of the pixelated intermediate")
	processCmd.Flags().IntVar(&flagQuantize, "quantize", 28, "Palette size before the final upscale (0 disables, minimum 2)")
	processCmd.Flags().BoolVar(&flagContactSheet, "contact-sheet", false, "Also write "+assets.ContactSheetName)

	assetsCmd.AddCommand(processCmd)
}

func runProcess(_ *cobra.Command, _ []string) error {
	deck, err := resolveDeck(nil)
	if err != nil {
		return err
	}

	dir := flagAssetsDir
	if dir == "" {
		dir = filepath.Dir(assets.OptionsFrom(settings).Dir)
	}
	opts := assets.DefaultProcessOptions(dir)
	opts.Height = flagFaceHeight
	opts.PixelHeight = flagPixelHeight
	opts.Quantize = flagQuantize
	opts.ContactSheet = flagContactSheet

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := assets.Process(ctx, deck, opts, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d, failed %d\n", len(report.Processed), report.Failed)
	if report.ContactSheet != "" {
		fmt.Printf("Contact sheet: %s\n", report.ContactSheet)
	}
	if report.Failed > 0 {
		return fmt.Errorf("%d of %d characters failed", report.Failed, len(deck.Characters))
	}
	return nil
}
