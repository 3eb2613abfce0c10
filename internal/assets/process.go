package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/soniakeys/quant/median"
	"golang.org/x/image/draw"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Card faces are portrait 3:4.
const CardRatio = 3.0 / 4.0

// MinColors is the smallest palette Quantize accepts.
const MinColors = 2

// Contact sheet layout.
const (
	sheetColumns = 4
	sheetMargin  = 12
)

var sheetBackground = color.RGBA{R: 20, G: 20, B: 26, A: 255}

// ContactSheetName is the preview grid written next to the processed faces.
const ContactSheetName = "contact_sheet.png"

// sourceExtensions are tried in order for each slug.
var sourceExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// ErrInvalidOptions is returned by Process for non-positive sizes.
var ErrInvalidOptions = errors.New("assets: invalid process options")

// ProcessOptions configures the portrait conversion.
type ProcessOptions struct {
	SourceDir    string
	OutputDir    string
	Height       int  // Final face height (default 256)
	PixelHeight  int  // Intermediate height giving the blocky look (default 64)
	Quantize     int  // Palette size of the pixelated image, 0 keeps all colors (default 28)
	ContactSheet bool // Also write ContactSheetName
}

// DefaultProcessOptions returns the standard sizes for dir/source -> dir/processed.
func DefaultProcessOptions(dir string) ProcessOptions {
	return ProcessOptions{
		SourceDir:   filepath.Join(dir, "source"),
		OutputDir:   filepath.Join(dir, "processed"),
		Height:      256,
		PixelHeight: 64,
		Quantize:    28,
	}
}

// ProcessReport summarizes a Process run.
type ProcessReport struct {
	Processed    []string // Written face files
	Failed       int
	Errors       []error
	ContactSheet string // Path of the sheet, empty if not written
}

// Process converts source/<slug>.{png,jpg,jpeg,webp} for every deck
// character into a pixelated face at OutputDir/<slug>.png. Per-character
// problems are counted in the report; the returned error covers only
// problems that stop the whole run.
func Process(ctx context.Context, deck core.Deck, opts ProcessOptions, logger *log.Logger) (ProcessReport, error) {
	var report ProcessReport
	if logger == nil {
		logger = log.Default()
	}
	if opts.Height <= 0 || opts.PixelHeight <= 0 {
		return report, fmt.Errorf("%w: height and pixel height must be > 0", ErrInvalidOptions)
	}
	if opts.Quantize < 0 {
		return report, fmt.Errorf("%w: quantize must be >= 0", ErrInvalidOptions)
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return report, fmt.Errorf("assets: cannot create directory %s: %w", opts.OutputDir, err)
	}

	finalW, finalH := FaceSize(opts.Height)
	pixelW, pixelH := FaceSize(opts.PixelHeight)

	var tiles []image.Image
	for _, ch := range deck.Characters {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		fail := func(err error) {
			report.Failed++
			report.Errors = append(report.Errors, err)
			logger.Warn("portrait failed", "slug", ch.Slug, "error", err)
		}

		src := findSource(opts.SourceDir, ch.Slug)
		if src == "" {
			fail(fmt.Errorf("assets: missing source image for %s in %s", ch.Slug, opts.SourceDir))
			continue
		}
		img, err := decodeFile(src)
		if err != nil {
			fail(err)
			continue
		}

		face := Pixelate(img, pixelW, pixelH, finalW, finalH, opts.Quantize)
		dst := filepath.Join(opts.OutputDir, ch.Slug+".png")
		if err := writePNG(dst, face); err != nil {
			fail(err)
			continue
		}

		logger.Info("processed", "name", ch.Name, "file", dst)
		report.Processed = append(report.Processed, dst)
		tiles = append(tiles, face)
	}

	if opts.ContactSheet && len(tiles) > 0 {
		path := filepath.Join(opts.OutputDir, ContactSheetName)
		if err := writePNG(path, ContactSheet(tiles, finalW, finalH)); err != nil {
			return report, err
		}
		report.ContactSheet = path
		logger.Info("contact sheet written", "file", path)
	}

	return report, nil
}

// FaceSize returns the 3:4 width for a height, at least 1.
func FaceSize(height int) (w, h int) {
	return max(1, int(math.RoundToEven(float64(height)*CardRatio))), height
}

// CenterCrop returns the largest centered sub-rectangle of b with the
// given width:height ratio.
func CenterCrop(b image.Rectangle, ratio float64) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return b
	}
	if float64(w)/float64(h) > ratio {
		nw := int(float64(h) * ratio)
		x0 := b.Min.X + (w-nw)/2
		return image.Rect(x0, b.Min.Y, x0+nw, b.Max.Y)
	}
	nh := int(float64(w) / ratio)
	y0 := b.Min.Y + (h-nh)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+nh)
}

// Pixelate center-crops src to 3:4, shrinks it to pixelW x pixelH and blows
// it back up to finalW x finalH, both with nearest-neighbour sampling.
// A positive colors reduces the small image to a median-cut palette of at
// most max(colors, MinColors) entries. The result is fully opaque.
func Pixelate(src image.Image, pixelW, pixelH, finalW, finalH, colors int) *image.RGBA {
	crop := CenterCrop(src.Bounds(), CardRatio)

	small := image.NewRGBA(image.Rect(0, 0, pixelW, pixelH))
	draw.Draw(small, small.Bounds(), image.Black, image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(small, small.Bounds(), src, crop, draw.Over, nil)

	var blocks image.Image = small
	if colors > 0 {
		blocks = quantize(small, max(colors, MinColors))
	}

	out := image.NewRGBA(image.Rect(0, 0, finalW, finalH))
	draw.NearestNeighbor.Scale(out, out.Bounds(), blocks, blocks.Bounds(), draw.Src, nil)
	return out
}

// quantize maps img onto a median-cut palette of at most n colors, without
// dithering.
func quantize(img *image.RGBA, n int) *image.Paletted {
	pal := median.Quantizer(n).Quantize(make(color.Palette, 0, n), img)
	out := image.NewPaletted(img.Bounds(), pal)
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

// ContactSheet lays tiles out in rows of four on a dark background.
func ContactSheet(tiles []image.Image, tileW, tileH int) *image.RGBA {
	rows := (len(tiles) + sheetColumns - 1) / sheetColumns
	w := sheetColumns*tileW + (sheetColumns+1)*sheetMargin
	h := rows*tileH + (rows+1)*sheetMargin

	sheet := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(sheetBackground), image.Point{}, draw.Src)

	for i, tile := range tiles {
		row, col := i/sheetColumns, i%sheetColumns
		x := sheetMargin + col*(tileW+sheetMargin)
		y := sheetMargin + row*(tileH+sheetMargin)
		r := image.Rect(x, y, x+tileW, y+tileH)
		draw.Draw(sheet, r, tile, tile.Bounds().Min, draw.Src)
	}
	return sheet
}

func findSource(dir, slug string) string {
	for _, ext := range sourceExtensions {
		path := filepath.Join(dir, slug+ext)
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			return path
		}
	}
	return ""
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("assets: cannot create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("assets: cannot encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("assets: cannot write %s: %w", path, err)
	}
	return nil
}
