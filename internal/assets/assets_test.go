package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/tui-memory/internal/core"
)

func testDeck() core.Deck {
	d := core.Deck{ID: "test", Title: "Test"}
	for i := 0; i < core.PairCount; i++ {
		slug := string(rune('a' + i))
		d.Characters = append(d.Characters, core.Character{Name: "Char " + slug, Slug: slug, Color: core.RGB(10, 20, 30)})
	}
	return d
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// writeImage writes a w x h PNG whose left half is red and right half blue.
func writeImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{R: 255, A: 255}
			if x >= w/2 {
				c = color.RGBA{B: 255, A: 255}
			}
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadTextures(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "a.png"), 6, 8)
	writeImage(t, filepath.Join(dir, "c.png"), 6, 8)
	if err := os.WriteFile(filepath.Join(dir, "d.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	textures, failed := LoadTextures(dir, testDeck())
	if len(textures) != 2 {
		t.Errorf("LoadTextures() loaded %d, expected 2", len(textures))
	}
	if _, ok := textures[0]; !ok {
		t.Error("texture for character 0 missing")
	}
	if _, ok := textures[2]; !ok {
		t.Error("texture for character 2 missing")
	}
	if len(failed) != 1 {
		t.Errorf("LoadTextures() failures = %v, expected 1 corrupt file", failed)
	}
}

func TestLoadTexturesEmptyDir(t *testing.T) {
	textures, failed := LoadTextures("", testDeck())
	if len(textures) != 0 || len(failed) != 0 {
		t.Errorf("LoadTextures(\"\") = %d textures, %v", len(textures), failed)
	}
}

func TestLibrary(t *testing.T) {
	lib := NewLibrary(map[int]image.Image{3: image.NewRGBA(image.Rect(0, 0, 1, 1))}, nil)

	if _, ok := lib.Texture(3); !ok {
		t.Error("Texture(3) missing")
	}
	if _, ok := lib.Texture(4); ok {
		t.Error("Texture(4) should be absent")
	}
	if lib.HasFont() {
		t.Error("HasFont() = true without a font")
	}
	if lib.TextureCount() != 1 {
		t.Errorf("TextureCount() = %d, expected 1", lib.TextureCount())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "b.png"), 3, 4)

	lib := Load(Options{Dir: dir, EmbeddedFont: true}, testDeck(), quietLogger())
	if lib.TextureCount() != 1 {
		t.Errorf("TextureCount() = %d, expected 1", lib.TextureCount())
	}
	if lib.Font() == nil || lib.Font().Source != SourceEmbedded {
		t.Errorf("Font() = %v, expected embedded", lib.Font())
	}
}

func TestLoadTerminalText(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "a.png"), 3, 4)
	junk := filepath.Join(dir, "font.ttf")
	if err := os.WriteFile(junk, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	logger := log.New(&out)
	lib := Load(Options{Dir: dir, Fonts: []string{junk}, TerminalText: true}, testDeck(), logger)

	if lib.Font() != TerminalFont {
		t.Errorf("Font() = %v, expected TerminalFont", lib.Font())
	}
	if lib.TextureCount() != 1 {
		t.Errorf("TextureCount() = %d, expected 1", lib.TextureCount())
	}
	for _, msg := range []string{"no usable font", "font selected"} {
		if bytes.Contains(out.Bytes(), []byte(msg)) {
			t.Errorf("terminal load logged %q: %q", msg, out.String())
		}
	}
}

func TestFindFont(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.ttf")
	junk := filepath.Join(dir, "font.ttf")
	good := filepath.Join(dir, "real.ttf")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(junk, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(good, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		candidates []string
		embedded   bool
		expected   string
	}{
		{"first parsable wins", []string{filepath.Join(dir, "missing.ttf"), empty, junk, good}, false, good},
		{"embedded fallback", []string{filepath.Join(dir, "missing.ttf")}, true, SourceEmbedded},
		{"junk falls through to embedded", []string{junk}, true, SourceEmbedded},
		{"junk without embedded", []string{junk}, false, ""},
		{"nothing", []string{"", empty}, false, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := FindFont(tc.candidates, tc.embedded)
			got := ""
			if f != nil {
				got = f.Source
			}
			if got != tc.expected {
				t.Errorf("FindFont() = %q, expected %q", got, tc.expected)
			}
		})
	}

	if f := FindFont(nil, true); !bytes.Equal(f.Data, goregular.TTF) {
		t.Error("embedded font data is not Go Regular")
	}
}

func TestFaceSize(t *testing.T) {
	tests := []struct {
		height, w int
	}{
		{256, 192},
		{64, 48},
		{1, 1},
		{6, 4}, // 4.5 rounds to even
		{10, 8},
	}
	for _, tc := range tests {
		if w, h := FaceSize(tc.height); w != tc.w || h != tc.height {
			t.Errorf("FaceSize(%d) = %d, %d, expected %d, %d", tc.height, w, h, tc.w, tc.height)
		}
	}
}

func TestCenterCrop(t *testing.T) {
	tests := []struct {
		in, expected image.Rectangle
	}{
		{image.Rect(0, 0, 400, 400), image.Rect(50, 0, 350, 400)},
		{image.Rect(0, 0, 300, 800), image.Rect(0, 200, 300, 600)},
		{image.Rect(0, 0, 300, 400), image.Rect(0, 0, 300, 400)},
		{image.Rect(10, 10, 410, 410), image.Rect(60, 10, 360, 410)},
	}
	for _, tc := range tests {
		if got := CenterCrop(tc.in, CardRatio); got != tc.expected {
			t.Errorf("CenterCrop(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestPixelate(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), A: 255})
		}
	}

	out := Pixelate(src, 3, 4, 12, 16, 0)
	if out.Bounds().Dx() != 12 || out.Bounds().Dy() != 16 {
		t.Fatalf("Pixelate() size = %v, expected 12x16", out.Bounds())
	}

	// Every 4x4 block is a single source pixel.
	for by := 0; by < 4; by++ {
		for bx := 0; bx < 3; bx++ {
			want := out.RGBAAt(bx*4, by*4)
			for y := by * 4; y < by*4+4; y++ {
				for x := bx * 4; x < bx*4+4; x++ {
					if got := out.RGBAAt(x, y); got != want {
						t.Fatalf("pixel (%d,%d) = %v, expected block color %v", x, y, got, want)
					}
				}
			}
			if want.A != 255 {
				t.Errorf("block (%d,%d) not opaque", bx, by)
			}
		}
	}
}

func TestPixelateQuantize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 60, 80))
	for y := 0; y < 80; y++ {
		for x := 0; x < 60; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 3), B: uint8((x + y) * 2), A: 255})
		}
	}

	tests := []struct {
		colors int
		limit  int
	}{
		{colors: 8, limit: 8},
		{colors: 28, limit: 28},
		{colors: 1, limit: MinColors},
	}
	for _, tt := range tests {
		out := Pixelate(src, 15, 20, 30, 40, tt.colors)

		palette := make(map[color.RGBA]bool)
		for y := 0; y < 40; y++ {
			for x := 0; x < 30; x++ {
				palette[out.RGBAAt(x, y)] = true
			}
		}
		if len(palette) > tt.limit || len(palette) < 2 {
			t.Errorf("Pixelate(colors=%d) used %d colors, expected 2..%d", tt.colors, len(palette), tt.limit)
		}
	}

	// Without quantization the gradient keeps far more colors.
	out := Pixelate(src, 15, 20, 30, 40, 0)
	palette := make(map[color.RGBA]bool)
	for y := 0; y < 40; y++ {
		for x := 0; x < 30; x++ {
			palette[out.RGBAAt(x, y)] = true
		}
	}
	if len(palette) <= 28 {
		t.Errorf("Pixelate(colors=0) used %d colors, expected more than 28", len(palette))
	}
}

func TestContactSheet(t *testing.T) {
	tile := image.NewRGBA(image.Rect(0, 0, 3, 4))
	tiles := []image.Image{tile, tile, tile, tile, tile}

	sheet := ContactSheet(tiles, 3, 4)
	// 4 columns, 2 rows
	if w, h := sheet.Bounds().Dx(), sheet.Bounds().Dy(); w != 4*3+5*12 || h != 2*4+3*12 {
		t.Errorf("ContactSheet() size = %dx%d", w, h)
	}
	if got := sheet.RGBAAt(0, 0); got != sheetBackground {
		t.Errorf("background = %v, expected %v", got, sheetBackground)
	}
	if got := sheet.RGBAAt(12, 12); got != (color.RGBA{}) {
		t.Errorf("tile origin = %v, expected tile pixel", got)
	}
}

func TestProcess(t *testing.T) {
	root := t.TempDir()
	opts := DefaultProcessOptions(root)
	opts.Height = 16
	opts.PixelHeight = 4
	opts.ContactSheet = true

	if err := os.MkdirAll(opts.SourceDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeImage(t, filepath.Join(opts.SourceDir, "a.png"), 40, 40)
	writeImage(t, filepath.Join(opts.SourceDir, "b.png"), 30, 60)

	report, err := Process(context.Background(), testDeck(), opts, quietLogger())
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(report.Processed) != 2 {
		t.Errorf("Processed = %v, expected 2 files", report.Processed)
	}
	if report.Failed != core.PairCount-2 || len(report.Errors) != report.Failed {
		t.Errorf("Failed = %d (%d errors), expected %d", report.Failed, len(report.Errors), core.PairCount-2)
	}
	if report.ContactSheet == "" {
		t.Error("contact sheet not written")
	}

	// Processed faces load back as textures.
	textures, failed := LoadTextures(opts.OutputDir, testDeck())
	if len(textures) != 2 || len(failed) != 0 {
		t.Fatalf("LoadTextures() = %d textures, %v", len(textures), failed)
	}
	if b := textures[0].Bounds(); b.Dx() != 12 || b.Dy() != 16 {
		t.Errorf("face size = %v, expected 12x16", b)
	}
}

func TestProcessInvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ProcessOptions)
	}{
		{"zero pixel height", func(o *ProcessOptions) { o.PixelHeight = 0 }},
		{"zero height", func(o *ProcessOptions) { o.Height = 0 }},
		{"negative quantize", func(o *ProcessOptions) { o.Quantize = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultProcessOptions(t.TempDir())
			tt.modify(&opts)
			if _, err := Process(context.Background(), testDeck(), opts, quietLogger()); !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("Process() error = %v, expected ErrInvalidOptions", err)
			}
		})
	}
}

func TestProcessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Process(ctx, testDeck(), DefaultProcessOptions(t.TempDir()), quietLogger()); !errors.Is(err, context.Canceled) {
		t.Errorf("Process() error = %v, expected context.Canceled", err)
	}
}
