package core

import (
	"image"
	"image/color"
	"math"
	"strings"
)

// Upper half block: the foreground paints the top pixel of a cell and the
// background paints the bottom one.
const halfBlock = '▀'

// Cell is one terminal character with its colors.
type Cell struct {
	Rune rune
	Fg   RGBA
	Bg   RGBA
}

// Screen is a terminal raster. Every character cell holds two vertically
// stacked pixels, so a W×H cell screen is a W×2H pixel canvas; text is kept
// on a separate layer and composited per cell.
//
// Screen implements Sink, which lets the game draw into the terminal with the
// same primitives it uses for a graphical window.
type Screen struct {
	width  int // cells
	height int // cells
	pixels []RGBA
	runes  []rune
	inks   []RGBA
}

// NewScreen creates a new screen buffer with the given dimensions in cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// PixelWidth returns the canvas width in pixels (one per column).
func (s *Screen) PixelWidth() int {
	return s.width
}

// PixelHeight returns the canvas height in pixels (two per row).
func (s *Screen) PixelHeight() int {
	return s.height * 2
}

// Resize changes the screen dimensions. Content is discarded; the next frame
// redraws everything.
func (s *Screen) Resize(width, height int) {
	width = Max(0, width)
	height = Max(0, height)
	if width == s.width && height == s.height && s.pixels != nil {
		return
	}
	s.width = width
	s.height = height
	s.pixels = make([]RGBA, width*height*2)
	s.runes = make([]rune, width*height)
	s.inks = make([]RGBA, width*height)
}

// Clear fills the canvas with c and erases all text.
func (s *Screen) Clear(c RGBA) {
	c.A = 255
	for i := range s.pixels {
		s.pixels[i] = c
	}
	for i := range s.runes {
		s.runes[i] = 0
	}
}

// SetPixel blends c onto the pixel at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= s.PixelWidth() || y < 0 || y >= s.PixelHeight() {
		return
	}
	i := y*s.width + x
	s.pixels[i] = c.Over(s.pixels[i])
}

// Pixel returns the pixel at (x, y); transparent black when out of bounds.
func (s *Screen) Pixel(x, y int) RGBA {
	if x < 0 || x >= s.PixelWidth() || y < 0 || y >= s.PixelHeight() {
		return RGBA{}
	}
	return s.pixels[y*s.width+x]
}

// PutText writes a string on the text layer starting at cell (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) PutText(x, y int, text string, ink RGBA) {
	if y < 0 || y >= s.height {
		return
	}
	i := 0
	for _, r := range text {
		cx := x + i
		i++
		if cx < 0 || cx >= s.width {
			continue
		}
		s.runes[y*s.width+cx] = r
		s.inks[y*s.width+cx] = ink
	}
}

// Text returns the rune on the text layer at cell (x, y), or 0.
func (s *Screen) Text(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.runes[y*s.width+x]
}

// GetCell composites the cell at (x, y) from its two pixels and text.
func (s *Screen) GetCell(x, y int) Cell {
	top := s.Pixel(x, y*2)
	bottom := s.Pixel(x, y*2+1)
	if r := s.Text(x, y); r != 0 {
		bg := RGBA{
			R: uint8((int(top.R) + int(bottom.R)) / 2),
			G: uint8((int(top.G) + int(bottom.G)) / 2),
			B: uint8((int(top.B) + int(bottom.B)) / 2),
			A: 255,
		}
		return Cell{Rune: r, Fg: s.inks[y*s.width+x].Over(bg), Bg: bg}
	}
	if top == bottom {
		return Cell{Rune: ' ', Fg: bottom, Bg: bottom}
	}
	return Cell{Rune: halfBlock, Fg: top, Bg: bottom}
}

// DrawQuad rasterizes a quad onto the pixel canvas.
func (s *Screen) DrawQuad(q Quad) {
	if q.Alpha <= 0 {
		return
	}
	r := q.Rect.ScaledAboutCenter(q.ScaleX, q.ScaleY)
	area := r.Snap()
	if area.Empty() {
		return
	}
	visible := area.Intersect(NewRect(0, 0, s.PixelWidth(), s.PixelHeight()))

	border := 0
	if q.OutlineWidth > 0 {
		border = Max(1, int(math.Round(q.OutlineWidth)))
	}

	for py := visible.Y; py < visible.Bottom(); py++ {
		for px := visible.X; px < visible.Right(); px++ {
			edge := px-area.X < border || area.Right()-1-px < border ||
				py-area.Y < border || area.Bottom()-1-py < border
			var c RGBA
			switch {
			case edge:
				c = q.Outline
			case q.Texture != nil:
				c = sampleTexture(q.Texture, r, float64(px)+0.5, float64(py)+0.5)
			default:
				c = q.Fill
			}
			s.SetPixel(px, py, c.WithAlpha(q.Alpha))
		}
	}
}

// sampleTexture picks the nearest texel for the canvas point (x, y) inside r.
func sampleTexture(img image.Image, r RectF, x, y float64) RGBA {
	b := img.Bounds()
	if b.Empty() || r.W <= 0 || r.H <= 0 {
		return RGBA{}
	}
	u := ClampF((x-r.X)/r.W, 0, 0.999999)
	v := ClampF((y-r.Y)/r.H, 0, 0.999999)
	tx := b.Min.X + int(u*float64(b.Dx()))
	ty := b.Min.Y + int(v*float64(b.Dy()))
	c := color.NRGBAModel.Convert(img.At(tx, ty)).(color.NRGBA)
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// DrawText places a label on the text layer. Font sizes are meaningless in a
// terminal and are ignored.
func (s *Screen) DrawText(l Label) {
	if l.Text == "" || l.Color.A == 0 {
		return
	}
	row := int(math.Floor(l.Y / 2))
	col := int(math.Floor(l.X))
	if l.Centered {
		col -= len([]rune(l.Text)) / 2
	}
	s.PutText(col, row, l.Text, l.Color)
}

// Present implements Sink. The terminal shows the frame when the model's
// View returns it.
func (s *Screen) Present() {}

// String converts the screen to plain text (no colors): text where present,
// half blocks elsewhere. Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height*3 + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for x := 0; x < s.width; x++ {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}
