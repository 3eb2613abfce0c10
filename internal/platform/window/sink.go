// Package window runs the game in a native window through ebiten.
package window

import (
	"bytes"
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-memory/internal/assets"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// Sink draws core primitives onto an ebiten image. The target is swapped
// every frame by App.Draw.
type Sink struct {
	target   *ebiten.Image
	face     *text.GoTextFaceSource
	textures map[image.Image]*ebiten.Image
}

// NewSink creates a sink using font for labels. A nil font or one that
// cannot be parsed disables text.
func NewSink(font *assets.Font, logger *log.Logger) *Sink {
	s := &Sink{textures: make(map[image.Image]*ebiten.Image)}
	if font == nil || len(font.Data) == 0 {
		return s
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(font.Data))
	if err != nil {
		if logger != nil {
			logger.Warn("cannot parse font, text disabled", "font", font.Source, "error", err)
		}
		return s
	}
	s.face = src
	return s
}

// HasFont reports whether labels will be drawn.
func (s *Sink) HasFont() bool {
	return s.face != nil
}

// SetTarget sets the image the next frame is drawn on.
func (s *Sink) SetTarget(img *ebiten.Image) {
	s.target = img
}

// Clear implements core.Sink.
func (s *Sink) Clear(c core.RGBA) {
	if s.target == nil {
		return
	}
	s.target.Fill(c)
}

// DrawQuad implements core.Sink.
func (s *Sink) DrawQuad(q core.Quad) {
	if s.target == nil || q.Alpha <= 0 {
		return
	}
	r := q.Rect.ScaledAboutCenter(q.ScaleX, q.ScaleY)
	if r.W <= 0 || r.H <= 0 {
		return
	}

	if q.Texture != nil {
		s.drawTexture(r, q)
	} else {
		fill := q.Fill.WithAlpha(q.Alpha)
		vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	}

	if q.OutlineWidth <= 0 {
		return
	}
	outline := q.Outline.WithAlpha(q.Alpha)
	for _, e := range outlineEdges(r, q.OutlineWidth) {
		if e.W <= 0 || e.H <= 0 {
			continue
		}
		vector.DrawFilledRect(s.target, float32(e.X), float32(e.Y), float32(e.W), float32(e.H), outline, false)
	}
}

func (s *Sink) drawTexture(r core.RectF, q core.Quad) {
	img := s.texture(q.Texture)
	b := img.Bounds()
	if b.Empty() {
		return
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(q.Fill)
	op.ColorScale.ScaleAlpha(float32(core.ClampF(q.Alpha, 0, 1)))
	s.target.DrawImage(img, op)
}

// texture uploads img on first use.
func (s *Sink) texture(img image.Image) *ebiten.Image {
	if t, ok := s.textures[img]; ok {
		return t
	}
	t := ebiten.NewImageFromImage(img)
	s.textures[img] = t
	return t
}

// DrawText implements core.Sink.
func (s *Sink) DrawText(l core.Label) {
	if s.target == nil || s.face == nil || l.Text == "" || l.Color.A == 0 {
		return
	}
	face := &text.GoTextFace{Source: s.face, Size: float64(labelSize(l.Size))}

	op := &text.DrawOptions{}
	op.GeoM.Translate(l.X, l.Y)
	op.ColorScale.ScaleWithColor(l.Color)
	if l.Centered {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(s.target, l.Text, face, op)
}

// Present implements core.Sink. ebiten shows the frame after Draw returns.
func (s *Sink) Present() {}

// outlineEdges returns the top, bottom, left and right strips of a border of
// width w drawn inside r. Side strips exclude the corners.
func outlineEdges(r core.RectF, w float64) [4]core.RectF {
	w = core.ClampF(w, 0, min(r.W, r.H)/2)
	inner := r.H - 2*w
	return [4]core.RectF{
		{X: r.X, Y: r.Y, W: r.W, H: w},
		{X: r.X, Y: r.Bottom() - w, W: r.W, H: w},
		{X: r.X, Y: r.Y + w, W: w, H: inner},
		{X: r.Right() - w, Y: r.Y + w, W: w, H: inner},
	}
}

// labelSize keeps text readable on tiny windows.
func labelSize(size int) int {
	if size < 8 {
		return 8
	}
	return size
}
