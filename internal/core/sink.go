package core

import "image"

// Quad is a filled, optionally outlined and textured rectangle.
// ScaleX/ScaleY shrink the rectangle around its center; Alpha fades the
// whole quad (fill, texture and outline).
type Quad struct {
	Rect         RectF
	ScaleX       float64
	ScaleY       float64
	Fill         RGBA
	Texture      image.Image // nil means solid Fill
	Outline      RGBA
	OutlineWidth float64 // 0 means no outline
	Alpha        float64
}

// Label is a single line of text.
type Label struct {
	Text     string
	X, Y     float64
	Size     int
	Color    RGBA
	Centered bool // (X, Y) is the text center instead of its top-left
}

// Sink accepts draw primitives for one frame. Implementations exist for the
// terminal (Screen) and for the graphical window.
type Sink interface {
	Clear(c RGBA)
	DrawQuad(q Quad)
	DrawText(l Label)
	Present()
}
