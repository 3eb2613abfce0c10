// Package layout maps the fixed 1920x1080 virtual design onto an arbitrary
// window. Compute is pure: the same window size always yields the same Layout.
package layout

import (
	"math"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Grid dimensions.
const (
	Columns   = 8
	Rows      = 4
	CardCount = Columns * Rows
)

// Virtual design resolution and metrics, in virtual units.
const (
	VirtualWidth    = 1920.0
	VirtualHeight   = 1080.0
	CardAspectRatio = 3.0 / 4.0 // width / height

	hudHeight     = 180.0
	outerPadding  = 26.0
	cardGap       = 14.0
	buttonWidth   = 230.0
	buttonHeight  = 70.0
	buttonMarginR = 24.0
	buttonMarginT = 26.0
)

// Base text sizes (virtual units) and their readability floors.
const (
	titleSizeBase     = 48
	titleSizeMin      = 20
	statsSizeBase     = 30
	statsSizeMin      = 14
	buttonSizeBase    = 28
	buttonSizeMin     = 14
	cardLabelSizeBase = 24
	cardLabelSizeMin  = 12
	overlaySizeBase   = 56
	overlaySizeMin    = 22
	outlineBase       = 2
	outlineMin        = 1
)

// Layout holds every rectangle and size needed to draw and hit-test a frame.
type Layout struct {
	Width  float64 // Window width the layout was computed for
	Height float64 // Window height the layout was computed for
	Scale  float64

	PlayArea  core.RectF
	HUD       core.RectF
	GridArea  core.RectF
	NewGame   core.RectF
	Cards     [CardCount]core.RectF
	CardWidth float64

	OutlineThickness float64
	TitleSize        int
	StatsSize        int
	ButtonSize       int
	CardLabelSize    int
	OverlaySize      int
}

// Scale returns the uniform design-to-window scale for a window size.
// Degenerate sizes (zero, negative, NaN) fall back to 1.
func Scale(width, height float64) float64 {
	s := math.Max(0, math.Min(width/VirtualWidth, height/VirtualHeight))
	if !(s > 0) {
		return 1
	}
	return s
}

// Compute builds the full layout for a window of width x height pixels.
func Compute(width, height float64) Layout {
	s := Scale(width, height)
	l := Layout{Width: width, Height: height, Scale: s}

	playW := VirtualWidth * s
	playH := VirtualHeight * s
	l.PlayArea = core.RectF{
		X: (width - playW) * 0.5,
		Y: (height - playH) * 0.5,
		W: playW,
		H: playH,
	}

	l.HUD = core.RectF{X: l.PlayArea.X, Y: l.PlayArea.Y, W: playW, H: hudHeight * s}

	pad := outerPadding * s
	gridY := l.HUD.Bottom() + pad
	l.GridArea = core.RectF{
		X: l.PlayArea.X + pad,
		Y: gridY,
		W: playW - pad*2,
		H: l.PlayArea.Bottom() - gridY - pad,
	}

	gap := cardGap * s
	maxW := (l.GridArea.W - gap*(Columns-1)) / Columns
	maxH := (l.GridArea.H - gap*(Rows-1)) / Rows

	cardW := maxW
	cardH := cardW / CardAspectRatio
	if cardH > maxH {
		cardH = maxH
		cardW = cardH * CardAspectRatio
	}
	l.CardWidth = cardW

	totalW := cardW*Columns + gap*(Columns-1)
	totalH := cardH*Rows + gap*(Rows-1)
	startX := l.GridArea.X + (l.GridArea.W-totalW)*0.5
	startY := l.GridArea.Y + (l.GridArea.H-totalH)*0.5

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			l.Cards[row*Columns+col] = core.RectF{
				X: startX + float64(col)*(cardW+gap),
				Y: startY + float64(row)*(cardH+gap),
				W: cardW,
				H: cardH,
			}
		}
	}

	bw := buttonWidth * s
	bh := buttonHeight * s
	l.NewGame = core.RectF{
		X: l.HUD.Right() - bw - buttonMarginR*s,
		Y: l.HUD.Y + buttonMarginT*s,
		W: bw,
		H: bh,
	}

	l.OutlineThickness = float64(scaled(outlineBase, outlineMin, s))
	l.TitleSize = scaled(titleSizeBase, titleSizeMin, s)
	l.StatsSize = scaled(statsSizeBase, statsSizeMin, s)
	l.ButtonSize = scaled(buttonSizeBase, buttonSizeMin, s)
	l.CardLabelSize = scaled(cardLabelSizeBase, cardLabelSizeMin, s)
	l.OverlaySize = scaled(overlaySizeBase, overlaySizeMin, s)

	return l
}

// scaled floors base*s to an integer no smaller than min.
func scaled(base, min int, s float64) int {
	return core.Max(min, int(math.Floor(float64(base)*s)))
}

// CardAt returns the slot whose rectangle contains (x, y), or -1.
func (l Layout) CardAt(x, y float64) int {
	for i, r := range l.Cards {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// InNewGame reports whether (x, y) hits the New Game button.
func (l Layout) InNewGame(x, y float64) bool {
	return l.NewGame.Contains(x, y)
}

// At converts a virtual HUD offset into window coordinates relative to the HUD origin.
func (l Layout) At(vx, vy float64) (float64, float64) {
	return l.HUD.X + vx*l.Scale, l.HUD.Y + vy*l.Scale
}
