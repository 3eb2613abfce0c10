package memory

import (
	"fmt"
	"image"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Resources supplies optional assets to Render. A missing texture draws the
// character color with its initials; a missing font draws no text at all.
type Resources interface {
	Texture(characterID int) (image.Image, bool)
	HasFont() bool
}

// StaticResources is a fixed set of textures plus a font flag.
type StaticResources struct {
	Textures map[int]image.Image
	Font     bool
}

// Texture implements Resources.
func (r StaticResources) Texture(characterID int) (image.Image, bool) {
	img, ok := r.Textures[characterID]
	return img, ok && img != nil
}

// HasFont implements Resources.
func (r StaticResources) HasFont() bool {
	return r.Font
}

// Palette
var (
	colorWindow        = core.RGB(10, 13, 20)
	colorPlayArea      = core.RGB(18, 24, 40)
	colorHUD           = core.RGB(26, 35, 58)
	colorGrid          = core.RGB(20, 27, 46)
	colorButton        = core.RGB(78, 113, 170)
	colorButtonOutline = core.RGB(199, 216, 241)
	colorButtonText    = core.RGB(255, 255, 255)
	colorCardBack      = core.RGB(30, 49, 86)
	colorCardBackLine  = core.RGB(175, 201, 238)
	colorCardFrontLine = core.RGB(20, 22, 30)
	colorTextureTint   = core.RGB(255, 255, 255)
	colorCardLabel     = core.RGB(10, 12, 20)
	colorTitle         = core.RGB(245, 226, 121)
	colorStats         = core.RGB(228, 234, 248)
	colorOverlay       = core.RGBA{R: 0, G: 0, B: 0, A: 125}
	colorWinTitle      = core.RGB(255, 250, 197)
	colorWinStats      = core.RGB(236, 240, 253)
)

// HUD text anchors in virtual units, relative to the HUD origin.
const (
	titleX, titleY = 26, 24
	timeX, statsY  = 30, 92
	movesX         = 410
	pairsX         = 720
)

// Render draws one full frame into dst and presents it.
func (g *Game) Render(dst core.Sink, res Resources) {
	l := g.Layout()
	s := g.session
	font := res != nil && res.HasFont()

	dst.Clear(colorWindow)
	dst.DrawQuad(solid(l.PlayArea, colorPlayArea))
	dst.DrawQuad(solid(l.HUD, colorHUD))
	dst.DrawQuad(solid(l.GridArea, colorGrid))

	button := solid(l.NewGame, colorButton)
	button.Outline = colorButtonOutline
	button.OutlineWidth = l.OutlineThickness
	dst.DrawQuad(button)

	for _, c := range s.cards {
		g.drawCard(dst, res, c, font)
	}

	if font {
		x, y := l.At(titleX, titleY)
		dst.DrawText(core.Label{Text: g.Title(), X: x, Y: y, Size: l.TitleSize, Color: colorTitle})

		x, y = l.At(timeX, statsY)
		dst.DrawText(core.Label{Text: "Time: " + FormatElapsed(s.elapsed), X: x, Y: y, Size: l.StatsSize, Color: colorStats})

		x, y = l.At(movesX, statsY)
		dst.DrawText(core.Label{Text: fmt.Sprintf("Moves: %d", s.moves), X: x, Y: y, Size: l.StatsSize, Color: colorStats})

		x, y = l.At(pairsX, statsY)
		dst.DrawText(core.Label{Text: fmt.Sprintf("Pairs: %d/%d", s.matchedPairs, PairCount), X: x, Y: y, Size: l.StatsSize, Color: colorStats})

		bx, by := l.NewGame.Center()
		dst.DrawText(core.Label{Text: "New Game", X: bx, Y: by, Size: l.ButtonSize, Color: colorButtonText, Centered: true})
	}

	if s.won {
		dst.DrawQuad(solid(l.PlayArea, colorOverlay))
		if font {
			cx := l.PlayArea.X + l.PlayArea.W*0.5
			dst.DrawText(core.Label{
				Text:     "You Won!",
				X:        cx,
				Y:        l.PlayArea.Y + l.PlayArea.H*0.46,
				Size:     l.OverlaySize,
				Color:    colorWinTitle,
				Centered: true,
			})
			dst.DrawText(core.Label{
				Text:     fmt.Sprintf("Final Time: %s   Moves: %d", FormatElapsed(s.elapsed), s.moves),
				X:        cx,
				Y:        l.PlayArea.Y + l.PlayArea.H*0.54,
				Size:     l.StatsSize,
				Color:    colorWinStats,
				Centered: true,
			})
		}
	}

	dst.Present()
}

func (g *Game) drawCard(dst core.Sink, res Resources, c Card, font bool) {
	v := VisualOf(c)
	if !v.Visible {
		return
	}
	l := g.Layout()

	q := core.Quad{
		Rect:         l.Cards[c.Slot],
		ScaleX:       v.ScaleX,
		ScaleY:       v.ScaleY,
		OutlineWidth: l.OutlineThickness,
		Alpha:        v.Alpha,
	}

	if !v.Front {
		q.Fill = colorCardBack
		q.Outline = colorCardBackLine
		dst.DrawQuad(q)
		return
	}

	q.Outline = colorCardFrontLine
	var tex image.Image
	hasTex := false
	if res != nil {
		tex, hasTex = res.Texture(c.CharacterID)
	}
	if hasTex {
		q.Fill = colorTextureTint
		q.Texture = tex
		dst.DrawQuad(q)
		return
	}

	ch := g.deck.Character(c.CharacterID)
	q.Fill = ch.Color
	dst.DrawQuad(q)

	if font {
		cx, cy := l.Cards[c.Slot].Center()
		dst.DrawText(core.Label{
			Text:     core.Initials(ch.Name),
			X:        cx,
			Y:        cy,
			Size:     l.CardLabelSize,
			Color:    colorCardLabel.WithAlpha(v.Alpha),
			Centered: true,
		})
	}
}

func solid(r core.RectF, c core.RGBA) core.Quad {
	return core.Quad{Rect: r, ScaleX: 1, ScaleY: 1, Fill: c, Alpha: 1}
}
