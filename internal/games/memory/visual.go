package memory

import "github.com/vovakirdan/tui-memory/internal/core"

// minVisualScale keeps a card at least a sliver wide mid-flip.
const minVisualScale = 0.02

// matchShrink is how much a matched card shrinks before it disappears.
const matchShrink = 0.40

// Visual is the per-frame appearance of a card, derived from its state.
type Visual struct {
	ScaleX  float64
	ScaleY  float64
	Alpha   float64
	Front   bool // Draw the character face instead of the card back
	Visible bool
}

// FlipScaleX returns the horizontal squash of a card: 1 at rest, shrinking
// to nearly zero at the half-way point of a flip and growing back after.
func FlipScaleX(state CardState, progress float64) float64 {
	switch state {
	case FlippingToFront, FlippingToBack:
		p := core.ClampF(progress, 0, 1)
		if p < 0.5 {
			return max(minVisualScale, 1-p*2)
		}
		return max(minVisualScale, (p-0.5)*2)
	case FaceDown, FaceUp, Matched, Removed:
		return 1
	default:
		return 1
	}
}

// ShowsFront reports whether the character face is visible for a state and
// flip progress.
func ShowsFront(state CardState, progress float64) bool {
	switch state {
	case FlippingToFront:
		return progress >= 0.5
	case FlippingToBack:
		return progress < 0.5
	case FaceUp, Matched:
		return true
	case FaceDown, Removed:
		return false
	default:
		return false
	}
}

// VisualOf derives how a card should be drawn this frame.
func VisualOf(c Card) Visual {
	if c.State == Removed {
		return Visual{}
	}

	vanish := 1.0
	alpha := 1.0
	if c.State == Matched {
		t := core.ClampF(c.RemoveProgress, 0, 1)
		vanish = 1 - matchShrink*t
		alpha = 1 - t
	}

	return Visual{
		ScaleX:  max(minVisualScale, FlipScaleX(c.State, c.FlipProgress)*vanish),
		ScaleY:  max(minVisualScale, vanish),
		Alpha:   alpha,
		Front:   ShowsFront(c.State, c.FlipProgress),
		Visible: true,
	}
}
