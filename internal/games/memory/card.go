package memory

// Timing, in seconds.
const (
	FlipDuration        = 0.22 // One full flip, either direction
	RevealDuration      = 2.0  // Both cards stay face up this long before resolving
	MatchRemoveDuration = 0.20 // Shrink and fade of a matched card
)

// CardState is the lifecycle state of a single card.
type CardState int

const (
	FaceDown CardState = iota
	FlippingToFront
	FaceUp
	FlippingToBack
	Matched
	Removed
)

// String returns the state name.
func (s CardState) String() string {
	switch s {
	case FaceDown:
		return "FaceDown"
	case FlippingToFront:
		return "FlippingToFront"
	case FaceUp:
		return "FaceUp"
	case FlippingToBack:
		return "FlippingToBack"
	case Matched:
		return "Matched"
	case Removed:
		return "Removed"
	default:
		return "Unknown"
	}
}

// Card is one board slot. Slot never changes during a session; the card
// for a removed pair keeps its slot and simply draws nothing.
type Card struct {
	Slot        int
	CharacterID int
	State       CardState

	FlipProgress   float64 // 0..1 while FlippingToFront / FlippingToBack
	FaceSwapped    bool    // Set once per flip when progress crosses 0.5
	RemoveProgress float64 // 0..1 while Matched
}

// Clickable reports whether the player may select this card.
func (c Card) Clickable() bool {
	return c.State == FaceDown
}

// flipToFront starts revealing a face-down card.
func (c *Card) flipToFront() bool {
	if c.State != FaceDown {
		return false
	}
	c.State = FlippingToFront
	c.FlipProgress = 0
	c.FaceSwapped = false
	return true
}

// flipToBack starts hiding a face-up card after a mismatch.
func (c *Card) flipToBack() bool {
	if c.State != FaceUp {
		return false
	}
	c.State = FlippingToBack
	c.FlipProgress = 0
	c.FaceSwapped = false
	return true
}

// match starts the removal animation of a face-up card.
func (c *Card) match() bool {
	if c.State != FaceUp {
		return false
	}
	c.State = Matched
	c.RemoveProgress = 0
	return true
}

// advance moves the card's animation forward by dt seconds, finishing
// flips and removals when their progress reaches 1.
func (c *Card) advance(dt float64) {
	switch c.State {
	case FlippingToFront, FlippingToBack:
		c.FlipProgress += dt / FlipDuration
		if !c.FaceSwapped && c.FlipProgress >= 0.5 {
			c.FaceSwapped = true
		}
		if c.FlipProgress >= 1 {
			c.FlipProgress = 1
			if c.State == FlippingToFront {
				c.State = FaceUp
			} else {
				c.State = FaceDown
			}
		}
	case Matched:
		c.RemoveProgress += dt / MatchRemoveDuration
		if c.RemoveProgress >= 1 {
			c.RemoveProgress = 1
			c.State = Removed
		}
	case FaceDown, FaceUp, Removed:
		// Resting states do not animate.
	}
}
