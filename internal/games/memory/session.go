package memory

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory/layout"
)

// Board size.
const (
	CardCount = layout.CardCount
	PairCount = core.PairCount
)

// ErrInvalidDeal is returned when a deal does not hold every character
// exactly twice.
var ErrInvalidDeal = errors.New("invalid deal")

// Deal is the character id for each slot.
type Deal [CardCount]int

// Shuffle returns a fresh deal with every character id on exactly two slots.
func Shuffle(rng *rand.Rand) Deal {
	var d Deal
	for i := 0; i < PairCount; i++ {
		d[2*i] = i
		d[2*i+1] = i
	}
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
	return d
}

// Validate checks the pairing invariant.
func (d Deal) Validate() error {
	var counts [PairCount]int
	for slot, id := range d {
		if id < 0 || id >= PairCount {
			return fmt.Errorf("%w: slot %d has character %d", ErrInvalidDeal, slot, id)
		}
		counts[id]++
	}
	for id, n := range counts {
		if n != 2 {
			return fmt.Errorf("%w: character %d appears %d times", ErrInvalidDeal, id, n)
		}
	}
	return nil
}

// Session is one game from the first deal to a win. It is replaced, never
// patched, when a new game starts.
type Session struct {
	cards [CardCount]Card

	first           int
	second          int
	phase           PairPhase
	revealRemaining float64

	moves        int
	matchedPairs int
	elapsed      float64
	timerRunning bool
	won          bool
}

// NewSession deals a shuffled board using rng.
func NewSession(rng *rand.Rand) *Session {
	s, _ := NewSessionFromDeal(Shuffle(rng)) //nolint:errcheck // Shuffle always yields a valid deal
	return s
}

// NewSessionFromDeal builds a session with a fixed deal. Used by tests and
// replays.
func NewSessionFromDeal(deal Deal) (*Session, error) {
	if err := deal.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		first:  NoSelection,
		second: NoSelection,
		phase:  Idle,
	}
	for slot, id := range deal {
		s.cards[slot] = Card{Slot: slot, CharacterID: id, State: FaceDown}
	}
	return s, nil
}

// Click selects the card at slot. It returns false when the click was
// ignored (board locked, game won, bad slot, or card not face down).
func (s *Session) Click(slot int) bool {
	return s.selectCard(slot)
}

// Update advances the session by dt seconds: the timer first, then every
// card animation, then at most one pair phase transition.
func (s *Session) Update(dt float64) {
	dt = core.ClampF(dt, 0, core.MaxFrameDelta)

	if s.timerRunning && !s.won {
		s.elapsed += dt
	}

	for i := range s.cards {
		s.cards[i].advance(dt)
	}

	s.stepPhase(dt)
}

// Card returns a copy of the card at slot. Out of range slots yield a card
// with Slot set to NoSelection.
func (s *Session) Card(slot int) Card {
	if slot < 0 || slot >= CardCount {
		return Card{Slot: NoSelection}
	}
	return s.cards[slot]
}

// Cards returns a copy of the whole board.
func (s *Session) Cards() [CardCount]Card {
	return s.cards
}

// Selection returns the selected slots, NoSelection for empty ones.
func (s *Session) Selection() (first, second int) {
	return s.first, s.second
}

// Phase returns the current pair phase.
func (s *Session) Phase() PairPhase {
	return s.phase
}

// RevealRemaining returns the seconds left in the reveal window.
func (s *Session) RevealRemaining() float64 {
	return s.revealRemaining
}

// Moves returns the number of completed pair selections.
func (s *Session) Moves() int {
	return s.moves
}

// MatchedPairs returns the number of pairs found so far.
func (s *Session) MatchedPairs() int {
	return s.matchedPairs
}

// Elapsed returns the play time in seconds.
func (s *Session) Elapsed() float64 {
	return s.elapsed
}

// TimerRunning reports whether the clock has started and not yet stopped.
func (s *Session) TimerRunning() bool {
	return s.timerRunning
}

// Won reports whether all pairs have been found.
func (s *Session) Won() bool {
	return s.won
}

// Locked reports whether card clicks are currently ignored.
func (s *Session) Locked() bool {
	return s.won || s.phase != Idle
}
