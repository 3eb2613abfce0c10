package memory

// NoSelection marks an empty selection slot.
const NoSelection = -1

// PairPhase is the state of the pair currently being played.
type PairPhase int

const (
	// Idle accepts card clicks.
	Idle PairPhase = iota
	// WaitingForSecondFlip holds until both selected cards are face up.
	WaitingForSecondFlip
	// RevealWindow keeps both cards visible for RevealDuration.
	RevealWindow
	// Resolving waits for the match or mismatch animations to settle.
	Resolving
)

// String returns the phase name.
func (p PairPhase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case WaitingForSecondFlip:
		return "WaitingForSecondFlip"
	case RevealWindow:
		return "RevealWindow"
	case Resolving:
		return "Resolving"
	default:
		return "Unknown"
	}
}

// selectCard applies a click on slot. The board is locked while a pair is in
// flight or after a win; locked clicks, out-of-range slots and cards that
// are not face down are ignored.
func (s *Session) selectCard(slot int) bool {
	if s.won || s.phase != Idle {
		return false
	}
	if slot < 0 || slot >= CardCount || !s.cards[slot].Clickable() {
		return false
	}

	s.timerRunning = true
	s.cards[slot].flipToFront()

	if s.first == NoSelection {
		s.first = slot
		return true
	}

	// first is no longer face down, so slot != first here.
	s.second = slot
	s.moves++
	s.phase = WaitingForSecondFlip
	return true
}

// stepPhase performs at most one phase transition. Card animations must
// already have been advanced for this tick.
func (s *Session) stepPhase(dt float64) {
	switch s.phase {
	case Idle:
		// Waiting for clicks.
	case WaitingForSecondFlip:
		if s.bothInState(FaceUp) {
			s.revealRemaining = RevealDuration
			s.phase = RevealWindow
		}
	case RevealWindow:
		s.revealRemaining -= dt
		if s.revealRemaining <= 0 {
			s.resolve()
		}
	case Resolving:
		if !s.settled() {
			return
		}
		if s.selectionMatches() {
			s.matchedPairs++
			if s.matchedPairs >= PairCount {
				s.won = true
				s.timerRunning = false
			}
		}
		s.first, s.second = NoSelection, NoSelection
		s.phase = Idle
	}
}

// resolve compares the selected pair and starts the matching animations.
func (s *Session) resolve() {
	if s.first == NoSelection || s.second == NoSelection {
		return
	}
	a, b := &s.cards[s.first], &s.cards[s.second]
	if s.selectionMatches() {
		a.match()
		b.match()
	} else {
		a.flipToBack()
		b.flipToBack()
	}
	s.phase = Resolving
}

// settled reports whether both selected cards finished their resolution
// animation: removed for a match, face down for a mismatch.
func (s *Session) settled() bool {
	if s.selectionMatches() {
		return s.bothInState(Removed)
	}
	return s.bothInState(FaceDown)
}

func (s *Session) selectionMatches() bool {
	if s.first == NoSelection || s.second == NoSelection {
		return false
	}
	return s.cards[s.first].CharacterID == s.cards[s.second].CharacterID
}

func (s *Session) bothInState(state CardState) bool {
	if s.first == NoSelection || s.second == NoSelection {
		return false
	}
	return s.cards[s.first].State == state && s.cards[s.second].State == state
}
