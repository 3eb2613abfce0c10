package memory

// Snapshot captures the complete session state for determinism testing and
// debugging.
type Snapshot struct {
	Cards           [CardCount]Card
	First           int
	Second          int
	Phase           PairPhase
	RevealRemaining float64
	Moves           int
	MatchedPairs    int
	Elapsed         float64
	TimerRunning    bool
	Won             bool
}

// Snapshot returns a value copy of the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Cards:           s.cards,
		First:           s.first,
		Second:          s.second,
		Phase:           s.phase,
		RevealRemaining: s.revealRemaining,
		Moves:           s.moves,
		MatchedPairs:    s.matchedPairs,
		Elapsed:         s.elapsed,
		TimerRunning:    s.timerRunning,
		Won:             s.won,
	}
}

// faces counts cards per state.
func (snap Snapshot) faces() map[CardState]int {
	out := make(map[CardState]int)
	for _, c := range snap.Cards {
		out[c.State]++
	}
	return out
}
