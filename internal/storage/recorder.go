package storage

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Recorder saves the result of each won round at most once. A nil store
// makes it a no-op that still tracks rounds.
type Recorder struct {
	store  *Store
	logger *log.Logger
	saved  int // Last round recorded, 0 = none
}

// NewRecorder creates a recorder writing to store.
func NewRecorder(store *Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, logger: logger}
}

// Saved reports whether round was already recorded.
func (r *Recorder) Saved(round int) bool {
	return round != 0 && r.saved == round
}

// Record stores a finished round. Repeated calls for the same round are
// ignored. Failures are logged; the game continues regardless.
func (r *Recorder) Record(round int, deckID string, elapsed time.Duration, moves int) {
	if r.Saved(round) {
		return
	}
	r.saved = round

	if r.store == nil {
		return
	}
	id, err := r.store.SaveResult(Result{DeckID: deckID, Elapsed: elapsed, Moves: moves})
	if err != nil {
		r.logger.Warn("could not save result", "error", err)
		return
	}
	r.logger.Debug("result saved", "id", id, "deck", deckID, "elapsed", elapsed, "moves", moves)
}
