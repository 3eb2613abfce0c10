package storage

import (
	"testing"
	"time"
)

func TestRecorderSavesOncePerRound(t *testing.T) {
	store := openTestStore(t)
	r := NewRecorder(store, nil)

	if r.Saved(1) {
		t.Fatal("Saved(1) = true before recording")
	}

	for i := 0; i < 3; i++ {
		r.Record(1, "starwars", 42*time.Second, 20)
	}
	if !r.Saved(1) {
		t.Error("Saved(1) = false after recording")
	}

	r.Record(2, "starwars", 40*time.Second, 18)
	if r.Saved(1) || !r.Saved(2) {
		t.Errorf("Saved(1) = %v, Saved(2) = %v, expected false, true", r.Saved(1), r.Saved(2))
	}

	results, err := store.BestResults("starwars", 10)
	if err != nil {
		t.Fatalf("BestResults() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("saved %d results, expected 2", len(results))
	}
	if results[0].Moves != 18 || results[1].Moves != 20 {
		t.Errorf("moves = %d, %d, expected 18, 20", results[0].Moves, results[1].Moves)
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	r := NewRecorder(nil, nil)
	r.Record(3, "starwars", time.Second, 16)

	if !r.Saved(3) {
		t.Error("Saved(3) = false without a store")
	}
}

func TestRecorderSaveFailure(t *testing.T) {
	store := openTestStore(t)
	r := NewRecorder(store, nil)

	// Empty deck ids are rejected by the store; the round still counts as done.
	r.Record(1, "", time.Second, 16)
	if !r.Saved(1) {
		t.Error("Saved(1) = false after a failed save")
	}

	stats, err := store.GetAllDeckStats()
	if err != nil {
		t.Fatalf("GetAllDeckStats() failed: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("GetAllDeckStats() = %d decks, expected 0", len(stats))
	}
}

func TestRecorderRoundZero(t *testing.T) {
	r := NewRecorder(nil, nil)
	if r.Saved(0) {
		t.Error("Saved(0) = true on a fresh recorder")
	}
}
