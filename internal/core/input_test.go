package core

import "testing"

func TestEventQueueDrainOrder(t *testing.T) {
	var q EventQueue
	q.Push(ResizeEvent(800, 600))
	q.Push(ClickEvent(10, 20))
	q.Push(KeyEvent("esc"))

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}

	events := q.Drain()
	kinds := []EventKind{EventResize, EventClick, EventKey}
	for i, k := range kinds {
		if events[i].Kind != k {
			t.Errorf("event %d kind = %v, expected %v", i, events[i].Kind, k)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len() after Drain = %d, expected 0", q.Len())
	}
	if again := q.Drain(); again != nil {
		t.Errorf("Drain() on empty queue = %v, expected nil", again)
	}
}

func TestEventQueueDrainReturnsCopy(t *testing.T) {
	var q EventQueue
	q.Push(ClickEvent(1, 1))
	events := q.Drain()
	q.Push(ClickEvent(2, 2))

	if events[0].X != 1 {
		t.Errorf("drained event was overwritten by a later Push: %+v", events[0])
	}
}

func TestEventKindString(t *testing.T) {
	if EventClick.String() != "Click" {
		t.Errorf("EventClick.String() = %q", EventClick.String())
	}
	if EventKind(99).String() != "Unknown" {
		t.Errorf("EventKind(99).String() = %q", EventKind(99).String())
	}
}
