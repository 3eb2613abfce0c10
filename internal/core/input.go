package core

// EventKind identifies the type of a front-end event.
type EventKind int

const (
	EventNone   EventKind = iota
	EventClose            // Window close request
	EventKey              // Key press; Key holds the key name ("esc", "n", ...)
	EventResize           // Window resized; Width/Height hold the new pixel size
	EventClick            // Left mouse button press at (X, Y) in window coordinates
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventClose:
		return "Close"
	case EventKey:
		return "Key"
	case EventResize:
		return "Resize"
	case EventClick:
		return "Click"
	default:
		return "Unknown"
	}
}

// Event is a single discrete input event, independent of the windowing library.
type Event struct {
	Kind   EventKind
	Key    string
	Width  float64
	Height float64
	X, Y   float64
}

// CloseEvent builds a close request.
func CloseEvent() Event {
	return Event{Kind: EventClose}
}

// KeyEvent builds a key press.
func KeyEvent(key string) Event {
	return Event{Kind: EventKey, Key: key}
}

// ResizeEvent builds a resize notification.
func ResizeEvent(w, h float64) Event {
	return Event{Kind: EventResize, Width: w, Height: h}
}

// ClickEvent builds a left-button press.
func ClickEvent(x, y float64) Event {
	return Event{Kind: EventClick, X: x, Y: y}
}

// EventQueue buffers events between frames. Front-ends push as events
// arrive; the game drains the queue once per tick.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
