package core

// EventKind distinguishes input events delivered to the game each tick.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventKeyDown
)

// Key is a steering key, abstracted from physical key presses so the game
// does not depend on any terminal library.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "None"
	}
}

// Event is a single input event: either Quit or KeyDown(Key).
type Event struct {
	Kind EventKind
	Key  Key
}

// QuitEvent returns a Quit event.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyEvent returns a KeyDown event for k.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// EventQueue collects events between ticks. The front end pushes, the game
// loop drains once per tick.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns all queued events and empties the queue.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
