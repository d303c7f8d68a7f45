package glimpse

import "fmt"

type EventType uint32

const (
	EventQuit EventType = iota + 1
	EventWindowResized
	EventKeyDown
	EventKeyUp
	EventMouseButtonDown
	EventMouseButtonUp
	EventMouseMotion
	EventGamepadAdded
	EventGamepadRemoved
)

var eventTypeNames = map[EventType]string{
	EventQuit:            "quit",
	EventWindowResized:   "window-resized",
	EventKeyDown:         "key-down",
	EventKeyUp:           "key-up",
	EventMouseButtonDown: "mouse-button-down",
	EventMouseButtonUp:   "mouse-button-up",
	EventMouseMotion:     "mouse-motion",
	EventGamepadAdded:    "gamepad-added",
	EventGamepadRemoved:  "gamepad-removed",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("event(%d)", uint32(t))
}

type MouseButton uint32

// Event is a single input or window event. Only the fields
// relevant to the Type are set.
type Event struct {
	Type EventType

	// key events
	Key      int
	Scancode int

	// mouse button events
	Button MouseButton

	// cursor position for mouse events
	X, Y float32

	// new size for EventWindowResized
	Width, Height int

	// joystick id for gamepad events
	Gamepad int
}

// eventQueue collects events from the glfw callbacks until
// they are consumed with pop.
type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(ev Event) {
	q.events = append(q.events, ev)
}

func (q *eventQueue) pop() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}

	ev := q.events[0]

	// drop the reference to the consumed prefix once drained
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = nil
	}

	return ev, true
}

func (q *eventQueue) reset() {
	q.events = nil
}
