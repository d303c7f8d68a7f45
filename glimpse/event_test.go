package glimpse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventQueueOrder(t *testing.T) {
	var q eventQueue

	_, ok := q.pop()
	assert.False(t, ok)

	q.push(Event{Type: EventKeyDown, Key: 65})
	q.push(Event{Type: EventWindowResized, Width: 800, Height: 600})
	q.push(Event{Type: EventQuit})
	assert.Len(t, q.events, 3)

	ev, ok := q.pop()
	assert.True(t, ok)
	assert.Equal(t, Event{Type: EventKeyDown, Key: 65}, ev)

	ev, _ = q.pop()
	assert.Equal(t, EventWindowResized, ev.Type)
	assert.Equal(t, 800, ev.Width)

	ev, _ = q.pop()
	assert.Equal(t, EventQuit, ev.Type)

	_, ok = q.pop()
	assert.False(t, ok)
	assert.Empty(t, q.events)
}

func TestEventQueueReset(t *testing.T) {
	var q eventQueue
	q.push(Event{Type: EventQuit})
	q.reset()

	_, ok := q.pop()
	assert.False(t, ok)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "quit", EventQuit.String())
	assert.Equal(t, "gamepad-removed", EventGamepadRemoved.String())
	assert.Equal(t, "event(99)", EventType(99).String())
}
