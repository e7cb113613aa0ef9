// Package engine runs a footbag session one fixed tick at a time.
//
// Game.Step is the only entry point that mutates session state. Each tick it
// moves the leg toward the pointer target, resolves limb strikes, advances
// the footbag and checks for ground loss. Anything the front end should react
// to (sounds, HUD animation, metrics) is pushed to the session EventQueue and
// drained once per frame.
package engine

import (
	"github.com/lixenwraith/footbag/parameter"
	"github.com/lixenwraith/footbag/physics"
	"github.com/lixenwraith/footbag/vmath"
)

// EventType identifies what happened during a tick
type EventType int

const (
	// EventKick is a scoring limb strike
	// Limb is LimbFoot or LimbCalf; Score is the score after the strike
	EventKick EventType = iota

	// EventWallBounce is a wall or ceiling reflection
	// Normal points from the surface into the field
	EventWallBounce

	// EventGameOver fires once, on the tick the footbag drops past the floor
	// Score is the final score
	EventGameOver

	// EventReset fires when a new round starts
	EventReset
)

// String returns a short name for logs
func (t EventType) String() string {
	switch t {
	case EventKick:
		return "kick"
	case EventWallBounce:
		return "wall"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// GameEvent is one entry in the session event queue
type GameEvent struct {
	Type   EventType
	Tick   uint64
	Limb   physics.Limb
	Normal vmath.Vec2
	Score  int
}

// EventQueue is a fixed-capacity FIFO ring
// Pushing into a full queue overwrites the oldest event
// Owned by the game loop goroutine; not safe for concurrent use
type EventQueue struct {
	events []GameEvent
	head   int // Index of the oldest event
	size   int
}

// NewEventQueue creates a queue holding up to parameter.EventQueueSize events
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, parameter.EventQueueSize)}
}

// Push appends e, dropping the oldest event when full
func (q *EventQueue) Push(e GameEvent) {
	capacity := len(q.events)
	if q.size == capacity {
		q.events[q.head] = e
		q.head = (q.head + 1) % capacity
		return
	}
	q.events[(q.head+q.size)%capacity] = e
	q.size++
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *EventQueue) Consume() []GameEvent {
	result := q.Peek()
	q.head = 0
	q.size = 0
	return result
}

// Peek returns pending events without consuming them
func (q *EventQueue) Peek() []GameEvent {
	if q.size == 0 {
		return nil
	}
	result := make([]GameEvent, q.size)
	for i := range result {
		result[i] = q.events[(q.head+i)%len(q.events)]
	}
	return result
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return q.size
}
