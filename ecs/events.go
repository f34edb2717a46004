package ecs

import "github.com/jakecoffman/cp"

// EventKind identifies gameplay events.
type EventKind string

const (
	EventPlayerHurt  EventKind = "player_hurt"
	EventEnemyDied   EventKind = "enemy_died"
	EventGrassCut    EventKind = "grass_cut"
	EventExpGained   EventKind = "exp_gained"
	EventMagicCast   EventKind = "magic_cast"
	EventGameOver    EventKind = "game_over"
	EventStateChange EventKind = "state_change"
)

// Event is a gameplay notification for observers outside the simulation
// (logging, audio). Nothing inside the frame pipeline reads it.
type Event struct {
	Kind   EventKind
	Entity Entity
	Pos    cp.Vector
	Amount int
	Detail string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
