// Package signals provides the typed publish/subscribe backbone connecting
// the race state machine, the burn simulation and the join coordinator to
// their reactive collaborators (VFX, audio, HUD, camera).
//
// Delivery is synchronous and in registration order: Emit invokes every
// listener that was subscribed at the start of the call before returning.
// A listener must not assume it is the only or first recipient.
package signals

import (
	"github.com/automoto/matchrun/config"
	"github.com/yohamta/donburi"
)

// Listener receives an emitted value.
type Listener[T any] func(T)

type subscription[T any] struct {
	id int
	fn Listener[T]
}

// Signal is a single multicast event channel.
type Signal[T any] struct {
	nextID int
	subs   []subscription[T]
}

// Subscribe registers fn and returns an id for Unsubscribe.
func (s *Signal[T]) Subscribe(fn Listener[T]) int {
	s.nextID++
	s.subs = append(s.subs, subscription[T]{id: s.nextID, fn: fn})
	return s.nextID
}

// Unsubscribe removes a listener. Unknown ids are ignored, so teardown code
// may unsubscribe unconditionally.
func (s *Signal[T]) Unsubscribe(id int) {
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// Emit delivers v to all current listeners in registration order. Listeners
// subscribed during delivery do not receive this emission; listeners
// unsubscribed during delivery are skipped.
func (s *Signal[T]) Emit(v T) {
	snapshot := make([]subscription[T], len(s.subs))
	copy(snapshot, s.subs)
	for _, sub := range snapshot {
		if s.active(sub.id) {
			sub.fn(v)
		}
	}
}

func (s *Signal[T]) active(id int) bool {
	for _, sub := range s.subs {
		if sub.id == id {
			return true
		}
	}
	return false
}

// StateChange carries the new canonical game state. By the time a listener
// runs, reading the race state back yields the same value.
type StateChange struct {
	State config.GameStateID
}

// FlamePass announces a completed flame handoff.
type FlamePass struct {
	// PlayerIndex is the resolved controlling player: flipped in Versus,
	// the target's assigned index otherwise.
	PlayerIndex int
	From        *donburi.Entry
	To          *donburi.Entry
}

// GoalReached announces the active match touching the bonfire.
type GoalReached struct {
	PlayerIndex int
}

// BurnOut announces a lost run, with the display cause already resolved
// for the current mode.
type BurnOut struct {
	PlayerIndex int
	Cause       string
	Doused      bool
}

// PlayerJoin announces a registration accepted by the join coordinator.
type PlayerJoin struct {
	PlayerIndex int
}

// PauseRequest asks the state machine to toggle Running/Paused.
type PauseRequest struct {
	PlayerIndex int
}

// Hub bundles every signal the game emits. One hub exists per scene world
// and is reset on scene load together with the rest of the race context.
type Hub struct {
	StateChanged   Signal[StateChange]
	FlamePassed    Signal[FlamePass]
	ReachedBonfire Signal[GoalReached]
	BurnedOut      Signal[BurnOut]
	PlayerJoined   Signal[PlayerJoin]
	PauseRequested Signal[PauseRequest]
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{}
}
