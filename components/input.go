package components

import (
	cfg "github.com/automoto/matchrun/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions, merged across devices. Used for menus, join and pause.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData stores per-player input state polled from that player's
// bound device only. Movement and jump are read from here and applied to
// whichever match the player currently controls.
type PlayerInputData struct {
	PlayerIndex int
	Current     [cfg.ActionCount]bool
	Previous    [cfg.ActionCount]bool
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// Action computes the temporal state of one action from the two frames.
func (in *PlayerInputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[id],
		JustPressed:  in.Current[id] && !in.Previous[id],
		JustReleased: !in.Current[id] && in.Previous[id],
	}
}

// Axis returns the horizontal movement axis in [-1, 1].
func (in *PlayerInputData) Axis() float64 {
	var axis float64
	if in.Current[cfg.ActionMoveLeft] {
		axis -= 1
	}
	if in.Current[cfg.ActionMoveRight] {
		axis += 1
	}
	return axis
}
