package systems

import (
	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the merged buffer and every joined
// player's per-device buffer. Must run before movement and join.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Merged poll across all devices, used for menus, join and pause.
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		pollPlayerInput(entry)
	})
}

// pollPlayerInput reads only the devices bound to this player, so two
// keyboard players do not steal each other's keys.
func pollPlayerInput(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	in := components.PlayerInput.Get(entry)

	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}

	scheme := cfg.Input.Schemes[player.ControlScheme]
	for actionID, keys := range scheme {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
			}
		}
	}

	if player.GamepadID == nil {
		return
	}
	gpID := *player.GamepadID
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}

	if ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonRightBottom) {
		in.Current[cfg.ActionJump] = true
	}
	if ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftLeft) {
		in.Current[cfg.ActionMoveLeft] = true
	}
	if ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftRight) {
		in.Current[cfg.ActionMoveRight] = true
	}

	axisX := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if axisX < -cfg.Input.AnalogDeadzone {
		in.Current[cfg.ActionMoveLeft] = true
	}
	if axisX > cfg.Input.AnalogDeadzone {
		in.Current[cfg.ActionMoveRight] = true
	}
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(e.World); ok {
		return components.Input.Get(entry)
	}
	entry := e.World.Entry(e.World.Create(components.Input))
	return components.Input.Get(entry)
}

// GetAction computes the temporal state of a merged-device action.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return components.ActionState{
		Pressed:      input.Current[id],
		JustPressed:  input.Current[id] && !input.Previous[id],
		JustReleased: !input.Current[id] && input.Previous[id],
	}
}

// MergedAction is a convenience wrapper over the merged input buffer.
func MergedAction(e *ecs.ECS, id cfg.ActionID) components.ActionState {
	return GetAction(getOrCreateInput(e), id)
}

// JoinPressedOnScheme reports a just-pressed join key in one keyboard
// scheme, used to decide which scheme a joining player gets bound to.
func JoinPressedOnScheme(scheme cfg.ControlSchemeID) bool {
	for _, key := range cfg.Input.Schemes[scheme][cfg.ActionJoin] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// JoinPressedOnGamepad returns the first gamepad whose join button was just
// pressed this frame.
func JoinPressedOnGamepad() (ebiten.GamepadID, bool) {
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range cfg.Input.Bindings[cfg.ActionJoin].StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(gpID, btn) {
				return gpID, true
			}
		}
	}
	return 0, false
}
