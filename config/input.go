package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionJoin
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// ControlSchemeID selects a keyboard zone for a player.
type ControlSchemeID int

const (
	ControlSchemeA ControlSchemeID = iota // Arrows + Right Ctrl
	ControlSchemeB                        // WASD + Space
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	// Bindings holds device-merged bindings used for menus and pause.
	Bindings map[ActionID]InputBinding
	// Schemes holds per-player keyboard bindings, keyed by control scheme.
	Schemes map[ControlSchemeID]map[ActionID][]ebiten.Key
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionJoin: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyBackspace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
		},
		Schemes: map[ControlSchemeID]map[ActionID][]ebiten.Key{
			ControlSchemeA: {
				ActionMoveLeft:  {ebiten.KeyLeft},
				ActionMoveRight: {ebiten.KeyRight},
				ActionJump:      {ebiten.KeyUp, ebiten.KeyControlRight},
				ActionJoin:      {ebiten.KeyEnter},
			},
			ControlSchemeB: {
				ActionMoveLeft:  {ebiten.KeyA},
				ActionMoveRight: {ebiten.KeyD},
				ActionJump:      {ebiten.KeyW, ebiten.KeySpace},
				ActionJoin:      {ebiten.KeySpace},
			},
		},
	}
}
