package components

import (
	cfg "github.com/automoto/matchrun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// PlayerData is a player registration created by the join coordinator.
// Match is a relation, not ownership: it points at whichever matchstick is
// current for this index and is rebound on every flame handoff.
type PlayerData struct {
	PlayerIndex int

	// Bound input device: gamepad when set, otherwise the keyboard scheme.
	GamepadID     *ebiten.GamepadID
	ControlScheme cfg.ControlSchemeID

	Match *donburi.Entry
}

var Player = donburi.NewComponentType[PlayerData]()
