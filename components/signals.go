package components

import (
	"github.com/automoto/matchrun/signals"
	"github.com/yohamta/donburi"
)

// SignalsData exposes the scene's signal hub through the world, the same
// way Space exposes the collision space.
type SignalsData struct {
	Hub *signals.Hub
}

var Signals = donburi.NewComponentType[SignalsData]()
