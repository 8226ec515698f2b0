package components

import "github.com/yohamta/donburi"

// FlameVFXData is the VFX collaborator surface for one matchstick. The burn
// simulation drives it fire-and-forget; rendering reads it.
type FlameVFXData struct {
	Lit bool
	// Doused distinguishes the water extinguish effect (steam) from a
	// plain burn-out (smoke).
	Doused       bool
	Extinguished bool
	// X, Y track the flame slot at the top of the shrinking stick.
	X, Y float64
}

var FlameVFX = donburi.NewComponentType[FlameVFXData]()

// Ignite lights the flame effect.
func (f *FlameVFXData) Ignite() {
	f.Lit = true
	f.Extinguished = false
	f.Doused = false
}

// Extinguish puts the flame out; isWater selects the steam variant.
func (f *FlameVFXData) Extinguish(isWater bool) {
	f.Lit = false
	f.Extinguished = true
	f.Doused = isWater
}

// UpdatePosition moves the effect anchor.
func (f *FlameVFXData) UpdatePosition(x, y float64) {
	f.X = x
	f.Y = y
}
