package systems

import (
	"github.com/automoto/matchrun/components"
	"github.com/automoto/matchrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVFX keeps the flame effect anchors in sync outside of the burn tick
// and keeps the bonfire lit. Extinguish effects latch until the scene ends.
func UpdateVFX(e *ecs.ECS) {
	tags.Bonfire.Each(e.World, func(entry *donburi.Entry) {
		vfx := components.FlameVFX.Get(entry)
		if !vfx.Lit {
			vfx.Ignite()
		}
		obj := components.Object.Get(entry)
		vfx.UpdatePosition(obj.CenterX(), obj.Top())
	})

	tags.Matchstick.Each(e.World, func(entry *donburi.Entry) {
		vfx := components.FlameVFX.Get(entry)
		if !vfx.Lit {
			return
		}
		obj := components.Object.Get(entry)
		vfx.UpdatePosition(obj.CenterX(), obj.Top())
	})
}
