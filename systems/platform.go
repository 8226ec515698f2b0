package systems

import (
	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances floating platforms along their tween paths and
// carries any matchstick standing on them. Platforms keep moving while
// Pregame so the course is alive behind the countdown, but freeze on pause.
func UpdatePlatforms(e *ecs.ECS) {
	race := GetRace(e)
	if race.State == cfg.GameStatePaused {
		return
	}

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		tween := components.Tween.Get(entry)
		if tween == nil {
			return
		}
		obj := components.Object.Get(entry)

		y, _, seqDone := tween.Update(float32(cfg.C.Dt))
		if seqDone {
			tween.Reset()
			return
		}
		dy := float64(y) - obj.Y
		obj.Y = float64(y)
		obj.Update()

		carryRiders(e, obj, dy)
	})
}

// carryRiders moves matchsticks resting on the platform by the platform's
// vertical delta so they ride instead of jittering.
func carryRiders(e *ecs.ECS, platform *components.ObjectData, dy float64) {
	if dy == 0 {
		return
	}
	tags.Matchstick.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		if physics.OnGround == nil || physics.OnGround != platform.Object {
			return
		}
		obj := components.Object.Get(entry)
		obj.Y += dy
		obj.Update()
	})
}
